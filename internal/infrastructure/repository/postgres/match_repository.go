package postgres

import (
	"context"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/Timsl1401/kosc-spitsenspel/internal/domain/match"
)

type matchTableModel struct {
	ID          string    `db:"id"`
	TeamID      string    `db:"team_id"`
	Opponent    string    `db:"opponent"`
	PlayedAt    time.Time `db:"played_at"`
	Home        bool      `db:"home"`
	Score       string    `db:"score"`
	Comment     string    `db:"comment"`
	Competitive bool      `db:"competitive"`
}

func (m matchTableModel) toDomain() match.Match {
	return match.Match{
		ID:          m.ID,
		TeamID:      m.TeamID,
		Opponent:    m.Opponent,
		PlayedAt:    m.PlayedAt,
		Home:        m.Home,
		Score:       m.Score,
		Comment:     m.Comment,
		Competitive: m.Competitive,
	}
}

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	const query = `
SELECT id, team_id, opponent, played_at, home, score, comment, competitive
FROM matches
WHERE deleted_at IS NULL
ORDER BY played_at, id`

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, crerr.Wrap(err, "list matches")
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	const query = `
SELECT id, team_id, opponent, played_at, home, score, comment, competitive
FROM matches
WHERE id = $1
  AND deleted_at IS NULL`

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, matchID); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, crerr.Wrapf(err, "get match %s", matchID)
	}

	return row.toDomain(), true, nil
}
