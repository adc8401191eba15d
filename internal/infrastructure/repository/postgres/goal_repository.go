package postgres

import (
	"context"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/Timsl1401/kosc-spitsenspel/internal/domain/goal"
)

type goalTableModel struct {
	ID               string    `db:"id"`
	PlayerID         string    `db:"player_id"`
	MatchID          string    `db:"match_id"`
	ScoredAt         time.Time `db:"scored_at"`
	Points           float64   `db:"points"`
	PointsCalculated bool      `db:"points_calculated"`
}

func (m goalTableModel) toDomain() goal.Goal {
	return goal.Goal{
		ID:               m.ID,
		PlayerID:         m.PlayerID,
		MatchID:          m.MatchID,
		ScoredAt:         m.ScoredAt,
		Points:           m.Points,
		PointsCalculated: m.PointsCalculated,
	}
}

type GoalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

func (r *GoalRepository) ListUnprocessed(ctx context.Context) ([]goal.Goal, error) {
	const query = `
SELECT id, player_id, match_id, scored_at, points, points_calculated
FROM goals
WHERE points_calculated = FALSE
  AND deleted_at IS NULL
ORDER BY scored_at, id`

	var rows []goalTableModel
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, crerr.Wrap(err, "list unprocessed goals")
	}

	out := make([]goal.Goal, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *GoalRepository) GetByID(ctx context.Context, goalID string) (goal.Goal, bool, error) {
	const query = `
SELECT id, player_id, match_id, scored_at, points, points_calculated
FROM goals
WHERE id = $1
  AND deleted_at IS NULL`

	var row goalTableModel
	if err := r.db.GetContext(ctx, &row, query, goalID); err != nil {
		if isNotFound(err) {
			return goal.Goal{}, false, nil
		}
		return goal.Goal{}, false, crerr.Wrapf(err, "get goal %s", goalID)
	}

	return row.toDomain(), true, nil
}
