package postgres

import (
	"context"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/Timsl1401/kosc-spitsenspel/internal/domain/player"
)

type playerTableModel struct {
	ID        string     `db:"id"`
	Name      string     `db:"name"`
	TeamID    string     `db:"team_id"`
	Position  string     `db:"position"`
	Price     int64      `db:"price"`
	BirthDate *time.Time `db:"birth_date"`
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:        m.ID,
		Name:      m.Name,
		TeamID:    m.TeamID,
		Position:  player.Position(m.Position),
		Price:     m.Price,
		BirthDate: m.BirthDate,
	}
}

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	const query = `
SELECT id, name, team_id, position, price, birth_date
FROM players
WHERE deleted_at IS NULL
ORDER BY id`

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, crerr.Wrap(err, "list players")
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	const query = `
SELECT id, name, team_id, position, price, birth_date
FROM players
WHERE id = $1
  AND deleted_at IS NULL`

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, playerID); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, crerr.Wrapf(err, "get player %s", playerID)
	}

	return row.toDomain(), true, nil
}

func (r *PlayerRepository) GetByIDs(ctx context.Context, playerIDs []string) ([]player.Player, error) {
	if len(playerIDs) == 0 {
		return []player.Player{}, nil
	}

	query, args, err := sqlx.In(`
SELECT id, name, team_id, position, price, birth_date
FROM players
WHERE id IN (?)
  AND deleted_at IS NULL
ORDER BY id`, playerIDs)
	if err != nil {
		return nil, crerr.Wrap(err, "bind players-by-ids query")
	}
	query = r.db.Rebind(query)

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "get players by ids")
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}
