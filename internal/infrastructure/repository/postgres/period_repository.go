package postgres

import (
	"context"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/Timsl1401/kosc-spitsenspel/internal/domain/period"
)

type periodTableModel struct {
	ID       string    `db:"id"`
	Name     string    `db:"name"`
	StartsAt time.Time `db:"starts_at"`
	EndsAt   time.Time `db:"ends_at"`
}

func (m periodTableModel) toDomain() period.Period {
	return period.Period{
		ID:       m.ID,
		Name:     m.Name,
		StartsAt: m.StartsAt,
		EndsAt:   m.EndsAt,
	}
}

type PeriodRepository struct {
	db *sqlx.DB
}

func NewPeriodRepository(db *sqlx.DB) *PeriodRepository {
	return &PeriodRepository{db: db}
}

func (r *PeriodRepository) List(ctx context.Context) ([]period.Period, error) {
	const query = `
SELECT id, name, starts_at, ends_at
FROM periods
WHERE deleted_at IS NULL
ORDER BY starts_at`

	var rows []periodTableModel
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, crerr.Wrap(err, "list periods")
	}

	out := make([]period.Period, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *PeriodRepository) GetByID(ctx context.Context, periodID string) (period.Period, bool, error) {
	const query = `
SELECT id, name, starts_at, ends_at
FROM periods
WHERE id = $1
  AND deleted_at IS NULL`

	var row periodTableModel
	if err := r.db.GetContext(ctx, &row, query, periodID); err != nil {
		if isNotFound(err) {
			return period.Period{}, false, nil
		}
		return period.Period{}, false, crerr.Wrapf(err, "get period %s", periodID)
	}

	return row.toDomain(), true, nil
}
