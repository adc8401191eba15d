package postgres

import (
	"context"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/Timsl1401/kosc-spitsenspel/internal/domain/ranking"
)

type rankingSnapshotTableModel struct {
	PeriodID    string    `db:"period_id"`
	UserID      string    `db:"user_id"`
	Rank        int       `db:"rank"`
	Points      float64   `db:"points"`
	RosterValue int64     `db:"roster_value"`
	ComputedAt  time.Time `db:"computed_at"`
}

type RankingRepository struct {
	db *sqlx.DB
}

func NewRankingRepository(db *sqlx.DB) *RankingRepository {
	return &RankingRepository{db: db}
}

// ReplaceByPeriod swaps the period's snapshot set in one transaction, so a
// reader either sees the old leaderboard or the new one, never a mix.
func (r *RankingRepository) ReplaceByPeriod(ctx context.Context, periodID string, rows []ranking.Snapshot) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return crerr.Wrap(err, "begin ranking tx")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM ranking_snapshots WHERE period_id = $1`, periodID); err != nil {
		return crerr.Wrapf(err, "clear ranking snapshots for period %s", periodID)
	}

	const insertQuery = `
INSERT INTO ranking_snapshots (period_id, user_id, rank, points, roster_value, computed_at)
VALUES (:period_id, :user_id, :rank, :points, :roster_value, :computed_at)`

	for _, row := range rows {
		insertSQL, insertArgs, err := sqlx.Named(insertQuery, rankingSnapshotTableModel{
			PeriodID:    row.PeriodID,
			UserID:      row.UserID,
			Rank:        row.Rank,
			Points:      row.Points,
			RosterValue: row.RosterValue,
			ComputedAt:  row.ComputedAt,
		})
		if err != nil {
			return crerr.Wrap(err, "bind insert ranking snapshot query")
		}
		insertSQL = tx.Rebind(insertSQL)

		if _, err := tx.ExecContext(ctx, insertSQL, insertArgs...); err != nil {
			return crerr.Wrapf(err, "insert ranking snapshot period=%s user=%s", row.PeriodID, row.UserID)
		}
	}

	if err := tx.Commit(); err != nil {
		return crerr.Wrap(err, "commit ranking tx")
	}

	return nil
}

func (r *RankingRepository) ListByPeriod(ctx context.Context, periodID string) ([]ranking.Snapshot, error) {
	const query = `
SELECT period_id, user_id, rank, points, roster_value, computed_at
FROM ranking_snapshots
WHERE period_id = $1
ORDER BY rank`

	var rows []rankingSnapshotTableModel
	if err := r.db.SelectContext(ctx, &rows, query, periodID); err != nil {
		return nil, crerr.Wrapf(err, "list ranking snapshots for period %s", periodID)
	}

	out := make([]ranking.Snapshot, 0, len(rows))
	for _, row := range rows {
		out = append(out, ranking.Snapshot{
			PeriodID:    row.PeriodID,
			UserID:      row.UserID,
			Rank:        row.Rank,
			Points:      row.Points,
			RosterValue: row.RosterValue,
			ComputedAt:  row.ComputedAt,
		})
	}

	return out, nil
}
