package postgres

import (
	"context"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/Timsl1401/kosc-spitsenspel/internal/domain/scoring"
)

type scoringRecordTableModel struct {
	GoalID   string    `db:"goal_id"`
	UserID   string    `db:"user_id"`
	Points   float64   `db:"points"`
	ScoredAt time.Time `db:"scored_at"`
}

type ScoringRepository struct {
	db *sqlx.DB
}

func NewScoringRepository(db *sqlx.DB) *ScoringRepository {
	return &ScoringRepository{db: db}
}

// ApplyGoal flips the goal's processed flag and inserts its records in one
// transaction. The flag update is the idempotence gate: when another run
// already processed the goal, zero rows match and the whole call is a no-op.
func (r *ScoringRepository) ApplyGoal(ctx context.Context, goalID string, points float64, records []scoring.Record) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return crerr.Wrap(err, "begin scoring tx")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const markQuery = `
UPDATE goals
SET points = $2,
    points_calculated = TRUE
WHERE id = $1
  AND points_calculated = FALSE
  AND deleted_at IS NULL`

	res, err := tx.ExecContext(ctx, markQuery, goalID, points)
	if err != nil {
		return crerr.Wrapf(err, "mark goal %s processed", goalID)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return crerr.Wrap(err, "mark goal rows affected")
	}
	if affected == 0 {
		return nil
	}

	const insertQuery = `
INSERT INTO scoring_records (goal_id, user_id, points, scored_at)
VALUES (:goal_id, :user_id, :points, :scored_at)
ON CONFLICT (goal_id, user_id) DO NOTHING`

	for _, rec := range records {
		insertSQL, insertArgs, err := sqlx.Named(insertQuery, scoringRecordTableModel{
			GoalID:   rec.GoalID,
			UserID:   rec.UserID,
			Points:   rec.Points,
			ScoredAt: rec.ScoredAt,
		})
		if err != nil {
			return crerr.Wrap(err, "bind insert scoring record query")
		}
		insertSQL = tx.Rebind(insertSQL)

		if _, err := tx.ExecContext(ctx, insertSQL, insertArgs...); err != nil {
			return crerr.Wrapf(err, "insert scoring record goal=%s user=%s", rec.GoalID, rec.UserID)
		}
	}

	if err := tx.Commit(); err != nil {
		return crerr.Wrap(err, "commit scoring tx")
	}

	return nil
}

func (r *ScoringRepository) AggregateByUser(ctx context.Context, from, to time.Time) ([]scoring.UserTotals, error) {
	const query = `
SELECT sr.user_id,
       COALESCE(SUM(sr.points), 0) AS points,
       COUNT(DISTINCT g.player_id) AS distinct_scorers
FROM scoring_records sr
JOIN goals g ON g.id = sr.goal_id
JOIN matches m ON m.id = g.match_id
WHERE sr.scored_at >= $1
  AND sr.scored_at <= $2
  AND m.competitive = TRUE
GROUP BY sr.user_id
ORDER BY sr.user_id`

	var rows []struct {
		UserID          string  `db:"user_id"`
		Points          float64 `db:"points"`
		DistinctScorers int     `db:"distinct_scorers"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, from, to); err != nil {
		return nil, crerr.Wrap(err, "aggregate scoring records")
	}

	out := make([]scoring.UserTotals, 0, len(rows))
	for _, row := range rows {
		out = append(out, scoring.UserTotals{
			UserID:          row.UserID,
			Points:          row.Points,
			DistinctScorers: row.DistinctScorers,
		})
	}

	return out, nil
}

func (r *ScoringRepository) ListByUser(ctx context.Context, userID string, from, to time.Time) ([]scoring.Record, error) {
	const query = `
SELECT goal_id, user_id, points, scored_at
FROM scoring_records
WHERE user_id = $1
  AND scored_at >= $2
  AND scored_at <= $3
ORDER BY scored_at, goal_id`

	var rows []scoringRecordTableModel
	if err := r.db.SelectContext(ctx, &rows, query, userID, from, to); err != nil {
		return nil, crerr.Wrapf(err, "list scoring records for user %s", userID)
	}

	out := make([]scoring.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, scoring.Record{
			GoalID:   row.GoalID,
			UserID:   row.UserID,
			Points:   row.Points,
			ScoredAt: row.ScoredAt,
		})
	}

	return out, nil
}
