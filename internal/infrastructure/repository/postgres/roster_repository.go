package postgres

import (
	"context"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/Timsl1401/kosc-spitsenspel/internal/domain/roster"
)

type rosterEntryTableModel struct {
	ID           string     `db:"id"`
	UserID       string     `db:"user_id"`
	PlayerID     string     `db:"player_id"`
	Price        int64      `db:"price"`
	BoughtAt     time.Time  `db:"bought_at"`
	SoldAt       *time.Time `db:"sold_at"`
	SoldPrice    *int64     `db:"sold_price"`
	PostDeadline bool       `db:"post_deadline"`
}

func (m rosterEntryTableModel) toDomain() roster.Entry {
	return roster.Entry{
		ID:           m.ID,
		UserID:       m.UserID,
		PlayerID:     m.PlayerID,
		Price:        m.Price,
		BoughtAt:     m.BoughtAt,
		SoldAt:       m.SoldAt,
		SoldPrice:    m.SoldPrice,
		PostDeadline: m.PostDeadline,
	}
}

const rosterEntryColumns = `id, user_id, player_id, price, bought_at, sold_at, sold_price, post_deadline`

type RosterRepository struct {
	db *sqlx.DB
}

func NewRosterRepository(db *sqlx.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

// InUserTx runs fn inside a transaction holding a per-user advisory lock.
// The lock serializes concurrent roster mutations for one user, so the
// squad-size, budget and transfer-cap checks read a settled ledger. It is
// released automatically at commit or rollback.
func (r *RosterRepository) InUserTx(ctx context.Context, userID string, fn func(ctx context.Context, store roster.TxStore) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return crerr.Wrap(err, "begin roster tx")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, userID); err != nil {
		return crerr.Wrapf(err, "acquire roster lock for user %s", userID)
	}

	if err := fn(ctx, rosterTxStore{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return crerr.Wrap(err, "commit roster tx")
	}

	return nil
}

func (r *RosterRepository) ListOpenByUser(ctx context.Context, userID string) ([]roster.Entry, error) {
	return listOpenByUser(ctx, r.db, userID)
}

func (r *RosterRepository) ListByUserAt(ctx context.Context, userID string, asOf time.Time) ([]roster.Entry, error) {
	const query = `
SELECT ` + rosterEntryColumns + `
FROM roster_entries
WHERE user_id = $1
  AND bought_at <= $2
  AND (sold_at IS NULL OR sold_at > $2)
ORDER BY bought_at, id`

	var rows []rosterEntryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, userID, asOf); err != nil {
		return nil, crerr.Wrapf(err, "list roster entries for user %s", userID)
	}

	return toDomainEntries(rows), nil
}

func (r *RosterRepository) ListOwnersAt(ctx context.Context, playerID string, at time.Time) ([]roster.Entry, error) {
	const query = `
SELECT ` + rosterEntryColumns + `
FROM roster_entries
WHERE player_id = $1
  AND bought_at <= $2
  AND (sold_at IS NULL OR sold_at > $2)
ORDER BY bought_at, id`

	var rows []rosterEntryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, playerID, at); err != nil {
		return nil, crerr.Wrapf(err, "list owners of player %s", playerID)
	}

	return toDomainEntries(rows), nil
}

func (r *RosterRepository) SumOpenValueByUser(ctx context.Context) ([]roster.UserValue, error) {
	const query = `
SELECT user_id, COALESCE(SUM(price), 0) AS value
FROM roster_entries
WHERE sold_at IS NULL
GROUP BY user_id
ORDER BY user_id`

	var rows []struct {
		UserID string `db:"user_id"`
		Value  int64  `db:"value"`
	}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, crerr.Wrap(err, "sum open roster values")
	}

	out := make([]roster.UserValue, 0, len(rows))
	for _, row := range rows {
		out = append(out, roster.UserValue{UserID: row.UserID, Value: row.Value})
	}

	return out, nil
}

type rosterTxStore struct {
	tx *sqlx.Tx
}

func (s rosterTxStore) ListOpenByUser(ctx context.Context, userID string) ([]roster.Entry, error) {
	return listOpenByUser(ctx, s.tx, userID)
}

func (s rosterTxStore) CountPostDeadlineBuys(ctx context.Context, userID string) (int, error) {
	const query = `
SELECT COUNT(*)
FROM roster_entries
WHERE user_id = $1
  AND post_deadline = TRUE`

	var count int
	if err := s.tx.GetContext(ctx, &count, query, userID); err != nil {
		return 0, crerr.Wrapf(err, "count post-deadline buys for user %s", userID)
	}

	return count, nil
}

func (s rosterTxStore) Create(ctx context.Context, entry roster.Entry) error {
	const query = `
INSERT INTO roster_entries (id, user_id, player_id, price, bought_at, post_deadline)
VALUES (:id, :user_id, :player_id, :price, :bought_at, :post_deadline)`

	args := map[string]any{
		"id":            entry.ID,
		"user_id":       entry.UserID,
		"player_id":     entry.PlayerID,
		"price":         entry.Price,
		"bought_at":     entry.BoughtAt,
		"post_deadline": entry.PostDeadline,
	}
	insertSQL, insertArgs, err := sqlx.Named(query, args)
	if err != nil {
		return crerr.Wrap(err, "bind create roster entry query")
	}
	insertSQL = s.tx.Rebind(insertSQL)

	if _, err := s.tx.ExecContext(ctx, insertSQL, insertArgs...); err != nil {
		return crerr.Wrapf(err, "create roster entry %s", entry.ID)
	}

	return nil
}

func (s rosterTxStore) Close(ctx context.Context, entryID string, soldAt time.Time, soldPrice int64) error {
	const query = `
UPDATE roster_entries
SET sold_at = $2,
    sold_price = $3
WHERE id = $1
  AND sold_at IS NULL`

	res, err := s.tx.ExecContext(ctx, query, entryID, soldAt, soldPrice)
	if err != nil {
		return crerr.Wrapf(err, "close roster entry %s", entryID)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return crerr.Wrap(err, "close roster entry rows affected")
	}
	if affected == 0 {
		return crerr.Newf("roster entry %s is missing or already closed", entryID)
	}

	return nil
}

func listOpenByUser(ctx context.Context, q sqlx.QueryerContext, userID string) ([]roster.Entry, error) {
	const query = `
SELECT ` + rosterEntryColumns + `
FROM roster_entries
WHERE user_id = $1
  AND sold_at IS NULL
ORDER BY bought_at, id`

	var rows []rosterEntryTableModel
	if err := sqlx.SelectContext(ctx, q, &rows, query, userID); err != nil {
		return nil, crerr.Wrapf(err, "list open roster entries for user %s", userID)
	}

	return toDomainEntries(rows), nil
}

func toDomainEntries(rows []rosterEntryTableModel) []roster.Entry {
	out := make([]roster.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out
}
