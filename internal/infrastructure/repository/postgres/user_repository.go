package postgres

import (
	"context"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/Timsl1401/kosc-spitsenspel/internal/domain/useraccount"
)

type userTableModel struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	RegisteredAt time.Time `db:"registered_at"`
}

func (m userTableModel) toDomain() useraccount.User {
	return useraccount.User{
		ID:           m.ID,
		Name:         m.Name,
		RegisteredAt: m.RegisteredAt,
	}
}

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) List(ctx context.Context) ([]useraccount.User, error) {
	const query = `
SELECT id, name, registered_at
FROM users
WHERE deleted_at IS NULL
ORDER BY id`

	var rows []userTableModel
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, crerr.Wrap(err, "list users")
	}

	out := make([]useraccount.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID string) (useraccount.User, bool, error) {
	const query = `
SELECT id, name, registered_at
FROM users
WHERE id = $1
  AND deleted_at IS NULL`

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, userID); err != nil {
		if isNotFound(err) {
			return useraccount.User{}, false, nil
		}
		return useraccount.User{}, false, crerr.Wrapf(err, "get user %s", userID)
	}

	return row.toDomain(), true, nil
}
