package roster

import (
	"context"
	"time"
)

// UserValue is one user's summed acquisition price over open entries.
type UserValue struct {
	UserID string
	Value  int64
}

// TxStore is the mutation surface available inside a per-user transaction.
// Implementations must guarantee that concurrent InUserTx calls for the same
// user serialize, so squad-size and budget checks see a consistent ledger.
type TxStore interface {
	ListOpenByUser(ctx context.Context, userID string) ([]Entry, error)
	CountPostDeadlineBuys(ctx context.Context, userID string) (int, error)
	Create(ctx context.Context, entry Entry) error
	Close(ctx context.Context, entryID string, soldAt time.Time, soldPrice int64) error
}

// Repository describes roster ledger persistence needs from use cases.
type Repository interface {
	InUserTx(ctx context.Context, userID string, fn func(ctx context.Context, store TxStore) error) error

	ListOpenByUser(ctx context.Context, userID string) ([]Entry, error)
	ListByUserAt(ctx context.Context, userID string, asOf time.Time) ([]Entry, error)
	ListOwnersAt(ctx context.Context, playerID string, at time.Time) ([]Entry, error)
	SumOpenValueByUser(ctx context.Context) ([]UserValue, error)
}
