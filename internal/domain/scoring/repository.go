package scoring

import (
	"context"
	"time"
)

// Repository describes scoring record persistence needs from use cases.
type Repository interface {
	// ApplyGoal stores the captured point value and processed flag on the
	// goal together with the attributed records, atomically. Re-applying an
	// already processed goal must not create duplicate records.
	ApplyGoal(ctx context.Context, goalID string, points float64, records []Record) error

	// AggregateByUser sums points per user over records whose ScoredAt falls
	// within [from, to], counting goals of competitive matches only.
	AggregateByUser(ctx context.Context, from, to time.Time) ([]UserTotals, error)

	ListByUser(ctx context.Context, userID string, from, to time.Time) ([]Record, error)
}
