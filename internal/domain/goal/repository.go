package goal

import "context"

// Repository describes goal persistence needs from use cases.
type Repository interface {
	ListUnprocessed(ctx context.Context) ([]Goal, error)
	GetByID(ctx context.Context, goalID string) (Goal, bool, error)
}
