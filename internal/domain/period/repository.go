package period

import "context"

// Repository describes period persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Period, error)
	GetByID(ctx context.Context, periodID string) (Period, bool, error)
}
