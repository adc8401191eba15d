package ranking

import "context"

// Repository describes ranking snapshot persistence needs from use cases.
type Repository interface {
	// ReplaceByPeriod swaps the full snapshot set of a period in one
	// transaction; readers never observe a half-replaced leaderboard.
	ReplaceByPeriod(ctx context.Context, periodID string, rows []Snapshot) error

	ListByPeriod(ctx context.Context, periodID string) ([]Snapshot, error)
}
