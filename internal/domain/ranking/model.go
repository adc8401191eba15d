package ranking

import "time"

// Snapshot is one leaderboard row for one period. The full snapshot set of a
// period is always replaced wholesale by a recomputation, never patched.
type Snapshot struct {
	PeriodID    string
	UserID      string
	Rank        int
	Points      float64
	RosterValue int64
	ComputedAt  time.Time
}

// UserAggregate is the per-user input to a ranking computation.
type UserAggregate struct {
	UserID          string
	Points          float64
	RosterValue     int64
	DistinctScorers int
	RegisteredAt    time.Time
}
