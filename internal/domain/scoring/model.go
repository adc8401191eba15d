package scoring

import (
	"fmt"
	"time"
)

// Record awards the points of one goal to one user who owned the scoring
// player at the moment the goal fell. Records are append-only: one per
// (goal, user) pair, never mutated afterwards. ScoredAt carries the goal's
// timestamp so period aggregation buckets by when the goal happened, not by
// when it was processed.
type Record struct {
	GoalID   string
	UserID   string
	Points   float64
	ScoredAt time.Time
}

func (r Record) Validate() error {
	if r.GoalID == "" {
		return fmt.Errorf("scoring record goal id is required")
	}
	if r.UserID == "" {
		return fmt.Errorf("scoring record user id is required")
	}
	if r.Points < 0 {
		return fmt.Errorf("scoring record points must not be negative")
	}
	if r.ScoredAt.IsZero() {
		return fmt.Errorf("scoring record scored at is required")
	}

	return nil
}

// UserTotals aggregates one user's scoring records within a time window.
type UserTotals struct {
	UserID          string
	Points          float64
	DistinctScorers int
}
