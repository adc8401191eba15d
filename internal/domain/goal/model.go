package goal

import (
	"fmt"
	"time"
)

// Goal is an immutable scoring event. Points holds the tariff value captured
// when the goal was processed; later tariff edits do not touch it.
// PointsCalculated guards at-most-once processing into scoring records.
type Goal struct {
	ID               string
	PlayerID         string
	MatchID          string
	ScoredAt         time.Time
	Points           float64
	PointsCalculated bool
}

func (g Goal) Validate() error {
	if g.ID == "" {
		return fmt.Errorf("goal id is required")
	}
	if g.PlayerID == "" {
		return fmt.Errorf("goal player id is required")
	}
	if g.MatchID == "" {
		return fmt.Errorf("goal match id is required")
	}
	if g.ScoredAt.IsZero() {
		return fmt.Errorf("goal scored at is required")
	}

	return nil
}
