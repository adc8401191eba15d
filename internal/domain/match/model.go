package match

import (
	"fmt"
	"time"
)

// Match is one fixture played by a club team. Only competitive matches
// grant points; friendlies are recorded but never scored.
type Match struct {
	ID          string
	TeamID      string
	Opponent    string
	PlayedAt    time.Time
	Home        bool
	Score       string
	Comment     string
	Competitive bool
}

func (m Match) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if m.TeamID == "" {
		return fmt.Errorf("match team id is required")
	}
	if m.Opponent == "" {
		return fmt.Errorf("match opponent is required")
	}
	if m.PlayedAt.IsZero() {
		return fmt.Errorf("match played at is required")
	}

	return nil
}
