package period

import (
	"fmt"
	"time"
)

// Period is a named aggregation window for rankings. Windows are
// non-overlapping by club convention, not enforced here.
type Period struct {
	ID       string
	Name     string
	StartsAt time.Time
	EndsAt   time.Time
}

func (p Period) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("period id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("period name is required")
	}
	if p.StartsAt.IsZero() || p.EndsAt.IsZero() {
		return fmt.Errorf("period start and end are required")
	}
	if p.EndsAt.Before(p.StartsAt) {
		return fmt.Errorf("period end must not precede start")
	}

	return nil
}

// Contains reports whether the timestamp falls within [StartsAt, EndsAt].
func (p Period) Contains(at time.Time) bool {
	return !at.Before(p.StartsAt) && !at.After(p.EndsAt)
}
