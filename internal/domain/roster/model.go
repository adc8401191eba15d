package roster

import (
	"fmt"
	"time"
)

// Entry records one ownership interval of one player by one user.
// Selling never deletes the row; it only closes the interval, so scoring
// can attribute goals to whoever owned the player when they were scored.
type Entry struct {
	ID           string
	UserID       string
	PlayerID     string
	Price        int64
	BoughtAt     time.Time
	SoldAt       *time.Time
	SoldPrice    *int64
	PostDeadline bool
}

// Open reports whether the player is currently owned through this entry.
func (e Entry) Open() bool {
	return e.SoldAt == nil
}

// OwnedAt reports whether this entry covers the given moment:
// bought at or before it, and not yet sold (or sold strictly after it).
func (e Entry) OwnedAt(at time.Time) bool {
	if e.BoughtAt.After(at) {
		return false
	}

	return e.SoldAt == nil || e.SoldAt.After(at)
}

func (e Entry) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("roster entry id is required")
	}
	if e.UserID == "" {
		return fmt.Errorf("roster entry user id is required")
	}
	if e.PlayerID == "" {
		return fmt.Errorf("roster entry player id is required")
	}
	if e.Price <= 0 {
		return fmt.Errorf("roster entry price must be greater than zero")
	}
	if e.BoughtAt.IsZero() {
		return fmt.Errorf("roster entry bought at is required")
	}
	if e.SoldAt != nil && e.SoldAt.Before(e.BoughtAt) {
		return fmt.Errorf("roster entry sold at must not precede bought at")
	}

	return nil
}

// TotalValue sums the acquisition prices of the given entries.
func TotalValue(entries []Entry) int64 {
	var total int64
	for _, entry := range entries {
		total += entry.Price
	}

	return total
}
