package useraccount

import (
	"fmt"
	"time"
)

// User is a participant identity as the core needs it: a stable identifier
// plus the registration timestamp used as the final ranking tie-break.
type User struct {
	ID           string
	Name         string
	RegisteredAt time.Time
}

func (u User) Validate() error {
	if u.ID == "" {
		return fmt.Errorf("user id is required")
	}
	if u.Name == "" {
		return fmt.Errorf("user name is required")
	}
	if u.RegisteredAt.IsZero() {
		return fmt.Errorf("user registered at is required")
	}

	return nil
}
