package transferwindow

import "time"

// Policy decides whether buy/sell actions are allowed at a given moment.
// Before the deadline transfers are always open. After it, transfers stay
// open on weekdays only, unless the weekend override is configured.
// All methods are pure functions of now; the wall clock is never read here.
type Policy struct {
	Deadline        time.Time
	WeekendOverride bool
}

func (p Policy) CanTransfer(now time.Time) bool {
	if !p.IsPostDeadline(now) {
		return true
	}
	if p.WeekendOverride {
		return true
	}

	return !isWeekend(now)
}

// IsPostDeadline reports whether the limited-transfers phase applies,
// i.e. whether the post-deadline buy cap must be checked.
func (p Policy) IsPostDeadline(now time.Time) bool {
	return now.After(p.Deadline)
}

func isWeekend(now time.Time) bool {
	switch now.Weekday() {
	case time.Saturday, time.Sunday:
		return true
	default:
		return false
	}
}
