package transferwindow

import (
	"testing"
	"time"
)

func TestPolicyCanTransfer(t *testing.T) {
	deadline := time.Date(2024, 9, 1, 23, 59, 59, 0, time.UTC)

	// 2024-09-02 is a Monday, 2024-09-07 a Saturday, 2024-09-08 a Sunday.
	tests := []struct {
		name     string
		policy   Policy
		now      time.Time
		expected bool
	}{
		{
			name:     "before deadline weekday",
			policy:   Policy{Deadline: deadline},
			now:      time.Date(2024, 8, 15, 12, 0, 0, 0, time.UTC),
			expected: true,
		},
		{
			name:     "before deadline weekend",
			policy:   Policy{Deadline: deadline},
			now:      time.Date(2024, 8, 31, 12, 0, 0, 0, time.UTC),
			expected: true,
		},
		{
			name:     "exactly at deadline",
			policy:   Policy{Deadline: deadline},
			now:      deadline,
			expected: true,
		},
		{
			name:     "after deadline weekday",
			policy:   Policy{Deadline: deadline},
			now:      time.Date(2024, 9, 2, 10, 0, 0, 0, time.UTC),
			expected: true,
		},
		{
			name:     "after deadline saturday",
			policy:   Policy{Deadline: deadline},
			now:      time.Date(2024, 9, 7, 10, 0, 0, 0, time.UTC),
			expected: false,
		},
		{
			name:     "after deadline sunday",
			policy:   Policy{Deadline: deadline},
			now:      time.Date(2024, 9, 8, 10, 0, 0, 0, time.UTC),
			expected: false,
		},
		{
			name:     "after deadline weekend with override",
			policy:   Policy{Deadline: deadline, WeekendOverride: true},
			now:      time.Date(2024, 9, 8, 10, 0, 0, 0, time.UTC),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.policy.CanTransfer(tt.now); got != tt.expected {
				t.Fatalf("CanTransfer(%v) = %t, want %t", tt.now, got, tt.expected)
			}
		})
	}
}

func TestPolicyIsPostDeadline(t *testing.T) {
	deadline := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	policy := Policy{Deadline: deadline}

	if policy.IsPostDeadline(deadline) {
		t.Fatal("deadline itself must not count as post-deadline")
	}
	if !policy.IsPostDeadline(deadline.Add(time.Second)) {
		t.Fatal("one second past the deadline must count as post-deadline")
	}
}
