package ranking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestComputeTieBreakChain(t *testing.T) {
	early := time.Date(2024, 8, 1, 10, 0, 0, 0, time.UTC)
	late := time.Date(2024, 8, 20, 10, 0, 0, 0, time.UTC)

	aggregates := []UserAggregate{
		{UserID: "user-x", Points: 20, RosterValue: 45000, DistinctScorers: 4, RegisteredAt: early},
		{UserID: "user-y", Points: 20, RosterValue: 40000, DistinctScorers: 2, RegisteredAt: late},
		{UserID: "user-top", Points: 31.5, RosterValue: 49000, DistinctScorers: 5, RegisteredAt: late},
		{UserID: "user-scorers", Points: 20, RosterValue: 45000, DistinctScorers: 6, RegisteredAt: late},
		{UserID: "user-last", Points: 0, RosterValue: 10000, DistinctScorers: 0, RegisteredAt: early},
	}

	got := Compute(aggregates)
	require.Len(t, got, 5)

	order := make([]string, 0, len(got))
	for _, row := range got {
		order = append(order, row.UserID)
	}

	// Highest points first; equal points resolved by lower roster value,
	// then by more distinct scorers.
	require.Equal(t, []string{"user-top", "user-y", "user-scorers", "user-x", "user-last"}, order)

	for idx, row := range got {
		require.Equal(t, idx+1, row.Rank, "ranks must be dense and 1-based")
	}
}

func TestComputeRegistrationTieBreak(t *testing.T) {
	early := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	late := early.AddDate(0, 1, 0)

	got := Compute([]UserAggregate{
		{UserID: "late", Points: 10, RosterValue: 30000, DistinctScorers: 3, RegisteredAt: late},
		{UserID: "early", Points: 10, RosterValue: 30000, DistinctScorers: 3, RegisteredAt: early},
	})

	require.Equal(t, "early", got[0].UserID)
	require.Equal(t, "late", got[1].UserID)
}

func TestComputeDeterministic(t *testing.T) {
	registered := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	aggregates := []UserAggregate{
		{UserID: "b", Points: 5, RosterValue: 1000, RegisteredAt: registered},
		{UserID: "a", Points: 5, RosterValue: 1000, RegisteredAt: registered},
		{UserID: "c", Points: 7, RosterValue: 2000, RegisteredAt: registered},
	}

	first := Compute(aggregates)
	second := Compute(aggregates)
	require.Equal(t, first, second)

	// Fully tied users fall back to user id so no tie is left unresolved.
	require.Equal(t, "c", first[0].UserID)
	require.Equal(t, "a", first[1].UserID)
	require.Equal(t, "b", first[2].UserID)
}

func TestComputeEmpty(t *testing.T) {
	require.Empty(t, Compute(nil))
}
