package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/Timsl1401/kosc-spitsenspel/internal/domain/roster"
	"github.com/Timsl1401/kosc-spitsenspel/internal/infrastructure/repository/memory"
	"github.com/Timsl1401/kosc-spitsenspel/internal/platform/logging"
)

func newRankingFixture(t *testing.T) (*RankingService, *GoalScoringService) {
	t.Helper()

	entries := []roster.Entry{
		{ID: "e-ans", UserID: "usr-ans", PlayerID: "pl-001", Price: 12000, BoughtAt: time.Date(2025, 8, 10, 9, 0, 0, 0, time.UTC)},
		{ID: "e-ben", UserID: "usr-ben", PlayerID: "pl-004", Price: 8000, BoughtAt: time.Date(2025, 9, 1, 9, 0, 0, 0, time.UTC)},
		{ID: "e-cor", UserID: "usr-cor", PlayerID: "pl-002", Price: 11000, BoughtAt: time.Date(2025, 8, 20, 9, 0, 0, 0, time.UTC)},
	}

	goalRepo := memory.NewGoalRepository(memory.SeedGoals())
	matchRepo := memory.NewMatchRepository(memory.SeedMatches())
	scoringRepo := memory.NewScoringRepository(goalRepo, matchRepo)
	rosterRepo := memory.NewRosterRepository(entries)

	scoringService := NewGoalScoringService(
		goalRepo,
		memory.NewPlayerRepository(memory.SeedPlayers()),
		memory.NewTeamRepository(memory.SeedTeams()),
		rosterRepo,
		scoringRepo,
		logging.NewNop(),
		4,
	)

	rankingService := NewRankingService(
		memory.NewPeriodRepository(memory.SeedPeriods()),
		memory.NewUserRepository(memory.SeedUsers()),
		rosterRepo,
		scoringRepo,
		memory.NewRankingRepository(),
		logging.NewNop(),
	)

	return rankingService, scoringService
}

func TestRankingService_RecomputeRanking(t *testing.T) {
	rankingService, scoringService := newRankingFixture(t)

	if _, err := scoringService.ProcessUnscoredGoals(t.Context()); err != nil {
		t.Fatalf("process goals failed: %v", err)
	}

	now := time.Date(2025, 10, 1, 8, 0, 0, 0, time.UTC)
	rows, err := rankingService.RecomputeRanking(t.Context(), "periode-1", now)
	if err != nil {
		t.Fatalf("recompute failed: %v", err)
	}

	// Ans: two KOSC 1 goals at 3 points. Cor: one competitive KOSC 1 goal;
	// the friendly goal by the same player does not count. Ben: one KOSC 2
	// goal at 2.5 points. Every registered user gets a row.
	want := []struct {
		userID string
		rank   int
		points float64
		value  int64
	}{
		{"usr-ans", 1, 6, 12000},
		{"usr-cor", 2, 3, 11000},
		{"usr-ben", 3, 2.5, 8000},
	}
	if len(rows) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(rows))
	}
	for i, w := range want {
		row := rows[i]
		if row.UserID != w.userID || row.Rank != w.rank || row.Points != w.points || row.RosterValue != w.value {
			t.Fatalf("row %d: expected %+v, got %+v", i, w, row)
		}
		if row.PeriodID != "periode-1" || !row.ComputedAt.Equal(now) {
			t.Fatalf("row %d: expected period periode-1 computed at %v, got %+v", i, now, row)
		}
	}

	stored, err := rankingService.GetRanking(t.Context(), "periode-1")
	if err != nil {
		t.Fatalf("get ranking failed: %v", err)
	}
	if len(stored) != len(rows) || stored[0].UserID != "usr-ans" {
		t.Fatalf("expected stored leaderboard to match computed rows, got %v", stored)
	}
}

func TestRankingService_ZeroPointPeriodBreaksTiesOnRosterValue(t *testing.T) {
	rankingService, scoringService := newRankingFixture(t)

	if _, err := scoringService.ProcessUnscoredGoals(t.Context()); err != nil {
		t.Fatalf("process goals failed: %v", err)
	}

	// No goal falls in periode-2, so everyone sits at zero points and the
	// cheaper roster wins.
	now := time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)
	rows, err := rankingService.RecomputeRanking(t.Context(), "periode-2", now)
	if err != nil {
		t.Fatalf("recompute failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	wantOrder := []string{"usr-ben", "usr-cor", "usr-ans"}
	for i, userID := range wantOrder {
		if rows[i].UserID != userID {
			t.Fatalf("position %d: expected %s, got %s", i+1, userID, rows[i].UserID)
		}
		if rows[i].Points != 0 {
			t.Fatalf("expected zero points in periode-2, got %v for %s", rows[i].Points, rows[i].UserID)
		}
	}
}

func TestRankingService_RecomputeAll(t *testing.T) {
	rankingService, scoringService := newRankingFixture(t)

	if _, err := scoringService.ProcessUnscoredGoals(t.Context()); err != nil {
		t.Fatalf("process goals failed: %v", err)
	}

	now := time.Date(2025, 10, 1, 8, 0, 0, 0, time.UTC)
	if err := rankingService.RecomputeAll(t.Context(), now); err != nil {
		t.Fatalf("recompute all failed: %v", err)
	}

	for _, periodID := range []string{"periode-1", "periode-2", "periode-3"} {
		rows, err := rankingService.GetRanking(t.Context(), periodID)
		if err != nil {
			t.Fatalf("get ranking for %s failed: %v", periodID, err)
		}
		if len(rows) != 3 {
			t.Fatalf("expected a full leaderboard for %s, got %d rows", periodID, len(rows))
		}
	}
}

func TestRankingService_UnknownPeriod(t *testing.T) {
	rankingService, _ := newRankingFixture(t)

	_, err := rankingService.RecomputeRanking(t.Context(), "periode-9", time.Date(2025, 10, 1, 8, 0, 0, 0, time.UTC))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	_, err = rankingService.GetRanking(t.Context(), "periode-9")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
