package usecase

import (
	"testing"
	"time"

	"github.com/Timsl1401/kosc-spitsenspel/internal/domain/roster"
	"github.com/Timsl1401/kosc-spitsenspel/internal/infrastructure/repository/memory"
	"github.com/Timsl1401/kosc-spitsenspel/internal/platform/logging"
)

func newScoringFixture(t *testing.T, entries []roster.Entry) (*GoalScoringService, *memory.GoalRepository, *memory.ScoringRepository) {
	t.Helper()

	goalRepo := memory.NewGoalRepository(memory.SeedGoals())
	matchRepo := memory.NewMatchRepository(memory.SeedMatches())
	scoringRepo := memory.NewScoringRepository(goalRepo, matchRepo)

	service := NewGoalScoringService(
		goalRepo,
		memory.NewPlayerRepository(memory.SeedPlayers()),
		memory.NewTeamRepository(memory.SeedTeams()),
		memory.NewRosterRepository(entries),
		scoringRepo,
		logging.NewNop(),
		4,
	)

	return service, goalRepo, scoringRepo
}

func TestGoalScoringService_AttributesToOwnersAtGoalTime(t *testing.T) {
	ansBought := time.Date(2025, 8, 10, 9, 0, 0, 0, time.UTC)
	benSold := time.Date(2025, 9, 7, 15, 0, 0, 0, time.UTC)
	benPrice := int64(12000)

	entries := []roster.Entry{
		// Ans holds pl-001 the whole season: both KOSC 1 goals pay out.
		{ID: "e-ans", UserID: "usr-ans", PlayerID: "pl-001", Price: 12000, BoughtAt: ansBought},
		// Ben sold pl-001 between the first and the second goal.
		{ID: "e-ben", UserID: "usr-ben", PlayerID: "pl-001", Price: 12000, BoughtAt: ansBought, SoldAt: &benSold, SoldPrice: &benPrice},
		// Cor owns pl-004 in KOSC 2.
		{ID: "e-cor", UserID: "usr-cor", PlayerID: "pl-004", Price: 8000, BoughtAt: time.Date(2025, 9, 1, 9, 0, 0, 0, time.UTC)},
	}
	service, goalRepo, scoringRepo := newScoringFixture(t, entries)

	result, err := service.ProcessUnscoredGoals(t.Context())
	if err != nil {
		t.Fatalf("process goals failed: %v", err)
	}
	if result.Processed != 6 {
		t.Fatalf("expected 6 goals processed, got %d", result.Processed)
	}
	// gl-001 pays Ans and Ben, gl-002 only Ans, gl-004 only Cor; the
	// remaining goals had no owners.
	if result.Records != 4 {
		t.Fatalf("expected 4 scoring records, got %d", result.Records)
	}

	g, ok, err := goalRepo.GetByID(t.Context(), "gl-001")
	if err != nil || !ok {
		t.Fatalf("get goal failed: ok=%v err=%v", ok, err)
	}
	if !g.PointsCalculated || g.Points != 3 {
		t.Fatalf("expected gl-001 captured at 3 points, got calculated=%v points=%v", g.PointsCalculated, g.Points)
	}

	from := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)

	ansRecords, err := scoringRepo.ListByUser(t.Context(), "usr-ans", from, to)
	if err != nil {
		t.Fatalf("list ans records failed: %v", err)
	}
	if len(ansRecords) != 2 {
		t.Fatalf("expected 2 records for usr-ans, got %d", len(ansRecords))
	}

	benRecords, err := scoringRepo.ListByUser(t.Context(), "usr-ben", from, to)
	if err != nil {
		t.Fatalf("list ben records failed: %v", err)
	}
	if len(benRecords) != 1 || benRecords[0].GoalID != "gl-001" {
		t.Fatalf("expected usr-ben to be paid for gl-001 only, got %v", benRecords)
	}

	corRecords, err := scoringRepo.ListByUser(t.Context(), "usr-cor", from, to)
	if err != nil {
		t.Fatalf("list cor records failed: %v", err)
	}
	if len(corRecords) != 1 || corRecords[0].Points != 2.5 {
		t.Fatalf("expected one 2.5 point record for usr-cor, got %v", corRecords)
	}
}

func TestGoalScoringService_Reprocessing_IsIdempotent(t *testing.T) {
	entries := []roster.Entry{
		{ID: "e-ans", UserID: "usr-ans", PlayerID: "pl-001", Price: 12000, BoughtAt: time.Date(2025, 8, 10, 9, 0, 0, 0, time.UTC)},
	}
	service, _, scoringRepo := newScoringFixture(t, entries)

	if _, err := service.ProcessUnscoredGoals(t.Context()); err != nil {
		t.Fatalf("first run failed: %v", err)
	}

	second, err := service.ProcessUnscoredGoals(t.Context())
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if second.Processed != 0 || second.Records != 0 {
		t.Fatalf("expected second run to be a no-op, got processed=%d records=%d", second.Processed, second.Records)
	}

	from := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	records, err := scoringRepo.ListByUser(t.Context(), "usr-ans", from, to)
	if err != nil {
		t.Fatalf("list records failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected records unchanged after second run, got %d", len(records))
	}
}

func TestGoalScoringService_GoalWithoutOwnersStillCompletes(t *testing.T) {
	service, goalRepo, _ := newScoringFixture(t, nil)

	result, err := service.ProcessUnscoredGoals(t.Context())
	if err != nil {
		t.Fatalf("process goals failed: %v", err)
	}
	if result.Processed != 6 || result.Records != 0 {
		t.Fatalf("expected 6 processed with 0 records, got processed=%d records=%d", result.Processed, result.Records)
	}

	unprocessed, err := goalRepo.ListUnprocessed(t.Context())
	if err != nil {
		t.Fatalf("list unprocessed failed: %v", err)
	}
	if len(unprocessed) != 0 {
		t.Fatalf("expected no unprocessed goals left, got %d", len(unprocessed))
	}
}

func TestGoalScoringService_TariffEditsNeverRewriteHistory(t *testing.T) {
	// The goal's point value is captured at processing time. Aggregations
	// read the records, so a later tariff change has no effect on goals
	// already paid out.
	entries := []roster.Entry{
		{ID: "e-ans", UserID: "usr-ans", PlayerID: "pl-001", Price: 12000, BoughtAt: time.Date(2025, 8, 10, 9, 0, 0, 0, time.UTC)},
	}
	service, goalRepo, scoringRepo := newScoringFixture(t, entries)

	if _, err := service.ProcessUnscoredGoals(t.Context()); err != nil {
		t.Fatalf("process goals failed: %v", err)
	}

	g, _, err := goalRepo.GetByID(t.Context(), "gl-002")
	if err != nil {
		t.Fatalf("get goal failed: %v", err)
	}
	if g.Points != 3 {
		t.Fatalf("expected captured value 3, got %v", g.Points)
	}

	totals, err := scoringRepo.AggregateByUser(t.Context(),
		time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatalf("aggregate failed: %v", err)
	}
	if len(totals) != 1 || totals[0].Points != 6 {
		t.Fatalf("expected usr-ans at 6 points, got %v", totals)
	}
}
