package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/Timsl1401/kosc-spitsenspel/internal/domain/roster"
	"github.com/Timsl1401/kosc-spitsenspel/internal/domain/transferwindow"
	"github.com/Timsl1401/kosc-spitsenspel/internal/infrastructure/repository/memory"
	idgen "github.com/Timsl1401/kosc-spitsenspel/internal/platform/id"
	"github.com/Timsl1401/kosc-spitsenspel/internal/platform/logging"
	"github.com/Timsl1401/kosc-spitsenspel/internal/usecase"
)

const testJobToken = "test-job-token"

func newTestRouter(t *testing.T, entries []roster.Entry) http.Handler {
	t.Helper()

	goalRepo := memory.NewGoalRepository(memory.SeedGoals())
	matchRepo := memory.NewMatchRepository(memory.SeedMatches())
	scoringRepo := memory.NewScoringRepository(goalRepo, matchRepo)
	rosterRepo := memory.NewRosterRepository(entries)
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	userRepo := memory.NewUserRepository(memory.SeedUsers())
	periodRepo := memory.NewPeriodRepository(memory.SeedPeriods())
	rankingRepo := memory.NewRankingRepository()

	logger := logging.NewNop()

	// Deadline far ahead so the window stays open while the test runs.
	policy := transferwindow.Policy{Deadline: time.Date(2099, 6, 30, 23, 59, 59, 0, time.UTC)}

	transferService := usecase.NewTransferService(rosterRepo, playerRepo, userRepo, policy, roster.DefaultRules(), idgen.NewRandomGenerator(), logger)
	scoringService := usecase.NewGoalScoringService(goalRepo, playerRepo, teamRepo, rosterRepo, scoringRepo, logger, 4)
	rankingService := usecase.NewRankingService(periodRepo, userRepo, rosterRepo, scoringRepo, rankingRepo, logger)
	teamService := usecase.NewTeamService(teamRepo)
	playerService := usecase.NewPlayerService(playerRepo)

	handler := NewHandler(transferService, scoringService, rankingService, teamService, playerService, logger)

	return NewRouter(handler, logger, []string{"*"}, testJobToken)
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var body struct {
		Data T `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	return body.Data
}

func TestRouter_BuyAndRoster(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/transfers/buy", strings.NewReader(`{"playerId":"pl-007","price":5000}`))
	req.Header.Set("X-User-ID", "usr-ans")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	result := decodeData[transferResultDTO](t, rec)
	if !result.OK || result.Entry == nil || result.Entry.PlayerID != "pl-007" {
		t.Fatalf("expected successful buy of pl-007, got %+v", result)
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/roster", nil)
	req.Header.Set("X-User-ID", "usr-ans")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	rosterBody := decodeData[rosterDTO](t, rec)
	if len(rosterBody.Players) != 1 || rosterBody.Players[0].ID != "pl-007" {
		t.Fatalf("expected roster [pl-007], got %+v", rosterBody.Players)
	}
}

func TestRouter_BuyRejectionIsHTTP200(t *testing.T) {
	entries := []roster.Entry{
		{ID: "e-1", UserID: "usr-ans", PlayerID: "pl-007", Price: 5000, BoughtAt: time.Date(2025, 8, 10, 9, 0, 0, 0, time.UTC)},
	}
	router := newTestRouter(t, entries)

	req := httptest.NewRequest(http.MethodPost, "/v1/transfers/buy", strings.NewReader(`{"playerId":"pl-007","price":5000}`))
	req.Header.Set("X-User-ID", "usr-ans")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("rejections are results, not errors: expected 200, got %d", rec.Code)
	}
	result := decodeData[transferResultDTO](t, rec)
	if result.OK || result.Reason != "alreadyOwned" {
		t.Fatalf("expected alreadyOwned rejection, got %+v", result)
	}
}

func TestRouter_TransfersRequireUserHeader(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/transfers/buy", strings.NewReader(`{"playerId":"pl-007","price":5000}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestRouter_ScoreGoalsAndRankings(t *testing.T) {
	entries := []roster.Entry{
		{ID: "e-ans", UserID: "usr-ans", PlayerID: "pl-001", Price: 12000, BoughtAt: time.Date(2025, 8, 10, 9, 0, 0, 0, time.UTC)},
	}
	router := newTestRouter(t, entries)

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/score-goals", nil)
	req.Header.Set("X-Internal-Job-Token", testJobToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("score goals job: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	counts := decodeData[map[string]int](t, rec)
	if counts["goalsProcessed"] != 6 {
		t.Fatalf("expected 6 goals processed, got %d", counts["goalsProcessed"])
	}

	req = httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/recompute-rankings?period_id=periode-1", nil)
	req.Header.Set("X-Internal-Job-Token", testJobToken)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("recompute job: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/rankings/periode-1", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("get ranking: expected 200, got %d", rec.Code)
	}
	rows := decodeData[[]rankingRowDTO](t, rec)
	if len(rows) != 3 {
		t.Fatalf("expected a full leaderboard of 3, got %d", len(rows))
	}
	if rows[0].UserID != "usr-ans" || rows[0].Points != 6 {
		t.Fatalf("expected usr-ans leading with 6 points, got %+v", rows[0])
	}
}

func TestRouter_JobsRejectMissingToken(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/score-goals", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestRouter_Catalog(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/teams", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("list teams: expected 200, got %d", rec.Code)
	}
	teams := decodeData[[]teamDTO](t, rec)
	if len(teams) != 3 {
		t.Fatalf("expected 3 teams, got %d", len(teams))
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/players/pl-001", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("get player: expected 200, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/players/nope", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown player: expected 404, got %d", rec.Code)
	}
}
