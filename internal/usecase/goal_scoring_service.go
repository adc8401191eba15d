package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"

	"github.com/Timsl1401/kosc-spitsenspel/internal/domain/goal"
	"github.com/Timsl1401/kosc-spitsenspel/internal/domain/player"
	"github.com/Timsl1401/kosc-spitsenspel/internal/domain/roster"
	"github.com/Timsl1401/kosc-spitsenspel/internal/domain/scoring"
	"github.com/Timsl1401/kosc-spitsenspel/internal/domain/team"
	"github.com/Timsl1401/kosc-spitsenspel/internal/platform/logging"
	"github.com/Timsl1401/kosc-spitsenspel/internal/platform/resilience"
)

const (
	defaultGoalWorkerCount = 4

	processGoalsFlightKey = "scoring:process"
)

// GoalScoringService turns unprocessed goals into scoring records: one
// record per user who owned the scoring player at the moment the goal fell,
// valued by the tariff in effect at processing time and captured onto the
// goal so later tariff edits never rewrite history.
type GoalScoringService struct {
	goalRepo    goal.Repository
	playerRepo  player.Repository
	teamRepo    team.Repository
	rosterRepo  roster.Repository
	scoringRepo scoring.Repository
	logger      *logging.Logger
	workers     int
	flight      resilience.SingleFlight
}

func NewGoalScoringService(
	goalRepo goal.Repository,
	playerRepo player.Repository,
	teamRepo team.Repository,
	rosterRepo roster.Repository,
	scoringRepo scoring.Repository,
	logger *logging.Logger,
	workers int,
) *GoalScoringService {
	if logger == nil {
		logger = logging.Default()
	}
	if workers <= 0 {
		workers = defaultGoalWorkerCount
	}

	return &GoalScoringService{
		goalRepo:    goalRepo,
		playerRepo:  playerRepo,
		teamRepo:    teamRepo,
		rosterRepo:  rosterRepo,
		scoringRepo: scoringRepo,
		logger:      logger,
		workers:     workers,
	}
}

// ProcessResult summarizes one scoring run.
type ProcessResult struct {
	Processed int
	Records   int
}

// ProcessUnscoredGoals attributes every goal that has not been scored yet.
// Goals are independent, so they run in parallel on a bounded worker pool;
// concurrent triggers coalesce into a single run. Safe to re-run at any
// time: already processed goals are skipped and record writes are
// conflict-free per (goal, user) pair.
func (s *GoalScoringService) ProcessUnscoredGoals(ctx context.Context) (ProcessResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GoalScoringService.ProcessUnscoredGoals")
	defer span.End()

	value, err, shared := s.flight.Do(processGoalsFlightKey, func() (any, error) {
		return s.processUnscoredGoals(ctx)
	})
	if err != nil {
		return ProcessResult{}, err
	}
	if shared {
		s.logger.DebugContext(ctx, "scoring run coalesced with in-flight run")
	}

	result, ok := value.(ProcessResult)
	if !ok {
		return ProcessResult{}, fmt.Errorf("%w: unexpected scoring run result type", ErrIntegrity)
	}

	return result, nil
}

func (s *GoalScoringService) processUnscoredGoals(ctx context.Context) (ProcessResult, error) {
	goals, err := s.goalRepo.ListUnprocessed(ctx)
	if err != nil {
		return ProcessResult{}, fmt.Errorf("list unprocessed goals: %w", err)
	}
	if len(goals) == 0 {
		return ProcessResult{}, nil
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return ProcessResult{}, fmt.Errorf("list teams: %w", err)
	}
	tariff := team.NewTariff(teams)

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return ProcessResult{}, fmt.Errorf("create scoring worker pool: %w", err)
	}
	defer pool.Release()

	var (
		wg        sync.WaitGroup
		processed atomic.Int64
		records   atomic.Int64

		errMu    sync.Mutex
		firstErr error
	)

	for _, g := range goals {
		g := g
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()

			count, err := s.scoreGoal(ctx, tariff, g)
			if err != nil {
				errMu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				errMu.Unlock()
				return
			}

			processed.Add(1)
			records.Add(int64(count))
		})
		if submitErr != nil {
			wg.Done()
			errMu.Lock()
			if firstErr == nil {
				firstErr = fmt.Errorf("submit goal %s: %w", g.ID, submitErr)
			}
			errMu.Unlock()
		}
	}
	wg.Wait()

	result := ProcessResult{
		Processed: int(processed.Load()),
		Records:   int(records.Load()),
	}

	if firstErr != nil {
		return result, firstErr
	}

	s.logger.InfoContext(ctx, "goals scored",
		"goals", result.Processed,
		"records", result.Records,
	)

	return result, nil
}

// scoreGoal attributes a single goal and returns how many users it paid out
// to. A goal nobody owned at the time still counts as processed, with zero
// records.
func (s *GoalScoringService) scoreGoal(ctx context.Context, tariff team.Tariff, g goal.Goal) (int, error) {
	scorer, exists, err := s.playerRepo.GetByID(ctx, g.PlayerID)
	if err != nil {
		return 0, fmt.Errorf("get scorer for goal %s: %w", g.ID, err)
	}
	if !exists {
		return 0, fmt.Errorf("%w: goal %s references unknown player %s", ErrIntegrity, g.ID, g.PlayerID)
	}

	points := tariff.PointsPerGoal(scorer.TeamID)

	owners, err := s.rosterRepo.ListOwnersAt(ctx, g.PlayerID, g.ScoredAt)
	if err != nil {
		return 0, fmt.Errorf("list owners for goal %s: %w", g.ID, err)
	}

	recs := make([]scoring.Record, 0, len(owners))
	for _, entry := range owners {
		rec := scoring.Record{
			GoalID:   g.ID,
			UserID:   entry.UserID,
			Points:   points,
			ScoredAt: g.ScoredAt,
		}
		if err := rec.Validate(); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrIntegrity, err)
		}
		recs = append(recs, rec)
	}

	if err := s.scoringRepo.ApplyGoal(ctx, g.ID, points, recs); err != nil {
		return 0, fmt.Errorf("apply goal %s: %w", g.ID, err)
	}

	return len(recs), nil
}
