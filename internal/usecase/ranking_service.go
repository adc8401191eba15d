package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/Timsl1401/kosc-spitsenspel/internal/domain/period"
	"github.com/Timsl1401/kosc-spitsenspel/internal/domain/ranking"
	"github.com/Timsl1401/kosc-spitsenspel/internal/domain/roster"
	"github.com/Timsl1401/kosc-spitsenspel/internal/domain/scoring"
	"github.com/Timsl1401/kosc-spitsenspel/internal/domain/useraccount"
	"github.com/Timsl1401/kosc-spitsenspel/internal/platform/logging"
)

// RankingService recomputes and serves per-period leaderboards. A
// recomputation is a full rebuild from the scoring records and the roster
// ledger; the stored snapshot set is replaced wholesale, so a crashed run
// leaves the previous leaderboard intact.
type RankingService struct {
	periodRepo  period.Repository
	userRepo    useraccount.Repository
	rosterRepo  roster.Repository
	scoringRepo scoring.Repository
	rankingRepo ranking.Repository
	logger      *logging.Logger
}

func NewRankingService(
	periodRepo period.Repository,
	userRepo useraccount.Repository,
	rosterRepo roster.Repository,
	scoringRepo scoring.Repository,
	rankingRepo ranking.Repository,
	logger *logging.Logger,
) *RankingService {
	if logger == nil {
		logger = logging.Default()
	}

	return &RankingService{
		periodRepo:  periodRepo,
		userRepo:    userRepo,
		rosterRepo:  rosterRepo,
		scoringRepo: scoringRepo,
		rankingRepo: rankingRepo,
		logger:      logger,
	}
}

// RecomputeRanking rebuilds the leaderboard of one period. Every registered
// user gets a row, including users with zero points, so the leaderboard is
// always the full participant list.
func (s *RankingService) RecomputeRanking(ctx context.Context, periodID string, now time.Time) ([]ranking.Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.RecomputeRanking")
	defer span.End()

	periodID = strings.TrimSpace(periodID)
	if periodID == "" {
		return nil, fmt.Errorf("%w: period id is required", ErrInvalidInput)
	}
	if now.IsZero() {
		return nil, fmt.Errorf("%w: computation time is required", ErrInvalidInput)
	}

	p, exists, err := s.periodRepo.GetByID(ctx, periodID)
	if err != nil {
		return nil, fmt.Errorf("get period: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: period=%s", ErrNotFound, periodID)
	}

	rows, err := s.computePeriod(ctx, p, now)
	if err != nil {
		return nil, err
	}

	if err := s.rankingRepo.ReplaceByPeriod(ctx, p.ID, rows); err != nil {
		return nil, fmt.Errorf("replace ranking snapshots: %w", err)
	}

	s.logger.InfoContext(ctx, "ranking recomputed",
		"period_id", p.ID,
		"rows", len(rows),
	)

	return rows, nil
}

// RecomputeAll rebuilds every period's leaderboard, fanning out one goroutine
// per period. Periods are independent so a failure in one does not stop the
// others; the first error is reported after all complete.
func (s *RankingService) RecomputeAll(ctx context.Context, now time.Time) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.RecomputeAll")
	defer span.End()

	if now.IsZero() {
		return fmt.Errorf("%w: computation time is required", ErrInvalidInput)
	}

	periods, err := s.periodRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("list periods: %w", err)
	}

	wp := pool.New().WithContext(ctx).WithFirstError()
	for _, p := range periods {
		p := p
		wp.Go(func(ctx context.Context) error {
			rows, err := s.computePeriod(ctx, p, now)
			if err != nil {
				return err
			}
			if err := s.rankingRepo.ReplaceByPeriod(ctx, p.ID, rows); err != nil {
				return fmt.Errorf("replace ranking snapshots for period %s: %w", p.ID, err)
			}
			return nil
		})
	}
	if err := wp.Wait(); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "all rankings recomputed", "periods", len(periods))

	return nil
}

// GetRanking returns the stored leaderboard of a period in rank order.
func (s *RankingService) GetRanking(ctx context.Context, periodID string) ([]ranking.Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.GetRanking")
	defer span.End()

	periodID = strings.TrimSpace(periodID)
	if periodID == "" {
		return nil, fmt.Errorf("%w: period id is required", ErrInvalidInput)
	}

	if _, exists, err := s.periodRepo.GetByID(ctx, periodID); err != nil {
		return nil, fmt.Errorf("get period: %w", err)
	} else if !exists {
		return nil, fmt.Errorf("%w: period=%s", ErrNotFound, periodID)
	}

	rows, err := s.rankingRepo.ListByPeriod(ctx, periodID)
	if err != nil {
		return nil, fmt.Errorf("list ranking snapshots: %w", err)
	}

	return rows, nil
}

// ListPeriods returns all aggregation windows.
func (s *RankingService) ListPeriods(ctx context.Context) ([]period.Period, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.ListPeriods")
	defer span.End()

	periods, err := s.periodRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list periods: %w", err)
	}

	return periods, nil
}

func (s *RankingService) computePeriod(ctx context.Context, p period.Period, now time.Time) ([]ranking.Snapshot, error) {
	totals, err := s.scoringRepo.AggregateByUser(ctx, p.StartsAt, p.EndsAt)
	if err != nil {
		return nil, fmt.Errorf("aggregate scoring for period %s: %w", p.ID, err)
	}

	values, err := s.rosterRepo.SumOpenValueByUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("sum roster values: %w", err)
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	totalsByUser := make(map[string]scoring.UserTotals, len(totals))
	for _, t := range totals {
		totalsByUser[t.UserID] = t
	}
	valueByUser := make(map[string]int64, len(values))
	for _, v := range values {
		valueByUser[v.UserID] = v.Value
	}

	aggregates := make([]ranking.UserAggregate, 0, len(users))
	for _, u := range users {
		t := totalsByUser[u.ID]
		aggregates = append(aggregates, ranking.UserAggregate{
			UserID:          u.ID,
			Points:          t.Points,
			RosterValue:     valueByUser[u.ID],
			DistinctScorers: t.DistinctScorers,
			RegisteredAt:    u.RegisteredAt,
		})
	}

	rows := ranking.Compute(aggregates)
	for i := range rows {
		rows[i].PeriodID = p.ID
		rows[i].ComputedAt = now
	}

	return rows, nil
}
