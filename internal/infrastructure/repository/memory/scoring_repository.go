package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Timsl1401/kosc-spitsenspel/internal/domain/scoring"
)

type ScoringRepository struct {
	mu      sync.RWMutex
	records map[string]scoring.Record

	goals   *GoalRepository
	matches *MatchRepository
}

func NewScoringRepository(goals *GoalRepository, matches *MatchRepository) *ScoringRepository {
	return &ScoringRepository{
		records: make(map[string]scoring.Record),
		goals:   goals,
		matches: matches,
	}
}

// ApplyGoal marks the goal processed and stores its records. The processed
// flag is the guard: once flipped, re-application is a no-op, so a goal is
// paid out at most once no matter how often a scoring run sees it.
func (r *ScoringRepository) ApplyGoal(_ context.Context, goalID string, points float64, records []scoring.Record) error {
	applied, err := r.goals.markProcessed(goalID, points)
	if err != nil {
		return err
	}
	if !applied {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range records {
		key := recordKey(rec.GoalID, rec.UserID)
		if _, exists := r.records[key]; exists {
			continue
		}
		r.records[key] = rec
	}

	return nil
}

func (r *ScoringRepository) AggregateByUser(ctx context.Context, from, to time.Time) ([]scoring.UserTotals, error) {
	r.mu.RLock()
	recs := make([]scoring.Record, 0, len(r.records))
	for _, rec := range r.records {
		recs = append(recs, rec)
	}
	r.mu.RUnlock()

	type userAgg struct {
		points  float64
		scorers map[string]struct{}
	}
	byUser := make(map[string]*userAgg)

	for _, rec := range recs {
		if rec.ScoredAt.Before(from) || rec.ScoredAt.After(to) {
			continue
		}

		competitive, scorerID, err := r.goalContext(ctx, rec.GoalID)
		if err != nil {
			return nil, err
		}
		if !competitive {
			continue
		}

		agg, ok := byUser[rec.UserID]
		if !ok {
			agg = &userAgg{scorers: make(map[string]struct{})}
			byUser[rec.UserID] = agg
		}
		agg.points += rec.Points
		agg.scorers[scorerID] = struct{}{}
	}

	out := make([]scoring.UserTotals, 0, len(byUser))
	for userID, agg := range byUser {
		out = append(out, scoring.UserTotals{
			UserID:          userID,
			Points:          agg.points,
			DistinctScorers: len(agg.scorers),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })

	return out, nil
}

func (r *ScoringRepository) ListByUser(_ context.Context, userID string, from, to time.Time) ([]scoring.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]scoring.Record, 0)
	for _, rec := range r.records {
		if rec.UserID != userID {
			continue
		}
		if rec.ScoredAt.Before(from) || rec.ScoredAt.After(to) {
			continue
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].ScoredAt.Equal(out[j].ScoredAt) {
			return out[i].ScoredAt.Before(out[j].ScoredAt)
		}
		return out[i].GoalID < out[j].GoalID
	})

	return out, nil
}

// goalContext resolves a record's goal to its match competitiveness and the
// scoring player.
func (r *ScoringRepository) goalContext(ctx context.Context, goalID string) (bool, string, error) {
	g, ok, err := r.goals.GetByID(ctx, goalID)
	if err != nil {
		return false, "", err
	}
	if !ok {
		return false, "", fmt.Errorf("scoring record references unknown goal %s", goalID)
	}

	m, ok, err := r.matches.GetByID(ctx, g.MatchID)
	if err != nil {
		return false, "", err
	}
	if !ok {
		return false, "", fmt.Errorf("goal %s references unknown match %s", goalID, g.MatchID)
	}

	return m.Competitive, g.PlayerID, nil
}

func recordKey(goalID, userID string) string {
	return goalID + "::" + userID
}
