package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/Timsl1401/kosc-spitsenspel/internal/domain/goal"
)

type GoalRepository struct {
	mu    sync.RWMutex
	items map[string]goal.Goal
}

func NewGoalRepository(goals []goal.Goal) *GoalRepository {
	r := &GoalRepository{items: make(map[string]goal.Goal, len(goals))}
	for _, g := range goals {
		r.items[g.ID] = g
	}
	return r
}

func (r *GoalRepository) ListUnprocessed(_ context.Context) ([]goal.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]goal.Goal, 0)
	for _, g := range r.items {
		if !g.PointsCalculated {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *GoalRepository) GetByID(_ context.Context, goalID string) (goal.Goal, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.items[goalID]
	if !ok {
		return goal.Goal{}, false, nil
	}

	return g, true, nil
}

// markProcessed captures the point value and flips the processed flag.
// Returns false when the goal was already processed.
func (r *GoalRepository) markProcessed(goalID string, points float64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.items[goalID]
	if !ok {
		return false, fmt.Errorf("goal %s not found", goalID)
	}
	if g.PointsCalculated {
		return false, nil
	}

	g.Points = points
	g.PointsCalculated = true
	r.items[goalID] = g

	return true, nil
}
