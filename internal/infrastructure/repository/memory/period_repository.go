package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/Timsl1401/kosc-spitsenspel/internal/domain/period"
)

type PeriodRepository struct {
	mu    sync.RWMutex
	items map[string]period.Period
}

func NewPeriodRepository(periods []period.Period) *PeriodRepository {
	r := &PeriodRepository{items: make(map[string]period.Period, len(periods))}
	for _, p := range periods {
		r.items[p.ID] = p
	}
	return r
}

func (r *PeriodRepository) List(_ context.Context) ([]period.Period, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]period.Period, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartsAt.Before(out[j].StartsAt) })

	return out, nil
}

func (r *PeriodRepository) GetByID(_ context.Context, periodID string) (period.Period, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[periodID]
	if !ok {
		return period.Period{}, false, nil
	}

	return p, true, nil
}
