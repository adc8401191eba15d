package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/Timsl1401/kosc-spitsenspel/internal/domain/ranking"
)

type RankingRepository struct {
	mu       sync.RWMutex
	byPeriod map[string][]ranking.Snapshot
}

func NewRankingRepository() *RankingRepository {
	return &RankingRepository{byPeriod: make(map[string][]ranking.Snapshot)}
}

func (r *RankingRepository) ReplaceByPeriod(_ context.Context, periodID string, rows []ranking.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byPeriod[periodID] = append([]ranking.Snapshot(nil), rows...)

	return nil
}

func (r *RankingRepository) ListByPeriod(_ context.Context, periodID string) ([]ranking.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := append([]ranking.Snapshot(nil), r.byPeriod[periodID]...)
	sort.Slice(rows, func(i, j int) bool { return rows[i].Rank < rows[j].Rank })

	return rows, nil
}
