package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Timsl1401/kosc-spitsenspel/internal/domain/roster"
)

type RosterRepository struct {
	mu    sync.RWMutex
	items map[string]roster.Entry

	lockMu    sync.Mutex
	userLocks map[string]*sync.Mutex
}

func NewRosterRepository(entries []roster.Entry) *RosterRepository {
	r := &RosterRepository{
		items:     make(map[string]roster.Entry, len(entries)),
		userLocks: make(map[string]*sync.Mutex),
	}
	for _, e := range entries {
		r.items[e.ID] = cloneEntry(e)
	}
	return r
}

// InUserTx serializes roster mutations per user with a dedicated mutex, so
// two concurrent buys for the same user run their precondition checks one
// after the other.
func (r *RosterRepository) InUserTx(ctx context.Context, userID string, fn func(ctx context.Context, store roster.TxStore) error) error {
	r.lockMu.Lock()
	lock, ok := r.userLocks[userID]
	if !ok {
		lock = &sync.Mutex{}
		r.userLocks[userID] = lock
	}
	r.lockMu.Unlock()

	lock.Lock()
	defer lock.Unlock()

	return fn(ctx, rosterTxStore{repo: r})
}

func (r *RosterRepository) ListOpenByUser(_ context.Context, userID string) ([]roster.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]roster.Entry, 0)
	for _, e := range r.items {
		if e.UserID == userID && e.Open() {
			out = append(out, cloneEntry(e))
		}
	}
	sortEntries(out)

	return out, nil
}

func (r *RosterRepository) ListByUserAt(_ context.Context, userID string, asOf time.Time) ([]roster.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]roster.Entry, 0)
	for _, e := range r.items {
		if e.UserID == userID && e.OwnedAt(asOf) {
			out = append(out, cloneEntry(e))
		}
	}
	sortEntries(out)

	return out, nil
}

func (r *RosterRepository) ListOwnersAt(_ context.Context, playerID string, at time.Time) ([]roster.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]roster.Entry, 0)
	for _, e := range r.items {
		if e.PlayerID == playerID && e.OwnedAt(at) {
			out = append(out, cloneEntry(e))
		}
	}
	sortEntries(out)

	return out, nil
}

func (r *RosterRepository) SumOpenValueByUser(_ context.Context) ([]roster.UserValue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byUser := make(map[string]int64)
	for _, e := range r.items {
		if e.Open() {
			byUser[e.UserID] += e.Price
		}
	}

	out := make([]roster.UserValue, 0, len(byUser))
	for userID, value := range byUser {
		out = append(out, roster.UserValue{UserID: userID, Value: value})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })

	return out, nil
}

func (r *RosterRepository) create(entry roster.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[entry.ID]; exists {
		return fmt.Errorf("roster entry %s already exists", entry.ID)
	}
	r.items[entry.ID] = cloneEntry(entry)

	return nil
}

func (r *RosterRepository) close(entryID string, soldAt time.Time, soldPrice int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.items[entryID]
	if !ok {
		return fmt.Errorf("roster entry %s not found", entryID)
	}
	if !e.Open() {
		return fmt.Errorf("roster entry %s is already closed", entryID)
	}

	e.SoldAt = &soldAt
	e.SoldPrice = &soldPrice
	r.items[entryID] = e

	return nil
}

type rosterTxStore struct {
	repo *RosterRepository
}

func (s rosterTxStore) ListOpenByUser(ctx context.Context, userID string) ([]roster.Entry, error) {
	return s.repo.ListOpenByUser(ctx, userID)
}

func (s rosterTxStore) CountPostDeadlineBuys(_ context.Context, userID string) (int, error) {
	s.repo.mu.RLock()
	defer s.repo.mu.RUnlock()

	count := 0
	for _, e := range s.repo.items {
		if e.UserID == userID && e.PostDeadline {
			count++
		}
	}

	return count, nil
}

func (s rosterTxStore) Create(_ context.Context, entry roster.Entry) error {
	return s.repo.create(entry)
}

func (s rosterTxStore) Close(_ context.Context, entryID string, soldAt time.Time, soldPrice int64) error {
	return s.repo.close(entryID, soldAt, soldPrice)
}

func sortEntries(entries []roster.Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].BoughtAt.Equal(entries[j].BoughtAt) {
			return entries[i].BoughtAt.Before(entries[j].BoughtAt)
		}
		return entries[i].ID < entries[j].ID
	})
}

func cloneEntry(e roster.Entry) roster.Entry {
	copied := e
	if e.SoldAt != nil {
		soldAt := *e.SoldAt
		copied.SoldAt = &soldAt
	}
	if e.SoldPrice != nil {
		soldPrice := *e.SoldPrice
		copied.SoldPrice = &soldPrice
	}
	return copied
}
