package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/Timsl1401/kosc-spitsenspel/internal/domain/useraccount"
)

type UserRepository struct {
	mu    sync.RWMutex
	items map[string]useraccount.User
}

func NewUserRepository(users []useraccount.User) *UserRepository {
	r := &UserRepository{items: make(map[string]useraccount.User, len(users))}
	for _, u := range users {
		r.items[u.ID] = u
	}
	return r
}

func (r *UserRepository) List(_ context.Context) ([]useraccount.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]useraccount.User, 0, len(r.items))
	for _, u := range r.items {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *UserRepository) GetByID(_ context.Context, userID string) (useraccount.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.items[userID]
	if !ok {
		return useraccount.User{}, false, nil
	}

	return u, true, nil
}
