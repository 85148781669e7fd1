package repository

import (
	"context"
	"sync"
	"time"

	"taskboard/internal/domain"
)

// MemoryUserRepository keeps users in process memory behind a mutex. It is
// the default backend when DATABASE_URL is not set and the one tests
// instantiate per case.
type MemoryUserRepository struct {
	mu         sync.RWMutex
	byID       map[int64]*domain.User
	byUsername map[string]*domain.User
	nextID     int64
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		byID:       make(map[int64]*domain.User),
		byUsername: make(map[string]*domain.User),
	}
}

func (r *MemoryUserRepository) Create(ctx context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byUsername[u.Username]; ok {
		return domain.ErrDuplicateUsername
	}

	r.nextID++
	u.ID = r.nextID
	u.CreatedAt = time.Now()

	stored := *u
	r.byID[stored.ID] = &stored
	r.byUsername[stored.Username] = &stored
	return nil
}

func (r *MemoryUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byUsername[username]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := *u
	return &out, nil
}

func (r *MemoryUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := *u
	return &out, nil
}
