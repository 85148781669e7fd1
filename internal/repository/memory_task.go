package repository

import (
	"context"
	"slices"
	"sync"
	"time"

	"taskboard/internal/domain"
)

// MemoryTaskRepository keeps tasks in process memory behind a mutex.
// Insertion order is preserved for listings. IDs come from a counter that
// only ever grows, so an id is never reused after a delete.
type MemoryTaskRepository struct {
	mu     sync.RWMutex
	tasks  map[int64]*domain.Task
	order  []int64
	nextID int64
}

func NewMemoryTaskRepository() *MemoryTaskRepository {
	return &MemoryTaskRepository{
		tasks: make(map[int64]*domain.Task),
	}
}

func (r *MemoryTaskRepository) Create(ctx context.Context, t *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	t.ID = r.nextID
	t.CreatedAt = time.Now()

	stored := *t
	r.tasks[stored.ID] = &stored
	r.order = append(r.order, stored.ID)
	return nil
}

func (r *MemoryTaskRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var res []*domain.Task
	for _, id := range r.order {
		t := r.tasks[id]
		if t.UserID != userID {
			continue
		}
		out := *t
		res = append(res, &out)
	}
	return res, nil
}

func (r *MemoryTaskRepository) GetByUserAndID(ctx context.Context, userID, id int64) (*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tasks[id]
	if !ok || t.UserID != userID {
		return nil, domain.ErrNotFound
	}
	out := *t
	return &out, nil
}

func (r *MemoryTaskRepository) MarkDone(ctx context.Context, userID, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	if !ok || t.UserID != userID {
		return domain.ErrNotFound
	}
	t.Status = domain.StatusDone
	t.NotificationSent = false
	return nil
}

func (r *MemoryTaskRepository) Delete(ctx context.Context, userID, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	if !ok || t.UserID != userID {
		return domain.ErrNotFound
	}
	delete(r.tasks, id)
	if i := slices.Index(r.order, id); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}
	return nil
}

func (r *MemoryTaskRepository) ListUnnotified(ctx context.Context) ([]*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var res []*domain.Task
	for _, id := range r.order {
		t := r.tasks[id]
		if t.Status != domain.StatusInProgress || t.NotificationSent {
			continue
		}
		out := *t
		res = append(res, &out)
	}
	return res, nil
}

func (r *MemoryTaskRepository) MarkNotified(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	if !ok {
		return domain.ErrNotFound
	}
	t.NotificationSent = true
	return nil
}
