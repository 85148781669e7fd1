package repository

import (
	"context"

	"taskboard/internal/domain"
)

// UserRepository stores registered users. Usernames are unique; users are
// never updated or deleted once created.
type UserRepository interface {
	// Create stores a new user and assigns its ID. Returns
	// domain.ErrDuplicateUsername when the username is already taken.
	Create(ctx context.Context, u *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// TaskRepository stores tasks. Every lookup and mutation is scoped by the
// owning user id: a task belonging to another user is indistinguishable
// from one that does not exist.
type TaskRepository interface {
	// Create stores a new task and assigns its ID.
	Create(ctx context.Context, t *domain.Task) error
	// ListByUser returns the user's tasks in insertion order, all statuses.
	ListByUser(ctx context.Context, userID int64) ([]*domain.Task, error)
	GetByUserAndID(ctx context.Context, userID, id int64) (*domain.Task, error)
	// MarkDone sets the task's status to done and clears its notification
	// flag. Calling it again on a done task is a no-op apart from the flag.
	MarkDone(ctx context.Context, userID, id int64) error
	Delete(ctx context.Context, userID, id int64) error

	// ListUnnotified returns in-progress tasks whose owner has not been
	// reminded yet. Whether a task is actually due is the reminder
	// service's call, since deadlines are free-form strings.
	ListUnnotified(ctx context.Context) ([]*domain.Task, error)
	MarkNotified(ctx context.Context, id int64) error
}
