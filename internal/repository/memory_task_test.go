package repository

import (
	"context"
	"errors"
	"testing"

	"taskboard/internal/domain"
)

func newTask(userID int64, desc string) *domain.Task {
	return &domain.Task{
		UserID:      userID,
		Description: desc,
		Deadline:    "2024-01-01",
		Status:      domain.StatusInProgress,
		Priority:    "normal",
	}
}

func TestMemoryTaskIDsAreNotReusedAfterDelete(t *testing.T) {
	r := NewMemoryTaskRepository()
	ctx := context.Background()

	first := newTask(1, "first")
	if err := r.Create(ctx, first); err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.ID != 1 {
		t.Fatalf("first id = %d, want 1", first.ID)
	}

	if err := r.Delete(ctx, 1, first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	second := newTask(1, "second")
	if err := r.Create(ctx, second); err != nil {
		t.Fatalf("create: %v", err)
	}
	if second.ID != 2 {
		t.Fatalf("id after delete = %d, want 2 (ids must never be reused)", second.ID)
	}
}

func TestMemoryTaskListPreservesInsertionOrder(t *testing.T) {
	r := NewMemoryTaskRepository()
	ctx := context.Background()

	for _, desc := range []string{"one", "two", "three"} {
		if err := r.Create(ctx, newTask(1, desc)); err != nil {
			t.Fatalf("create %q: %v", desc, err)
		}
	}

	tasks, err := r.ListByUser(ctx, 1)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("len = %d, want 3", len(tasks))
	}
	for i, want := range []string{"one", "two", "three"} {
		if tasks[i].Description != want {
			t.Errorf("tasks[%d] = %q, want %q", i, tasks[i].Description, want)
		}
	}
}

func TestMemoryTaskOwnershipScoping(t *testing.T) {
	r := NewMemoryTaskRepository()
	ctx := context.Background()

	aliceTask := newTask(1, "alice's task")
	if err := r.Create(ctx, aliceTask); err != nil {
		t.Fatalf("create: %v", err)
	}

	// To user 2, user 1's task is indistinguishable from a missing one.
	if tasks, _ := r.ListByUser(ctx, 2); len(tasks) != 0 {
		t.Errorf("ListByUser(2) = %v, want empty", tasks)
	}
	if _, err := r.GetByUserAndID(ctx, 2, aliceTask.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetByUserAndID: got %v, want ErrNotFound", err)
	}
	if err := r.MarkDone(ctx, 2, aliceTask.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("MarkDone: got %v, want ErrNotFound", err)
	}
	if err := r.Delete(ctx, 2, aliceTask.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Delete: got %v, want ErrNotFound", err)
	}

	// The owner still sees it untouched.
	got, err := r.GetByUserAndID(ctx, 1, aliceTask.ID)
	if err != nil {
		t.Fatalf("owner lookup: %v", err)
	}
	if got.Status != domain.StatusInProgress {
		t.Errorf("status = %q, want %q", got.Status, domain.StatusInProgress)
	}
}

func TestMemoryTaskMarkDoneIsIdempotent(t *testing.T) {
	r := NewMemoryTaskRepository()
	ctx := context.Background()

	task := newTask(1, "task")
	if err := r.Create(ctx, task); err != nil {
		t.Fatalf("create: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := r.MarkNotified(ctx, task.ID); err != nil {
			t.Fatalf("MarkNotified: %v", err)
		}
		if err := r.MarkDone(ctx, 1, task.ID); err != nil {
			t.Fatalf("MarkDone #%d: %v", i+1, err)
		}

		got, err := r.GetByUserAndID(ctx, 1, task.ID)
		if err != nil {
			t.Fatalf("lookup: %v", err)
		}
		if got.Status != domain.StatusDone {
			t.Errorf("status = %q, want %q", got.Status, domain.StatusDone)
		}
		if got.NotificationSent {
			t.Error("MarkDone must reset the notification flag")
		}
	}
}

func TestMemoryTaskDeleteRemoves(t *testing.T) {
	r := NewMemoryTaskRepository()
	ctx := context.Background()

	task := newTask(1, "task")
	if err := r.Create(ctx, task); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := r.Delete(ctx, 1, task.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := r.GetByUserAndID(ctx, 1, task.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("lookup after delete: got %v, want ErrNotFound", err)
	}
	if err := r.Delete(ctx, 1, task.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second delete: got %v, want ErrNotFound", err)
	}
}

func TestMemoryTaskListUnnotified(t *testing.T) {
	r := NewMemoryTaskRepository()
	ctx := context.Background()

	pending := newTask(1, "pending")
	done := newTask(1, "done")
	flagged := newTask(1, "flagged")
	for _, task := range []*domain.Task{pending, done, flagged} {
		if err := r.Create(ctx, task); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	if err := r.MarkDone(ctx, 1, done.ID); err != nil {
		t.Fatalf("MarkDone: %v", err)
	}
	if err := r.MarkNotified(ctx, flagged.ID); err != nil {
		t.Fatalf("MarkNotified: %v", err)
	}

	tasks, err := r.ListUnnotified(ctx)
	if err != nil {
		t.Fatalf("ListUnnotified: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != pending.ID {
		t.Fatalf("ListUnnotified = %v, want only the pending task", tasks)
	}
}
