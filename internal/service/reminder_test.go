package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"taskboard/internal/domain"
	"taskboard/internal/repository"
)

type fakeMailer struct {
	sent []string
	fail bool
}

func (m *fakeMailer) SendReminder(to string, task *domain.Task) error {
	if m.fail {
		return errors.New("mail gateway down")
	}
	m.sent = append(m.sent, to)
	return nil
}

func newReminderFixture(t *testing.T) (*ReminderService, *repository.MemoryUserRepository, *repository.MemoryTaskRepository, *fakeMailer) {
	t.Helper()
	users := repository.NewMemoryUserRepository()
	tasks := repository.NewMemoryTaskRepository()
	mailer := &fakeMailer{}
	return NewReminderService(tasks, users, mailer, time.Minute), users, tasks, mailer
}

func addTask(t *testing.T, tasks *repository.MemoryTaskRepository, userID int64, deadline string) *domain.Task {
	t.Helper()
	task := &domain.Task{
		UserID:      userID,
		Description: "buy milk",
		Deadline:    deadline,
		Status:      domain.StatusInProgress,
		Priority:    "normal",
	}
	if err := tasks.Create(context.Background(), task); err != nil {
		t.Fatalf("creating task: %v", err)
	}
	return task
}

func TestSweepMailsOverdueTasksOnce(t *testing.T) {
	svc, users, tasks, mailer := newReminderFixture(t)
	ctx := context.Background()

	user := &domain.User{Username: "alice@example.com", PasswordHash: "x"}
	if err := users.Create(ctx, user); err != nil {
		t.Fatalf("creating user: %v", err)
	}

	overdue := addTask(t, tasks, user.ID, "2000-01-02")
	addTask(t, tasks, user.ID, "2999-01-02") // not due yet
	addTask(t, tasks, user.ID, "someday")    // unparsable, never reminds

	svc.sweep(ctx)

	if len(mailer.sent) != 1 || mailer.sent[0] != "alice@example.com" {
		t.Fatalf("sent = %v, want one mail to alice@example.com", mailer.sent)
	}

	got, err := tasks.GetByUserAndID(ctx, user.ID, overdue.ID)
	if err != nil {
		t.Fatalf("GetByUserAndID: %v", err)
	}
	if !got.NotificationSent {
		t.Error("overdue task not marked notified")
	}

	// Already-notified tasks stay quiet on the next sweep.
	svc.sweep(ctx)
	if len(mailer.sent) != 1 {
		t.Fatalf("second sweep sent again: %v", mailer.sent)
	}
}

func TestSweepRetriesFailedSends(t *testing.T) {
	svc, users, tasks, mailer := newReminderFixture(t)
	ctx := context.Background()

	user := &domain.User{Username: "alice@example.com", PasswordHash: "x"}
	if err := users.Create(ctx, user); err != nil {
		t.Fatalf("creating user: %v", err)
	}
	task := addTask(t, tasks, user.ID, "2000-01-02")

	mailer.fail = true
	svc.sweep(ctx)

	got, err := tasks.GetByUserAndID(ctx, user.ID, task.ID)
	if err != nil {
		t.Fatalf("GetByUserAndID: %v", err)
	}
	if got.NotificationSent {
		t.Fatal("failed send must leave the task unnotified")
	}

	mailer.fail = false
	svc.sweep(ctx)
	if len(mailer.sent) != 1 {
		t.Fatalf("sent = %v, want one mail after retry", mailer.sent)
	}
}

func TestSweepSkipsOwnersWithoutAddress(t *testing.T) {
	svc, users, tasks, mailer := newReminderFixture(t)
	ctx := context.Background()

	user := &domain.User{Username: "alice", PasswordHash: "x"}
	if err := users.Create(ctx, user); err != nil {
		t.Fatalf("creating user: %v", err)
	}
	task := addTask(t, tasks, user.ID, "2000-01-02")

	svc.sweep(ctx)

	if len(mailer.sent) != 0 {
		t.Fatalf("sent = %v, want none for a username without an address", mailer.sent)
	}
	got, err := tasks.GetByUserAndID(ctx, user.ID, task.ID)
	if err != nil {
		t.Fatalf("GetByUserAndID: %v", err)
	}
	if !got.NotificationSent {
		t.Error("unreachable owner's task must still be flagged to stop rescanning")
	}
}

func TestSweepIgnoresCompletedTasks(t *testing.T) {
	svc, users, tasks, mailer := newReminderFixture(t)
	ctx := context.Background()

	user := &domain.User{Username: "alice@example.com", PasswordHash: "x"}
	if err := users.Create(ctx, user); err != nil {
		t.Fatalf("creating user: %v", err)
	}
	task := addTask(t, tasks, user.ID, "2000-01-02")
	if err := tasks.MarkDone(ctx, user.ID, task.ID); err != nil {
		t.Fatalf("MarkDone: %v", err)
	}

	svc.sweep(ctx)

	if len(mailer.sent) != 0 {
		t.Fatalf("sent = %v, want none for completed tasks", mailer.sent)
	}
}
