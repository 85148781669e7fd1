package service

import (
	"context"
	"strings"
	"time"

	"taskboard/internal/logger"
	"taskboard/internal/repository"
)

// deadlineLayout is the date format reminders understand. Deadlines are
// free-form strings; anything that does not parse never triggers a mail.
const deadlineLayout = "2006-01-02"

// ReminderService periodically mails owners of overdue tasks that have not
// been notified yet. Send failures are logged and retried on the next
// sweep; a delivered (or undeliverable) reminder flips the task's
// notification flag so it is not picked up again.
type ReminderService struct {
	tasks    repository.TaskRepository
	users    repository.UserRepository
	mailer   Mailer
	interval time.Duration
}

func NewReminderService(tasks repository.TaskRepository, users repository.UserRepository, mailer Mailer, interval time.Duration) *ReminderService {
	return &ReminderService{
		tasks:    tasks,
		users:    users,
		mailer:   mailer,
		interval: interval,
	}
}

// Run sweeps on a fixed interval until the context is cancelled.
func (s *ReminderService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *ReminderService) sweep(ctx context.Context) {
	tasks, err := s.tasks.ListUnnotified(ctx)
	if err != nil {
		logger.Error("reminder: listing tasks failed", "error", err)
		return
	}

	now := time.Now()
	for _, task := range tasks {
		due, err := time.Parse(deadlineLayout, task.Deadline)
		if err != nil || due.After(now) {
			continue
		}

		user, err := s.users.GetByID(ctx, task.UserID)
		if err != nil {
			logger.Error("reminder: owner lookup failed", "task_id", task.ID, "error", err)
			continue
		}

		// Usernames are not required to be addresses. Tasks whose owner
		// is unreachable are still flagged so they do not rescan forever.
		if strings.Contains(user.Username, "@") {
			if err := s.mailer.SendReminder(user.Username, task); err != nil {
				logger.Error("reminder: send failed", "task_id", task.ID, "error", err)
				continue
			}
			logger.Info("reminder sent", "task_id", task.ID, "user_id", user.ID)
		}

		if err := s.tasks.MarkNotified(ctx, task.ID); err != nil {
			logger.Error("reminder: marking task failed", "task_id", task.ID, "error", err)
		}
	}
}
