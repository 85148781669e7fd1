package repository

import (
	"context"
	"errors"

	"taskboard/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresTaskRepository struct {
	db *pgxpool.Pool
}

func NewPostgresTaskRepository(db *pgxpool.Pool) *PostgresTaskRepository {
	return &PostgresTaskRepository{db: db}
}

func (r *PostgresTaskRepository) Create(ctx context.Context, t *domain.Task) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO tasks (user_id, description, deadline, status, priority, notification_sent)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		t.UserID, t.Description, t.Deadline, t.Status, t.Priority, t.NotificationSent,
	).Scan(&t.ID, &t.CreatedAt)
}

func (r *PostgresTaskRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Task, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, description, deadline, status, priority, notification_sent, created_at
		 FROM tasks
		 WHERE user_id = $1
		 ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTasks(rows)
}

func (r *PostgresTaskRepository) GetByUserAndID(ctx context.Context, userID, id int64) (*domain.Task, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, description, deadline, status, priority, notification_sent, created_at
		 FROM tasks
		 WHERE user_id = $1 AND id = $2`,
		userID, id,
	)
	var t domain.Task
	if err := scanTask(row, &t); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *PostgresTaskRepository) MarkDone(ctx context.Context, userID, id int64) error {
	result, err := r.db.Exec(ctx,
		`UPDATE tasks SET status = $1, notification_sent = false
		 WHERE user_id = $2 AND id = $3`,
		domain.StatusDone, userID, id,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PostgresTaskRepository) Delete(ctx context.Context, userID, id int64) error {
	result, err := r.db.Exec(ctx,
		`DELETE FROM tasks WHERE user_id = $1 AND id = $2`,
		userID, id,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PostgresTaskRepository) ListUnnotified(ctx context.Context) ([]*domain.Task, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, description, deadline, status, priority, notification_sent, created_at
		 FROM tasks
		 WHERE status = $1 AND notification_sent = false
		 ORDER BY id`,
		domain.StatusInProgress,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTasks(rows)
}

func (r *PostgresTaskRepository) MarkNotified(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx,
		`UPDATE tasks SET notification_sent = true WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanTask(row pgx.Row, t *domain.Task) error {
	return row.Scan(
		&t.ID,
		&t.UserID,
		&t.Description,
		&t.Deadline,
		&t.Status,
		&t.Priority,
		&t.NotificationSent,
		&t.CreatedAt,
	)
}

func scanTasks(rows pgx.Rows) ([]*domain.Task, error) {
	var res []*domain.Task
	for rows.Next() {
		var t domain.Task
		if err := scanTask(rows, &t); err != nil {
			return nil, err
		}
		res = append(res, &t)
	}
	return res, rows.Err()
}
