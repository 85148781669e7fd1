package domain

import "time"

// Task status values as they appear on the wire. The product strings are
// French and kept verbatim for client compatibility.
const (
	StatusInProgress = "En cours"
	StatusDone       = "Terminé"
)

type Task struct {
	ID               int64     `db:"id" json:"id"`
	UserID           int64     `db:"user_id" json:"user_id"`
	Description      string    `db:"description" json:"desc"`
	Deadline         string    `db:"deadline" json:"deadline"`
	Status           string    `db:"status" json:"status"`
	Priority         string    `db:"priority" json:"priority"`
	NotificationSent bool      `db:"notification_sent" json:"notification_sent"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}
