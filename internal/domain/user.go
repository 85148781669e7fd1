package domain

import "time"

type User struct {
	ID           int64     `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Identity is the claim set a bearer token carries. It is what the auth
// gate injects into the request context after verification.
type Identity struct {
	ID       int64
	Username string
}
