package domain

import "errors"

// Client-facing error taxonomy. Handlers match these with errors.Is and map
// them to 400/401/404; anything else is an unexpected failure and becomes a
// logged 500.
var (
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrNotFound           = errors.New("not found")
)
