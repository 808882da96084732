package domain

import "context"

// User is a registered account. PasswordHash is a one-way bcrypt digest,
// never the raw password. Users are immutable after creation.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
}

type UserRepository interface {
	// Create persists a new user with a monotonically assigned id.
	// Returns ErrUsernameTaken if the username exists (case-sensitive).
	Create(ctx context.Context, username, passwordHash string) (*User, error)

	// GetByID returns ErrUserNotFound if no such user exists.
	GetByID(ctx context.Context, id int64) (*User, error)

	// GetByUsername looks up by exact byte-for-byte match, no normalization.
	// Returns ErrUserNotFound if no such user exists.
	GetByUsername(ctx context.Context, username string) (*User, error)
}
