package domain

import "context"

// SessionRepository maps opaque session tokens to user identities.
// A user may hold any number of concurrent sessions.
type SessionRepository interface {
	// Create stores token -> userID. Tokens are generated by the caller
	// and must be cryptographically random.
	Create(ctx context.Context, token string, userID int64) error

	// Resolve returns the owning user id, or ErrSessionNotFound if the
	// token was never issued, was destroyed, or has expired.
	Resolve(ctx context.Context, token string) (int64, error)

	// Destroy removes a session. Destroying an absent session is not an error.
	Destroy(ctx context.Context, token string) error
}
