package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Kyle5427/web-data-management-system/internal/domain"
	"github.com/jonboulle/clockwork"
)

type sessionEntry struct {
	userID    int64
	expiresAt time.Time // zero means no expiry
}

// SessionRepository implements domain.SessionRepository backed by process
// memory. Expiry is checked lazily on Resolve against the injected clock;
// ttl of zero disables expiry.
type SessionRepository struct {
	mu      sync.Mutex
	clock   clockwork.Clock
	ttl     time.Duration
	byToken map[string]sessionEntry
}

func NewSessionRepository(clock clockwork.Clock, ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		clock:   clock,
		ttl:     ttl,
		byToken: make(map[string]sessionEntry),
	}
}

// Reset discards all sessions. Test helper.
func (r *SessionRepository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byToken = make(map[string]sessionEntry)
}

func (r *SessionRepository) Create(_ context.Context, token string, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := sessionEntry{userID: userID}
	if r.ttl > 0 {
		entry.expiresAt = r.clock.Now().Add(r.ttl)
	}
	r.byToken[token] = entry
	return nil
}

func (r *SessionRepository) Resolve(_ context.Context, token string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.byToken[token]
	if !ok {
		return 0, domain.ErrSessionNotFound
	}
	if !entry.expiresAt.IsZero() && r.clock.Now().After(entry.expiresAt) {
		delete(r.byToken, token)
		return 0, domain.ErrSessionNotFound
	}
	return entry.userID, nil
}

func (r *SessionRepository) Destroy(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byToken, token)
	return nil
}
