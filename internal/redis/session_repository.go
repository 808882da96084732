package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Kyle5427/web-data-management-system/internal/domain"
	"github.com/redis/go-redis/v9"
)

// Key schema:
//   session:{token} — string → user id, optional TTL

func sessionKey(token string) string {
	return "session:" + token
}

// SessionRepository implements domain.SessionRepository backed by Redis.
// Expiry is delegated to key TTL; ttl of zero stores keys without expiry.
type SessionRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSessionRepository(client *Client, ttl time.Duration) *SessionRepository {
	return &SessionRepository{rdb: client.rdb, ttl: ttl}
}

func (r *SessionRepository) Create(ctx context.Context, token string, userID int64) error {
	if err := r.rdb.Set(ctx, sessionKey(token), userID, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Resolve(ctx context.Context, token string) (int64, error) {
	result, err := r.rdb.Get(ctx, sessionKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, domain.ErrSessionNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to resolve session: %w", err)
	}

	userID, err := strconv.ParseInt(result, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse session user id: %w", err)
	}
	return userID, nil
}

func (r *SessionRepository) Destroy(ctx context.Context, token string) error {
	if err := r.rdb.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}
