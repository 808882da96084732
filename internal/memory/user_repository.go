// Package memory provides mutex-guarded in-memory implementations of the
// domain repositories, used in single-instance mode and in tests.
package memory

import (
	"context"
	"sync"

	"github.com/Kyle5427/web-data-management-system/internal/domain"
)

// UserRepository implements domain.UserRepository backed by process memory.
type UserRepository struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]domain.User
	byName map[string]int64
}

func NewUserRepository() *UserRepository {
	r := &UserRepository{}
	r.reset()
	return r
}

func (r *UserRepository) reset() {
	r.nextID = 0
	r.byID = make(map[int64]domain.User)
	r.byName = make(map[string]int64)
}

// Reset discards all users. Test helper.
func (r *UserRepository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reset()
}

func (r *UserRepository) Create(_ context.Context, username, passwordHash string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[username]; exists {
		return nil, domain.ErrUsernameTaken
	}

	r.nextID++
	user := domain.User{
		ID:           r.nextID,
		Username:     username,
		PasswordHash: passwordHash,
	}
	r.byID[user.ID] = user
	r.byName[username] = user.ID
	return &user, nil
}

func (r *UserRepository) GetByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

func (r *UserRepository) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byName[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	user := r.byID[id]
	return &user, nil
}
