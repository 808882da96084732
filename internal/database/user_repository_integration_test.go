package database

import (
	"context"
	"testing"

	"github.com/Kyle5427/web-data-management-system/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreateAndLookup(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewUserRepository(pool)
	ctx := context.Background()

	created, err := repo.Create(ctx, "alice", "bcrypt-hash")
	require.NoError(t, err)
	assert.Positive(t, created.ID)

	byName, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)
	assert.Equal(t, "bcrypt-hash", byName.PasswordHash)

	byID, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)
}

func TestUserCreate_DuplicateUsername(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewUserRepository(pool)
	ctx := context.Background()

	_, err := repo.Create(ctx, "alice", "hash-a")
	require.NoError(t, err)

	_, err = repo.Create(ctx, "alice", "hash-b")
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)

	// Case-sensitive uniqueness.
	_, err = repo.Create(ctx, "Alice", "hash-c")
	assert.NoError(t, err)
}

func TestUserLookup_NotFound(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewUserRepository(pool)
	ctx := context.Background()

	_, err := repo.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = repo.GetByID(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
