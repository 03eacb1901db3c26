package memstore

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teodoragpaula1-maker/ADHDaily-backend/internal/domain"
	"github.com/teodoragpaula1-maker/ADHDaily-backend/internal/store"
)

func newStoredUser(t *testing.T, email string) *domain.User {
	t.Helper()
	user := &domain.User{
		ID:             uuid.New(),
		Email:          email,
		HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
	}
	require.NoError(t, user.Validate())
	return user
}

func TestUserStoreCreateAndGet(t *testing.T) {
	t.Parallel()
	s := NewUserStore(nil)
	ctx := context.Background()

	user := newStoredUser(t, "alice@example.com")
	require.NoError(t, s.Create(ctx, user))

	byID, err := s.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, byID.Email)

	byEmail, err := s.GetByEmail(ctx, user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	_, err = s.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, store.ErrUserNotFound)

	_, err = s.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserStoreDuplicateEmail(t *testing.T) {
	t.Parallel()
	s := NewUserStore(nil)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, newStoredUser(t, "taken@example.com")))

	err := s.Create(ctx, newStoredUser(t, "taken@example.com"))
	assert.ErrorIs(t, err, store.ErrEmailExists)
}

func TestUserStoreGetOrCreateByEmail(t *testing.T) {
	t.Parallel()
	s := NewUserStore(nil)
	ctx := context.Background()

	candidate := newStoredUser(t, "demo@adhdaily.local")
	created, err := s.GetOrCreateByEmail(ctx, candidate)
	require.NoError(t, err)
	assert.Equal(t, candidate.ID, created.ID)

	// A second call with a fresh candidate returns the original record.
	again, err := s.GetOrCreateByEmail(ctx, newStoredUser(t, "demo@adhdaily.local"))
	require.NoError(t, err)
	assert.Equal(t, candidate.ID, again.ID)
}

func TestUserStoreGetOrCreateByEmailConcurrent(t *testing.T) {
	t.Parallel()
	s := NewUserStore(nil)
	ctx := context.Background()

	const callers = 20
	results := make(chan uuid.UUID, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			user, err := s.GetOrCreateByEmail(ctx, newStoredUser(t, "demo@adhdaily.local"))
			require.NoError(t, err)
			results <- user.ID
		}()
	}
	wg.Wait()
	close(results)

	// Exactly one identity was created; every caller observed it.
	ids := make(map[uuid.UUID]bool)
	for id := range results {
		ids[id] = true
	}
	assert.Len(t, ids, 1, "concurrent first callers must observe a single demo identity")
}

func TestUserStoreNeverReturnsPlaintextPassword(t *testing.T) {
	t.Parallel()
	s := NewUserStore(nil)
	ctx := context.Background()

	user := newStoredUser(t, "secret@example.com")
	user.Password = "plaintext-should-not-be-stored"
	require.NoError(t, s.Create(ctx, user))

	got, err := s.GetByEmail(ctx, user.Email)
	require.NoError(t, err)
	assert.Empty(t, got.Password)
	assert.NotEmpty(t, got.HashedPassword)
}
