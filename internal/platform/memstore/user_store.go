package memstore

import (
	"context"
	"database/sql"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/teodoragpaula1-maker/ADHDaily-backend/internal/domain"
	"github.com/teodoragpaula1-maker/ADHDaily-backend/internal/store"
)

// UserStore implements store.UserStore with an in-memory map arena.
type UserStore struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]*domain.User
	byEmail map[string]uuid.UUID
	logger  *slog.Logger
}

// NewUserStore creates an empty in-memory user store.
// If logger is nil, a default logger will be used.
func NewUserStore(logger *slog.Logger) *UserStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &UserStore{
		byID:    make(map[uuid.UUID]*domain.User),
		byEmail: make(map[string]uuid.UUID),
		logger:  logger.With(slog.String("component", "user_store")),
	}
}

// Ensure UserStore implements store.UserStore interface
var _ store.UserStore = (*UserStore)(nil)

// Create implements store.UserStore.Create
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[user.Email]; exists {
		return store.ErrEmailExists
	}
	if _, exists := s.byID[user.ID]; exists {
		return store.ErrDuplicate
	}

	s.byID[user.ID] = cloneUser(user)
	s.byEmail[user.Email] = user.ID

	s.logger.Debug("user created",
		slog.String("user_id", user.ID.String()),
		slog.String("email", user.Email))
	return nil
}

// GetByID implements store.UserStore.GetByID
func (s *UserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byID[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return cloneUser(user), nil
}

// GetByEmail implements store.UserStore.GetByEmail
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byEmail[email]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return cloneUser(s.byID[id]), nil
}

// GetOrCreateByEmail implements store.UserStore.GetOrCreateByEmail.
// The whole find-or-create runs under the store lock, so concurrent callers
// racing on the same email observe exactly one created user.
func (s *UserStore) GetOrCreateByEmail(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := user.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.byEmail[user.Email]; ok {
		return cloneUser(s.byID[id]), nil
	}

	s.byID[user.ID] = cloneUser(user)
	s.byEmail[user.Email] = user.ID

	s.logger.Debug("user lazily created",
		slog.String("user_id", user.ID.String()),
		slog.String("email", user.Email))
	return cloneUser(user), nil
}

// WithTx implements store.UserStore.WithTx. The memory engine has no
// transactions; the store itself serializes every operation.
func (s *UserStore) WithTx(tx *sql.Tx) store.UserStore {
	return s
}

// cloneUser returns a copy of the user so callers cannot mutate stored
// state through returned pointers. The plaintext password never enters the
// arena.
func cloneUser(user *domain.User) *domain.User {
	clone := *user
	clone.Password = ""
	return &clone
}
