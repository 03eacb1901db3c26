package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/teodoragpaula1-maker/ADHDaily-backend/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store. The user must already carry a
	// hashed password; plaintext passwords never reach the store layer.
	// Returns ErrEmailExists if the email is already taken.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// GetOrCreateByEmail returns the user with the given email, inserting
	// the provided record first if no such user exists. The operation is
	// atomic with respect to concurrent callers: when several requests race
	// to create the same email, exactly one row is created and every caller
	// observes it. Used to lazily provision the shared demo identity.
	GetOrCreateByEmail(ctx context.Context, user *domain.User) (*domain.User, error)

	// WithTx returns a new UserStore instance that uses the provided transaction.
	// This allows for multiple operations to be executed within a single
	// transaction. The transaction should be created and managed by the caller.
	WithTx(tx *sql.Tx) UserStore
}
