// Package identity resolves an inbound opaque credential to the caller's
// user record. Requests without a credential fall back to a single shared
// demo identity, created lazily on first use; requests that do carry a
// credential are validated strictly and never silently demoted to the
// demo identity.
package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/teodoragpaula1-maker/ADHDaily-backend/internal/domain"
	"github.com/teodoragpaula1-maker/ADHDaily-backend/internal/platform/logger"
	"github.com/teodoragpaula1-maker/ADHDaily-backend/internal/service/auth"
	"github.com/teodoragpaula1-maker/ADHDaily-backend/internal/store"
)

// DemoEmail is the well-known address of the shared fallback identity used
// when no credential is presented.
const DemoEmail = "demo@adhdaily.local"

// ErrUnauthenticated indicates the supplied credential could not be mapped
// to an existing user: it was malformed, expired, or references an unknown
// identity.
var ErrUnauthenticated = errors.New("unauthenticated")

// Resolver maps bearer tokens to user records.
type Resolver struct {
	userStore    store.UserStore
	jwtService   auth.JWTService
	demoPassword string // pre-hashed credential stored on the lazily created demo user
	logger       *slog.Logger
}

// NewResolver creates a new Resolver with the given dependencies.
// demoHashedPassword is the already-hashed password assigned to the demo
// identity if this process is the one that ends up creating it.
// If logger is nil, a default logger will be used.
func NewResolver(
	userStore store.UserStore,
	jwtService auth.JWTService,
	demoHashedPassword string,
	logger *slog.Logger,
) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}

	return &Resolver{
		userStore:    userStore,
		jwtService:   jwtService,
		demoPassword: demoHashedPassword,
		logger:       logger.With(slog.String("component", "identity_resolver")),
	}
}

// Resolve maps the given token to an existing user.
// Returns ErrUnauthenticated if the token is empty, invalid, expired, or
// references a user that no longer exists.
func (r *Resolver) Resolve(ctx context.Context, token string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, r.logger)

	if token == "" {
		return nil, fmt.Errorf("%w: %v", ErrUnauthenticated, auth.ErrMissingToken)
	}

	claims, err := r.jwtService.ValidateToken(ctx, token)
	if err != nil {
		log.Debug("credential validation failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}

	user, err := r.userStore.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn("credential references unknown user",
				slog.String("user_id", claims.UserID.String()))
			return nil, fmt.Errorf("%w: user not found for credential", ErrUnauthenticated)
		}
		return nil, fmt.Errorf("failed to look up credential user: %w", err)
	}

	return user, nil
}

// ResolveOrDemo maps the given token to a user, falling back to the shared
// demo identity when no token is supplied. The demo identity is created on
// first use; the find-or-create is atomic in the store, so concurrent first
// requests observe exactly one demo user.
//
// A non-empty token is always validated strictly: a bad credential fails
// with ErrUnauthenticated rather than falling back, so callers cannot end
// up operating on the demo identity's tasks by accident.
func (r *Resolver) ResolveOrDemo(ctx context.Context, token string) (*domain.User, error) {
	if token != "" {
		return r.Resolve(ctx, token)
	}

	log := logger.FromContextOrDefault(ctx, r.logger)

	// The demo user carries only a hash, never a plaintext password, so it
	// is assembled directly rather than via NewUser.
	candidate := &domain.User{
		ID:             uuid.New(),
		Email:          DemoEmail,
		HashedPassword: r.demoPassword,
		CreatedAt:      time.Now().UTC(),
	}
	if err := candidate.Validate(); err != nil {
		return nil, fmt.Errorf("failed to build demo identity: %w", err)
	}

	user, err := r.userStore.GetOrCreateByEmail(ctx, candidate)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve demo identity: %w", err)
	}

	log.Debug("resolved demo identity", slog.String("user_id", user.ID.String()))
	return user, nil
}
