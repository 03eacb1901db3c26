package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/teodoragpaula1-maker/ADHDaily-backend/internal/api/shared"
	"github.com/teodoragpaula1-maker/ADHDaily-backend/internal/service/identity"
)

// IdentityMiddleware resolves the caller for every request. Requests with
// a Bearer token are authenticated strictly; requests without one fall
// back to the shared demo identity.
type IdentityMiddleware struct {
	resolver *identity.Resolver
}

// NewIdentityMiddleware creates a new IdentityMiddleware with the given resolver.
func NewIdentityMiddleware(resolver *identity.Resolver) *IdentityMiddleware {
	return &IdentityMiddleware{
		resolver: resolver,
	}
}

// Resolve maps the request to a user and adds the user ID to the request
// context. A request with no Authorization header resolves to the demo
// identity; a request that does carry a token is rejected with 401 when the
// token is invalid, never silently demoted to the demo identity.
func (m *IdentityMiddleware) Resolve(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := extractBearerToken(r)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid authorization format")
			return
		}

		user, err := m.resolver.ResolveOrDemo(r.Context(), token)
		if err != nil {
			if errors.Is(err, identity.ErrUnauthenticated) {
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
				return
			}
			slog.Error("failed to resolve request identity", "error", err)
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			return
		}

		ctx := context.WithValue(r.Context(), shared.UserIDContextKey, user.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth behaves like Resolve but never falls back to the demo
// identity: requests without a token are rejected with 401. Used for
// endpoints that only make sense for a registered caller.
func (m *IdentityMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := extractBearerToken(r)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid authorization format")
			return
		}
		if token == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
			return
		}

		user, err := m.resolver.Resolve(r.Context(), token)
		if err != nil {
			if errors.Is(err, identity.ErrUnauthenticated) {
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
				return
			}
			slog.Error("failed to resolve request identity", "error", err)
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			return
		}

		ctx := context.WithValue(r.Context(), shared.UserIDContextKey, user.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// extractBearerToken returns the token from the Authorization header, or
// an empty string when the header is absent. A header that is present but
// not in "Bearer <token>" form is an error.
func extractBearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", nil
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", errors.New("malformed authorization header")
	}

	return parts[1], nil
}
