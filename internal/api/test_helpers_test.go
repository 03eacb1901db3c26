package api_test

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/teodoragpaula1-maker/ADHDaily-backend/internal/api/shared"
)

func intPtr(v int) *int {
	return &v
}

// withUserID returns a context carrying the resolved user ID, mimicking
// what the identity middleware does.
func withUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, shared.UserIDContextKey, userID)
}

// withChiParam returns a context carrying a chi URL parameter, so handlers
// can be tested without routing through a full router.
func withChiParam(ctx context.Context, key, value string) context.Context {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return context.WithValue(ctx, chi.RouteCtxKey, rctx)
}
