package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/teodoragpaula1-maker/ADHDaily-backend/internal/api"
	"github.com/teodoragpaula1-maker/ADHDaily-backend/internal/domain"
	"github.com/teodoragpaula1-maker/ADHDaily-backend/internal/service/auth"
	"github.com/teodoragpaula1-maker/ADHDaily-backend/internal/service/identity"
	"github.com/teodoragpaula1-maker/ADHDaily-backend/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid token", err: auth.ErrInvalidToken, want: http.StatusUnauthorized},
		{name: "expired token", err: auth.ErrExpiredToken, want: http.StatusUnauthorized},
		{name: "unauthenticated", err: identity.ErrUnauthenticated, want: http.StatusUnauthorized},
		{name: "task not found", err: store.ErrTaskNotFound, want: http.StatusNotFound},
		{name: "user not found", err: store.ErrUserNotFound, want: http.StatusNotFound},
		{name: "email exists", err: store.ErrEmailExists, want: http.StatusConflict},
		{name: "invalid entity", err: store.ErrInvalidEntity, want: http.StatusBadRequest},
		{name: "invalid id", err: domain.ErrInvalidID, want: http.StatusBadRequest},
		{name: "empty title", err: domain.ErrEmptyTaskTitle, want: http.StatusBadRequest},
		{name: "invalid size", err: domain.ErrInvalidTaskSize, want: http.StatusBadRequest},
		{name: "unknown error", err: errors.New("boom"), want: http.StatusInternalServerError},
		{
			name: "wrapped task not found",
			err:  fmt.Errorf("failed to complete task: %w", store.ErrTaskNotFound),
			want: http.StatusNotFound,
		},
		{
			name: "wrapped unauthenticated",
			err:  fmt.Errorf("%w: %v", identity.ErrUnauthenticated, auth.ErrExpiredToken),
			want: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, api.MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil error", err: nil, want: "An unexpected error occurred"},
		{name: "task not found", err: store.ErrTaskNotFound, want: "Task not found"},
		{name: "email exists", err: store.ErrEmailExists, want: "Email already exists"},
		{name: "expired token", err: auth.ErrExpiredToken, want: "Token expired"},
		{name: "invalid token", err: auth.ErrInvalidToken, want: "Invalid token"},
		{name: "invalid task data", err: domain.ErrInvalidTaskSize, want: "Invalid task data"},
		{name: "unknown error stays generic", err: errors.New("pq: secret detail"), want: "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, api.GetSafeErrorMessage(tt.err))
		})
	}
}

func TestGetSafeErrorMessageNeverEchoesInternals(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("dial tcp 10.0.0.5:5432: connect: connection refused")
	msg := api.GetSafeErrorMessage(err)
	assert.NotContains(t, msg, "10.0.0.5")
	assert.NotContains(t, msg, "5432")
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	err := errors.New(
		"Key: 'RegisterRequest.Email' Error:Field validation for 'Email' failed on the 'required' tag",
	)
	assert.Equal(t, "Invalid Email: required field", api.SanitizeValidationError(err))

	assert.Equal(t, "Validation error", api.SanitizeValidationError(errors.New("weird error")))
}
