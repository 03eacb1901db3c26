package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/teodoragpaula1-maker/ADHDaily-backend/internal/api/shared"
	"github.com/teodoragpaula1-maker/ADHDaily-backend/internal/domain"
)

// getUserIDFromContext extracts the resolved user's UUID from the request
// context, placed there by the identity middleware.
func getUserIDFromContext(r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}

// getPathTaskID extracts and parses the task ID from the URL path.
// Task IDs are positive serial integers.
func getPathTaskID(r *http.Request) (int64, error) {
	pathParam := chi.URLParam(r, "id")
	if pathParam == "" {
		return 0, fmt.Errorf("%w: task ID is required", domain.ErrInvalidID)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: task ID must be a positive integer", domain.ErrInvalidID)
	}

	return id, nil
}

// handleUserIDAndTaskID extracts the user ID from the context and the task
// ID from the path, writing an error response if either fails.
// Returns false when a response has already been written.
func handleUserIDAndTaskID(w http.ResponseWriter, r *http.Request) (uuid.UUID, int64, bool) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "User ID not found or invalid")
		return uuid.Nil, 0, false
	}

	taskID, err := getPathTaskID(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return uuid.Nil, 0, false
	}

	return userID, taskID, true
}
