package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/teodoragpaula1-maker/ADHDaily-backend/internal/api/shared"
	"github.com/teodoragpaula1-maker/ADHDaily-backend/internal/domain"
	"github.com/teodoragpaula1-maker/ADHDaily-backend/internal/service/focus"
	"github.com/teodoragpaula1-maker/ADHDaily-backend/internal/service/task"
)

// TaskHandler handles task-related API requests.
type TaskHandler struct {
	taskManager   *task.Manager
	focusSelector *focus.Selector
	validator     *validator.Validate
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(taskManager *task.Manager, focusSelector *focus.Selector) *TaskHandler {
	return &TaskHandler{
		taskManager:   taskManager,
		focusSelector: focusSelector,
		validator:     validator.New(),
	}
}

// Create handles POST /tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "User ID not found or invalid")
		return
	}

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	created, err := h.taskManager.Create(r.Context(), userID, task.CreateParams{
		Title:      req.Title,
		Size:       domain.TaskSize(req.Size),
		Category:   req.Category,
		Importance: req.Importance,
		DueDate:    req.DueDate,
		Recurrence: domain.Recurrence(req.Recurrence),
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, NewTaskResponse(created))
}

// List handles GET /tasks. With no query parameters it returns the user's
// pending tasks, oldest first. ?status=completed switches to completed
// tasks, ?status=all to every task, and ?prioritized=true orders pending
// tasks by importance and due date instead.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "User ID not found or invalid")
		return
	}

	if r.URL.Query().Get("prioritized") == "true" {
		tasks, err := h.taskManager.ListPrioritized(r.Context(), userID)
		if err != nil {
			HandleAPIError(w, r, err, "")
			return
		}
		shared.RespondWithJSON(w, r, http.StatusOK, NewTaskListResponse(tasks))
		return
	}

	var (
		tasks []*domain.Task
		err   error
	)
	switch r.URL.Query().Get("status") {
	case "", "pending":
		tasks, err = h.taskManager.ListPending(r.Context(), userID)
	case "completed":
		tasks, err = h.taskManager.ListCompleted(r.Context(), userID)
	case "all":
		tasks, err = h.taskManager.ListAll(r.Context(), userID)
	default:
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid status filter")
		return
	}
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTaskListResponse(tasks))
}

// Completed handles GET /tasks/completed, most recently completed first.
func (h *TaskHandler) Completed(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "User ID not found or invalid")
		return
	}

	tasks, err := h.taskManager.ListCompleted(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTaskListResponse(tasks))
}

// Focus handles GET /tasks/focus: a fresh size-diverse selection of up to
// three pending tasks. Nothing is persisted; repeating the request may
// return a different selection.
func (h *TaskHandler) Focus(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "User ID not found or invalid")
		return
	}

	tasks, err := h.focusSelector.Select(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTaskListResponse(tasks))
}

// Complete handles POST /tasks/{id}/complete. Completing an already
// completed task succeeds again with the refreshed record.
func (h *TaskHandler) Complete(w http.ResponseWriter, r *http.Request) {
	userID, taskID, ok := handleUserIDAndTaskID(w, r)
	if !ok {
		return
	}

	completed, err := h.taskManager.Complete(r.Context(), taskID, userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTaskResponse(completed))
}

// Delete handles DELETE /tasks/{id}. Deletion is permanent.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, taskID, ok := handleUserIDAndTaskID(w, r)
	if !ok {
		return
	}

	if _, err := h.taskManager.Delete(r.Context(), taskID, userID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
