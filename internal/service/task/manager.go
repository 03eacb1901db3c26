// Package task implements the task lifecycle: creation with defaults,
// listing in the documented orders, idempotent completion, and permanent
// deletion. All operations are scoped to a single owning user.
package task

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/teodoragpaula1-maker/ADHDaily-backend/internal/domain"
	"github.com/teodoragpaula1-maker/ADHDaily-backend/internal/platform/logger"
	"github.com/teodoragpaula1-maker/ADHDaily-backend/internal/store"
)

// CreateParams carries the caller-supplied fields of a new task. Unset
// fields fall back to the documented defaults: size tiny, category
// "general", importance 1, no due date, no recurrence. Importance is a
// pointer so an explicit zero is stored as zero rather than defaulted;
// it is a bare sort key with no valid range.
type CreateParams struct {
	Title      string
	Size       domain.TaskSize
	Category   string
	Importance *int
	DueDate    *time.Time
	Recurrence domain.Recurrence
}

// Manager coordinates task lifecycle operations against the task store.
type Manager struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewManager creates a new Manager backed by the given task store.
// If logger is nil, a default logger will be used.
func NewManager(taskStore store.TaskStore, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}

	return &Manager{
		taskStore: taskStore,
		logger:    logger.With(slog.String("component", "task_manager")),
	}
}

// Create builds a new pending task for the user and persists it. The
// store assigns the serial ID, written back into the returned task.
// Returns domain validation errors for an empty title or unknown size,
// category or recurrence values.
func (m *Manager) Create(ctx context.Context, userID uuid.UUID, params CreateParams) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, m.logger)

	size := params.Size
	if size == "" {
		size = domain.TaskSizeTiny
	}

	task, err := domain.NewTask(userID, params.Title, size)
	if err != nil {
		return nil, fmt.Errorf("invalid task: %w", err)
	}

	if params.Category != "" {
		task.Category = params.Category
	}
	if params.Importance != nil {
		task.Importance = *params.Importance
	}
	task.DueDate = params.DueDate
	if params.Recurrence != "" {
		if err := task.SetRecurrence(params.Recurrence); err != nil {
			return nil, fmt.Errorf("invalid task: %w", err)
		}
	}

	if err := m.taskStore.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	log.Debug("task created",
		slog.Int64("task_id", task.ID),
		slog.String("user_id", userID.String()),
		slog.String("size", string(task.Size)))

	return task, nil
}

// ListPending returns the user's pending tasks, oldest first.
func (m *Manager) ListPending(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error) {
	tasks, err := m.taskStore.ListByStatus(ctx, userID, domain.TaskStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending tasks: %w", err)
	}
	return tasks, nil
}

// ListCompleted returns the user's completed tasks, most recently
// completed first.
func (m *Manager) ListCompleted(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error) {
	tasks, err := m.taskStore.ListByStatus(ctx, userID, domain.TaskStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed tasks: %w", err)
	}
	return tasks, nil
}

// ListAll returns every task the user owns, ordered by ID.
func (m *Manager) ListAll(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error) {
	tasks, err := m.taskStore.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// ListPrioritized returns the user's pending tasks ordered by importance
// descending, then due date ascending with undated tasks last.
func (m *Manager) ListPrioritized(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error) {
	tasks, err := m.taskStore.ListPrioritized(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list prioritized tasks: %w", err)
	}
	return tasks, nil
}

// Complete marks the task completed and returns the updated record.
// Completing an already-completed task succeeds and re-stamps its update
// time, so retried requests are harmless.
// Returns store.ErrTaskNotFound if the user owns no such task.
func (m *Manager) Complete(ctx context.Context, id int64, userID uuid.UUID) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, m.logger)

	task, err := m.taskStore.Update(ctx, id, userID, func(t *domain.Task) error {
		t.Complete()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to complete task: %w", err)
	}

	log.Debug("task completed",
		slog.Int64("task_id", task.ID),
		slog.String("user_id", userID.String()))

	return task, nil
}

// Delete permanently removes the task and returns the removed record.
// There is no undo. Returns store.ErrTaskNotFound if the user owns no
// such task.
func (m *Manager) Delete(ctx context.Context, id int64, userID uuid.UUID) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, m.logger)

	task, err := m.taskStore.Delete(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete task: %w", err)
	}

	log.Debug("task deleted",
		slog.Int64("task_id", task.ID),
		slog.String("user_id", userID.String()))

	return task, nil
}
