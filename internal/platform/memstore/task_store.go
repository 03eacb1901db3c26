package memstore

import (
	"context"
	"database/sql"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/teodoragpaula1-maker/ADHDaily-backend/internal/domain"
	"github.com/teodoragpaula1-maker/ADHDaily-backend/internal/store"
)

// TaskStore implements store.TaskStore with an in-memory map arena keyed
// by task ID. A single mutex serializes every operation, which also makes
// the id counter duplicate-free under concurrent creates.
type TaskStore struct {
	mu     sync.Mutex
	tasks  map[int64]*domain.Task
	nextID int64
	logger *slog.Logger
}

// NewTaskStore creates an empty in-memory task store.
// If logger is nil, a default logger will be used.
func NewTaskStore(logger *slog.Logger) *TaskStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskStore{
		tasks:  make(map[int64]*domain.Task),
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure TaskStore implements store.TaskStore interface
var _ store.TaskStore = (*TaskStore)(nil)

// Create implements store.TaskStore.Create
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	task.ID = s.nextID
	s.tasks[task.ID] = cloneTask(task)

	s.logger.Debug("task created",
		slog.Int64("task_id", task.ID),
		slog.String("user_id", task.UserID.String()))
	return nil
}

// GetByID implements store.TaskStore.GetByID
func (s *TaskStore) GetByID(ctx context.Context, id int64, userID uuid.UUID) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok || task.UserID != userID {
		return nil, store.ErrTaskNotFound
	}
	return cloneTask(task), nil
}

// ListByStatus implements store.TaskStore.ListByStatus
func (s *TaskStore) ListByStatus(
	ctx context.Context,
	userID uuid.UUID,
	status domain.TaskStatus,
) ([]*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := s.collect(userID, func(t *domain.Task) bool {
		return t.Status == status
	})

	if status == domain.TaskStatusCompleted {
		// History view: most recently completed first.
		sort.Slice(tasks, func(i, j int) bool {
			if !tasks[i].UpdatedAt.Equal(tasks[j].UpdatedAt) {
				return tasks[i].UpdatedAt.After(tasks[j].UpdatedAt)
			}
			return tasks[i].ID > tasks[j].ID
		})
	} else {
		// Focus view: oldest first.
		sort.Slice(tasks, func(i, j int) bool {
			if !tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
				return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
			}
			return tasks[i].ID < tasks[j].ID
		})
	}

	return tasks, nil
}

// List implements store.TaskStore.List
func (s *TaskStore) List(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := s.collect(userID, func(*domain.Task) bool { return true })
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks, nil
}

// ListPrioritized implements store.TaskStore.ListPrioritized
func (s *TaskStore) ListPrioritized(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := s.collect(userID, func(t *domain.Task) bool {
		return t.Status == domain.TaskStatusPending
	})

	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].Importance != tasks[j].Importance {
			return tasks[i].Importance > tasks[j].Importance
		}
		// Due date ascending, tasks without a due date last.
		di, dj := tasks[i].DueDate, tasks[j].DueDate
		switch {
		case di != nil && dj != nil && !di.Equal(*dj):
			return di.Before(*dj)
		case di != nil && dj == nil:
			return true
		case di == nil && dj != nil:
			return false
		}
		return tasks[i].ID < tasks[j].ID
	})

	return tasks, nil
}

// Update implements store.TaskStore.Update. The read-modify-write runs
// entirely under the store lock, so concurrent updates and deletes on the
// same task cannot interleave.
func (s *TaskStore) Update(
	ctx context.Context,
	id int64,
	userID uuid.UUID,
	mutate store.TaskMutator,
) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.tasks[id]
	if !ok || current.UserID != userID {
		return nil, store.ErrTaskNotFound
	}

	updated := cloneTask(current)
	if err := mutate(updated); err != nil {
		return nil, err
	}
	if err := updated.Validate(); err != nil {
		return nil, err
	}

	// The identity and ownership of a task never change.
	updated.ID = current.ID
	updated.UserID = current.UserID
	updated.CreatedAt = current.CreatedAt

	s.tasks[id] = cloneTask(updated)

	s.logger.Debug("task updated",
		slog.Int64("task_id", id),
		slog.String("user_id", userID.String()),
		slog.String("status", string(updated.Status)))
	return updated, nil
}

// Delete implements store.TaskStore.Delete
func (s *TaskStore) Delete(ctx context.Context, id int64, userID uuid.UUID) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok || task.UserID != userID {
		return nil, store.ErrTaskNotFound
	}

	delete(s.tasks, id)

	s.logger.Debug("task deleted",
		slog.Int64("task_id", id),
		slog.String("user_id", userID.String()))
	return cloneTask(task), nil
}

// WithTx implements store.TaskStore.WithTx. The memory engine has no
// transactions; the store itself serializes every operation.
func (s *TaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return s
}

// collect gathers clones of the user's tasks matching the filter.
// Callers must hold s.mu.
func (s *TaskStore) collect(userID uuid.UUID, match func(*domain.Task) bool) []*domain.Task {
	tasks := make([]*domain.Task, 0)
	for _, task := range s.tasks {
		if task.UserID == userID && match(task) {
			tasks = append(tasks, cloneTask(task))
		}
	}
	return tasks
}

// cloneTask returns a deep copy of the task so callers cannot mutate
// stored state through returned pointers.
func cloneTask(task *domain.Task) *domain.Task {
	clone := *task
	if task.DueDate != nil {
		due := *task.DueDate
		clone.DueDate = &due
	}
	return &clone
}
