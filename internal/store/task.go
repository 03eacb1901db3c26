package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/teodoragpaula1-maker/ADHDaily-backend/internal/domain"
)

// TaskMutator applies an in-place change to a task inside an atomic update.
// Returning an error aborts the update and leaves the stored task untouched.
type TaskMutator func(task *domain.Task) error

// TaskStore defines the interface for task data persistence.
//
// Every read and write is scoped by (task ID, owner ID): a task ID alone
// never authorizes access, and operations on tasks owned by other users
// report ErrTaskNotFound exactly like operations on nonexistent tasks.
type TaskStore interface {
	// Create saves a new task to the store and assigns it the next serial
	// ID, writing it back to task.ID. IDs are monotonically increasing and
	// never reused, including under concurrent creates.
	// Returns validation errors from the domain Task if data is invalid.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its ID, scoped to the owning user.
	// Returns ErrTaskNotFound if no such task is owned by the user.
	GetByID(ctx context.Context, id int64, userID uuid.UUID) (*domain.Task, error)

	// ListByStatus retrieves the user's tasks with the given status.
	// Pending tasks are ordered by creation time ascending (oldest first);
	// completed tasks by last update descending (most recently completed
	// first). Returns an empty slice if no tasks match.
	ListByStatus(ctx context.Context, userID uuid.UUID, status domain.TaskStatus) ([]*domain.Task, error)

	// List retrieves all of the user's tasks ordered by ID ascending.
	List(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error)

	// ListPrioritized retrieves the user's pending tasks ordered by
	// importance descending (nulls last), then due date ascending (nulls
	// last), then ID ascending. Used when importance-driven prioritization
	// is requested explicitly.
	ListPrioritized(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error)

	// Update atomically applies the mutator to the stored task and persists
	// the result. The read-modify-write sequence executes as a single unit
	// with respect to concurrent updates and deletes on the same task.
	// Returns the updated task, ErrTaskNotFound if no such task is owned by
	// the user, or the mutator's error if it rejects the change.
	Update(ctx context.Context, id int64, userID uuid.UUID, mutate TaskMutator) (*domain.Task, error)

	// Delete permanently removes a task and returns the removed record.
	// Returns ErrTaskNotFound if no such task is owned by the user.
	// Deletion is irreversible and has no undo.
	Delete(ctx context.Context, id int64, userID uuid.UUID) (*domain.Task, error)

	// WithTx returns a new TaskStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) TaskStore
}
