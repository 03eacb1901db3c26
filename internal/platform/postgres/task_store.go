package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/teodoragpaula1-maker/ADHDaily-backend/internal/domain"
	"github.com/teodoragpaula1-maker/ADHDaily-backend/internal/platform/logger"
	"github.com/teodoragpaula1-maker/ADHDaily-backend/internal/store"
)

// taskColumns is the canonical column list shared by every task query.
const taskColumns = `id, user_id, title, size, category, status, importance,
	due_date, is_routine, recurrence, created_at, updated_at`

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
//
// Task IDs come from a BIGSERIAL sequence, which keeps them monotonically
// increasing and duplicate-free under concurrent creates. The mutator-based
// Update runs as a transaction with a row lock so read-modify-write
// sequences cannot interleave with concurrent completes or deletes.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the
// TaskStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresTaskStore(db store.DBTX, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// Create implements store.TaskStore.Create
// It saves a new task and writes the assigned serial ID back to task.ID.
// Returns store.ErrInvalidEntity if the owning user does not exist.
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during create",
			slog.String("error", err.Error()),
			slog.String("user_id", task.UserID.String()))
		return err
	}

	query := `
		INSERT INTO tasks (user_id, title, size, category, status, importance,
			due_date, is_routine, recurrence, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		task.UserID,
		task.Title,
		task.Size,
		task.Category,
		task.Status,
		task.Importance,
		task.DueDate,
		task.IsRoutine,
		task.Recurrence,
		task.CreatedAt,
		task.UpdatedAt,
	).Scan(&task.ID)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during task creation",
				slog.String("user_id", task.UserID.String()))
			return MapError(err)
		}

		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.String("user_id", task.UserID.String()))
		return MapError(err)
	}

	log.Info("task created successfully",
		slog.Int64("task_id", task.ID),
		slog.String("user_id", task.UserID.String()),
		slog.String("size", string(task.Size)))
	return nil
}

// GetByID implements store.TaskStore.GetByID
// Returns store.ErrTaskNotFound if no task with that ID is owned by the user.
func (s *PostgresTaskStore) GetByID(
	ctx context.Context,
	id int64,
	userID uuid.UUID,
) (*domain.Task, error) {
	return s.getForUpdate(ctx, s.db, id, userID, false)
}

// ListByStatus implements store.TaskStore.ListByStatus
func (s *PostgresTaskStore) ListByStatus(
	ctx context.Context,
	userID uuid.UUID,
	status domain.TaskStatus,
) ([]*domain.Task, error) {
	// Pending tasks surface oldest-first for the focus view; completed
	// tasks surface most-recently-completed-first for the history view.
	order := "created_at ASC, id ASC"
	if status == domain.TaskStatusCompleted {
		order = "updated_at DESC, id DESC"
	}

	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE user_id = $1 AND status = $2
		ORDER BY ` + order

	return s.queryTasks(ctx, query, userID, status)
}

// List implements store.TaskStore.List
func (s *PostgresTaskStore) List(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE user_id = $1
		ORDER BY id ASC
	`
	return s.queryTasks(ctx, query, userID)
}

// ListPrioritized implements store.TaskStore.ListPrioritized
func (s *PostgresTaskStore) ListPrioritized(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE user_id = $1 AND status = $2
		ORDER BY importance DESC NULLS LAST, due_date ASC NULLS LAST, id ASC
	`
	return s.queryTasks(ctx, query, userID, domain.TaskStatusPending)
}

// Update implements store.TaskStore.Update.
//
// When the store is bound to a plain connection, the read-modify-write runs
// inside its own transaction with SELECT ... FOR UPDATE, so concurrent
// updates and deletes on the same task serialize at the row lock. When the
// store is already transaction-bound (via WithTx), the caller's transaction
// provides that isolation.
func (s *PostgresTaskStore) Update(
	ctx context.Context,
	id int64,
	userID uuid.UUID,
	mutate store.TaskMutator,
) (*domain.Task, error) {
	if db, ok := s.db.(*sql.DB); ok {
		var updated *domain.Task
		err := store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
			var err error
			updated, err = s.updateInTx(ctx, tx, id, userID, mutate)
			return err
		})
		if err != nil {
			return nil, err
		}
		return updated, nil
	}

	return s.updateInTx(ctx, s.db, id, userID, mutate)
}

// updateInTx performs the locked read-modify-write on the given transaction
// (or transaction-bound connection).
func (s *PostgresTaskStore) updateInTx(
	ctx context.Context,
	db store.DBTX,
	id int64,
	userID uuid.UUID,
	mutate store.TaskMutator,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.getForUpdate(ctx, db, id, userID, true)
	if err != nil {
		return nil, err
	}

	if err := mutate(task); err != nil {
		return nil, err
	}
	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return nil, err
	}

	query := `
		UPDATE tasks
		SET title = $1, size = $2, category = $3, status = $4, importance = $5,
			due_date = $6, is_routine = $7, recurrence = $8, updated_at = $9
		WHERE id = $10 AND user_id = $11
	`
	_, err = db.ExecContext(
		ctx,
		query,
		task.Title,
		task.Size,
		task.Category,
		task.Status,
		task.Importance,
		task.DueDate,
		task.IsRoutine,
		task.Recurrence,
		task.UpdatedAt,
		id,
		userID,
	)
	if err != nil {
		log.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return nil, MapError(err)
	}

	log.Debug("task updated",
		slog.Int64("task_id", id),
		slog.String("user_id", userID.String()),
		slog.String("status", string(task.Status)))
	return task, nil
}

// Delete implements store.TaskStore.Delete.
// The single DELETE ... RETURNING statement is atomic with respect to
// concurrent operations on the same task.
func (s *PostgresTaskStore) Delete(
	ctx context.Context,
	id int64,
	userID uuid.UUID,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM tasks
		WHERE id = $1 AND user_id = $2
		RETURNING ` + taskColumns

	task, err := scanTask(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("task not found for delete",
				slog.Int64("task_id", id),
				slog.String("user_id", userID.String()))
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return nil, MapError(err)
	}

	log.Info("task deleted",
		slog.Int64("task_id", id),
		slog.String("user_id", userID.String()))
	return task, nil
}

// WithTx implements store.TaskStore.WithTx
func (s *PostgresTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return &PostgresTaskStore{
		db:     tx,
		logger: s.logger,
	}
}

// getForUpdate fetches a task scoped by (id, owner), optionally taking a
// row lock for a subsequent write.
func (s *PostgresTaskStore) getForUpdate(
	ctx context.Context,
	db store.DBTX,
	id int64,
	userID uuid.UUID,
	forUpdate bool,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE id = $1 AND user_id = $2`
	if forUpdate {
		query += `
		FOR UPDATE`
	}

	task, err := scanTask(db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("task not found",
				slog.Int64("task_id", id),
				slog.String("user_id", userID.String()))
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to get task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return nil, MapError(err)
	}

	return task, nil
}

// queryTasks runs a multi-row task query and scans the results.
func (s *PostgresTaskStore) queryTasks(
	ctx context.Context,
	query string,
	args ...any,
) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list tasks", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Warn("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			log.Error("failed to scan task row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		log.Error("task row iteration failed", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return tasks, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for scanTask.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanTask reads one task record from the current row.
func scanTask(row rowScanner) (*domain.Task, error) {
	var (
		task     domain.Task
		size     string
		status   string
		category sql.NullString
		due      sql.NullTime
		recur    string
	)

	err := row.Scan(
		&task.ID,
		&task.UserID,
		&task.Title,
		&size,
		&category,
		&status,
		&task.Importance,
		&due,
		&task.IsRoutine,
		&recur,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	task.Size = domain.TaskSize(size)
	task.Status = domain.TaskStatus(status)
	task.Recurrence = domain.Recurrence(recur)
	if category.Valid {
		task.Category = category.String
	}
	if due.Valid {
		dueDate := due.Time
		task.DueDate = &dueDate
	}

	return &task, nil
}
