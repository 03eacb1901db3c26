package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// TaskSize classifies how much effort a task takes. The focus selector
// uses it to build a size-diversified selection.
type TaskSize string

// Possible task size values
const (
	TaskSizeTiny   TaskSize = "tiny"
	TaskSizeMedium TaskSize = "medium"
	TaskSizeBig    TaskSize = "big"
)

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

// Possible task status values. The only transition is pending -> completed;
// there is no way back.
const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
)

// Recurrence is the repeat cadence of a routine task.
type Recurrence string

// Possible recurrence values
const (
	RecurrenceNone    Recurrence = "none"
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
)

// Common validation errors for Task
var (
	ErrEmptyTaskTitle    = errors.New("task title cannot be empty")
	ErrEmptyTaskUserID   = errors.New("task user ID cannot be empty")
	ErrInvalidTaskSize   = errors.New("invalid task size")
	ErrInvalidTaskStatus = errors.New("invalid task status")
	ErrInvalidRecurrence = errors.New("invalid task recurrence")
	ErrRoutineRecurrence = errors.New("routine flag and recurrence are inconsistent")
)

// Task represents a single user-created task. A task belongs to exactly
// one user for its whole life; every store operation on it is keyed by
// (task ID, user ID).
type Task struct {
	ID         int64      `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	Title      string     `json:"title"`
	Size       TaskSize   `json:"size"`
	Category   string     `json:"category"`
	Status     TaskStatus `json:"status"`
	Importance int        `json:"importance"`
	DueDate    *time.Time `json:"due_date,omitempty"`
	IsRoutine  bool       `json:"is_routine"`
	Recurrence Recurrence `json:"recurrence"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// NewTask creates a new pending Task owned by the given user. The ID is
// left zero; the store assigns the next serial value on create.
// Category defaults to "general", importance to 1 and recurrence to none.
// Returns an error if validation fails.
func NewTask(userID uuid.UUID, title string, size TaskSize) (*Task, error) {
	now := time.Now().UTC()
	task := &Task{
		UserID:     userID,
		Title:      title,
		Size:       size,
		Category:   "general",
		Status:     TaskStatusPending,
		Importance: 1,
		Recurrence: RecurrenceNone,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.UserID == uuid.Nil {
		return ErrEmptyTaskUserID
	}

	if t.Title == "" {
		return ErrEmptyTaskTitle
	}

	if !isValidTaskSize(t.Size) {
		return ErrInvalidTaskSize
	}

	if !isValidTaskStatus(t.Status) {
		return ErrInvalidTaskStatus
	}

	if !isValidRecurrence(t.Recurrence) {
		return ErrInvalidRecurrence
	}

	// is_routine is true iff the task actually recurs
	if t.IsRoutine != (t.Recurrence != RecurrenceNone) {
		return ErrRoutineRecurrence
	}

	return nil
}

// SetRecurrence updates the recurrence cadence, keeping the routine flag
// consistent with it.
// Returns an error if the recurrence value is invalid.
func (t *Task) SetRecurrence(recurrence Recurrence) error {
	if !isValidRecurrence(recurrence) {
		return ErrInvalidRecurrence
	}

	t.Recurrence = recurrence
	t.IsRoutine = recurrence != RecurrenceNone
	return nil
}

// Complete marks the task completed and refreshes the update timestamp.
// Completing an already-completed task is a deliberate no-op transition
// that still re-stamps UpdatedAt, so retried requests succeed.
func (t *Task) Complete() {
	t.Status = TaskStatusCompleted
	t.UpdatedAt = time.Now().UTC()
}

// IsPending reports whether the task has not been completed yet.
func (t *Task) IsPending() bool {
	return t.Status == TaskStatusPending
}

// isValidTaskSize checks if the given size is a valid TaskSize.
func isValidTaskSize(size TaskSize) bool {
	switch size {
	case TaskSizeTiny, TaskSizeMedium, TaskSizeBig:
		return true
	default:
		return false
	}
}

// isValidTaskStatus checks if the given status is a valid TaskStatus.
func isValidTaskStatus(status TaskStatus) bool {
	switch status {
	case TaskStatusPending, TaskStatusCompleted:
		return true
	default:
		return false
	}
}

// isValidRecurrence checks if the given recurrence is a valid Recurrence.
func isValidRecurrence(recurrence Recurrence) bool {
	switch recurrence {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly:
		return true
	default:
		return false
	}
}
