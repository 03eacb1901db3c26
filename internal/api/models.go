package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/teodoragpaula1-maker/ADHDaily-backend/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// UserID is the unique identifier for the authenticated user
	UserID uuid.UUID `json:"user_id"`

	// Token is the bearer token used for API authorization
	Token string `json:"token"`
}

// UserResponse defines the representation of a user returned by the API.
// It never carries password material.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateTaskRequest defines the payload for creating a task. Only the
// title is required; everything else falls back to the documented
// defaults. Importance is a bare sort key, not checked against a range;
// a pointer distinguishes an explicit zero from an omitted field.
type CreateTaskRequest struct {
	Title      string     `json:"title"      validate:"required,min=1,max=500"`
	Size       string     `json:"size"       validate:"omitempty,oneof=tiny medium big"`
	Category   string     `json:"category"   validate:"omitempty,max=100"`
	Importance *int       `json:"importance"`
	DueDate    *time.Time `json:"due_date"`
	Recurrence string     `json:"recurrence" validate:"omitempty,oneof=none daily weekly monthly"`
}

// TaskResponse defines the representation of a task returned by the API.
type TaskResponse struct {
	ID         int64      `json:"id"`
	Title      string     `json:"title"`
	Size       string     `json:"size"`
	Category   string     `json:"category"`
	Status     string     `json:"status"`
	Importance int        `json:"importance"`
	DueDate    *time.Time `json:"due_date,omitempty"`
	IsRoutine  bool       `json:"is_routine"`
	Recurrence string     `json:"recurrence"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// TaskListResponse wraps a list of tasks with its count.
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Count int            `json:"count"`
}

// NewTaskResponse converts a domain task to its API representation.
func NewTaskResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:         task.ID,
		Title:      task.Title,
		Size:       string(task.Size),
		Category:   task.Category,
		Status:     string(task.Status),
		Importance: task.Importance,
		DueDate:    task.DueDate,
		IsRoutine:  task.IsRoutine,
		Recurrence: string(task.Recurrence),
		CreatedAt:  task.CreatedAt,
		UpdatedAt:  task.UpdatedAt,
	}
}

// NewTaskListResponse converts a slice of domain tasks, preserving order.
func NewTaskListResponse(tasks []*domain.Task) TaskListResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, NewTaskResponse(task))
	}
	return TaskListResponse{Tasks: out, Count: len(out)}
}
