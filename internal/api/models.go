package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/taskora/taskora-api/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// UserID is the unique identifier for the authenticated user
	UserID uuid.UUID `json:"user_id"`

	// Username echoes the account name back to the client
	Username string `json:"username,omitempty"`

	// AccessToken is the JWT token used for API authorization
	AccessToken string `json:"token"`

	// RefreshToken is the JWT token used to obtain new access tokens
	RefreshToken string `json:"refresh_token,omitempty"`

	// ExpiresAt is the ISO 8601 timestamp when the access token expires
	ExpiresAt string `json:"expires_at,omitempty"`
}

// RegisterResponse defines the successful response for the registration
// endpoint. ID and Username mirror the created account; the token pair lets
// a fresh client skip the immediate login round-trip.
type RegisterResponse struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	AccessToken  string    `json:"token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	ExpiresAt    string    `json:"expires_at,omitempty"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshTokenResponse defines the successful response for the token refresh endpoint.
type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    string `json:"expires_at"`
}

// UserResponse defines the public representation of a user.
// The password hash never appears here.
type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

// CreateTaskRequest defines the payload for task creation.
type CreateTaskRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
}

// UpdateTaskTitleRequest defines the payload for PUT /tasks/{id}/title.
type UpdateTaskTitleRequest struct {
	Title string `json:"title" validate:"required"`
}

// UpdateTaskDescriptionRequest defines the payload for PUT /tasks/{id}/description.
type UpdateTaskDescriptionRequest struct {
	Description string `json:"description"`
}

// UpdateTaskStatusRequest defines the payload for PUT /tasks/{id}/status.
// Status is free-form; any string is accepted, including the empty one.
type UpdateTaskStatusRequest struct {
	Status string `json:"status"`
}

// TaskResponse defines the representation of a task in list responses.
type TaskResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewTaskResponse converts a domain Task into its API representation.
func NewTaskResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// StatusResponse is the minimal acknowledgement body returned by task
// mutations ("ok", "updated", "deleted").
type StatusResponse struct {
	Status string `json:"status"`

	// ID is set only on creation acknowledgements. A pointer because
	// omitempty never omits a zero-valued UUID array.
	ID *uuid.UUID `json:"id,omitempty"`
}
