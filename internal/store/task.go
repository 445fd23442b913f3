package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/taskora/taskora-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
//
// Every mutation is scoped by the (userID, taskID) ownership pair: an update
// or delete against a task the user does not own matches zero rows and is
// reported as ErrTaskNotFound, never applied. This makes cross-user
// interference structurally impossible.
type TaskStore interface {
	// Create saves a new task to the store.
	// The task should come from domain.NewTask so it carries the default
	// status and matching CreatedAt/UpdatedAt timestamps.
	// Returns ErrInvalidEntity if the owning user does not exist.
	Create(ctx context.Context, task *domain.Task) error

	// ListByUser retrieves all tasks owned by userID, ordered by creation
	// time descending (newest first). Returns an empty slice if none.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error)

	// UpdateTitle sets the title of the task identified by (userID, taskID)
	// and refreshes its UpdatedAt timestamp.
	// Returns ErrTaskNotFound if no such task is owned by the user.
	UpdateTitle(ctx context.Context, userID, taskID uuid.UUID, title string) error

	// UpdateDescription sets the description of the task identified by
	// (userID, taskID) and refreshes its UpdatedAt timestamp.
	// Returns ErrTaskNotFound if no such task is owned by the user.
	UpdateDescription(ctx context.Context, userID, taskID uuid.UUID, description string) error

	// UpdateStatus sets the status of the task identified by (userID, taskID)
	// and refreshes its UpdatedAt timestamp. Any string is accepted; no
	// enumeration is enforced.
	// Returns ErrTaskNotFound if no such task is owned by the user.
	UpdateStatus(ctx context.Context, userID, taskID uuid.UUID, status string) error

	// Delete removes the task identified by (userID, taskID).
	// Returns ErrTaskNotFound if no such task is owned by the user, so a
	// repeated delete reports not-found without mutating anything.
	Delete(ctx context.Context, userID, taskID uuid.UUID) error

	// WithTx returns a new TaskStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) TaskStore
}
