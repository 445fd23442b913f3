package mocks

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/taskora/taskora-api/internal/domain"
	"github.com/taskora/taskora-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing.
// The default implementation keeps tasks in memory keyed by the
// (user_id, id) ownership pair, mirroring the real store's scoping.
type MockTaskStore struct {
	// Function fields for customizable behavior
	CreateFn            func(ctx context.Context, task *domain.Task) error
	ListByUserFn        func(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error)
	UpdateTitleFn       func(ctx context.Context, userID, taskID uuid.UUID, title string) error
	UpdateDescriptionFn func(ctx context.Context, userID, taskID uuid.UUID, description string) error
	UpdateStatusFn      func(ctx context.Context, userID, taskID uuid.UUID, status string) error
	DeleteFn            func(ctx context.Context, userID, taskID uuid.UUID) error

	Tasks       map[uuid.UUID]map[uuid.UUID]*domain.Task // userID -> taskID -> task
	CreateError error
	ListError   error
}

// NewMockTaskStore creates a new mock store with initialized defaults
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{
		Tasks: make(map[uuid.UUID]map[uuid.UUID]*domain.Task),
	}
}

// Create implements the TaskStore interface
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	if m.Tasks[task.UserID] == nil {
		m.Tasks[task.UserID] = make(map[uuid.UUID]*domain.Task)
	}
	m.Tasks[task.UserID][task.ID] = task
	return nil
}

// ListByUser implements the TaskStore interface
func (m *MockTaskStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}

	if m.ListError != nil {
		return nil, m.ListError
	}

	tasks := make([]*domain.Task, 0, len(m.Tasks[userID]))
	for _, task := range m.Tasks[userID] {
		tasks = append(tasks, task)
	}

	// Newest first, like the real query.
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})

	return tasks, nil
}

// UpdateTitle implements the TaskStore interface
func (m *MockTaskStore) UpdateTitle(ctx context.Context, userID, taskID uuid.UUID, title string) error {
	if m.UpdateTitleFn != nil {
		return m.UpdateTitleFn(ctx, userID, taskID, title)
	}

	return m.mutate(userID, taskID, func(task *domain.Task) {
		task.Title = title
	})
}

// UpdateDescription implements the TaskStore interface
func (m *MockTaskStore) UpdateDescription(ctx context.Context, userID, taskID uuid.UUID, description string) error {
	if m.UpdateDescriptionFn != nil {
		return m.UpdateDescriptionFn(ctx, userID, taskID, description)
	}

	return m.mutate(userID, taskID, func(task *domain.Task) {
		task.Description = description
	})
}

// UpdateStatus implements the TaskStore interface
func (m *MockTaskStore) UpdateStatus(ctx context.Context, userID, taskID uuid.UUID, status string) error {
	if m.UpdateStatusFn != nil {
		return m.UpdateStatusFn(ctx, userID, taskID, status)
	}

	return m.mutate(userID, taskID, func(task *domain.Task) {
		task.Status = status
	})
}

// Delete implements the TaskStore interface
func (m *MockTaskStore) Delete(ctx context.Context, userID, taskID uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, userID, taskID)
	}

	if _, ok := m.Tasks[userID][taskID]; !ok {
		return store.ErrTaskNotFound
	}

	delete(m.Tasks[userID], taskID)
	return nil
}

// WithTx implements the TaskStore interface; the mock has no transactions.
func (m *MockTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return m
}

func (m *MockTaskStore) mutate(userID, taskID uuid.UUID, fn func(*domain.Task)) error {
	task, ok := m.Tasks[userID][taskID]
	if !ok {
		return store.ErrTaskNotFound
	}

	fn(task)
	task.UpdatedAt = time.Now().UTC()
	return nil
}
