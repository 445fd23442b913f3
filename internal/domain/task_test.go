package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewTask(t *testing.T) {
	userID := uuid.New()

	task, err := NewTask(userID, "Buy milk", "Two liters")

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if task.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if task.UserID != userID {
		t.Errorf("Expected user ID %s, got %s", userID, task.UserID)
	}

	if task.Title != "Buy milk" {
		t.Errorf("Expected title %q, got %q", "Buy milk", task.Title)
	}

	if task.Description != "Two liters" {
		t.Errorf("Expected description %q, got %q", "Two liters", task.Description)
	}

	if task.Status != TaskStatusNotDone {
		t.Errorf("Expected default status %q, got %q", TaskStatusNotDone, task.Status)
	}

	if task.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	if !task.UpdatedAt.Equal(task.CreatedAt) {
		t.Error("Expected UpdatedAt to equal CreatedAt on a fresh task")
	}

	// Description may be empty
	task, err = NewTask(userID, "Buy milk", "")
	if err != nil {
		t.Errorf("Expected no error for empty description, got %v", err)
	}
	if task.Description != "" {
		t.Errorf("Expected empty description, got %q", task.Description)
	}

	// Title is required
	_, err = NewTask(userID, "", "Two liters")
	if err != ErrEmptyTaskTitle {
		t.Errorf("Expected error %v, got %v", ErrEmptyTaskTitle, err)
	}

	// Owner is required
	_, err = NewTask(uuid.Nil, "Buy milk", "")
	if err != ErrEmptyTaskUserID {
		t.Errorf("Expected error %v, got %v", ErrEmptyTaskUserID, err)
	}
}

func TestTaskValidate(t *testing.T) {
	validTask := Task{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Title:  "Buy milk",
		Status: TaskStatusNotDone,
	}

	if err := validTask.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	invalidTask := validTask
	invalidTask.ID = uuid.Nil
	if err := invalidTask.Validate(); err != ErrEmptyTaskID {
		t.Errorf("Expected error %v, got %v", ErrEmptyTaskID, err)
	}

	invalidTask = validTask
	invalidTask.UserID = uuid.Nil
	if err := invalidTask.Validate(); err != ErrEmptyTaskUserID {
		t.Errorf("Expected error %v, got %v", ErrEmptyTaskUserID, err)
	}

	invalidTask = validTask
	invalidTask.Title = ""
	if err := invalidTask.Validate(); err != ErrEmptyTaskTitle {
		t.Errorf("Expected error %v, got %v", ErrEmptyTaskTitle, err)
	}

	// Status is free-form; any string is accepted
	invalidTask = validTask
	invalidTask.Status = ""
	if err := invalidTask.Validate(); err != nil {
		t.Errorf("Expected no error for empty status, got %v", err)
	}
}
