package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/taskora/taskora-api/internal/domain"
	"github.com/taskora/taskora-api/internal/platform/logger"
	"github.com/taskora/taskora-api/internal/store"
)

// TaskHandler handles task CRUD requests. Every operation reads the
// authenticated user from the request context; task statements are always
// scoped by that user, so one account can never touch another's tasks.
type TaskHandler struct {
	taskStore store.TaskStore
	validator *validator.Validate
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(taskStore store.TaskStore) *TaskHandler {
	return &TaskHandler{
		taskStore: taskStore,
		validator: validator.New(),
	}
}

// Create handles POST /tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), slog.Default())

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		HandleAPIError(w, r, domain.ErrUnauthorized, "User ID not found or invalid")
		return
	}

	var req CreateTaskRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	task, err := domain.NewTask(userID, req.Title, req.Description)
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid task data: "+err.Error())
		return
	}

	if err := h.taskStore.Create(r.Context(), task); err != nil {
		if errors.Is(err, store.ErrInvalidEntity) {
			HandleAPIError(w, r, err, "")
			return
		}
		log.Error("failed to create task", "error", err, "user_id", userID)
		RespondWithError(w, r, http.StatusInternalServerError, "Failed to create task")
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, StatusResponse{Status: "ok", ID: &task.ID})
}

// List handles GET /tasks.
// Tasks come back newest first; a user with no tasks gets an empty array,
// not null.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), slog.Default())

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		HandleAPIError(w, r, domain.ErrUnauthorized, "User ID not found or invalid")
		return
	}

	tasks, err := h.taskStore.ListByUser(r.Context(), userID)
	if err != nil {
		log.Error("failed to list tasks", "error", err, "user_id", userID)
		RespondWithError(w, r, http.StatusInternalServerError, "Failed to retrieve tasks")
		return
	}

	resp := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		resp = append(resp, NewTaskResponse(task))
	}

	RespondWithJSON(w, r, http.StatusOK, resp)
}

// UpdateTitle handles PUT /tasks/{id}/title.
func (h *TaskHandler) UpdateTitle(w http.ResponseWriter, r *http.Request) {
	userID, taskID, ok := handleUserIDAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	var req UpdateTaskTitleRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	h.respondToUpdate(w, r,
		h.taskStore.UpdateTitle(r.Context(), userID, taskID, req.Title))
}

// UpdateDescription handles PUT /tasks/{id}/description.
func (h *TaskHandler) UpdateDescription(w http.ResponseWriter, r *http.Request) {
	userID, taskID, ok := handleUserIDAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	var req UpdateTaskDescriptionRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	h.respondToUpdate(w, r,
		h.taskStore.UpdateDescription(r.Context(), userID, taskID, req.Description))
}

// UpdateStatus handles PUT /tasks/{id}/status.
func (h *TaskHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID, taskID, ok := handleUserIDAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	var req UpdateTaskStatusRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	h.respondToUpdate(w, r,
		h.taskStore.UpdateStatus(r.Context(), userID, taskID, req.Status))
}

// Delete handles DELETE /tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), slog.Default())

	userID, taskID, ok := handleUserIDAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.taskStore.Delete(r.Context(), userID, taskID); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			RespondWithError(w, r, http.StatusNotFound, "Task not found")
			return
		}
		log.Error("failed to delete task", "error", err,
			"user_id", userID, "task_id", taskID)
		RespondWithError(w, r, http.StatusInternalServerError, "Failed to delete task")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, StatusResponse{Status: "deleted"})
}

// respondToUpdate translates the outcome of a scoped field update into the
// HTTP response: not-found (wrong id or wrong owner, indistinguishable)
// becomes 404, success acknowledges with {"status":"updated"}.
func (h *TaskHandler) respondToUpdate(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil {
		switch {
		case errors.Is(err, store.ErrTaskNotFound):
			RespondWithError(w, r, http.StatusNotFound, "Task not found")
		case errors.Is(err, domain.ErrEmptyTaskTitle):
			RespondWithError(w, r, http.StatusBadRequest, "Invalid task data: "+err.Error())
		default:
			logger.FromContextOrDefault(r.Context(), slog.Default()).
				Error("failed to update task", "error", err)
			RespondWithError(w, r, http.StatusInternalServerError, "Failed to update task")
		}
		return
	}

	RespondWithJSON(w, r, http.StatusOK, StatusResponse{Status: "updated"})
}
