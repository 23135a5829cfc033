package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/taskflowhq/taskflow/internal/taskflow/service"
	"github.com/taskflowhq/taskflow/pkg/apiclient"
	"github.com/taskflowhq/taskflow/pkg/httpx"
	"github.com/taskflowhq/taskflow/pkg/slogx"
)

// TasksHandler handles the task collection endpoints.
type TasksHandler struct {
	TaskService *service.TaskService
}

// HandleList handles GET /api/v1/tasks.
//
//	@Summary		List tasks
//	@Description	Returns every task owned by the authenticated user, most recently created first. The list is always scoped to the caller; there is no way to see another user's tasks.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	apiclient.TaskListResponse	"The caller's tasks"
//	@Failure		401	{object}	apiclient.APIError			"Invalid or missing access token"
//	@Failure		500	{object}	apiclient.APIError			"Internal server error"
//	@Router			/api/v1/tasks [get].
func (h *TasksHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		apiclient.ErrInvalidToken.WriteError(w)
		return
	}

	tasks, err := h.TaskService.ListByOwner(ctx, userID)
	if err != nil {
		log.Error("failed to list tasks", "user_id", userID, "err", err)
		apiclient.ErrServerError.WriteError(w)
		return
	}

	out := make([]apiclient.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskResponse(t))
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, apiclient.TaskListResponse{Tasks: out})
}

// HandleCreate handles POST /api/v1/tasks.
//
//	@Summary		Create a task
//	@Description	Creates a pending task owned by the authenticated user. The title is required; a blank title fails validation and nothing is persisted.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		apiclient.CreateTaskRequest	true	"Task details"
//	@Success		201		{object}	apiclient.TaskResponse		"The created task"
//	@Failure		400		{object}	apiclient.APIError			"Missing title or malformed body"
//	@Failure		401		{object}	apiclient.APIError			"Invalid or missing access token"
//	@Failure		500		{object}	apiclient.APIError			"Internal server error"
//	@Router			/api/v1/tasks [post].
func (h *TasksHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		apiclient.ErrInvalidToken.WriteError(w)
		return
	}

	var req apiclient.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiclient.ErrValidation.WithMessage("invalid JSON body").WriteError(w)
		return
	}

	task, err := h.TaskService.Create(ctx, userID, req.Title, req.Description)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			apiclient.ErrValidation.WithMessage(err.Error()).WriteError(w)
			return
		}
		log.Error("failed to create task", "user_id", userID, "err", err)
		apiclient.ErrServerError.WriteError(w)
		return
	}

	log.Info("task created", "user_id", userID, "task_id", task.ID)

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusCreated, toTaskResponse(task))
}
