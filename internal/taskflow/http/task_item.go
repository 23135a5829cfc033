package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/taskflowhq/taskflow/internal/taskflow/domain"
	"github.com/taskflowhq/taskflow/internal/taskflow/service"
	"github.com/taskflowhq/taskflow/pkg/apiclient"
	"github.com/taskflowhq/taskflow/pkg/httpx"
	"github.com/taskflowhq/taskflow/pkg/slogx"
)

// TaskItemHandler handles the single-task endpoints. Tasks belonging to a
// different user are reported as not_found, the same as tasks that do not
// exist, so task ids cannot be probed.
type TaskItemHandler struct {
	TaskService *service.TaskService
}

// HandleUpdate handles PUT /api/v1/tasks/{id}.
//
//	@Summary		Update a task
//	@Description	Applies a partial update to one of the caller's tasks. Omitted fields keep their value. An empty patch, a blank title or an unknown status fails validation.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Task id"
//	@Param			request	body		apiclient.UpdateTaskRequest	true	"Fields to change"
//	@Success		200		{object}	apiclient.TaskResponse		"The updated task"
//	@Failure		400		{object}	apiclient.APIError			"Invalid patch"
//	@Failure		401		{object}	apiclient.APIError			"Invalid or missing access token"
//	@Failure		404		{object}	apiclient.APIError			"No such task for this user"
//	@Failure		500		{object}	apiclient.APIError			"Internal server error"
//	@Router			/api/v1/tasks/{id} [put].
func (h *TaskItemHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		apiclient.ErrInvalidToken.WriteError(w)
		return
	}
	taskID := r.PathValue("id")

	var req apiclient.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiclient.ErrValidation.WithMessage("invalid JSON body").WriteError(w)
		return
	}

	task, err := h.TaskService.Update(ctx, userID, taskID, domain.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			apiclient.ErrValidation.WithMessage(err.Error()).WriteError(w)
		case errors.Is(err, service.ErrTaskNotFound):
			apiclient.ErrNotFound.WithMessage("task not found").WriteError(w)
		default:
			log.Error("failed to update task", "user_id", userID, "task_id", taskID, "err", err)
			apiclient.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, toTaskResponse(task))
}

// HandleDelete handles DELETE /api/v1/tasks/{id}.
//
//	@Summary		Delete a task
//	@Description	Deletes one of the caller's tasks. Deleting a task that is already gone returns not_found, so the operation is safe to retry but not silently idempotent.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Task id"
//	@Success		204	"Task deleted"
//	@Failure		401	{object}	apiclient.APIError	"Invalid or missing access token"
//	@Failure		404	{object}	apiclient.APIError	"No such task for this user"
//	@Failure		500	{object}	apiclient.APIError	"Internal server error"
//	@Router			/api/v1/tasks/{id} [delete].
func (h *TaskItemHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		apiclient.ErrInvalidToken.WriteError(w)
		return
	}
	taskID := r.PathValue("id")

	if err := h.TaskService.Delete(ctx, userID, taskID); err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			apiclient.ErrNotFound.WithMessage("task not found").WriteError(w)
			return
		}
		log.Error("failed to delete task", "user_id", userID, "task_id", taskID, "err", err)
		apiclient.ErrServerError.WriteError(w)
		return
	}

	log.Info("task deleted", "user_id", userID, "task_id", taskID)
	w.WriteHeader(http.StatusNoContent)
}
