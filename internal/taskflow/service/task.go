package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/taskflowhq/taskflow/internal/taskflow/domain"
	"github.com/taskflowhq/taskflow/internal/taskflow/store"
	"github.com/taskflowhq/taskflow/pkg/idx"
)

var ErrTaskNotFound = errors.New("task not found")

type TaskService struct {
	Store store.Store
}

// Create persists a new pending task owned by ownerID.
func (s *TaskService) Create(ctx context.Context, ownerID, title, description string) (domain.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Task{}, fmt.Errorf("%w: title is required", ErrValidation)
	}

	now := time.Now().UTC()
	task := domain.Task{
		ID:          idx.New().String(),
		UserID:      ownerID,
		Title:       title,
		Description: strings.TrimSpace(description),
		Status:      domain.TaskStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Store.Tasks().CreateTask(ctx, task); err != nil {
		return domain.Task{}, err
	}

	return task, nil
}

// ListByOwner returns the owner's tasks, most-recent-first. An owner with no
// tasks gets an empty slice, not nil, so the JSON encodes as [].
func (s *TaskService) ListByOwner(ctx context.Context, ownerID string) ([]domain.Task, error) {
	return s.Store.Tasks().ListTasksByOwner(ctx, ownerID)
}

// Update applies the provided patch fields to a task owned by ownerID. The
// read-modify-write runs in a transaction so two concurrent patches can't
// interleave halves of each other.
func (s *TaskService) Update(ctx context.Context, ownerID, taskID string, patch domain.TaskPatch) (domain.Task, error) {
	if patch.IsEmpty() {
		return domain.Task{}, fmt.Errorf("%w: no fields to update", ErrValidation)
	}

	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return domain.Task{}, fmt.Errorf("%w: title must not be empty", ErrValidation)
	}
	if patch.Status != nil && !domain.ValidTaskStatus(*patch.Status) {
		return domain.Task{}, fmt.Errorf("%w: status must be %q or %q",
			ErrValidation, domain.TaskStatusPending, domain.TaskStatusCompleted)
	}

	var updated domain.Task
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		task, err := tx.Tasks().GetTaskForOwner(ctx, ownerID, taskID)
		if err != nil {
			return err
		}

		if patch.Title != nil {
			task.Title = strings.TrimSpace(*patch.Title)
		}
		if patch.Description != nil {
			task.Description = strings.TrimSpace(*patch.Description)
		}
		if patch.Status != nil {
			task.Status = *patch.Status
		}
		task.UpdatedAt = time.Now().UTC()

		if err := tx.Tasks().UpdateTask(ctx, task); err != nil {
			return err
		}

		updated = task
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Task{}, ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	return updated, nil
}

// Delete removes a task owned by ownerID permanently. Deleting an already
// gone task reports ErrTaskNotFound, not success.
func (s *TaskService) Delete(ctx context.Context, ownerID, taskID string) error {
	err := s.Store.Tasks().DeleteTaskForOwner(ctx, ownerID, taskID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrTaskNotFound
	}
	return err
}
