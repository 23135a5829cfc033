package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/taskflowhq/taskflow/internal/taskflow/domain"
)

func strPtr(s string) *string { return &s }

func newTaskFixture(t *testing.T) (*TaskService, domain.User, domain.User) {
	t.Helper()

	st := newTestStore(t)
	users := &UserService{Store: st}

	alice := mustRegister(t, users, "alice", "alice@example.com")
	bob := mustRegister(t, users, "bob", "bob@example.com")

	return &TaskService{Store: st}, alice, bob
}

func TestCreateTask(t *testing.T) {
	tasks, alice, _ := newTaskFixture(t)
	ctx := context.Background()

	task, err := tasks.Create(ctx, alice.ID, "buy milk", "two litres")
	require.NoError(t, err)
	require.NotEmpty(t, task.ID)
	require.Equal(t, alice.ID, task.UserID)
	require.Equal(t, "buy milk", task.Title)
	require.Equal(t, "two litres", task.Description)
	require.Equal(t, domain.TaskStatusPending, task.Status)
	require.WithinDuration(t, time.Now().UTC(), task.CreatedAt, 5*time.Second)
}

func TestCreateTaskRequiresTitle(t *testing.T) {
	tasks, alice, _ := newTaskFixture(t)
	ctx := context.Background()

	for _, title := range []string{"", "   ", "\t\n"} {
		_, err := tasks.Create(ctx, alice.ID, title, "desc")
		require.ErrorIs(t, err, ErrValidation, "title %q", title)
	}

	// Nothing was persisted by the failed attempts
	listed, err := tasks.ListByOwner(ctx, alice.ID)
	require.NoError(t, err)
	require.Empty(t, listed)
}

func TestListByOwner(t *testing.T) {
	tasks, alice, bob := newTaskFixture(t)
	ctx := context.Background()

	t.Run("empty for a fresh user", func(t *testing.T) {
		listed, err := tasks.ListByOwner(ctx, alice.ID)
		require.NoError(t, err)
		require.NotNil(t, listed)
		require.Empty(t, listed)
	})

	first, err := tasks.Create(ctx, alice.ID, "first", "")
	require.NoError(t, err)
	second, err := tasks.Create(ctx, alice.ID, "second", "")
	require.NoError(t, err)

	_, err = tasks.Create(ctx, bob.ID, "bob's task", "")
	require.NoError(t, err)

	t.Run("most recent first, scoped to owner", func(t *testing.T) {
		listed, err := tasks.ListByOwner(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, listed, 2)
		require.Equal(t, second.ID, listed[0].ID)
		require.Equal(t, first.ID, listed[1].ID)
	})
}

func TestUpdateTask(t *testing.T) {
	tasks, alice, _ := newTaskFixture(t)
	ctx := context.Background()

	task, err := tasks.Create(ctx, alice.ID, "buy milk", "two litres")
	require.NoError(t, err)

	t.Run("patches only provided fields", func(t *testing.T) {
		updated, err := tasks.Update(ctx, alice.ID, task.ID, domain.TaskPatch{
			Status: strPtr(domain.TaskStatusCompleted),
		})
		require.NoError(t, err)
		require.Equal(t, domain.TaskStatusCompleted, updated.Status)
		require.Equal(t, "buy milk", updated.Title)
		require.Equal(t, "two litres", updated.Description)
	})

	t.Run("reflected on next list", func(t *testing.T) {
		listed, err := tasks.ListByOwner(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, listed, 1)
		require.Equal(t, domain.TaskStatusCompleted, listed[0].Status)
	})

	t.Run("rejects empty patch", func(t *testing.T) {
		_, err := tasks.Update(ctx, alice.ID, task.ID, domain.TaskPatch{})
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("rejects blank title", func(t *testing.T) {
		_, err := tasks.Update(ctx, alice.ID, task.ID, domain.TaskPatch{Title: strPtr("  ")})
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := tasks.Update(ctx, alice.ID, task.ID, domain.TaskPatch{Status: strPtr("archived")})
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := tasks.Update(ctx, alice.ID, "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV", domain.TaskPatch{
			Title: strPtr("new"),
		})
		require.ErrorIs(t, err, ErrTaskNotFound)
	})
}

func TestOwnershipIsOpaque(t *testing.T) {
	tasks, alice, bob := newTaskFixture(t)
	ctx := context.Background()

	task, err := tasks.Create(ctx, alice.ID, "alice's task", "")
	require.NoError(t, err)

	// Bob's attempts against Alice's task are not-found, never forbidden,
	// so the existence of the task doesn't leak.
	t.Run("update", func(t *testing.T) {
		_, err := tasks.Update(ctx, bob.ID, task.ID, domain.TaskPatch{Title: strPtr("stolen")})
		require.ErrorIs(t, err, ErrTaskNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		err := tasks.Delete(ctx, bob.ID, task.ID)
		require.ErrorIs(t, err, ErrTaskNotFound)
	})

	t.Run("task untouched", func(t *testing.T) {
		listed, err := tasks.ListByOwner(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, listed, 1)
		require.Equal(t, "alice's task", listed[0].Title)
	})
}

func TestDeleteTask(t *testing.T) {
	tasks, alice, _ := newTaskFixture(t)
	ctx := context.Background()

	task, err := tasks.Create(ctx, alice.ID, "buy milk", "")
	require.NoError(t, err)

	require.NoError(t, tasks.Delete(ctx, alice.ID, task.ID))

	listed, err := tasks.ListByOwner(ctx, alice.ID)
	require.NoError(t, err)
	require.Empty(t, listed)

	// Repeat delete is a not-found, not a silent success
	require.ErrorIs(t, tasks.Delete(ctx, alice.ID, task.ID), ErrTaskNotFound)
}
