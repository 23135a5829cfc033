package taskflow_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taskflowhq/taskflow/pkg/apiclient"
)

// TestTaskLifecycle walks the happy path a browser user takes: register,
// log in, add a task, see it in the list, complete it, delete it.
func TestTaskLifecycle(t *testing.T) {
	client, _ := setupServer(t)

	user, err := client.Register(t.Context(), "alice", "alice@example.com", testPassword)
	require.NoError(t, err)
	require.Equal(t, "alice", user.Username)
	require.Equal(t, "standard", user.Role)
	require.NotEmpty(t, user.ID)

	session, loginResp, err := client.Login(t.Context(), "alice@example.com", testPassword)
	require.NoError(t, err)
	require.NotNil(t, session)
	require.False(t, loginResp.MFARequired)
	require.Equal(t, user.ID, loginResp.User.ID)

	// Fresh account has no tasks, and the list is a list, not null.
	tasks, err := session.ListTasks(t.Context())
	require.NoError(t, err)
	require.NotNil(t, tasks)
	require.Empty(t, tasks)

	task, err := session.CreateTask(t.Context(), "buy milk", "two litres")
	require.NoError(t, err)
	require.Equal(t, "buy milk", task.Title)
	require.Equal(t, "two litres", task.Description)
	require.Equal(t, "pending", task.Status)

	tasks, err = session.ListTasks(t.Context())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, task.ID, tasks[0].ID)

	// Toggle to completed.
	completed := "completed"
	updated, err := session.UpdateTask(t.Context(), task.ID, apiclient.UpdateTaskRequest{Status: &completed})
	require.NoError(t, err)
	require.Equal(t, "completed", updated.Status)
	require.Equal(t, "buy milk", updated.Title, "title survives a status-only patch")

	require.NoError(t, session.DeleteTask(t.Context(), task.ID))

	// Deleting again reports the task as gone.
	err = session.DeleteTask(t.Context(), task.ID)
	requireAPIError(t, err, http.StatusNotFound, apiclient.ErrorKindNotFound)

	tasks, err = session.ListTasks(t.Context())
	require.NoError(t, err)
	require.Empty(t, tasks)
}

// TestTaskListOrdering verifies most-recent-first ordering through the API.
func TestTaskListOrdering(t *testing.T) {
	client, _ := setupServer(t)
	session := registerAndLogin(t, client, "bob", "bob@example.com")

	for _, title := range []string{"first", "second", "third"} {
		_, err := session.CreateTask(t.Context(), title, "")
		require.NoError(t, err)
	}

	tasks, err := session.ListTasks(t.Context())
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	require.Equal(t, "third", tasks[0].Title)
	require.Equal(t, "second", tasks[1].Title)
	require.Equal(t, "first", tasks[2].Title)
}

// TestTaskValidation covers the rejects: blank title on create, empty patch
// and unknown status on update.
func TestTaskValidation(t *testing.T) {
	client, _ := setupServer(t)
	session := registerAndLogin(t, client, "carol", "carol@example.com")

	_, err := session.CreateTask(t.Context(), "   ", "whitespace only")
	requireAPIError(t, err, http.StatusBadRequest, apiclient.ErrorKindValidation)

	// Nothing was persisted by the failed create.
	tasks, err := session.ListTasks(t.Context())
	require.NoError(t, err)
	require.Empty(t, tasks)

	task, err := session.CreateTask(t.Context(), "real task", "")
	require.NoError(t, err)

	_, err = session.UpdateTask(t.Context(), task.ID, apiclient.UpdateTaskRequest{})
	requireAPIError(t, err, http.StatusBadRequest, apiclient.ErrorKindValidation)

	bogus := "archived"
	_, err = session.UpdateTask(t.Context(), task.ID, apiclient.UpdateTaskRequest{Status: &bogus})
	requireAPIError(t, err, http.StatusBadRequest, apiclient.ErrorKindValidation)
}
