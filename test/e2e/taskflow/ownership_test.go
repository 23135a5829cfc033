package taskflow_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taskflowhq/taskflow/pkg/apiclient"
)

// TestOwnershipIsolation verifies that one user's tasks are invisible to
// another, and that touching a foreign task reads exactly like touching a
// task that does not exist.
func TestOwnershipIsolation(t *testing.T) {
	client, _ := setupServer(t)

	alice := registerAndLogin(t, client, "alice", "alice@example.com")
	mallory := registerAndLogin(t, client, "mallory", "mallory@example.com")

	secret, err := alice.CreateTask(t.Context(), "alice's secret", "")
	require.NoError(t, err)

	// Mallory's list does not include it.
	tasks, err := mallory.ListTasks(t.Context())
	require.NoError(t, err)
	require.Empty(t, tasks)

	// Updating it reports not_found, never forbidden.
	completed := "completed"
	_, err = mallory.UpdateTask(t.Context(), secret.ID, apiclient.UpdateTaskRequest{Status: &completed})
	requireAPIError(t, err, http.StatusNotFound, apiclient.ErrorKindNotFound)

	// Same for delete.
	err = mallory.DeleteTask(t.Context(), secret.ID)
	requireAPIError(t, err, http.StatusNotFound, apiclient.ErrorKindNotFound)

	// And the attempts changed nothing for Alice.
	tasks, err = alice.ListTasks(t.Context())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "pending", tasks[0].Status)
}
