package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/taskflowhq/taskflow/internal/taskflow/domain"
	"github.com/taskflowhq/taskflow/internal/taskflow/store"
	"github.com/taskflowhq/taskflow/internal/taskflow/store/drivers/sqlite"
	"github.com/taskflowhq/taskflow/pkg/cryptox"
)

func TestMain(m *testing.M) {
	pepperPath := filepath.Join(os.TempDir(), "taskflow-service-test-pepper")
	cryptox.SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	os.Exit(m.Run())
}

// newTestStore opens a fresh in-memory store with migrations applied.
func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

// mustRegister creates a user through the real registration path.
func mustRegister(t *testing.T, users *UserService, username, email string) domain.User {
	t.Helper()

	user, err := users.Register(context.Background(), username, email, "hunter2hunter2")
	require.NoError(t, err)
	return user
}
