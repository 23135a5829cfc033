package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/taskflowhq/taskflow/internal/taskflow/domain"
)

func TestRegister(t *testing.T) {
	svc := &UserService{Store: newTestStore(t)}
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice", "alice@example.com", "hunter2hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Equal(t, "alice", user.Username)
	require.Equal(t, "alice@example.com", user.Email)
	require.Equal(t, domain.RoleStandard, user.Role)
	require.False(t, user.HasMFA())

	// The hash is persisted, never the plaintext
	require.NotEmpty(t, user.PasswordHash)
	require.NotContains(t, user.PasswordHash, "hunter2hunter2")
	require.True(t, strings.HasPrefix(user.PasswordHash, "$argon2id$"))
}

func TestRegisterNormalizesEmail(t *testing.T) {
	svc := &UserService{Store: newTestStore(t)}
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice", "  Alice@Example.COM ", "hunter2hunter2")
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", user.Email)

	// Login works against the normalized form regardless of input casing
	_, err = svc.Authenticate(ctx, "ALICE@example.com", "hunter2hunter2")
	require.NoError(t, err)
}

func TestRegisterValidation(t *testing.T) {
	svc := &UserService{Store: newTestStore(t)}
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		email    string
		password string
	}{
		{"missing username", "", "a@example.com", "hunter2hunter2"},
		{"missing email", "alice", "", "hunter2hunter2"},
		{"malformed email", "alice", "not-an-email", "hunter2hunter2"},
		{"short password", "alice", "a@example.com", "short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.username, tt.email, tt.password)
			require.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestRegisterDuplicate(t *testing.T) {
	svc := &UserService{Store: newTestStore(t)}
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "alice@example.com", "hunter2hunter2")
	require.NoError(t, err)

	t.Run("same email", func(t *testing.T) {
		_, err := svc.Register(ctx, "alice2", "alice@example.com", "hunter2hunter2")
		require.ErrorIs(t, err, ErrDuplicateUser)
	})

	t.Run("same username", func(t *testing.T) {
		_, err := svc.Register(ctx, "alice", "other@example.com", "hunter2hunter2")
		require.ErrorIs(t, err, ErrDuplicateUser)
	})
}

func TestAuthenticate(t *testing.T) {
	svc := &UserService{Store: newTestStore(t)}
	ctx := context.Background()

	registered := mustRegister(t, svc, "alice", "alice@example.com")

	t.Run("correct credentials", func(t *testing.T) {
		user, err := svc.Authenticate(ctx, "alice@example.com", "hunter2hunter2")
		require.NoError(t, err)
		require.Equal(t, registered.ID, user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "alice@example.com", "wrong-password")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "nobody@example.com", "hunter2hunter2")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestListUsersNewestFirst(t *testing.T) {
	svc := &UserService{Store: newTestStore(t)}
	ctx := context.Background()

	mustRegister(t, svc, "alice", "alice@example.com")
	mustRegister(t, svc, "bob", "bob@example.com")

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, "bob", users[0].Username)
	require.Equal(t, "alice", users[1].Username)
}
