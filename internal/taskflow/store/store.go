package store

import (
	"context"
	"errors"

	"github.com/taskflowhq/taskflow/internal/taskflow/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today,
// postgres later if it ever matters) implement this. Sub-repositories keep
// concerns tidy and individually mockable.
type Store interface {
	Users() Users
	Tasks() Tasks

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. Prefer this
	// over Tx for anything multi-step.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases the underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists when username or email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateMFASecret sets the pending TOTP secret and bumps updated_at.
	UpdateMFASecret(ctx context.Context, userID, secret string) error

	// EnableMFA marks MFA as activated (sets mfa_enabled to now).
	EnableMFA(ctx context.Context, userID string) error

	// ListUsers returns all users, newest first. Admin surface only.
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type Tasks interface {
	// CreateTask inserts a new task (id is a ULID minted by the service).
	CreateTask(ctx context.Context, t domain.Task) error

	// GetTaskForOwner returns the task only when it is owned by ownerID.
	// Ownership mismatch is indistinguishable from absence: ErrNotFound.
	GetTaskForOwner(ctx context.Context, ownerID, taskID string) (domain.Task, error)

	// ListTasksByOwner returns the owner's tasks, most-recent-first.
	ListTasksByOwner(ctx context.Context, ownerID string) ([]domain.Task, error)

	// UpdateTask writes title/description/status and bumps updated_at,
	// scoped to the owning user. ErrNotFound when no row matched.
	UpdateTask(ctx context.Context, t domain.Task) error

	// DeleteTaskForOwner removes the task permanently, scoped to the owning
	// user. ErrNotFound when no row matched, including repeat deletes.
	DeleteTaskForOwner(ctx context.Context, ownerID, taskID string) error
}
