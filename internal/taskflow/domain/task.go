package domain

import "time"

// Task status values. Two states only; the toggle in the dashboard flips
// between them.
const (
	TaskStatusPending   = "pending"
	TaskStatusCompleted = "completed"
)

// ValidTaskStatus reports whether s is a known status value.
func ValidTaskStatus(s string) bool {
	return s == TaskStatusPending || s == TaskStatusCompleted
}

// Task is a single to-do item. Every task has exactly one owner, set at
// creation and never reassigned.
type Task struct {
	ID          string
	UserID      string // owning user, the only identity allowed to mutate it
	Title       string
	Description string // optional
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskPatch carries a partial update. Nil fields are left untouched.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *string
}

// IsEmpty reports whether the patch would change nothing.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil
}
