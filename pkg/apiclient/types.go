package apiclient

import "time"

// ============================================================================
// Auth types
// ============================================================================

// RegisterRequest is the payload for POST /api/v1/auth/register.
type RegisterRequest struct {
	Username string `json:"username" example:"alice"`
	Email    string `json:"email" example:"alice@example.com"`
	Password string `json:"password" example:"correct horse battery staple"`
}

// LoginRequest is the payload for POST /api/v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email" example:"alice@example.com"`
	Password string `json:"password" example:"correct horse battery staple"`
}

// LoginResponse is returned from a successful login.
//
// When the account has multi-factor authentication enabled, Token and User
// are absent: MFARequired is true and MFAToken carries a short-lived
// challenge token that must be exchanged (together with a TOTP code) at
// POST /api/v1/auth/mfa for the real session token.
type LoginResponse struct {
	Token string        `json:"token,omitempty"`
	User  *UserResponse `json:"user,omitempty"`

	MFARequired bool   `json:"mfa_required,omitempty"`
	MFAToken    string `json:"mfa_token,omitempty"`
}

// MFALoginRequest is the payload for POST /api/v1/auth/mfa.
type MFALoginRequest struct {
	MFAToken string `json:"mfa_token"`
	Code     string `json:"code" example:"123456"`
}

// MFAEnrollResponse is returned from POST /api/v1/auth/mfa/enroll.
type MFAEnrollResponse struct {
	Secret string `json:"secret"`
	URL    string `json:"url" example:"otpauth://totp/TaskFlow:alice@example.com?..."`
}

// MFAActivateRequest is the payload for POST /api/v1/auth/mfa/activate.
type MFAActivateRequest struct {
	Code string `json:"code" example:"123456"`
}

// UserResponse is the public view of a user account. The password hash is
// never serialised.
type UserResponse struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Role       string    `json:"role" example:"standard"`
	MFAEnabled bool      `json:"mfa_enabled"`
	CreatedAt  time.Time `json:"created_at"`
}

// ============================================================================
// Task types
// ============================================================================

// CreateTaskRequest is the payload for POST /api/v1/tasks.
type CreateTaskRequest struct {
	Title       string `json:"title" example:"buy milk"`
	Description string `json:"description,omitempty"`
}

// UpdateTaskRequest is the payload for PUT /api/v1/tasks/{id}. All fields
// are optional; omitted fields keep their current value.
type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty" example:"completed"`
}

// TaskResponse is the public view of a task.
type TaskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status" example:"pending"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TaskListResponse is returned from GET /api/v1/tasks.
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

// UserListResponse is returned from GET /api/v1/admin/users.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

// ============================================================================
// System types
// ============================================================================

// HealthResponse is returned from the liveness and readiness endpoints.
type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Version string `json:"version,omitempty"`
	Uptime  string `json:"uptime,omitempty"`
}
