package domain

import "time"

// User roles. Roles are flat, there is no scope system, the admin role only
// unlocks the user listing endpoints.
const (
	RoleStandard = "standard"
	RoleAdmin    = "admin"
)

type User struct {
	ID           string
	Username     string     // unique
	Email        string     // unique, login identifier
	PasswordHash string     // argon2 encoded, never leaves the server
	Role         string     // RoleStandard or RoleAdmin
	MFASecret    *string    // TOTP secret (nullable, base32 encoded)
	MFAEnabled   *time.Time // timestamp when MFA was activated (nullable)
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasMFA reports whether the user has completed TOTP enrollment.
func (u User) HasMFA() bool {
	return u.MFAEnabled != nil && u.MFASecret != nil && *u.MFASecret != ""
}
