package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token scopes. A session token proves identity for API calls; an MFA
// challenge token only proves the first factor succeeded and is useless
// against protected routes.
const (
	ScopeSession      = "session"
	ScopeMFAChallenge = "mfa"
)

// DefaultSessionTTL is the default session token lifetime. The token is
// stateless and can't be revoked, so this bounds the blast radius of a leak.
const DefaultSessionTTL = 24 * time.Hour

// DefaultMFAChallengeTTL bounds how long a user has to enter their second
// factor after the password check passes.
const DefaultMFAChallengeTTL = 5 * time.Minute

// Claims are the identity claims embedded in every token we mint. We keep
// changes additive to preserve compatibility for tokens already in the wild.
type Claims struct {
	jwt.RegisteredClaims

	// Scope distinguishes full session tokens from MFA challenge tokens.
	Scope string `json:"scope,omitempty"`

	// Role of the authenticated user ("standard" or "admin").
	Role string `json:"role,omitempty"`

	// Username for the authenticated user, saves a lookup for display.
	Username string `json:"username,omitempty"`
}

// NewClaims builds minimally-correct claims for the given subject.
func NewClaims(subject, scope, role, username, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Scope:    scope,
		Role:     role,
		Username: username,
	}
}

// ValidateIssuer checks the issuer matches the expected value. An empty
// expectation enforces nothing.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil
	}

	if c.Issuer != expected {
		return ErrIssuer
	}

	return nil
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't used before
// it is valid (nbf).
func (c *Claims) ValidateExpiry() error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}

	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}

	return nil
}
