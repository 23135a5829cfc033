package apiclient

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Client is a client for the TaskFlow API. It provides access to
// unauthenticated operations and can create authenticated Sessions.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new API client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Register creates a new user account.
func (c *Client) Register(ctx context.Context, username, email, password string) (*UserResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/v1/auth/register", "", RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusCreated); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login authenticates with email and password.
//
// For accounts without MFA it returns an authenticated Session. For accounts
// with MFA enabled it returns a nil Session alongside the LoginResponse,
// whose MFAToken must be exchanged via CompleteMFALogin.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, *LoginResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/v1/auth/login", "", LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, nil, err
	}

	var loginResp LoginResponse
	if err := decodeJSON(resp, &loginResp, http.StatusOK); err != nil {
		return nil, nil, err
	}

	if loginResp.MFARequired {
		return nil, &loginResp, nil
	}
	return newSession(c, loginResp.Token), &loginResp, nil
}

// CompleteMFALogin exchanges an MFA challenge token and a TOTP code for an
// authenticated Session.
func (c *Client) CompleteMFALogin(ctx context.Context, mfaToken, code string) (*Session, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/v1/auth/mfa", "", MFALoginRequest{
		MFAToken: mfaToken,
		Code:     code,
	})
	if err != nil {
		return nil, err
	}

	var loginResp LoginResponse
	if err := decodeJSON(resp, &loginResp, http.StatusOK); err != nil {
		return nil, err
	}
	return newSession(c, loginResp.Token), nil
}

// NewSessionFromToken creates an authenticated session from an existing
// bearer token, e.g. one stored by a previous login.
func (c *Client) NewSessionFromToken(token string) *Session {
	return newSession(c, token)
}

// Livez checks the liveness endpoint.
func (c *Client) Livez(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/livez", "", nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

// Readyz checks the readiness endpoint.
func (c *Client) Readyz(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/readyz", "", nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}
