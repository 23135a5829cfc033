package apiclient

import (
	"context"
	"net/http"
	"net/url"
)

// Session is an authenticated client bound to a bearer token. Sessions are
// created via Client.Login, Client.CompleteMFALogin or
// Client.NewSessionFromToken.
type Session struct {
	client *Client
	token  string
}

func newSession(c *Client, token string) *Session {
	return &Session{client: c, token: token}
}

// Token returns the session's bearer token.
func (s *Session) Token() string {
	return s.token
}

// Me returns the authenticated user's account details.
func (s *Session) Me(ctx context.Context) (*UserResponse, error) {
	resp, err := s.client.doJSON(ctx, http.MethodGet, "/api/v1/auth/me", s.token, nil)
	if err != nil {
		return nil, err
	}

	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateTask creates a task owned by the authenticated user.
func (s *Session) CreateTask(ctx context.Context, title, description string) (*TaskResponse, error) {
	resp, err := s.client.doJSON(ctx, http.MethodPost, "/api/v1/tasks", s.token, CreateTaskRequest{
		Title:       title,
		Description: description,
	})
	if err != nil {
		return nil, err
	}

	var task TaskResponse
	if err := decodeJSON(resp, &task, http.StatusCreated); err != nil {
		return nil, err
	}
	return &task, nil
}

// ListTasks returns the authenticated user's tasks, most recent first.
func (s *Session) ListTasks(ctx context.Context) ([]TaskResponse, error) {
	resp, err := s.client.doJSON(ctx, http.MethodGet, "/api/v1/tasks", s.token, nil)
	if err != nil {
		return nil, err
	}

	var list TaskListResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}
	return list.Tasks, nil
}

// UpdateTask applies a partial update to one of the user's tasks.
func (s *Session) UpdateTask(ctx context.Context, id string, patch UpdateTaskRequest) (*TaskResponse, error) {
	resp, err := s.client.doJSON(ctx, http.MethodPut, "/api/v1/tasks/"+url.PathEscape(id), s.token, patch)
	if err != nil {
		return nil, err
	}

	var task TaskResponse
	if err := decodeJSON(resp, &task, http.StatusOK); err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteTask deletes one of the user's tasks.
func (s *Session) DeleteTask(ctx context.Context, id string) error {
	resp, err := s.client.doJSON(ctx, http.MethodDelete, "/api/v1/tasks/"+url.PathEscape(id), s.token, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// EnrollMFA begins TOTP enrollment for the authenticated user. The returned
// secret must be confirmed via ActivateMFA before it takes effect.
func (s *Session) EnrollMFA(ctx context.Context) (*MFAEnrollResponse, error) {
	resp, err := s.client.doJSON(ctx, http.MethodPost, "/api/v1/auth/mfa/enroll", s.token, nil)
	if err != nil {
		return nil, err
	}

	var enrollment MFAEnrollResponse
	if err := decodeJSON(resp, &enrollment, http.StatusOK); err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// ActivateMFA confirms a pending TOTP enrollment with a code from the
// authenticator app.
func (s *Session) ActivateMFA(ctx context.Context, code string) error {
	resp, err := s.client.doJSON(ctx, http.MethodPost, "/api/v1/auth/mfa/activate", s.token, MFAActivateRequest{
		Code: code,
	})
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// ListUsers returns every registered account. Requires the admin role.
func (s *Session) ListUsers(ctx context.Context) ([]UserResponse, error) {
	resp, err := s.client.doJSON(ctx, http.MethodGet, "/api/v1/admin/users", s.token, nil)
	if err != nil {
		return nil, err
	}

	var list UserListResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}
	return list.Users, nil
}
