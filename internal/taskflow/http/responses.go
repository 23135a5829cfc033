package http

import (
	"github.com/taskflowhq/taskflow/internal/taskflow/domain"
	"github.com/taskflowhq/taskflow/pkg/apiclient"
)

// toUserResponse strips server-only fields (password hash, MFA secret) from
// a user before it goes on the wire.
func toUserResponse(u domain.User) apiclient.UserResponse {
	return apiclient.UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		Role:       u.Role,
		MFAEnabled: u.HasMFA(),
		CreatedAt:  u.CreatedAt,
	}
}

func toTaskResponse(t domain.Task) apiclient.TaskResponse {
	return apiclient.TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
