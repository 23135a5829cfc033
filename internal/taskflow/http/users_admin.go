package http

import (
	"net/http"

	"github.com/taskflowhq/taskflow/internal/taskflow/service"
	"github.com/taskflowhq/taskflow/pkg/apiclient"
	"github.com/taskflowhq/taskflow/pkg/httpx"
	"github.com/taskflowhq/taskflow/pkg/slogx"
)

type AdminUsersHandler struct {
	UserService *service.UserService
}

// ServeHTTP lists every registered account. The route is wrapped in
// RequireRole(admin), the handler itself does no role checking.
//
//	@Summary		List all users
//	@Description	Returns every registered account, newest first. Admin only.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	apiclient.UserListResponse	"All accounts"
//	@Failure		401	{object}	apiclient.APIError			"Invalid or missing access token"
//	@Failure		403	{object}	apiclient.APIError			"Caller is not an admin"
//	@Failure		500	{object}	apiclient.APIError			"Internal server error"
//	@Router			/api/v1/admin/users [get].
func (h *AdminUsersHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	users, err := h.UserService.ListUsers(ctx)
	if err != nil {
		log.Error("failed to list users", "err", err)
		apiclient.ErrServerError.WriteError(w)
		return
	}

	out := make([]apiclient.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, apiclient.UserListResponse{Users: out})
}
