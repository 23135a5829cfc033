package http

import (
	"net/http"

	"github.com/taskflowhq/taskflow/internal/taskflow/service"
	"github.com/taskflowhq/taskflow/pkg/apiclient"
	"github.com/taskflowhq/taskflow/pkg/httpx"
	"github.com/taskflowhq/taskflow/pkg/slogx"
)

type MeHandler struct {
	UserService *service.UserService
}

// ServeHTTP returns the authenticated user's own account.
//
//	@Summary		Get the current account
//	@Description	Returns the account behind the presented session token.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	apiclient.UserResponse	"Account details"
//	@Failure		401	{object}	apiclient.APIError		"Invalid or missing access token"
//	@Failure		500	{object}	apiclient.APIError		"Internal server error"
//	@Router			/api/v1/auth/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		apiclient.ErrInvalidToken.WriteError(w)
		return
	}

	user, err := h.UserService.GetUserByID(ctx, userID)
	if err != nil {
		log.Warn("failed to load user", "user_id", userID, "err", err)
		apiclient.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}
