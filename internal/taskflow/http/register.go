package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/taskflowhq/taskflow/internal/taskflow/service"
	"github.com/taskflowhq/taskflow/pkg/apiclient"
	"github.com/taskflowhq/taskflow/pkg/httpx"
	"github.com/taskflowhq/taskflow/pkg/slogx"
)

type RegisterHandler struct {
	UserService *service.UserService
}

// ServeHTTP handles account registration.
//
//	@Summary		Register a new account
//	@Description	Creates a user account with the standard role. Usernames and emails are unique; registering an address that is already taken fails with a duplicate_user error.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		apiclient.RegisterRequest	true	"Account details"
//	@Success		201		{object}	apiclient.UserResponse		"The created account"
//	@Failure		400		{object}	apiclient.APIError			"Missing or invalid fields"
//	@Failure		409		{object}	apiclient.APIError			"Email or username already registered"
//	@Failure		500		{object}	apiclient.APIError			"Internal server error"
//	@Router			/api/v1/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req apiclient.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiclient.ErrValidation.WithMessage("invalid JSON body").WriteError(w)
		return
	}

	user, err := h.UserService.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			apiclient.ErrValidation.WithMessage(err.Error()).WriteError(w)
		case errors.Is(err, service.ErrDuplicateUser):
			log.Info("registration rejected, account exists", "email", req.Email)
			apiclient.ErrDuplicateUser.WriteError(w)
		default:
			log.Error("failed to register user", "err", err)
			apiclient.ErrServerError.WriteError(w)
		}
		return
	}

	log.Info("user registered", "user_id", user.ID, "username", user.Username)

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusCreated, toUserResponse(user))
}
