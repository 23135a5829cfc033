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

type LoginHandler struct {
	UserService  *service.UserService
	TokenService *service.TokenService
}

// ServeHTTP handles password login.
//
//	@Summary		Log in with email and password
//	@Description	Verifies credentials and returns a signed session token. Accounts with MFA enabled instead receive a short-lived challenge token that must be exchanged at /api/v1/auth/mfa together with a TOTP code.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		apiclient.LoginRequest	true	"Credentials"
//	@Success		200		{object}	apiclient.LoginResponse	"Session token, or an MFA challenge"
//	@Failure		400		{object}	apiclient.APIError		"Malformed request"
//	@Failure		401		{object}	apiclient.APIError		"Unknown email or wrong password"
//	@Failure		429		{object}	apiclient.APIError		"Too many attempts"
//	@Failure		500		{object}	apiclient.APIError		"Internal server error"
//	@Router			/api/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req apiclient.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiclient.ErrValidation.WithMessage("invalid JSON body").WriteError(w)
		return
	}

	user, err := h.UserService.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			log.Info("login rejected", "email", req.Email)
			apiclient.ErrInvalidCredentials.WriteError(w)
			return
		}
		log.Error("failed to authenticate user", "err", err)
		apiclient.ErrServerError.WriteError(w)
		return
	}

	// MFA accounts do not get a session from the password alone. Hand back
	// a challenge token the client exchanges together with a TOTP code.
	if user.HasMFA() {
		challenge, err := h.TokenService.IssueMFAChallenge(user)
		if err != nil {
			log.Error("failed to issue MFA challenge", "user_id", user.ID, "err", err)
			apiclient.ErrServerError.WriteError(w)
			return
		}

		httpx.NoCache(w)
		httpx.WriteJSON(w, http.StatusOK, apiclient.LoginResponse{
			MFARequired: true,
			MFAToken:    challenge,
		})
		return
	}

	token, err := h.TokenService.Issue(user)
	if err != nil {
		log.Error("failed to issue token", "user_id", user.ID, "err", err)
		apiclient.ErrServerError.WriteError(w)
		return
	}

	log.Info("user logged in", "user_id", user.ID)

	userResp := toUserResponse(user)
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, apiclient.LoginResponse{
		Token: token,
		User:  &userResp,
	})
}
