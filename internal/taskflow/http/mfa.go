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

// MFAHandler handles all TOTP-related endpoints.
type MFAHandler struct {
	UserService  *service.UserService
	TokenService *service.TokenService
	MFAService   *service.MFAService
}

// HandleCompleteLogin handles POST /api/v1/auth/mfa.
//
//	@Summary		Complete an MFA login
//	@Description	Exchanges an MFA challenge token plus a TOTP code for a session token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		apiclient.MFALoginRequest	true	"Challenge token and TOTP code"
//	@Success		200		{object}	apiclient.LoginResponse		"Session token"
//	@Failure		400		{object}	apiclient.APIError			"Malformed request"
//	@Failure		401		{object}	apiclient.APIError			"Invalid or expired challenge, or wrong code"
//	@Failure		500		{object}	apiclient.APIError			"Internal server error"
//	@Router			/api/v1/auth/mfa [post].
func (h *MFAHandler) HandleCompleteLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req apiclient.MFALoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiclient.ErrValidation.WithMessage("invalid JSON body").WriteError(w)
		return
	}

	userID, err := h.TokenService.VerifyMFAChallenge(req.MFAToken)
	if err != nil {
		if errors.Is(err, service.ErrExpiredToken) {
			apiclient.ErrExpiredToken.WithMessage("the MFA challenge has expired, log in again").WriteError(w)
			return
		}
		apiclient.ErrInvalidToken.WithMessage("invalid MFA challenge token").WriteError(w)
		return
	}

	if err := h.MFAService.VerifyCode(ctx, userID, req.Code); err != nil {
		log.Info("MFA code rejected", "user_id", userID)
		apiclient.ErrInvalidCredentials.WithMessage("invalid authenticator code").WriteError(w)
		return
	}

	user, err := h.UserService.GetUserByID(ctx, userID)
	if err != nil {
		log.Error("failed to load user", "user_id", userID, "err", err)
		apiclient.ErrServerError.WriteError(w)
		return
	}

	token, err := h.TokenService.Issue(user)
	if err != nil {
		log.Error("failed to issue token", "user_id", userID, "err", err)
		apiclient.ErrServerError.WriteError(w)
		return
	}

	log.Info("user logged in with MFA", "user_id", userID)

	userResp := toUserResponse(user)
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, apiclient.LoginResponse{
		Token: token,
		User:  &userResp,
	})
}

// HandleEnroll handles POST /api/v1/auth/mfa/enroll.
//
//	@Summary		Enroll in TOTP MFA
//	@Description	Generates a TOTP secret for the authenticated user. The secret is pending until confirmed via /api/v1/auth/mfa/activate.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	apiclient.MFAEnrollResponse	"Secret and otpauth URL"
//	@Failure		400	{object}	apiclient.APIError			"MFA already enabled"
//	@Failure		401	{object}	apiclient.APIError			"Invalid or missing access token"
//	@Failure		500	{object}	apiclient.APIError			"Internal server error"
//	@Router			/api/v1/auth/mfa/enroll [post].
func (h *MFAHandler) HandleEnroll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		apiclient.ErrInvalidToken.WriteError(w)
		return
	}

	enrollment, err := h.MFAService.Enroll(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrMFAAlreadyEnabled) {
			apiclient.ErrValidation.WithMessage("MFA is already enabled for this account").WriteError(w)
			return
		}
		log.Error("failed to enroll TOTP", "user_id", userID, "err", err)
		apiclient.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, apiclient.MFAEnrollResponse{
		Secret: enrollment.Secret,
		URL:    enrollment.URL,
	})
}

// HandleActivate handles POST /api/v1/auth/mfa/activate.
//
//	@Summary		Activate TOTP MFA
//	@Description	Confirms a pending enrollment with a code from the authenticator app. From this point logins require the code.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Accept			json
//	@Success		204	"MFA enabled"
//	@Failure		400	{object}	apiclient.APIError	"No pending enrollment or wrong code"
//	@Failure		401	{object}	apiclient.APIError	"Invalid or missing access token"
//	@Failure		500	{object}	apiclient.APIError	"Internal server error"
//	@Router			/api/v1/auth/mfa/activate [post].
func (h *MFAHandler) HandleActivate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		apiclient.ErrInvalidToken.WriteError(w)
		return
	}

	var req apiclient.MFAActivateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiclient.ErrValidation.WithMessage("invalid JSON body").WriteError(w)
		return
	}

	if err := h.MFAService.Activate(ctx, userID, req.Code); err != nil {
		switch {
		case errors.Is(err, service.ErrMFANotEnrolled):
			apiclient.ErrValidation.WithMessage("no pending MFA enrollment").WriteError(w)
		case errors.Is(err, service.ErrInvalidMFACode):
			apiclient.ErrValidation.WithMessage("invalid authenticator code").WriteError(w)
		default:
			log.Error("failed to activate MFA", "user_id", userID, "err", err)
			apiclient.ErrServerError.WriteError(w)
		}
		return
	}

	log.Info("MFA activated", "user_id", userID)
	w.WriteHeader(http.StatusNoContent)
}
