package service

import (
	"context"
	"errors"

	"github.com/pquerna/otp/totp"
	"github.com/taskflowhq/taskflow/internal/taskflow/store"
)

var (
	ErrMFAAlreadyEnabled = errors.New("mfa already enabled")
	ErrMFANotEnrolled    = errors.New("mfa enrollment not started")
	ErrInvalidMFACode    = errors.New("invalid mfa code")
)

// MFAService handles optional TOTP second-factor enrollment and checks.
// Secrets live on the user row; there is no separate session table because
// the login challenge is a short-lived signed token.
type MFAService struct {
	Store  store.Store
	Issuer string
}

// Enrollment is the result of starting TOTP enrollment: the secret for
// manual entry and the otpauth:// URL for QR-code apps.
type Enrollment struct {
	Secret string
	URL    string
}

// Enroll generates a TOTP secret for the user and stores it pending
// activation. Enrolling again before activation rotates the secret.
func (s *MFAService) Enroll(ctx context.Context, userID string) (Enrollment, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return Enrollment{}, err
	}

	if user.HasMFA() {
		return Enrollment{}, ErrMFAAlreadyEnabled
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.Issuer,
		AccountName: user.Email,
	})
	if err != nil {
		return Enrollment{}, err
	}

	if err := s.Store.Users().UpdateMFASecret(ctx, user.ID, key.Secret()); err != nil {
		return Enrollment{}, err
	}

	return Enrollment{
		Secret: key.Secret(),
		URL:    key.URL(),
	}, nil
}

// Activate turns MFA on after the user proves they hold the secret by
// submitting one valid code.
func (s *MFAService) Activate(ctx context.Context, userID, code string) error {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if user.HasMFA() {
		return ErrMFAAlreadyEnabled
	}
	if user.MFASecret == nil || *user.MFASecret == "" {
		return ErrMFANotEnrolled
	}

	if !totp.Validate(code, *user.MFASecret) {
		return ErrInvalidMFACode
	}

	return s.Store.Users().EnableMFA(ctx, userID)
}

// VerifyCode checks a login-time TOTP code for an MFA-enabled user.
func (s *MFAService) VerifyCode(ctx context.Context, userID, code string) error {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if !user.HasMFA() {
		return ErrMFANotEnrolled
	}

	if !totp.Validate(code, *user.MFASecret) {
		return ErrInvalidMFACode
	}

	return nil
}
