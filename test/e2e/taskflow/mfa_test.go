package taskflow_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/require"

	"github.com/taskflowhq/taskflow/pkg/apiclient"
)

// TestMFAFullFlow enrolls an account in TOTP, activates it, then proves the
// password alone no longer opens a session.
func TestMFAFullFlow(t *testing.T) {
	client, _ := setupServer(t)
	session := registerAndLogin(t, client, "kim", "kim@example.com")

	enrollment, err := session.EnrollMFA(t.Context())
	require.NoError(t, err)
	require.NotEmpty(t, enrollment.Secret)
	require.Contains(t, enrollment.URL, "otpauth://totp/")

	// Wrong code does not activate.
	err = session.ActivateMFA(t.Context(), "000000")
	requireAPIError(t, err, http.StatusBadRequest, apiclient.ErrorKindValidation)

	code, err := totp.GenerateCode(enrollment.Secret, time.Now())
	require.NoError(t, err)
	require.NoError(t, session.ActivateMFA(t.Context(), code))

	me, err := session.Me(t.Context())
	require.NoError(t, err)
	require.True(t, me.MFAEnabled)

	// Password login now hands back a challenge instead of a session.
	newSession, loginResp, err := client.Login(t.Context(), "kim@example.com", testPassword)
	require.NoError(t, err)
	require.Nil(t, newSession)
	require.True(t, loginResp.MFARequired)
	require.NotEmpty(t, loginResp.MFAToken)
	require.Empty(t, loginResp.Token)

	// Wrong code is rejected.
	_, err = client.CompleteMFALogin(t.Context(), loginResp.MFAToken, "000000")
	requireAPIError(t, err, http.StatusUnauthorized, apiclient.ErrorKindInvalidCredentials)

	// Correct code completes the login.
	code, err = totp.GenerateCode(enrollment.Secret, time.Now())
	require.NoError(t, err)
	completed, err := client.CompleteMFALogin(t.Context(), loginResp.MFAToken, code)
	require.NoError(t, err)

	tasks, err := completed.ListTasks(t.Context())
	require.NoError(t, err)
	require.NotNil(t, tasks)
}

// TestMFAChallengeTokenCannotOpenProtectedRoutes proves the short-lived
// challenge token is not usable as a session token.
func TestMFAChallengeTokenCannotOpenProtectedRoutes(t *testing.T) {
	client, _ := setupServer(t)
	session := registerAndLogin(t, client, "leo", "leo@example.com")

	enrollment, err := session.EnrollMFA(t.Context())
	require.NoError(t, err)
	code, err := totp.GenerateCode(enrollment.Secret, time.Now())
	require.NoError(t, err)
	require.NoError(t, session.ActivateMFA(t.Context(), code))

	_, loginResp, err := client.Login(t.Context(), "leo@example.com", testPassword)
	require.NoError(t, err)
	require.True(t, loginResp.MFARequired)

	// Present the challenge token as if it were a session token.
	_, err = client.NewSessionFromToken(loginResp.MFAToken).ListTasks(t.Context())
	requireAPIError(t, err, http.StatusUnauthorized, apiclient.ErrorKindInvalidToken)
}
