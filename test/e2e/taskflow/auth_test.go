package taskflow_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taskflowhq/taskflow/pkg/apiclient"
)

func TestRegisterDuplicateEmail(t *testing.T) {
	client, _ := setupServer(t)

	_, err := client.Register(t.Context(), "dave", "dave@example.com", testPassword)
	require.NoError(t, err)

	// Same email, different username.
	_, err = client.Register(t.Context(), "dave2", "dave@example.com", testPassword)
	requireAPIError(t, err, http.StatusConflict, apiclient.ErrorKindDuplicateUser)

	// Same username, different email.
	_, err = client.Register(t.Context(), "dave", "other@example.com", testPassword)
	requireAPIError(t, err, http.StatusConflict, apiclient.ErrorKindDuplicateUser)
}

func TestRegisterValidation(t *testing.T) {
	client, _ := setupServer(t)

	_, err := client.Register(t.Context(), "eve", "not-an-email", testPassword)
	requireAPIError(t, err, http.StatusBadRequest, apiclient.ErrorKindValidation)

	_, err = client.Register(t.Context(), "eve", "eve@example.com", "short")
	requireAPIError(t, err, http.StatusBadRequest, apiclient.ErrorKindValidation)

	_, err = client.Register(t.Context(), "", "eve@example.com", testPassword)
	requireAPIError(t, err, http.StatusBadRequest, apiclient.ErrorKindValidation)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	client, _ := setupServer(t)

	_, err := client.Register(t.Context(), "frank", "frank@example.com", testPassword)
	require.NoError(t, err)

	_, _, err = client.Login(t.Context(), "frank@example.com", "wrong password wrong")
	requireAPIError(t, err, http.StatusUnauthorized, apiclient.ErrorKindInvalidCredentials)

	// Unknown account reads the same as a wrong password.
	_, _, err = client.Login(t.Context(), "nobody@example.com", testPassword)
	requireAPIError(t, err, http.StatusUnauthorized, apiclient.ErrorKindInvalidCredentials)
}

func TestProtectedRoutesRejectBadTokens(t *testing.T) {
	client, _ := setupServer(t)

	// No token at all.
	_, err := client.NewSessionFromToken("").ListTasks(t.Context())
	requireAPIError(t, err, http.StatusUnauthorized, apiclient.ErrorKindInvalidToken)

	// Garbage token.
	_, err = client.NewSessionFromToken("not.a.jwt").ListTasks(t.Context())
	requireAPIError(t, err, http.StatusUnauthorized, apiclient.ErrorKindInvalidToken)
}

func TestMeReturnsOwnAccount(t *testing.T) {
	client, _ := setupServer(t)
	session := registerAndLogin(t, client, "grace", "grace@example.com")

	me, err := session.Me(t.Context())
	require.NoError(t, err)
	require.Equal(t, "grace", me.Username)
	require.Equal(t, "grace@example.com", me.Email)
	require.False(t, me.MFAEnabled)
}

func TestEmailIsCaseInsensitive(t *testing.T) {
	client, _ := setupServer(t)

	_, err := client.Register(t.Context(), "heidi", "Heidi@Example.COM", testPassword)
	require.NoError(t, err)

	session, _, err := client.Login(t.Context(), "heidi@example.com", testPassword)
	require.NoError(t, err)
	require.NotNil(t, session)
}
