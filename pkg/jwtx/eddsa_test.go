package jwtx_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/taskflowhq/taskflow/pkg/cryptox"
	"github.com/taskflowhq/taskflow/pkg/jwtx"
)

const testIssuer = "taskflow-test"

func newSignerVerifier(t *testing.T) (*jwtx.EdDSASigner, *jwtx.EdDSAVerifier) {
	t.Helper()

	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)

	signer, err := jwtx.NewSignerEdDSA(pemKey)
	require.NoError(t, err)

	return signer, jwtx.NewVerifierEdDSA(signer.PublicKey(), testIssuer)
}

func TestSignAndVerifyRoundTrip(t *testing.T) {
	signer, verifier := newSignerVerifier(t)

	claims := jwtx.NewClaims(
		"01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV",
		jwtx.ScopeSession,
		"standard",
		"alice",
		testIssuer,
		time.Hour,
		time.Now().UTC(),
	)

	token, err := signer.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, claims.Subject, got.Subject)
	require.Equal(t, "standard", got.Role)
	require.Equal(t, "alice", got.Username)
	require.Equal(t, jwtx.ScopeSession, got.Scope)
}

func TestVerifyRejectsExpired(t *testing.T) {
	signer, verifier := newSignerVerifier(t)

	// Claims whose exp is already in the past
	claims := jwtx.NewClaims(
		"user", jwtx.ScopeSession, "standard", "alice",
		testIssuer, time.Minute, time.Now().UTC().Add(-time.Hour),
	)

	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	signer, _ := newSignerVerifier(t)
	_, otherVerifier := newSignerVerifier(t)

	claims := jwtx.NewClaims(
		"user", jwtx.ScopeSession, "standard", "alice",
		testIssuer, time.Hour, time.Now().UTC(),
	)

	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = otherVerifier.Verify(token)
	require.Error(t, err)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	signer, verifier := newSignerVerifier(t)

	claims := jwtx.NewClaims(
		"user", jwtx.ScopeSession, "standard", "alice",
		"someone-else", time.Hour, time.Now().UTC(),
	)

	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrIssuer)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	_, verifier := newSignerVerifier(t)

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := verifier.Verify(tok)
		require.Error(t, err, "token %q", tok)
	}
}

func TestVerifyRejectsTamperedPayload(t *testing.T) {
	signer, verifier := newSignerVerifier(t)

	claims := jwtx.NewClaims(
		"user", jwtx.ScopeSession, "standard", "alice",
		testIssuer, time.Hour, time.Now().UTC(),
	)
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	// Flip a character in the payload segment
	tampered := []byte(token)
	mid := len(tampered) / 2
	if tampered[mid] == 'A' {
		tampered[mid] = 'B'
	} else {
		tampered[mid] = 'A'
	}

	_, err = verifier.Verify(string(tampered))
	require.Error(t, err)
}
