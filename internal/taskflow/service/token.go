package service

import (
	"errors"
	"time"

	"github.com/taskflowhq/taskflow/internal/taskflow/domain"
	"github.com/taskflowhq/taskflow/pkg/jwtx"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Identity is the decoded result of a verified token.
type Identity struct {
	UserID   string
	Role     string
	Username string
}

// TokenService mints and verifies the stateless session tokens. There is no
// revocation list: a leaked token stays valid until its expiry, which is why
// the TTL is bounded.
type TokenService struct {
	Signer   jwtx.Signer
	Verifier jwtx.Verifier
	Issuer   string

	SessionTTL   time.Duration // session token lifetime
	ChallengeTTL time.Duration // MFA challenge token lifetime
}

// Issue produces a signed session token for the user.
func (s *TokenService) Issue(user domain.User) (string, error) {
	claims := jwtx.NewClaims(
		user.ID,
		jwtx.ScopeSession,
		user.Role,
		user.Username,
		s.Issuer,
		s.SessionTTL,
		time.Now().UTC(),
	)
	return s.Signer.Sign(claims)
}

// Verify checks a session token and returns the identity it encodes.
func (s *TokenService) Verify(token string) (Identity, error) {
	claims, err := s.verifyScoped(token, jwtx.ScopeSession)
	if err != nil {
		return Identity{}, err
	}
	return Identity{
		UserID:   claims.Subject,
		Role:     claims.Role,
		Username: claims.Username,
	}, nil
}

// IssueMFAChallenge produces a short-lived challenge token after the first
// login factor passes. It cannot be used against protected routes.
func (s *TokenService) IssueMFAChallenge(user domain.User) (string, error) {
	claims := jwtx.NewClaims(
		user.ID,
		jwtx.ScopeMFAChallenge,
		user.Role,
		user.Username,
		s.Issuer,
		s.ChallengeTTL,
		time.Now().UTC(),
	)
	return s.Signer.Sign(claims)
}

// VerifyMFAChallenge checks a challenge token and returns the user id that
// still owes a second factor.
func (s *TokenService) VerifyMFAChallenge(token string) (string, error) {
	claims, err := s.verifyScoped(token, jwtx.ScopeMFAChallenge)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

func (s *TokenService) verifyScoped(token, scope string) (jwtx.Claims, error) {
	claims, err := s.Verifier.Verify(token)
	if err != nil {
		if errors.Is(err, jwtx.ErrExpired) {
			return jwtx.Claims{}, ErrExpiredToken
		}
		return jwtx.Claims{}, ErrInvalidToken
	}

	// Scope confusion between session and challenge tokens is a hard fail.
	if claims.Scope != scope {
		return jwtx.Claims{}, ErrInvalidToken
	}

	return claims, nil
}
