package httpx

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/taskflowhq/taskflow/pkg/jwtx"
	"github.com/taskflowhq/taskflow/pkg/slogx"
)

// AuthnMiddleware rejects requests without a valid bearer session token and
// attaches the resolved identity to the request context for downstream
// handlers. Verification is stateless, there is no session lookup.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, "invalid_token", "missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				if errors.Is(err, jwtx.ErrExpired) {
					writeBearerError(w, "expired_token", "token expired")
					return
				}
				log.Warn("jwt verify failed", "err", err)
				writeBearerError(w, "invalid_token", "token verification failed")
				return
			}

			// MFA challenge tokens prove half a login, not an identity.
			if claims.Scope != jwtx.ScopeSession {
				writeBearerError(w, "invalid_token", "token verification failed")
				return
			}

			ctx = contextWithAuth(ctx, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func contextWithAuth(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, c.Subject)
	ctx = context.WithValue(ctx, CtxKeyRole, c.Role)
	ctx = context.WithValue(ctx, CtxKeyClaims, c)
	return ctx
}

// RFC 6750-compliant error response for bearer auth. The header always says
// invalid_token (the only code RFC 6750 defines for bad credentials), the
// body carries the finer-grained kind.
func writeBearerError(w http.ResponseWriter, kind, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteJSON(w, http.StatusUnauthorized, map[string]string{
		"error":   kind,
		"message": desc,
	})
}
