package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"backoffice/internal/auth/token"
	dErrors "backoffice/pkg/domain-errors"
	"backoffice/pkg/platform/httputil"
	"backoffice/pkg/requestcontext"
)

// Authenticator validates a raw bearer token, including the revocation check.
type Authenticator interface {
	Authenticate(ctx context.Context, raw string) (*token.Claims, error)
}

type contextKeyClaims struct{}

// Claims returns the validated token claims set by RequireAuth.
func Claims(ctx context.Context) *token.Claims {
	if c, ok := ctx.Value(contextKeyClaims{}).(*token.Claims); ok {
		return c
	}
	return nil
}

// WithClaims injects claims into a context. Handler tests use it to skip
// RequireAuth.
func WithClaims(ctx context.Context, c *token.Claims) context.Context {
	ctx = context.WithValue(ctx, contextKeyClaims{}, c)
	ctx = requestcontext.WithActorID(ctx, c.ActorID())
	ctx = requestcontext.WithSessionID(ctx, c.SessionID)
	return requestcontext.WithTokenID(ctx, c.ID)
}

// RequireAuth rejects requests without a valid, unrevoked bearer token and
// binds the actor, console session and jti to the request context.
func RequireAuth(auth Authenticator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			requestID := requestcontext.RequestID(ctx)

			raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || strings.TrimSpace(raw) == "" {
				logger.WarnContext(ctx, "unauthorized access - missing token",
					"request_id", requestID,
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "missing bearer token"))
				return
			}

			claims, err := auth.Authenticate(ctx, strings.TrimSpace(raw))
			if err != nil {
				if dErrors.HasCode(err, dErrors.CodeUnauthorized) {
					logger.WarnContext(ctx, "unauthorized access - invalid token",
						"request_id", requestID,
						"error", err,
					)
				} else {
					logger.ErrorContext(ctx, "token authentication failed",
						"request_id", requestID,
						"error", err,
					)
				}
				httputil.WriteError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(ctx, claims)))
		})
	}
}
