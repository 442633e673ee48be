package httptransport

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"backoffice/internal/auth/lockout"
	"backoffice/internal/auth/login"
	"backoffice/internal/auth/token"
	"backoffice/internal/platform/middleware"
	dErrors "backoffice/pkg/domain-errors"
	"backoffice/pkg/platform/httputil"
	"backoffice/pkg/requestcontext"
)

// AuthService issues, validates and revokes console tokens.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*login.Session, error)
	Authenticate(ctx context.Context, raw string) (*token.Claims, error)
	Logout(ctx context.Context, claims *token.Claims) error
}

// SessionDropper forgets the console state of a session.
type SessionDropper interface {
	Drop(sessionID string) bool
}

type AuthHandler struct {
	auth     AuthService
	sessions SessionDropper
	logger   *slog.Logger
}

func NewAuthHandler(auth AuthService, sessions SessionDropper, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions, logger: logger}
}

// Register mounts POST /auth/login publicly and POST /auth/logout behind
// RequireAuth.
func (h *AuthHandler) Register(r chi.Router) {
	r.Post("/auth/login", h.handleLogin)
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(h.auth, h.logger))
		r.Post("/auth/logout", h.handleLogout)
	})
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[LoginRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	sess, err := h.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		var locked *lockout.LockedError
		if errors.As(err, &locked) {
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(locked.RetryAfter.Seconds()))))
		}
		if !dErrors.HasCode(err, dErrors.CodeUnauthorized) && !dErrors.HasCode(err, dErrors.CodeRateLimited) {
			h.logger.ErrorContext(ctx, "login failed",
				"request_id", requestID,
				"error", err,
			)
		}
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, sess)
}

func (h *AuthHandler) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claims := middleware.Claims(ctx)
	if claims == nil {
		h.logger.ErrorContext(ctx, "claims missing from context despite auth middleware",
			"request_id", requestcontext.RequestID(ctx),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "authentication context error"))
		return
	}

	if err := h.auth.Logout(ctx, claims); err != nil {
		h.logger.ErrorContext(ctx, "logout failed",
			"request_id", requestcontext.RequestID(ctx),
			"session_id", claims.SessionID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	h.sessions.Drop(claims.SessionID)
	w.WriteHeader(http.StatusNoContent)
}
