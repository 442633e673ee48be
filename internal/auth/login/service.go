// Package login authenticates the console operator and manages the lifetime
// of the session tokens it hands out.
package login

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"backoffice/internal/auth/token"
	"backoffice/internal/platform/metrics"
	dErrors "backoffice/pkg/domain-errors"
	audit "backoffice/pkg/platform/audit"
	"backoffice/pkg/requestcontext"
)

// Session is returned to the browser after a successful login.
type Session struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	SessionID   string    `json:"session_id"`
}

// Credentials identify the single admin account.
type Credentials struct {
	Email        string
	PasswordHash string
}

type Service struct {
	email        string
	passwordHash []byte
	tokens       *token.Service
	revocations  RevocationList
	auditor      AuditPublisher
	lockout      Lockout
	metrics      *metrics.Metrics
	logger       *slog.Logger
	now          func() time.Time
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditor = publisher
	}
}

// WithLockout rejects logins for an email and client IP after repeated failures.
func WithLockout(l Lockout) Option {
	return func(s *Service) {
		s.lockout = l
	}
}

// WithClock replaces time.Now when computing revocation TTLs.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(creds Credentials, tokens *token.Service, revocations RevocationList, opts ...Option) (*Service, error) {
	if creds.Email == "" || creds.PasswordHash == "" {
		return nil, errors.New("admin email and password hash are required")
	}
	if _, err := bcrypt.Cost([]byte(creds.PasswordHash)); err != nil {
		return nil, fmt.Errorf("admin password hash: %w", err)
	}
	if tokens == nil || revocations == nil {
		return nil, errors.New("token service and revocation list are required")
	}
	s := &Service{
		email:        normalizeEmail(creds.Email),
		passwordHash: []byte(creds.PasswordHash),
		tokens:       tokens,
		revocations:  revocations,
		logger:       slog.Default(),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

var errInvalidCredentials = dErrors.New(dErrors.CodeUnauthorized, "invalid email or password")

// Login checks email and password against the admin account and issues a
// token bound to a new console session.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	email = normalizeEmail(email)
	ip := requestcontext.ClientIP(ctx)
	if s.lockout != nil {
		if err := s.lockout.Check(ctx, email, ip); err != nil {
			s.metrics.IncLoginAttempt("locked")
			s.logger.WarnContext(ctx, "console login refused", "email", email, "error", err)
			return nil, err
		}
	}

	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.email)) == 1
	// bcrypt runs even for an unknown email so both failures cost the same.
	passwordOK := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)) == nil

	if !emailOK || !passwordOK {
		s.metrics.IncLoginAttempt("invalid_credentials")
		s.emit(ctx, audit.Event{Action: string(audit.EventLoginFailed), Subject: email})
		s.logger.WarnContext(ctx, "console login rejected", "email", email)
		s.recordFailure(ctx, email, ip)
		return nil, errInvalidCredentials
	}
	if s.lockout != nil {
		if err := s.lockout.Clear(ctx, email, ip); err != nil {
			s.logger.WarnContext(ctx, "failed to clear login failures", "error", err)
		}
	}

	signed, claims, err := s.tokens.Issue(s.email)
	if err != nil {
		s.metrics.IncLoginAttempt("error")
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to issue token")
	}
	s.metrics.IncLoginAttempt("success")

	ctx = requestcontext.WithActorID(ctx, s.email)
	ctx = requestcontext.WithSessionID(ctx, claims.SessionID)
	ctx = requestcontext.WithTokenID(ctx, claims.ID)
	s.emit(ctx, audit.Event{Action: string(audit.EventLoginSucceeded), Subject: s.email})
	s.logger.InfoContext(ctx, "console login", "session_id", claims.SessionID)

	return &Session{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresAt:   claims.ExpiresAt.Time,
		SessionID:   claims.SessionID,
	}, nil
}

// Authenticate validates a bearer token and rejects revoked ones. A failing
// revocation check rejects the token.
func (s *Service) Authenticate(ctx context.Context, raw string) (*token.Claims, error) {
	claims, err := s.tokens.Validate(raw)
	if err != nil {
		return nil, err
	}
	revoked, err := s.revocations.IsRevoked(ctx, claims.ID)
	if err != nil {
		s.logger.ErrorContext(ctx, "token revocation check failed", "error", err)
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "could not verify token")
	}
	if revoked {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "token has been revoked")
	}
	return claims, nil
}

// Logout revokes the token for the rest of its lifetime.
func (s *Service) Logout(ctx context.Context, claims *token.Claims) error {
	ttl := claims.Remaining(s.now())
	if ttl > 0 {
		if err := s.revocations.RevokeToken(ctx, claims.ID, ttl); err != nil {
			return dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to revoke token")
		}
	}
	s.emit(ctx, audit.Event{Action: string(audit.EventLogout), Subject: claims.ActorID()})
	return nil
}

// recordFailure counts the failed attempt. The caller still gets the invalid
// credentials error when counting fails.
func (s *Service) recordFailure(ctx context.Context, email, ip string) {
	if s.lockout == nil {
		return
	}
	locked, err := s.lockout.RecordFailure(ctx, email, ip)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to record login failure", "error", err)
		return
	}
	if locked {
		s.emit(ctx, audit.Event{Action: string(audit.EventLoginLocked), Subject: email})
	}
}

func (s *Service) emit(ctx context.Context, event audit.Event) {
	if s.auditor == nil {
		return
	}
	if err := s.auditor.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to emit audit event", "action", event.Action, "error", err)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
