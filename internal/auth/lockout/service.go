// Package lockout throttles console logins: too many failed attempts for an
// email from one client IP lock that pair out for a while.
package lockout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	dErrors "backoffice/pkg/domain-errors"
)

// Store persists failure records. Implementations must make RecordFailure
// atomic per key.
type Store interface {
	Get(ctx context.Context, key string) (*Record, error)
	// RecordFailure counts a failure at now, restarting the count when the
	// previous failure is older than window.
	RecordFailure(ctx context.Context, key string, now time.Time, window time.Duration) (*Record, error)
	Lock(ctx context.Context, key string, until time.Time) error
	Clear(ctx context.Context, key string) error
}

// LockedError is returned by Check while a pair is locked.
type LockedError struct {
	RetryAfter time.Duration
}

var errLocked = dErrors.New(dErrors.CodeRateLimited, "too many failed login attempts")

func (e *LockedError) Error() string {
	return fmt.Sprintf("%v, retry in %s", errLocked, e.RetryAfter.Round(time.Second))
}

func (e *LockedError) Unwrap() error {
	return errLocked
}

type Service struct {
	store  Store
	config Config
	logger *slog.Logger
	now    func() time.Time
}

type Option func(*Service)

func WithConfig(cfg Config) Option {
	return func(s *Service) {
		if cfg.Attempts > 0 {
			s.config.Attempts = cfg.Attempts
		}
		if cfg.Window > 0 {
			s.config.Window = cfg.Window
		}
		if cfg.Duration > 0 {
			s.config.Duration = cfg.Duration
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(store Store, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, errors.New("lockout store is required")
	}
	s := &Service{
		store:  store,
		config: DefaultConfig(),
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Check returns a *LockedError while the pair is locked. A store failure
// rejects the attempt.
func (s *Service) Check(ctx context.Context, email, ip string) error {
	record, err := s.store.Get(ctx, Key(email, ip))
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to read login lockout")
	}
	now := s.now()
	if record.IsLockedAt(now) {
		return &LockedError{RetryAfter: record.LockedUntil.Sub(now)}
	}
	return nil
}

// RecordFailure counts a failed login and reports whether it locked the pair.
func (s *Service) RecordFailure(ctx context.Context, email, ip string) (bool, error) {
	key := Key(email, ip)
	now := s.now()
	record, err := s.store.RecordFailure(ctx, key, now, s.config.Window)
	if err != nil {
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to record login failure")
	}
	if record.Failures < s.config.Attempts {
		return false, nil
	}

	until := now.Add(s.config.Duration)
	if err := s.store.Lock(ctx, key, until); err != nil {
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to lock login")
	}
	s.logger.WarnContext(ctx, "console login locked",
		"email", email,
		"failures", record.Failures,
		"locked_until", until,
	)
	return true, nil
}

// Clear forgets the failures of a pair after a successful login.
func (s *Service) Clear(ctx context.Context, email, ip string) error {
	if err := s.store.Clear(ctx, Key(email, ip)); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to clear login failures")
	}
	return nil
}
