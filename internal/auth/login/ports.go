package login

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks RevocationList,AuditPublisher,Lockout

import (
	"context"
	"time"

	audit "backoffice/pkg/platform/audit"
)

type RevocationList interface {
	RevokeToken(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Lockout throttles repeated failed logins per email and client IP.
type Lockout interface {
	Check(ctx context.Context, email, ip string) error
	RecordFailure(ctx context.Context, email, ip string) (bool, error)
	Clear(ctx context.Context, email, ip string) error
}
