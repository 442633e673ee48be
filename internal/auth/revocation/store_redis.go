package revocation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
)

var isRevokedDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Namespace: "backoffice",
	Name:      "token_revocation_check_duration_seconds",
	Help:      "Latency of Redis token revocation checks",
	Buckets:   []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025},
})

const revokedTokenKeyPrefix = "trl:jti:"

// RedisTRL shares revocations between BFF instances.
type RedisTRL struct {
	client redis.UniversalClient
}

func NewRedisTRL(client redis.UniversalClient) *RedisTRL {
	return &RedisTRL{client: client}
}

// RevokeToken stores a marker key that Redis expires after ttl.
func (t *RedisTRL) RevokeToken(ctx context.Context, jti string, ttl time.Duration) error {
	if jti == "" {
		return nil
	}
	if err := validateTTL(ttl); err != nil {
		return err
	}
	if err := t.client.Set(ctx, revokedTokenKeyPrefix+jti, "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether the marker key for jti still exists.
func (t *RedisTRL) IsRevoked(ctx context.Context, jti string) (bool, error) {
	start := time.Now()
	defer func() {
		isRevokedDuration.Observe(time.Since(start).Seconds())
	}()

	if jti == "" {
		return false, nil
	}
	_, err := t.client.Get(ctx, revokedTokenKeyPrefix+jti).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check token revocation: %w", err)
	}
	return true, nil
}
