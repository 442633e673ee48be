// Package revocation keeps the jti of every logged-out console token until
// the token would have expired anyway.
package revocation

import (
	"fmt"
	"time"

	"backoffice/pkg/platform/sentinel"
)

func validateTTL(ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("ttl must be positive: %w", sentinel.ErrInvalidState)
	}
	return nil
}
