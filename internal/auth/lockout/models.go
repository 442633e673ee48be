package lockout

import (
	"strings"
	"time"
)

// Record is the failure history of one email/IP pair.
type Record struct {
	Key           string
	Failures      int
	LastFailureAt time.Time
	LockedUntil   *time.Time
}

// IsLockedAt reports whether the pair is locked at now.
func (r *Record) IsLockedAt(now time.Time) bool {
	return r != nil && r.LockedUntil != nil && now.Before(*r.LockedUntil)
}

// Config tunes the lockout policy.
type Config struct {
	// Attempts failed logins within Window lock the pair for Duration.
	Attempts int
	Window   time.Duration
	Duration time.Duration
}

func DefaultConfig() Config {
	return Config{
		Attempts: 5,
		Window:   15 * time.Minute,
		Duration: 15 * time.Minute,
	}
}

// Key builds the store key for an email and client IP. ':' is escaped so a
// crafted email cannot collide with another pair.
func Key(email, ip string) string {
	return sanitize(email) + ":" + sanitize(ip)
}

func sanitize(s string) string {
	return strings.ReplaceAll(s, ":", "_")
}
