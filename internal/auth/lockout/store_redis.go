package lockout

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	failuresKeyPrefix = "lockout:failures:"
	lockedKeyPrefix   = "lockout:locked:"
)

// RedisStore shares lockouts between BFF instances. The failure counter
// expires one window after the latest failure, which makes the window slide.
type RedisStore struct {
	client redis.UniversalClient
}

func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) (*Record, error) {
	vals, err := s.client.MGet(ctx, failuresKeyPrefix+key, lockedKeyPrefix+key).Result()
	if err != nil {
		return nil, fmt.Errorf("read lockout: %w", err)
	}
	if vals[0] == nil && vals[1] == nil {
		return nil, nil
	}
	r := &Record{Key: key}
	if raw, ok := vals[0].(string); ok {
		r.Failures, _ = strconv.Atoi(raw)
	}
	if raw, ok := vals[1].(string); ok {
		if unix, err := strconv.ParseInt(raw, 10, 64); err == nil {
			until := time.Unix(unix, 0)
			r.LockedUntil = &until
		}
	}
	return r, nil
}

func (s *RedisStore) RecordFailure(ctx context.Context, key string, now time.Time, window time.Duration) (*Record, error) {
	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, failuresKeyPrefix+key)
	pipe.Expire(ctx, failuresKeyPrefix+key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("record login failure: %w", err)
	}
	return &Record{Key: key, Failures: int(incr.Val()), LastFailureAt: now}, nil
}

// Lock stores the unlock time and lets Redis expire the marker at that time.
func (s *RedisStore) Lock(ctx context.Context, key string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return errors.New("lock must end in the future")
	}
	if err := s.client.Set(ctx, lockedKeyPrefix+key, strconv.FormatInt(until.Unix(), 10), ttl).Err(); err != nil {
		return fmt.Errorf("lock login: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, failuresKeyPrefix+key, lockedKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("clear lockout: %w", err)
	}
	return nil
}
