//go:build integration

package lockout

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"backoffice/pkg/testutil/containers"
)

type RedisStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	store *RedisStore
}

func TestRedisStoreSuite(t *testing.T) {
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) SetupSuite() {
	s.redis = containers.GetManager().GetRedis(s.T())
	s.store = NewRedisStore(s.redis.Client)
}

func (s *RedisStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisStoreSuite) TestRecordFailureCounts() {
	ctx := context.Background()
	now := time.Now()

	for want := 1; want <= 3; want++ {
		r, err := s.store.RecordFailure(ctx, "admin:ip", now, time.Minute)
		s.Require().NoError(err)
		s.Equal(want, r.Failures)
	}

	ttl, err := s.redis.Client.TTL(ctx, failuresKeyPrefix+"admin:ip").Result()
	s.Require().NoError(err)
	s.Greater(ttl, time.Duration(0))
}

func (s *RedisStoreSuite) TestLockAndClear() {
	ctx := context.Background()
	until := time.Now().Add(time.Minute).Truncate(time.Second)

	missing, err := s.store.Get(ctx, "admin:ip")
	s.Require().NoError(err)
	s.Nil(missing)

	_, err = s.store.RecordFailure(ctx, "admin:ip", time.Now(), time.Minute)
	s.Require().NoError(err)
	s.Require().NoError(s.store.Lock(ctx, "admin:ip", until))

	r, err := s.store.Get(ctx, "admin:ip")
	s.Require().NoError(err)
	s.Equal(1, r.Failures)
	s.Require().NotNil(r.LockedUntil)
	s.True(until.Equal(*r.LockedUntil))

	s.Require().NoError(s.store.Clear(ctx, "admin:ip"))
	r, err = s.store.Get(ctx, "admin:ip")
	s.Require().NoError(err)
	s.Nil(r)
}
