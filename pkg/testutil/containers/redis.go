//go:build integration

package containers

import (
	"context"
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"

	"backoffice/internal/platform/config"
	platformredis "backoffice/internal/platform/redis"
)

const redisImage = "redis:7-alpine"

// RedisContainer is a Redis instance reached the way the server reaches it:
// a RedisConfig handed to the platform client.
type RedisContainer struct {
	Container testcontainers.Container
	Config    config.RedisConfig
	Client    *goredis.Client
}

// NewRedisContainer starts Redis and connects with the default pool settings
// of the server config.
func NewRedisContainer(t *testing.T) *RedisContainer {
	t.Helper()
	ctx := context.Background()

	container, err := tcredis.Run(ctx, redisImage)
	if err != nil {
		t.Fatalf("start redis container: %v", err)
	}
	url, err := container.ConnectionString(ctx)
	if err != nil {
		abort(t, container, "redis connection string", err)
	}

	cfg := config.Defaults().Redis
	cfg.URL = url
	client, err := platformredis.New(ctx, cfg)
	if err != nil {
		abort(t, container, "connect redis", err)
	}

	return &RedisContainer{
		Container: container,
		Config:    cfg,
		Client:    client.Client,
	}
}

// FlushAll empties the database between tests.
func (r *RedisContainer) FlushAll(ctx context.Context) error {
	return r.Client.FlushAll(ctx).Err()
}
