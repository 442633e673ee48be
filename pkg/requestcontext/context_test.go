package requestcontext

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEmptyContext(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, ActorID(ctx))
	assert.Empty(t, SessionID(ctx))
	assert.Empty(t, ClientIP(ctx))
	assert.Empty(t, RequestID(ctx))
	assert.WithinDuration(t, time.Now(), Now(ctx), time.Second)
}

func TestRoundTrip(t *testing.T) {
	at := time.Date(2025, 2, 10, 8, 30, 0, 0, time.UTC)
	ctx := WithActorID(context.Background(), "admin@example.com")
	ctx = WithSessionID(ctx, "sess-1")
	ctx = WithTokenID(ctx, "jti-1")
	ctx = WithClientMetadata(ctx, "10.0.0.1", "Mozilla/5.0", "Firefox 120 / Linux")
	ctx = WithRequestID(ctx, "req-1")
	ctx = WithTime(ctx, at)

	assert.Equal(t, "admin@example.com", ActorID(ctx))
	assert.Equal(t, "sess-1", SessionID(ctx))
	assert.Equal(t, "jti-1", TokenID(ctx))
	assert.Equal(t, "10.0.0.1", ClientIP(ctx))
	assert.Equal(t, "Mozilla/5.0", UserAgent(ctx))
	assert.Equal(t, "Firefox 120 / Linux", Device(ctx))
	assert.Equal(t, "req-1", RequestID(ctx))
	assert.Equal(t, at, Now(ctx))
}
