package publisher

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	audit "backoffice/pkg/platform/audit"
	"backoffice/pkg/platform/audit/store/memory"
	"backoffice/pkg/requestcontext"
)

func TestPublisher_SyncMode(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store)
	defer pub.Close()

	err := pub.Emit(context.Background(), audit.Event{
		Subject: "client-1",
		Action:  string(audit.EventManagerAdded),
	})
	require.NoError(t, err)

	events, err := pub.List(context.Background(), "client-1")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, string(audit.EventManagerAdded), events[0].Action)
	assert.NotEmpty(t, events[0].ID)
	assert.Equal(t, audit.CategoryOperations, events[0].Category)
}

func TestPublisher_AsyncDrainsOnClose(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store, WithAsyncBuffer(100))

	for range 10 {
		err := pub.Emit(context.Background(), audit.Event{
			Subject: "client-1",
			Action:  string(audit.EventTransactionDeleted),
		})
		require.NoError(t, err)
	}

	pub.Close()

	events, err := store.ListBySubject(context.Background(), "client-1")
	require.NoError(t, err)
	assert.Len(t, events, 10, "all events should be drained on close")
}

func TestPublisher_EmitAfterCloseWritesInline(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store, WithAsyncBuffer(4))
	pub.Close()
	pub.Close()

	require.NoError(t, pub.Emit(context.Background(), audit.Event{Subject: "c", Action: "logout"}))
	events, err := store.ListBySubject(context.Background(), "c")
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestPublisher_BufferFullReportsError(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store, WithAsyncBuffer(1))
	defer pub.Close()

	var wg sync.WaitGroup
	var mu sync.Mutex
	var errs []error
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := pub.Emit(context.Background(), audit.Event{Subject: "c", Action: "logout"})
			mu.Lock()
			errs = append(errs, err)
			mu.Unlock()
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			assert.ErrorIs(t, err, ErrBufferFull)
		}
	}
}

func TestPublisher_EnrichesFromContext(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store)
	defer pub.Close()

	fixed := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithActorID(context.Background(), "admin@example.com")
	ctx = requestcontext.WithSessionID(ctx, "session-1")
	ctx = requestcontext.WithRequestID(ctx, "req-1")
	ctx = requestcontext.WithClientMetadata(ctx, "10.0.0.1", "curl/8", "curl 8")
	ctx = requestcontext.WithTime(ctx, fixed)

	require.NoError(t, pub.Emit(ctx, audit.Event{Subject: "client-1", Action: string(audit.EventBusinessDeleted)}))

	events, err := pub.List(ctx, "client-1")
	require.NoError(t, err)
	require.Len(t, events, 1)
	e := events[0]
	assert.Equal(t, fixed, e.Timestamp)
	assert.Equal(t, "admin@example.com", e.ActorID)
	assert.Equal(t, "session-1", e.SessionID)
	assert.Equal(t, "req-1", e.RequestID)
	assert.Equal(t, "10.0.0.1", e.ClientIP)
	assert.Equal(t, "curl 8", e.Device)
	assert.Equal(t, audit.CategoryCompliance, e.Category)
}

func TestPublisher_PreservesExistingFields(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store)
	defer pub.Close()

	custom := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithActorID(context.Background(), "from-context")
	require.NoError(t, pub.Emit(ctx, audit.Event{
		ID:        "fixed-id",
		Subject:   "client-1",
		Action:    string(audit.EventLoginFailed),
		ActorID:   "explicit",
		Timestamp: custom,
	}))

	events, err := pub.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "fixed-id", events[0].ID)
	assert.Equal(t, "explicit", events[0].ActorID)
	assert.Equal(t, custom, events[0].Timestamp)
	assert.Equal(t, audit.CategorySecurity, events[0].Category)
}

func TestInMemoryStore_ListRecentNewestFirst(t *testing.T) {
	store := memory.NewInMemoryStore()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range 5 {
		require.NoError(t, store.Append(context.Background(), audit.Event{
			Action:    "logout",
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	recent, err := store.ListRecent(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, base.Add(4*time.Minute), recent[0].Timestamp)
	assert.Equal(t, base.Add(3*time.Minute), recent[1].Timestamp)
}
