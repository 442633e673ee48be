package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"backoffice/internal/platform/metrics"
)

const DefaultIdleTTL = 30 * time.Minute

var errEmptySessionID = errors.New("session id is required")

type entry struct {
	console  *Console
	lastSeen time.Time
}

// Registry maps session ids to consoles. Consoles are created on first use
// and evicted once idle for longer than the TTL.
type Registry struct {
	deps    Deps
	ttl     time.Duration
	now     func() time.Time
	metrics *metrics.Metrics

	mu       sync.Mutex
	sessions map[string]*entry
}

type RegistryOption func(*Registry)

func WithIdleTTL(ttl time.Duration) RegistryOption {
	return func(r *Registry) {
		if ttl > 0 {
			r.ttl = ttl
		}
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) RegistryOption {
	return func(r *Registry) {
		r.now = now
	}
}

func NewRegistry(deps Deps, opts ...RegistryOption) *Registry {
	r := &Registry{
		deps:     deps,
		ttl:      DefaultIdleTTL,
		now:      time.Now,
		metrics:  deps.Metrics,
		sessions: make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Get returns the console of sessionID, creating it for actorID if needed.
func (r *Registry) Get(sessionID, actorID string) (*Console, error) {
	if sessionID == "" {
		return nil, errEmptySessionID
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.sessions[sessionID]; ok {
		e.lastSeen = r.now()
		return e.console, nil
	}
	c, err := New(r.deps, sessionID, actorID)
	if err != nil {
		return nil, err
	}
	r.sessions[sessionID] = &entry{console: c, lastSeen: r.now()}
	r.metrics.SetActiveSessions(len(r.sessions))
	return c, nil
}

// Drop discards sessionID's console. It reports whether one existed.
func (r *Registry) Drop(sessionID string) bool {
	r.mu.Lock()
	e, ok := r.sessions[sessionID]
	if ok {
		delete(r.sessions, sessionID)
		r.metrics.SetActiveSessions(len(r.sessions))
	}
	r.mu.Unlock()

	if ok {
		e.console.Reset()
	}
	return ok
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// StartCleanup evicts idle consoles every interval until ctx is cancelled.
func (r *Registry) StartCleanup(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.RemoveIdleAt(r.now())
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// RemoveIdleAt evicts every console last used more than the TTL before now
// and returns how many it removed.
func (r *Registry) RemoveIdleAt(now time.Time) int {
	r.mu.Lock()
	var idle []*Console
	for id, e := range r.sessions {
		if now.Sub(e.lastSeen) > r.ttl {
			idle = append(idle, e.console)
			delete(r.sessions, id)
		}
	}
	r.metrics.SetActiveSessions(len(r.sessions))
	r.mu.Unlock()

	for _, c := range idle {
		c.Reset()
	}
	return len(idle)
}

// Close drops every console.
func (r *Registry) Close() {
	r.mu.Lock()
	all := r.sessions
	r.sessions = make(map[string]*entry)
	r.metrics.SetActiveSessions(0)
	r.mu.Unlock()

	for _, e := range all {
		e.console.Reset()
	}
}
