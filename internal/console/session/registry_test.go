package session

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	checklistmocks "backoffice/internal/console/checklist/mocks"
	cbmocks "backoffice/internal/console/clientbusiness/mocks"
	mvpmocks "backoffice/internal/console/mvp/mocks"
	paymentsmocks "backoffice/internal/console/payments/mocks"
	searchmocks "backoffice/internal/console/search/mocks"
	"backoffice/internal/platform/metrics"
)

type clientBackend struct {
	*cbmocks.MockClientAPI
	*searchmocks.MockClientDirectory
}

type RegistrySuite struct {
	suite.Suite
	metrics *metrics.Metrics
	deps    Deps
	clock   *fakeClock
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistrySuite))
}

func (s *RegistrySuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.clock = &fakeClock{now: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
	s.deps = Deps{
		Clients: clientBackend{
			MockClientAPI:       cbmocks.NewMockClientAPI(ctrl),
			MockClientDirectory: searchmocks.NewMockClientDirectory(ctrl),
		},
		Businesses: cbmocks.NewMockBusinessAPI(ctrl),
		Checklists: checklistmocks.NewMockChecklistAPI(ctrl),
		Accounts:   mvpmocks.NewMockAccountAPI(ctrl),
		Payments:   paymentsmocks.NewMockPaymentsAPI(ctrl),
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		Metrics:    s.metrics,
	}
}

func (s *RegistrySuite) newRegistry() *Registry {
	return NewRegistry(s.deps, WithIdleTTL(10*time.Minute), WithClock(s.clock.Now))
}

func (s *RegistrySuite) activeSessions() float64 {
	return testutil.ToFloat64(s.metrics.ActiveSessions)
}

func (s *RegistrySuite) TestGetCreatesOncePerSession() {
	r := s.newRegistry()

	first, err := r.Get("S1", "admin@example.com")
	s.Require().NoError(err)
	again, err := r.Get("S1", "admin@example.com")
	s.Require().NoError(err)
	other, err := r.Get("S2", "admin@example.com")
	s.Require().NoError(err)

	s.Same(first, again)
	s.NotSame(first, other)
	s.Equal("admin@example.com", first.ActorID)
	s.Equal(2, r.Len())
	s.Equal(2.0, s.activeSessions())
}

func (s *RegistrySuite) TestGetRejectsEmptySessionID() {
	_, err := s.newRegistry().Get("", "admin@example.com")
	s.ErrorIs(err, errEmptySessionID)
}

func (s *RegistrySuite) TestNewFailsWithoutBackends() {
	_, err := New(Deps{}, "S1", "admin@example.com")
	s.ErrorContains(err, "client store")
}

func (s *RegistrySuite) TestIdleConsolesAreEvicted() {
	r := s.newRegistry()
	_, err := r.Get("S1", "a")
	s.Require().NoError(err)
	s.clock.Advance(6 * time.Minute)
	_, err = r.Get("S2", "b")
	s.Require().NoError(err)

	s.clock.Advance(5 * time.Minute)
	s.Equal(1, r.RemoveIdleAt(s.clock.Now()))
	s.Equal(1, r.Len())
	s.Equal(1.0, s.activeSessions())

	s.clock.Advance(time.Minute)
	_, err = r.Get("S2", "b")
	s.Require().NoError(err)
	s.clock.Advance(9 * time.Minute)
	s.Zero(r.RemoveIdleAt(s.clock.Now()), "use refreshes the idle timer")
}

func (s *RegistrySuite) TestDrop() {
	r := s.newRegistry()
	_, err := r.Get("S1", "a")
	s.Require().NoError(err)

	s.True(r.Drop("S1"))
	s.False(r.Drop("S1"))
	s.Zero(r.Len())
	s.Zero(s.activeSessions())
}

func (s *RegistrySuite) TestCloseDropsEverything() {
	r := s.newRegistry()
	for _, id := range []string{"S1", "S2", "S3"} {
		_, err := r.Get(id, "a")
		s.Require().NoError(err)
	}

	r.Close()

	s.Zero(r.Len())
	s.Zero(s.activeSessions())
}

func (s *RegistrySuite) TestStartCleanupStopsWithContext() {
	r := s.newRegistry()
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- r.StartCleanup(ctx, time.Millisecond) }()

	cancel()

	select {
	case err := <-errCh:
		s.ErrorIs(err, context.Canceled)
	case <-time.After(2 * time.Second):
		s.FailNow("cleanup loop did not stop")
	}
}
