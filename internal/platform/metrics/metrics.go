package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the console.
// A nil *Metrics is valid and records nothing, so stores can be built without it.
type Metrics struct {
	BackendRequestDuration *prometheus.HistogramVec
	StoreActions           *prometheus.CounterVec
	StaleResponses         *prometheus.CounterVec
	ActiveSessions         prometheus.Gauge
	HTTPRequestDuration    *prometheus.HistogramVec
	LoginAttempts          *prometheus.CounterVec
}

// New creates and registers all console metrics on reg.
// Pass prometheus.DefaultRegisterer in main and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		BackendRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "backoffice_backend_request_duration_seconds",
			Help:    "Latency of calls to the remote backend API",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"resource", "method", "outcome"}),
		StoreActions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "backoffice_store_actions_total",
			Help: "Console store actions by outcome (ok, error, noop)",
		}, []string{"store", "action", "outcome"}),
		StaleResponses: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "backoffice_store_stale_responses_total",
			Help: "Backend responses dropped because a newer request for the same projection was issued",
		}, []string{"projection"}),
		ActiveSessions: factory.NewGauge(prometheus.GaugeOpts{
			Name: "backoffice_console_sessions_active",
			Help: "Console sessions currently held in memory",
		}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "backoffice_http_request_duration_seconds",
			Help:    "Latency of BFF HTTP requests",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"route", "method", "status"}),
		LoginAttempts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "backoffice_login_attempts_total",
			Help: "Admin login attempts by outcome",
		}, []string{"outcome"}),
	}
}

// ObserveBackendRequest records one backend call.
// Call with time.Now() taken before the request was sent.
func (m *Metrics) ObserveBackendRequest(resource, method, outcome string, start time.Time) {
	if m == nil {
		return
	}
	m.BackendRequestDuration.WithLabelValues(resource, method, outcome).Observe(time.Since(start).Seconds())
}

// IncStoreAction counts a completed store action.
func (m *Metrics) IncStoreAction(store, action, outcome string) {
	if m == nil {
		return
	}
	m.StoreActions.WithLabelValues(store, action, outcome).Inc()
}

// IncStaleResponse counts a dropped out-of-date response.
func (m *Metrics) IncStaleResponse(projection string) {
	if m == nil {
		return
	}
	m.StaleResponses.WithLabelValues(projection).Inc()
}

// SetActiveSessions publishes the session registry size.
func (m *Metrics) SetActiveSessions(n int) {
	if m == nil {
		return
	}
	m.ActiveSessions.Set(float64(n))
}

// ObserveHTTPRequest records one BFF request.
func (m *Metrics) ObserveHTTPRequest(route, method, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestDuration.WithLabelValues(route, method, status).Observe(d.Seconds())
}

// IncLoginAttempt counts a login by outcome ("success", "invalid_credentials", "error").
func (m *Metrics) IncLoginAttempt(outcome string) {
	if m == nil {
		return
	}
	m.LoginAttempts.WithLabelValues(outcome).Inc()
}
