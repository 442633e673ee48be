// Package httptransport is the console BFF: a thin chi layer that authenticates
// the admin, resolves their console session and delegates to its stores
// without embedding business logic.
package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"backoffice/internal/console/session"
	"backoffice/internal/platform/metrics"
	"backoffice/internal/platform/middleware"
	"backoffice/pkg/platform/httputil"
)

const defaultRequestTimeout = 30 * time.Second

// Sessions is what the router needs from the session registry.
type Sessions interface {
	Get(sessionID, actorID string) (*session.Console, error)
	Drop(sessionID string) bool
}

// HealthCheck probes one dependency for GET /healthz.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// Deps wires the router.
type Deps struct {
	Auth           AuthService
	Sessions       Sessions
	Audit          AuditReader
	Logger         *slog.Logger
	Metrics        *metrics.Metrics
	Gatherer       prometheus.Gatherer
	HealthChecks   []HealthCheck
	RequestTimeout time.Duration
}

// NewRouter wires all BFF endpoints.
func NewRouter(d Deps) http.Handler {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}
	timeout := d.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	gatherer := d.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	r := chi.NewRouter()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.ClientMetadata)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.LatencyMiddleware(d.Metrics))

	r.Get("/healthz", healthz(d.HealthChecks, logger))
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(timeout))
		r.Use(middleware.ContentTypeJSON)

		NewAuthHandler(d.Auth, d.Sessions, logger).Register(r)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(d.Auth, logger))
			r.Route("/console", func(r chi.Router) {
				NewConsoleHandler(d.Sessions, logger).Register(r)
				if d.Audit != nil {
					NewAuditHandler(d.Audit, logger).Register(r)
				}
			})
		})
	})
	return r
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

func healthz(checks []HealthCheck, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := healthResponse{Status: "ok"}
		status := http.StatusOK
		if len(checks) > 0 {
			resp.Checks = make(map[string]string, len(checks))
		}
		for _, c := range checks {
			if err := c.Check(ctx); err != nil {
				logger.WarnContext(ctx, "health check failed", "check", c.Name, "error", err)
				resp.Checks[c.Name] = "down"
				resp.Status = "degraded"
				status = http.StatusServiceUnavailable
				continue
			}
			resp.Checks[c.Name] = "up"
		}
		httputil.WriteJSON(w, status, resp)
	}
}
