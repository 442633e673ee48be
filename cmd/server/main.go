package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/errgroup"

	"backoffice/internal/auth/lockout"
	"backoffice/internal/auth/login"
	"backoffice/internal/auth/revocation"
	"backoffice/internal/auth/token"
	"backoffice/internal/backend"
	"backoffice/internal/console/session"
	"backoffice/internal/platform/config"
	"backoffice/internal/platform/httpserver"
	"backoffice/internal/platform/logger"
	"backoffice/internal/platform/metrics"
	"backoffice/internal/platform/redis"
	httptransport "backoffice/internal/transport/http"
	audit "backoffice/pkg/platform/audit"
	"backoffice/pkg/platform/audit/publisher"
	auditmemory "backoffice/pkg/platform/audit/store/memory"
	auditpostgres "backoffice/pkg/platform/audit/store/postgres"
	"backoffice/pkg/platform/circuit"
)

const (
	shutdownTimeout = 10 * time.Second
	cleanupInterval = time.Minute
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the console stores.
func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "backoffice: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg.LogLevel)
	m := metrics.New(prometheus.DefaultRegisterer)

	var checks []httptransport.HealthCheck

	shared, err := buildSharedState(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer shared.close()
	if shared.health != nil {
		checks = append(checks, httptransport.HealthCheck{Name: "redis", Check: shared.health})
	}

	auditStore, auditHealth, closeAudit, err := buildAuditStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeAudit()
	if auditHealth != nil {
		checks = append(checks, httptransport.HealthCheck{Name: "audit_db", Check: auditHealth})
	}
	auditPub := publisher.NewPublisher(auditStore,
		publisher.WithAsyncBuffer(cfg.Audit.AsyncBuffer),
		publisher.WithLogger(log),
	)
	defer auditPub.Close()

	api, err := backend.New(cfg.Backend.BaseURL,
		backend.WithToken(cfg.Backend.Token),
		backend.WithTimeout(cfg.Backend.Timeout),
		backend.WithLogger(log),
		backend.WithMetrics(m),
		backend.WithBreaker(circuit.New("backend",
			circuit.WithFailureThreshold(cfg.Backend.BreakerThreshold),
			circuit.WithCooldown(cfg.Backend.BreakerCooldown),
		)),
	)
	if err != nil {
		return fmt.Errorf("backend client: %w", err)
	}

	registry := session.NewRegistry(session.Deps{
		Clients:              backend.NewClientService(api),
		Businesses:           backend.NewBusinessService(api),
		Checklists:           backend.NewChecklistService(api),
		Accounts:             backend.NewMvpService(api),
		Payments:             backend.NewPaymentsService(api),
		Audit:                auditPub,
		Logger:               log,
		Metrics:              m,
		TransactionsPageSize: cfg.Console.TransactionsPageSize,
		UnassignedPageSize:   cfg.Console.UnassignedPageSize,
		SearchPageSize:       cfg.Console.SearchPageSize,
	}, session.WithIdleTTL(cfg.Console.SessionIdleTTL))
	defer registry.Close()

	tokens, err := token.NewService(cfg.JWTSigningKey, cfg.TokenTTL)
	if err != nil {
		return fmt.Errorf("token service: %w", err)
	}
	throttle, err := lockout.New(shared.lockouts,
		lockout.WithConfig(lockout.Config{
			Attempts: cfg.Lockout.Attempts,
			Window:   cfg.Lockout.Window,
			Duration: cfg.Lockout.Duration,
		}),
		lockout.WithLogger(log),
	)
	if err != nil {
		return fmt.Errorf("login lockout: %w", err)
	}
	auth, err := login.New(login.Credentials{
		Email:        cfg.Admin.Email,
		PasswordHash: cfg.Admin.PasswordHash,
	}, tokens, shared.revocations,
		login.WithLogger(log),
		login.WithMetrics(m),
		login.WithAuditPublisher(auditPub),
		login.WithLockout(throttle),
	)
	if err != nil {
		return fmt.Errorf("login service: %w", err)
	}

	router := httptransport.NewRouter(httptransport.Deps{
		Auth:         auth,
		Sessions:     registry,
		Audit:        auditPub,
		Logger:       log,
		Metrics:      m,
		Gatherer:     prometheus.DefaultGatherer,
		HealthChecks: checks,
	})
	srv := httpserver.New(cfg.Addr, otelhttp.NewHandler(router, "backoffice"))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting backoffice", "addr", cfg.Addr, "backend", cfg.Backend.BaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := registry.StartCleanup(gctx, cleanupInterval); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}

// sharedState is the auth state every BFF instance must agree on.
type sharedState struct {
	revocations login.RevocationList
	lockouts    lockout.Store
	health      func(ctx context.Context) error
	close       func()
}

// buildSharedState uses Redis when REDIS_URL is set so revocations and
// lockouts survive restarts, and in-memory stores otherwise.
func buildSharedState(ctx context.Context, cfg config.Server, log *slog.Logger) (sharedState, error) {
	rc, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return sharedState{}, fmt.Errorf("connect redis: %w", err)
	}
	if rc == nil {
		log.Info("token revocations and login lockouts kept in memory")
		return sharedState{
			revocations: revocation.NewInMemoryTRL(),
			lockouts:    lockout.NewInMemoryStore(),
			close:       func() {},
		}, nil
	}
	log.Info("token revocations and login lockouts backed by redis")
	return sharedState{
		revocations: revocation.NewRedisTRL(rc.Client),
		lockouts:    lockout.NewRedisStore(rc.Client),
		health:      rc.Health,
		close: func() {
			if err := rc.Close(); err != nil {
				log.Warn("close redis", "error", err)
			}
		},
	}, nil
}

// buildAuditStore uses PostgreSQL when AUDIT_DATABASE_URL is set.
func buildAuditStore(ctx context.Context, cfg config.Server, log *slog.Logger) (audit.Store, func(ctx context.Context) error, func(), error) {
	if cfg.Audit.DatabaseURL == "" {
		log.Info("audit trail kept in memory")
		return auditmemory.NewInMemoryStore(), nil, func() {}, nil
	}
	db, err := auditpostgres.Open(ctx, cfg.Audit.DatabaseURL)
	if err != nil {
		return nil, nil, func() {}, err
	}
	store := auditpostgres.New(db)
	if err := store.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, nil, func() {}, err
	}
	log.Info("audit trail backed by postgres")
	closer := func() {
		if err := db.Close(); err != nil {
			log.Warn("close audit database", "error", err)
		}
	}
	return store, db.PingContext, closer, nil
}
