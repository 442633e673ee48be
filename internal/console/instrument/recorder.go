// Package instrument gives console stores one way to trace, count and log
// their actions.
package instrument

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"backoffice/internal/platform/metrics"
	audit "backoffice/pkg/platform/audit"
)

// Emitter is the audit sink a store reports successful mutations to.
type Emitter interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Recorder is bound to one store. A nil metrics or emitter is allowed.
type Recorder struct {
	store   string
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
	emitter Emitter
}

func New(store string, logger *slog.Logger, m *metrics.Metrics, emitter Emitter) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recorder{
		store:   store,
		logger:  logger.With("store", store),
		metrics: m,
		tracer:  otel.Tracer("backoffice/console/" + store),
		emitter: emitter,
	}
}

func (r *Recorder) Logger() *slog.Logger {
	return r.logger
}

// Start opens the span "<store>.<action>".
func (r *Recorder) Start(ctx context.Context, action string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return r.tracer.Start(ctx, r.store+"."+action, trace.WithAttributes(attrs...))
}

// Finish closes span, counts the action and logs a failure.
func (r *Recorder) Finish(ctx context.Context, span trace.Span, action string, err error) {
	defer span.End()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.metrics.IncStoreAction(r.store, action, "error")
		r.logger.ErrorContext(ctx, "console action failed", "action", action, "error", err)
		return
	}
	r.metrics.IncStoreAction(r.store, action, "ok")
}

// Skip counts an action whose precondition did not hold.
func (r *Recorder) Skip(ctx context.Context, action, reason string) {
	r.metrics.IncStoreAction(r.store, action, "noop")
	r.logger.DebugContext(ctx, "console action skipped", "action", action, "reason", reason)
}

// Stale counts a response dropped because a newer request superseded it.
func (r *Recorder) Stale(ctx context.Context, projection string) {
	r.metrics.IncStaleResponse(projection)
	r.logger.DebugContext(ctx, "dropping stale response", "projection", projection)
}

// Audit emits event. Emission failures are logged, never returned.
func (r *Recorder) Audit(ctx context.Context, event audit.Event) {
	if r.emitter == nil {
		return
	}
	if err := r.emitter.Emit(ctx, event); err != nil {
		r.logger.WarnContext(ctx, "failed to emit audit event", "action", event.Action, "error", err)
	}
}
