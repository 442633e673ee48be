// Package payments holds the payments summary shown on the console dashboard
// and the two ways an admin records money: a gateway payment link and a
// manual transfer.
package payments

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"go.opentelemetry.io/otel/attribute"

	"backoffice/internal/console/instrument"
	"backoffice/internal/models"
	"backoffice/internal/platform/metrics"
	dErrors "backoffice/pkg/domain-errors"
	audit "backoffice/pkg/platform/audit"
)

const storeName = "payments"

const defaultLinkError = "could not generate the payment link"

type Snapshot struct {
	Summary   *models.PaymentsSummary `json:"summary"`
	Range     models.DateRange        `json:"range"`
	IsLoading bool                    `json:"isLoading"`
	Err       error                   `json:"-"`
	Error     string                  `json:"error,omitempty"`
}

type Store struct {
	api     PaymentsAPI
	logger  *slog.Logger
	metrics *metrics.Metrics
	auditor AuditPublisher
	rec     *instrument.Recorder

	mu        sync.Mutex
	summary   *models.PaymentsSummary
	lastRange models.DateRange
	loading   int
	err       error
	gen       uint64
}

type Option func(*Store)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Store) {
		s.metrics = m
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Store) {
		s.auditor = publisher
	}
}

func New(api PaymentsAPI, opts ...Option) (*Store, error) {
	if api == nil {
		return nil, errors.New("payments service is required")
	}
	s := &Store{api: api, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	var emitter instrument.Emitter
	if s.auditor != nil {
		emitter = s.auditor
	}
	s.rec = instrument.New(storeName, s.logger, s.metrics, emitter)
	return s, nil
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		Range:     s.lastRange,
		IsLoading: s.loading > 0,
		Err:       s.err,
	}
	if s.summary != nil {
		c := *s.summary
		snap.Summary = &c
	}
	if s.err != nil {
		snap.Error = s.err.Error()
	}
	return snap
}

// FetchSummary loads the summary for r and remembers r for later refreshes.
func (s *Store) FetchSummary(ctx context.Context, r models.DateRange) {
	ctx, span := s.rec.Start(ctx, "FetchSummary")
	done := s.begin()
	defer done()

	var err error
	if !r.Valid() {
		err = dErrors.New(dErrors.CodeValidation, "summary range starts after it ends")
	} else {
		err = s.load(ctx, r)
	}
	s.recordError(err)
	s.rec.Finish(ctx, span, "FetchSummary", err)
}

// GeneratePaymentLink asks the gateway for a checkout link. Failures are
// reported in the result and never recorded on the store.
func (s *Store) GeneratePaymentLink(ctx context.Context, req models.PaymentLinkRequest) models.PaymentLinkResult {
	ctx, span := s.rec.Start(ctx, "GeneratePaymentLink", attribute.Float64("amount", req.Amount))

	if err := validateLink(req); err != nil {
		s.rec.Finish(ctx, span, "GeneratePaymentLink", err)
		return models.PaymentLinkResult{Error: err.Error()}
	}
	url, err := s.api.GeneratePaymentLink(ctx, req)
	s.rec.Finish(ctx, span, "GeneratePaymentLink", err)
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = defaultLinkError
		}
		return models.PaymentLinkResult{Error: msg}
	}

	s.rec.Audit(ctx, audit.Event{
		Action:   string(audit.EventPaymentLinkGenerated),
		Subject:  req.CustomerEmail,
		Resource: req.BusinessName,
		Reason:   strconv.FormatFloat(req.Amount, 'f', 2, 64),
	})
	return models.PaymentLinkResult{Success: true, PaymentURL: url}
}

// RegisterManualTransfer records a transfer made outside the gateway and
// refreshes the summary for the last fetched range.
func (s *Store) RegisterManualTransfer(ctx context.Context, t models.ManualTransfer) error {
	ctx, span := s.rec.Start(ctx, "RegisterManualTransfer",
		attribute.String("client_id", t.ClientID), attribute.Float64("amount", t.Amount))
	done := s.begin()
	defer done()

	err := validateTransfer(t)
	if err == nil {
		err = s.api.RegisterManualTransfer(ctx, t)
	}
	if err != nil {
		s.recordError(err)
		s.rec.Finish(ctx, span, "RegisterManualTransfer", err)
		return err
	}
	s.rec.Audit(ctx, audit.Event{
		Action:   string(audit.EventManualTransferRecorded),
		Subject:  t.ClientID,
		Resource: t.Bank,
		Reason:   strconv.FormatFloat(t.Amount, 'f', 2, 64),
	})

	s.mu.Lock()
	r := s.lastRange
	s.mu.Unlock()
	err = s.load(ctx, r)
	s.recordError(err)
	s.rec.Finish(ctx, span, "RegisterManualTransfer", err)
	return nil
}

func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = nil
}

func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.summary = nil
	s.lastRange = models.DateRange{}
	s.err = nil
}

func (s *Store) load(ctx context.Context, r models.DateRange) error {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.lastRange = r
	s.mu.Unlock()

	summary, err := s.api.Summary(ctx, r)

	s.mu.Lock()
	if s.gen != gen {
		s.mu.Unlock()
		s.rec.Stale(ctx, "payments_summary")
		return nil
	}
	defer s.mu.Unlock()
	if err != nil {
		return err
	}
	s.summary = summary
	return nil
}

func (s *Store) begin() func() {
	s.mu.Lock()
	s.loading++
	s.err = nil
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		s.loading--
		s.mu.Unlock()
	}
}

func (s *Store) recordError(err error) {
	if err == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func validateLink(req models.PaymentLinkRequest) error {
	if req.Amount <= 0 {
		return dErrors.New(dErrors.CodeValidation, "amount must be greater than zero")
	}
	if strings.TrimSpace(req.CustomerEmail) == "" {
		return dErrors.New(dErrors.CodeValidation, "customer email is required")
	}
	return nil
}

func validateTransfer(t models.ManualTransfer) error {
	if t.Amount <= 0 {
		return dErrors.New(dErrors.CodeValidation, "amount must be greater than zero")
	}
	if strings.TrimSpace(t.ClientID) == "" {
		return dErrors.New(dErrors.CodeValidation, "client id is required")
	}
	return nil
}
