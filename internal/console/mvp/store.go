// Package mvp manages the secondary-product accounts provisioned for a client.
// Every action records its failure on the store and also returns it.
package mvp

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	"go.opentelemetry.io/otel/attribute"

	"backoffice/internal/console/instrument"
	"backoffice/internal/models"
	"backoffice/internal/platform/metrics"
	dErrors "backoffice/pkg/domain-errors"
	audit "backoffice/pkg/platform/audit"
)

const (
	storeName = "mvp"

	MinPasswordLength = 8
)

type Snapshot struct {
	Accounts  []models.MvpAccount `json:"accounts"`
	IsLoading bool                `json:"isLoading"`
	Err       error               `json:"-"`
	Error     string              `json:"error,omitempty"`
}

type Store struct {
	api     AccountAPI
	logger  *slog.Logger
	metrics *metrics.Metrics
	auditor AuditPublisher
	rec     *instrument.Recorder

	mu       sync.Mutex
	accounts []models.MvpAccount
	loading  int
	err      error
	gen      uint64
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

func New(api AccountAPI, opts ...Option) (*Store, error) {
	if api == nil {
		return nil, errors.New("mvp service is required")
	}
	s := &Store{api: api, logger: slog.Default(), accounts: []models.MvpAccount{}}
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
		Accounts:  slices.Clone(s.accounts),
		IsLoading: s.loading > 0,
		Err:       s.err,
	}
	if s.err != nil {
		snap.Error = s.err.Error()
	}
	return snap
}

// Initialize empties the account list and the error. In-flight reads are discarded.
func (s *Store) Initialize() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.accounts = []models.MvpAccount{}
	s.err = nil
}

// FetchForClient replaces the list with clientID's accounts.
func (s *Store) FetchForClient(ctx context.Context, clientID string) error {
	ctx, span := s.rec.Start(ctx, "FetchForClient", attribute.String("client_id", clientID))
	done := s.begin()
	defer done()

	err := s.load(ctx, clientID)
	s.recordError(err)
	s.rec.Finish(ctx, span, "FetchForClient", err)
	return err
}

// Create provisions an account for clientID and re-reads the client's
// accounts. It returns the account the backend created.
func (s *Store) Create(ctx context.Context, clientID string, req models.CreateMvpAccountRequest) (*models.MvpAccount, error) {
	ctx, span := s.rec.Start(ctx, "Create", attribute.String("client_id", clientID))
	done := s.begin()
	defer done()

	if err := validateCreate(req); err != nil {
		s.recordError(err)
		s.rec.Finish(ctx, span, "Create", err)
		return nil, err
	}
	req.ClientID = clientID

	resp, err := s.api.CreateAccount(ctx, clientID, req)
	if err != nil {
		s.recordError(err)
		s.rec.Finish(ctx, span, "Create", err)
		return nil, err
	}
	s.rec.Audit(ctx, audit.Event{
		Action:   string(audit.EventMvpAccountCreated),
		Subject:  clientID,
		Resource: req.Email,
		Reason:   req.AdminCreationReason,
	})

	err = s.load(ctx, clientID)
	s.recordError(err)
	s.rec.Finish(ctx, span, "Create", err)
	return &resp.Account, nil
}

// ChangePassword sets a new password on clientID's account.
func (s *Store) ChangePassword(ctx context.Context, clientID, newPassword string) error {
	ctx, span := s.rec.Start(ctx, "ChangePassword", attribute.String("client_id", clientID))
	done := s.begin()
	defer done()

	err := validatePassword(newPassword)
	if err == nil {
		err = s.api.ChangePassword(ctx, clientID, newPassword)
	}
	if err == nil {
		s.rec.Audit(ctx, audit.Event{Action: string(audit.EventMvpPasswordChanged), Subject: clientID})
	}
	s.recordError(err)
	s.rec.Finish(ctx, span, "ChangePassword", err)
	return err
}

// Delete removes every account of clientID and empties the local list.
func (s *Store) Delete(ctx context.Context, clientID string) error {
	ctx, span := s.rec.Start(ctx, "Delete", attribute.String("client_id", clientID))
	done := s.begin()
	defer done()

	if err := s.api.DeleteAccount(ctx, clientID); err != nil {
		s.recordError(err)
		s.rec.Finish(ctx, span, "Delete", err)
		return err
	}
	s.mu.Lock()
	s.gen++
	s.accounts = []models.MvpAccount{}
	s.mu.Unlock()

	s.rec.Audit(ctx, audit.Event{Action: string(audit.EventMvpAccountDeleted), Subject: clientID})
	s.rec.Finish(ctx, span, "Delete", nil)
	return nil
}

func (s *Store) load(ctx context.Context, clientID string) error {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	accounts, err := s.api.AccountsForClient(ctx, clientID)

	s.mu.Lock()
	if s.gen != gen {
		s.mu.Unlock()
		s.rec.Stale(ctx, "mvp_accounts")
		return nil
	}
	defer s.mu.Unlock()
	if err != nil {
		return err
	}
	s.accounts = slices.Clone(accounts)
	if s.accounts == nil {
		s.accounts = []models.MvpAccount{}
	}
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

func validateCreate(req models.CreateMvpAccountRequest) error {
	if strings.TrimSpace(req.Email) == "" {
		return dErrors.New(dErrors.CodeValidation, "email is required")
	}
	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		return dErrors.New(dErrors.CodeValidation, "first and last name are required")
	}
	return validatePassword(req.Password)
}

func validatePassword(p string) error {
	if utf8.RuneCountInString(p) < MinPasswordLength {
		return dErrors.New(dErrors.CodeValidation, "password must be at least 8 characters")
	}
	return nil
}
