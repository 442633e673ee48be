// Package session gives every authenticated admin its own set of console
// stores. Nothing is shared between sessions except the backend services.
package session

import (
	"context"
	"fmt"
	"log/slog"

	"backoffice/internal/console/checklist"
	"backoffice/internal/console/clientbusiness"
	"backoffice/internal/console/mvp"
	"backoffice/internal/console/payments"
	"backoffice/internal/console/search"
	"backoffice/internal/console/views"
	"backoffice/internal/platform/metrics"
	audit "backoffice/pkg/platform/audit"
)

// ClientBackend is the client service as both stores that read clients see it.
type ClientBackend interface {
	clientbusiness.ClientAPI
	search.ClientDirectory
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Deps are the process-wide collaborators every Console is built from.
type Deps struct {
	Clients    ClientBackend
	Businesses clientbusiness.BusinessAPI
	Checklists checklist.ChecklistAPI
	Accounts   mvp.AccountAPI
	Payments   payments.PaymentsAPI
	Audit      AuditPublisher
	Logger     *slog.Logger
	Metrics    *metrics.Metrics

	TransactionsPageSize int
	UnassignedPageSize   int
	SearchPageSize       int
}

// Console is one admin's console state.
type Console struct {
	ID      string
	ActorID string

	Clients      *clientbusiness.Store
	Checklist    *checklist.Store
	Mvp          *mvp.Store
	Payments     *payments.Store
	Search       *search.Store
	Observations *views.ObservationsEditor
	BusinessForm *views.BusinessForm
}

// New builds an empty console for actorID.
func New(deps Deps, id, actorID string) (*Console, error) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("session_id", id)

	auditor := deps.Audit

	clients, err := clientbusiness.New(deps.Clients, deps.Businesses,
		clientbusiness.WithLogger(logger),
		clientbusiness.WithMetrics(deps.Metrics),
		clientbusiness.WithAuditPublisher(auditor),
		clientbusiness.WithTransactionsPageSize(deps.TransactionsPageSize),
		clientbusiness.WithUnassignedPageSize(deps.UnassignedPageSize),
	)
	if err != nil {
		return nil, fmt.Errorf("client store: %w", err)
	}
	checklists, err := checklist.New(deps.Checklists,
		checklist.WithLogger(logger),
		checklist.WithMetrics(deps.Metrics),
		checklist.WithAuditPublisher(auditor),
	)
	if err != nil {
		return nil, fmt.Errorf("checklist store: %w", err)
	}
	accounts, err := mvp.New(deps.Accounts,
		mvp.WithLogger(logger),
		mvp.WithMetrics(deps.Metrics),
		mvp.WithAuditPublisher(auditor),
	)
	if err != nil {
		return nil, fmt.Errorf("mvp store: %w", err)
	}
	pays, err := payments.New(deps.Payments,
		payments.WithLogger(logger),
		payments.WithMetrics(deps.Metrics),
		payments.WithAuditPublisher(auditor),
	)
	if err != nil {
		return nil, fmt.Errorf("payments store: %w", err)
	}
	directory, err := search.New(deps.Clients,
		search.WithLogger(logger),
		search.WithMetrics(deps.Metrics),
		search.WithPageSize(deps.SearchPageSize),
	)
	if err != nil {
		return nil, fmt.Errorf("search store: %w", err)
	}

	return &Console{
		ID:           id,
		ActorID:      actorID,
		Clients:      clients,
		Checklist:    checklists,
		Mvp:          accounts,
		Payments:     pays,
		Search:       directory,
		Observations: views.NewObservationsEditor(checklists),
		BusinessForm: views.NewBusinessForm(clients),
	}, nil
}

// Reset empties every store, discarding in-flight responses.
func (c *Console) Reset() {
	c.Clients.Reset()
	c.Checklist.Reset()
	c.Mvp.Initialize()
	c.Payments.Reset()
	c.Search.Reset()
	c.Observations.Cancel()
	c.BusinessForm.Cancel()
}
