// Package clientbusiness holds the console's view of the currently open
// client: its businesses, the selected business, meetings, transactions and
// the pool of unassigned meetings.
//
// Mutations never patch nested fields by hand. Each one produces a
// Reconciliation naming what it touched, and Reconcile re-reads exactly that
// from the backend. Every projection carries a generation counter so a slow
// response can never overwrite the result of a newer request.
package clientbusiness

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"

	"backoffice/internal/console/instrument"
	"backoffice/internal/models"
	"backoffice/internal/platform/metrics"
	audit "backoffice/pkg/platform/audit"
)

const (
	storeName       = "clientbusiness"
	defaultPageSize = 10
)

type projection string

const (
	projAggregate       projection = "aggregate"
	projMeetingStatus   projection = "meeting_status"
	projMeetingsHistory projection = "meetings_history"
	projTransactions    projection = "transactions"
	projUnassigned      projection = "unassigned"
)

var allProjections = []projection{
	projAggregate, projMeetingStatus, projMeetingsHistory, projTransactions, projUnassigned,
}

// Snapshot is a consistent copy of the store state.
type Snapshot struct {
	Client                *models.Client             `json:"client"`
	Businesses            []models.Business          `json:"businesses"`
	SelectedBusiness      *models.Business           `json:"selectedBusiness"`
	MeetingStatus         models.MeetingStatusResult `json:"meetingStatus"`
	MeetingsHistory       []models.Meeting           `json:"meetingsHistory"`
	Transactions          []models.Transaction       `json:"transactions"`
	Pagination            *models.Pagination         `json:"pagination"`
	TransactionFilter     models.DateRange           `json:"transactionFilter"`
	UnassignedMeetings    []models.Meeting           `json:"unassignedMeetings"`
	UnassignedPagination  *models.Pagination         `json:"unassignedPagination"`
	IsLoading             bool                       `json:"isLoading"`
	IsTransactionsLoading bool                       `json:"isTransactionsLoading"`
	IsAssigningMeeting    bool                       `json:"isAssigningMeeting"`
	Err                   error                      `json:"-"`
	Error                 string                     `json:"error,omitempty"`
}

// Store is safe for concurrent use. Network calls are never made while mu is held.
type Store struct {
	clientAPI   ClientAPI
	businessAPI BusinessAPI

	logger         *slog.Logger
	metrics        *metrics.Metrics
	auditPublisher AuditPublisher
	rec            *instrument.Recorder
	flights        singleflight.Group

	transactionsPageSize int
	unassignedPageSize   int

	mu                   sync.Mutex
	client               *models.Client
	businesses           []models.Business
	selectedID           string
	meetingStatus        models.MeetingStatusResult
	meetingsHistory      []models.Meeting
	transactions         []models.Transaction
	pagination           *models.Pagination
	filter               models.DateRange
	unassigned           []models.Meeting
	unassignedPagination *models.Pagination
	unassignedPage       int
	err                  error

	loading     int
	txLoading   int
	assigning   int
	generations map[projection]uint64
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
		s.auditPublisher = publisher
	}
}

// WithTransactionsPageSize sets the limit used when a caller passes none.
func WithTransactionsPageSize(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.transactionsPageSize = n
		}
	}
}

func WithUnassignedPageSize(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.unassignedPageSize = n
		}
	}
}

// New returns an empty store.
func New(clients ClientAPI, businesses BusinessAPI, opts ...Option) (*Store, error) {
	if clients == nil {
		return nil, errors.New("client service is required")
	}
	if businesses == nil {
		return nil, errors.New("business service is required")
	}
	s := &Store{
		clientAPI:            clients,
		businessAPI:          businesses,
		logger:               slog.Default(),
		transactionsPageSize: defaultPageSize,
		unassignedPageSize:   defaultPageSize,
		unassignedPage:       1,
		generations:          make(map[projection]uint64, len(allProjections)),
	}
	for _, opt := range opts {
		opt(s)
	}
	var emitter instrument.Emitter
	if s.auditPublisher != nil {
		emitter = s.auditPublisher
	}
	s.rec = instrument.New(storeName, s.logger, s.metrics, emitter)
	return s, nil
}

// Snapshot copies the current state. Slices in the result are not shared with the store.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Businesses:            slices.Clone(s.businesses),
		MeetingStatus:         s.meetingStatus,
		MeetingsHistory:       slices.Clone(s.meetingsHistory),
		Transactions:          slices.Clone(s.transactions),
		Pagination:            clonePagination(s.pagination),
		TransactionFilter:     s.filter,
		UnassignedMeetings:    slices.Clone(s.unassigned),
		UnassignedPagination:  clonePagination(s.unassignedPagination),
		IsLoading:             s.loading > 0,
		IsTransactionsLoading: s.txLoading > 0,
		IsAssigningMeeting:    s.assigning > 0,
		Err:                   s.err,
	}
	if s.client != nil {
		c := *s.client
		snap.Client = &c
	}
	if i := s.selectedIndex(); i >= 0 {
		b := snap.Businesses[i]
		snap.SelectedBusiness = &b
	}
	if s.err != nil {
		snap.Error = s.err.Error()
	}
	return snap
}

// ClearError drops the recorded fault.
func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = nil
}

// Reset empties the store. Responses to requests issued before Reset are discarded.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range allProjections {
		s.generations[p]++
	}
	s.client = nil
	s.businesses = nil
	s.selectedID = ""
	s.meetingStatus = models.MeetingStatusResult{}
	s.meetingsHistory = nil
	s.transactions = nil
	s.pagination = nil
	s.filter = models.DateRange{}
	s.unassigned = nil
	s.unassignedPagination = nil
	s.unassignedPage = 1
	s.err = nil
}

// selectedIndex must be called with mu held.
func (s *Store) selectedIndex() int {
	if s.selectedID == "" {
		return -1
	}
	return slices.IndexFunc(s.businesses, func(b models.Business) bool {
		return b.ID == s.selectedID
	})
}

func (s *Store) loadedClientID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client == nil {
		return ""
	}
	return s.client.ID
}

func (s *Store) loadedClientAndSelection() (clientID, businessID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client == nil {
		return "", ""
	}
	if s.selectedIndex() < 0 {
		return s.client.ID, ""
	}
	return s.client.ID, s.selectedID
}

// nextGeneration starts a request for p and returns its generation.
func (s *Store) nextGeneration(p projection) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generations[p]++
	return s.generations[p]
}

// isCurrent must be called with mu held.
func (s *Store) isCurrent(p projection, gen uint64) bool {
	return s.generations[p] == gen
}

func (s *Store) dropStale(ctx context.Context, p projection) {
	s.rec.Stale(ctx, string(p))
}

// track marks one in-flight operation on counter and returns its release func.
func (s *Store) track(counter *int) func() {
	s.mu.Lock()
	*counter++
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		*counter--
		s.mu.Unlock()
	}
}

func (s *Store) beginAction(counter *int) func() {
	release := s.track(counter)
	s.ClearError()
	return release
}

func (s *Store) recordError(err error) {
	if err == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func (s *Store) startSpan(ctx context.Context, action string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return s.rec.Start(ctx, action, attrs...)
}

func (s *Store) finish(ctx context.Context, span trace.Span, action string, err error) {
	s.rec.Finish(ctx, span, action, err)
}

func (s *Store) skip(ctx context.Context, action, reason string) {
	s.rec.Skip(ctx, action, reason)
}

func (s *Store) emitAudit(ctx context.Context, event audit.Event) {
	s.rec.Audit(ctx, event)
}

func clonePagination(p *models.Pagination) *models.Pagination {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}
