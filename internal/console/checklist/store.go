// Package checklist holds the onboarding checklist of the business open in
// the console. Mutations discard the backend's response body and re-read the
// checklist instead.
package checklist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"backoffice/internal/console/instrument"
	"backoffice/internal/models"
	"backoffice/internal/platform/metrics"
	audit "backoffice/pkg/platform/audit"
	"backoffice/pkg/platform/sentinel"
)

const storeName = "checklist"

// ErrItemNotFound is returned by ToggleItemCompletion for an item that is not
// in the loaded checklist.
var ErrItemNotFound = fmt.Errorf("checklist item %w", sentinel.ErrNotFound)

type Snapshot struct {
	Checklist *models.Checklist         `json:"checklist"`
	Progress  *models.ChecklistProgress `json:"progress"`
	IsLoading bool                      `json:"isLoading"`
	Err       error                     `json:"-"`
	Error     string                    `json:"error,omitempty"`
}

// Store is safe for concurrent use.
type Store struct {
	api     ChecklistAPI
	logger  *slog.Logger
	metrics *metrics.Metrics
	auditor AuditPublisher
	rec     *instrument.Recorder

	mu           sync.Mutex
	checklist    *models.Checklist
	progress     *models.ChecklistProgress
	loading      int
	err          error
	checklistGen uint64
	progressGen  uint64
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

func New(api ChecklistAPI, opts ...Option) (*Store, error) {
	if api == nil {
		return nil, errors.New("checklist service is required")
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
		Checklist: cloneChecklist(s.checklist),
		IsLoading: s.loading > 0,
		Err:       s.err,
	}
	if s.progress != nil {
		p := *s.progress
		snap.Progress = &p
	}
	if s.err != nil {
		snap.Error = s.err.Error()
	}
	return snap
}

// CurrentPhase returns the phase CurrentPhase points at, or nil.
func (s *Store) CurrentPhase() *models.ChecklistPhase {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.checklist == nil {
		return nil
	}
	i := s.checklist.CurrentPhase
	if i < 0 || i >= len(s.checklist.Phases) {
		return nil
	}
	return clonePhase(s.checklist.Phases[i])
}

// IsComplete reports whether every phase of the loaded checklist is completed.
func (s *Store) IsComplete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.checklist == nil {
		return false
	}
	for _, p := range s.checklist.Phases {
		if !p.Completed {
			return false
		}
	}
	return true
}

func (s *Store) PhaseByID(phaseID string) *models.ChecklistPhase {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.phaseIndex(phaseID); i >= 0 {
		return clonePhase(s.checklist.Phases[i])
	}
	return nil
}

func (s *Store) ItemByID(phaseID, itemID string) *models.ChecklistItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.phaseIndex(phaseID)
	if i < 0 {
		return nil
	}
	items := s.checklist.Phases[i].Items
	if j := slices.IndexFunc(items, func(it models.ChecklistItem) bool { return it.ID == itemID }); j >= 0 {
		item := items[j]
		return &item
	}
	return nil
}

// FetchChecklist loads the checklist of businessID.
func (s *Store) FetchChecklist(ctx context.Context, businessID string) {
	ctx, span := s.rec.Start(ctx, "FetchChecklist", attribute.String("business_id", businessID))
	done := s.begin()
	defer done()

	err := s.loadChecklist(ctx, businessID)
	s.recordError(err)
	s.rec.Finish(ctx, span, "FetchChecklist", err)
}

// FetchProgress loads the server-computed progress of businessID's checklist.
func (s *Store) FetchProgress(ctx context.Context, businessID string) {
	ctx, span := s.rec.Start(ctx, "FetchProgress", attribute.String("business_id", businessID))
	done := s.begin()
	defer done()

	gen := s.nextProgressGen()
	progress, err := s.api.Progress(ctx, businessID)

	s.mu.Lock()
	if s.progressGen != gen {
		s.mu.Unlock()
		s.rec.Stale(ctx, "checklist_progress")
		s.rec.Finish(ctx, span, "FetchProgress", nil)
		return
	}
	if err == nil {
		s.progress = progress
	}
	s.mu.Unlock()

	s.recordError(err)
	s.rec.Finish(ctx, span, "FetchProgress", err)
}

// UpdateItem writes req to one item and re-reads the checklist. The returned
// error is the write's; a failed re-read is only recorded.
func (s *Store) UpdateItem(ctx context.Context, businessID, phaseID, itemID string, req models.UpdateChecklistItemRequest) error {
	ctx, span := s.rec.Start(ctx, "UpdateItem",
		attribute.String("business_id", businessID), attribute.String("phase_id", phaseID),
		attribute.String("item_id", itemID), attribute.Bool("completed", req.Completed))
	done := s.begin()
	defer done()

	return s.mutate(ctx, span, "UpdateItem", businessID, func() error {
		return s.api.UpdateItem(ctx, businessID, phaseID, itemID, req)
	}, audit.Event{
		Action:     string(audit.EventChecklistUpdated),
		Subject:    businessID,
		BusinessID: businessID,
		Resource:   phaseID + "/" + itemID,
	})
}

// ToggleItemCompletion flips the cached completion of one item.
func (s *Store) ToggleItemCompletion(ctx context.Context, businessID, phaseID, itemID, completedBy string) error {
	item := s.ItemByID(phaseID, itemID)
	if item == nil {
		return ErrItemNotFound
	}
	return s.UpdateItem(ctx, businessID, phaseID, itemID, models.UpdateChecklistItemRequest{
		Completed:   !item.Completed,
		CompletedBy: completedBy,
	})
}

// MoveToNextPhase advances the checklist and re-reads it.
func (s *Store) MoveToNextPhase(ctx context.Context, businessID string) error {
	ctx, span := s.rec.Start(ctx, "MoveToNextPhase", attribute.String("business_id", businessID))
	done := s.begin()
	defer done()

	return s.mutate(ctx, span, "MoveToNextPhase", businessID, func() error {
		return s.api.NextPhase(ctx, businessID)
	}, audit.Event{
		Action:     string(audit.EventPhaseAdvanced),
		Subject:    businessID,
		BusinessID: businessID,
	})
}

// UpdatePhaseObservations replaces the observations of one phase and re-reads the checklist.
func (s *Store) UpdatePhaseObservations(ctx context.Context, businessID, phaseID, observations string) error {
	ctx, span := s.rec.Start(ctx, "UpdatePhaseObservations",
		attribute.String("business_id", businessID), attribute.String("phase_id", phaseID))
	done := s.begin()
	defer done()

	return s.mutate(ctx, span, "UpdatePhaseObservations", businessID, func() error {
		return s.api.UpdatePhaseObservations(ctx, businessID, phaseID, observations)
	}, audit.Event{
		Action:     string(audit.EventChecklistUpdated),
		Subject:    businessID,
		BusinessID: businessID,
		Resource:   phaseID,
		Reason:     "observations",
	})
}

func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = nil
}

// Reset empties the store and discards responses to earlier requests.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checklistGen++
	s.progressGen++
	s.checklist = nil
	s.progress = nil
	s.err = nil
}

func (s *Store) mutate(ctx context.Context, span trace.Span, action, businessID string, call func() error, event audit.Event) error {
	if err := call(); err != nil {
		s.recordError(err)
		s.rec.Finish(ctx, span, action, err)
		return err
	}
	s.rec.Audit(ctx, event)

	err := s.loadChecklist(ctx, businessID)
	s.recordError(err)
	s.rec.Finish(ctx, span, action, err)
	return nil
}

func (s *Store) loadChecklist(ctx context.Context, businessID string) error {
	s.mu.Lock()
	s.checklistGen++
	gen := s.checklistGen
	s.mu.Unlock()

	checklist, err := s.api.Checklist(ctx, businessID)

	s.mu.Lock()
	if s.checklistGen != gen {
		s.mu.Unlock()
		s.rec.Stale(ctx, "checklist")
		return nil
	}
	defer s.mu.Unlock()
	if err != nil {
		return err
	}
	s.checklist = checklist
	return nil
}

func (s *Store) nextProgressGen() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.progressGen++
	return s.progressGen
}

// phaseIndex must be called with mu held.
func (s *Store) phaseIndex(phaseID string) int {
	if s.checklist == nil {
		return -1
	}
	return slices.IndexFunc(s.checklist.Phases, func(p models.ChecklistPhase) bool { return p.ID == phaseID })
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

func cloneChecklist(c *models.Checklist) *models.Checklist {
	if c == nil {
		return nil
	}
	out := *c
	out.Phases = make([]models.ChecklistPhase, len(c.Phases))
	for i, p := range c.Phases {
		out.Phases[i] = *clonePhase(p)
	}
	return &out
}

func clonePhase(p models.ChecklistPhase) *models.ChecklistPhase {
	p.Items = slices.Clone(p.Items)
	return &p
}
