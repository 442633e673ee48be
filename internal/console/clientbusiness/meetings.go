package clientbusiness

import (
	"context"
	"slices"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"backoffice/internal/models"
	audit "backoffice/pkg/platform/audit"
)

// ConfirmPortfolioAccess confirms meetingID for the loaded client and then
// refreshes meeting status and history concurrently.
func (s *Store) ConfirmPortfolioAccess(ctx context.Context, meetingID string) {
	s.confirmMeeting(ctx, "ConfirmPortfolioAccess", meetingID, audit.EventPortfolioAccessConfirmed,
		s.clientAPI.ConfirmStrategyMeeting)
}

// CompleteDataStrategyMeeting marks meetingID completed for the loaded
// client and then refreshes meeting status and history concurrently.
func (s *Store) CompleteDataStrategyMeeting(ctx context.Context, meetingID string) {
	s.confirmMeeting(ctx, "CompleteDataStrategyMeeting", meetingID, audit.EventDataStrategyCompleted,
		s.clientAPI.CompleteDataStrategyMeeting)
}

type meetingCall func(ctx context.Context, clientID, meetingID string) (*models.ConfirmationResponse, error)

func (s *Store) confirmMeeting(ctx context.Context, action, meetingID string, event audit.AuditEvent, call meetingCall) {
	clientID := s.loadedClientID()
	if clientID == "" {
		s.skip(ctx, action, "no client loaded")
		return
	}
	ctx, span := s.startSpan(ctx, action,
		attribute.String("client_id", clientID), attribute.String("meeting_id", meetingID))
	done := s.beginAction(&s.loading)
	defer done()

	if _, err := call(ctx, clientID, meetingID); err != nil {
		s.recordError(err)
		s.finish(ctx, span, action, err)
		return
	}
	s.emitAudit(ctx, audit.Event{Action: string(event), Subject: clientID, Resource: meetingID})

	err := s.Reconcile(ctx, Reconciliation{ClientID: clientID, Meetings: RefreshStatusAndHistory})
	s.finish(ctx, span, action, err)
}

// FetchMeetingStatus reads whether clientID has a scheduled meeting. A
// failure is kept on MeetingStatus as the Failed variant and does not set
// the store error.
func (s *Store) FetchMeetingStatus(ctx context.Context, clientID string) {
	ctx, span := s.startSpan(ctx, "FetchMeetingStatus", attribute.String("client_id", clientID))
	err := s.loadMeetingStatus(ctx, clientID)
	s.finish(ctx, span, "FetchMeetingStatus", err)
}

// FetchMeetingsHistory reads every meeting of clientID. A failure empties
// the history and does not set the store error.
func (s *Store) FetchMeetingsHistory(ctx context.Context, clientID string) {
	ctx, span := s.startSpan(ctx, "FetchMeetingsHistory", attribute.String("client_id", clientID))
	err := s.loadMeetingsHistory(ctx, clientID)
	s.finish(ctx, span, "FetchMeetingsHistory", err)
}

// FetchUnassignedMeetings loads one page of meetings not linked to any client.
func (s *Store) FetchUnassignedMeetings(ctx context.Context, page int) {
	if page < 1 {
		page = 1
	}
	ctx, span := s.startSpan(ctx, "FetchUnassignedMeetings", attribute.Int("page", page))
	done := s.beginAction(&s.loading)
	defer done()

	err := s.loadUnassigned(ctx, page)
	s.recordError(err)
	s.finish(ctx, span, "FetchUnassignedMeetings", err)
}

// AssignMeeting links meetingID to the loaded client and, if businessID is
// set, to that business. History and unassigned pool are then reloaded together.
func (s *Store) AssignMeeting(ctx context.Context, meetingID, businessID string) {
	clientID := s.loadedClientID()
	if clientID == "" {
		s.skip(ctx, "AssignMeeting", "no client loaded")
		return
	}
	ctx, span := s.startSpan(ctx, "AssignMeeting",
		attribute.String("client_id", clientID), attribute.String("meeting_id", meetingID))
	done := s.beginAction(&s.assigning)
	defer done()

	rec, err := s.assignMeeting(ctx, clientID, meetingID, businessID)
	if err == nil {
		err = s.Reconcile(ctx, rec)
	}
	s.recordError(err)
	s.finish(ctx, span, "AssignMeeting", err)
}

func (s *Store) assignMeeting(ctx context.Context, clientID, meetingID, businessID string) (Reconciliation, error) {
	if err := s.clientAPI.AssignMeeting(ctx, meetingID, clientID, businessID); err != nil {
		return Reconciliation{}, err
	}
	s.emitAudit(ctx, audit.Event{
		Action:     string(audit.EventMeetingAssigned),
		Subject:    clientID,
		BusinessID: businessID,
		Resource:   meetingID,
	})
	return Reconciliation{ClientID: clientID, Meetings: RefreshHistory, Unassigned: true}, nil
}

// DeleteMeeting deletes meetingID. The loaded client's meetings are
// reconciled, and so is the unassigned pool when it listed the meeting.
func (s *Store) DeleteMeeting(ctx context.Context, meetingID string) {
	if meetingID == "" {
		s.skip(ctx, "DeleteMeeting", "empty meeting id")
		return
	}
	ctx, span := s.startSpan(ctx, "DeleteMeeting", attribute.String("meeting_id", meetingID))
	done := s.beginAction(&s.loading)
	defer done()

	rec, err := s.deleteMeeting(ctx, meetingID)
	if err == nil {
		err = s.Reconcile(ctx, rec)
	}
	s.recordError(err)
	s.finish(ctx, span, "DeleteMeeting", err)
}

func (s *Store) deleteMeeting(ctx context.Context, meetingID string) (Reconciliation, error) {
	if err := s.clientAPI.DeleteMeeting(ctx, meetingID); err != nil {
		return Reconciliation{}, err
	}

	s.mu.Lock()
	var rec Reconciliation
	if s.client != nil {
		rec.ClientID = s.client.ID
		rec.Meetings = RefreshStatusAndHistory
	}
	rec.Unassigned = slices.ContainsFunc(s.unassigned, func(m models.Meeting) bool { return m.ID == meetingID })
	s.mu.Unlock()

	s.emitAudit(ctx, audit.Event{
		Action:   string(audit.EventMeetingDeleted),
		Subject:  rec.ClientID,
		Resource: meetingID,
	})
	return rec, nil
}

func (s *Store) loadMeetingStatus(ctx context.Context, clientID string) error {
	gen := s.nextGeneration(projMeetingStatus)
	resp, err := s.clientAPI.MeetingStatus(ctx, clientID)

	s.mu.Lock()
	if !s.isCurrent(projMeetingStatus, gen) {
		s.mu.Unlock()
		s.dropStale(ctx, projMeetingStatus)
		return nil
	}
	defer s.mu.Unlock()
	switch {
	case err != nil:
		s.meetingStatus = models.MeetingStatusFailedResult(err)
		return err
	case !resp.HasScheduledMeeting || resp.Meeting == nil:
		s.meetingStatus = models.MeetingStatusNotFoundResult()
	default:
		s.meetingStatus = models.MeetingStatusFoundResult(*resp.Meeting)
	}
	return nil
}

func (s *Store) loadMeetingsHistory(ctx context.Context, clientID string) error {
	gen := s.nextGeneration(projMeetingsHistory)
	meetings, err := s.clientAPI.AllMeetings(ctx, clientID)

	s.mu.Lock()
	if !s.isCurrent(projMeetingsHistory, gen) {
		s.mu.Unlock()
		s.dropStale(ctx, projMeetingsHistory)
		return nil
	}
	defer s.mu.Unlock()
	if err != nil {
		s.meetingsHistory = []models.Meeting{}
		return err
	}
	s.meetingsHistory = nonNil(meetings)
	return nil
}

func (s *Store) loadUnassigned(ctx context.Context, page int) error {
	gen := s.nextGeneration(projUnassigned)
	resp, err := s.clientAPI.UnassignedMeetings(ctx, page, s.unassignedPageSize)

	s.mu.Lock()
	if !s.isCurrent(projUnassigned, gen) {
		s.mu.Unlock()
		s.dropStale(ctx, projUnassigned)
		return nil
	}
	defer s.mu.Unlock()
	if err != nil {
		return err
	}
	s.applyUnassigned(page, resp)
	return nil
}

// reloadHistoryAndPool fetches the client's history and the unassigned pool
// concurrently and commits both only when both succeed.
func (s *Store) reloadHistoryAndPool(ctx context.Context, clientID string) error {
	historyGen := s.nextGeneration(projMeetingsHistory)
	poolGen := s.nextGeneration(projUnassigned)
	s.mu.Lock()
	page := s.unassignedPage
	s.mu.Unlock()

	var (
		history []models.Meeting
		pool    *models.Page[models.Meeting]
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		history, err = s.clientAPI.AllMeetings(gctx, clientID)
		return err
	})
	g.Go(func() error {
		var err error
		pool, err = s.clientAPI.UnassignedMeetings(gctx, page, s.unassignedPageSize)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	// Both collections commit or neither does: a newer load of either one
	// drops the pair.
	s.mu.Lock()
	current := s.isCurrent(projMeetingsHistory, historyGen) && s.isCurrent(projUnassigned, poolGen)
	if current {
		s.meetingsHistory = nonNil(history)
		s.applyUnassigned(page, pool)
	}
	s.mu.Unlock()

	if !current {
		s.dropStale(ctx, projMeetingsHistory)
		s.dropStale(ctx, projUnassigned)
	}
	return nil
}

// applyUnassigned must be called with mu held.
func (s *Store) applyUnassigned(page int, resp *models.Page[models.Meeting]) {
	s.unassigned = nonNil(resp.Data)
	p := resp.Pagination
	s.unassignedPagination = &p
	s.unassignedPage = page
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return slices.Clone(items)
}
