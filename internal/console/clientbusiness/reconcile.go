package clientbusiness

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// MeetingRefresh names which meeting projections a mutation invalidated.
type MeetingRefresh int

const (
	NoMeetingRefresh MeetingRefresh = iota
	// RefreshStatusAndHistory re-reads the status and the history
	// independently; each commits on its own.
	RefreshStatusAndHistory
	// RefreshHistory re-reads the history only.
	RefreshHistory
)

// Reconciliation is returned by every mutation and names the authoritative
// state that must be re-read to resynchronize the store.
type Reconciliation struct {
	ClientID string
	// BusinessID, when set together with ClientID, reloads the client and
	// business aggregate.
	BusinessID string
	Meetings   MeetingRefresh
	// Unassigned reloads the current page of the unassigned pool. Combined
	// with RefreshHistory both are fetched together and committed together or
	// not at all, so a meeting never shows in both collections.
	Unassigned bool
}

// IsZero reports whether r asks for nothing.
func (r Reconciliation) IsZero() bool {
	return r == Reconciliation{}
}

// Reconcile issues the re-fetches r names and waits for them. Every re-fetch
// is a new backend read. The first failure is recorded on the store and
// returned.
func (s *Store) Reconcile(ctx context.Context, r Reconciliation) error {
	if r.IsZero() {
		return nil
	}
	ctx, span := s.startSpan(ctx, "Reconcile")

	var err error
	if r.Meetings == RefreshHistory && r.Unassigned && r.ClientID != "" {
		err = s.reloadHistoryAndPool(ctx, r.ClientID)
	} else {
		err = s.reconcileIndependently(ctx, r)
	}
	s.recordError(err)
	s.finish(ctx, span, "Reconcile", err)
	return err
}

// reconcileIndependently fans out every re-fetch with a plain group so one
// failure does not cancel its siblings; each projection commits by its own rules.
func (s *Store) reconcileIndependently(ctx context.Context, r Reconciliation) error {
	var g errgroup.Group
	if r.ClientID != "" && r.BusinessID != "" {
		g.Go(func() error {
			return s.loadClientAndBusiness(ctx, r.ClientID, r.BusinessID, true)
		})
	}
	if r.ClientID != "" {
		switch r.Meetings {
		case RefreshStatusAndHistory:
			g.Go(func() error { return s.loadMeetingStatus(ctx, r.ClientID) })
			g.Go(func() error { return s.loadMeetingsHistory(ctx, r.ClientID) })
		case RefreshHistory:
			g.Go(func() error { return s.loadMeetingsHistory(ctx, r.ClientID) })
		}
	}
	if r.Unassigned {
		g.Go(func() error {
			s.mu.Lock()
			page := s.unassignedPage
			s.mu.Unlock()
			return s.loadUnassigned(ctx, page)
		})
	}
	return g.Wait()
}
