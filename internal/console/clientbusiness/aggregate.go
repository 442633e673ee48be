package clientbusiness

import (
	"context"
	"slices"

	"go.opentelemetry.io/otel/attribute"

	"backoffice/internal/models"
	audit "backoffice/pkg/platform/audit"
)

// FetchClientAndBusiness loads clientID and selects businessID among its
// businesses. A business the client does not own leaves the selection empty.
// On failure the previous state is kept and the fault is recorded.
func (s *Store) FetchClientAndBusiness(ctx context.Context, clientID, businessID string) {
	ctx, span := s.startSpan(ctx, "FetchClientAndBusiness",
		attribute.String("client_id", clientID), attribute.String("business_id", businessID))
	done := s.beginAction(&s.loading)
	defer done()

	err := s.loadClientAndBusiness(ctx, clientID, businessID, false)
	s.recordError(err)
	s.finish(ctx, span, "FetchClientAndBusiness", err)
}

// FetchClientWithDetails loads clientID in the general view. The business
// selection is always cleared.
func (s *Store) FetchClientWithDetails(ctx context.Context, clientID string) {
	ctx, span := s.startSpan(ctx, "FetchClientWithDetails", attribute.String("client_id", clientID))
	done := s.beginAction(&s.loading)
	defer done()

	err := s.loadClientWithDetails(ctx, clientID)
	s.recordError(err)
	s.finish(ctx, span, "FetchClientWithDetails", err)
}

// SetSelectedBusiness points the selection at the loaded business with
// businessID, or clears it when businessID is empty. It reports false and
// changes nothing when no loaded business has that id.
func (s *Store) SetSelectedBusiness(businessID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if businessID == "" {
		s.selectedID = ""
		return true
	}
	if !slices.ContainsFunc(s.businesses, func(b models.Business) bool { return b.ID == businessID }) {
		return false
	}
	s.selectedID = businessID
	return true
}

// AddManager adds m to the selected business, then reloads the aggregate.
func (s *Store) AddManager(ctx context.Context, m models.NewManager) {
	clientID, businessID := s.loadedClientAndSelection()
	if clientID == "" || businessID == "" {
		s.skip(ctx, "AddManager", "no selected business")
		return
	}
	ctx, span := s.startSpan(ctx, "AddManager",
		attribute.String("client_id", clientID), attribute.String("business_id", businessID))
	done := s.beginAction(&s.loading)
	defer done()

	rec, err := s.addManager(ctx, clientID, businessID, m)
	if err == nil {
		err = s.Reconcile(ctx, rec)
	}
	s.recordError(err)
	s.finish(ctx, span, "AddManager", err)
}

func (s *Store) addManager(ctx context.Context, clientID, businessID string, m models.NewManager) (Reconciliation, error) {
	if _, err := s.businessAPI.AddManager(ctx, businessID, m); err != nil {
		return Reconciliation{}, err
	}
	s.emitAudit(ctx, audit.Event{
		Action:     string(audit.EventManagerAdded),
		Subject:    clientID,
		BusinessID: businessID,
		Resource:   m.Email,
	})
	return Reconciliation{ClientID: clientID, BusinessID: businessID}, nil
}

// RemoveManager removes managerID from the selected business, then reloads the aggregate.
func (s *Store) RemoveManager(ctx context.Context, managerID string) {
	clientID, businessID := s.loadedClientAndSelection()
	if clientID == "" || businessID == "" {
		s.skip(ctx, "RemoveManager", "no selected business")
		return
	}
	ctx, span := s.startSpan(ctx, "RemoveManager",
		attribute.String("client_id", clientID), attribute.String("business_id", businessID))
	done := s.beginAction(&s.loading)
	defer done()

	rec, err := s.removeManager(ctx, clientID, businessID, managerID)
	if err == nil {
		err = s.Reconcile(ctx, rec)
	}
	s.recordError(err)
	s.finish(ctx, span, "RemoveManager", err)
}

func (s *Store) removeManager(ctx context.Context, clientID, businessID, managerID string) (Reconciliation, error) {
	if _, err := s.businessAPI.RemoveManager(ctx, businessID, managerID); err != nil {
		return Reconciliation{}, err
	}
	s.emitAudit(ctx, audit.Event{
		Action:     string(audit.EventManagerRemoved),
		Subject:    clientID,
		BusinessID: businessID,
		Resource:   managerID,
	})
	return Reconciliation{ClientID: clientID, BusinessID: businessID}, nil
}

// UpdateBusinessDetails applies patch to the selected business and reloads
// the aggregate. Unlike the other actions it also returns the fault so a
// form can stay open.
func (s *Store) UpdateBusinessDetails(ctx context.Context, patch models.BusinessPatch) error {
	clientID, businessID := s.loadedClientAndSelection()
	if clientID == "" || businessID == "" {
		s.skip(ctx, "UpdateBusinessDetails", "no selected business")
		return nil
	}
	if patch.IsEmpty() {
		s.skip(ctx, "UpdateBusinessDetails", "empty patch")
		return nil
	}
	ctx, span := s.startSpan(ctx, "UpdateBusinessDetails",
		attribute.String("client_id", clientID), attribute.String("business_id", businessID))
	done := s.beginAction(&s.loading)
	defer done()

	if err := s.businessAPI.EditBusiness(ctx, businessID, patch); err != nil {
		s.recordError(err)
		s.finish(ctx, span, "UpdateBusinessDetails", err)
		return err
	}
	s.emitAudit(ctx, audit.Event{
		Action:     string(audit.EventBusinessUpdated),
		Subject:    clientID,
		BusinessID: businessID,
	})

	err := s.Reconcile(ctx, Reconciliation{ClientID: clientID, BusinessID: businessID})
	s.recordError(err)
	s.finish(ctx, span, "UpdateBusinessDetails", err)
	return nil
}

// DeleteBusiness deletes businessID remotely and drops it from the loaded
// businesses. The selection is cleared when it pointed at the deleted business.
func (s *Store) DeleteBusiness(ctx context.Context, businessID string) {
	if businessID == "" {
		s.skip(ctx, "DeleteBusiness", "empty business id")
		return
	}
	ctx, span := s.startSpan(ctx, "DeleteBusiness", attribute.String("business_id", businessID))
	done := s.beginAction(&s.loading)
	defer done()

	if err := s.businessAPI.DeleteBusiness(ctx, businessID); err != nil {
		s.recordError(err)
		s.finish(ctx, span, "DeleteBusiness", err)
		return
	}

	s.mu.Lock()
	isOwn := func(b models.Business) bool { return b.ID == businessID }
	s.businesses = slices.DeleteFunc(slices.Clone(s.businesses), isOwn)
	var clientID string
	if s.client != nil {
		clientID = s.client.ID
		c := *s.client
		c.Businesses = slices.DeleteFunc(slices.Clone(c.Businesses), isOwn)
		s.client = &c
	}
	if s.selectedID == businessID {
		s.selectedID = ""
	}
	s.mu.Unlock()

	s.emitAudit(ctx, audit.Event{
		Action:     string(audit.EventBusinessDeleted),
		Subject:    clientID,
		BusinessID: businessID,
	})
	s.finish(ctx, span, "DeleteBusiness", nil)
}

// loadClientAndBusiness shares a backend read with concurrent loads of the
// same pair. A fresh load never joins a read that is already in flight, so a
// reload after a mutation always sees the mutated state.
func (s *Store) loadClientAndBusiness(ctx context.Context, clientID, businessID string, fresh bool) error {
	gen := s.nextGeneration(projAggregate)
	key := "pair:" + clientID + "/" + businessID
	if fresh {
		s.flights.Forget(key)
	}
	v, err, _ := s.flights.Do(key, func() (any, error) {
		return s.clientAPI.ClientAndBusiness(context.WithoutCancel(ctx), clientID, businessID)
	})

	s.mu.Lock()
	if !s.isCurrent(projAggregate, gen) {
		s.mu.Unlock()
		s.dropStale(ctx, projAggregate)
		return nil
	}
	defer s.mu.Unlock()
	if err != nil {
		return err
	}

	resp := v.(*models.ClientBusinessResponse)
	businesses := slices.Clone(resp.Client.Businesses)
	if resp.Business != nil {
		if i := slices.IndexFunc(businesses, func(b models.Business) bool { return b.ID == resp.Business.ID }); i >= 0 {
			businesses[i] = *resp.Business
		}
	}
	s.setClient(resp.Client, businesses)
	if slices.ContainsFunc(businesses, func(b models.Business) bool { return b.ID == businessID }) {
		s.selectedID = businessID
	} else {
		s.selectedID = ""
	}
	return nil
}

// Only FetchClientWithDetails loads the general view; no mutation reloads
// it.
func (s *Store) loadClientWithDetails(ctx context.Context, clientID string) error {
	gen := s.nextGeneration(projAggregate)
	v, err, _ := s.flights.Do("details:"+clientID, func() (any, error) {
		return s.clientAPI.ClientWithDetails(context.WithoutCancel(ctx), clientID)
	})

	s.mu.Lock()
	if !s.isCurrent(projAggregate, gen) {
		s.mu.Unlock()
		s.dropStale(ctx, projAggregate)
		return nil
	}
	defer s.mu.Unlock()
	s.selectedID = ""
	if err != nil {
		return err
	}

	resp := v.(*models.ClientWithDetailsResponse)
	businesses := resp.Businesses
	if len(businesses) == 0 {
		businesses = resp.Client.Businesses
	}
	client := resp.Client
	if len(resp.Transactions) > 0 {
		client.Transactions = slices.Clone(resp.Transactions)
	}
	s.setClient(client, slices.Clone(businesses))
	return nil
}

// setClient must be called with mu held.
func (s *Store) setClient(c models.Client, businesses []models.Business) {
	if businesses == nil {
		businesses = []models.Business{}
	}
	c.Businesses = businesses
	s.client = &c
	s.businesses = slices.Clone(businesses)
}
