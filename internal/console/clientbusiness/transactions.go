package clientbusiness

import (
	"context"
	"slices"

	"go.opentelemetry.io/otel/attribute"

	"backoffice/internal/models"
	dErrors "backoffice/pkg/domain-errors"
	audit "backoffice/pkg/platform/audit"
)

// FetchTransactions loads one page of clientID's transactions under the
// current filter. Transactions and pagination are replaced together or not
// at all. A non-positive limit uses the configured page size.
func (s *Store) FetchTransactions(ctx context.Context, clientID string, page, limit int) {
	ctx, span := s.startSpan(ctx, "FetchTransactions",
		attribute.String("client_id", clientID), attribute.Int("page", page))
	done := s.beginAction(&s.txLoading)
	defer done()

	err := s.loadTransactions(ctx, clientID, page, limit, false)
	s.recordError(err)
	s.finish(ctx, span, "FetchTransactions", err)
}

// SetTransactionFilter stores r and loads page 1 under it. If that load
// fails the transaction list is emptied, since the previous page no longer
// matches the filter. An inverted range is rejected without a call and also
// empties the list.
func (s *Store) SetTransactionFilter(ctx context.Context, clientID string, r models.DateRange) {
	ctx, span := s.startSpan(ctx, "SetTransactionFilter", attribute.String("client_id", clientID))
	if !r.Valid() {
		err := dErrors.New(dErrors.CodeValidation, "transaction filter starts after it ends")
		s.nextGeneration(projTransactions)
		s.mu.Lock()
		s.transactions = nil
		s.pagination = nil
		s.mu.Unlock()
		s.recordError(err)
		s.finish(ctx, span, "SetTransactionFilter", err)
		return
	}
	done := s.beginAction(&s.txLoading)
	defer done()

	s.mu.Lock()
	s.filter = r
	s.mu.Unlock()

	err := s.loadTransactions(ctx, clientID, 1, 0, true)
	s.recordError(err)
	s.finish(ctx, span, "SetTransactionFilter", err)
}

// RemoveTransaction deletes transactionID, drops it from the loaded page if
// present and decrements the pagination total by one. Nothing changes on
// failure.
func (s *Store) RemoveTransaction(ctx context.Context, transactionID string) {
	if transactionID == "" {
		s.skip(ctx, "RemoveTransaction", "empty transaction id")
		return
	}
	ctx, span := s.startSpan(ctx, "RemoveTransaction", attribute.String("transaction_id", transactionID))
	done := s.beginAction(&s.txLoading)
	defer done()

	if err := s.clientAPI.DeleteTransaction(ctx, transactionID); err != nil {
		s.recordError(err)
		s.finish(ctx, span, "RemoveTransaction", err)
		return
	}

	s.mu.Lock()
	s.transactions = slices.DeleteFunc(slices.Clone(s.transactions), func(t models.Transaction) bool {
		return t.ID == transactionID
	})
	if s.pagination != nil {
		p := *s.pagination
		p.Total = max(p.Total-1, 0)
		s.pagination = &p
	}
	var clientID string
	if s.client != nil {
		clientID = s.client.ID
	}
	s.mu.Unlock()

	s.emitAudit(ctx, audit.Event{
		Action:   string(audit.EventTransactionDeleted),
		Subject:  clientID,
		Resource: transactionID,
	})
	s.finish(ctx, span, "RemoveTransaction", nil)
}

func (s *Store) loadTransactions(ctx context.Context, clientID string, page, limit int, clearOnFailure bool) error {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = s.transactionsPageSize
	}
	gen := s.nextGeneration(projTransactions)
	s.mu.Lock()
	filter := s.filter
	s.mu.Unlock()

	resp, err := s.clientAPI.Transactions(ctx, clientID, page, limit, filter)

	s.mu.Lock()
	if !s.isCurrent(projTransactions, gen) {
		s.mu.Unlock()
		s.dropStale(ctx, projTransactions)
		return nil
	}
	defer s.mu.Unlock()
	if err != nil {
		if clearOnFailure {
			s.transactions = nil
			s.pagination = nil
		}
		return err
	}
	s.transactions = nonNil(resp.Data)
	p := resp.Pagination
	s.pagination = &p
	return nil
}
