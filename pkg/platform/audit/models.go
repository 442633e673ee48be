package audit

import (
	"context"
	"time"
)

// EventCategory classifies audit events by their primary purpose.
type EventCategory string

const (
	// CategorySecurity covers authentication events: logins, failures, logouts.
	CategorySecurity EventCategory = "security"

	// CategoryCompliance covers destructive or money-moving console actions
	// that must be traceable to an operator.
	CategoryCompliance EventCategory = "compliance"

	// CategoryOperations covers routine console edits.
	CategoryOperations EventCategory = "operations"
)

// Event is emitted from the console stores and the auth handlers. Keep it
// transport-agnostic so stores can persist it however they like.
type Event struct {
	ID         string
	Category   EventCategory
	Timestamp  time.Time
	Action     string
	Subject    string // client id, or admin email for auth events
	BusinessID string
	Resource   string // meeting, manager, transaction or account id touched
	Reason     string
	ActorID    string
	SessionID  string
	RequestID  string
	ClientIP   string
	Device     string
}

type AuditEvent string

const (
	// Auth events
	EventLoginSucceeded AuditEvent = "login_succeeded"
	EventLoginFailed    AuditEvent = "login_failed"
	EventLogout         AuditEvent = "logout"
	EventLoginLocked    AuditEvent = "login_locked"

	// Meeting events
	EventPortfolioAccessConfirmed AuditEvent = "portfolio_access_confirmed"
	EventDataStrategyCompleted    AuditEvent = "data_strategy_completed"
	EventMeetingAssigned          AuditEvent = "meeting_assigned"
	EventMeetingDeleted           AuditEvent = "meeting_deleted"

	// Business events
	EventManagerAdded     AuditEvent = "manager_added"
	EventManagerRemoved   AuditEvent = "manager_removed"
	EventBusinessUpdated  AuditEvent = "business_updated"
	EventBusinessDeleted  AuditEvent = "business_deleted"
	EventChecklistUpdated AuditEvent = "checklist_updated"
	EventPhaseAdvanced    AuditEvent = "checklist_phase_advanced"

	// Money events
	EventTransactionDeleted     AuditEvent = "transaction_deleted"
	EventPaymentLinkGenerated   AuditEvent = "payment_link_generated"
	EventManualTransferRecorded AuditEvent = "manual_transfer_recorded"

	// MVP account events
	EventMvpAccountCreated  AuditEvent = "mvp_account_created"
	EventMvpPasswordChanged AuditEvent = "mvp_password_changed"
	EventMvpAccountDeleted  AuditEvent = "mvp_account_deleted"
)

var eventCategories = map[AuditEvent]EventCategory{
	EventLoginSucceeded: CategorySecurity,
	EventLoginFailed:    CategorySecurity,
	EventLogout:         CategorySecurity,
	EventLoginLocked:    CategorySecurity,

	EventMvpPasswordChanged: CategorySecurity,

	EventBusinessDeleted:        CategoryCompliance,
	EventMeetingDeleted:         CategoryCompliance,
	EventTransactionDeleted:     CategoryCompliance,
	EventManualTransferRecorded: CategoryCompliance,
	EventMvpAccountDeleted:      CategoryCompliance,
}

// Category returns the EventCategory for this audit event.
// Unknown events default to CategoryOperations.
func (e AuditEvent) Category() EventCategory {
	if cat, ok := eventCategories[e]; ok {
		return cat
	}
	return CategoryOperations
}

// Store persists audit events.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListBySubject(ctx context.Context, subject string) ([]Event, error)
	ListRecent(ctx context.Context, limit int) ([]Event, error)
}
