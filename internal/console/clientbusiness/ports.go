package clientbusiness

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks ClientAPI,BusinessAPI,AuditPublisher

import (
	"context"

	"backoffice/internal/models"
	audit "backoffice/pkg/platform/audit"
)

// ClientAPI is the slice of the backend client service the store drives.
type ClientAPI interface {
	ClientAndBusiness(ctx context.Context, clientID, businessID string) (*models.ClientBusinessResponse, error)
	ClientWithDetails(ctx context.Context, clientID string) (*models.ClientWithDetailsResponse, error)
	ConfirmStrategyMeeting(ctx context.Context, clientID, meetingID string) (*models.ConfirmationResponse, error)
	CompleteDataStrategyMeeting(ctx context.Context, clientID, meetingID string) (*models.ConfirmationResponse, error)
	MeetingStatus(ctx context.Context, clientID string) (*models.MeetingStatusResponse, error)
	AllMeetings(ctx context.Context, clientID string) ([]models.Meeting, error)
	UnassignedMeetings(ctx context.Context, page, limit int) (*models.Page[models.Meeting], error)
	AssignMeeting(ctx context.Context, meetingID, clientID, businessID string) error
	DeleteMeeting(ctx context.Context, meetingID string) error
	Transactions(ctx context.Context, clientID string, page, limit int, r models.DateRange) (*models.Page[models.Transaction], error)
	DeleteTransaction(ctx context.Context, transactionID string) error
}

type BusinessAPI interface {
	EditBusiness(ctx context.Context, businessID string, patch models.BusinessPatch) error
	AddManager(ctx context.Context, businessID string, manager models.NewManager) (*models.Business, error)
	RemoveManager(ctx context.Context, businessID, managerID string) (*models.Business, error)
	DeleteBusiness(ctx context.Context, businessID string) error
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}
