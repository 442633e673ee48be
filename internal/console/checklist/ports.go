package checklist

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks ChecklistAPI,AuditPublisher

import (
	"context"

	"backoffice/internal/models"
	audit "backoffice/pkg/platform/audit"
)

type ChecklistAPI interface {
	Checklist(ctx context.Context, businessID string) (*models.Checklist, error)
	Progress(ctx context.Context, businessID string) (*models.ChecklistProgress, error)
	UpdateItem(ctx context.Context, businessID, phaseID, itemID string, req models.UpdateChecklistItemRequest) error
	NextPhase(ctx context.Context, businessID string) error
	UpdatePhaseObservations(ctx context.Context, businessID, phaseID, observations string) error
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}
