package payments

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks PaymentsAPI,AuditPublisher

import (
	"context"

	"backoffice/internal/models"
	audit "backoffice/pkg/platform/audit"
)

type PaymentsAPI interface {
	GeneratePaymentLink(ctx context.Context, req models.PaymentLinkRequest) (string, error)
	RegisterManualTransfer(ctx context.Context, t models.ManualTransfer) error
	Summary(ctx context.Context, r models.DateRange) (*models.PaymentsSummary, error)
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}
