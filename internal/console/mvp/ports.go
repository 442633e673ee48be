package mvp

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks AccountAPI,AuditPublisher

import (
	"context"

	"backoffice/internal/models"
	audit "backoffice/pkg/platform/audit"
)

type AccountAPI interface {
	AccountsForClient(ctx context.Context, clientID string) ([]models.MvpAccount, error)
	CreateAccount(ctx context.Context, clientID string, req models.CreateMvpAccountRequest) (*models.CreateMvpAccountResponse, error)
	ChangePassword(ctx context.Context, clientID, newPassword string) error
	DeleteAccount(ctx context.Context, clientID string) error
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}
