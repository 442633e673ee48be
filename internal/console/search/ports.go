package search

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks ClientDirectory

import (
	"context"

	"backoffice/internal/models"
)

// ClientDirectory lists and searches clients.
type ClientDirectory interface {
	AllClients(ctx context.Context) ([]models.Client, error)
	Search(ctx context.Context, term string, page, limit int) (*models.Page[models.Client], error)
}
