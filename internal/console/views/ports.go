package views

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks PhaseObservations,BusinessUpdater

import (
	"context"

	"backoffice/internal/models"
)

// PhaseObservations is the part of the checklist store the observations editor drives.
type PhaseObservations interface {
	PhaseByID(phaseID string) *models.ChecklistPhase
	UpdatePhaseObservations(ctx context.Context, businessID, phaseID, observations string) error
}

// BusinessUpdater is the part of the client/business store the business form drives.
type BusinessUpdater interface {
	UpdateBusinessDetails(ctx context.Context, patch models.BusinessPatch) error
}
