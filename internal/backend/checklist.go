package backend

import (
	"context"

	"backoffice/internal/models"
)

type ChecklistService struct {
	c *Client
}

func NewChecklistService(c *Client) *ChecklistService {
	return &ChecklistService{c: c}
}

func (s *ChecklistService) Checklist(ctx context.Context, businessID string) (*models.Checklist, error) {
	var out models.ChecklistResponse
	if err := s.c.get(ctx, "checklist", "checklist/"+seg(businessID), nil, &out); err != nil {
		return nil, err
	}
	return &out.Checklist, nil
}

func (s *ChecklistService) Progress(ctx context.Context, businessID string) (*models.ChecklistProgress, error) {
	var out models.ChecklistProgressResponse
	if err := s.c.get(ctx, "checklist", "checklist/"+seg(businessID)+"/progress", nil, &out); err != nil {
		return nil, err
	}
	return &out.Progress, nil
}

func (s *ChecklistService) UpdateItem(ctx context.Context, businessID, phaseID, itemID string, req models.UpdateChecklistItemRequest) error {
	path := "checklist/" + seg(businessID) + "/phase/" + seg(phaseID) + "/item/" + seg(itemID)
	return s.c.patch(ctx, "checklist", path, req, nil)
}

func (s *ChecklistService) NextPhase(ctx context.Context, businessID string) error {
	return s.c.post(ctx, "checklist", "checklist/"+seg(businessID)+"/next-phase", struct{}{}, nil)
}

func (s *ChecklistService) UpdatePhaseObservations(ctx context.Context, businessID, phaseID, observations string) error {
	path := "checklist/" + seg(businessID) + "/phase/" + seg(phaseID) + "/observations"
	return s.c.patch(ctx, "checklist", path, models.UpdatePhaseObservationsRequest{Observations: observations}, nil)
}
