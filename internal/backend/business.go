package backend

import (
	"context"

	"backoffice/internal/models"
)

type BusinessService struct {
	c *Client
}

func NewBusinessService(c *Client) *BusinessService {
	return &BusinessService{c: c}
}

// EditBusiness sends only the fields set on patch.
func (s *BusinessService) EditBusiness(ctx context.Context, businessID string, patch models.BusinessPatch) error {
	return s.c.patch(ctx, "business", "business/edit/"+seg(businessID), patch, nil)
}

func (s *BusinessService) Managers(ctx context.Context, businessID string) ([]models.Manager, error) {
	var out models.List[models.Manager]
	if err := s.c.get(ctx, "business", "business/"+seg(businessID)+"/managers", nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// AddManager returns the business as the backend stored it.
func (s *BusinessService) AddManager(ctx context.Context, businessID string, m models.NewManager) (*models.Business, error) {
	var out struct {
		Data models.Business `json:"data"`
	}
	if err := s.c.post(ctx, "business", "business/"+seg(businessID)+"/managers", m, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (s *BusinessService) RemoveManager(ctx context.Context, businessID, managerID string) (*models.Business, error) {
	var out struct {
		Data models.Business `json:"data"`
	}
	if err := s.c.delete(ctx, "business", "business/"+seg(businessID)+"/managers/"+seg(managerID), &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (s *BusinessService) DeleteBusiness(ctx context.Context, businessID string) error {
	return s.c.delete(ctx, "business", "business/"+seg(businessID), nil)
}
