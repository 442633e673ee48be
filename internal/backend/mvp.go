package backend

import (
	"context"

	"backoffice/internal/models"
)

// MvpService manages accounts on the StoryBrand product.
type MvpService struct {
	c *Client
}

func NewMvpService(c *Client) *MvpService {
	return &MvpService{c: c}
}

func (s *MvpService) AccountsForClient(ctx context.Context, clientID string) ([]models.MvpAccount, error) {
	var out models.MvpAccountsResponse
	if err := s.c.get(ctx, "mvp", "storybrand-account/client/"+seg(clientID), nil, &out); err != nil {
		return nil, err
	}
	return out.Accounts, nil
}

// CreateAccount provisions an account for clientID. The client id in the
// path argument wins over any value set on req.
func (s *MvpService) CreateAccount(ctx context.Context, clientID string, req models.CreateMvpAccountRequest) (*models.CreateMvpAccountResponse, error) {
	req.ClientID = clientID
	var out models.CreateMvpAccountResponse
	if err := s.c.post(ctx, "mvp", "storybrand-account", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *MvpService) ChangePassword(ctx context.Context, clientID, newPassword string) error {
	body := models.ChangeMvpPasswordRequest{ClientID: clientID, NewPassword: newPassword}
	return s.c.put(ctx, "mvp", "storybrand-account/password", body, nil)
}

func (s *MvpService) DeleteAccount(ctx context.Context, clientID string) error {
	return s.c.delete(ctx, "mvp", "storybrand-account/"+seg(clientID), nil)
}
