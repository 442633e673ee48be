package backend

import (
	"context"

	"backoffice/internal/models"
)

// ClientService covers clients, their meetings and their transactions.
type ClientService struct {
	c *Client
}

func NewClientService(c *Client) *ClientService {
	return &ClientService{c: c}
}

func (s *ClientService) ClientAndBusiness(ctx context.Context, clientID, businessID string) (*models.ClientBusinessResponse, error) {
	var out models.ClientBusinessResponse
	if err := s.c.get(ctx, "client", "client/"+seg(clientID)+"/business/"+seg(businessID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ClientService) ClientWithDetails(ctx context.Context, clientID string) (*models.ClientWithDetailsResponse, error) {
	var out models.ClientWithDetailsResponse
	if err := s.c.get(ctx, "client", "client/"+seg(clientID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ClientService) AllClients(ctx context.Context) ([]models.Client, error) {
	var out models.List[models.Client]
	if err := s.c.get(ctx, "clients", "clients", nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// Search runs the unified client search. page is 1-based.
func (s *ClientService) Search(ctx context.Context, term string, page, limit int) (*models.Page[models.Client], error) {
	q := pageQuery(page, limit)
	q.Set("q", term)
	var out models.Page[models.Client]
	if err := s.c.get(ctx, "search", "search", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ClientService) ConfirmStrategyMeeting(ctx context.Context, clientID, meetingID string) (*models.ConfirmationResponse, error) {
	var out models.ConfirmationResponse
	body := map[string]string{"meetingId": meetingID}
	if err := s.c.post(ctx, "meeting", "client/"+seg(clientID)+"/confirm-strategy-meeting", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ClientService) CompleteDataStrategyMeeting(ctx context.Context, clientID, meetingID string) (*models.ConfirmationResponse, error) {
	var out models.ConfirmationResponse
	body := map[string]string{"meetingId": meetingID}
	if err := s.c.post(ctx, "meeting", "client/"+seg(clientID)+"/complete-data-strategy-meeting", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ClientService) MeetingStatus(ctx context.Context, clientID string) (*models.MeetingStatusResponse, error) {
	var out models.MeetingStatusResponse
	if err := s.c.get(ctx, "meeting", "clients/"+seg(clientID)+"/meeting-status", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ClientService) AllMeetings(ctx context.Context, clientID string) ([]models.Meeting, error) {
	var out models.AllMeetingsResponse
	if err := s.c.get(ctx, "meeting", "client/"+seg(clientID)+"/all-meetings", nil, &out); err != nil {
		return nil, err
	}
	return out.Meetings, nil
}

func (s *ClientService) UnassignedMeetings(ctx context.Context, page, limit int) (*models.Page[models.Meeting], error) {
	var out models.Page[models.Meeting]
	if err := s.c.get(ctx, "meeting", "client/meeting/unassigned", pageQuery(page, limit), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AssignMeeting links meetingID to a client and, when businessID is not
// empty, to one of its businesses. The path spelling is the backend's.
func (s *ClientService) AssignMeeting(ctx context.Context, meetingID, clientID, businessID string) error {
	body := models.AssignMeetingRequest{ClientID: clientID, BusinessID: businessID}
	return s.c.patch(ctx, "meeting", "client/meetings/"+seg(meetingID)+"/asign", body, nil)
}

func (s *ClientService) DeleteMeeting(ctx context.Context, meetingID string) error {
	return s.c.delete(ctx, "meeting", "meeting/"+seg(meetingID), nil)
}

// Transactions returns one page of a client's transactions, optionally
// restricted to a date range.
func (s *ClientService) Transactions(ctx context.Context, clientID string, page, limit int, r models.DateRange) (*models.Page[models.Transaction], error) {
	q := pageQuery(page, limit)
	setDate(q, "from", r.From)
	setDate(q, "to", r.To)
	var out models.Page[models.Transaction]
	if err := s.c.get(ctx, "transaction", "clients/"+seg(clientID)+"/transactions", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ClientService) DeleteTransaction(ctx context.Context, transactionID string) error {
	return s.c.delete(ctx, "transaction", "transactions/"+seg(transactionID), nil)
}

