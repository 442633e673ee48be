package backend

import (
	"context"
	"net/url"

	"backoffice/internal/models"
)

type PaymentsService struct {
	c *Client
}

func NewPaymentsService(c *Client) *PaymentsService {
	return &PaymentsService{c: c}
}

// GeneratePaymentLink returns the gateway checkout URL.
func (s *PaymentsService) GeneratePaymentLink(ctx context.Context, req models.PaymentLinkRequest) (string, error) {
	var out struct {
		PaymentURL string `json:"paymentUrl"`
	}
	if err := s.c.post(ctx, "payments", "pagoplux/generate-payment-link", req, &out); err != nil {
		return "", err
	}
	return out.PaymentURL, nil
}

func (s *PaymentsService) RegisterManualTransfer(ctx context.Context, t models.ManualTransfer) error {
	return s.c.post(ctx, "payments", "payments/manual-transfer", t, nil)
}

// Summary aggregates payments over r; open bounds are omitted from the query.
func (s *PaymentsService) Summary(ctx context.Context, r models.DateRange) (*models.PaymentsSummary, error) {
	q := url.Values{}
	setDate(q, "from", r.From)
	setDate(q, "to", r.To)
	var out models.PaymentsSummaryResponse
	if err := s.c.get(ctx, "payments", "payments/summary", q, &out); err != nil {
		return nil, err
	}
	return &out.Summary, nil
}
