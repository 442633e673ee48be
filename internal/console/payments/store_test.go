package payments

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"backoffice/internal/console/payments/mocks"
	"backoffice/internal/models"
	dErrors "backoffice/pkg/domain-errors"
	audit "backoffice/pkg/platform/audit"
	"backoffice/pkg/platform/sentinel"
)

func newStore(t *testing.T) (*Store, *mocks.MockPaymentsAPI, *mocks.MockAuditPublisher) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mocks.NewMockPaymentsAPI(ctrl)
	auditor := mocks.NewMockAuditPublisher(ctrl)
	store, err := New(api,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithAuditPublisher(auditor),
	)
	require.NoError(t, err)
	return store, api, auditor
}

func march() models.DateRange {
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	return models.DateRange{From: &from, To: &to}
}

func summaryWith(total int) *models.PaymentsSummary {
	s := &models.PaymentsSummary{}
	s.ConfirmedPayments.Total = total
	return s
}

func TestFetchSummary(t *testing.T) {
	t.Run("stores the summary and the range", func(t *testing.T) {
		store, api, _ := newStore(t)
		api.EXPECT().Summary(gomock.Any(), march()).Return(summaryWith(4), nil)

		store.FetchSummary(context.Background(), march())

		snap := store.Snapshot()
		assert.Equal(t, 4, snap.Summary.ConfirmedPayments.Total)
		assert.Equal(t, march(), snap.Range)
		assert.False(t, snap.IsLoading)
	})

	t.Run("inverted range is rejected without a call", func(t *testing.T) {
		store, _, _ := newStore(t)
		r := march()
		r.From, r.To = r.To, r.From

		store.FetchSummary(context.Background(), r)

		assert.True(t, dErrors.HasCode(store.Snapshot().Err, dErrors.CodeValidation))
	})

	t.Run("failure keeps the previous summary", func(t *testing.T) {
		store, api, _ := newStore(t)
		api.EXPECT().Summary(gomock.Any(), models.DateRange{}).Return(summaryWith(1), nil)
		api.EXPECT().Summary(gomock.Any(), march()).Return(nil, sentinel.ErrUnavailable)

		store.FetchSummary(context.Background(), models.DateRange{})
		store.FetchSummary(context.Background(), march())

		snap := store.Snapshot()
		assert.ErrorIs(t, snap.Err, sentinel.ErrUnavailable)
		assert.Equal(t, 1, snap.Summary.ConfirmedPayments.Total)
	})
}

func TestGeneratePaymentLink(t *testing.T) {
	req := models.PaymentLinkRequest{Amount: 49.99, CustomerEmail: "ana@example.com", BusinessName: "Café Ana"}

	t.Run("success carries the url", func(t *testing.T) {
		store, api, auditor := newStore(t)
		api.EXPECT().GeneratePaymentLink(gomock.Any(), req).Return("https://pay.example/abc", nil)
		auditor.EXPECT().Emit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e audit.Event) error {
			assert.Equal(t, string(audit.EventPaymentLinkGenerated), e.Action)
			assert.Equal(t, "49.99", e.Reason)
			return nil
		})

		res := store.GeneratePaymentLink(context.Background(), req)

		assert.Equal(t, models.PaymentLinkResult{Success: true, PaymentURL: "https://pay.example/abc"}, res)
	})

	t.Run("failure is reported in the result only", func(t *testing.T) {
		store, api, _ := newStore(t)
		api.EXPECT().GeneratePaymentLink(gomock.Any(), req).Return("", sentinel.ErrUnavailable)

		res := store.GeneratePaymentLink(context.Background(), req)

		assert.False(t, res.Success)
		assert.NotEmpty(t, res.Error)
		assert.NoError(t, store.Snapshot().Err)
	})

	t.Run("zero amount never reaches the gateway", func(t *testing.T) {
		store, _, _ := newStore(t)

		res := store.GeneratePaymentLink(context.Background(), models.PaymentLinkRequest{CustomerEmail: "a@b.c"})

		assert.False(t, res.Success)
		assert.Contains(t, res.Error, "amount")
	})
}

func TestRegisterManualTransfer(t *testing.T) {
	transfer := models.ManualTransfer{Amount: 120, ClientID: "C1", Bank: "Pichincha", PaymentMethod: models.PayMethodTransfer}

	t.Run("validates before posting", func(t *testing.T) {
		store, _, _ := newStore(t)

		err := store.RegisterManualTransfer(context.Background(), models.ManualTransfer{Amount: 10})

		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
		assert.Error(t, store.Snapshot().Err)
	})

	t.Run("success refreshes the summary for the last range", func(t *testing.T) {
		store, api, auditor := newStore(t)
		api.EXPECT().Summary(gomock.Any(), march()).Return(summaryWith(1), nil)
		store.FetchSummary(context.Background(), march())

		api.EXPECT().RegisterManualTransfer(gomock.Any(), transfer).Return(nil)
		auditor.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(nil)
		api.EXPECT().Summary(gomock.Any(), march()).Return(summaryWith(2), nil)

		require.NoError(t, store.RegisterManualTransfer(context.Background(), transfer))
		assert.Equal(t, 2, store.Snapshot().Summary.ConfirmedPayments.Total)
	})

	t.Run("backend failure is returned", func(t *testing.T) {
		store, api, _ := newStore(t)
		api.EXPECT().RegisterManualTransfer(gomock.Any(), transfer).Return(sentinel.ErrConflict)

		err := store.RegisterManualTransfer(context.Background(), transfer)

		assert.ErrorIs(t, err, sentinel.ErrConflict)
		assert.Nil(t, store.Snapshot().Summary)
	})
}
