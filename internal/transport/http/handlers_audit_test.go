package httptransport

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"backoffice/internal/platform/logger"
	"backoffice/internal/transport/http/mocks"
	audit "backoffice/pkg/platform/audit"
	"backoffice/pkg/platform/sentinel"
	"backoffice/pkg/testutil"
)

func newAuditRouter(t *testing.T) (http.Handler, *mocks.MockAuditReader) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockAuditReader(ctrl)
	r := chi.NewRouter()
	NewAuditHandler(reader, logger.Discard()).Register(r)
	return r, reader
}

func TestAuditHandler(t *testing.T) {
	t.Run("subject filter", func(t *testing.T) {
		router, reader := newAuditRouter(t)
		at := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
		reader.EXPECT().List(gomock.Any(), "biz-7").Return([]audit.Event{
			{Action: string(audit.EventBusinessDeleted), Subject: "c-1", BusinessID: "biz-7", Timestamp: at},
		}, nil)

		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet, "/audit?subject=%20biz-7%20", nil))

		testutil.AssertStatus(t, rr, http.StatusOK)
		got := testutil.UnmarshalResponse[AuditResponse](t, rr)
		if len(got.Events) != 1 || got.Events[0].BusinessID != "biz-7" || !got.Events[0].Timestamp.Equal(at) {
			t.Fatalf("unexpected events: %+v", got.Events)
		}
	})

	t.Run("default limit", func(t *testing.T) {
		router, reader := newAuditRouter(t)
		reader.EXPECT().Recent(gomock.Any(), defaultAuditLimit).Return([]audit.Event{}, nil)

		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet, "/audit", nil))

		testutil.AssertStatus(t, rr, http.StatusOK)
	})

	t.Run("zero limit is rejected", func(t *testing.T) {
		router, _ := newAuditRouter(t)

		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet, "/audit?limit=0", nil))

		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "validation_error")
	})

	t.Run("store outage", func(t *testing.T) {
		router, reader := newAuditRouter(t)
		reader.EXPECT().Recent(gomock.Any(), 5).Return(nil, errors.Join(sentinel.ErrUnavailable, errors.New("db down")))

		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet, "/audit?limit=5", nil))

		testutil.AssertStatusAndError(t, rr, http.StatusBadGateway, "unavailable")
	})
}
