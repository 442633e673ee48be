package httptransport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"backoffice/internal/auth/lockout"
	"backoffice/internal/auth/login"
	"backoffice/internal/auth/token"
	checklistmocks "backoffice/internal/console/checklist/mocks"
	cbmocks "backoffice/internal/console/clientbusiness/mocks"
	mvpmocks "backoffice/internal/console/mvp/mocks"
	paymentsmocks "backoffice/internal/console/payments/mocks"
	searchmocks "backoffice/internal/console/search/mocks"
	"backoffice/internal/console/session"
	"backoffice/internal/models"
	"backoffice/internal/platform/metrics"
	"backoffice/internal/transport/http/mocks"
	dErrors "backoffice/pkg/domain-errors"
	audit "backoffice/pkg/platform/audit"
	"backoffice/pkg/platform/sentinel"
	"backoffice/pkg/testutil"
)

const goodToken = "good-token"

type clientBackend struct {
	*cbmocks.MockClientAPI
	*searchmocks.MockClientDirectory
}

// =============================================================================
// Router Test Suite
// =============================================================================
// Drives the full chi router: real middleware, real session registry and
// real stores, with the auth service and the backend ports mocked.

type RouterSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	auth       *mocks.MockAuthService
	clients    *cbmocks.MockClientAPI
	directory  *searchmocks.MockClientDirectory
	businesses *cbmocks.MockBusinessAPI
	checklists *checklistmocks.MockChecklistAPI
	accounts   *mvpmocks.MockAccountAPI
	payments   *paymentsmocks.MockPaymentsAPI
	registry   *session.Registry
	promReg    *prometheus.Registry
	checks     []HealthCheck
	router     http.Handler
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.auth = mocks.NewMockAuthService(s.ctrl)
	s.clients = cbmocks.NewMockClientAPI(s.ctrl)
	s.directory = searchmocks.NewMockClientDirectory(s.ctrl)
	s.businesses = cbmocks.NewMockBusinessAPI(s.ctrl)
	s.checklists = checklistmocks.NewMockChecklistAPI(s.ctrl)
	s.accounts = mvpmocks.NewMockAccountAPI(s.ctrl)
	s.payments = paymentsmocks.NewMockPaymentsAPI(s.ctrl)
	s.promReg = prometheus.NewRegistry()
	s.checks = nil

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.New(s.promReg)
	s.registry = session.NewRegistry(session.Deps{
		Clients:    clientBackend{MockClientAPI: s.clients, MockClientDirectory: s.directory},
		Businesses: s.businesses,
		Checklists: s.checklists,
		Accounts:   s.accounts,
		Payments:   s.payments,
		Logger:     logger,
		Metrics:    m,
	})
	s.router = s.newRouter(logger, m)
}

func (s *RouterSuite) newRouter(logger *slog.Logger, m *metrics.Metrics) http.Handler {
	return NewRouter(Deps{
		Auth:         s.auth,
		Sessions:     s.registry,
		Logger:       logger,
		Metrics:      m,
		Gatherer:     s.promReg,
		HealthChecks: s.checks,
	})
}

func (s *RouterSuite) TearDownTest() {
	s.registry.Close()
	s.ctrl.Finish()
}

func testClaims() *token.Claims {
	return &token.Claims{
		SessionID: "sess-1",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin@example.com",
			ID:        "jti-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func (s *RouterSuite) authenticated() {
	s.auth.EXPECT().Authenticate(gomock.Any(), goodToken).Return(testClaims(), nil).AnyTimes()
}

func (s *RouterSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+goodToken)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *RouterSuite) decode(rec *httptest.ResponseRecorder, v any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

// =============================================================================
// Auth endpoints
// =============================================================================

func (s *RouterSuite) TestLogin() {
	s.Run("valid credentials return a session", func() {
		expires := time.Date(2025, 6, 1, 17, 0, 0, 0, time.UTC)
		s.auth.EXPECT().Login(gomock.Any(), "admin@example.com", "s3cret-pass").Return(&login.Session{
			AccessToken: "signed",
			TokenType:   "Bearer",
			ExpiresAt:   expires,
			SessionID:   "sess-9",
		}, nil)

		rec := s.do(http.MethodPost, "/auth/login", `{"email":" admin@example.com ","password":"s3cret-pass"}`)

		s.Require().Equal(http.StatusOK, rec.Code)
		var got login.Session
		s.decode(rec, &got)
		s.Equal("signed", got.AccessToken)
		s.Equal("sess-9", got.SessionID)
		s.True(expires.Equal(got.ExpiresAt))
	})

	s.Run("malformed body is 400 without calling the service", func() {
		rec := s.do(http.MethodPost, "/auth/login", `{bad`)

		s.Equal(http.StatusBadRequest, rec.Code)
		s.Contains(rec.Body.String(), `"error":"bad_request"`)
	})

	s.Run("missing password is a validation error", func() {
		rec := s.do(http.MethodPost, "/auth/login", `{"email":"admin@example.com"}`)

		s.Equal(http.StatusBadRequest, rec.Code)
		s.Contains(rec.Body.String(), `"error":"validation_error"`)
	})

	s.Run("rejected credentials are 401", func() {
		s.auth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, dErrors.New(dErrors.CodeUnauthorized, "invalid email or password"))

		rec := s.do(http.MethodPost, "/auth/login", `{"email":"x@example.com","password":"nope"}`)

		s.Equal(http.StatusUnauthorized, rec.Code)
		var body map[string]string
		s.decode(rec, &body)
		s.Equal("unauthorized", body["error"])
		s.Equal("invalid email or password", body["error_description"])
	})

	s.Run("locked out logins are 429 with Retry-After", func() {
		s.auth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, &lockout.LockedError{RetryAfter: 90*time.Second + 300*time.Millisecond})

		rec := s.do(http.MethodPost, "/auth/login", `{"email":"admin@example.com","password":"nope"}`)

		s.Equal(http.StatusTooManyRequests, rec.Code)
		s.Equal("91", rec.Header().Get("Retry-After"))
		s.Contains(rec.Body.String(), `"error":"rate_limited"`)
	})

	s.Run("form bodies are refused", func() {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader("email=a"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)

		s.Equal(http.StatusUnsupportedMediaType, rec.Code)
	})
}

func (s *RouterSuite) TestLogout() {
	s.Run("revokes the token and drops the console", func() {
		s.authenticated()
		_, err := s.registry.Get("sess-1", "admin@example.com")
		s.Require().NoError(err)
		s.auth.EXPECT().Logout(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c *token.Claims) error {
			s.Equal("jti-1", c.ID)
			return nil
		})

		rec := s.do(http.MethodPost, "/auth/logout", "")

		s.Equal(http.StatusNoContent, rec.Code)
		s.Equal(0, s.registry.Len())
	})

	s.Run("revocation failure keeps the console", func() {
		s.authenticated()
		_, err := s.registry.Get("sess-1", "admin@example.com")
		s.Require().NoError(err)
		s.auth.EXPECT().Logout(gomock.Any(), gomock.Any()).
			Return(dErrors.Wrap(errors.New("redis down"), dErrors.CodeUnavailable, "failed to revoke token"))

		rec := s.do(http.MethodPost, "/auth/logout", "")

		s.Equal(http.StatusBadGateway, rec.Code)
		s.Equal(1, s.registry.Len())
	})
}

func (s *RouterSuite) TestConsoleRequiresAuth() {
	req := httptest.NewRequest(http.MethodGet, "/console/state", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(0, s.registry.Len())
}

// =============================================================================
// Console endpoints
// =============================================================================

func (s *RouterSuite) TestFetchClientWithDetails() {
	s.authenticated()

	s.Run("answers with the aggregate snapshot", func() {
		s.clients.EXPECT().ClientWithDetails(gomock.Any(), "C1").Return(&models.ClientWithDetailsResponse{
			Client:     models.Client{ID: "C1", Name: "Cliente C1"},
			Businesses: []models.Business{{ID: "B1", Name: "Negocio B1"}},
		}, nil)

		rec := s.do(http.MethodGet, "/console/clients/C1", "")

		s.Require().Equal(http.StatusOK, rec.Code)
		var snap struct {
			Client     models.Client     `json:"client"`
			Businesses []models.Business `json:"businesses"`
		}
		s.decode(rec, &snap)
		s.Equal("C1", snap.Client.ID)
		s.Len(snap.Businesses, 1)
		s.Equal(1, s.registry.Len())
	})

	s.Run("backend not found maps to 404 with the snapshot", func() {
		s.clients.EXPECT().ClientWithDetails(gomock.Any(), "C404").
			Return(nil, fmt.Errorf("client C404: %w", sentinel.ErrNotFound))

		rec := s.do(http.MethodGet, "/console/clients/C404", "")

		s.Equal(http.StatusNotFound, rec.Code)
		var snap map[string]any
		s.decode(rec, &snap)
		s.Contains(snap["error"], "not found")
	})
}

func (s *RouterSuite) TestSelectBusiness() {
	s.authenticated()
	s.clients.EXPECT().ClientAndBusiness(gomock.Any(), "C1", "B1").Return(&models.ClientBusinessResponse{
		Client: models.Client{ID: "C1", Businesses: []models.Business{{ID: "B1"}, {ID: "B2"}}},
	}, nil)
	s.Require().Equal(http.StatusOK, s.do(http.MethodGet, "/console/clients/C1/businesses/B1", "").Code)

	s.Run("loaded business becomes selected", func() {
		rec := s.do(http.MethodPut, "/console/selected-business", `{"businessId":"B2"}`)

		s.Require().Equal(http.StatusOK, rec.Code)
		var snap struct {
			SelectedBusiness *models.Business `json:"selectedBusiness"`
		}
		s.decode(rec, &snap)
		s.Require().NotNil(snap.SelectedBusiness)
		s.Equal("B2", snap.SelectedBusiness.ID)
	})

	s.Run("unknown business is 404", func() {
		rec := s.do(http.MethodPut, "/console/selected-business", `{"businessId":"B9"}`)

		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *RouterSuite) TestToggleUnknownChecklistItem() {
	s.authenticated()

	rec := s.do(http.MethodPost, "/console/businesses/B1/checklist/phases/P1/items/I1/toggle", "")

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *RouterSuite) TestFetchChecklistIncludesDerivedPhase() {
	s.authenticated()
	s.checklists.EXPECT().Checklist(gomock.Any(), "B1").Return(&models.Checklist{
		BusinessID:   "B1",
		CurrentPhase: 1,
		Phases: []models.ChecklistPhase{
			{ID: "P1", Name: "Kickoff", Completed: true},
			{ID: "P2", Name: "Data strategy"},
		},
	}, nil)

	rec := s.do(http.MethodGet, "/console/businesses/B1/checklist", "")

	s.Require().Equal(http.StatusOK, rec.Code)
	var state struct {
		CurrentPhase *models.ChecklistPhase `json:"currentPhase"`
		IsComplete   bool                   `json:"isComplete"`
	}
	s.decode(rec, &state)
	s.Require().NotNil(state.CurrentPhase)
	s.Equal("P2", state.CurrentPhase.ID)
	s.False(state.IsComplete)
}

func (s *RouterSuite) TestCreateMvpAccount() {
	s.authenticated()
	s.accounts.EXPECT().CreateAccount(gomock.Any(), "C1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req models.CreateMvpAccountRequest) (*models.CreateMvpAccountResponse, error) {
			s.Equal("C1", req.ClientID)
			s.Equal("owner@example.com", req.Email)
			return &models.CreateMvpAccountResponse{Account: models.MvpAccount{ID: "A1", Client: "C1"}}, nil
		})
	s.accounts.EXPECT().AccountsForClient(gomock.Any(), "C1").Return([]models.MvpAccount{{ID: "A1", Client: "C1"}}, nil)

	rec := s.do(http.MethodPost, "/console/clients/C1/mvp-accounts",
		`{"email":" owner@example.com","password":"long-enough","firstName":"Ana","lastName":"Diaz"}`)

	s.Require().Equal(http.StatusCreated, rec.Code)
	var account models.MvpAccount
	s.decode(rec, &account)
	s.Equal("A1", account.ID)
}

func (s *RouterSuite) TestCreateMvpAccountShortPassword() {
	s.authenticated()

	rec := s.do(http.MethodPost, "/console/clients/C1/mvp-accounts",
		`{"email":"owner@example.com","password":"short","firstName":"Ana","lastName":"Diaz"}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), `"error"`)
}

func (s *RouterSuite) TestPaymentLinkFailureIsAResult() {
	s.authenticated()
	s.payments.EXPECT().GeneratePaymentLink(gomock.Any(), gomock.Any()).Return("", errors.New("gateway refused"))

	rec := s.do(http.MethodPost, "/console/payments/links",
		`{"monto":25,"correoCliente":"buyer@example.com","nombreCliente":"Ana"}`)

	s.Require().Equal(http.StatusOK, rec.Code)
	var result models.PaymentLinkResult
	s.decode(rec, &result)
	s.False(result.Success)
	s.NotEmpty(result.Error)
}

func (s *RouterSuite) TestPaymentsSummaryRejectsBadDate() {
	s.authenticated()

	rec := s.do(http.MethodGet, "/console/payments/summary?from=yesterday", "")

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterSuite) TestSearch() {
	s.authenticated()

	s.Run("term searches page one", func() {
		s.directory.EXPECT().Search(gomock.Any(), "ana", 1, gomock.Any()).Return(&models.Page[models.Client]{
			Data:       []models.Client{{ID: "C1", Name: "Ana"}},
			Pagination: models.Pagination{Total: 1, Page: 1, Limit: 10, TotalPages: 1},
		}, nil)

		rec := s.do(http.MethodGet, "/console/search?q=ana", "")

		s.Require().Equal(http.StatusOK, rec.Code)
		var snap struct {
			DisplayList []models.Client `json:"displayList"`
			Term        string          `json:"searchTerm"`
		}
		s.decode(rec, &snap)
		s.Len(snap.DisplayList, 1)
		s.Equal("ana", snap.Term)
	})

	s.Run("page must be a positive integer", func() {
		rec := s.do(http.MethodGet, "/console/search/pages/zero", "")

		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *RouterSuite) TestStateAndReset() {
	s.authenticated()

	rec := s.do(http.MethodGet, "/console/state", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	var state map[string]json.RawMessage
	s.decode(rec, &state)
	for _, key := range []string{"clients", "checklist", "mvp", "payments", "search", "observations", "businessForm"} {
		s.Contains(state, key)
	}

	s.Equal(http.StatusNoContent, s.do(http.MethodPost, "/console/reset", "").Code)
}

// =============================================================================
// Operational endpoints
// =============================================================================

func (s *RouterSuite) TestHealthz() {
	s.Run("no checks is ok", func() {
		rec := s.do(http.MethodGet, "/healthz", "")
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"status":"ok"`)
	})

	s.Run("a failing dependency degrades", func() {
		s.checks = []HealthCheck{
			{Name: "redis", Check: func(context.Context) error { return errors.New("refused") }},
			{Name: "audit_db", Check: func(context.Context) error { return nil }},
		}
		router := s.newRouter(slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		s.Equal(http.StatusServiceUnavailable, rec.Code)
		var body healthResponse
		s.decode(rec, &body)
		s.Equal("degraded", body.Status)
		s.Equal("down", body.Checks["redis"])
		s.Equal("up", body.Checks["audit_db"])
	})
}

func (s *RouterSuite) TestMetricsEndpoint() {
	s.Require().Equal(http.StatusOK, s.do(http.MethodGet, "/healthz", "").Code)

	rec := s.do(http.MethodGet, "/metrics", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "backoffice_http_request_duration_seconds")
}

func (s *RouterSuite) TestAuditTrail() {
	s.authenticated()
	reader := mocks.NewMockAuditReader(s.ctrl)
	router := NewRouter(Deps{
		Auth:     s.auth,
		Sessions: s.registry,
		Audit:    reader,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Gatherer: s.promReg,
	})
	get := func(path string) *httptest.ResponseRecorder {
		return testutil.DoRequest(router, testutil.WithBearer(httptest.NewRequest(http.MethodGet, path, nil), goodToken))
	}

	s.Run("by subject", func() {
		reader.EXPECT().List(gomock.Any(), "c-1").Return([]audit.Event{{Action: "meeting_deleted", Subject: "c-1"}}, nil)

		rec := get("/console/audit?subject=c-1")

		s.Equal(http.StatusOK, rec.Code)
		var body AuditResponse
		s.decode(rec, &body)
		s.Require().Len(body.Events, 1)
		s.Equal("meeting_deleted", body.Events[0].Action)
	})

	s.Run("recent is capped", func() {
		reader.EXPECT().Recent(gomock.Any(), maxAuditLimit).Return(nil, nil)

		rec := get("/console/audit?limit=10000")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"events":[]}`, rec.Body.String())
	})

	s.Run("requires a token", func() {
		rec := testutil.DoRequest(router, httptest.NewRequest(http.MethodGet, "/console/audit", nil))
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}
