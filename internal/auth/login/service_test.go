package login

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"backoffice/internal/auth/lockout"
	"backoffice/internal/auth/login/mocks"
	"backoffice/internal/auth/token"
	"backoffice/internal/platform/metrics"
	dErrors "backoffice/pkg/domain-errors"
	audit "backoffice/pkg/platform/audit"
	"backoffice/pkg/requestcontext"
)

type ServiceSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	revocations *mocks.MockRevocationList
	auditor     *mocks.MockAuditPublisher
	metrics     *metrics.Metrics
	tokens      *token.Service
	service     *Service
	hash        string
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupSuite() {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	s.Require().NoError(err)
	s.hash = string(hash)
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.revocations = mocks.NewMockRevocationList(s.ctrl)
	s.auditor = mocks.NewMockAuditPublisher(s.ctrl)
	s.metrics = metrics.New(prometheus.NewRegistry())

	var err error
	s.tokens, err = token.NewService("test-signing-key", time.Hour)
	s.Require().NoError(err)
	s.service, err = New(Credentials{Email: "Admin@Example.com", PasswordHash: s.hash}, s.tokens, s.revocations,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithMetrics(s.metrics),
		WithAuditPublisher(s.auditor),
	)
	s.Require().NoError(err)
}

func (s *ServiceSuite) expectAudit(action audit.AuditEvent) {
	s.auditor.EXPECT().Emit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e audit.Event) error {
		s.Equal(string(action), e.Action)
		return nil
	})
}

func (s *ServiceSuite) TestNewValidation() {
	_, err := New(Credentials{Email: "a@b.c"}, s.tokens, s.revocations)
	s.Error(err)

	_, err = New(Credentials{Email: "a@b.c", PasswordHash: "plain-text"}, s.tokens, s.revocations)
	s.ErrorContains(err, "password hash")

	_, err = New(Credentials{Email: "a@b.c", PasswordHash: s.hash}, nil, s.revocations)
	s.Error(err)
}

func (s *ServiceSuite) TestLoginSucceeds() {
	s.expectAudit(audit.EventLoginSucceeded)

	session, err := s.service.Login(context.Background(), "  admin@example.COM ", "correct horse")

	s.Require().NoError(err)
	s.Equal("Bearer", session.TokenType)
	s.NotEmpty(session.SessionID)

	claims, err := s.tokens.Validate(session.AccessToken)
	s.Require().NoError(err)
	s.Equal("admin@example.com", claims.ActorID())
	s.Equal(session.SessionID, claims.SessionID)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.LoginAttempts.WithLabelValues("success")))
}

func (s *ServiceSuite) TestLoginRejectsBadCredentials() {
	for name, creds := range map[string][2]string{
		"wrong password": {"admin@example.com", "wrong"},
		"unknown email":  {"other@example.com", "correct horse"},
	} {
		s.Run(name, func() {
			s.expectAudit(audit.EventLoginFailed)

			session, err := s.service.Login(context.Background(), creds[0], creds[1])

			s.Nil(session)
			s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
		})
	}
	s.Equal(2.0, testutil.ToFloat64(s.metrics.LoginAttempts.WithLabelValues("invalid_credentials")))
}

func (s *ServiceSuite) TestAuthenticate() {
	signed, claims, err := s.tokens.Issue("admin@example.com")
	s.Require().NoError(err)

	s.Run("valid token", func() {
		s.revocations.EXPECT().IsRevoked(gomock.Any(), claims.ID).Return(false, nil)

		got, err := s.service.Authenticate(context.Background(), signed)

		s.Require().NoError(err)
		s.Equal(claims.SessionID, got.SessionID)
	})

	s.Run("revoked token", func() {
		s.revocations.EXPECT().IsRevoked(gomock.Any(), claims.ID).Return(true, nil)

		_, err := s.service.Authenticate(context.Background(), signed)

		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	s.Run("revocation backend down fails closed", func() {
		s.revocations.EXPECT().IsRevoked(gomock.Any(), claims.ID).Return(false, errors.New("connection refused"))

		_, err := s.service.Authenticate(context.Background(), signed)

		s.True(dErrors.HasCode(err, dErrors.CodeUnavailable))
	})

	s.Run("malformed token never reaches the revocation list", func() {
		_, err := s.service.Authenticate(context.Background(), "garbage")
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})
}

func (s *ServiceSuite) TestLogoutRevokesForRemainingLifetime() {
	_, claims, err := s.tokens.Issue("admin@example.com")
	s.Require().NoError(err)
	s.revocations.EXPECT().RevokeToken(gomock.Any(), claims.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, ttl time.Duration) error {
			s.Greater(ttl, 59*time.Minute)
			s.LessOrEqual(ttl, time.Hour)
			return nil
		})
	s.expectAudit(audit.EventLogout)

	s.NoError(s.service.Logout(context.Background(), claims))
}

func (s *ServiceSuite) TestLogoutFailureIsReported() {
	_, claims, err := s.tokens.Issue("admin@example.com")
	s.Require().NoError(err)
	s.revocations.EXPECT().RevokeToken(gomock.Any(), claims.ID, gomock.Any()).Return(errors.New("redis down"))

	err = s.service.Logout(context.Background(), claims)

	s.True(dErrors.HasCode(err, dErrors.CodeUnavailable))
}

func (s *ServiceSuite) withLockout() (*Service, *mocks.MockLockout) {
	l := mocks.NewMockLockout(s.ctrl)
	svc, err := New(Credentials{Email: "admin@example.com", PasswordHash: s.hash}, s.tokens, s.revocations,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithMetrics(s.metrics),
		WithAuditPublisher(s.auditor),
		WithLockout(l),
	)
	s.Require().NoError(err)
	return svc, l
}

func (s *ServiceSuite) TestLockout() {
	ctx := requestcontext.WithClientMetadata(context.Background(), "10.0.0.1", "curl/8", "curl")

	s.Run("locked pair is refused before the password is checked", func() {
		svc, l := s.withLockout()
		l.EXPECT().Check(gomock.Any(), "admin@example.com", "10.0.0.1").
			Return(&lockout.LockedError{RetryAfter: time.Minute})

		session, err := svc.Login(ctx, "admin@example.com", "correct horse")

		s.Nil(session)
		var locked *lockout.LockedError
		s.True(errors.As(err, &locked))
		s.True(dErrors.HasCode(err, dErrors.CodeRateLimited))
		s.Equal(1.0, testutil.ToFloat64(s.metrics.LoginAttempts.WithLabelValues("locked")))
	})

	s.Run("the failure that locks the pair is audited", func() {
		svc, l := s.withLockout()
		l.EXPECT().Check(gomock.Any(), "admin@example.com", "10.0.0.1").Return(nil)
		l.EXPECT().RecordFailure(gomock.Any(), "admin@example.com", "10.0.0.1").Return(true, nil)
		s.expectAudit(audit.EventLoginFailed)
		s.expectAudit(audit.EventLoginLocked)

		_, err := svc.Login(ctx, "admin@example.com", "wrong")

		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	s.Run("a lockout store failure still reports bad credentials", func() {
		svc, l := s.withLockout()
		l.EXPECT().Check(gomock.Any(), "admin@example.com", "10.0.0.1").Return(nil)
		l.EXPECT().RecordFailure(gomock.Any(), "admin@example.com", "10.0.0.1").Return(false, errors.New("redis down"))
		s.expectAudit(audit.EventLoginFailed)

		_, err := svc.Login(ctx, "admin@example.com", "wrong")

		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	s.Run("success clears failures", func() {
		svc, l := s.withLockout()
		l.EXPECT().Check(gomock.Any(), "admin@example.com", "10.0.0.1").Return(nil)
		l.EXPECT().Clear(gomock.Any(), "admin@example.com", "10.0.0.1").Return(nil)
		s.expectAudit(audit.EventLoginSucceeded)

		_, err := svc.Login(ctx, "admin@example.com", "correct horse")

		s.NoError(err)
	})
}
