package mvp

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"backoffice/internal/console/mvp/mocks"
	"backoffice/internal/models"
	dErrors "backoffice/pkg/domain-errors"
	audit "backoffice/pkg/platform/audit"
	"backoffice/pkg/platform/sentinel"
)

func newStore(t *testing.T) (*Store, *mocks.MockAccountAPI, *mocks.MockAuditPublisher) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAccountAPI(ctrl)
	auditor := mocks.NewMockAuditPublisher(ctrl)
	store, err := New(api,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithAuditPublisher(auditor),
	)
	require.NoError(t, err)
	return store, api, auditor
}

func validRequest() models.CreateMvpAccountRequest {
	return models.CreateMvpAccountRequest{
		Email:     "ana@example.com",
		Password:  "s3cretos!",
		FirstName: "Ana",
		LastName:  "Pérez",
	}
}

func TestFetchForClient(t *testing.T) {
	t.Run("replaces the account list", func(t *testing.T) {
		store, api, _ := newStore(t)
		api.EXPECT().AccountsForClient(gomock.Any(), "C1").Return([]models.MvpAccount{{ID: "A1", Client: "C1"}}, nil)

		require.NoError(t, store.FetchForClient(context.Background(), "C1"))

		assert.Len(t, store.Snapshot().Accounts, 1)
	})

	t.Run("failure is recorded and returned", func(t *testing.T) {
		store, api, _ := newStore(t)
		api.EXPECT().AccountsForClient(gomock.Any(), "C1").Return(nil, sentinel.ErrUnavailable)

		err := store.FetchForClient(context.Background(), "C1")

		assert.ErrorIs(t, err, sentinel.ErrUnavailable)
		snap := store.Snapshot()
		assert.ErrorIs(t, snap.Err, sentinel.ErrUnavailable)
		assert.NotNil(t, snap.Accounts)
		assert.False(t, snap.IsLoading)
	})
}

func TestCreate(t *testing.T) {
	t.Run("short password is rejected before any call", func(t *testing.T) {
		store, _, _ := newStore(t)
		req := validRequest()
		req.Password = "corta"

		_, err := store.Create(context.Background(), "C1", req)

		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
		assert.Error(t, store.Snapshot().Err)
	})

	t.Run("missing email is rejected", func(t *testing.T) {
		store, _, _ := newStore(t)
		req := validRequest()
		req.Email = " "

		_, err := store.Create(context.Background(), "C1", req)

		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("success re-reads the client's accounts", func(t *testing.T) {
		store, api, auditor := newStore(t)
		want := validRequest()
		want.ClientID = "C1"
		api.EXPECT().CreateAccount(gomock.Any(), "C1", want).
			Return(&models.CreateMvpAccountResponse{Account: models.MvpAccount{ID: "A2", Client: "C1"}}, nil)
		auditor.EXPECT().Emit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e audit.Event) error {
			assert.Equal(t, string(audit.EventMvpAccountCreated), e.Action)
			assert.Equal(t, "C1", e.Subject)
			return nil
		})
		api.EXPECT().AccountsForClient(gomock.Any(), "C1").
			Return([]models.MvpAccount{{ID: "A1"}, {ID: "A2"}}, nil)

		account, err := store.Create(context.Background(), "C1", validRequest())

		require.NoError(t, err)
		assert.Equal(t, "A2", account.ID)
		assert.Len(t, store.Snapshot().Accounts, 2)
	})

	t.Run("backend rejection leaves the list alone", func(t *testing.T) {
		store, api, _ := newStore(t)
		api.EXPECT().CreateAccount(gomock.Any(), "C1", gomock.Any()).Return(nil, sentinel.ErrConflict)

		_, err := store.Create(context.Background(), "C1", validRequest())

		assert.ErrorIs(t, err, sentinel.ErrConflict)
		assert.Empty(t, store.Snapshot().Accounts)
	})
}

func TestChangePassword(t *testing.T) {
	store, api, auditor := newStore(t)

	err := store.ChangePassword(context.Background(), "C1", "1234")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))

	api.EXPECT().ChangePassword(gomock.Any(), "C1", "nuevaClave1").Return(nil)
	auditor.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, store.ChangePassword(context.Background(), "C1", "nuevaClave1"))
	assert.NoError(t, store.Snapshot().Err)
}

func TestDeleteClearsEveryAccount(t *testing.T) {
	store, api, auditor := newStore(t)
	api.EXPECT().AccountsForClient(gomock.Any(), "C1").Return([]models.MvpAccount{{ID: "A1"}, {ID: "A2"}}, nil)
	require.NoError(t, store.FetchForClient(context.Background(), "C1"))

	api.EXPECT().DeleteAccount(gomock.Any(), "C1").Return(nil)
	auditor.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, store.Delete(context.Background(), "C1"))
	assert.Empty(t, store.Snapshot().Accounts)
}

func TestInitialize(t *testing.T) {
	store, api, _ := newStore(t)
	api.EXPECT().AccountsForClient(gomock.Any(), "C1").Return(nil, sentinel.ErrUnavailable)
	_ = store.FetchForClient(context.Background(), "C1")

	store.Initialize()

	snap := store.Snapshot()
	assert.NoError(t, snap.Err)
	assert.Empty(t, snap.Accounts)
}
