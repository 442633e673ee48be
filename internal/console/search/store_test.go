package search

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"backoffice/internal/console/search/mocks"
	"backoffice/internal/models"
	"backoffice/pkg/platform/sentinel"
)

func newStore(t *testing.T) (*Store, *mocks.MockClientDirectory) {
	t.Helper()
	dir := mocks.NewMockClientDirectory(gomock.NewController(t))
	store, err := New(dir, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))), WithPageSize(2))
	require.NoError(t, err)
	return store, dir
}

func resultsPage(page, totalPages int, ids ...string) *models.Page[models.Client] {
	p := &models.Page[models.Client]{Pagination: models.Pagination{Page: page, Limit: 2, TotalPages: totalPages, Total: totalPages * 2}}
	for _, id := range ids {
		p.Data = append(p.Data, models.Client{ID: id})
	}
	return p
}

func TestExecuteSearch(t *testing.T) {
	t.Run("blank term lists every client without pagination", func(t *testing.T) {
		store, dir := newStore(t)
		dir.EXPECT().AllClients(gomock.Any()).Return([]models.Client{{ID: "C1"}, {ID: "C2"}, {ID: "C3"}}, nil)

		store.ExecuteSearch(context.Background(), "   ")

		snap := store.Snapshot()
		assert.Len(t, snap.DisplayList, 3)
		assert.Nil(t, snap.Pagination)
		assert.Equal(t, ModeIdle, snap.Mode)
	})

	t.Run("term searches from page one", func(t *testing.T) {
		store, dir := newStore(t)
		dir.EXPECT().Search(gomock.Any(), "ana", 1, 2).Return(resultsPage(1, 3, "C1", "C2"), nil)

		store.ExecuteSearch(context.Background(), " ana ")

		snap := store.Snapshot()
		assert.Equal(t, ModeSearching, snap.Mode)
		assert.Equal(t, " ana ", snap.Term)
		assert.Equal(t, 3, snap.Pagination.TotalPages)
	})

	t.Run("clearing the term after a search restores the full list", func(t *testing.T) {
		store, dir := newStore(t)
		all := []models.Client{{ID: "C1"}, {ID: "C2"}, {ID: "C3"}}
		dir.EXPECT().AllClients(gomock.Any()).Return(all, nil).Times(2)
		dir.EXPECT().Search(gomock.Any(), "acme", 1, 2).Return(resultsPage(1, 1, "C2"), nil)

		store.ExecuteSearch(context.Background(), "")
		store.ExecuteSearch(context.Background(), "acme")
		require.Equal(t, ModeSearching, store.Snapshot().Mode)
		require.NotNil(t, store.Snapshot().Pagination)

		store.ExecuteSearch(context.Background(), "")

		snap := store.Snapshot()
		assert.Equal(t, all, snap.DisplayList)
		assert.Nil(t, snap.Pagination)
		assert.Equal(t, ModeIdle, snap.Mode)
		assert.NoError(t, snap.Err)
	})

	t.Run("failure empties the list and records the fault", func(t *testing.T) {
		store, dir := newStore(t)
		dir.EXPECT().AllClients(gomock.Any()).Return([]models.Client{{ID: "C1"}}, nil)
		dir.EXPECT().Search(gomock.Any(), "ana", 1, 2).Return(nil, sentinel.ErrUnavailable)

		store.ExecuteSearch(context.Background(), "")
		store.ExecuteSearch(context.Background(), "ana")

		snap := store.Snapshot()
		assert.Empty(t, snap.DisplayList)
		assert.ErrorIs(t, snap.Err, sentinel.ErrUnavailable)
		assert.False(t, snap.IsLoading)
	})
}

func TestGoToPage(t *testing.T) {
	t.Run("ignored outside a search", func(t *testing.T) {
		store, _ := newStore(t)
		store.GoToPage(context.Background(), 1)
		assert.Equal(t, ModeIdle, store.Snapshot().Mode)
	})

	t.Run("moves within bounds only", func(t *testing.T) {
		store, dir := newStore(t)
		dir.EXPECT().Search(gomock.Any(), "ana", 1, 2).Return(resultsPage(1, 2, "C1", "C2"), nil)
		dir.EXPECT().Search(gomock.Any(), "ana", 2, 2).Return(resultsPage(2, 2, "C3"), nil)

		store.ExecuteSearch(context.Background(), "ana")
		store.GoToPage(context.Background(), 0)
		store.GoToPage(context.Background(), 3)
		store.GoToPage(context.Background(), 2)

		snap := store.Snapshot()
		assert.Equal(t, 2, snap.Pagination.Page)
		assert.Equal(t, []models.Client{{ID: "C3"}}, snap.DisplayList)
	})
}

func TestStaleSearchIsDropped(t *testing.T) {
	store, dir := newStore(t)
	entered := make(chan struct{})
	release := make(chan struct{})
	dir.EXPECT().Search(gomock.Any(), "an", 1, 2).DoAndReturn(
		func(context.Context, string, int, int) (*models.Page[models.Client], error) {
			close(entered)
			<-release
			return resultsPage(1, 5, "C1", "C2"), nil
		})
	dir.EXPECT().Search(gomock.Any(), "ana", 1, 2).Return(resultsPage(1, 1, "C1"), nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		store.ExecuteSearch(context.Background(), "an")
	}()
	<-entered
	store.ExecuteSearch(context.Background(), "ana")
	close(release)
	<-done

	snap := store.Snapshot()
	assert.Len(t, snap.DisplayList, 1)
	assert.Equal(t, 1, snap.Pagination.TotalPages)
}

func TestReset(t *testing.T) {
	store, dir := newStore(t)
	dir.EXPECT().Search(gomock.Any(), "ana", 1, 2).Return(resultsPage(1, 1, "C1"), nil)
	store.ExecuteSearch(context.Background(), "ana")

	store.Reset()

	snap := store.Snapshot()
	assert.Equal(t, ModeIdle, snap.Mode)
	assert.Empty(t, snap.DisplayList)
	assert.Empty(t, snap.Term)
}
