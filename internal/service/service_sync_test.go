// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-bookmark-merger/internal/logger"
	"github.com/MKhiriev/go-bookmark-merger/internal/mock"
	"github.com/MKhiriev/go-bookmark-merger/internal/store"
	"github.com/MKhiriev/go-bookmark-merger/internal/tracker"
	"github.com/MKhiriev/go-bookmark-merger/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helper
// ─────────────────────────────────────────────────────────────────────────────

func sampleUpdates() []models.RemoteUpdate {
	bar := models.BookmarkBar.GUID()
	return []models.RemoteUpdate{
		permanentUpdate(models.BookmarkBar),
		remoteFolder(testGUID(1), bar, "Work", pos[0]),
		remoteBookmark(testGUID(2), testGUID(1), "Go", "https://go.dev/", pos[0]),
	}
}

type syncFixture struct {
	tree    *store.BookmarkTree
	tracker *tracker.SyncedBookmarkTracker
	repo    *mock.MockBookmarkRepository
	source  *mock.MockUpdateSource
	svc     InitialSyncService
}

func newSyncFixture(t *testing.T) syncFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := syncFixture{
		tree:    store.NewBookmarkTree(),
		tracker: tracker.New(),
		repo:    mock.NewMockBookmarkRepository(ctrl),
		source:  mock.NewMockUpdateSource(ctrl),
	}
	f.svc = NewInitialSyncService(f.tree, f.tracker, f.repo, f.source, nil, testMergerConfig(), logger.Nop())
	return f
}

// ─────────────────────────────────────────────────────────────────────────────
// MergeUpdates
// ─────────────────────────────────────────────────────────────────────────────

func TestInitialSyncService_MergeUpdates_PersistsSnapshot(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().
		SaveSnapshot(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, nodes []models.BookmarkNode, entities []models.SyncEntity) error {
			// root, three permanent folders and two merged nodes
			assert.Len(t, nodes, 6)
			// the two merged nodes and bookmark_bar
			assert.Len(t, entities, 3)
			return nil
		})

	report, err := f.svc.MergeUpdates(ctx, sampleUpdates())
	require.NoError(t, err)
	assert.Equal(t, 2, report.RemoteCreations)

	root := f.svc.Bookmarks(ctx)
	require.Len(t, root.Children, 3)
	bar := root.Children[0]
	require.Len(t, bar.Children, 1)
	assert.Equal(t, "Work", bar.Children[0].Title)
	assert.Equal(t, "Go", bar.Children[0].Children[0].Title)

	assert.Len(t, f.svc.Entities(ctx), 3)
}

func TestInitialSyncService_MergeUpdates_AlreadySynced(t *testing.T) {
	f := newSyncFixture(t)
	require.NoError(t, f.tracker.Load([]models.SyncEntity{{NodeID: 2, ServerID: "server-bar"}}))

	_, err := f.svc.MergeUpdates(context.Background(), sampleUpdates())
	assert.ErrorIs(t, err, ErrAlreadySynced)
	assert.Empty(t, f.tree.Children(permanentID(t, f.tree, models.BookmarkBar)))
}

func TestInitialSyncService_MergeUpdates_SecondCallRefused(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()
	f.repo.EXPECT().SaveSnapshot(ctx, gomock.Any(), gomock.Any()).Return(nil).Times(1)

	_, err := f.svc.MergeUpdates(ctx, sampleUpdates())
	require.NoError(t, err)

	_, err = f.svc.MergeUpdates(ctx, sampleUpdates())
	assert.ErrorIs(t, err, ErrAlreadySynced)
}

func TestInitialSyncService_MergeUpdates_SaveError(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()
	f.repo.EXPECT().SaveSnapshot(ctx, gomock.Any(), gomock.Any()).Return(store.ErrDuplicateGUID)

	_, err := f.svc.MergeUpdates(ctx, sampleUpdates())
	assert.ErrorIs(t, err, store.ErrDuplicateGUID)
}

func TestInitialSyncService_MergeUpdates_RetryAfterSaveError(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()
	before := f.tree.Nodes()

	gomock.InOrder(
		f.repo.EXPECT().SaveSnapshot(ctx, gomock.Any(), gomock.Any()).Return(store.ErrExecutingQuery),
		f.repo.EXPECT().
			SaveSnapshot(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, nodes []models.BookmarkNode, entities []models.SyncEntity) error {
				assert.Len(t, nodes, 6)
				assert.Len(t, entities, 3)
				return nil
			}),
	)

	_, err := f.svc.MergeUpdates(ctx, sampleUpdates())
	require.ErrorIs(t, err, store.ErrExecutingQuery)
	assert.Equal(t, before, f.tree.Nodes())
	assert.Zero(t, f.tracker.Len())

	report, err := f.svc.MergeUpdates(ctx, sampleUpdates())
	require.NoError(t, err)
	assert.Equal(t, 2, report.RemoteCreations)
	assert.Equal(t, 3, f.tracker.Len())
}

func TestInitialSyncService_MergeUpdates_WithoutRepository(t *testing.T) {
	tree := store.NewBookmarkTree()
	svc := NewInitialSyncService(tree, tracker.New(), nil, nil, nil, testMergerConfig(), logger.Nop())

	report, err := svc.MergeUpdates(context.Background(), sampleUpdates())
	require.NoError(t, err)
	assert.Equal(t, 2, report.RemoteCreations)
}

func TestInitialSyncService_MergeUpdates_MergeError(t *testing.T) {
	tree := store.NewBookmarkTree()
	addLocal(t, tree, permanentID(t, tree, models.BookmarkBar), localBookmark(testGUID(9), "A", "https://a.example/"))
	ctrl := gomock.NewController(t)
	repo := mock.NewMockBookmarkRepository(ctrl)

	before := tree.Nodes()
	tr := tracker.New()
	svc := NewInitialSyncService(duplicatingModel{tree}, tr, repo, nil, nil, testMergerConfig(), logger.Nop())

	_, err := svc.MergeUpdates(context.Background(), sampleUpdates())
	assert.ErrorIs(t, err, ErrDuplicateLocalGUID)
	assert.Equal(t, before, tree.Nodes())
	assert.Zero(t, tr.Len())
}

// ─────────────────────────────────────────────────────────────────────────────
// SyncFromSource
// ─────────────────────────────────────────────────────────────────────────────

func TestInitialSyncService_SyncFromSource(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()

	f.source.EXPECT().FetchUpdates(ctx).Return(sampleUpdates(), nil)
	f.repo.EXPECT().SaveSnapshot(ctx, gomock.Any(), gomock.Any()).Return(nil)

	report, err := f.svc.SyncFromSource(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Updates)
}

func TestInitialSyncService_SyncFromSource_FetchError(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()
	fetchErr := errors.New("connection refused")

	f.source.EXPECT().FetchUpdates(ctx).Return(nil, fetchErr)

	_, err := f.svc.SyncFromSource(ctx)
	assert.ErrorIs(t, err, fetchErr)
	assert.Zero(t, f.tracker.Len())
}

func TestInitialSyncService_SyncFromSource_NoSource(t *testing.T) {
	svc := NewInitialSyncService(store.NewBookmarkTree(), tracker.New(), nil, nil, nil, testMergerConfig(), logger.Nop())

	_, err := svc.SyncFromSource(context.Background())
	assert.ErrorIs(t, err, ErrNoUpdateSource)
}

// ─────────────────────────────────────────────────────────────────────────────
// Restore
// ─────────────────────────────────────────────────────────────────────────────

func TestInitialSyncService_Restore(t *testing.T) {
	// a previous run produced this tree and these entities
	previous := store.NewBookmarkTree()
	previousTracker := tracker.New()
	_, err := NewBookmarkModelMerger(sampleUpdates(), previous, previousTracker, nil, testMergerConfig(), logger.Nop()).
		Merge(context.Background())
	require.NoError(t, err)

	f := newSyncFixture(t)
	ctx := context.Background()
	f.repo.EXPECT().LoadNodes(ctx).Return(previous.Nodes(), nil)
	f.repo.EXPECT().LoadEntities(ctx).Return(previousTracker.Entities(), nil)

	require.NoError(t, f.svc.Restore(ctx))

	assert.Equal(t, previous.Nodes(), f.tree.Nodes())
	assert.Equal(t, previousTracker.Entities(), f.svc.Entities(ctx))

	_, err = f.svc.MergeUpdates(ctx, sampleUpdates())
	assert.ErrorIs(t, err, ErrAlreadySynced)
}

func TestInitialSyncService_Restore_LoadError(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()
	f.repo.EXPECT().LoadNodes(ctx).Return(nil, store.ErrExecutingQuery)

	err := f.svc.Restore(ctx)
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestInitialSyncService_Restore_WithoutRepository(t *testing.T) {
	svc := NewInitialSyncService(store.NewBookmarkTree(), tracker.New(), nil, nil, nil, testMergerConfig(), logger.Nop())
	assert.NoError(t, svc.Restore(context.Background()))
}
