package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-bookmark-merger/internal/adapter"
	"github.com/MKhiriev/go-bookmark-merger/internal/config"
	"github.com/MKhiriev/go-bookmark-merger/internal/logger"
	"github.com/MKhiriev/go-bookmark-merger/internal/mock"
	"github.com/MKhiriev/go-bookmark-merger/internal/store"
	"github.com/MKhiriev/go-bookmark-merger/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTreeWithBookmark(t *testing.T, url string) (*store.BookmarkTree, int64) {
	t.Helper()

	tree := store.NewBookmarkTree()
	bar, ok := tree.PermanentNode(models.BookmarkBar)
	require.True(t, ok)

	node, err := tree.Create(bar.ID, 0, models.BookmarkNode{
		GUID:  "10000000-0000-4000-8000-000000000001",
		Kind:  models.KindBookmark,
		Title: "Example",
		URL:   url,
	})
	require.NoError(t, err)
	return tree, node.ID
}

func TestFaviconWorker_StoresAndAppliesIcon(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mock.NewMockFaviconFetcher(ctrl)
	repo := mock.NewMockFaviconRepository(ctrl)

	const pageURL = "https://example.com/page"
	tree, id := newTreeWithBookmark(t, pageURL)

	favicon := models.Favicon{PageURL: pageURL, IconURL: "https://example.com/favicon.ico", Data: []byte{1, 2, 3}}
	fetcher.EXPECT().FetchFavicon(gomock.Any(), pageURL).Return(favicon, nil)
	repo.EXPECT().SaveFavicon(gomock.Any(), favicon).Return(nil)

	requests := make(chan string, 1)
	requests <- pageURL
	close(requests)

	NewFaviconWorker(requests, fetcher, repo, tree, logger.Nop()).Run(context.Background())

	node, ok := tree.Node(id)
	require.True(t, ok)
	assert.Equal(t, []byte{1, 2, 3}, node.Favicon)
}

func TestFaviconWorker_FetchFailureIsSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mock.NewMockFaviconFetcher(ctrl)
	repo := mock.NewMockFaviconRepository(ctrl)

	tree, id := newTreeWithBookmark(t, "https://a.example/")

	fetcher.EXPECT().FetchFavicon(gomock.Any(), "https://a.example/").Return(models.Favicon{}, adapter.ErrNotFound)
	fetcher.EXPECT().FetchFavicon(gomock.Any(), "https://b.example/").Return(models.Favicon{}, adapter.ErrEmptyFavicon)

	requests := make(chan string, 2)
	requests <- "https://a.example/"
	requests <- "https://b.example/"
	close(requests)

	NewFaviconWorker(requests, fetcher, repo, tree, logger.Nop()).Run(context.Background())

	node, _ := tree.Node(id)
	assert.Empty(t, node.Favicon)
}

func TestFaviconWorker_SaveFailureStillAppliesIcon(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mock.NewMockFaviconFetcher(ctrl)
	repo := mock.NewMockFaviconRepository(ctrl)

	const pageURL = "https://example.com/"
	tree, id := newTreeWithBookmark(t, pageURL)

	fetcher.EXPECT().FetchFavicon(gomock.Any(), pageURL).Return(models.Favicon{PageURL: pageURL, Data: []byte{9}}, nil)
	repo.EXPECT().SaveFavicon(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	requests := make(chan string, 1)
	requests <- pageURL
	close(requests)

	NewFaviconWorker(requests, fetcher, repo, tree, logger.Nop()).Run(context.Background())

	node, _ := tree.Node(id)
	assert.Equal(t, []byte{9}, node.Favicon)
}

func TestFaviconWorker_NilRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mock.NewMockFaviconFetcher(ctrl)

	const pageURL = "https://example.com/"
	tree, id := newTreeWithBookmark(t, pageURL)

	fetcher.EXPECT().FetchFavicon(gomock.Any(), pageURL).Return(models.Favicon{PageURL: pageURL, Data: []byte{7}}, nil)

	requests := make(chan string, 1)
	requests <- pageURL
	close(requests)

	NewFaviconWorker(requests, fetcher, nil, tree, logger.Nop()).Run(context.Background())

	node, _ := tree.Node(id)
	assert.Equal(t, []byte{7}, node.Favicon)
}

func TestFaviconWorker_StopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mock.NewMockFaviconFetcher(ctrl)

	requests := make(chan string)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		NewFaviconWorker(requests, fetcher, nil, store.NewBookmarkTree(), logger.Nop()).Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestNewFaviconWorkers_PoolDrainsQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mock.NewMockFaviconFetcher(ctrl)

	urls := []string{"https://a.example/", "https://b.example/", "https://c.example/"}
	for _, u := range urls {
		fetcher.EXPECT().FetchFavicon(gomock.Any(), u).Return(models.Favicon{PageURL: u, Data: []byte{1}}, nil)
	}

	requests := make(chan string, len(urls))
	for _, u := range urls {
		requests <- u
	}
	close(requests)

	pool := NewFaviconWorkers(config.Workers{FaviconWorkers: 3}, requests, fetcher, nil, store.NewBookmarkTree(), logger.Nop())
	assert.Len(t, pool.workers, 3)
	pool.Run(context.Background())
}
