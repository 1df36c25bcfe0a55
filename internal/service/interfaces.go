package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-bookmark-merger/internal/store"
	"github.com/MKhiriev/go-bookmark-merger/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// BookmarkTracker is the synchronization bookkeeping the merger writes to.
type BookmarkTracker interface {
	// Add registers or refreshes the sync entity of a node. Registering an
	// entity identical to the tracked one changes nothing.
	Add(nodeID int64, serverID string, version int64, creationTime time.Time, specifics models.BookmarkSpecifics) (models.SyncEntity, error)

	// IncrementSequenceNumber marks the entity of a node as pending commit.
	IncrementSequenceNumber(nodeID int64) error

	EntityForNode(nodeID int64) (models.SyncEntity, bool)
}

// SyncTracker is the tracker as seen by the initial sync service.
type SyncTracker interface {
	BookmarkTracker

	Len() int
	Entities() []models.SyncEntity
	Load(entities []models.SyncEntity) error
}

// BookmarkStore is the local bookmark model together with its snapshot and
// restore operations.
type BookmarkStore interface {
	store.BookmarkModel

	Nodes() []models.BookmarkNode
	Tree() *models.BookmarkTreeNode
	Restore(nodes []models.BookmarkNode) error
}

// FaviconService materializes favicons for bookmarks created locally.
type FaviconService interface {
	// LoadFavicon requests the icon of pageURL. It never blocks and never
	// reports failures.
	LoadFavicon(pageURL string)
}

// UpdateSource delivers the complete list of remote updates of an initial
// sync.
type UpdateSource interface {
	FetchUpdates(ctx context.Context) ([]models.RemoteUpdate, error)
}

// IDGenerator hands out placeholder server ids and fresh GUIDs.
type IDGenerator interface {
	Generate() string
	NewGUID() string
}

// InitialSyncService runs the initial merge of remote bookmarks into the
// local tree and exposes the result.
type InitialSyncService interface {
	// Restore loads the persisted tree and tracker state.
	Restore(ctx context.Context) error

	MergeUpdates(ctx context.Context, updates []models.RemoteUpdate) (models.MergeReport, error)
	SyncFromSource(ctx context.Context) (models.MergeReport, error)

	Bookmarks(ctx context.Context) *models.BookmarkTreeNode
	Entities(ctx context.Context) []models.SyncEntity
}

// AppInfoService reports version information of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
