package store

import (
	"context"

	"github.com/MKhiriev/go-bookmark-merger/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// BookmarkModel is the local bookmark tree as seen by the merger. Every
// method addresses nodes by their integer handle.
type BookmarkModel interface {
	Root() models.BookmarkNode
	PermanentNode(tag models.PermanentFolder) (models.BookmarkNode, bool)
	Node(id int64) (models.BookmarkNode, bool)
	NodeByGUID(guid string) (models.BookmarkNode, bool)
	Children(id int64) []models.BookmarkNode
	Descendants(id int64) []models.BookmarkNode

	Create(parentID int64, index int, node models.BookmarkNode) (models.BookmarkNode, error)
	Move(id, newParentID int64, index int) error
	Update(id int64, title, url string) error
	UpdateGUID(id int64, guid string) error
	UpdateFavicon(id int64, data []byte) error
}

// BookmarkRepository persists the local tree and the tracker state.
type BookmarkRepository interface {
	LoadNodes(ctx context.Context) ([]models.BookmarkNode, error)
	LoadEntities(ctx context.Context) ([]models.SyncEntity, error)

	// SaveSnapshot replaces every stored node and sync entity in a single
	// transaction.
	SaveSnapshot(ctx context.Context, nodes []models.BookmarkNode, entities []models.SyncEntity) error
}

// FaviconRepository persists downloaded icons keyed by page URL.
type FaviconRepository interface {
	SaveFavicon(ctx context.Context, favicon models.Favicon) error
	GetFavicon(ctx context.Context, pageURL string) (models.Favicon, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
