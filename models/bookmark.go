package models

import (
	"time"

	"github.com/MKhiriev/go-bookmark-merger/internal/position"
)

// BookmarkKind distinguishes folders from URL bookmarks.
// It is a closed set: every value other than KindFolder and KindBookmark
// is rejected by validation before any merge logic looks at it.
type BookmarkKind string

const (
	KindFolder   BookmarkKind = "folder"
	KindBookmark BookmarkKind = "bookmark"
)

// IsValid reports whether k is one of the two known kinds.
func (k BookmarkKind) IsValid() bool {
	return k == KindFolder || k == KindBookmark
}

// BookmarkSpecifics is the synced content of a single bookmark entity.
type BookmarkSpecifics struct {
	// GUID is the cross-device identity of the bookmark.
	GUID string `json:"guid"`

	// Kind tells whether the entity is a folder or a URL bookmark.
	Kind BookmarkKind `json:"kind"`

	// FullTitle is the untruncated title as entered by the user.
	FullTitle string `json:"full_title,omitempty"`

	// LegacyCanonicalizedTitle is the title in the form older clients
	// commit: forbidden titles get a trailing space and the value is
	// truncated to 255 bytes.
	LegacyCanonicalizedTitle string `json:"legacy_canonicalized_title,omitempty"`

	// URL is set for bookmarks and empty for folders.
	URL string `json:"url,omitempty"`

	// ParentGUID is the GUID of the containing folder.
	ParentGUID string `json:"parent_guid,omitempty"`

	// Position orders the entity among its siblings.
	Position position.Position `json:"unique_position"`

	CreationTime time.Time `json:"creation_time"`

	IconURL string `json:"icon_url,omitempty"`
	Favicon []byte `json:"favicon,omitempty"`
}

// IsFolder reports whether the specifics describe a folder.
func (s BookmarkSpecifics) IsFolder() bool {
	return s.Kind == KindFolder
}

// BookmarkNode is a snapshot of one node of the local bookmark tree.
// ID is the handle the tree store hands out; it never changes across
// moves, updates and GUID reassignments.
type BookmarkNode struct {
	ID       int64 `json:"id"`
	ParentID int64 `json:"parent_id"`
	Index    int   `json:"index"`

	GUID  string       `json:"guid"`
	Kind  BookmarkKind `json:"kind"`
	Title string       `json:"title"`
	URL   string       `json:"url,omitempty"`

	// PermanentTag is set only for permanent folders.
	PermanentTag PermanentFolder `json:"permanent_tag,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	Favicon   []byte    `json:"favicon,omitempty"`
}

// IsFolder reports whether the node is a folder.
func (n BookmarkNode) IsFolder() bool {
	return n.Kind == KindFolder
}

// IsPermanent reports whether the node is a permanent folder.
func (n BookmarkNode) IsPermanent() bool {
	return n.PermanentTag != ""
}

// BookmarkTreeNode is a nested, JSON-friendly view of a bookmark subtree.
type BookmarkTreeNode struct {
	BookmarkNode
	Children []*BookmarkTreeNode `json:"children,omitempty"`
}
