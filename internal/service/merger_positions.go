package service

import (
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-bookmark-merger/internal/position"
	"github.com/MKhiriev/go-bookmark-merger/models"
)

// maxLegacyTitleBytes is the byte length limit of legacy canonicalized titles.
const maxLegacyTitleBytes = 255

// positionForLocalCreation returns the position of the local-only child at
// index under parentID: right after the closest preceding sibling that is
// already tracked, or the initial position when there is none.
func (m *BookmarkModelMerger) positionForLocalCreation(parentID int64, index int, suffix string) (position.Position, error) {
	siblings := m.model.Children(parentID)
	for i := min(index, len(siblings)) - 1; i >= 0; i-- {
		entity, ok := m.tracker.EntityForNode(siblings[i].ID)
		if !ok {
			continue
		}
		return position.After(entity.Specifics.Position, suffix)
	}
	return position.Initial(suffix), nil
}

// legacyCanonicalizedTitle is the title older clients commit: titles that
// are empty or look like path components get a trailing space, and the
// result is cut to a byte limit on a rune boundary.
func legacyCanonicalizedTitle(title string) string {
	switch strings.TrimRight(title, " ") {
	case "", ".", "..":
		title += " "
	}
	if len(title) <= maxLegacyTitleBytes {
		return title
	}

	cut := maxLegacyTitleBytes
	for cut > 0 && !utf8.RuneStart(title[cut]) {
		cut--
	}
	return title[:cut]
}

// titleFromSpecifics is the local title of a remote entity.
func titleFromSpecifics(specifics models.BookmarkSpecifics) string {
	if specifics.FullTitle != "" {
		return specifics.FullTitle
	}

	title := specifics.LegacyCanonicalizedTitle
	if trimmed, ok := strings.CutSuffix(title, " "); ok {
		switch strings.TrimRight(trimmed, " ") {
		case "", ".", "..":
			return trimmed
		}
	}
	return title
}

// nodeSemanticsMatch reports whether a local node is the same bookmark as a
// remote one judged by content: same kind, equal titles after legacy
// canonicalization and, for bookmarks, the same URL.
func nodeSemanticsMatch(local models.BookmarkNode, remote models.BookmarkSpecifics) bool {
	if local.Kind != remote.Kind {
		return false
	}
	if !local.IsFolder() && local.URL != remote.URL {
		return false
	}

	remoteTitle := remote.LegacyCanonicalizedTitle
	if remoteTitle == "" {
		remoteTitle = legacyCanonicalizedTitle(remote.FullTitle)
	}
	return local.Title == remoteTitle || legacyCanonicalizedTitle(local.Title) == remoteTitle
}
