// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PermanentFolder is the well-known tag of a root-level folder that exists
// on every device and is never matched by GUID lookup.
type PermanentFolder string

const (
	BookmarkBar     PermanentFolder = "bookmark_bar"
	OtherBookmarks  PermanentFolder = "other_bookmarks"
	MobileBookmarks PermanentFolder = "synced_bookmarks"
)

// RootGUID is the GUID of the invisible root that holds the permanent folders.
const RootGUID = "00000000-0000-4000-a000-000000000001"

var permanentFolderGUIDs = map[PermanentFolder]string{
	BookmarkBar:     "00000000-0000-4000-a000-000000000002",
	OtherBookmarks:  "00000000-0000-4000-a000-000000000003",
	MobileBookmarks: "00000000-0000-4000-a000-000000000004",
}

var permanentFolderTitles = map[PermanentFolder]string{
	BookmarkBar:     "Bookmarks bar",
	OtherBookmarks:  "Other bookmarks",
	MobileBookmarks: "Mobile bookmarks",
}

// PermanentFolders lists the supported permanent folders in merge order.
func PermanentFolders() []PermanentFolder {
	return []PermanentFolder{BookmarkBar, OtherBookmarks, MobileBookmarks}
}

// IsKnown reports whether the tag names a supported permanent folder.
func (p PermanentFolder) IsKnown() bool {
	_, ok := permanentFolderGUIDs[p]
	return ok
}

// GUID returns the well-known GUID of the folder, or "" for unknown tags.
func (p PermanentFolder) GUID() string {
	return permanentFolderGUIDs[p]
}

// Title returns the default display title of the folder.
func (p PermanentFolder) Title() string {
	return permanentFolderTitles[p]
}

// IsPermanentGUID reports whether guid belongs to the root or to one of the
// permanent folders. Regular entities must never carry such a GUID.
func IsPermanentGUID(guid string) bool {
	if guid == RootGUID {
		return true
	}
	for _, g := range permanentFolderGUIDs {
		if g == guid {
			return true
		}
	}
	return false
}
