package service

import "errors"

var (
	// ErrDuplicateLocalGUID is returned when the local tree already holds two
	// nodes with one GUID before a merge starts.
	ErrDuplicateLocalGUID = errors.New("duplicate guid in local bookmark tree")

	// ErrRepeatedServerID names remote updates dropped because an earlier
	// update already carries their server id.
	ErrRepeatedServerID = errors.New("server id already used by another update")

	// ErrModelInvariant wraps a failure reported by the local bookmark model
	// in the middle of a merge.
	ErrModelInvariant = errors.New("bookmark model invariant violated")

	// ErrTracker wraps a failure reported by the sync tracker.
	ErrTracker = errors.New("bookmark tracker failure")

	// ErrAlreadySynced is returned when an initial merge is requested while
	// the tracker already holds sync entities.
	ErrAlreadySynced = errors.New("bookmarks are already synced")

	// ErrNoUpdateSource is returned by SyncFromSource when no update source
	// is configured.
	ErrNoUpdateSource = errors.New("no update source configured")
)

// ErrVersionIsNotSpecified is returned by NewAppInfoService when the
// application version is empty.
var ErrVersionIsNotSpecified = errors.New("application version is not specified")
