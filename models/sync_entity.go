package models

import "time"

// UncommittedVersion is the server version of an entity that has never been
// committed to the server.
const UncommittedVersion int64 = -1

// SyncEntity is the per-node synchronization record kept by the tracker.
type SyncEntity struct {
	NodeID       int64     `json:"node_id"`
	ServerID     string    `json:"server_id"`
	Version      int64     `json:"version"`
	CreationTime time.Time `json:"creation_time"`

	Specifics     BookmarkSpecifics `json:"specifics"`
	SpecificsHash string            `json:"specifics_hash"`

	// SequenceNumber is bumped for every local change that must be
	// committed. The entity is pending commit while it is ahead of
	// AckedSequenceNumber.
	SequenceNumber      int64 `json:"sequence_number"`
	AckedSequenceNumber int64 `json:"acked_sequence_number"`
}

// IsUnsynced reports whether the entity has local changes not yet committed.
func (e *SyncEntity) IsUnsynced() bool {
	return e.SequenceNumber > e.AckedSequenceNumber
}

// EntitiesResponse is returned by GET /api/sync/entities.
type EntitiesResponse struct {
	Entities []SyncEntity `json:"entities"`
	Length   int          `json:"length"`
}
