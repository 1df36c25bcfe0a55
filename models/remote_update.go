package models

// RemoteUpdate is one already-decoded entity delivered by the sync server
// during initial sync.
type RemoteUpdate struct {
	// ServerID is the server-assigned id of the entity.
	ServerID string `json:"id_string"`

	// ServerDefinedUniqueTag is non-empty only for permanent folders and
	// holds their well-known tag (e.g. "bookmark_bar").
	ServerDefinedUniqueTag string `json:"server_defined_unique_tag,omitempty"`

	// OriginatorCacheGUID and OriginatorClientItemID identify the client
	// that first committed the entity. They authenticate Specifics.GUID.
	OriginatorCacheGUID    string `json:"originator_cache_guid,omitempty"`
	OriginatorClientItemID string `json:"originator_client_item_id,omitempty"`

	Specifics BookmarkSpecifics `json:"specifics"`

	ResponseVersion int64 `json:"response_version"`
	IsDeleted       bool  `json:"deleted,omitempty"`
}

// IsPermanent reports whether the update describes a permanent folder.
func (u RemoteUpdate) IsPermanent() bool {
	return u.ServerDefinedUniqueTag != ""
}

// UpdatesEnvelope is the JSON document shape shared by the file and HTTP
// update sources and by the merge endpoint.
type UpdatesEnvelope struct {
	Updates []RemoteUpdate `json:"updates"`
}
