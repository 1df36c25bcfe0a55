package service

import (
	"fmt"

	"github.com/MKhiriev/go-bookmark-merger/models"
)

// guidMatch pairs a local node with the remote node carrying its GUID.
type guidMatch struct {
	localID   int64
	remoteIdx int
}

// findGUIDMatches walks the local tree below the permanent folders and
// pairs every local node with the remote node of the same GUID. A local
// node whose GUID collides with an incompatible remote node gets a fresh
// GUID and stays unmatched.
func (m *BookmarkModelMerger) findGUIDMatches(forest *remoteForest, report *models.MergeReport) (map[string]guidMatch, error) {
	remoteByGUID := make(map[string]int, len(forest.nodes))
	for i := range forest.nodes {
		n := forest.node(i)
		if n.update.IsPermanent() {
			continue
		}
		remoteByGUID[n.guid()] = i
	}

	locals, err := m.localDescendants()
	if err != nil {
		return nil, err
	}

	matches := make(map[string]guidMatch)
	for _, local := range locals {
		remoteIdx, ok := remoteByGUID[local.GUID]
		if !ok {
			continue
		}

		if compatibleWithRemote(local, forest.node(remoteIdx).update.Specifics) {
			matches[local.GUID] = guidMatch{localID: local.ID, remoteIdx: remoteIdx}
			continue
		}

		guid := m.ids.NewGUID()
		if err := m.model.UpdateGUID(local.ID, guid); err != nil {
			return nil, fmt.Errorf("%w: reassign guid of node %d: %w", ErrModelInvariant, local.ID, err)
		}
		report.ReassignedGUIDs++
		m.logger.Info().
			Str("func", "*BookmarkModelMerger.findGUIDMatches").
			Int64("node_id", local.ID).
			Str("old_guid", local.GUID).
			Str("new_guid", guid).
			Msg("reassigned guid of incompatible local node")
	}

	return matches, nil
}

// localDescendants lists the nodes below every permanent folder. It fails
// with ErrDuplicateLocalGUID when two of them share a GUID.
func (m *BookmarkModelMerger) localDescendants() ([]models.BookmarkNode, error) {
	var locals []models.BookmarkNode
	seen := make(map[string]struct{})
	for _, tag := range models.PermanentFolders() {
		permanent, ok := m.model.PermanentNode(tag)
		if !ok {
			continue
		}

		for _, local := range m.model.Descendants(permanent.ID) {
			if _, dup := seen[local.GUID]; dup {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateLocalGUID, local.GUID)
			}
			seen[local.GUID] = struct{}{}
			locals = append(locals, local)
		}
	}
	return locals, nil
}

// compatibleWithRemote reports whether a local node may be identified with
// a remote one sharing its GUID.
func compatibleWithRemote(local models.BookmarkNode, remote models.BookmarkSpecifics) bool {
	if local.Kind != remote.Kind {
		return false
	}
	return local.IsFolder() || local.URL == remote.URL
}
