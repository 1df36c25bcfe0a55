// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/MKhiriev/go-bookmark-merger/internal/config"
	"github.com/MKhiriev/go-bookmark-merger/internal/logger"
	"github.com/MKhiriev/go-bookmark-merger/internal/position"
	"github.com/MKhiriev/go-bookmark-merger/internal/store"
	"github.com/MKhiriev/go-bookmark-merger/internal/utils"
	"github.com/MKhiriev/go-bookmark-merger/internal/validators"
	"github.com/MKhiriev/go-bookmark-merger/models"
)

// BookmarkModelMerger merges the bookmarks delivered by the server during
// initial sync into the local bookmark model and registers a sync entity
// for every node it touches.
//
// The merge runs in four steps: remote updates are validated, deduplicated
// and grouped by parent; the groups are assembled into one remote tree per
// permanent folder; local nodes are paired with remote nodes sharing their
// GUID; finally every remote tree is merged top-down into its local
// permanent folder. Remote nodes without a local counterpart are created
// locally, local nodes without a remote counterpart are registered for
// commit.
//
// A merger is single use and not safe for concurrent use.
type BookmarkModelMerger struct {
	updates  []models.RemoteUpdate
	model    store.BookmarkModel
	tracker  BookmarkTracker
	favicons FaviconService
	cfg      config.Merger

	validator validators.Validator
	ids       IDGenerator

	// set up by Merge
	forest  *remoteForest
	matches map[string]guidMatch
	report  models.MergeReport

	logger *logger.Logger
}

// NewBookmarkModelMerger prepares a merge of updates into model. favicons
// may be nil, in which case no favicon loads are requested.
func NewBookmarkModelMerger(
	updates []models.RemoteUpdate,
	model store.BookmarkModel,
	tracker BookmarkTracker,
	favicons FaviconService,
	cfg config.Merger,
	logger *logger.Logger,
) *BookmarkModelMerger {
	return &BookmarkModelMerger{
		updates:   updates,
		model:     model,
		tracker:   tracker,
		favicons:  favicons,
		cfg:       cfg,
		validator: validators.NewRemoteUpdateValidator(),
		ids:       utils.NewUUIDGenerator(),
		logger:    logger,
	}
}

// Merge performs the merge. Malformed remote input is dropped and counted
// in the returned report; an error is returned only when the local model
// or the tracker refuse an operation, or when the local tree holds
// duplicate GUIDs. The model may be partially merged in that case; the
// sync service rolls it back.
func (m *BookmarkModelMerger) Merge(ctx context.Context) (models.MergeReport, error) {
	m.report = models.NewMergeReport()

	groups := m.groupRemoteUpdates(ctx, &m.report)
	m.forest = m.buildForest(groups, &m.report)

	matches, err := m.findGUIDMatches(m.forest, &m.report)
	if err != nil {
		return m.report, err
	}
	m.matches = matches

	for _, tag := range models.PermanentFolders() {
		rootIdx, ok := m.forest.roots[tag]
		if !ok {
			continue
		}

		local, ok := m.model.PermanentNode(tag)
		if !ok {
			m.report.SkippedPermanentFolders++
			m.logger.Warn().
				Str("func", "*BookmarkModelMerger.Merge").
				Str("tag", string(tag)).
				Msg("no local permanent folder for remote tree")
			continue
		}

		if err = m.trackRemote(local.ID, rootIdx); err != nil {
			return m.report, err
		}
		if err = m.mergeSubtree(local.ID, rootIdx); err != nil {
			return m.report, err
		}
	}

	m.logger.Info().
		Str("func", "*BookmarkModelMerger.Merge").
		Int("updates", m.report.Updates).
		Int("guid_matches", m.report.GUIDMatches).
		Int("semantic_matches", m.report.SemanticMatches).
		Int("remote_creations", m.report.RemoteCreations).
		Int("local_creations", m.report.LocalCreations).
		Int("invalid", m.report.InvalidTotal()).
		Int("duplicates", m.report.DuplicatesTotal()).
		Msg("initial bookmark merge finished")

	return m.report, nil
}

// mergeSubtree merges the children of the remote node remoteIdx into the
// local folder localParentID. After it returns, the first children of the
// local folder mirror the remote children in order, followed by the local
// children that have no remote counterpart.
func (m *BookmarkModelMerger) mergeSubtree(localParentID int64, remoteIdx int) error {
	remoteChildren := m.forest.node(remoteIdx).children

	for i, childIdx := range remoteChildren {
		local, matchedByGUID, ok := m.findMatchingLocalNode(localParentID, i, childIdx)
		if !ok {
			if err := m.processRemoteCreation(localParentID, i, childIdx); err != nil {
				return err
			}
			continue
		}

		if err := m.model.Move(local.ID, localParentID, i); err != nil {
			return fmt.Errorf("%w: move node %d to %d/%d: %w", ErrModelInvariant, local.ID, localParentID, i, err)
		}
		if err := m.updateFromRemote(local, childIdx); err != nil {
			return err
		}
		if err := m.trackRemote(local.ID, childIdx); err != nil {
			return err
		}
		if matchedByGUID {
			m.report.GUIDMatches++
		} else {
			m.report.SemanticMatches++
		}

		if err := m.mergeSubtree(local.ID, childIdx); err != nil {
			return err
		}
	}

	children := m.model.Children(localParentID)
	for j := len(remoteChildren); j < len(children); j++ {
		if _, claimed := m.matches[children[j].GUID]; claimed {
			continue
		}
		if err := m.processLocalCreation(localParentID, j); err != nil {
			return err
		}
	}

	return nil
}

// findMatchingLocalNode looks up the local counterpart of a remote node:
// by GUID first, then by content among the not yet merged children of the
// local parent. Nodes claimed by a GUID match are never matched by content.
func (m *BookmarkModelMerger) findMatchingLocalNode(localParentID int64, from int, remoteIdx int) (models.BookmarkNode, bool, bool) {
	remote := m.forest.node(remoteIdx).update.Specifics

	if match, ok := m.matches[remote.GUID]; ok {
		local, found := m.model.Node(match.localID)
		return local, true, found
	}

	children := m.model.Children(localParentID)
	for j := from; j < len(children); j++ {
		if _, claimed := m.matches[children[j].GUID]; claimed {
			continue
		}
		if nodeSemanticsMatch(children[j], remote) {
			return children[j], false, true
		}
	}
	return models.BookmarkNode{}, false, false
}

func (m *BookmarkModelMerger) processRemoteCreation(localParentID int64, index int, remoteIdx int) error {
	specifics := m.forest.node(remoteIdx).update.Specifics

	created, err := m.model.Create(localParentID, index, models.BookmarkNode{
		GUID:      specifics.GUID,
		Kind:      specifics.Kind,
		Title:     titleFromSpecifics(specifics),
		URL:       specifics.URL,
		CreatedAt: specifics.CreationTime,
		Favicon:   specifics.Favicon,
	})
	if err != nil {
		return fmt.Errorf("%w: create %s under %d: %w", ErrModelInvariant, specifics.GUID, localParentID, err)
	}
	m.report.RemoteCreations++

	if err = m.trackRemote(created.ID, remoteIdx); err != nil {
		return err
	}

	// a new folder has no local children, so its remote children are either
	// pulled in by GUID or created
	return m.mergeSubtree(created.ID, remoteIdx)
}

// updateFromRemote copies remote title, URL and favicon onto a matched local node. A node
// matched by content also takes over the remote GUID.
func (m *BookmarkModelMerger) updateFromRemote(local models.BookmarkNode, remoteIdx int) error {
	specifics := m.forest.node(remoteIdx).update.Specifics

	if local.GUID != specifics.GUID {
		if err := m.model.UpdateGUID(local.ID, specifics.GUID); err != nil {
			return fmt.Errorf("%w: update guid of node %d: %w", ErrModelInvariant, local.ID, err)
		}
	}

	title := titleFromSpecifics(specifics)
	if local.Title != title || local.URL != specifics.URL {
		if err := m.model.Update(local.ID, title, specifics.URL); err != nil {
			return fmt.Errorf("%w: update node %d: %w", ErrModelInvariant, local.ID, err)
		}
	}

	// an empty remote icon keeps the local one
	if local.IsFolder() || len(specifics.Favicon) == 0 || bytes.Equal(local.Favicon, specifics.Favicon) {
		return nil
	}
	if err := m.model.UpdateFavicon(local.ID, specifics.Favicon); err != nil {
		return fmt.Errorf("%w: update favicon of node %d: %w", ErrModelInvariant, local.ID, err)
	}
	return nil
}

// trackRemote registers the sync entity of a local node that mirrors the
// remote node remoteIdx.
func (m *BookmarkModelMerger) trackRemote(localID int64, remoteIdx int) error {
	update := m.forest.node(remoteIdx).update

	entity, err := m.tracker.Add(localID, update.ServerID, update.ResponseVersion, update.Specifics.CreationTime, update.Specifics)
	if err != nil {
		return fmt.Errorf("%w: track node %d: %w", ErrTracker, localID, err)
	}

	if !m.cfg.ReuploadLegacyBookmarks || update.IsPermanent() || update.Specifics.FullTitle != "" || entity.IsUnsynced() {
		return nil
	}
	if err = m.tracker.IncrementSequenceNumber(localID); err != nil {
		return fmt.Errorf("%w: mark node %d for reupload: %w", ErrTracker, localID, err)
	}
	m.report.Reuploads++
	return nil
}

// processLocalCreation registers the local-only node at index under
// parentID, and its whole subtree, for commit.
func (m *BookmarkModelMerger) processLocalCreation(parentID int64, index int) error {
	type frame struct {
		parentID int64
		index    int
	}

	stack := []frame{{parentID: parentID, index: index}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		siblings := m.model.Children(f.parentID)
		if f.index >= len(siblings) {
			return fmt.Errorf("%w: child %d of node %d: %w", ErrModelInvariant, f.index, f.parentID, store.ErrIndexOutOfRange)
		}
		node := siblings[f.index]

		// merged together with its remote counterpart later on
		if _, claimed := m.matches[node.GUID]; claimed {
			continue
		}

		if _, tracked := m.tracker.EntityForNode(node.ID); !tracked {
			if err := m.trackLocal(f.parentID, f.index, node); err != nil {
				return err
			}
		}

		if !node.IsFolder() {
			continue
		}
		children := m.model.Children(node.ID)
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{parentID: node.ID, index: i})
		}
	}
	return nil
}

func (m *BookmarkModelMerger) trackLocal(parentID int64, index int, node models.BookmarkNode) error {
	parent, ok := m.model.Node(parentID)
	if !ok {
		return fmt.Errorf("%w: parent %d: %w", ErrModelInvariant, parentID, store.ErrNodeNotFound)
	}

	serverID := m.ids.Generate()
	pos, err := m.positionForLocalCreation(parentID, index, position.GenerateSuffix(m.cfg.CacheGUID, serverID))
	if err != nil {
		return fmt.Errorf("%w: position of node %d: %w", ErrTracker, node.ID, err)
	}

	specifics := models.BookmarkSpecifics{
		GUID:                     node.GUID,
		Kind:                     node.Kind,
		FullTitle:                node.Title,
		LegacyCanonicalizedTitle: legacyCanonicalizedTitle(node.Title),
		URL:                      node.URL,
		ParentGUID:               parent.GUID,
		Position:                 pos,
		CreationTime:             node.CreatedAt,
		Favicon:                  node.Favicon,
	}

	if _, err = m.tracker.Add(node.ID, serverID, models.UncommittedVersion, node.CreatedAt, specifics); err != nil {
		return fmt.Errorf("%w: track local node %d: %w", ErrTracker, node.ID, err)
	}
	if err = m.tracker.IncrementSequenceNumber(node.ID); err != nil {
		return fmt.Errorf("%w: mark local node %d for commit: %w", ErrTracker, node.ID, err)
	}
	m.report.LocalCreations++

	if !node.IsFolder() && m.favicons != nil {
		m.favicons.LoadFavicon(node.URL)
	}
	return nil
}
