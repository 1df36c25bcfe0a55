// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tracker keeps the synchronization bookkeeping of bookmark nodes:
// one [models.SyncEntity] per node that took part in a sync.
//
// The tracker counts mutations. Registering an entity identical to the
// tracked one is not a mutation, so replaying the same merge against an
// already populated tracker leaves the counter untouched.
package tracker

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/go-bookmark-merger/models"
	"golang.org/x/crypto/blake2b"
)

// SyncedBookmarkTracker stores sync entities indexed by node handle and by
// server id. It is safe for concurrent use.
type SyncedBookmarkTracker struct {
	mu         sync.RWMutex
	byNode     map[int64]*models.SyncEntity
	byServerID map[string]*models.SyncEntity
	mutations  int
}

// New returns an empty tracker.
func New() *SyncedBookmarkTracker {
	return &SyncedBookmarkTracker{
		byNode:     make(map[int64]*models.SyncEntity),
		byServerID: make(map[string]*models.SyncEntity),
	}
}

// Add registers the sync entity of nodeID, or updates the existing one.
// Sequence numbers of an existing entity are preserved. A server id already
// held by another node is refused with ErrDuplicateServerID.
func (t *SyncedBookmarkTracker) Add(nodeID int64, serverID string, version int64, creationTime time.Time, specifics models.BookmarkSpecifics) (models.SyncEntity, error) {
	hash, err := HashSpecifics(specifics)
	if err != nil {
		return models.SyncEntity{}, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if holder, ok := t.byServerID[serverID]; ok && holder.NodeID != nodeID {
		return models.SyncEntity{}, fmt.Errorf("add entity of node %d: server id held by node %d: %w", nodeID, holder.NodeID, ErrDuplicateServerID)
	}

	if existing, ok := t.byNode[nodeID]; ok {
		if existing.ServerID == serverID && existing.Version == version && existing.SpecificsHash == hash {
			return *existing, nil
		}

		if existing.ServerID != serverID {
			delete(t.byServerID, existing.ServerID)
			t.byServerID[serverID] = existing
		}
		existing.ServerID = serverID
		existing.Version = version
		existing.CreationTime = creationTime
		existing.Specifics = specifics
		existing.SpecificsHash = hash
		t.mutations++
		return *existing, nil
	}

	entity := &models.SyncEntity{
		NodeID:        nodeID,
		ServerID:      serverID,
		Version:       version,
		CreationTime:  creationTime,
		Specifics:     specifics,
		SpecificsHash: hash,
	}
	t.byNode[nodeID] = entity
	t.byServerID[serverID] = entity
	t.mutations++

	return *entity, nil
}

// IncrementSequenceNumber marks the entity of nodeID as pending commit.
func (t *SyncedBookmarkTracker) IncrementSequenceNumber(nodeID int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	entity, ok := t.byNode[nodeID]
	if !ok {
		return fmt.Errorf("increment sequence number of node %d: %w", nodeID, ErrUnknownNode)
	}
	entity.SequenceNumber++
	t.mutations++

	return nil
}

// EntityForNode returns a copy of the entity tracked for nodeID.
func (t *SyncedBookmarkTracker) EntityForNode(nodeID int64) (models.SyncEntity, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	entity, ok := t.byNode[nodeID]
	if !ok {
		return models.SyncEntity{}, false
	}
	return *entity, true
}

// EntityForServerID returns a copy of the entity tracked under serverID.
func (t *SyncedBookmarkTracker) EntityForServerID(serverID string) (models.SyncEntity, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	entity, ok := t.byServerID[serverID]
	if !ok {
		return models.SyncEntity{}, false
	}
	return *entity, true
}

// Entities returns copies of all entities ordered by node handle.
func (t *SyncedBookmarkTracker) Entities() []models.SyncEntity {
	t.mu.RLock()
	defer t.mu.RUnlock()

	entities := make([]models.SyncEntity, 0, len(t.byNode))
	for _, e := range t.byNode {
		entities = append(entities, *e)
	}
	sort.Slice(entities, func(i, j int) bool { return entities[i].NodeID < entities[j].NodeID })

	return entities
}

func (t *SyncedBookmarkTracker) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.byNode)
}

// Mutations returns the number of state changes since creation or the
// last Load.
func (t *SyncedBookmarkTracker) Mutations() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.mutations
}

// UnsyncedCount returns the number of entities pending commit.
func (t *SyncedBookmarkTracker) UnsyncedCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n := 0
	for _, e := range t.byNode {
		if e.IsUnsynced() {
			n++
		}
	}
	return n
}

// Load replaces the tracker contents with previously persisted entities and
// resets the mutation counter.
func (t *SyncedBookmarkTracker) Load(entities []models.SyncEntity) error {
	byNode := make(map[int64]*models.SyncEntity, len(entities))
	byServerID := make(map[string]*models.SyncEntity, len(entities))
	for i := range entities {
		entity := entities[i]
		if _, dup := byServerID[entity.ServerID]; dup {
			return fmt.Errorf("load entity of node %d: %w", entity.NodeID, ErrDuplicateServerID)
		}
		byNode[entity.NodeID] = &entity
		byServerID[entity.ServerID] = &entity
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.byNode = byNode
	t.byServerID = byServerID
	t.mutations = 0

	return nil
}

// HashSpecifics returns a stable digest of specifics, used to detect
// content changes.
func HashSpecifics(specifics models.BookmarkSpecifics) (string, error) {
	data, err := json.Marshal(specifics)
	if err != nil {
		return "", fmt.Errorf("error marshaling specifics: %w", err)
	}
	sum := blake2b.Sum256(data)
	return base64.StdEncoding.EncodeToString(sum[:]), nil
}
