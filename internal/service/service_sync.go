package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-bookmark-merger/internal/config"
	"github.com/MKhiriev/go-bookmark-merger/internal/logger"
	"github.com/MKhiriev/go-bookmark-merger/internal/store"
	"github.com/MKhiriev/go-bookmark-merger/models"
)

// initialSyncService owns the local bookmark model and the tracker for the
// lifetime of the process and runs at most one merge at a time.
type initialSyncService struct {
	mu sync.Mutex

	model    BookmarkStore
	tracker  SyncTracker
	repo     store.BookmarkRepository
	source   UpdateSource
	favicons FaviconService
	cfg      config.Merger

	logger *logger.Logger
}

// NewInitialSyncService wires the initial sync. repo, source and favicons
// are optional: without a repository nothing is persisted, without a source
// SyncFromSource fails with ErrNoUpdateSource.
func NewInitialSyncService(
	model BookmarkStore,
	tracker SyncTracker,
	repo store.BookmarkRepository,
	source UpdateSource,
	favicons FaviconService,
	cfg config.Merger,
	logger *logger.Logger,
) InitialSyncService {
	return &initialSyncService{
		model:    model,
		tracker:  tracker,
		repo:     repo,
		source:   source,
		favicons: favicons,
		cfg:      cfg,
		logger:   logger,
	}
}

func (s *initialSyncService) Restore(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	nodes, err := s.repo.LoadNodes(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "*initialSyncService.Restore").Msg("error loading bookmark nodes")
		return fmt.Errorf("error loading bookmark nodes: %w", err)
	}
	entities, err := s.repo.LoadEntities(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "*initialSyncService.Restore").Msg("error loading sync entities")
		return fmt.Errorf("error loading sync entities: %w", err)
	}

	if err = s.model.Restore(nodes); err != nil {
		return fmt.Errorf("error restoring bookmark tree: %w", err)
	}
	if err = s.tracker.Load(entities); err != nil {
		return fmt.Errorf("error restoring sync entities: %w", err)
	}

	s.logger.Info().
		Str("func", "*initialSyncService.Restore").
		Int("nodes", len(nodes)).
		Int("entities", len(entities)).
		Msg("restored bookmarks")
	return nil
}

// MergeUpdates merges updates into the local model and persists the result.
// It refuses to run once the tracker holds any entity. A failed merge or
// save rolls the model and the tracker back, so the call can be retried.
func (s *initialSyncService) MergeUpdates(ctx context.Context, updates []models.RemoteUpdate) (models.MergeReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tracker.Len() > 0 {
		return models.MergeReport{}, ErrAlreadySynced
	}

	nodes, entities := s.model.Nodes(), s.tracker.Entities()

	report, err := NewBookmarkModelMerger(updates, s.model, s.tracker, s.favicons, s.cfg, s.logger).Merge(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "*initialSyncService.MergeUpdates").Msg("initial merge failed")
		return report, s.rollback(nodes, entities, fmt.Errorf("error merging remote bookmarks: %w", err))
	}

	if s.repo == nil {
		return report, nil
	}
	if err = s.repo.SaveSnapshot(ctx, s.model.Nodes(), s.tracker.Entities()); err != nil {
		s.logger.Err(err).Str("func", "*initialSyncService.MergeUpdates").Msg("error saving merged bookmarks")
		return report, s.rollback(nodes, entities, fmt.Errorf("error saving merged bookmarks: %w", err))
	}

	return report, nil
}

// rollback puts back the model and tracker state captured before a merge
// and returns cause, joined with any restore failure.
func (s *initialSyncService) rollback(nodes []models.BookmarkNode, entities []models.SyncEntity, cause error) error {
	if err := s.model.Restore(nodes); err != nil {
		s.logger.Err(err).Str("func", "*initialSyncService.rollback").Msg("error restoring bookmark tree")
		return errors.Join(cause, fmt.Errorf("error restoring bookmark tree: %w", err))
	}
	if err := s.tracker.Load(entities); err != nil {
		s.logger.Err(err).Str("func", "*initialSyncService.rollback").Msg("error restoring sync entities")
		return errors.Join(cause, fmt.Errorf("error restoring sync entities: %w", err))
	}
	return cause
}

func (s *initialSyncService) SyncFromSource(ctx context.Context) (models.MergeReport, error) {
	if s.source == nil {
		return models.MergeReport{}, ErrNoUpdateSource
	}

	updates, err := s.source.FetchUpdates(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "*initialSyncService.SyncFromSource").Msg("error fetching remote updates")
		return models.MergeReport{}, fmt.Errorf("error fetching remote updates: %w", err)
	}

	return s.MergeUpdates(ctx, updates)
}

func (s *initialSyncService) Bookmarks(ctx context.Context) *models.BookmarkTreeNode {
	return s.model.Tree()
}

func (s *initialSyncService) Entities(ctx context.Context) []models.SyncEntity {
	return s.tracker.Entities()
}
