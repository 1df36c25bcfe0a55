package service

import (
	"github.com/MKhiriev/go-bookmark-merger/internal/config"
	"github.com/MKhiriev/go-bookmark-merger/internal/logger"
	"github.com/MKhiriev/go-bookmark-merger/internal/store"
	"github.com/MKhiriev/go-bookmark-merger/models"
)

// Services groups the services exposed by the HTTP handler and the CLI.
type Services struct {
	InitialSyncService InitialSyncService
	AppInfoService     AppInfoService
	FaviconQueue       *FaviconQueue
}

// Dependencies carries the collaborators shared by the services. Repo and
// Source may be nil.
type Dependencies struct {
	Model   BookmarkStore
	Tracker SyncTracker
	Repo    store.BookmarkRepository
	Source  UpdateSource
}

func NewServices(deps Dependencies, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	favicons := NewFaviconQueue(cfg.Workers.FaviconQueueSize, logger)

	// without workers nothing drains the queue
	var faviconService FaviconService
	if cfg.Workers.FaviconWorkers > 0 {
		faviconService = favicons
	}

	return &Services{
		InitialSyncService: NewInitialSyncService(deps.Model, deps.Tracker, deps.Repo, deps.Source, faviconService, cfg.Merger, logger),
		AppInfoService:     appInfo,
		FaviconQueue:       favicons,
	}, nil
}
