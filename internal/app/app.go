// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bookmark-merger/internal/adapter"
	"github.com/MKhiriev/go-bookmark-merger/internal/config"
	"github.com/MKhiriev/go-bookmark-merger/internal/logger"
	"github.com/MKhiriev/go-bookmark-merger/internal/service"
	"github.com/MKhiriev/go-bookmark-merger/internal/store"
	"github.com/MKhiriev/go-bookmark-merger/internal/tracker"
	"github.com/MKhiriev/go-bookmark-merger/internal/workers"
	"github.com/MKhiriev/go-bookmark-merger/models"
)

type App struct {
	Model    *store.BookmarkTree
	Tracker  *tracker.SyncedBookmarkTracker
	Services *service.Services
	Workers  *workers.Workers

	storages *store.Storages
	logger   *logger.Logger
}

// New builds the application. An empty database DSN keeps everything in
// memory.
func New(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	a := &App{
		Model:   store.NewBookmarkTree(),
		Tracker: tracker.New(),
		logger:  logger,
	}

	deps := service.Dependencies{Model: a.Model, Tracker: a.Tracker}
	var faviconRepo store.FaviconRepository

	if cfg.Storage.DB.DSN != "" {
		storages, err := store.NewStorages(ctx, cfg.Storage, logger)
		if err != nil {
			return nil, fmt.Errorf("create storages: %w", err)
		}
		a.storages = storages
		deps.Repo = storages.BookmarkRepository
		faviconRepo = storages.FaviconRepository
	}

	source, err := adapter.NewUpdateSource(cfg.Adapter, logger)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("create update source: %w", err)
	}
	// a typed nil would defeat the nil check of the sync service
	if source != nil {
		deps.Source = source
	}

	a.Services, err = service.NewServices(deps, *cfg, buildInfo, logger)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("create services: %w", err)
	}

	a.Workers = workers.NewFaviconWorkers(
		cfg.Workers,
		a.Services.FaviconQueue.Requests(),
		adapter.NewHTTPFaviconFetcher(cfg.Adapter, logger),
		faviconRepo,
		a.Model,
		logger,
	)

	return a, nil
}

// Close stops accepting favicon requests and closes the database.
func (a *App) Close() error {
	if a.Services != nil {
		a.Services.FaviconQueue.Close()
	}
	if a.storages == nil {
		return nil
	}
	if err := a.storages.Close(); err != nil {
		a.logger.Err(err).Str("func", "*App.Close").Msg("error closing storages")
		return err
	}
	return nil
}
