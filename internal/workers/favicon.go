// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/go-bookmark-merger/internal/adapter"
	"github.com/MKhiriev/go-bookmark-merger/internal/config"
	"github.com/MKhiriev/go-bookmark-merger/internal/logger"
	"github.com/MKhiriev/go-bookmark-merger/internal/store"
)

// FaviconWorker downloads icons for queued page URLs, stores them and
// hands them to the bookmark model. Failures are logged and skipped.
type FaviconWorker struct {
	requests <-chan string
	fetcher  adapter.FaviconFetcher
	repo     store.FaviconRepository
	sink     FaviconSink

	logger *logger.Logger
}

func NewFaviconWorker(requests <-chan string, fetcher adapter.FaviconFetcher, repo store.FaviconRepository, sink FaviconSink, logger *logger.Logger) *FaviconWorker {
	return &FaviconWorker{
		requests: requests,
		fetcher:  fetcher,
		repo:     repo,
		sink:     sink,
		logger:   logger,
	}
}

// Run processes requests until the channel is closed or ctx is cancelled.
func (w *FaviconWorker) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case pageURL, ok := <-w.requests:
			if !ok {
				return
			}
			w.process(ctx, pageURL)
		}
	}
}

func (w *FaviconWorker) process(ctx context.Context, pageURL string) {
	favicon, err := w.fetcher.FetchFavicon(ctx, pageURL)
	if err != nil {
		w.logger.Debug().Err(err).
			Str("func", "*FaviconWorker.process").
			Str("page_url", pageURL).
			Msg("favicon download failed")
		return
	}

	if w.repo != nil {
		if err = w.repo.SaveFavicon(ctx, favicon); err != nil {
			w.logger.Err(err).
				Str("func", "*FaviconWorker.process").
				Str("page_url", pageURL).
				Msg("error saving favicon")
		}
	}

	touched := w.sink.SetFavicon(pageURL, favicon.Data)
	w.logger.Debug().
		Str("func", "*FaviconWorker.process").
		Str("page_url", pageURL).
		Int("bookmarks", touched).
		Msg("favicon loaded")
}

// NewFaviconWorkers builds the favicon pool sized by cfg.FaviconWorkers.
func NewFaviconWorkers(cfg config.Workers, requests <-chan string, fetcher adapter.FaviconFetcher, repo store.FaviconRepository, sink FaviconSink, logger *logger.Logger) *Workers {
	pool := make([]Worker, 0, cfg.FaviconWorkers)
	for i := 0; i < cfg.FaviconWorkers; i++ {
		pool = append(pool, NewFaviconWorker(requests, fetcher, repo, sink, logger))
	}
	return NewWorkers(pool...)
}
