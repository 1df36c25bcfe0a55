// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-bookmark-merger/internal/logger"
)

// FaviconQueue is a FaviconService backed by a bounded channel. Requests
// that do not fit are dropped; a worker pool drains Requests.
type FaviconQueue struct {
	requests chan string
	dropped  atomic.Int64

	mu     sync.RWMutex
	closed bool

	logger *logger.Logger
}

// NewFaviconQueue returns a queue holding up to size pending requests.
// A non-positive size makes every request be dropped.
func NewFaviconQueue(size int, logger *logger.Logger) *FaviconQueue {
	return &FaviconQueue{
		requests: make(chan string, max(size, 0)),
		logger:   logger,
	}
}

// LoadFavicon implements FaviconService.
func (q *FaviconQueue) LoadFavicon(pageURL string) {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		q.dropped.Add(1)
		return
	}

	select {
	case q.requests <- pageURL:
	default:
		q.dropped.Add(1)
		q.logger.Debug().
			Str("func", "*FaviconQueue.LoadFavicon").
			Str("page_url", pageURL).
			Msg("favicon queue is full, request dropped")
	}
}

// Requests is drained by favicon workers. It is closed by Close.
func (q *FaviconQueue) Requests() <-chan string {
	return q.requests
}

// Dropped returns the number of requests that were not queued.
func (q *FaviconQueue) Dropped() int64 {
	return q.dropped.Load()
}

// Close stops accepting requests. Requests already queued stay readable.
func (q *FaviconQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	q.closed = true
	close(q.requests)
}
