// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound integrations of the bookmark merger.
//
// [UpdateSource] delivers the remote update list of an initial sync, either
// from a JSON file ([NewFileUpdateSource]) or from a sync server over HTTP
// ([NewHTTPUpdateSource]). [FaviconFetcher] downloads icons of bookmarked
// pages ([NewHTTPFaviconFetcher]).
//
// HTTP status codes are mapped to the sentinel errors defined in errors.go by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-bookmark-merger/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock -exclude_interfaces=UpdateSource

// UpdateSource delivers the complete, already decoded list of remote
// updates of an initial sync.
type UpdateSource interface {
	FetchUpdates(ctx context.Context) ([]models.RemoteUpdate, error)
}

// FaviconFetcher downloads the icon of a bookmarked page.
type FaviconFetcher interface {
	// FetchFavicon returns the icon of pageURL together with the URL it was
	// downloaded from.
	FetchFavicon(ctx context.Context, pageURL string) (models.Favicon, error)
}
