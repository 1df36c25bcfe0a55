// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	userAgent = "go-bookmark-merger"

	// transport failures are retried, HTTP error statuses are not
	retryCount   = 2
	retryWait    = 100 * time.Millisecond
	retryMaxWait = time.Second
)

// HTTPClient embeds *resty.Client and presets the user agent, the request
// timeout and retries of failed connections.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client. A zero timeout disables the
// client-side deadline.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", userAgent).
		SetTimeout(timeout).
		SetRetryCount(retryCount).
		SetRetryWaitTime(retryWait).
		SetRetryMaxWaitTime(retryMaxWait)

	return &HTTPClient{Client: client}
}
