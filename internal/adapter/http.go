package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-bookmark-merger/internal/config"
	"github.com/MKhiriev/go-bookmark-merger/internal/logger"
	"github.com/MKhiriev/go-bookmark-merger/internal/utils"
	"github.com/MKhiriev/go-bookmark-merger/models"
)

const updatesPath = "/api/bookmarks/updates"

// HTTPUpdateSource fetches remote updates from a sync server.
type HTTPUpdateSource struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPUpdateSource returns a source reading GET {UpdatesURL}/api/bookmarks/updates.
// The base URL is normalised; a missing scheme defaults to http.
func NewHTTPUpdateSource(adapterCfg config.Adapter, logger *logger.Logger) (*HTTPUpdateSource, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.UpdatesURL)
	if err != nil {
		return nil, fmt.Errorf("invalid updates url: %w", err)
	}

	client := utils.NewHTTPClient(adapterCfg.RequestTimeout)
	client.
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	return &HTTPUpdateSource{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty address", ErrInvalidAddress)
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: address must include host and scheme", ErrInvalidAddress)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// FetchUpdates implements [UpdateSource].
func (h *HTTPUpdateSource) FetchUpdates(ctx context.Context) ([]models.RemoteUpdate, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(updatesPath)
	if err != nil {
		return nil, fmt.Errorf("fetch updates request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var envelope models.UpdatesEnvelope
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingUpdates, err)
	}

	h.logger.Debug().
		Str("func", "*HTTPUpdateSource.FetchUpdates").
		Int("updates", len(envelope.Updates)).
		Msg("fetched remote updates")
	return envelope.Updates, nil
}
