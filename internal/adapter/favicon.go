package adapter

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/MKhiriev/go-bookmark-merger/internal/config"
	"github.com/MKhiriev/go-bookmark-merger/internal/logger"
	"github.com/MKhiriev/go-bookmark-merger/internal/utils"
	"github.com/MKhiriev/go-bookmark-merger/models"
)

const faviconPath = "/favicon.ico"

// HTTPFaviconFetcher downloads {scheme}://{host}/favicon.ico of a page.
type HTTPFaviconFetcher struct {
	client *utils.HTTPClient
	now    func() time.Time

	logger *logger.Logger
}

func NewHTTPFaviconFetcher(adapterCfg config.Adapter, logger *logger.Logger) *HTTPFaviconFetcher {
	client := utils.NewHTTPClient(adapterCfg.RequestTimeout)

	return &HTTPFaviconFetcher{client: client, now: time.Now, logger: logger}
}

// FetchFavicon implements [FaviconFetcher].
func (f *HTTPFaviconFetcher) FetchFavicon(ctx context.Context, pageURL string) (models.Favicon, error) {
	iconURL, err := faviconURL(pageURL)
	if err != nil {
		return models.Favicon{}, err
	}

	resp, err := f.client.R().
		SetContext(ctx).
		Get(iconURL)
	if err != nil {
		return models.Favicon{}, fmt.Errorf("fetch favicon request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Favicon{}, err
	}
	if len(resp.Body()) == 0 {
		return models.Favicon{}, fmt.Errorf("%w: %s", ErrEmptyFavicon, iconURL)
	}

	return models.Favicon{
		PageURL:   pageURL,
		IconURL:   iconURL,
		Data:      resp.Body(),
		FetchedAt: f.now().UTC(),
	}, nil
}

func faviconURL(pageURL string) (string, error) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidPageURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: %s", ErrInvalidPageURL, pageURL)
	}

	return (&url.URL{Scheme: u.Scheme, Host: u.Host, Path: faviconPath}).String(), nil
}
