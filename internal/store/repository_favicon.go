package store

import (
	"context"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-bookmark-merger/internal/logger"
	"github.com/MKhiriev/go-bookmark-merger/models"
)

type faviconRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewFaviconRepository(db *DB, logger *logger.Logger) FaviconRepository {
	return &faviconRepository{
		db:     db,
		logger: logger,
	}
}

// SaveFavicon inserts or replaces the icon stored for favicon.PageURL.
func (r *faviconRepository) SaveFavicon(ctx context.Context, favicon models.Favicon) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertFaviconQuery(r.db.builder, favicon)
	if err != nil {
		log.Err(err).Str("func", "faviconRepository.SaveFavicon").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, "save favicon", func() error {
		_, err := r.db.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "faviconRepository.SaveFavicon").
			Str("page_url", favicon.PageURL).
			Msg("failed to save favicon")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *faviconRepository) GetFavicon(ctx context.Context, pageURL string) (models.Favicon, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectFaviconQuery(r.db.builder, pageURL)
	if err != nil {
		log.Err(err).Str("func", "faviconRepository.GetFavicon").Msg("failed to create query")
		return models.Favicon{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		f    models.Favicon
		data string
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&f.PageURL, &f.IconURL, &data, &f.FetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Favicon{}, ErrFaviconNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "faviconRepository.GetFavicon").
			Str("page_url", pageURL).
			Msg("failed to scan favicon row")
		return models.Favicon{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if f.Data, err = base64.StdEncoding.DecodeString(data); err != nil {
		return models.Favicon{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return f, nil
}
