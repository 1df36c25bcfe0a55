package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bookmark-merger/internal/config"
	"github.com/MKhiriev/go-bookmark-merger/internal/logger"
)

// Storages groups the SQL repositories sharing one connection.
type Storages struct {
	BookmarkRepository BookmarkRepository
	FaviconRepository  FaviconRepository

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		BookmarkRepository: NewBookmarkRepository(db, log),
		FaviconRepository:  NewFaviconRepository(db, log),
		db:                 db,
	}, nil
}

func (s *Storages) Close() error {
	return s.db.Close()
}
