package store

import (
	"context"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-bookmark-merger/internal/logger"
	"github.com/MKhiriev/go-bookmark-merger/models"
)

// bookmarkRepository stores the local bookmark tree and the tracker state
// in the bookmark_nodes and sync_entities tables.
type bookmarkRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewBookmarkRepository(db *DB, logger *logger.Logger) BookmarkRepository {
	return &bookmarkRepository{
		db:     db,
		logger: logger,
	}
}

// LoadNodes returns all stored nodes ordered by parent and sibling index.
func (r *bookmarkRepository) LoadNodes(ctx context.Context) ([]models.BookmarkNode, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectNodesQuery(r.db.builder)
	if err != nil {
		log.Err(err).Str("func", "bookmarkRepository.LoadNodes").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "bookmarkRepository.LoadNodes").Msg("failed to execute query for loading nodes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	nodes := make([]models.BookmarkNode, 0, 64)
	for rows.Next() {
		var (
			n            models.BookmarkNode
			kind         string
			permanentTag string
			favicon      string
		)
		if err = rows.Scan(
			&n.ID,
			&n.ParentID,
			&n.Index,
			&n.GUID,
			&kind,
			&n.Title,
			&n.URL,
			&permanentTag,
			&n.CreatedAt,
			&favicon,
		); err != nil {
			log.Err(err).Str("func", "bookmarkRepository.LoadNodes").Msg("failed to scan node row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		n.Kind = models.BookmarkKind(kind)
		n.PermanentTag = models.PermanentFolder(permanentTag)
		if favicon != "" {
			if n.Favicon, err = base64.StdEncoding.DecodeString(favicon); err != nil {
				return nil, fmt.Errorf("%w: favicon of node %d: %w", ErrScanningRow, n.ID, err)
			}
		}
		nodes = append(nodes, n)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "bookmarkRepository.LoadNodes").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return nodes, nil
}

// LoadEntities returns all stored sync entities ordered by node handle.
func (r *bookmarkRepository) LoadEntities(ctx context.Context) ([]models.SyncEntity, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectEntitiesQuery(r.db.builder)
	if err != nil {
		log.Err(err).Str("func", "bookmarkRepository.LoadEntities").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "bookmarkRepository.LoadEntities").Msg("failed to execute query for loading sync entities")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entities := make([]models.SyncEntity, 0, 64)
	for rows.Next() {
		var (
			e         models.SyncEntity
			specifics string
		)
		if err = rows.Scan(
			&e.NodeID,
			&e.ServerID,
			&e.Version,
			&e.CreationTime,
			&specifics,
			&e.SpecificsHash,
			&e.SequenceNumber,
			&e.AckedSequenceNumber,
		); err != nil {
			log.Err(err).Str("func", "bookmarkRepository.LoadEntities").Msg("failed to scan sync entity row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		if err = json.Unmarshal([]byte(specifics), &e.Specifics); err != nil {
			log.Err(err).
				Str("func", "bookmarkRepository.LoadEntities").
				Int64("node_id", e.NodeID).
				Msg("failed to decode specifics")
			return nil, fmt.Errorf("%w: specifics of node %d: %w", ErrScanningRow, e.NodeID, err)
		}
		entities = append(entities, e)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "bookmarkRepository.LoadEntities").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entities, nil
}

// SaveSnapshot replaces the stored tree and tracker state in one transaction.
func (r *bookmarkRepository) SaveSnapshot(ctx context.Context, nodes []models.BookmarkNode, entities []models.SyncEntity) error {
	log := logger.FromContext(ctx)

	nodeInserts := buildInsertNodesQueries(r.db.builder, nodes)
	entityInserts, err := buildInsertEntitiesQueries(r.db.builder, entities)
	if err != nil {
		log.Err(err).Str("func", "bookmarkRepository.SaveSnapshot").Msg("failed to create query")
		return err
	}

	err = r.db.withRetry(ctx, "save snapshot", func() error {
		return r.db.inTx(ctx, func(tx *sql.Tx) error {
			for _, table := range []string{tableSyncEntities, tableBookmarkNodes} {
				query, args, err := buildDeleteAllQuery(r.db.builder, table)
				if err != nil {
					return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
				}
				if _, err = tx.ExecContext(ctx, query, args...); err != nil {
					return fmt.Errorf("%w: clearing %s: %w", ErrExecutingStatement, table, err)
				}
			}

			if err := execInserts(ctx, tx, nodeInserts); err != nil {
				return err
			}
			return execInserts(ctx, tx, entityInserts)
		})
	})
	if err != nil {
		log.Err(err).
			Str("func", "bookmarkRepository.SaveSnapshot").
			Int("nodes", len(nodes)).
			Int("entities", len(entities)).
			Msg("failed to save bookmark snapshot")
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %w", ErrDuplicateGUID, err)
		}
		return err
	}

	log.Debug().
		Str("func", "bookmarkRepository.SaveSnapshot").
		Int("nodes", len(nodes)).
		Int("entities", len(entities)).
		Msg("bookmark snapshot saved")
	return nil
}

func execInserts(ctx context.Context, tx *sql.Tx, inserts []sq.InsertBuilder) error {
	for _, insert := range inserts {
		query, args, err := insert.ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}
	return nil
}
