package store

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-bookmark-merger/models"
)

const (
	tableBookmarkNodes = "bookmark_nodes"
	tableSyncEntities  = "sync_entities"
	tableFavicons      = "favicons"

	// insertBatchSize keeps batched inserts well below the bound-parameter
	// limit of SQLite.
	insertBatchSize = 50
)

var nodeColumns = []string{
	"id", "parent_id", "idx", "guid", "kind", "title", "url", "permanent_tag", "created_at", "favicon",
}

var entityColumns = []string{
	"node_id", "server_id", "version", "creation_time", "specifics", "specifics_hash",
	"sequence_number", "acked_sequence_number",
}

var faviconColumns = []string{"page_url", "icon_url", "data", "fetched_at"}

func buildSelectNodesQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(nodeColumns...).
		From(tableBookmarkNodes).
		OrderBy("parent_id", "idx").
		ToSql()
}

func buildSelectEntitiesQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(entityColumns...).
		From(tableSyncEntities).
		OrderBy("node_id").
		ToSql()
}

func buildDeleteAllQuery(b sq.StatementBuilderType, table string) (string, []any, error) {
	return b.Delete(table).ToSql()
}

// buildInsertNodesQueries splits nodes into batched INSERT statements.
func buildInsertNodesQueries(b sq.StatementBuilderType, nodes []models.BookmarkNode) []sq.InsertBuilder {
	var queries []sq.InsertBuilder
	for start := 0; start < len(nodes); start += insertBatchSize {
		end := min(start+insertBatchSize, len(nodes))

		q := b.Insert(tableBookmarkNodes).Columns(nodeColumns...)
		for _, n := range nodes[start:end] {
			q = q.Values(
				n.ID,
				n.ParentID,
				n.Index,
				n.GUID,
				string(n.Kind),
				n.Title,
				n.URL,
				string(n.PermanentTag),
				n.CreatedAt.UTC(),
				base64.StdEncoding.EncodeToString(n.Favicon),
			)
		}
		queries = append(queries, q)
	}
	return queries
}

// buildInsertEntitiesQueries splits entities into batched INSERT statements.
// Specifics are stored as JSON.
func buildInsertEntitiesQueries(b sq.StatementBuilderType, entities []models.SyncEntity) ([]sq.InsertBuilder, error) {
	var queries []sq.InsertBuilder
	for start := 0; start < len(entities); start += insertBatchSize {
		end := min(start+insertBatchSize, len(entities))

		q := b.Insert(tableSyncEntities).Columns(entityColumns...)
		for _, e := range entities[start:end] {
			specifics, err := json.Marshal(e.Specifics)
			if err != nil {
				return nil, fmt.Errorf("%w: specifics of node %d: %w", ErrBuildingSQLQuery, e.NodeID, err)
			}
			q = q.Values(
				e.NodeID,
				e.ServerID,
				e.Version,
				e.CreationTime.UTC(),
				string(specifics),
				e.SpecificsHash,
				e.SequenceNumber,
				e.AckedSequenceNumber,
			)
		}
		queries = append(queries, q)
	}
	return queries, nil
}

func buildUpsertFaviconQuery(b sq.StatementBuilderType, f models.Favicon) (string, []any, error) {
	return b.Insert(tableFavicons).
		Columns(faviconColumns...).
		Values(f.PageURL, f.IconURL, base64.StdEncoding.EncodeToString(f.Data), f.FetchedAt.UTC()).
		Suffix("ON CONFLICT (page_url) DO UPDATE SET icon_url = excluded.icon_url, data = excluded.data, fetched_at = excluded.fetched_at").
		ToSql()
}

func buildSelectFaviconQuery(b sq.StatementBuilderType, pageURL string) (string, []any, error) {
	return b.Select(faviconColumns...).
		From(tableFavicons).
		Where(sq.Eq{"page_url": pageURL}).
		ToSql()
}
