// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-bookmark-merger/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	dollarBuilder   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	questionBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func Test_buildSelectNodesQuery(t *testing.T) {
	query, args, err := buildSelectNodesQuery(questionBuilder)
	require.NoError(t, err)

	assert.Empty(t, args)
	q := strings.ToLower(query)
	assert.Contains(t, q, "from bookmark_nodes")
	assert.Contains(t, q, "order by parent_id, idx")
	for _, column := range nodeColumns {
		assert.Contains(t, q, column)
	}
}

func Test_buildSelectEntitiesQuery(t *testing.T) {
	query, _, err := buildSelectEntitiesQuery(dollarBuilder)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "from sync_entities")
	assert.Contains(t, q, "specifics_hash")
}

func Test_buildInsertNodesQueries_Batches(t *testing.T) {
	nodes := make([]models.BookmarkNode, insertBatchSize*2+3)
	for i := range nodes {
		nodes[i] = models.BookmarkNode{ID: int64(i + 1), Kind: models.KindBookmark, CreatedAt: time.Unix(0, 0)}
	}

	queries := buildInsertNodesQueries(dollarBuilder, nodes)
	require.Len(t, queries, 3)

	query, args, err := queries[2].ToSql()
	require.NoError(t, err)
	assert.Len(t, args, 3*len(nodeColumns))
	assert.Contains(t, query, "$1")
	assert.NotContains(t, query, "?")
}

func Test_buildInsertNodesQueries_Empty(t *testing.T) {
	assert.Empty(t, buildInsertNodesQueries(dollarBuilder, nil))
}

func Test_buildInsertEntitiesQueries_SpecificsAsJSON(t *testing.T) {
	entities := []models.SyncEntity{{
		NodeID:    7,
		ServerID:  "server-7",
		Specifics: models.BookmarkSpecifics{GUID: "10000000-0000-4000-8000-000000000007", Kind: models.KindFolder},
	}}

	queries, err := buildInsertEntitiesQueries(questionBuilder, entities)
	require.NoError(t, err)
	require.Len(t, queries, 1)

	_, args, err := queries[0].ToSql()
	require.NoError(t, err)
	require.Len(t, args, len(entityColumns))
	assert.Equal(t, int64(7), args[0])
	assert.Contains(t, args[4], `"guid":"10000000-0000-4000-8000-000000000007"`)
}

func Test_buildUpsertFaviconQuery(t *testing.T) {
	query, args, err := buildUpsertFaviconQuery(questionBuilder, models.Favicon{
		PageURL: "https://example.com/",
		Data:    []byte{1, 2},
	})
	require.NoError(t, err)

	assert.Contains(t, strings.ToLower(query), "on conflict (page_url) do update")
	require.Len(t, args, len(faviconColumns))
	assert.Equal(t, "https://example.com/", args[0])
	assert.Equal(t, "AQI=", args[2])
}

func Test_buildSelectFaviconQuery(t *testing.T) {
	query, args, err := buildSelectFaviconQuery(dollarBuilder, "https://example.com/")
	require.NoError(t, err)

	assert.Contains(t, query, "page_url = $1")
	assert.Equal(t, []any{"https://example.com/"}, args)
}

func Test_buildDeleteAllQuery(t *testing.T) {
	query, _, err := buildDeleteAllQuery(questionBuilder, tableSyncEntities)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM sync_entities", query)
}
