package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-bookmark-merger/internal/config"
	"github.com/MKhiriev/go-bookmark-merger/internal/logger"
	"github.com/MKhiriev/go-bookmark-merger/internal/position"
	"github.com/MKhiriev/go-bookmark-merger/models"
)

func newTestDB(t *testing.T, driver string) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return newDB(conn, driver, logger.Nop()), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

// ── LoadNodes ─────────────────────────────────────────────────────────────────

func TestLoadNodes_Success(t *testing.T) {
	db, mock := newTestDB(t, config.DriverSQLite)
	repo := NewBookmarkRepository(db, logger.Nop())
	now := time.Now().UTC()

	rows := sqlmock.NewRows(nodeColumns).
		AddRow(1, 0, 0, models.RootGUID, "folder", "", "", "", now, "").
		AddRow(5, 2, 0, "guid-5", "bookmark", "Go", "https://go.dev/", "", now, "aWNvbg==")
	mock.ExpectQuery("SELECT (.+) FROM bookmark_nodes ORDER BY parent_id, idx").WillReturnRows(rows)

	nodes, err := repo.LoadNodes(context.Background())
	require.NoError(t, err)
	require.Len(t, nodes, 2)

	assert.Equal(t, models.KindFolder, nodes[0].Kind)
	assert.Equal(t, int64(5), nodes[1].ID)
	assert.Equal(t, int64(2), nodes[1].ParentID)
	assert.Equal(t, "https://go.dev/", nodes[1].URL)
	assert.Equal(t, []byte("icon"), nodes[1].Favicon)
	assert.Nil(t, nodes[0].Favicon)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadNodes_QueryError(t *testing.T) {
	db, mock := newTestDB(t, config.DriverSQLite)
	repo := NewBookmarkRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM bookmark_nodes").WillReturnError(errors.New("boom"))

	_, err := repo.LoadNodes(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestLoadNodes_ScanError(t *testing.T) {
	db, mock := newTestDB(t, config.DriverSQLite)
	repo := NewBookmarkRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM bookmark_nodes").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	_, err := repo.LoadNodes(context.Background())
	assert.ErrorIs(t, err, ErrScanningRow)
}

// ── LoadEntities ──────────────────────────────────────────────────────────────

func TestLoadEntities_Success(t *testing.T) {
	db, mock := newTestDB(t, config.DriverPostgres)
	repo := NewBookmarkRepository(db, logger.Nop())

	specifics := models.BookmarkSpecifics{GUID: "g", Kind: models.KindFolder, FullTitle: "Work", Position: position.Initial("")}
	raw, err := json.Marshal(specifics)
	require.NoError(t, err)
	now := time.Now().UTC()

	rows := sqlmock.NewRows(entityColumns).
		AddRow(7, "s-7", -1, now, string(raw), "hash", 1, 0)
	mock.ExpectQuery("SELECT (.+) FROM sync_entities ORDER BY node_id").WillReturnRows(rows)

	entities, err := repo.LoadEntities(context.Background())
	require.NoError(t, err)
	require.Len(t, entities, 1)

	e := entities[0]
	assert.Equal(t, int64(7), e.NodeID)
	assert.Equal(t, models.UncommittedVersion, e.Version)
	assert.Equal(t, "Work", e.Specifics.FullTitle)
	assert.True(t, e.IsUnsynced())
}

func TestLoadEntities_BadSpecifics(t *testing.T) {
	db, mock := newTestDB(t, config.DriverSQLite)
	repo := NewBookmarkRepository(db, logger.Nop())

	rows := sqlmock.NewRows(entityColumns).
		AddRow(7, "s-7", 1, time.Now(), "{not json", "hash", 0, 0)
	mock.ExpectQuery("SELECT (.+) FROM sync_entities").WillReturnRows(rows)

	_, err := repo.LoadEntities(context.Background())
	assert.ErrorIs(t, err, ErrScanningRow)
}

// ── SaveSnapshot ──────────────────────────────────────────────────────────────

func snapshotFixture() ([]models.BookmarkNode, []models.SyncEntity) {
	nodes := NewBookmarkTree().Nodes()
	entities := []models.SyncEntity{{NodeID: 2, ServerID: "s-2", Version: 1, CreationTime: time.Now()}}
	return nodes, entities
}

func TestSaveSnapshot_Success(t *testing.T) {
	db, mock := newTestDB(t, config.DriverSQLite)
	repo := NewBookmarkRepository(db, logger.Nop())
	nodes, entities := snapshotFixture()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM sync_entities").WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM bookmark_nodes").WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec("INSERT INTO bookmark_nodes").WillReturnResult(sqlmock.NewResult(0, int64(len(nodes))))
	mock.ExpectExec("INSERT INTO sync_entities").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.SaveSnapshot(context.Background(), nodes, entities))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSnapshot_BatchesInserts(t *testing.T) {
	db, mock := newTestDB(t, config.DriverSQLite)
	repo := NewBookmarkRepository(db, logger.Nop())

	nodes := make([]models.BookmarkNode, insertBatchSize+1)
	for i := range nodes {
		nodes[i] = models.BookmarkNode{ID: int64(i + 1), GUID: string(rune('a' + i%26)), Kind: models.KindFolder}
	}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM sync_entities").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM bookmark_nodes").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO bookmark_nodes").WillReturnResult(sqlmock.NewResult(0, insertBatchSize))
	mock.ExpectExec("INSERT INTO bookmark_nodes").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.SaveSnapshot(context.Background(), nodes, nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSnapshot_UniqueViolationRollsBack(t *testing.T) {
	db, mock := newTestDB(t, config.DriverPostgres)
	repo := NewBookmarkRepository(db, logger.Nop())
	nodes, entities := snapshotFixture()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM sync_entities").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM bookmark_nodes").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO bookmark_nodes").WillReturnError(pgError(pgerrcode.UniqueViolation))
	mock.ExpectRollback()

	err := repo.SaveSnapshot(context.Background(), nodes, entities)
	assert.ErrorIs(t, err, ErrDuplicateGUID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSnapshot_RetriesTransientErrors(t *testing.T) {
	db, mock := newTestDB(t, config.DriverPostgres)
	repo := NewBookmarkRepository(db, logger.Nop())
	nodes, entities := snapshotFixture()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM sync_entities").WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectRollback()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM sync_entities").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM bookmark_nodes").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO bookmark_nodes").WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec("INSERT INTO sync_entities").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.SaveSnapshot(context.Background(), nodes, entities))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSnapshot_BeginError(t *testing.T) {
	db, mock := newTestDB(t, config.DriverSQLite)
	repo := NewBookmarkRepository(db, logger.Nop())

	mock.ExpectBegin().WillReturnError(sql.ErrConnDone)

	err := repo.SaveSnapshot(context.Background(), nil, nil)
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

// ── placeholders ──────────────────────────────────────────────────────────────

func TestBuilderPlaceholders(t *testing.T) {
	sqlite, _ := newTestDB(t, config.DriverSQLite)
	pg, _ := newTestDB(t, config.DriverPostgres)

	q, args, err := buildSelectFaviconQuery(sqlite.builder, "https://go.dev/")
	require.NoError(t, err)
	assert.Contains(t, q, "page_url = ?")
	assert.Equal(t, []any{"https://go.dev/"}, args)

	q, _, err = buildSelectFaviconQuery(pg.builder, "https://go.dev/")
	require.NoError(t, err)
	assert.Contains(t, q, "page_url = $1")
}

func TestNewConnect_UnsupportedDriver(t *testing.T) {
	_, err := NewConnect(context.Background(), config.DB{Driver: "mysql"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}
