package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-bookmark-merger/internal/logger"
	"github.com/MKhiriev/go-bookmark-merger/internal/mock"
	"github.com/MKhiriev/go-bookmark-merger/internal/service"
	"github.com/MKhiriev/go-bookmark-merger/internal/store"
	"github.com/MKhiriev/go-bookmark-merger/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type handlerFixture struct {
	sync    *mock.MockInitialSyncService
	appInfo *mock.MockAppInfoService
	handler *Handler
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &handlerFixture{
		sync:    mock.NewMockInitialSyncService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}
	f.handler = NewHandler(&service.Services{
		InitialSyncService: f.sync,
		AppInfoService:     f.appInfo,
	}, logger.Nop())
	return f
}

func serve(t *testing.T, h *Handler, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// ─────────────────────────────────────────────
// Routes
// ─────────────────────────────────────────────

func TestInit_UnknownRouteReturns404(t *testing.T) {
	f := newHandlerFixture(t)

	rec := serve(t, f.handler, http.MethodGet, "/api/nonexistent", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/version/"},
		{http.MethodDelete, "/api/bookmarks"},
		{http.MethodGet, "/api/sync/merge"},
		{http.MethodPut, "/api/sync/entities"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			f := newHandlerFixture(t)
			rec := serve(t, f.handler, tt.method, tt.path, nil)
			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

// ─────────────────────────────────────────────
// Version
// ─────────────────────────────────────────────

func TestGetServerVersion(t *testing.T) {
	f := newHandlerFixture(t)
	f.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v2.0.0-beta+build.42")

	rec := serve(t, f.handler, http.MethodGet, "/api/version/", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "v2.0.0-beta+build.42", rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
}

func TestGetServerVersion_JSONBuildInfo(t *testing.T) {
	f := newHandlerFixture(t)
	f.appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(models.NewAppBuildInfo("1.4.0", "2026-10-01", "abc123"))

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	f.handler.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"version":"1.4.0","date":"2026-10-01","commit":"abc123"}`, rec.Body.String())
}

// ─────────────────────────────────────────────
// Bookmarks and entities
// ─────────────────────────────────────────────

func TestGetBookmarks(t *testing.T) {
	f := newHandlerFixture(t)

	tree := &models.BookmarkTreeNode{
		BookmarkNode: models.BookmarkNode{ID: 1, GUID: models.RootGUID, Kind: models.KindFolder},
		Children: []*models.BookmarkTreeNode{
			{BookmarkNode: models.BookmarkNode{ID: 2, GUID: models.BookmarkBar.GUID(), Kind: models.KindFolder, Title: "Bookmarks bar"}},
		},
	}
	f.sync.EXPECT().Bookmarks(gomock.Any()).Return(tree)

	rec := serve(t, f.handler, http.MethodGet, "/api/bookmarks", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got models.BookmarkTreeNode
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Children, 1)
	assert.Equal(t, "Bookmarks bar", got.Children[0].Title)
}

func TestGetSyncEntities(t *testing.T) {
	f := newHandlerFixture(t)

	entities := []models.SyncEntity{
		{NodeID: 2, ServerID: "server-bar", Version: 1},
		{NodeID: 5, ServerID: "local-1", Version: models.UncommittedVersion, SequenceNumber: 1},
	}
	f.sync.EXPECT().Entities(gomock.Any()).Return(entities)

	rec := serve(t, f.handler, http.MethodGet, "/api/sync/entities", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.EntitiesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 2, got.Length)
	assert.Equal(t, "local-1", got.Entities[1].ServerID)
}

// ─────────────────────────────────────────────
// Merge
// ─────────────────────────────────────────────

func TestMergeUpdates_Table(t *testing.T) {
	updates := []models.RemoteUpdate{{ServerID: "server-bar", ServerDefinedUniqueTag: "bookmark_bar"}}
	body, err := json.Marshal(models.UpdatesEnvelope{Updates: updates})
	require.NoError(t, err)

	tests := []struct {
		name       string
		body       []byte
		setup      func(f *handlerFixture)
		wantStatus int
	}{
		{
			name: "merged",
			body: body,
			setup: func(f *handlerFixture) {
				f.sync.EXPECT().MergeUpdates(gomock.Any(), updates).
					Return(models.MergeReport{Updates: 1, GUIDMatches: 0}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "already synced",
			body: body,
			setup: func(f *handlerFixture) {
				f.sync.EXPECT().MergeUpdates(gomock.Any(), gomock.Any()).
					Return(models.MergeReport{}, service.ErrAlreadySynced)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "duplicate local guid",
			body: body,
			setup: func(f *handlerFixture) {
				f.sync.EXPECT().MergeUpdates(gomock.Any(), gomock.Any()).
					Return(models.MergeReport{}, fmt.Errorf("%w: %s", service.ErrDuplicateLocalGUID, "x"))
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "persistence failure",
			body: body,
			setup: func(f *handlerFixture) {
				f.sync.EXPECT().MergeUpdates(gomock.Any(), gomock.Any()).
					Return(models.MergeReport{}, fmt.Errorf("save: %w", store.ErrCommitingTransaction))
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "invalid json",
			body:       []byte(`{"updates": [`),
			setup:      func(f *handlerFixture) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			tt.setup(f)

			rec := serve(t, f.handler, http.MethodPost, "/api/sync/merge", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestMergeUpdates_ReturnsReport(t *testing.T) {
	f := newHandlerFixture(t)
	f.sync.EXPECT().MergeUpdates(gomock.Any(), gomock.Any()).
		Return(models.MergeReport{Updates: 3, RemoteCreations: 2, Orphans: 1}, nil)

	rec := serve(t, f.handler, http.MethodPost, "/api/sync/merge", []byte(`{"updates":[]}`))

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.MergeReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 3, got.Updates)
	assert.Equal(t, 2, got.RemoteCreations)
	assert.Equal(t, 1, got.Orphans)
}

// ─────────────────────────────────────────────
// Error mapping
// ─────────────────────────────────────────────

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrAlreadySynced, http.StatusConflict},
		{fmt.Errorf("wrapped: %w", service.ErrNoUpdateSource), http.StatusServiceUnavailable},
		{store.ErrDuplicateGUID, http.StatusConflict},
		{errors.New("unknown"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

// ─────────────────────────────────────────────
// Middleware
// ─────────────────────────────────────────────

func TestWithTraceID(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	tests := []struct {
		name    string
		traceID string
	}{
		{name: "generated", traceID: ""},
		{name: "propagated", traceID: "caller-trace-id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var nextCalled bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				assert.NotNil(t, logger.FromRequest(r))
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.traceID != "" {
				req.Header.Set(traceIDHeader, tt.traceID)
			}
			rec := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rec, req)

			require.True(t, nextCalled)
			got := rec.Header().Get(traceIDHeader)
			if tt.traceID != "" {
				assert.Equal(t, tt.traceID, got)
				return
			}
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}

func TestWithLogging_RecordsStatusAndSize(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("hello"))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/sync/merge", nil)
	rec := httptest.NewRecorder()
	h.withTraceID(h.withLogging(next)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	out := buf.String()
	assert.True(t, strings.Contains(out, `"status":201`), out)
	assert.True(t, strings.Contains(out, `"size":5`), out)
	assert.True(t, strings.Contains(out, `"trace_id"`), out)
}

func TestResponseWriter_HeaderWrittenOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	rw.WriteHeader(http.StatusAccepted)
	rw.WriteHeader(http.StatusTeapot)
	_, err := rw.Write([]byte("ok"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusAccepted, rw.status)
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 2, rw.size)
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	rw := &responseWriter{ResponseWriter: httptest.NewRecorder()}

	_, _ = rw.Write([]byte("abc"))
	assert.Equal(t, http.StatusOK, rw.status)
}
