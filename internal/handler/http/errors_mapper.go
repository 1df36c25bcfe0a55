package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-bookmark-merger/internal/service"
	"github.com/MKhiriev/go-bookmark-merger/internal/store"
	"github.com/MKhiriev/go-bookmark-merger/internal/tracker"
)

var errorStatusMap = map[error]int{
	service.ErrAlreadySynced:      http.StatusConflict,
	service.ErrDuplicateLocalGUID: http.StatusConflict,
	service.ErrNoUpdateSource:     http.StatusServiceUnavailable,
	service.ErrModelInvariant:     http.StatusInternalServerError,
	service.ErrTracker:            http.StatusInternalServerError,

	tracker.ErrDuplicateServerID: http.StatusConflict,

	store.ErrDuplicateGUID:        http.StatusConflict,
	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
