package http

import (
	"net/http"

	"github.com/MKhiriev/go-bookmark-merger/internal/utils"
)

func (h *Handler) getBookmarks(w http.ResponseWriter, r *http.Request) {
	tree := h.services.InitialSyncService.Bookmarks(r.Context())
	utils.WriteJSON(w, tree, http.StatusOK)
}
