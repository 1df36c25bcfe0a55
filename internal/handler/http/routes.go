package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	router.Use(middleware.Compress(5, "application/json"))

	router.Get("/api/version/", h.getServerVersion)

	router.Get("/api/bookmarks", h.getBookmarks)

	router.Get("/api/sync/entities", h.getSyncEntities)
	router.Post("/api/sync/merge", h.mergeUpdates)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
