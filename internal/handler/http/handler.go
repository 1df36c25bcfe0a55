package http

import (
	"github.com/MKhiriev/go-bookmark-merger/internal/logger"
	"github.com/MKhiriev/go-bookmark-merger/internal/service"
)

// Handler serves the bookmark API on top of the services aggregate. Only
// InitialSyncService and AppInfoService are used.
type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{services: services, logger: logger}
}
