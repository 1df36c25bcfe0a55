// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-bookmark-merger/internal/logger"
	"github.com/MKhiriev/go-bookmark-merger/internal/utils"
	"github.com/MKhiriev/go-bookmark-merger/models"
)

// maxMergeBodyBytes bounds the body of a merge request.
const maxMergeBodyBytes = 64 << 20

func (h *Handler) getSyncEntities(w http.ResponseWriter, r *http.Request) {
	entities := h.services.InitialSyncService.Entities(r.Context())

	response := models.EntitiesResponse{
		Entities: entities,
		Length:   len(entities),
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) mergeUpdates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var envelope models.UpdatesEnvelope
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxMergeBodyBytes)).Decode(&envelope); err != nil {
		log.Err(err).Str("func", "*Handler.mergeUpdates").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	report, err := h.services.InitialSyncService.MergeUpdates(ctx, envelope.Updates)
	if err != nil {
		log.Err(err).Str("func", "*Handler.mergeUpdates").Msg("error merging remote updates")
		http.Error(w, "error merging remote updates", statusFromError(err))
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}
