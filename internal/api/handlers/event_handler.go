package handlers

import (
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"wardrobe-api/internal/services"
)

const defaultEventLimit = 50

// EventHandler handles HTTP requests for the audit trail.
type EventHandler struct {
	service services.EventServiceProvider
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(service services.EventServiceProvider) *EventHandler {
	return &EventHandler{service: service}
}

// GetRecent handles the request to list the most recent audit events. The
// optional limit query parameter caps the result size.
func (h *EventHandler) GetRecent(w http.ResponseWriter, r *http.Request) {
	limit := defaultEventLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	events, err := h.service.GetRecentEvents(limit)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list audit events")
		RespondError(w, err)
		return
	}

	RespondJSON(w, http.StatusOK, events)
}
