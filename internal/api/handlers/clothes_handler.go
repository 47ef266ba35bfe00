package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"wardrobe-api/internal/apperrors"
	"wardrobe-api/internal/models"
	"wardrobe-api/internal/services"
)

// ClothesHandler handles HTTP requests for the clothes resource. The same
// handler serves both the open v1 surface and the bearer-gated v2 surface;
// gating is the router's concern.
type ClothesHandler struct {
	service services.ClothesServiceProvider
}

// NewClothesHandler creates a new ClothesHandler.
func NewClothesHandler(service services.ClothesServiceProvider) *ClothesHandler {
	return &ClothesHandler{service: service}
}

// ClothesPayload defines the structure for create and update requests.
type ClothesPayload struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Size  string `json:"size"`
}

// Create handles the request to create a new clothes record.
func (h *ClothesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload ClothesPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		RespondError(w, fmt.Errorf("%w: malformed request body", apperrors.ErrValidation))
		return
	}

	item, err := h.service.CreateClothes(models.Clothes{Name: payload.Name, Color: payload.Color, Size: payload.Size})
	if err != nil {
		log.Error().Err(err).Msg("Failed to create clothes record")
		RespondError(w, err)
		return
	}

	RespondJSON(w, http.StatusCreated, item)
}

// GetAll handles the request to list every clothes record.
func (h *ClothesHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.GetAllClothes()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list clothes records")
		RespondError(w, err)
		return
	}

	RespondJSON(w, http.StatusOK, items)
}

// Get handles the request to get a single clothes record by its id.
func (h *ClothesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := clothesID(r)
	if err != nil {
		RespondError(w, err)
		return
	}

	item, err := h.service.GetClothesByID(id)
	if err != nil {
		RespondError(w, err)
		return
	}

	RespondJSON(w, http.StatusOK, item)
}

// Update handles the request to replace an existing clothes record.
func (h *ClothesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := clothesID(r)
	if err != nil {
		RespondError(w, err)
		return
	}

	var payload ClothesPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		RespondError(w, fmt.Errorf("%w: malformed request body", apperrors.ErrValidation))
		return
	}

	item, err := h.service.UpdateClothes(id, models.Clothes{Name: payload.Name, Color: payload.Color, Size: payload.Size})
	if err != nil {
		log.Warn().Err(err).Int64("clothes_id", id).Msg("Failed to update clothes record")
		RespondError(w, err)
		return
	}

	RespondJSON(w, http.StatusAccepted, item)
}

// Delete handles the request to delete a clothes record. The response body is
// the number of rows removed, 0 or 1.
func (h *ClothesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := clothesID(r)
	if err != nil {
		RespondError(w, err)
		return
	}

	count, err := h.service.DeleteClothes(id)
	if err != nil {
		log.Error().Err(err).Int64("clothes_id", id).Msg("Failed to delete clothes record")
		RespondError(w, err)
		return
	}

	RespondJSON(w, http.StatusOK, count)
}

// clothesID parses the id route parameter. A non-numeric id never matches a
// record, so it reports not-found rather than a distinct error.
func clothesID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid clothes id", apperrors.ErrNotFound)
	}
	return id, nil
}
