package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"wardrobe-api/internal/apperrors"
)

type errorBody struct {
	Message string `json:"message"`
}

// RespondJSON writes v as a JSON response with the given status.
func RespondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to encode response body")
	}
}

// RespondError is the single place errors become HTTP responses. Every
// authentication failure renders as 500 "Invalid Login" with no further
// detail; unknown ids and unmatched routes render 404; store conflicts render
// 409; everything else renders 500 with the error's message.
//
// Mapping authentication failures to 500 rather than 401/403 is a deliberate
// compatibility choice: clients of this API treat any 500 from a gated route
// as "check your credentials".
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrAuthentication):
		RespondJSON(w, http.StatusInternalServerError, errorBody{Message: "Invalid Login"})
	case errors.Is(err, apperrors.ErrNotFound):
		RespondJSON(w, http.StatusNotFound, errorBody{Message: err.Error()})
	case errors.Is(err, apperrors.ErrConflict):
		RespondJSON(w, http.StatusConflict, errorBody{Message: err.Error()})
	default:
		RespondJSON(w, http.StatusInternalServerError, errorBody{Message: err.Error()})
	}
}
