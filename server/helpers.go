package server

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/railboard/railboard/internal/errors"
)

const (
	contentTypeHTML = "text/html; charset=utf-8"
	contentTypeJSON = "application/json; charset=utf-8"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Err(err).Msg("Failed to encode JSON response")
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeAPIError maps the failure taxonomy onto the API's JSON error surface:
// 401 for a missing/unusable session, 500 for everything upstream.
func writeAPIError(w http.ResponseWriter, err error) {
	if errors.Is(err, errors.ErrNotAuthenticated) {
		writeJSONError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	log.Err(err).Msg("API request failed")
	writeJSONError(w, http.StatusInternalServerError, err.Error())
}
