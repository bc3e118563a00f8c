package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

// DetailResponse is the error body shape the storefront expects.
type DetailResponse struct {
	Detail string `json:"detail"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already written; nothing useful left to do.
		return
	}
}

// writeDetail writes an error response in the {"detail": ...} shape.
func writeDetail(w http.ResponseWriter, status int, detail string, logger zerolog.Logger) {
	logger.Debug().Str("detail", detail).Int("status", status).Msg("handler error response")
	writeJSON(w, status, DetailResponse{Detail: detail})
}
