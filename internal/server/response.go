package server

import (
	"encoding/json"
	"net/http"

	"github.com/sozercan/ai-copywriter/apimodels"
)

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) error {
	return writeJSON(w, status, apimodels.ErrorResponse{Error: message})
}
