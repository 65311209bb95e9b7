package webhook

import (
	"encoding/json"
	"net/http"

	logger "github.com/sirupsen/logrus"
)

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Errorf("Failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, code *ErrorCode) {
	respondJSON(w, code.StatusCode(), code)
}
