package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Message   string    `json:"message"`
	Error     string    `json:"error"`
	Timestamp time.Time `json:"timestamp"`
	Path      string    `json:"path"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}, logger *zap.SugaredLogger) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Errorw("failed to encode response", "error", err)
	}
}

func writeErrorResponse(w http.ResponseWriter, r *http.Request, status int, code, message string, logger *zap.SugaredLogger) {
	writeJSON(w, status, errorResponse{
		Message:   message,
		Error:     code,
		Timestamp: time.Now().UTC(),
		Path:      r.URL.Path,
	}, logger)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}
