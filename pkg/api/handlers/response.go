package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/marmos91/dittologin/internal/logger"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
)

// Response is the envelope of every API reply. Error is set exactly when
// Status is "unhealthy".
type Response struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data,omitempty"`
	Error     string    `json:"error,omitempty"`
}

func newResponse(data any, err error) Response {
	r := Response{Status: statusHealthy, Timestamp: time.Now().UTC(), Data: data}
	if err != nil {
		r.Status = statusUnhealthy
		r.Error = err.Error()
	}
	return r
}

// writeJSON sends body with the given status. Headers are already out when
// encoding fails, so the failure is only logged.
func writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn("Failed to encode API response", logger.KeyError, err)
	}
}
