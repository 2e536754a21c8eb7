package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"expenses/internal/models"
)

// messageResponse is the uniform error (and confirmation) envelope.
type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Message: message})
}

// writeInternalError logs the real error and sends an opaque 500.
// SQL and stack detail never reach the client.
func writeInternalError(w http.ResponseWriter, op string, err error) {
	slog.Error("Request failed", "op", op, "error", err)
	writeMessage(w, http.StatusInternalServerError, "Internal server error")
}

// decodeJSON parses a request body. Amount validation errors surface
// with their own message; everything else malformed gets a generic one.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, models.ErrInvalidAmount) {
			return models.ErrInvalidAmount
		}
		return errors.New("invalid request body")
	}
	return nil
}

// formatTime renders a Unix timestamp as RFC 3339 UTC.
func formatTime(unix int64) string {
	return time.Unix(unix, 0).UTC().Format(time.RFC3339)
}

// parseTime accepts RFC 3339 or a zone-less local datetime
// ("2006-01-02T15:04:05") and returns a Unix timestamp.
func parseTime(s string) (int64, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Unix(), nil
	}
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return t.Unix(), nil
	}
	return 0, fmt.Errorf("invalid datetime %q", s)
}
