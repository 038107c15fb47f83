package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/apratimrana/FInTracker/internal/core"
)

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed encoding JSON response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message, details string) {
	writeJSON(w, status, errorResponse{Error: message, Details: details})
}

// handleStoreError maps domain errors onto the API's status codes: a
// validation failure is the caller's fault, a missing transaction is 404,
// anything else is a server error with the given message.
func (s *Server) handleStoreError(w http.ResponseWriter, r *http.Request, err error, serverMessage string) {
	var ve *core.ValidationError
	if errors.As(err, &ve) {
		writeError(w, http.StatusBadRequest, ve.Message, ve.Details)
		return
	}
	var nf *core.NotFoundError
	if errors.As(err, &nf) {
		writeError(w, http.StatusNotFound, nf.Error(), "")
		return
	}
	slog.ErrorContext(r.Context(), "Store operation failed", "error", err, "method", r.Method, "path", r.URL.Path)
	writeError(w, http.StatusInternalServerError, serverMessage, err.Error())
}

// requestMonth returns the month the request targets: an explicit, valid
// ?month=YYYY-MM query value, otherwise the current calendar month.
func requestMonth(r *http.Request) string {
	if v := r.URL.Query().Get("month"); v != "" {
		if _, err := time.Parse(core.MonthLayout, v); err == nil {
			return v
		}
		slog.WarnContext(r.Context(), "Ignoring invalid month parameter", "month", v)
	}
	return core.MonthOf(time.Now())
}
