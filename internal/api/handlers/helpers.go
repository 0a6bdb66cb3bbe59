package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"site-finder-service/internal/adapters/upstream"
	"site-finder-service/internal/domain"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.ErrorContext(r.Context(), "encode failed", "method", r.Method, "path", r.URL.Path, "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

func requireGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet {
		return true
	}
	w.Header().Set("Allow", http.MethodGet)
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	return false
}

// writeServiceError maps a failed query onto a status code and a client-safe message.
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrSystemNotFound):
		writeError(w, r, http.StatusNotFound, "reference system not found")
	case errors.Is(err, domain.ErrQueryTooShort):
		writeError(w, r, http.StatusBadRequest, "query must be at least 2 characters")
	case errors.Is(err, domain.ErrMalformedRecord),
		errors.Is(err, domain.ErrInvalidCoordinates),
		errors.Is(err, upstream.ErrUpstream):
		slog.ErrorContext(r.Context(), op+" failed", "err", err)
		writeError(w, r, http.StatusBadGateway, "upstream data source failed")
	default:
		slog.ErrorContext(r.Context(), op+" failed", "err", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}
