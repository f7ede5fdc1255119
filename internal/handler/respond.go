package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pcharbonneau/muniboard/internal/domain"
)

// errorDetail is the machine-readable half of an error response.
type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorResponse is the envelope every non-2xx JSON body uses.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

// respondJSON writes v as the JSON response body with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// decodeJSON reads the request body into v, rejecting unknown fields so
// typos in rule payloads fail loudly instead of silently defaulting.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// respondError maps a service error to the HTTP status the sentinel implies:
// 404 for domain.ErrNotFound, 422 for domain.ErrValidation, 500 otherwise.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondJSON(w, http.StatusNotFound, errorResponse{
			Error: errorDetail{Code: "not_found", Message: "resource not found"},
		})
	case errors.Is(err, domain.ErrValidation):
		respondJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error: errorDetail{Code: "validation_error", Message: unwrapMessage(err)},
		})
	default:
		slog.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		respondJSON(w, http.StatusInternalServerError, errorResponse{
			Error: errorDetail{Code: "internal_error", Message: "internal server error"},
		})
	}
}

// respondBadRequest rejects a request before it reaches the service layer
// (malformed body, bad query parameter, bad ID).
func respondBadRequest(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusBadRequest, errorResponse{
		Error: errorDetail{Code: "bad_request", Message: message},
	})
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel
// error, e.g. "service.ZoneService.Delete: validation error: a municipality
// must have at least one zone" → "a municipality must have at least one zone".
func unwrapMessage(err error) string {
	msg := err.Error()
	const marker = "validation error: "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}

// todayParam resolves the reference date for a projection request: an
// explicit ?today=YYYY-MM-DD wins (residents previewing, tests pinning a
// date), otherwise the server's current calendar date.
func todayParam(r *http.Request) (domain.Date, error) {
	if s := r.URL.Query().Get("today"); s != "" {
		return domain.ParseDate(s)
	}
	return domain.Today(time.Local), nil
}

// intParam parses an optional integer query parameter, returning nil when
// absent or malformed.
func intParam(r *http.Request, name string) *int {
	s := r.URL.Query().Get(name)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}
