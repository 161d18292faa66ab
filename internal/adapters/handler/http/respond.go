package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/pellam/jobboard/internal/adapters/validation"
	"github.com/pellam/jobboard/internal/core/domain"
)

type errorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			http.Error(w, "failed to encode response", http.StatusInternalServerError)
		}
	}
}

func respondError(w http.ResponseWriter, status int, msg string, details ...string) {
	respondJSON(w, status, errorResponse{Error: msg, Details: details})
}

// decodeValidated reads the request body, checks it against the named JSON
// Schema, and unmarshals it into out. Schema violations are reported to the
// client as 400 with the engine's error strings; the return value says
// whether the handler should continue.
func decodeValidated(w http.ResponseWriter, r *http.Request, schema string, out any) bool {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "failed to read request body")
		return false
	}

	violations, err := validation.Validate(body, schema)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if len(violations) > 0 {
		respondError(w, http.StatusBadRequest, "request body failed validation", violations...)
		return false
	}

	if err := json.Unmarshal(body, out); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// respondDomainError maps domain errors to HTTP status codes.
func respondDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrJobNotFound),
		errors.Is(err, domain.ErrPilotNotFound),
		errors.Is(err, domain.ErrFactionNotFound),
		errors.Is(err, domain.ErrPeriodNotFound),
		errors.Is(err, domain.ErrNoOngoingPeriod):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrOngoingPeriodExists),
		errors.Is(err, domain.ErrAlreadyVoted),
		errors.Is(err, domain.ErrPeriodArchived):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidPeriod),
		errors.Is(err, domain.ErrJobNotInPeriod),
		errors.Is(err, domain.ErrInvalidInput):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}
