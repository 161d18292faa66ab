package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pellam/jobboard/internal/core/ports"
)

type PilotHandler struct {
	service ports.PilotService
}

func NewPilotHandler(service ports.PilotService) *PilotHandler {
	return &PilotHandler{service: service}
}

type pilotRequest struct {
	Name     string `json:"name"`
	Callsign string `json:"callsign"`
	Notes    string `json:"notes"`
}

func (h *PilotHandler) List(w http.ResponseWriter, r *http.Request) {
	pilots, err := h.service.List(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, pilots)
}

func (h *PilotHandler) Get(w http.ResponseWriter, r *http.Request) {
	pilot, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, pilot)
}

func (h *PilotHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req pilotRequest
	if !decodeValidated(w, r, "pilot", &req) {
		return
	}

	pilot, err := h.service.Create(r.Context(), ports.PilotInput{
		Name:     req.Name,
		Callsign: req.Callsign,
		Notes:    req.Notes,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, pilot)
}

func (h *PilotHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req pilotRequest
	if !decodeValidated(w, r, "pilot", &req) {
		return
	}

	pilot, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), ports.PilotInput{
		Name:     req.Name,
		Callsign: req.Callsign,
		Notes:    req.Notes,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, pilot)
}

func (h *PilotHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
