package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pellam/jobboard/internal/core/ports"
)

type FactionHandler struct {
	service ports.FactionService
}

func NewFactionHandler(service ports.FactionService) *FactionHandler {
	return &FactionHandler{service: service}
}

type factionRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Emblem      string `json:"emblem"`
}

func (h *FactionHandler) List(w http.ResponseWriter, r *http.Request) {
	factions, err := h.service.List(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, factions)
}

func (h *FactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	faction, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, faction)
}

func (h *FactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req factionRequest
	if !decodeValidated(w, r, "faction", &req) {
		return
	}

	faction, err := h.service.Create(r.Context(), ports.FactionInput{
		Name:        req.Name,
		Description: req.Description,
		Emblem:      req.Emblem,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, faction)
}

func (h *FactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req factionRequest
	if !decodeValidated(w, r, "faction", &req) {
		return
	}

	faction, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), ports.FactionInput{
		Name:        req.Name,
		Description: req.Description,
		Emblem:      req.Emblem,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, faction)
}

func (h *FactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
