package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pellam/jobboard/internal/core/domain"
	"github.com/pellam/jobboard/internal/core/ports"
)

type JobHandler struct {
	service ports.JobService
}

func NewJobHandler(service ports.JobService) *JobHandler {
	return &JobHandler{service: service}
}

type jobRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	FactionID   string          `json:"factionId"`
	Reward      string          `json:"reward"`
	State       domain.JobState `json:"state"`
}

func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.service.List(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, jobs)
}

func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	job, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, job)
}

func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req jobRequest
	if !decodeValidated(w, r, "job", &req) {
		return
	}

	job, err := h.service.Create(r.Context(), ports.CreateJobInput{
		Title:       req.Title,
		Description: req.Description,
		FactionID:   req.FactionID,
		Reward:      req.Reward,
		State:       req.State,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, job)
}

func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req jobRequest
	if !decodeValidated(w, r, "job", &req) {
		return
	}

	state := req.State
	if state == "" {
		state = domain.JobActive
	}
	job, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), ports.UpdateJobInput{
		Title:       req.Title,
		Description: req.Description,
		FactionID:   req.FactionID,
		Reward:      req.Reward,
		State:       state,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, job)
}

func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
