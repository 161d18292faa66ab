package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pellam/jobboard/internal/core/ports"
)

type VotingPeriodHandler struct {
	service ports.VotingPeriodService
}

func NewVotingPeriodHandler(service ports.VotingPeriodService) *VotingPeriodHandler {
	return &VotingPeriodHandler{service: service}
}

type createPeriodRequest struct {
	EndTime *string  `json:"endTime"`
	JobIDs  []string `json:"jobIds"`
}

type voteRequest struct {
	JobID   string `json:"jobId"`
	PilotID string `json:"pilotId"`
}

func (h *VotingPeriodHandler) List(w http.ResponseWriter, r *http.Request) {
	periods, err := h.service.List(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, periods)
}

func (h *VotingPeriodHandler) Ongoing(w http.ResponseWriter, r *http.Request) {
	period, err := h.service.Ongoing(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, period)
}

func (h *VotingPeriodHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPeriodRequest
	if !decodeValidated(w, r, "voting-period-create", &req) {
		return
	}

	period, err := h.service.Create(r.Context(), ports.CreatePeriodInput{
		EndTime: req.EndTime,
		JobIDs:  req.JobIDs,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, period)
}

func (h *VotingPeriodHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	var req voteRequest
	if !decodeValidated(w, r, "vote", &req) {
		return
	}

	period, err := h.service.CastVote(r.Context(), ports.CastVoteInput{
		JobID:   req.JobID,
		PilotID: req.PilotID,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, period)
}

func (h *VotingPeriodHandler) Archive(w http.ResponseWriter, r *http.Request) {
	period, err := h.service.Archive(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, period)
}
