package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vncsmyrnk/voteverse/internal/core/domain"
	"github.com/vncsmyrnk/voteverse/internal/core/ports"
)

type CandidateHandler struct {
	service ports.ElectionService
}

func NewCandidateHandler(service ports.ElectionService) *CandidateHandler {
	return &CandidateHandler{
		service: service,
	}
}

type registerCandidateRequest struct {
	Name      string `json:"name"`
	Position  string `json:"position"`
	Party     string `json:"party"`
	Manifesto string `json:"manifesto"`
}

func (h *CandidateHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	input := ports.RegisterCandidateInput{
		Name:      req.Name,
		Position:  req.Position,
		Party:     req.Party,
		Manifesto: req.Manifesto,
	}

	candidate, err := h.service.RegisterCandidate(r.Context(), input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(candidate); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func (h *CandidateHandler) List(w http.ResponseWriter, r *http.Request) {
	candidates, err := h.service.ListCandidates(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if candidates == nil {
		candidates = []*domain.Candidate{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(candidates); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func (h *CandidateHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "missing candidate id", http.StatusBadRequest)
		return
	}

	if err := h.service.ApproveCandidate(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrInvalidCandidateID) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if errors.Is(err, domain.ErrCandidateNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
