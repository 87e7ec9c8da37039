package http

import (
	"encoding/json"
	"net/http"

	"github.com/vncsmyrnk/voteverse/internal/core/ports"
)

type VotingHandler struct {
	service ports.ElectionService
}

func NewVotingHandler(service ports.ElectionService) *VotingHandler {
	return &VotingHandler{
		service: service,
	}
}

type votingStatusResponse struct {
	Open bool `json:"open"`
}

func (h *VotingHandler) Status(w http.ResponseWriter, r *http.Request) {
	open, err := h.service.VotingOpen(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(votingStatusResponse{Open: open}); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func (h *VotingHandler) SetOpen(w http.ResponseWriter, r *http.Request) {
	var req votingStatusResponse
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.SetVotingOpen(r.Context(), req.Open); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(votingStatusResponse{Open: req.Open}); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
