package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/voteverse/internal/core/domain"
	"github.com/vncsmyrnk/voteverse/internal/core/ports"
)

type BallotHandler struct {
	service ports.BallotService
}

func NewBallotHandler(service ports.BallotService) *BallotHandler {
	return &BallotHandler{
		service: service,
	}
}

type submitBallotRequest struct {
	Selections map[string]uuid.UUID `json:"selections"`
}

func (h *BallotHandler) Submit(w http.ResponseWriter, r *http.Request) {
	identity, ok := r.Context().Value(IdentityKey).(*domain.Identity)
	if !ok {
		http.Error(w, "Unauthorized: missing user context", http.StatusUnauthorized)
		return
	}

	var req submitBallotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	input := ports.SubmitBallotInput{
		Voter:      identity,
		Selections: req.Selections,
	}

	record, err := h.service.SubmitBallot(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrNotAuthenticated) {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		if errors.Is(err, domain.ErrVotingClosed) || errors.Is(err, domain.ErrAlreadyVoted) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		if errors.Is(err, domain.ErrIncompleteBallot) {
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

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(record); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
