package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/voteverse/internal/core/domain"
)

type SubmitBallotInput struct {
	Voter      *domain.Identity
	Selections map[string]uuid.UUID // position -> candidate id
}

type BallotService interface {
	SubmitBallot(ctx context.Context, input SubmitBallotInput) (*domain.VotingRecord, error)
}
