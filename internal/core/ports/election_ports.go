package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/voteverse/internal/core/domain"
)

type ElectionRepository interface {
	// SaveCandidate inserts the candidate, or replaces it when the id
	// is already in the roster. Roster order is insertion order.
	SaveCandidate(ctx context.Context, candidate *domain.Candidate) error
	GetCandidate(ctx context.Context, id uuid.UUID) (*domain.Candidate, error)
	ListCandidates(ctx context.Context) ([]*domain.Candidate, error)
	// AppendVote appends to the ledger and increments the target
	// candidate's count in the same transaction.
	AppendVote(ctx context.Context, vote *domain.Vote) error
	ListVotes(ctx context.Context) ([]*domain.Vote, error)
	SetVotingOpen(ctx context.Context, open bool) error
	VotingOpen(ctx context.Context) (bool, error)
	HasVotingRecord(ctx context.Context, voterEmail string) (bool, error)
	ListVotingRecords(ctx context.Context) ([]*domain.VotingRecord, error)
	// CommitBallot writes every vote and the eligibility record in a
	// single transaction; either all of them land or none do.
	CommitBallot(ctx context.Context, votes []*domain.Vote, record *domain.VotingRecord) error
}

type RegisterCandidateInput struct {
	Name      string
	Position  string
	Party     string
	Manifesto string
}

type CastVoteInput struct {
	VoterID     string
	CandidateID uuid.UUID
	Position    string
}

type ElectionService interface {
	RegisterCandidate(ctx context.Context, input RegisterCandidateInput) (*domain.Candidate, error)
	ListCandidates(ctx context.Context) ([]*domain.Candidate, error)
	ApproveCandidate(ctx context.Context, id string) error
	SetVotingOpen(ctx context.Context, open bool) error
	VotingOpen(ctx context.Context) (bool, error)
	CastVote(ctx context.Context, input CastVoteInput) error
	ResultsFor(ctx context.Context, position string) ([]*domain.Candidate, error)
	HasVoted(ctx context.Context, voterID string) (bool, error)
}
