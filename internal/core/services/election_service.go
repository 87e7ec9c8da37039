package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/voteverse/internal/core/domain"
	"github.com/vncsmyrnk/voteverse/internal/core/ports"
)

type electionService struct {
	repo ports.ElectionRepository
}

func NewElectionService(repo ports.ElectionRepository) ports.ElectionService {
	return &electionService{
		repo: repo,
	}
}

func (s *electionService) RegisterCandidate(ctx context.Context, input ports.RegisterCandidateInput) (*domain.Candidate, error) {
	if input.Name == "" {
		return nil, errors.New("name is required")
	}
	if input.Position == "" {
		return nil, errors.New("position is required")
	}

	// Duplicate (name, position) registrations are allowed.
	candidate := &domain.Candidate{
		ID:        uuid.New(),
		Name:      input.Name,
		Position:  input.Position,
		Party:     input.Party,
		Manifesto: input.Manifesto,
		VoteCount: 0,
		Approved:  false,
		CreatedAt: time.Now(),
	}

	if err := s.repo.SaveCandidate(ctx, candidate); err != nil {
		return nil, err
	}

	return candidate, nil
}

func (s *electionService) ListCandidates(ctx context.Context) ([]*domain.Candidate, error) {
	return s.repo.ListCandidates(ctx)
}

// ApproveCandidate is idempotent; approving an already-approved
// candidate is a no-op.
func (s *electionService) ApproveCandidate(ctx context.Context, id string) error {
	candidateID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrInvalidCandidateID
	}

	candidate, err := s.repo.GetCandidate(ctx, candidateID)
	if err != nil {
		return err
	}
	if candidate == nil {
		return domain.ErrCandidateNotFound
	}
	if candidate.Approved {
		return nil
	}

	candidate.Approved = true
	return s.repo.SaveCandidate(ctx, candidate)
}

func (s *electionService) SetVotingOpen(ctx context.Context, open bool) error {
	return s.repo.SetVotingOpen(ctx, open)
}

func (s *electionService) VotingOpen(ctx context.Context) (bool, error) {
	return s.repo.VotingOpen(ctx)
}

// CastVote appends one ledger entry. It deliberately does not check
// whether the voter already voted; that policy belongs to the ballot
// workflow.
func (s *electionService) CastVote(ctx context.Context, input ports.CastVoteInput) error {
	open, err := s.repo.VotingOpen(ctx)
	if err != nil {
		return err
	}
	if !open {
		return domain.ErrVotingClosed
	}

	candidate, err := s.repo.GetCandidate(ctx, input.CandidateID)
	if err != nil {
		return err
	}
	if candidate == nil {
		return domain.ErrCandidateNotFound
	}

	vote := &domain.Vote{
		ID:          uuid.New(),
		VoterID:     input.VoterID,
		CandidateID: input.CandidateID,
		Position:    input.Position,
		Timestamp:   time.Now(),
		Encrypted:   true,
	}

	return s.repo.AppendVote(ctx, vote)
}

func (s *electionService) ResultsFor(ctx context.Context, position string) ([]*domain.Candidate, error) {
	candidates, err := s.repo.ListCandidates(ctx)
	if err != nil {
		return nil, err
	}
	return rankForPosition(candidates, position), nil
}

func (s *electionService) HasVoted(ctx context.Context, voterID string) (bool, error) {
	votes, err := s.repo.ListVotes(ctx)
	if err != nil {
		return false, err
	}
	for _, vote := range votes {
		if vote.VoterID == voterID {
			return true, nil
		}
	}
	return false, nil
}

// rankForPosition filters to approved candidates for the position and
// sorts by vote count descending. The sort is stable: on a tie the
// first-registered candidate keeps the higher rank.
func rankForPosition(candidates []*domain.Candidate, position string) []*domain.Candidate {
	var ranked []*domain.Candidate
	for _, c := range candidates {
		if c.Approved && c.Position == position {
			ranked = append(ranked, c)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].VoteCount > ranked[j].VoteCount
	})
	return ranked
}
