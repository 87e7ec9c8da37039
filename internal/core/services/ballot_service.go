package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/voteverse/internal/core/domain"
	"github.com/vncsmyrnk/voteverse/internal/core/ports"
)

type ballotService struct {
	repo ports.ElectionRepository
}

func NewBallotService(repo ports.ElectionRepository) ports.BallotService {
	return &ballotService{
		repo: repo,
	}
}

// SubmitBallot validates the whole ballot up front and then commits
// every vote plus the eligibility record in a single transaction, so
// a ballot can never be half-recorded.
func (s *ballotService) SubmitBallot(ctx context.Context, input ports.SubmitBallotInput) (*domain.VotingRecord, error) {
	if input.Voter == nil || input.Voter.ID == "" || input.Voter.Email == "" {
		return nil, domain.ErrNotAuthenticated
	}

	open, err := s.repo.VotingOpen(ctx)
	if err != nil {
		return nil, err
	}
	if !open {
		return nil, domain.ErrVotingClosed
	}

	// Eligibility is checked against the records directly, not the
	// possibly stale flag on the identity.
	alreadyVoted, err := s.repo.HasVotingRecord(ctx, input.Voter.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check voting records: %w", err)
	}
	if alreadyVoted {
		return nil, domain.ErrAlreadyVoted
	}

	candidates, err := s.repo.ListCandidates(ctx)
	if err != nil {
		return nil, err
	}

	approved := make(map[uuid.UUID]*domain.Candidate)
	positions := make(map[string]bool)
	for _, c := range candidates {
		if !c.Approved {
			continue
		}
		approved[c.ID] = c
		positions[c.Position] = true
	}

	if len(positions) == 0 {
		return nil, domain.ErrIncompleteBallot
	}
	for position := range positions {
		if _, ok := input.Selections[position]; !ok {
			return nil, domain.ErrIncompleteBallot
		}
	}

	now := time.Now()
	record := &domain.VotingRecord{
		VoterEmail: input.Voter.Email,
		VoterID:    input.Voter.ID,
		Timestamp:  now,
		Votes:      make(map[string]uuid.UUID, len(input.Selections)),
	}

	votes := make([]*domain.Vote, 0, len(input.Selections))
	for position, candidateID := range input.Selections {
		candidate, ok := approved[candidateID]
		if !ok || candidate.Position != position {
			return nil, domain.ErrCandidateNotFound
		}
		votes = append(votes, &domain.Vote{
			ID:          uuid.New(),
			VoterID:     input.Voter.ID,
			CandidateID: candidateID,
			Position:    position,
			Timestamp:   now,
			Encrypted:   true,
		})
		record.Votes[position] = candidateID
	}

	if err := s.repo.CommitBallot(ctx, votes, record); err != nil {
		return nil, fmt.Errorf("failed to commit ballot: %w", err)
	}

	return record, nil
}
