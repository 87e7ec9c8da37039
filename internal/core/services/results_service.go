package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vncsmyrnk/voteverse/internal/core/domain"
	"github.com/vncsmyrnk/voteverse/internal/core/ports"
)

type resultsService struct {
	repo ports.ElectionRepository
}

func NewResultsService(repo ports.ElectionRepository) ports.ResultsService {
	return &resultsService{
		repo: repo,
	}
}

// Results builds one block per distinct position, in roster order.
// Totals come from the ledger, ranking from the materialized counts.
func (s *resultsService) Results(ctx context.Context) ([]domain.PositionResult, error) {
	candidates, err := s.repo.ListCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	votes, err := s.repo.ListVotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list votes: %w", err)
	}

	var positions []string
	seen := make(map[string]bool)
	for _, c := range candidates {
		if !seen[c.Position] {
			seen[c.Position] = true
			positions = append(positions, c.Position)
		}
	}

	votesByPosition := make(map[string]int64)
	for _, vote := range votes {
		votesByPosition[vote.Position]++
	}

	results := make([]domain.PositionResult, 0, len(positions))
	for _, position := range positions {
		total := votesByPosition[position]
		block := domain.PositionResult{
			Position:   position,
			TotalVotes: total,
		}
		for _, c := range rankForPosition(candidates, position) {
			percentage := "0.00"
			if total > 0 {
				percentage = fmt.Sprintf("%.2f", float64(c.VoteCount)/float64(total)*100)
			}
			block.Candidates = append(block.Candidates, domain.CandidateResult{
				Name:       c.Name,
				Party:      c.Party,
				Votes:      c.VoteCount,
				Percentage: percentage,
			})
		}
		results = append(results, block)
	}

	return results, nil
}

func (s *resultsService) Export(ctx context.Context) ([]byte, error) {
	results, err := s.Results(ctx)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(results, "", "  ")
}
