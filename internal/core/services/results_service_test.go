package services

import (
	"context"
	"encoding/json"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/voteverse/internal/core/domain"
	"github.com/vncsmyrnk/voteverse/internal/core/ports"
)

func TestResultsPercentages(t *testing.T) {
	_, electionRepo := newTestRepos(t)
	election := NewElectionService(electionRepo)
	results := NewResultsService(electionRepo)

	a := registerApproved(t, election, "Sarah Johnson", "President")
	b := registerApproved(t, election, "Michael Chen", "President")

	for i := 0; i < 3; i++ {
		require.NoError(t, election.CastVote(context.Background(), ports.CastVoteInput{
			VoterID: "v", CandidateID: a.ID, Position: "President",
		}))
	}
	for i := 0; i < 2; i++ {
		require.NoError(t, election.CastVote(context.Background(), ports.CastVoteInput{
			VoterID: "v", CandidateID: b.ID, Position: "President",
		}))
	}

	blocks, err := results.Results(context.Background())
	require.NoError(t, err)
	require.Len(t, blocks, 1)

	block := blocks[0]
	assert.Equal(t, "President", block.Position)
	assert.EqualValues(t, 5, block.TotalVotes)
	require.Len(t, block.Candidates, 2)

	assert.Equal(t, "Sarah Johnson", block.Candidates[0].Name)
	assert.EqualValues(t, 3, block.Candidates[0].Votes)
	assert.Equal(t, "60.00", block.Candidates[0].Percentage)

	assert.Equal(t, "Michael Chen", block.Candidates[1].Name)
	assert.EqualValues(t, 2, block.Candidates[1].Votes)
	assert.Equal(t, "40.00", block.Candidates[1].Percentage)
}

func TestResultsZeroVotesPosition(t *testing.T) {
	_, electionRepo := newTestRepos(t)
	election := NewElectionService(electionRepo)
	results := NewResultsService(electionRepo)

	registerApproved(t, election, "Lisa Park", "Secretary")

	blocks, err := results.Results(context.Background())
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.EqualValues(t, 0, blocks[0].TotalVotes)
	require.Len(t, blocks[0].Candidates, 1)
	assert.Equal(t, "0.00", blocks[0].Candidates[0].Percentage)
}

func TestExportRoundTrip(t *testing.T) {
	_, electionRepo := newTestRepos(t)
	election := NewElectionService(electionRepo)
	results := NewResultsService(electionRepo)

	a := registerApproved(t, election, "Sarah Johnson", "President")
	b := registerApproved(t, election, "Michael Chen", "President")
	c := registerApproved(t, election, "Lisa Park", "Secretary")

	for i := 0; i < 4; i++ {
		require.NoError(t, election.CastVote(context.Background(), ports.CastVoteInput{
			VoterID: "v", CandidateID: a.ID, Position: "President",
		}))
	}
	require.NoError(t, election.CastVote(context.Background(), ports.CastVoteInput{
		VoterID: "v", CandidateID: b.ID, Position: "President",
	}))
	require.NoError(t, election.CastVote(context.Background(), ports.CastVoteInput{
		VoterID: "v", CandidateID: c.ID, Position: "Secretary",
	}))

	data, err := results.Export(context.Background())
	require.NoError(t, err)

	var decoded []domain.PositionResult
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 2)

	for _, block := range decoded {
		var sum int64
		for _, candidate := range block.Candidates {
			sum += candidate.Votes

			pct, err := strconv.ParseFloat(candidate.Percentage, 64)
			require.NoError(t, err)
			want := float64(candidate.Votes) / float64(block.TotalVotes) * 100
			assert.InDelta(t, want, pct, 0.01)
		}
		assert.Equal(t, block.TotalVotes, sum, "ledger total must equal sum of candidate votes for %s", block.Position)
	}
}
