package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/voteverse/internal/adapters/repository/badgerdb"
	"github.com/vncsmyrnk/voteverse/internal/core/domain"
	"github.com/vncsmyrnk/voteverse/internal/core/ports"
)

func newTestRepos(t *testing.T) (ports.SessionRepository, ports.ElectionRepository) {
	t.Helper()

	store, err := badgerdb.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return badgerdb.NewSessionRepository(store), badgerdb.NewElectionRepository(store)
}

func registerApproved(t *testing.T, svc ports.ElectionService, name, position string) *domain.Candidate {
	t.Helper()

	candidate, err := svc.RegisterCandidate(context.Background(), ports.RegisterCandidateInput{
		Name:     name,
		Position: position,
		Party:    "Test Party",
	})
	require.NoError(t, err)
	require.NoError(t, svc.ApproveCandidate(context.Background(), candidate.ID.String()))
	return candidate
}
