package badgerdb

import (
	"context"
	"testing"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/voteverse/internal/core/domain"
)

func newCandidate(name, position string) *domain.Candidate {
	return &domain.Candidate{
		ID:        uuid.New(),
		Name:      name,
		Position:  position,
		Party:     "Test Party",
		Approved:  true,
		CreatedAt: time.Now(),
	}
}

func newVote(voterID string, candidateID uuid.UUID, position string) *domain.Vote {
	return &domain.Vote{
		ID:          uuid.New(),
		VoterID:     voterID,
		CandidateID: candidateID,
		Position:    position,
		Timestamp:   time.Now(),
		Encrypted:   true,
	}
}

func TestPersistenceAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := Open(dir)
	require.NoError(t, err)

	repo := NewElectionRepository(store)
	candidate := newCandidate("Sarah Johnson", "President")
	require.NoError(t, repo.SaveCandidate(context.Background(), candidate))
	require.NoError(t, repo.AppendVote(context.Background(), newVote("voter-1", candidate.ID, "President")))
	require.NoError(t, repo.SetVotingOpen(context.Background(), false))
	require.NoError(t, repo.CommitBallot(context.Background(), nil, &domain.VotingRecord{
		VoterEmail: "bob@university.edu",
		VoterID:    "voter-1",
		Timestamp:  time.Now(),
	}))
	require.NoError(t, store.Close())

	store, err = Open(dir)
	require.NoError(t, err)
	defer store.Close()

	repo = NewElectionRepository(store)

	roster, err := repo.ListCandidates(context.Background())
	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Equal(t, candidate.ID, roster[0].ID)
	assert.EqualValues(t, 1, roster[0].VoteCount)

	votes, err := repo.ListVotes(context.Background())
	require.NoError(t, err)
	assert.Len(t, votes, 1)

	open, err := repo.VotingOpen(context.Background())
	require.NoError(t, err)
	assert.False(t, open)

	hasRecord, err := repo.HasVotingRecord(context.Background(), "bob@university.edu")
	require.NoError(t, err)
	assert.True(t, hasRecord)
}

func TestVotingOpenDefaultsTrue(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	open, err := NewElectionRepository(store).VotingOpen(context.Background())
	require.NoError(t, err)
	assert.True(t, open)
}

func TestRecountHealsDriftedCounts(t *testing.T) {
	dir := t.TempDir()

	store, err := Open(dir)
	require.NoError(t, err)

	repo := NewElectionRepository(store)
	candidate := newCandidate("Sarah Johnson", "President")
	require.NoError(t, repo.SaveCandidate(context.Background(), candidate))
	require.NoError(t, repo.AppendVote(context.Background(), newVote("voter-1", candidate.ID, "President")))

	// Overwrite the materialized count with a wrong value.
	candidate.VoteCount = 99
	require.NoError(t, repo.SaveCandidate(context.Background(), candidate))
	require.NoError(t, store.Close())

	store, err = Open(dir)
	require.NoError(t, err)
	defer store.Close()

	roster, err := NewElectionRepository(store).ListCandidates(context.Background())
	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.EqualValues(t, 1, roster[0].VoteCount)
}

func TestCorruptIdentitySnapshotDiscarded(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyCurrentIdentity), []byte("{not json"))
	}))

	repo := NewSessionRepository(store)

	identity, err := repo.LoadIdentity(context.Background())
	require.NoError(t, err)
	assert.Nil(t, identity)

	// The corrupt snapshot was dropped, not just skipped.
	err = store.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(keyCurrentIdentity))
		return err
	})
	assert.ErrorIs(t, err, badger.ErrKeyNotFound)
}

func TestIdentityRoundTrip(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	repo := NewSessionRepository(store)

	identity := &domain.Identity{
		ID:        "voter-1700000000000",
		Email:     "bob@university.edu",
		Name:      "bob",
		StudentID: "STU1234",
		Role:      domain.RoleVoter,
	}
	require.NoError(t, repo.SaveIdentity(context.Background(), identity))

	loaded, err := repo.LoadIdentity(context.Background())
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, identity, loaded)

	require.NoError(t, repo.ClearIdentity(context.Background()))

	loaded, err = repo.LoadIdentity(context.Background())
	require.NoError(t, err)
	assert.Nil(t, loaded)
}
