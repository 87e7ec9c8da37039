package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/voteverse/internal/core/domain"
)

func TestSignInRequiresCredentials(t *testing.T) {
	sessionRepo, electionRepo := newTestRepos(t)
	svc := NewSessionService(sessionRepo, electionRepo)

	_, err := svc.SignIn(context.Background(), "", "secret")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.SignIn(context.Background(), "jane@university.edu", "")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestSignInDerivesRoleFromEmail(t *testing.T) {
	sessionRepo, electionRepo := newTestRepos(t)
	svc := NewSessionService(sessionRepo, electionRepo)

	admin, err := svc.SignIn(context.Background(), "admin@university.edu", "x")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, admin.Role)
	assert.Equal(t, "admin-1", admin.ID)
	assert.Equal(t, "ADMIN001", admin.StudentID)
	assert.Equal(t, "System Administrator", admin.Name)

	lecturer, err := svc.SignIn(context.Background(), "lecturer.smith@university.edu", "x")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleLecturer, lecturer.Role)
	assert.True(t, strings.HasPrefix(lecturer.ID, "lecturer-"))
	assert.Equal(t, "Dr. .smith", lecturer.Name)

	candidate, err := svc.SignIn(context.Background(), "jane.candidate@x.edu", "x")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCandidate, candidate.Role)
	assert.True(t, strings.HasPrefix(candidate.ID, "candidate-"))

	voter, err := svc.SignIn(context.Background(), "bob@university.edu", "x")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleVoter, voter.Role)
	assert.True(t, strings.HasPrefix(voter.ID, "voter-"))
	assert.Equal(t, "bob", voter.Name)
}

func TestSignInDerivesHasVotedFromRecords(t *testing.T) {
	sessionRepo, electionRepo := newTestRepos(t)
	svc := NewSessionService(sessionRepo, electionRepo)

	first, err := svc.SignIn(context.Background(), "bob@university.edu", "x")
	require.NoError(t, err)
	assert.False(t, first.HasVoted)

	record := &domain.VotingRecord{
		VoterEmail: "bob@university.edu",
		VoterID:    first.ID,
		Timestamp:  time.Now(),
	}
	require.NoError(t, electionRepo.CommitBallot(context.Background(), nil, record))

	// Has-voted follows the email, not the per-login id.
	second, err := svc.SignIn(context.Background(), "bob@university.edu", "x")
	require.NoError(t, err)
	assert.True(t, second.HasVoted)
}

func TestRestoreSession(t *testing.T) {
	sessionRepo, electionRepo := newTestRepos(t)
	svc := NewSessionService(sessionRepo, electionRepo)

	restored, err := svc.RestoreSession(context.Background())
	require.NoError(t, err)
	assert.Nil(t, restored)

	signedIn, err := svc.SignIn(context.Background(), "bob@university.edu", "x")
	require.NoError(t, err)

	restored, err = svc.RestoreSession(context.Background())
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.Equal(t, signedIn.ID, restored.ID)
	assert.Equal(t, signedIn.Email, restored.Email)
	assert.False(t, restored.HasVoted)
}

func TestSignOutClearsSession(t *testing.T) {
	sessionRepo, electionRepo := newTestRepos(t)
	svc := NewSessionService(sessionRepo, electionRepo)

	_, err := svc.SignIn(context.Background(), "bob@university.edu", "x")
	require.NoError(t, err)

	require.NoError(t, svc.SignOut(context.Background()))

	restored, err := svc.RestoreSession(context.Background())
	require.NoError(t, err)
	assert.Nil(t, restored)
}
