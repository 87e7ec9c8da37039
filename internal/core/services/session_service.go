package services

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/vncsmyrnk/voteverse/internal/core/domain"
	"github.com/vncsmyrnk/voteverse/internal/core/ports"
)

const (
	adminEmail     = "admin@university.edu"
	adminID        = "admin-1"
	adminStudentID = "ADMIN001"
)

type sessionService struct {
	sessionRepo  ports.SessionRepository
	electionRepo ports.ElectionRepository
}

func NewSessionService(sessionRepo ports.SessionRepository, electionRepo ports.ElectionRepository) ports.SessionService {
	return &sessionService{
		sessionRepo:  sessionRepo,
		electionRepo: electionRepo,
	}
}

// SignIn accepts any non-empty email/password pair; there is no real
// credential check in this demo. Role and display name are derived
// from the email string alone.
func (s *sessionService) SignIn(ctx context.Context, email, password string) (*domain.Identity, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	identity := buildIdentity(email)

	hasVoted, err := s.electionRepo.HasVotingRecord(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check voting records: %w", err)
	}
	identity.HasVoted = hasVoted

	if err := s.sessionRepo.SaveIdentity(ctx, identity); err != nil {
		return nil, fmt.Errorf("failed to persist identity: %w", err)
	}

	return identity, nil
}

func (s *sessionService) RestoreSession(ctx context.Context) (*domain.Identity, error) {
	identity, err := s.sessionRepo.LoadIdentity(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load identity: %w", err)
	}
	if identity == nil {
		return nil, nil
	}

	hasVoted, err := s.electionRepo.HasVotingRecord(ctx, identity.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check voting records: %w", err)
	}
	identity.HasVoted = hasVoted

	return identity, nil
}

func (s *sessionService) SignOut(ctx context.Context) error {
	return s.sessionRepo.ClearIdentity(ctx)
}

func buildIdentity(email string) *domain.Identity {
	if email == adminEmail {
		return &domain.Identity{
			ID:        adminID,
			Email:     email,
			Name:      "System Administrator",
			StudentID: adminStudentID,
			Role:      domain.RoleAdmin,
		}
	}

	local := email
	if at := strings.IndexByte(email, '@'); at >= 0 {
		local = email[:at]
	}

	// Non-admin ids are not stable across logins; eligibility is
	// keyed by email for that reason.
	now := time.Now().UnixMilli()

	switch {
	case strings.Contains(email, "lecturer"):
		return &domain.Identity{
			ID:        fmt.Sprintf("lecturer-%d", now),
			Email:     email,
			Name:      strings.Replace(local, "lecturer", "Dr. ", 1),
			StudentID: fmt.Sprintf("LEC%d", rand.Intn(1000)),
			Role:      domain.RoleLecturer,
		}
	case strings.Contains(email, "candidate"):
		return &domain.Identity{
			ID:        fmt.Sprintf("candidate-%d", now),
			Email:     email,
			Name:      strings.Replace(local, "candidate", "Candidate ", 1),
			StudentID: fmt.Sprintf("STU%d", rand.Intn(10000)),
			Role:      domain.RoleCandidate,
		}
	default:
		return &domain.Identity{
			ID:        fmt.Sprintf("voter-%d", now),
			Email:     email,
			Name:      local,
			StudentID: fmt.Sprintf("STU%d", rand.Intn(10000)),
			Role:      domain.RoleVoter,
		}
	}
}
