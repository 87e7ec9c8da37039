package ports

import (
	"context"

	"github.com/vncsmyrnk/voteverse/internal/core/domain"
)

type SessionRepository interface {
	SaveIdentity(ctx context.Context, identity *domain.Identity) error
	// LoadIdentity returns nil when no snapshot is stored. A snapshot
	// that cannot be parsed is discarded and treated as absent.
	LoadIdentity(ctx context.Context) (*domain.Identity, error)
	ClearIdentity(ctx context.Context) error
}

type SessionService interface {
	SignIn(ctx context.Context, email, password string) (*domain.Identity, error)
	RestoreSession(ctx context.Context) (*domain.Identity, error)
	SignOut(ctx context.Context) error
}
