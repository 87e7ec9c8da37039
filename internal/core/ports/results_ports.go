package ports

import (
	"context"

	"github.com/vncsmyrnk/voteverse/internal/core/domain"
)

type ResultsService interface {
	Results(ctx context.Context) ([]domain.PositionResult, error)
	// Export renders the results document as indented JSON, the shape
	// offered to the user as a file download.
	Export(ctx context.Context) ([]byte, error)
}
