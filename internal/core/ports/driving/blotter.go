package driving

import (
	"context"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
)

// BlotterService manages incident reports.
type BlotterService interface {
	List(ctx context.Context) ([]domain.Blotter, error)
	Save(ctx context.Context, blotter domain.Blotter) (int64, error)

	// UpdateCase applies a partial update to an existing blotter.
	UpdateCase(ctx context.Context, id int64, patch domain.BlotterPatch) error

	Delete(ctx context.Context, id int64) error
}
