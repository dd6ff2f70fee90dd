package driven

import (
	"context"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
)

// BlotterStore persists incident reports.
type BlotterStore interface {
	// List returns all blotters in insertion order.
	List(ctx context.Context) ([]domain.Blotter, error)

	// Get retrieves a blotter by ID.
	Get(ctx context.Context, id int64) (*domain.Blotter, error)

	// Insert stores a new blotter and returns its assigned ID.
	Insert(ctx context.Context, blotter domain.Blotter) (int64, error)

	// Update replaces the blotter with blotter.ID and returns the affected row count.
	Update(ctx context.Context, blotter domain.Blotter) (int64, error)

	// Patch changes only the case fields set in patch and returns the affected row count.
	Patch(ctx context.Context, id int64, patch domain.BlotterPatch) (int64, error)

	// Delete removes a blotter. Deleting a missing ID succeeds.
	Delete(ctx context.Context, id int64) error
}
