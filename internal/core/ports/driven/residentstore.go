package driven

import (
	"context"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
)

// ResidentStore persists residents.
type ResidentStore interface {
	// List returns all residents in insertion order.
	List(ctx context.Context) ([]domain.Resident, error)

	// Get retrieves a resident by ID.
	// Returns domain.ErrNotFound if the resident does not exist.
	Get(ctx context.Context, id int64) (*domain.Resident, error)

	// Insert stores a new resident and returns its assigned ID.
	Insert(ctx context.Context, resident domain.Resident) (int64, error)

	// Update replaces the resident with resident.ID and returns the affected row count.
	// A count of zero means no resident has that ID.
	Update(ctx context.Context, resident domain.Resident) (int64, error)

	// Delete removes a resident. Deleting a missing ID succeeds.
	Delete(ctx context.Context, id int64) error

	// DeleteMany removes several residents in one transaction.
	DeleteMany(ctx context.Context, ids []int64) error
}
