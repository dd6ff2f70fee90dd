package driving

import (
	"context"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
)

// ResidentService manages resident records.
type ResidentService interface {
	// List returns all residents.
	List(ctx context.Context) ([]domain.Resident, error)

	// Get retrieves a resident by ID.
	Get(ctx context.Context, id int64) (*domain.Resident, error)

	// Save inserts a resident without an ID or replaces the one with its ID.
	// Returns the resident's ID.
	Save(ctx context.Context, resident domain.Resident) (int64, error)

	// Delete removes a resident. Deleting a missing ID succeeds.
	Delete(ctx context.Context, id int64) error

	// DeleteMany removes several residents at once.
	DeleteMany(ctx context.Context, ids []int64) error
}
