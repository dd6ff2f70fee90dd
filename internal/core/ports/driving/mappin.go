package driving

import (
	"context"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
)

// MapPinService manages household map pins.
type MapPinService interface {
	List(ctx context.Context) ([]domain.MapPin, error)

	// Save inserts a pin without an ID or replaces the one with its ID.
	Save(ctx context.Context, pin domain.MapPin) (int64, error)

	// SaveFromResident creates a pin named after the resident with residentID.
	// The Name field of pin is ignored.
	SaveFromResident(ctx context.Context, residentID int64, pin domain.MapPin) (int64, error)

	// Update replaces an existing pin; an unknown ID yields domain.ErrNotFound.
	Update(ctx context.Context, pin domain.MapPin) error

	Delete(ctx context.Context, id int64) error
}
