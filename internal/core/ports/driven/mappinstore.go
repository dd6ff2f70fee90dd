package driven

import (
	"context"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
)

// MapPinStore persists household map pins.
type MapPinStore interface {
	// List returns all pins in insertion order.
	List(ctx context.Context) ([]domain.MapPin, error)

	// Get retrieves a pin by ID.
	Get(ctx context.Context, id int64) (*domain.MapPin, error)

	// Insert stores a new pin. A pin with the same name yields domain.ErrDuplicate.
	Insert(ctx context.Context, pin domain.MapPin) (int64, error)

	// InsertFromResident names the pin after the resident with residentID and stores it.
	// The resident lookup, duplicate check and insert run in one transaction.
	// Returns domain.ErrNotFound for an unknown resident and domain.ErrDuplicate
	// when a pin with the resident's name already exists.
	InsertFromResident(ctx context.Context, residentID int64, pin domain.MapPin) (int64, error)

	// Update replaces the pin with pin.ID and returns the affected row count.
	Update(ctx context.Context, pin domain.MapPin) (int64, error)

	// Delete removes a pin. Deleting a missing ID succeeds.
	Delete(ctx context.Context, id int64) error
}
