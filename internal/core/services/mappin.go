package services

import (
	"context"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
	"github.com/custodia-labs/barangay-cli/internal/core/ports/driven"
	"github.com/custodia-labs/barangay-cli/internal/core/ports/driving"
	"github.com/custodia-labs/barangay-cli/internal/logger"
)

// Ensure MapPinService implements the interface.
var _ driving.MapPinService = (*MapPinService)(nil)

// MapPinService manages household map pins.
type MapPinService struct {
	store driven.MapPinStore
}

// NewMapPinService creates a new map pin service.
func NewMapPinService(store driven.MapPinStore) *MapPinService {
	return &MapPinService{store: store}
}

// List returns every pin in insertion order.
func (s *MapPinService) List(ctx context.Context) ([]domain.MapPin, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.store.List(ctx)
}

// Save inserts a new pin or replaces an existing one.
func (s *MapPinService) Save(ctx context.Context, pin domain.MapPin) (int64, error) {
	if s.store == nil {
		return 0, domain.ErrNotImplemented
	}
	pin.Normalize()
	if err := pin.Validate(); err != nil {
		return 0, err
	}
	return upsert[domain.MapPin](ctx, s.store, "map pin", pin.ID, pin)
}

// SaveFromResident creates a pin named after the resident with residentID.
// The pin's own name is ignored; its coordinates and address fields are kept.
func (s *MapPinService) SaveFromResident(ctx context.Context, residentID int64, pin domain.MapPin) (int64, error) {
	if s.store == nil {
		return 0, domain.ErrNotImplemented
	}
	if residentID <= 0 {
		return 0, domain.Validationf("save map pin from resident", "resident_id must be positive")
	}
	pin.ID = 0
	id, err := s.store.InsertFromResident(ctx, residentID, pin)
	if err != nil {
		return 0, err
	}
	logger.Debug("linked map pin %d to resident %d", id, residentID)
	return id, nil
}

// Update replaces an existing pin. An unknown ID is reported as not found.
func (s *MapPinService) Update(ctx context.Context, pin domain.MapPin) error {
	if s.store == nil {
		return domain.ErrNotImplemented
	}
	if pin.ID <= 0 {
		return domain.Validationf("update map pin", "id must be positive")
	}
	_, err := s.Save(ctx, pin)
	return err
}

// Delete removes a pin. Deleting an unknown ID succeeds.
func (s *MapPinService) Delete(ctx context.Context, id int64) error {
	if s.store == nil {
		return domain.ErrNotImplemented
	}
	return s.store.Delete(ctx, id)
}
