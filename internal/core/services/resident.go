package services

import (
	"context"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
	"github.com/custodia-labs/barangay-cli/internal/core/ports/driven"
	"github.com/custodia-labs/barangay-cli/internal/core/ports/driving"
	"github.com/custodia-labs/barangay-cli/internal/logger"
)

// Ensure ResidentService implements the interface.
var _ driving.ResidentService = (*ResidentService)(nil)

// ResidentService manages the resident registry.
type ResidentService struct {
	store driven.ResidentStore
}

// NewResidentService creates a new resident service.
func NewResidentService(store driven.ResidentStore) *ResidentService {
	return &ResidentService{store: store}
}

// List returns every resident in insertion order.
func (s *ResidentService) List(ctx context.Context) ([]domain.Resident, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.store.List(ctx)
}

// Get retrieves a resident by ID.
func (s *ResidentService) Get(ctx context.Context, id int64) (*domain.Resident, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.store.Get(ctx, id)
}

// Save inserts a resident without an ID or replaces the stored one.
// It returns the resident's ID.
func (s *ResidentService) Save(ctx context.Context, resident domain.Resident) (int64, error) {
	if s.store == nil {
		return 0, domain.ErrNotImplemented
	}
	resident.Normalize()
	if err := resident.Validate(); err != nil {
		return 0, err
	}

	id, err := upsert[domain.Resident](ctx, s.store, "resident", resident.ID, resident)
	if err != nil {
		return 0, err
	}
	if resident.ID == 0 {
		logger.Debug("inserted resident %d (%s)", id, resident.FullName())
	} else {
		logger.Debug("updated resident %d", id)
	}
	return id, nil
}

// Delete removes a resident. Deleting an unknown ID succeeds.
func (s *ResidentService) Delete(ctx context.Context, id int64) error {
	if s.store == nil {
		return domain.ErrNotImplemented
	}
	return s.store.Delete(ctx, id)
}

// DeleteMany removes several residents at once.
func (s *ResidentService) DeleteMany(ctx context.Context, ids []int64) error {
	if s.store == nil {
		return domain.ErrNotImplemented
	}
	if len(ids) == 0 {
		return nil
	}
	return s.store.DeleteMany(ctx, ids)
}
