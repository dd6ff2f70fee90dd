package services

import (
	"context"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
	"github.com/custodia-labs/barangay-cli/internal/core/ports/driven"
	"github.com/custodia-labs/barangay-cli/internal/core/ports/driving"
	"github.com/custodia-labs/barangay-cli/internal/logger"
)

// Ensure BlotterService implements the interface.
var _ driving.BlotterService = (*BlotterService)(nil)

// BlotterService manages incident reports and their case progress.
type BlotterService struct {
	store driven.BlotterStore
}

// NewBlotterService creates a new blotter service.
func NewBlotterService(store driven.BlotterStore) *BlotterService {
	return &BlotterService{store: store}
}

// List returns every blotter in insertion order.
func (s *BlotterService) List(ctx context.Context) ([]domain.Blotter, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.store.List(ctx)
}

// Save inserts or replaces a blotter.
func (s *BlotterService) Save(ctx context.Context, blotter domain.Blotter) (int64, error) {
	if s.store == nil {
		return 0, domain.ErrNotImplemented
	}
	blotter.Normalize()
	if err := blotter.Validate(); err != nil {
		return 0, err
	}
	return upsert[domain.Blotter](ctx, s.store, "blotter", blotter.ID, blotter)
}

// UpdateCase changes only the case fields set in patch.
// The reporter, parties and incident details are never touched.
func (s *BlotterService) UpdateCase(ctx context.Context, id int64, patch domain.BlotterPatch) error {
	if s.store == nil {
		return domain.ErrNotImplemented
	}
	if id <= 0 {
		return domain.Validationf("update blotter case", "id must be positive")
	}
	if err := patch.Validate(); err != nil {
		return err
	}
	affected, err := s.store.Patch(ctx, id, patch)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NotFoundf("update blotter case", "no blotter with id %d", id)
	}
	if patch.Status != nil {
		logger.Debug("blotter %d moved to %s", id, *patch.Status)
	}
	return nil
}

// Delete removes a blotter. Deleting an unknown ID succeeds.
func (s *BlotterService) Delete(ctx context.Context, id int64) error {
	if s.store == nil {
		return domain.ErrNotImplemented
	}
	return s.store.Delete(ctx, id)
}
