package services

import (
	"context"
	"strings"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
	"github.com/custodia-labs/barangay-cli/internal/core/ports/driven"
	"github.com/custodia-labs/barangay-cli/internal/core/ports/driving"
)

// Ensure OfficialService implements the interface.
var _ driving.OfficialService = (*OfficialService)(nil)

// OfficialService manages the roster of barangay, SK and tanod officials.
type OfficialService struct {
	store driven.OfficialStore
}

// NewOfficialService creates a new official service.
func NewOfficialService(store driven.OfficialStore) *OfficialService {
	return &OfficialService{store: store}
}

// List returns every official in insertion order.
func (s *OfficialService) List(ctx context.Context) ([]domain.Official, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.store.List(ctx)
}

// Save inserts or replaces an official.
func (s *OfficialService) Save(ctx context.Context, official domain.Official) (int64, error) {
	if s.store == nil {
		return 0, domain.ErrNotImplemented
	}
	official.Name = strings.TrimSpace(official.Name)
	if err := official.Validate(); err != nil {
		return 0, err
	}
	return upsert[domain.Official](ctx, s.store, "official", official.ID, official)
}

// Delete removes an official. Deleting an unknown ID succeeds.
func (s *OfficialService) Delete(ctx context.Context, id int64) error {
	if s.store == nil {
		return domain.ErrNotImplemented
	}
	return s.store.Delete(ctx, id)
}
