package services

import (
	"context"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
	"github.com/custodia-labs/barangay-cli/internal/core/ports/driven"
	"github.com/custodia-labs/barangay-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// SettingsService manages the office identity shown on documents and reports.
type SettingsService struct {
	store driven.SettingsStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(store driven.SettingsStore) *SettingsService {
	return &SettingsService{store: store}
}

// Get returns the stored settings, or zero Settings before the first save.
func (s *SettingsService) Get(ctx context.Context) (domain.Settings, error) {
	if s.store == nil {
		return domain.Settings{}, domain.ErrNotImplemented
	}
	return s.store.Get(ctx)
}

// Save creates or replaces the settings.
func (s *SettingsService) Save(ctx context.Context, settings domain.Settings) error {
	if s.store == nil {
		return domain.ErrNotImplemented
	}
	if err := settings.Validate(); err != nil {
		return err
	}
	return s.store.Save(ctx, settings)
}
