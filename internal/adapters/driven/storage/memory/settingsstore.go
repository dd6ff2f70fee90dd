package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
	"github.com/custodia-labs/barangay-cli/internal/core/ports/driven"
)

// Ensure SettingsStore implements the interface.
var _ driven.SettingsStore = (*SettingsStore)(nil)

// SettingsStore is an in-memory implementation of driven.SettingsStore.
type SettingsStore struct {
	mu       sync.RWMutex
	settings domain.Settings
}

// NewSettingsStore creates an empty in-memory settings store.
func NewSettingsStore() *SettingsStore {
	return &SettingsStore{}
}

func (s *SettingsStore) Get(_ context.Context) (domain.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings, nil
}

func (s *SettingsStore) Save(_ context.Context, settings domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	return nil
}
