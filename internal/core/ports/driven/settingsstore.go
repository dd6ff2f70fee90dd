package driven

import (
	"context"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
)

// SettingsStore persists the singleton office settings row.
type SettingsStore interface {
	// Get returns the stored settings, or zero Settings if none were saved yet.
	Get(ctx context.Context) (domain.Settings, error)

	// Save creates or replaces the single settings row.
	Save(ctx context.Context, settings domain.Settings) error
}
