package driving

import (
	"context"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
)

// SettingsService manages the office identity.
type SettingsService interface {
	// Get returns the current settings; zero Settings if never saved.
	Get(ctx context.Context) (domain.Settings, error)

	// Save validates and stores the settings.
	Save(ctx context.Context, settings domain.Settings) error
}
