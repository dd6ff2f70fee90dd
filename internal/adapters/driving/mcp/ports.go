package mcp

import (
	"fmt"

	"github.com/custodia-labs/barangay-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	Residents  driving.ResidentService
	Households driving.HouseholdService
	MapPins    driving.MapPinService
	Officials  driving.OfficialService
	Blotters   driving.BlotterService
	Ledger     driving.LedgerService
	Events     driving.EventService
	Settings   driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error naming the first missing port.
func (p *Ports) Validate() error {
	required := []struct {
		name string
		set  bool
	}{
		{"residents", p.Residents != nil},
		{"households", p.Households != nil},
		{"map pins", p.MapPins != nil},
		{"officials", p.Officials != nil},
		{"blotters", p.Blotters != nil},
		{"ledger", p.Ledger != nil},
		{"events", p.Events != nil},
		{"settings", p.Settings != nil},
	}
	for _, r := range required {
		if !r.set {
			return fmt.Errorf("%w: %s", ErrMissingService, r.name)
		}
	}
	return nil
}
