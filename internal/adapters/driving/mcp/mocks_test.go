package mcp

import (
	"context"
	"errors"

	"github.com/custodia-labs/barangay-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/barangay-cli/internal/core/domain"
	"github.com/custodia-labs/barangay-cli/internal/core/services"
)

// newTestPorts wires every service to in-memory stores.
func newTestPorts() *Ports {
	residents := memory.NewResidentStore()
	config := memory.NewConfigStore()
	return &Ports{
		Residents:  services.NewResidentService(residents),
		Households: services.NewHouseholdService(memory.NewHouseholdQuery(residents), config),
		MapPins:    services.NewMapPinService(memory.NewMapPinStore(residents)),
		Officials:  services.NewOfficialService(memory.NewOfficialStore()),
		Blotters:   services.NewBlotterService(memory.NewBlotterStore()),
		Ledger:     services.NewLedgerService(memory.NewLedgerStore()),
		Events:     services.NewEventService(memory.NewEventStore()),
		Settings:   services.NewSettingsService(memory.NewSettingsStore()),
	}
}

var errDiskFull = errors.New("disk full")

// mockResidentService is a driving.ResidentService whose every call fails with err.
type mockResidentService struct {
	err error
}

func (m *mockResidentService) List(_ context.Context) ([]domain.Resident, error) {
	return nil, m.err
}

func (m *mockResidentService) Get(_ context.Context, _ int64) (*domain.Resident, error) {
	return nil, m.err
}

func (m *mockResidentService) Save(_ context.Context, _ domain.Resident) (int64, error) {
	return 0, m.err
}

func (m *mockResidentService) Delete(_ context.Context, _ int64) error {
	return m.err
}

func (m *mockResidentService) DeleteMany(_ context.Context, _ []int64) error {
	return m.err
}
