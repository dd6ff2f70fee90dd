package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/barangay-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/barangay-cli/internal/core/domain"
)

func newMapPinService() (*MapPinService, *memory.ResidentStore) {
	residents := memory.NewResidentStore()
	return NewMapPinService(memory.NewMapPinStore(residents)), residents
}

func TestMapPinService_SaveDuplicateName(t *testing.T) {
	service, _ := newMapPinService()
	ctx := context.Background()

	_, err := service.Save(ctx, domain.MapPin{Name: "Juan Dela Cruz", X: 1, Y: 2})
	require.NoError(t, err)

	_, err = service.Save(ctx, domain.MapPin{Name: " Juan Dela Cruz ", X: 3, Y: 4})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	pins, _ := service.List(ctx)
	assert.Len(t, pins, 1)
}

func TestMapPinService_SaveRequiresName(t *testing.T) {
	service, _ := newMapPinService()

	_, err := service.Save(context.Background(), domain.MapPin{X: 1})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestMapPinService_SaveFromResident(t *testing.T) {
	service, residents := newMapPinService()
	ctx := context.Background()
	id, err := residents.Insert(ctx, resident("Juan", "Dela Cruz"))
	require.NoError(t, err)

	pinID, err := service.SaveFromResident(ctx, id, domain.MapPin{X: 10, Y: 20, HouseNumber: "12", Zone: "3"})
	require.NoError(t, err)

	pins, _ := service.List(ctx)
	require.Len(t, pins, 1)
	assert.Equal(t, pinID, pins[0].ID)
	assert.Equal(t, "Juan Dela Cruz", pins[0].Name)
	assert.Equal(t, "12", pins[0].HouseNumber)

	_, err = service.SaveFromResident(ctx, id, domain.MapPin{})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestMapPinService_SaveFromResidentUnknown(t *testing.T) {
	service, _ := newMapPinService()
	ctx := context.Background()

	_, err := service.SaveFromResident(ctx, 41, domain.MapPin{})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = service.SaveFromResident(ctx, 0, domain.MapPin{})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestMapPinService_Update(t *testing.T) {
	service, _ := newMapPinService()
	ctx := context.Background()
	id, _ := service.Save(ctx, domain.MapPin{Name: "Pin", X: 1, Y: 1})

	require.NoError(t, service.Update(ctx, domain.MapPin{ID: id, Name: "Pin", X: 5, Y: 6}))
	pins, _ := service.List(ctx)
	assert.InDelta(t, 5.0, pins[0].X, 0.0001)

	err := service.Update(ctx, domain.MapPin{ID: 999, Name: "Ghost"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = service.Update(ctx, domain.MapPin{Name: "No ID"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestMapPinService_DeleteIsIdempotent(t *testing.T) {
	service, _ := newMapPinService()
	ctx := context.Background()
	id, _ := service.Save(ctx, domain.MapPin{Name: "Pin"})

	require.NoError(t, service.Delete(ctx, id))
	require.NoError(t, service.Delete(ctx, id))
}
