package memory

import (
	"context"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
	"github.com/custodia-labs/barangay-cli/internal/core/ports/driven"
)

// Ensure ResidentStore implements the interface.
var _ driven.ResidentStore = (*ResidentStore)(nil)

// ResidentStore is an in-memory implementation of driven.ResidentStore.
type ResidentStore struct {
	rows *table[domain.Resident]
}

// NewResidentStore creates a new in-memory resident store.
func NewResidentStore() *ResidentStore {
	return &ResidentStore{rows: newTable(
		func(r domain.Resident) int64 { return r.ID },
		func(r *domain.Resident, id int64) { r.ID = id },
	)}
}

func (s *ResidentStore) List(_ context.Context) ([]domain.Resident, error) {
	return s.rows.All(), nil
}

func (s *ResidentStore) Get(_ context.Context, id int64) (*domain.Resident, error) {
	r, ok := s.rows.Find(id)
	if !ok {
		return nil, domain.NotFoundf("get resident", "no resident with id %d", id)
	}
	return &r, nil
}

func (s *ResidentStore) Insert(_ context.Context, resident domain.Resident) (int64, error) {
	return s.rows.Add(resident), nil
}

func (s *ResidentStore) Update(_ context.Context, resident domain.Resident) (int64, error) {
	return s.rows.Replace(resident), nil
}

func (s *ResidentStore) Delete(_ context.Context, id int64) error {
	s.rows.Remove(id)
	return nil
}

func (s *ResidentStore) DeleteMany(_ context.Context, ids []int64) error {
	s.rows.Remove(ids...)
	return nil
}
