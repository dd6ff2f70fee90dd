package memory

import (
	"context"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
	"github.com/custodia-labs/barangay-cli/internal/core/ports/driven"
)

// Ensure OfficialStore implements the interface.
var _ driven.OfficialStore = (*OfficialStore)(nil)

// OfficialStore is an in-memory implementation of driven.OfficialStore.
type OfficialStore struct {
	rows *table[domain.Official]
}

// NewOfficialStore creates a new in-memory official store.
func NewOfficialStore() *OfficialStore {
	return &OfficialStore{rows: newTable(
		func(o domain.Official) int64 { return o.ID },
		func(o *domain.Official, id int64) { o.ID = id },
	)}
}

func (s *OfficialStore) List(_ context.Context) ([]domain.Official, error) {
	return s.rows.All(), nil
}

func (s *OfficialStore) Get(_ context.Context, id int64) (*domain.Official, error) {
	o, ok := s.rows.Find(id)
	if !ok {
		return nil, domain.NotFoundf("get official", "no official with id %d", id)
	}
	return &o, nil
}

func (s *OfficialStore) Insert(_ context.Context, official domain.Official) (int64, error) {
	return s.rows.Add(official), nil
}

func (s *OfficialStore) Update(_ context.Context, official domain.Official) (int64, error) {
	return s.rows.Replace(official), nil
}

func (s *OfficialStore) Delete(_ context.Context, id int64) error {
	s.rows.Remove(id)
	return nil
}
