package memory

import (
	"context"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
	"github.com/custodia-labs/barangay-cli/internal/core/ports/driven"
)

// Ensure BlotterStore implements the interface.
var _ driven.BlotterStore = (*BlotterStore)(nil)

// BlotterStore is an in-memory implementation of driven.BlotterStore.
type BlotterStore struct {
	rows *table[domain.Blotter]
}

// NewBlotterStore creates a new in-memory blotter store.
func NewBlotterStore() *BlotterStore {
	return &BlotterStore{rows: newTable(
		func(b domain.Blotter) int64 { return b.ID },
		func(b *domain.Blotter, id int64) { b.ID = id },
	)}
}

func (s *BlotterStore) List(_ context.Context) ([]domain.Blotter, error) {
	return s.rows.All(), nil
}

func (s *BlotterStore) Get(_ context.Context, id int64) (*domain.Blotter, error) {
	b, ok := s.rows.Find(id)
	if !ok {
		return nil, domain.NotFoundf("get blotter", "no blotter with id %d", id)
	}
	return &b, nil
}

func (s *BlotterStore) Insert(_ context.Context, blotter domain.Blotter) (int64, error) {
	return s.rows.Add(blotter), nil
}

func (s *BlotterStore) Update(_ context.Context, blotter domain.Blotter) (int64, error) {
	return s.rows.Replace(blotter), nil
}

func (s *BlotterStore) Patch(_ context.Context, id int64, patch domain.BlotterPatch) (int64, error) {
	s.rows.mu.Lock()
	defer s.rows.mu.Unlock()
	b, ok := s.rows.rows[id]
	if !ok {
		return 0, nil
	}
	patch.Apply(&b)
	s.rows.rows[id] = b
	return 1, nil
}

func (s *BlotterStore) Delete(_ context.Context, id int64) error {
	s.rows.Remove(id)
	return nil
}
