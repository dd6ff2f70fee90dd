package memory

import (
	"context"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
	"github.com/custodia-labs/barangay-cli/internal/core/ports/driven"
)

// Ensure EventStore implements the interface.
var _ driven.EventStore = (*EventStore)(nil)

// EventStore is an in-memory implementation of driven.EventStore.
type EventStore struct {
	rows *table[domain.Event]
}

// NewEventStore creates a new in-memory event store.
func NewEventStore() *EventStore {
	return &EventStore{rows: newTable(
		func(e domain.Event) int64 { return e.ID },
		func(e *domain.Event, id int64) { e.ID = id },
	)}
}

func (s *EventStore) List(_ context.Context) ([]domain.Event, error) {
	return s.rows.All(), nil
}

func (s *EventStore) Get(_ context.Context, id int64) (*domain.Event, error) {
	e, ok := s.rows.Find(id)
	if !ok {
		return nil, domain.NotFoundf("get event", "no event with id %d", id)
	}
	return &e, nil
}

func (s *EventStore) Insert(_ context.Context, event domain.Event) (int64, error) {
	return s.rows.Add(event), nil
}

func (s *EventStore) Update(_ context.Context, event domain.Event) (int64, error) {
	return s.rows.Replace(event), nil
}

func (s *EventStore) Delete(_ context.Context, id int64) error {
	s.rows.Remove(id)
	return nil
}
