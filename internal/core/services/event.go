package services

import (
	"context"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
	"github.com/custodia-labs/barangay-cli/internal/core/ports/driven"
	"github.com/custodia-labs/barangay-cli/internal/core/ports/driving"
)

// Ensure EventService implements the interface.
var _ driving.EventService = (*EventService)(nil)

// EventService manages the community event calendar.
type EventService struct {
	store driven.EventStore
}

// NewEventService creates a new event service.
func NewEventService(store driven.EventStore) *EventService {
	return &EventService{store: store}
}

func (s *EventService) List(ctx context.Context) ([]domain.Event, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.store.List(ctx)
}

func (s *EventService) Save(ctx context.Context, event domain.Event) (int64, error) {
	if s.store == nil {
		return 0, domain.ErrNotImplemented
	}
	if err := event.Validate(); err != nil {
		return 0, err
	}
	return upsert[domain.Event](ctx, s.store, "event", event.ID, event)
}

func (s *EventService) Delete(ctx context.Context, id int64) error {
	if s.store == nil {
		return domain.ErrNotImplemented
	}
	return s.store.Delete(ctx, id)
}
