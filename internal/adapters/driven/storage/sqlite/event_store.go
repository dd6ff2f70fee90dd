package sqlite

import (
	"context"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
	"github.com/custodia-labs/barangay-cli/internal/core/ports/driven"
)

var eventColumns = []string{"name", "type", "status", "date", "venue", "attendee", "notes"}

var eventSQL = newCRUD("events", eventColumns)

// eventStore implements driven.EventStore.
type eventStore struct {
	store *Store
}

var _ driven.EventStore = (*eventStore)(nil)

func (s *eventStore) List(ctx context.Context) ([]domain.Event, error) {
	return queryAll(ctx, s.store.db, "fetch events", eventSQL.list, scanEvent)
}

func (s *eventStore) Get(ctx context.Context, id int64) (*domain.Event, error) {
	return queryOne(ctx, s.store.db, "get event", "event", id, eventSQL.get, scanEvent)
}

func (s *eventStore) Insert(ctx context.Context, e domain.Event) (int64, error) {
	return insert(ctx, s.store.db, "insert event", eventSQL.insert, eventArgs(&e)...)
}

func (s *eventStore) Update(ctx context.Context, e domain.Event) (int64, error) {
	args := append(eventArgs(&e), e.ID)
	return exec(ctx, s.store.db, "update event", eventSQL.update, args...)
}

func (s *eventStore) Delete(ctx context.Context, id int64) error {
	_, err := exec(ctx, s.store.db, "delete event", eventSQL.delete, id)
	return err
}

func eventArgs(e *domain.Event) []any {
	return []any{e.Name, e.Type, string(e.Status), e.Date, e.Venue, e.Attendee, e.Notes}
}

func scanEvent(sc scanner) (domain.Event, error) {
	var (
		e      domain.Event
		status string
	)
	err := sc.Scan(&e.ID, &e.Name, &e.Type, &status, &e.Date, &e.Venue, &e.Attendee, &e.Notes)
	e.Status = domain.EventStatus(status)
	return e, err
}
