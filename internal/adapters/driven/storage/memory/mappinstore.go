package memory

import (
	"context"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
	"github.com/custodia-labs/barangay-cli/internal/core/ports/driven"
)

// Ensure MapPinStore implements the interface.
var _ driven.MapPinStore = (*MapPinStore)(nil)

// MapPinStore is an in-memory implementation of driven.MapPinStore.
// Pin names are unique, as in the SQLite schema.
type MapPinStore struct {
	rows      *table[domain.MapPin]
	residents *ResidentStore
}

// NewMapPinStore creates a pin store that resolves resident names from residents.
func NewMapPinStore(residents *ResidentStore) *MapPinStore {
	return &MapPinStore{
		rows: newTable(
			func(p domain.MapPin) int64 { return p.ID },
			func(p *domain.MapPin, id int64) { p.ID = id },
		),
		residents: residents,
	}
}

func (s *MapPinStore) List(_ context.Context) ([]domain.MapPin, error) {
	return s.rows.All(), nil
}

func (s *MapPinStore) Get(_ context.Context, id int64) (*domain.MapPin, error) {
	p, ok := s.rows.Find(id)
	if !ok {
		return nil, domain.NotFoundf("get map pin", "no map pin with id %d", id)
	}
	return &p, nil
}

func (s *MapPinStore) Insert(_ context.Context, pin domain.MapPin) (int64, error) {
	s.rows.mu.Lock()
	defer s.rows.mu.Unlock()
	if s.nameTaken(pin.Name, 0) {
		return 0, domain.Duplicatef("insert map pin", "a pin named %q already exists", pin.Name)
	}
	return s.rows.insert(pin), nil
}

func (s *MapPinStore) InsertFromResident(_ context.Context, residentID int64, pin domain.MapPin) (int64, error) {
	const op = "save map pin from resident"
	if s.residents == nil {
		return 0, domain.ErrNotImplemented
	}
	r, ok := s.residents.rows.Find(residentID)
	if !ok {
		return 0, domain.NotFoundf(op, "no resident with id %d", residentID)
	}
	pin.Name = r.FullName()

	s.rows.mu.Lock()
	defer s.rows.mu.Unlock()
	if s.nameTaken(pin.Name, 0) {
		return 0, domain.Duplicatef(op, "a pin for %q already exists", pin.Name)
	}
	return s.rows.insert(pin), nil
}

func (s *MapPinStore) Update(_ context.Context, pin domain.MapPin) (int64, error) {
	s.rows.mu.Lock()
	defer s.rows.mu.Unlock()
	if s.nameTaken(pin.Name, pin.ID) {
		return 0, domain.Duplicatef("update map pin", "a pin named %q already exists", pin.Name)
	}
	return s.rows.update(pin), nil
}

func (s *MapPinStore) Delete(_ context.Context, id int64) error {
	s.rows.Remove(id)
	return nil
}

// nameTaken must be called with the table lock held.
func (s *MapPinStore) nameTaken(name string, exceptID int64) bool {
	for id, p := range s.rows.rows {
		if id != exceptID && p.Name == name {
			return true
		}
	}
	return false
}
