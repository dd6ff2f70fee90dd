package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
	"github.com/custodia-labs/barangay-cli/internal/core/ports/driven"
)

var mapPinColumns = []string{"name", "x", "y", "house_number", "zone", "section"}

var mapPinSQL = newCRUD("map_pins", mapPinColumns)

// mapPinStore implements driven.MapPinStore.
type mapPinStore struct {
	store *Store
}

var _ driven.MapPinStore = (*mapPinStore)(nil)

func (s *mapPinStore) List(ctx context.Context) ([]domain.MapPin, error) {
	return queryAll(ctx, s.store.db, "fetch map pins", mapPinSQL.list, scanMapPin)
}

func (s *mapPinStore) Get(ctx context.Context, id int64) (*domain.MapPin, error) {
	return queryOne(ctx, s.store.db, "get map pin", "map pin", id, mapPinSQL.get, scanMapPin)
}

// Insert relies on the UNIQUE constraint on name to reject duplicates.
func (s *mapPinStore) Insert(ctx context.Context, p domain.MapPin) (int64, error) {
	return insert(ctx, s.store.db, "insert map pin", mapPinSQL.insert, mapPinArgs(&p)...)
}

// InsertFromResident runs the lookup, duplicate check and insert in one
// IMMEDIATE transaction, so two concurrent calls for the same resident cannot
// both pass the check.
func (s *mapPinStore) InsertFromResident(ctx context.Context, residentID int64, p domain.MapPin) (int64, error) {
	const op = "save map pin from resident"

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, mapError(op, fmt.Errorf("beginning transaction: %w", err))
	}
	defer func() { _ = tx.Rollback() }()

	var r domain.Resident
	err = tx.QueryRowContext(ctx,
		"SELECT first_name, last_name FROM residents WHERE id = ?", residentID,
	).Scan(&r.FirstName, &r.LastName)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.NotFoundf(op, "no resident with id %d", residentID)
	}
	if err != nil {
		return 0, mapError(op, fmt.Errorf("looking up resident: %w", err))
	}
	p.Name = r.FullName()

	var taken bool
	err = tx.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM map_pins WHERE name = ?)", p.Name,
	).Scan(&taken)
	if err != nil {
		return 0, mapError(op, fmt.Errorf("checking pin name: %w", err))
	}
	if taken {
		return 0, domain.Duplicatef(op, "a pin for %q already exists", p.Name)
	}

	id, err := insert(ctx, tx, op, mapPinSQL.insert, mapPinArgs(&p)...)
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, mapError(op, fmt.Errorf("committing: %w", err))
	}
	return id, nil
}

func (s *mapPinStore) Update(ctx context.Context, p domain.MapPin) (int64, error) {
	args := append(mapPinArgs(&p), p.ID)
	return exec(ctx, s.store.db, "update map pin", mapPinSQL.update, args...)
}

func (s *mapPinStore) Delete(ctx context.Context, id int64) error {
	_, err := exec(ctx, s.store.db, "delete map pin", mapPinSQL.delete, id)
	return err
}

func mapPinArgs(p *domain.MapPin) []any {
	return []any{p.Name, p.X, p.Y, p.HouseNumber, p.Zone, p.Section}
}

func scanMapPin(sc scanner) (domain.MapPin, error) {
	var p domain.MapPin
	err := sc.Scan(&p.ID, &p.Name, &p.X, &p.Y, &p.HouseNumber, &p.Zone, &p.Section)
	return p, err
}
