package sqlite

import (
	"context"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
	"github.com/custodia-labs/barangay-cli/internal/core/ports/driven"
)

var officialColumns = []string{
	"name", "role", "type", "section", "age", "contact",
	"term_start", "term_end", "zone", "image",
}

var officialSQL = newCRUD("officials", officialColumns)

// officialStore implements driven.OfficialStore.
type officialStore struct {
	store *Store
}

var _ driven.OfficialStore = (*officialStore)(nil)

func (s *officialStore) List(ctx context.Context) ([]domain.Official, error) {
	return queryAll(ctx, s.store.db, "fetch officials", officialSQL.list, scanOfficial)
}

func (s *officialStore) Get(ctx context.Context, id int64) (*domain.Official, error) {
	return queryOne(ctx, s.store.db, "get official", "official", id, officialSQL.get, scanOfficial)
}

func (s *officialStore) Insert(ctx context.Context, o domain.Official) (int64, error) {
	return insert(ctx, s.store.db, "insert official", officialSQL.insert, officialArgs(&o)...)
}

func (s *officialStore) Update(ctx context.Context, o domain.Official) (int64, error) {
	args := append(officialArgs(&o), o.ID)
	return exec(ctx, s.store.db, "update official", officialSQL.update, args...)
}

func (s *officialStore) Delete(ctx context.Context, id int64) error {
	_, err := exec(ctx, s.store.db, "delete official", officialSQL.delete, id)
	return err
}

func officialArgs(o *domain.Official) []any {
	return []any{
		o.Name, string(o.Role), string(o.Type), o.Section, o.Age, o.Contact,
		o.TermStart, o.TermEnd, o.Zone, o.Image,
	}
}

func scanOfficial(sc scanner) (domain.Official, error) {
	var (
		o          domain.Official
		role, kind string
	)
	err := sc.Scan(&o.ID, &o.Name, &role, &kind, &o.Section, &o.Age, &o.Contact,
		&o.TermStart, &o.TermEnd, &o.Zone, &o.Image)
	o.Role = domain.OfficialRole(role)
	o.Type = domain.OfficialType(kind)
	return o, err
}
