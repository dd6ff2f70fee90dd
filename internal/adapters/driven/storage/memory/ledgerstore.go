package memory

import (
	"context"
	"sort"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
	"github.com/custodia-labs/barangay-cli/internal/core/ports/driven"
)

// Ensure LedgerStore implements the interface.
var _ driven.LedgerStore = (*LedgerStore)(nil)

// LedgerStore is an in-memory implementation of driven.LedgerStore.
type LedgerStore struct {
	rows *table[domain.LedgerEntry]
}

// NewLedgerStore creates a new in-memory ledger store.
func NewLedgerStore() *LedgerStore {
	return &LedgerStore{rows: newTable(
		func(e domain.LedgerEntry) int64 { return e.ID },
		func(e *domain.LedgerEntry, id int64) { e.ID = id },
	)}
}

func (s *LedgerStore) List(_ context.Context, kind domain.LedgerKind) ([]domain.LedgerEntry, error) {
	s.rows.mu.RLock()
	defer s.rows.mu.RUnlock()
	return s.rows.list(ofKind(kind)), nil
}

func (s *LedgerStore) Get(_ context.Context, id int64) (*domain.LedgerEntry, error) {
	e, ok := s.rows.Find(id)
	if !ok {
		return nil, domain.NotFoundf("get ledger entry", "no ledger entry with id %d", id)
	}
	return &e, nil
}

func (s *LedgerStore) Insert(_ context.Context, entry domain.LedgerEntry) (int64, error) {
	return s.rows.Add(entry), nil
}

func (s *LedgerStore) Update(_ context.Context, entry domain.LedgerEntry) (int64, error) {
	return s.rows.Replace(entry), nil
}

func (s *LedgerStore) Delete(_ context.Context, id int64) error {
	s.rows.Remove(id)
	return nil
}

// Totals orders results by kind then category, matching the SQLite store.
func (s *LedgerStore) Totals(ctx context.Context, kind domain.LedgerKind) ([]domain.CategoryTotal, error) {
	entries, _ := s.List(ctx, kind)

	type key struct {
		kind     domain.LedgerKind
		category domain.LedgerCategory
	}
	sums := map[key]*domain.CategoryTotal{}
	for _, e := range entries {
		k := key{e.Kind, e.Category}
		t, ok := sums[k]
		if !ok {
			t = &domain.CategoryTotal{Kind: e.Kind, Category: e.Category}
			sums[k] = t
		}
		t.AmountCentavos += e.AmountCentavos
		t.Entries++
	}

	out := make([]domain.CategoryTotal, 0, len(sums))
	for _, t := range sums {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		return out[i].Category < out[j].Category
	})
	return out, nil
}

func ofKind(kind domain.LedgerKind) func(domain.LedgerEntry) bool {
	if kind == "" {
		return nil
	}
	return func(e domain.LedgerEntry) bool { return e.Kind == kind }
}
