package sqlite

import (
	"context"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
	"github.com/custodia-labs/barangay-cli/internal/core/ports/driven"
)

var ledgerColumns = []string{
	"kind", "type", "category", "amount_centavos",
	"reference_number", "counterparty", "handled_by", "date",
}

var ledgerSQL = newCRUD("ledger_entries", ledgerColumns)

// An empty kind argument matches both kinds.
const (
	ledgerListByKindSQL = `
		SELECT id, kind, type, category, amount_centavos, reference_number, counterparty, handled_by, date
		FROM ledger_entries
		WHERE (? = '' OR kind = ?)
		ORDER BY id
	`
	ledgerTotalsSQL = `
		SELECT kind, category, SUM(amount_centavos), COUNT(*)
		FROM ledger_entries
		WHERE (? = '' OR kind = ?)
		GROUP BY kind, category
		ORDER BY kind, category
	`
)

// ledgerStore implements driven.LedgerStore.
type ledgerStore struct {
	store *Store
}

var _ driven.LedgerStore = (*ledgerStore)(nil)

func (s *ledgerStore) List(ctx context.Context, kind domain.LedgerKind) ([]domain.LedgerEntry, error) {
	return queryAll(ctx, s.store.db, "fetch ledger entries", ledgerListByKindSQL, scanLedgerEntry,
		string(kind), string(kind))
}

func (s *ledgerStore) Get(ctx context.Context, id int64) (*domain.LedgerEntry, error) {
	return queryOne(ctx, s.store.db, "get ledger entry", "ledger entry", id, ledgerSQL.get, scanLedgerEntry)
}

func (s *ledgerStore) Insert(ctx context.Context, e domain.LedgerEntry) (int64, error) {
	return insert(ctx, s.store.db, "insert ledger entry", ledgerSQL.insert, ledgerArgs(&e)...)
}

func (s *ledgerStore) Update(ctx context.Context, e domain.LedgerEntry) (int64, error) {
	args := append(ledgerArgs(&e), e.ID)
	return exec(ctx, s.store.db, "update ledger entry", ledgerSQL.update, args...)
}

func (s *ledgerStore) Delete(ctx context.Context, id int64) error {
	_, err := exec(ctx, s.store.db, "delete ledger entry", ledgerSQL.delete, id)
	return err
}

func (s *ledgerStore) Totals(ctx context.Context, kind domain.LedgerKind) ([]domain.CategoryTotal, error) {
	return queryAll(ctx, s.store.db, "fetch ledger totals", ledgerTotalsSQL, scanCategoryTotal,
		string(kind), string(kind))
}

func ledgerArgs(e *domain.LedgerEntry) []any {
	return []any{
		string(e.Kind), e.Type, string(e.Category), e.AmountCentavos,
		e.ReferenceNumber, e.Counterparty, e.HandledBy, e.Date,
	}
}

func scanLedgerEntry(sc scanner) (domain.LedgerEntry, error) {
	var (
		e              domain.LedgerEntry
		kind, category string
	)
	err := sc.Scan(&e.ID, &kind, &e.Type, &category, &e.AmountCentavos,
		&e.ReferenceNumber, &e.Counterparty, &e.HandledBy, &e.Date)
	e.Kind = domain.LedgerKind(kind)
	e.Category = domain.LedgerCategory(category)
	return e, err
}

func scanCategoryTotal(sc scanner) (domain.CategoryTotal, error) {
	var (
		t              domain.CategoryTotal
		kind, category string
	)
	err := sc.Scan(&kind, &category, &t.AmountCentavos, &t.Entries)
	t.Kind = domain.LedgerKind(kind)
	t.Category = domain.LedgerCategory(category)
	return t, err
}
