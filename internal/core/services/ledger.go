package services

import (
	"context"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
	"github.com/custodia-labs/barangay-cli/internal/core/ports/driven"
	"github.com/custodia-labs/barangay-cli/internal/core/ports/driving"
)

// Ensure LedgerService implements the interface.
var _ driving.LedgerService = (*LedgerService)(nil)

// LedgerService manages barangay income and expense entries.
type LedgerService struct {
	store driven.LedgerStore
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(store driven.LedgerStore) *LedgerService {
	return &LedgerService{store: store}
}

// List returns entries of kind. An empty kind lists income and expenses together.
func (s *LedgerService) List(ctx context.Context, kind domain.LedgerKind) ([]domain.LedgerEntry, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	if err := checkKind("fetch ledger entries", kind); err != nil {
		return nil, err
	}
	return s.store.List(ctx, kind)
}

// Save inserts or replaces a ledger entry.
func (s *LedgerService) Save(ctx context.Context, entry domain.LedgerEntry) (int64, error) {
	if s.store == nil {
		return 0, domain.ErrNotImplemented
	}
	if err := entry.Validate(); err != nil {
		return 0, err
	}
	return upsert[domain.LedgerEntry](ctx, s.store, "ledger entry", entry.ID, entry)
}

// Delete removes an entry. Deleting an unknown ID succeeds.
func (s *LedgerService) Delete(ctx context.Context, id int64) error {
	if s.store == nil {
		return domain.ErrNotImplemented
	}
	return s.store.Delete(ctx, id)
}

// Totals sums amounts per category for kind, or for both kinds when kind is empty.
func (s *LedgerService) Totals(ctx context.Context, kind domain.LedgerKind) ([]domain.CategoryTotal, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	if err := checkKind("fetch ledger totals", kind); err != nil {
		return nil, err
	}
	return s.store.Totals(ctx, kind)
}

func checkKind(op string, kind domain.LedgerKind) error {
	if kind == "" || kind.IsValid() {
		return nil
	}
	return domain.Validationf(op, "kind must be %q or %q", domain.LedgerIncome, domain.LedgerExpense)
}
