package driven

import (
	"context"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
)

// LedgerStore persists income and expense entries.
type LedgerStore interface {
	// List returns entries of kind in insertion order. An empty kind lists both.
	List(ctx context.Context, kind domain.LedgerKind) ([]domain.LedgerEntry, error)

	Get(ctx context.Context, id int64) (*domain.LedgerEntry, error)
	Insert(ctx context.Context, entry domain.LedgerEntry) (int64, error)
	Update(ctx context.Context, entry domain.LedgerEntry) (int64, error)
	Delete(ctx context.Context, id int64) error

	// Totals sums amounts per category. An empty kind covers both kinds.
	Totals(ctx context.Context, kind domain.LedgerKind) ([]domain.CategoryTotal, error)
}
