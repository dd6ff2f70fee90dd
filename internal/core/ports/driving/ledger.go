package driving

import (
	"context"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
)

// LedgerService manages income and expense entries.
type LedgerService interface {
	// List returns entries of kind; an empty kind lists both.
	List(ctx context.Context, kind domain.LedgerKind) ([]domain.LedgerEntry, error)
	Save(ctx context.Context, entry domain.LedgerEntry) (int64, error)
	Delete(ctx context.Context, id int64) error

	// Totals sums amounts per category; an empty kind covers both.
	Totals(ctx context.Context, kind domain.LedgerKind) ([]domain.CategoryTotal, error)
}
