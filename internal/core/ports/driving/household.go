package driving

import (
	"context"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
)

// HouseholdService exposes read-only household views derived from residents.
type HouseholdService interface {
	// Heads returns one head per household.
	Heads(ctx context.Context) ([]domain.ResidentHead, error)

	// Members returns the residents of a household.
	Members(ctx context.Context, householdNumber string) ([]domain.Resident, error)

	// IncomeTotals returns the summed monthly income per household.
	IncomeTotals(ctx context.Context) ([]domain.HouseholdIncome, error)

	// WithPWD returns household numbers that have a PWD member.
	WithPWD(ctx context.Context) ([]string, error)

	// WithSenior returns household numbers that have a senior member.
	WithSenior(ctx context.Context) ([]string, error)

	// LowIncome returns households whose total income is below threshold.
	// A threshold of zero or less uses the configured default.
	LowIncome(ctx context.Context, threshold int64) ([]domain.HouseholdIncome, error)

	// Summary aggregates a single household.
	Summary(ctx context.Context, householdNumber string) (*domain.HouseholdSummary, error)
}
