package driven

import (
	"context"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
)

// HouseholdQuery derives household views from the residents table.
// Implementations only read; every method returns an empty slice, not an error,
// when nothing matches.
type HouseholdQuery interface {
	// Heads returns residents whose role is Head, in insertion order.
	Heads(ctx context.Context) ([]domain.ResidentHead, error)

	// Members returns the residents sharing householdNumber.
	Members(ctx context.Context, householdNumber string) ([]domain.Resident, error)

	// IncomeTotals sums monthly income per household, excluding residents without one.
	IncomeTotals(ctx context.Context) ([]domain.HouseholdIncome, error)

	// WithPWD returns the distinct household numbers that have a PWD member.
	WithPWD(ctx context.Context) ([]string, error)

	// WithSenior returns the distinct household numbers that have a senior member.
	WithSenior(ctx context.Context) ([]string, error)
}
