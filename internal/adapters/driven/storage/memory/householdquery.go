package memory

import (
	"context"
	"sort"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
	"github.com/custodia-labs/barangay-cli/internal/core/ports/driven"
)

// Ensure HouseholdQuery implements the interface.
var _ driven.HouseholdQuery = (*HouseholdQuery)(nil)

// HouseholdQuery derives household views from an in-memory ResidentStore.
type HouseholdQuery struct {
	residents *ResidentStore
}

// NewHouseholdQuery creates a query over residents.
func NewHouseholdQuery(residents *ResidentStore) *HouseholdQuery {
	return &HouseholdQuery{residents: residents}
}

func (q *HouseholdQuery) Heads(_ context.Context) ([]domain.ResidentHead, error) {
	heads := []domain.ResidentHead{}
	for _, r := range q.residents.rows.All() {
		if r.RoleInHousehold != domain.RoleHead || !r.HasHousehold() {
			continue
		}
		heads = append(heads, domain.ResidentHead{
			ID:              r.ID,
			HouseholdNumber: *r.HouseholdNumber,
			Prefix:          r.Prefix,
			FirstName:       r.FirstName,
			MiddleName:      r.MiddleName,
			LastName:        r.LastName,
			Suffix:          r.Suffix,
			Zone:            r.Zone,
			DateOfBirth:     r.DateOfBirth,
			Status:          string(r.Status),
			IsPWD:           r.IsPWD,
			IsSenior:        r.IsSenior,
		})
	}
	return heads, nil
}

func (q *HouseholdQuery) Members(_ context.Context, householdNumber string) ([]domain.Resident, error) {
	members := []domain.Resident{}
	for _, r := range q.residents.rows.All() {
		if r.HasHousehold() && *r.HouseholdNumber == householdNumber {
			members = append(members, r)
		}
	}
	return members, nil
}

func (q *HouseholdQuery) IncomeTotals(_ context.Context) ([]domain.HouseholdIncome, error) {
	sums := map[string]int64{}
	for _, r := range q.residents.rows.All() {
		if r.HasHousehold() {
			sums[*r.HouseholdNumber] += r.AverageMonthlyIncome
		}
	}
	out := make([]domain.HouseholdIncome, 0, len(sums))
	for hh, total := range sums {
		out = append(out, domain.HouseholdIncome{HouseholdNumber: hh, TotalIncome: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].HouseholdNumber < out[j].HouseholdNumber })
	return out, nil
}

func (q *HouseholdQuery) WithPWD(_ context.Context) ([]string, error) {
	return q.distinct(func(r domain.Resident) bool { return r.IsPWD }), nil
}

func (q *HouseholdQuery) WithSenior(_ context.Context) ([]string, error) {
	return q.distinct(func(r domain.Resident) bool { return r.IsSenior }), nil
}

func (q *HouseholdQuery) distinct(match func(domain.Resident) bool) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, r := range q.residents.rows.All() {
		if r.HasHousehold() && match(r) && !seen[*r.HouseholdNumber] {
			seen[*r.HouseholdNumber] = true
			out = append(out, *r.HouseholdNumber)
		}
	}
	sort.Strings(out)
	return out
}
