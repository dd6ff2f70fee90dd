package services

import (
	"context"
	"strings"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
	"github.com/custodia-labs/barangay-cli/internal/core/ports/driven"
	"github.com/custodia-labs/barangay-cli/internal/core/ports/driving"
	"github.com/custodia-labs/barangay-cli/internal/logger"
)

// Ensure HouseholdService implements the interface.
var _ driving.HouseholdService = (*HouseholdService)(nil)

// KeyLowIncomeThreshold is the config key overriding the low income threshold.
const KeyLowIncomeThreshold = "households.low_income_threshold"

// HouseholdService answers questions that span a household's residents.
type HouseholdService struct {
	query       driven.HouseholdQuery
	configStore driven.ConfigStore
}

// NewHouseholdService creates a new household service.
// configStore may be nil, in which case the default threshold applies.
func NewHouseholdService(query driven.HouseholdQuery, configStore driven.ConfigStore) *HouseholdService {
	return &HouseholdService{query: query, configStore: configStore}
}

// Heads lists one head per household. When a household has more than one
// resident marked Head, the earliest inserted is kept and a warning is logged.
func (s *HouseholdService) Heads(ctx context.Context) ([]domain.ResidentHead, error) {
	if s.query == nil {
		return nil, domain.ErrNotImplemented
	}
	heads, err := s.query.Heads(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]int64, len(heads))
	out := make([]domain.ResidentHead, 0, len(heads))
	for _, h := range heads {
		if kept, ok := seen[h.HouseholdNumber]; ok {
			logger.Warn("household %s has more than one head; keeping resident %d, ignoring %d",
				h.HouseholdNumber, kept, h.ID)
			continue
		}
		seen[h.HouseholdNumber] = h.ID
		out = append(out, h)
	}
	return out, nil
}

// Members returns every resident of a household.
func (s *HouseholdService) Members(ctx context.Context, householdNumber string) ([]domain.Resident, error) {
	if s.query == nil {
		return nil, domain.ErrNotImplemented
	}
	householdNumber = strings.TrimSpace(householdNumber)
	if householdNumber == "" {
		return nil, domain.Validationf("fetch household members", "household_number is required")
	}
	return s.query.Members(ctx, householdNumber)
}

// IncomeTotals sums monthly income per household.
func (s *HouseholdService) IncomeTotals(ctx context.Context) ([]domain.HouseholdIncome, error) {
	if s.query == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.query.IncomeTotals(ctx)
}

// WithPWD lists households with at least one PWD member.
func (s *HouseholdService) WithPWD(ctx context.Context) ([]string, error) {
	if s.query == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.query.WithPWD(ctx)
}

// WithSenior lists households with at least one senior member.
func (s *HouseholdService) WithSenior(ctx context.Context) ([]string, error) {
	if s.query == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.query.WithSenior(ctx)
}

// LowIncome lists households whose total monthly income is below threshold.
// A non-positive threshold uses the configured value, or the default.
func (s *HouseholdService) LowIncome(ctx context.Context, threshold int64) ([]domain.HouseholdIncome, error) {
	if s.query == nil {
		return nil, domain.ErrNotImplemented
	}
	if threshold <= 0 {
		threshold = s.LowIncomeThreshold()
	}
	totals, err := s.query.IncomeTotals(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.HouseholdIncome, 0, len(totals))
	for _, t := range totals {
		if t.TotalIncome < threshold {
			out = append(out, t)
		}
	}
	return out, nil
}

// LowIncomeThreshold returns the configured threshold or the default.
func (s *HouseholdService) LowIncomeThreshold() int64 {
	if s.configStore != nil {
		if v := s.configStore.GetInt(KeyLowIncomeThreshold); v > 0 {
			return int64(v)
		}
	}
	return domain.DefaultLowIncomeThreshold
}

// Summary aggregates one household. An unknown household yields a not found error.
func (s *HouseholdService) Summary(ctx context.Context, householdNumber string) (*domain.HouseholdSummary, error) {
	members, err := s.Members(ctx, householdNumber)
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, domain.NotFoundf("summarise household", "no residents in household %q", householdNumber)
	}

	summary := &domain.HouseholdSummary{
		HouseholdNumber: strings.TrimSpace(householdNumber),
		Members:         members,
	}
	for i := range members {
		m := &members[i]
		summary.TotalIncome += m.AverageMonthlyIncome
		summary.HasPWD = summary.HasPWD || m.IsPWD
		summary.HasSenior = summary.HasSenior || m.IsSenior
		if m.RoleInHousehold == domain.RoleHead && summary.Head == nil {
			summary.Head = &domain.ResidentHead{
				ID:              m.ID,
				HouseholdNumber: summary.HouseholdNumber,
				Prefix:          m.Prefix,
				FirstName:       m.FirstName,
				MiddleName:      m.MiddleName,
				LastName:        m.LastName,
				Suffix:          m.Suffix,
				Zone:            m.Zone,
				DateOfBirth:     m.DateOfBirth,
				Status:          string(m.Status),
				IsPWD:           m.IsPWD,
				IsSenior:        m.IsSenior,
			}
		}
	}
	return summary, nil
}
