package services

import "github.com/custodia-labs/barangay-cli/internal/core/domain"

func hh(n string) *string { return &n }

func resident(first, last string) domain.Resident {
	return domain.Resident{FirstName: first, LastName: last, Status: domain.ResidentActive}
}

func member(first, last, household string, role domain.HouseholdRole, income int64) domain.Resident {
	r := resident(first, last)
	r.HouseholdNumber = hh(household)
	r.RoleInHousehold = role
	r.AverageMonthlyIncome = income
	return r
}
