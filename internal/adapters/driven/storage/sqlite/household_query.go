package sqlite

import (
	"context"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
	"github.com/custodia-labs/barangay-cli/internal/core/ports/driven"
)

// hasHousehold excludes residents that belong to no household.
const hasHousehold = "household_number IS NOT NULL AND TRIM(household_number) <> ''"

var (
	headsSQL = `
		SELECT id, household_number, prefix, first_name, middle_name, last_name, suffix,
			zone, date_of_birth, status, is_pwd, is_senior
		FROM residents
		WHERE role_in_household = 'Head' AND ` + hasHousehold + `
		ORDER BY id`

	membersSQL = "SELECT id, " + columnList(residentColumns) + `
		FROM residents WHERE household_number = ? ORDER BY id`

	incomeTotalsSQL = `
		SELECT household_number, COALESCE(SUM(average_monthly_income), 0)
		FROM residents
		WHERE ` + hasHousehold + `
		GROUP BY household_number
		ORDER BY household_number`

	withPWDSQL = `
		SELECT DISTINCT household_number FROM residents
		WHERE is_pwd = 1 AND ` + hasHousehold + `
		ORDER BY household_number`

	withSeniorSQL = `
		SELECT DISTINCT household_number FROM residents
		WHERE is_senior = 1 AND ` + hasHousehold + `
		ORDER BY household_number`
)

// householdQuery implements driven.HouseholdQuery. It never writes.
type householdQuery struct {
	store *Store
}

var _ driven.HouseholdQuery = (*householdQuery)(nil)

func (q *householdQuery) Heads(ctx context.Context) ([]domain.ResidentHead, error) {
	return queryAll(ctx, q.store.db, "fetch household heads", headsSQL, scanHead)
}

func (q *householdQuery) Members(ctx context.Context, householdNumber string) ([]domain.Resident, error) {
	return queryAll(ctx, q.store.db, "fetch household members", membersSQL, scanResident, householdNumber)
}

func (q *householdQuery) IncomeTotals(ctx context.Context) ([]domain.HouseholdIncome, error) {
	return queryAll(ctx, q.store.db, "fetch household income totals", incomeTotalsSQL,
		func(sc scanner) (domain.HouseholdIncome, error) {
			var hi domain.HouseholdIncome
			err := sc.Scan(&hi.HouseholdNumber, &hi.TotalIncome)
			return hi, err
		})
}

func (q *householdQuery) WithPWD(ctx context.Context) ([]string, error) {
	return queryAll(ctx, q.store.db, "fetch households with pwd", withPWDSQL, scanString)
}

func (q *householdQuery) WithSenior(ctx context.Context) ([]string, error) {
	return queryAll(ctx, q.store.db, "fetch households with senior", withSeniorSQL, scanString)
}

func scanHead(sc scanner) (domain.ResidentHead, error) {
	var h domain.ResidentHead
	err := sc.Scan(&h.ID, &h.HouseholdNumber, &h.Prefix, &h.FirstName, &h.MiddleName, &h.LastName, &h.Suffix,
		&h.Zone, &h.DateOfBirth, &h.Status, &h.IsPWD, &h.IsSenior)
	return h, err
}

func scanString(sc scanner) (string, error) {
	var s string
	err := sc.Scan(&s)
	return s, err
}
