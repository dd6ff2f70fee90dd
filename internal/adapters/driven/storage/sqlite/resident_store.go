package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
	"github.com/custodia-labs/barangay-cli/internal/core/ports/driven"
)

var residentColumns = []string{
	"prefix", "first_name", "middle_name", "last_name", "suffix",
	"civil_status", "gender", "nationality", "mobile_number", "religion",
	"occupation", "source_of_income", "average_monthly_income",
	"date_of_birth", "town_of_birth", "province_of_birth",
	"zone", "barangay", "town", "province",
	"household_number", "role_in_household",
	"father_prefix", "father_first_name", "father_middle_name", "father_last_name", "father_suffix",
	"mother_prefix", "mother_first_name", "mother_middle_name", "mother_last_name",
	"status", "photo",
	"is_registered_voter", "is_pwd", "is_senior", "is_solo_parent",
}

var residentSQL = newCRUD("residents", residentColumns)

// residentStore implements driven.ResidentStore.
type residentStore struct {
	store *Store
}

var _ driven.ResidentStore = (*residentStore)(nil)

func (s *residentStore) List(ctx context.Context) ([]domain.Resident, error) {
	return queryAll(ctx, s.store.db, "fetch residents", residentSQL.list, scanResident)
}

func (s *residentStore) Get(ctx context.Context, id int64) (*domain.Resident, error) {
	return queryOne(ctx, s.store.db, "get resident", "resident", id, residentSQL.get, scanResident)
}

func (s *residentStore) Insert(ctx context.Context, r domain.Resident) (int64, error) {
	return insert(ctx, s.store.db, "insert resident", residentSQL.insert, residentArgs(&r)...)
}

func (s *residentStore) Update(ctx context.Context, r domain.Resident) (int64, error) {
	args := append(residentArgs(&r), r.ID)
	return exec(ctx, s.store.db, "update resident", residentSQL.update, args...)
}

func (s *residentStore) Delete(ctx context.Context, id int64) error {
	_, err := exec(ctx, s.store.db, "delete resident", residentSQL.delete, id)
	return err
}

// DeleteMany removes the residents in one transaction; unknown IDs are ignored.
func (s *residentStore) DeleteMany(ctx context.Context, ids []int64) error {
	const op = "delete residents"
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return mapError(op, fmt.Errorf("beginning transaction: %w", err))
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, residentSQL.delete)
	if err != nil {
		return mapError(op, fmt.Errorf("preparing delete: %w", err))
	}
	defer stmt.Close()

	for _, id := range ids {
		if _, err := stmt.ExecContext(ctx, id); err != nil {
			return mapError(op, fmt.Errorf("deleting resident %d: %w", id, err))
		}
	}
	if err := tx.Commit(); err != nil {
		return mapError(op, fmt.Errorf("committing: %w", err))
	}
	return nil
}

// residentArgs returns the values of residentColumns, in order.
func residentArgs(r *domain.Resident) []any {
	return []any{
		r.Prefix, r.FirstName, r.MiddleName, r.LastName, r.Suffix,
		r.CivilStatus, r.Gender, r.Nationality, r.MobileNumber, r.Religion,
		r.Occupation, r.SourceOfIncome, r.AverageMonthlyIncome,
		r.DateOfBirth, r.TownOfBirth, r.ProvinceOfBirth,
		r.Zone, r.Barangay, r.Town, r.Province,
		nullableString(r.HouseholdNumber), string(r.RoleInHousehold),
		r.FatherPrefix, r.FatherFirstName, r.FatherMiddleName, r.FatherLastName, r.FatherSuffix,
		r.MotherPrefix, r.MotherFirstName, r.MotherMiddleName, r.MotherLastName,
		string(r.Status), r.Photo,
		r.IsRegisteredVoter, r.IsPWD, r.IsSenior, r.IsSoloParent,
	}
}

func scanResident(sc scanner) (domain.Resident, error) {
	var (
		r         domain.Resident
		household sql.NullString
		role      string
		status    string
	)
	err := sc.Scan(
		&r.ID,
		&r.Prefix, &r.FirstName, &r.MiddleName, &r.LastName, &r.Suffix,
		&r.CivilStatus, &r.Gender, &r.Nationality, &r.MobileNumber, &r.Religion,
		&r.Occupation, &r.SourceOfIncome, &r.AverageMonthlyIncome,
		&r.DateOfBirth, &r.TownOfBirth, &r.ProvinceOfBirth,
		&r.Zone, &r.Barangay, &r.Town, &r.Province,
		&household, &role,
		&r.FatherPrefix, &r.FatherFirstName, &r.FatherMiddleName, &r.FatherLastName, &r.FatherSuffix,
		&r.MotherPrefix, &r.MotherFirstName, &r.MotherMiddleName, &r.MotherLastName,
		&status, &r.Photo,
		&r.IsRegisteredVoter, &r.IsPWD, &r.IsSenior, &r.IsSoloParent,
	)
	if err != nil {
		return domain.Resident{}, err
	}
	r.HouseholdNumber = stringPtr(household)
	r.RoleInHousehold = domain.HouseholdRole(role)
	r.Status = domain.ResidentStatus(status)
	return r, nil
}
