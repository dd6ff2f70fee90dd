package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestHouseholdRole_IsValid(t *testing.T) {
	for _, r := range HouseholdRoles() {
		assert.True(t, r.IsValid(), r)
	}
	assert.False(t, HouseholdRole("Landlord").IsValid())
	assert.False(t, HouseholdRole("head").IsValid())
}

func TestResidentStatus_IsValid(t *testing.T) {
	assert.True(t, ResidentMovedOut.IsValid())
	assert.False(t, ResidentStatus("Away").IsValid())
}

func TestResident_Names(t *testing.T) {
	r := Resident{Prefix: "Dr.", FirstName: " Juan ", MiddleName: "Santos", LastName: "Dela Cruz", Suffix: "Jr."}

	assert.Equal(t, "Juan Dela Cruz", r.FullName())
	assert.Equal(t, "Dr. Juan Santos Dela Cruz Jr.", r.DisplayName())
}

func TestResident_Normalize(t *testing.T) {
	blank := Resident{HouseholdNumber: strPtr("   ")}
	blank.Normalize()
	assert.Nil(t, blank.HouseholdNumber)
	assert.False(t, blank.HasHousehold())

	padded := Resident{HouseholdNumber: strPtr(" HH-1 ")}
	padded.Normalize()
	require.NotNil(t, padded.HouseholdNumber)
	assert.Equal(t, "HH-1", *padded.HouseholdNumber)
	assert.True(t, padded.HasHousehold())
}

func TestResident_Validate(t *testing.T) {
	base := func() Resident {
		return Resident{FirstName: "Maria", LastName: "Santos"}
	}

	tests := []struct {
		name   string
		mutate func(*Resident)
		issue  string
	}{
		{"valid without household", func(r *Resident) {}, ""},
		{"valid with household", func(r *Resident) {
			r.HouseholdNumber = strPtr("HH-1")
			r.RoleInHousehold = RoleHead
		}, ""},
		{"missing first name", func(r *Resident) { r.FirstName = "" }, "first_name is required"},
		{"missing last name", func(r *Resident) { r.LastName = " " }, "last_name is required"},
		{"household without role", func(r *Resident) { r.HouseholdNumber = strPtr("HH-1") }, "role_in_household must be one of"},
		{"unknown role", func(r *Resident) { r.RoleInHousehold = "Landlord" }, "role_in_household must be one of"},
		{"bad date", func(r *Resident) { r.DateOfBirth = "05/12/1990" }, "date_of_birth must be a YYYY-MM-DD date"},
		{"negative income", func(r *Resident) { r.AverageMonthlyIncome = -1 }, "average_monthly_income must not be negative"},
		{"unknown status", func(r *Resident) { r.Status = "Away" }, "status must be one of"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := base()
			tt.mutate(&r)
			err := r.Validate()
			if tt.issue == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrValidation)
			assert.Contains(t, err.Error(), tt.issue)
		})
	}
}

func TestResident_ValidateReportsAllIssues(t *testing.T) {
	r := Resident{}
	err := r.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "first_name is required; last_name is required")
}

func TestResidentHead_FullName(t *testing.T) {
	h := ResidentHead{FirstName: "Pedro", LastName: "Reyes", Suffix: "III"}
	assert.Equal(t, "Pedro Reyes III", h.FullName())
}
