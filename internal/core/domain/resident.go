package domain

import "strings"

// HouseholdRole is a resident's position within their household.
// Stored as text; only the values below are accepted on write.
type HouseholdRole string

// Household roles.
const (
	RoleHead       HouseholdRole = "Head"
	RoleSpouse     HouseholdRole = "Spouse"
	RoleChild      HouseholdRole = "Child"
	RoleParent     HouseholdRole = "Parent"
	RoleSibling    HouseholdRole = "Sibling"
	RoleGrandchild HouseholdRole = "Grandchild"
	RoleRelative   HouseholdRole = "Relative"
	RoleMember     HouseholdRole = "Member"
	RoleBoarder    HouseholdRole = "Boarder"
)

// HouseholdRoles lists every accepted household role.
func HouseholdRoles() []HouseholdRole {
	return []HouseholdRole{
		RoleHead, RoleSpouse, RoleChild, RoleParent, RoleSibling,
		RoleGrandchild, RoleRelative, RoleMember, RoleBoarder,
	}
}

// IsValid reports whether r is a recognised role.
func (r HouseholdRole) IsValid() bool {
	return oneOf(r, HouseholdRoles())
}

// ResidentStatus is the residency state of a person.
type ResidentStatus string

// Resident statuses.
const (
	ResidentActive   ResidentStatus = "Active"
	ResidentMovedOut ResidentStatus = "Moved Out"
	ResidentDead     ResidentStatus = "Dead"
	ResidentMissing  ResidentStatus = "Missing"
)

// ResidentStatuses lists every accepted resident status.
func ResidentStatuses() []ResidentStatus {
	return []ResidentStatus{ResidentActive, ResidentMovedOut, ResidentDead, ResidentMissing}
}

// IsValid reports whether s is a recognised status.
func (s ResidentStatus) IsValid() bool {
	return oneOf(s, ResidentStatuses())
}

// Resident is a person registered with the barangay.
type Resident struct {
	// ID is the surrogate key. Zero means the resident has not been stored yet.
	ID int64 `json:"id,omitempty"`

	Prefix     string `json:"prefix,omitempty"`
	FirstName  string `json:"first_name"`
	MiddleName string `json:"middle_name,omitempty"`
	LastName   string `json:"last_name"`
	Suffix     string `json:"suffix,omitempty"`

	CivilStatus          string `json:"civil_status,omitempty"`
	Gender               string `json:"gender,omitempty"`
	Nationality          string `json:"nationality,omitempty"`
	MobileNumber         string `json:"mobile_number,omitempty"`
	Religion             string `json:"religion,omitempty"`
	Occupation           string `json:"occupation,omitempty"`
	SourceOfIncome       string `json:"source_of_income,omitempty"`
	AverageMonthlyIncome int64  `json:"average_monthly_income,omitempty"`

	// DateOfBirth is a YYYY-MM-DD date.
	DateOfBirth     string `json:"date_of_birth,omitempty"`
	TownOfBirth     string `json:"town_of_birth,omitempty"`
	ProvinceOfBirth string `json:"province_of_birth,omitempty"`

	Zone     string `json:"zone,omitempty"`
	Barangay string `json:"barangay,omitempty"`
	Town     string `json:"town,omitempty"`
	Province string `json:"province,omitempty"`

	// HouseholdNumber groups residents into a household. It is not a foreign key;
	// nil means the resident belongs to no household.
	HouseholdNumber *string `json:"household_number,omitempty"`

	// RoleInHousehold is required whenever HouseholdNumber is set.
	RoleInHousehold HouseholdRole `json:"role_in_household,omitempty"`

	// Parentage is free text and is not normalised.
	FatherPrefix     string `json:"father_prefix,omitempty"`
	FatherFirstName  string `json:"father_first_name,omitempty"`
	FatherMiddleName string `json:"father_middle_name,omitempty"`
	FatherLastName   string `json:"father_last_name,omitempty"`
	FatherSuffix     string `json:"father_suffix,omitempty"`
	MotherPrefix     string `json:"mother_prefix,omitempty"`
	MotherFirstName  string `json:"mother_first_name,omitempty"`
	MotherMiddleName string `json:"mother_middle_name,omitempty"`
	MotherLastName   string `json:"mother_last_name,omitempty"`

	Status ResidentStatus `json:"status,omitempty"`

	// Photo is a reference (path or URI) to the resident's picture.
	Photo string `json:"photo,omitempty"`

	IsRegisteredVoter bool `json:"is_registered_voter,omitempty"`
	IsPWD             bool `json:"is_pwd,omitempty"`
	IsSenior          bool `json:"is_senior,omitempty"`
	IsSoloParent      bool `json:"is_solo_parent,omitempty"`
}

// FullName returns "First Last", the name a household map pin is matched against.
func (r *Resident) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(r.FirstName) + " " + strings.TrimSpace(r.LastName))
}

// DisplayName returns the complete name including prefix, middle name and suffix.
func (r *Resident) DisplayName() string {
	return joinName(r.Prefix, r.FirstName, r.MiddleName, r.LastName, r.Suffix)
}

// HasHousehold reports whether the resident is linked to a household.
func (r *Resident) HasHousehold() bool {
	return r.HouseholdNumber != nil && strings.TrimSpace(*r.HouseholdNumber) != ""
}

// Normalize collapses a blank household number to nil before validation.
func (r *Resident) Normalize() {
	if r.HouseholdNumber != nil {
		trimmed := strings.TrimSpace(*r.HouseholdNumber)
		if trimmed == "" {
			r.HouseholdNumber = nil
		} else {
			r.HouseholdNumber = &trimmed
		}
	}
}

// Validate checks required fields and enumerations.
func (r *Resident) Validate() error {
	f := fieldErrors{op: "validate resident"}
	f.require("first_name", r.FirstName)
	f.require("last_name", r.LastName)
	f.date("date_of_birth", r.DateOfBirth, false)
	if r.AverageMonthlyIncome < 0 {
		f.add("average_monthly_income must not be negative")
	}
	if r.HasHousehold() {
		if !r.RoleInHousehold.IsValid() {
			f.add("role_in_household must be one of " + joinValues(HouseholdRoles()))
		}
	} else if r.RoleInHousehold != "" && !r.RoleInHousehold.IsValid() {
		f.add("role_in_household must be one of " + joinValues(HouseholdRoles()))
	}
	if r.Status != "" && !r.Status.IsValid() {
		f.add("status must be one of " + joinValues(ResidentStatuses()))
	}
	return f.err()
}

// ResidentHead is the projection of a household head used in household listings.
type ResidentHead struct {
	ID              int64  `json:"id"`
	HouseholdNumber string `json:"household_number"`
	Prefix          string `json:"prefix,omitempty"`
	FirstName       string `json:"first_name"`
	MiddleName      string `json:"middle_name,omitempty"`
	LastName        string `json:"last_name"`
	Suffix          string `json:"suffix,omitempty"`
	Zone            string `json:"zone,omitempty"`
	DateOfBirth     string `json:"date_of_birth,omitempty"`
	Status          string `json:"status,omitempty"`
	IsPWD           bool   `json:"is_pwd,omitempty"`
	IsSenior        bool   `json:"is_senior,omitempty"`
}

// FullName returns the head's display name.
func (h *ResidentHead) FullName() string {
	return joinName(h.Prefix, h.FirstName, h.MiddleName, h.LastName, h.Suffix)
}

func joinName(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

func joinValues[T ~string](values []T) string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return strings.Join(out, ", ")
}
