package domain

// OfficialRole is the office an official holds.
type OfficialRole string

// Official roles.
const (
	OfficialCaptain    OfficialRole = "Captain"
	OfficialCouncilor  OfficialRole = "Councilor"
	OfficialSecretary  OfficialRole = "Secretary"
	OfficialTreasurer  OfficialRole = "Treasurer"
	OfficialCaretaker  OfficialRole = "Caretaker"
	OfficialSKChairman OfficialRole = "SK Chairman"
	OfficialSKKagawad  OfficialRole = "SK Kagawad"
	OfficialChief      OfficialRole = "Chief"
	OfficialTanod      OfficialRole = "Tanod"
)

// OfficialRoles lists every accepted role.
func OfficialRoles() []OfficialRole {
	return []OfficialRole{
		OfficialCaptain, OfficialCouncilor, OfficialSecretary, OfficialTreasurer,
		OfficialCaretaker, OfficialSKChairman, OfficialSKKagawad, OfficialChief, OfficialTanod,
	}
}

// OfficialType is the council an official belongs to.
type OfficialType string

// Official types.
const (
	OfficialTypeBarangay OfficialType = "barangay"
	OfficialTypeSK       OfficialType = "sk"
	OfficialTypeTanod    OfficialType = "tanod"
)

// OfficialTypes lists every accepted type.
func OfficialTypes() []OfficialType {
	return []OfficialType{OfficialTypeBarangay, OfficialTypeSK, OfficialTypeTanod}
}

// Official is a public officer of the barangay.
type Official struct {
	ID      int64        `json:"id,omitempty"`
	Name    string       `json:"name"`
	Role    OfficialRole `json:"role"`
	Type    OfficialType `json:"type"`
	Section string       `json:"section,omitempty"`
	Age     int          `json:"age,omitempty"`
	Contact string       `json:"contact,omitempty"`

	// TermStart and TermEnd are YYYY-MM-DD dates bounding the term of office.
	TermStart string `json:"term_start,omitempty"`
	TermEnd   string `json:"term_end,omitempty"`

	Zone  string `json:"zone,omitempty"`
	Image string `json:"image,omitempty"`
}

// Validate checks required fields, enumerations and term bounds.
func (o *Official) Validate() error {
	f := fieldErrors{op: "validate official"}
	f.require("name", o.Name)
	if !oneOf(o.Role, OfficialRoles()) {
		f.add("role must be one of " + joinValues(OfficialRoles()))
	}
	if !oneOf(o.Type, OfficialTypes()) {
		f.add("type must be one of " + joinValues(OfficialTypes()))
	}
	if o.Age < 0 {
		f.add("age must not be negative")
	}
	f.date("term_start", o.TermStart, false)
	f.date("term_end", o.TermEnd, false)
	// ISO dates compare lexically.
	if o.TermStart != "" && o.TermEnd != "" && len(f.issues) == 0 && o.TermEnd < o.TermStart {
		f.add("term_end must not be before term_start")
	}
	return f.err()
}
