package domain

import "strings"

// Settings holds the office identity. Exactly one row exists in the store.
type Settings struct {
	Barangay      string `json:"barangay"`
	Municipality  string `json:"municipality"`
	Province      string `json:"province"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
	Logo          string `json:"logo,omitempty"`
	MunicipalLogo string `json:"municipal_logo,omitempty"`
}

// IsZero reports whether the settings have never been saved.
func (s *Settings) IsZero() bool {
	return *s == Settings{}
}

// Validate checks required fields.
func (s *Settings) Validate() error {
	f := fieldErrors{op: "validate settings"}
	f.require("barangay", s.Barangay)
	f.require("municipality", s.Municipality)
	f.require("province", s.Province)
	if s.Email != "" && !strings.Contains(s.Email, "@") {
		f.add("email is malformed")
	}
	return f.err()
}
