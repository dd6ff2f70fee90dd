package domain

import "strings"

// MapPin is a household's plotted location on the barangay map.
// Name is unique among pins and is matched against a resident's full name.
type MapPin struct {
	ID          int64   `json:"id,omitempty"`
	Name        string  `json:"name"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	HouseNumber string  `json:"house_number,omitempty"`
	Zone        string  `json:"zone,omitempty"`
	Section     string  `json:"section,omitempty"`
}

// Validate checks required fields.
func (p *MapPin) Validate() error {
	f := fieldErrors{op: "validate map pin"}
	f.require("name", p.Name)
	return f.err()
}

// Normalize trims the pin name so that uniqueness is not defeated by whitespace.
func (p *MapPin) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
}
