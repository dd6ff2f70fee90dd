package domain

import (
	"strings"
	"time"
)

// DateLayout is the storage format for calendar dates.
const DateLayout = "2006-01-02"

// fieldErrors collects missing or malformed fields for a single record.
type fieldErrors struct {
	op     string
	issues []string
}

func (f *fieldErrors) require(name, value string) {
	if strings.TrimSpace(value) == "" {
		f.issues = append(f.issues, name+" is required")
	}
}

func (f *fieldErrors) date(name, value string, required bool) {
	if value == "" {
		if required {
			f.issues = append(f.issues, name+" is required")
		}
		return
	}
	if _, err := time.Parse(DateLayout, value); err != nil {
		f.issues = append(f.issues, name+" must be a YYYY-MM-DD date")
	}
}

func (f *fieldErrors) add(issue string) {
	f.issues = append(f.issues, issue)
}

func (f *fieldErrors) err() error {
	if len(f.issues) == 0 {
		return nil
	}
	return Validationf(f.op, "%s", strings.Join(f.issues, "; "))
}

// oneOf reports whether value is one of allowed.
func oneOf[T ~string](value T, allowed []T) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
