package domain

import "unicode/utf8"

// EventStatus is the state of a scheduled barangay event.
type EventStatus string

// Event statuses.
const (
	EventUpcoming  EventStatus = "Upcoming"
	EventOngoing   EventStatus = "Ongoing"
	EventFinished  EventStatus = "Finished"
	EventCancelled EventStatus = "Cancelled"
)

// EventStatuses lists every accepted status.
func EventStatuses() []EventStatus {
	return []EventStatus{EventUpcoming, EventOngoing, EventFinished, EventCancelled}
}

// Event is an activity organised by the office, with its attendance note.
type Event struct {
	ID       int64       `json:"id,omitempty"`
	Name     string      `json:"name"`
	Type     string      `json:"type"`
	Status   EventStatus `json:"status"`
	Date     string      `json:"date"`
	Venue    string      `json:"venue,omitempty"`
	Attendee string      `json:"attendee,omitempty"`
	Notes    string      `json:"notes,omitempty"`
}

// Validate checks required fields and the status value.
func (e *Event) Validate() error {
	f := fieldErrors{op: "validate event"}
	f.require("name", e.Name)
	f.require("type", e.Type)
	f.date("date", e.Date, true)
	if !oneOf(e.Status, EventStatuses()) {
		f.add("status must be one of " + joinValues(EventStatuses()))
	}
	if utf8.RuneCountInString(e.Notes) > 1000 {
		f.add("notes must be at most 1000 characters")
	}
	return f.err()
}
