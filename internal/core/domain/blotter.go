package domain

// BlotterStatus is the lifecycle state of an incident report.
type BlotterStatus string

// Blotter statuses.
const (
	BlotterOpen      BlotterStatus = "Open"
	BlotterOngoing   BlotterStatus = "Ongoing"
	BlotterScheduled BlotterStatus = "Scheduled"
	BlotterResolved  BlotterStatus = "Resolved"
	BlotterDismissed BlotterStatus = "Dismissed"
	BlotterClosed    BlotterStatus = "Closed"
)

// BlotterStatuses lists every accepted status.
func BlotterStatuses() []BlotterStatus {
	return []BlotterStatus{
		BlotterOpen, BlotterOngoing, BlotterScheduled,
		BlotterResolved, BlotterDismissed, BlotterClosed,
	}
}

// IsValid reports whether s is a recognised status.
func (s BlotterStatus) IsValid() bool {
	return oneOf(s, BlotterStatuses())
}

// Blotter is an incident report.
type Blotter struct {
	ID int64 `json:"id,omitempty"`

	// Type is the kind of incident, e.g. "Theft" or "Noise complaint".
	Type         string `json:"type"`
	ReportedBy   string `json:"reported_by"`
	Involved     string `json:"involved,omitempty"`
	IncidentDate string `json:"incident_date"`
	Location     string `json:"location,omitempty"`
	Zone         string `json:"zone,omitempty"`

	Status     BlotterStatus `json:"status,omitempty"`
	Narrative  string        `json:"narrative,omitempty"`
	Action     string        `json:"action,omitempty"`
	Witnesses  string        `json:"witnesses,omitempty"`
	Evidence   string        `json:"evidence,omitempty"`
	Resolution string        `json:"resolution,omitempty"`

	// HearingDate is empty until a hearing is scheduled.
	HearingDate string `json:"hearing_date,omitempty"`
}

// Normalize files a blotter without a status as Open.
func (b *Blotter) Normalize() {
	if b.Status == "" {
		b.Status = BlotterOpen
	}
}

// Validate checks required fields and the status value.
func (b *Blotter) Validate() error {
	f := fieldErrors{op: "validate blotter"}
	f.require("type", b.Type)
	f.require("reported_by", b.ReportedBy)
	f.date("incident_date", b.IncidentDate, true)
	f.date("hearing_date", b.HearingDate, false)
	if !b.Status.IsValid() {
		f.add("status must be one of " + joinValues(BlotterStatuses()))
	}
	return f.err()
}

// BlotterPatch is a partial update of a blotter's mutable case fields.
// Nil fields are left untouched.
type BlotterPatch struct {
	Status      *BlotterStatus `json:"status,omitempty"`
	Narrative   *string        `json:"narrative,omitempty"`
	Action      *string        `json:"action,omitempty"`
	Resolution  *string        `json:"resolution,omitempty"`
	HearingDate *string        `json:"hearing_date,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p *BlotterPatch) IsEmpty() bool {
	return p.Status == nil && p.Narrative == nil && p.Action == nil &&
		p.Resolution == nil && p.HearingDate == nil
}

// Validate checks the fields the patch sets.
func (p *BlotterPatch) Validate() error {
	f := fieldErrors{op: "validate blotter patch"}
	if p.IsEmpty() {
		f.add("at least one field must be set")
	}
	if p.Status != nil && !p.Status.IsValid() {
		f.add("status must be one of " + joinValues(BlotterStatuses()))
	}
	if p.HearingDate != nil {
		f.date("hearing_date", *p.HearingDate, false)
	}
	return f.err()
}

// Apply copies the patch onto b.
func (p *BlotterPatch) Apply(b *Blotter) {
	if p.Status != nil {
		b.Status = *p.Status
	}
	if p.Narrative != nil {
		b.Narrative = *p.Narrative
	}
	if p.Action != nil {
		b.Action = *p.Action
	}
	if p.Resolution != nil {
		b.Resolution = *p.Resolution
	}
	if p.HearingDate != nil {
		b.HearingDate = *p.HearingDate
	}
}
