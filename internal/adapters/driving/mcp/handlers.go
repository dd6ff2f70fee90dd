package mcp

import (
	"context"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
)

// ResidentsOutput lists residents.
type ResidentsOutput struct {
	Residents []domain.Resident `json:"residents"`
	Count     int               `json:"count"`
}

// ResidentInput carries a resident to save.
type ResidentInput struct {
	Resident domain.Resident `json:"resident"`
}

func (s *Server) fetchAllResidents(ctx context.Context, _ NoInput) (ResidentsOutput, error) {
	residents, err := s.ports.Residents.List(ctx)
	if err != nil {
		return ResidentsOutput{}, err
	}
	return ResidentsOutput{Residents: residents, Count: len(residents)}, nil
}

func (s *Server) saveResident(ctx context.Context, in ResidentInput) (IDOutput, error) {
	id, err := s.ports.Residents.Save(ctx, in.Resident)
	return IDOutput{ID: id}, err
}

func (s *Server) deleteResident(ctx context.Context, in IDInput) (OKOutput, error) {
	if err := s.ports.Residents.Delete(ctx, in.ID); err != nil {
		return OKOutput{}, err
	}
	return OKOutput{OK: true}, nil
}

func (s *Server) deleteResidents(ctx context.Context, in IDsInput) (DeletedOutput, error) {
	if err := s.ports.Residents.DeleteMany(ctx, in.IDs); err != nil {
		return DeletedOutput{}, err
	}
	return DeletedOutput{Requested: len(in.IDs)}, nil
}

// HouseholdInput selects a household.
type HouseholdInput struct {
	HouseholdNumber string `json:"household_number" jsonschema:"the household number"`
}

// ThresholdInput bounds the low income query.
type ThresholdInput struct {
	Threshold int64 `json:"threshold,omitempty" jsonschema:"monthly income threshold; omitted uses the configured default"`
}

// HeadsOutput lists household heads.
type HeadsOutput struct {
	Heads []domain.ResidentHead `json:"heads"`
	Count int                   `json:"count"`
}

// IncomesOutput lists household income totals.
type IncomesOutput struct {
	Households []domain.HouseholdIncome `json:"households"`
	Count      int                      `json:"count"`
}

// HouseholdNumbersOutput lists household numbers.
type HouseholdNumbersOutput struct {
	Households []string `json:"households"`
	Count      int      `json:"count"`
}

func (s *Server) fetchHouseholdHeads(ctx context.Context, _ NoInput) (HeadsOutput, error) {
	heads, err := s.ports.Households.Heads(ctx)
	if err != nil {
		return HeadsOutput{}, err
	}
	return HeadsOutput{Heads: heads, Count: len(heads)}, nil
}

func (s *Server) fetchResidentsByHousehold(ctx context.Context, in HouseholdInput) (ResidentsOutput, error) {
	members, err := s.ports.Households.Members(ctx, in.HouseholdNumber)
	if err != nil {
		return ResidentsOutput{}, err
	}
	return ResidentsOutput{Residents: members, Count: len(members)}, nil
}

func (s *Server) fetchHouseholdIncomeTotals(ctx context.Context, _ NoInput) (IncomesOutput, error) {
	return incomes(s.ports.Households.IncomeTotals(ctx))
}

func (s *Server) fetchHouseholdsWithPWD(ctx context.Context, _ NoInput) (HouseholdNumbersOutput, error) {
	return householdNumbers(s.ports.Households.WithPWD(ctx))
}

func (s *Server) fetchHouseholdsWithSenior(ctx context.Context, _ NoInput) (HouseholdNumbersOutput, error) {
	return householdNumbers(s.ports.Households.WithSenior(ctx))
}

func (s *Server) fetchLowIncomeHouseholds(ctx context.Context, in ThresholdInput) (IncomesOutput, error) {
	return incomes(s.ports.Households.LowIncome(ctx, in.Threshold))
}

func incomes(totals []domain.HouseholdIncome, err error) (IncomesOutput, error) {
	if err != nil {
		return IncomesOutput{}, err
	}
	return IncomesOutput{Households: totals, Count: len(totals)}, nil
}

func householdNumbers(numbers []string, err error) (HouseholdNumbersOutput, error) {
	if err != nil {
		return HouseholdNumbersOutput{}, err
	}
	return HouseholdNumbersOutput{Households: numbers, Count: len(numbers)}, nil
}

// MapPinInput carries a pin to save or update.
type MapPinInput struct {
	Pin domain.MapPin `json:"pin"`
}

// PinFromResidentInput places a pin for a resident's household.
type PinFromResidentInput struct {
	ResidentID  int64   `json:"resident_id" jsonschema:"the resident the pin is named after"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	HouseNumber string  `json:"house_number,omitempty"`
	Zone        string  `json:"zone,omitempty"`
	Section     string  `json:"section,omitempty"`
}

// MapPinsOutput lists map pins.
type MapPinsOutput struct {
	Pins  []domain.MapPin `json:"pins"`
	Count int             `json:"count"`
}

func (s *Server) saveMapPin(ctx context.Context, in MapPinInput) (IDOutput, error) {
	id, err := s.ports.MapPins.Save(ctx, in.Pin)
	return IDOutput{ID: id}, err
}

func (s *Server) saveMapPinFromResident(ctx context.Context, in PinFromResidentInput) (IDOutput, error) {
	pin := domain.MapPin{X: in.X, Y: in.Y, HouseNumber: in.HouseNumber, Zone: in.Zone, Section: in.Section}
	id, err := s.ports.MapPins.SaveFromResident(ctx, in.ResidentID, pin)
	return IDOutput{ID: id}, err
}

func (s *Server) fetchMapPins(ctx context.Context, _ NoInput) (MapPinsOutput, error) {
	pins, err := s.ports.MapPins.List(ctx)
	if err != nil {
		return MapPinsOutput{}, err
	}
	return MapPinsOutput{Pins: pins, Count: len(pins)}, nil
}

func (s *Server) updateMapPin(ctx context.Context, in MapPinInput) (OKOutput, error) {
	if err := s.ports.MapPins.Update(ctx, in.Pin); err != nil {
		return OKOutput{}, err
	}
	return OKOutput{OK: true}, nil
}

func (s *Server) deleteMapPin(ctx context.Context, in IDInput) (OKOutput, error) {
	if err := s.ports.MapPins.Delete(ctx, in.ID); err != nil {
		return OKOutput{}, err
	}
	return OKOutput{OK: true}, nil
}

// OfficialInput carries an official to save.
type OfficialInput struct {
	Official domain.Official `json:"official"`
}

// OfficialsOutput lists officials.
type OfficialsOutput struct {
	Officials []domain.Official `json:"officials"`
	Count     int               `json:"count"`
}

func (s *Server) fetchOfficials(ctx context.Context, _ NoInput) (OfficialsOutput, error) {
	officials, err := s.ports.Officials.List(ctx)
	if err != nil {
		return OfficialsOutput{}, err
	}
	return OfficialsOutput{Officials: officials, Count: len(officials)}, nil
}

func (s *Server) saveOfficial(ctx context.Context, in OfficialInput) (IDOutput, error) {
	id, err := s.ports.Officials.Save(ctx, in.Official)
	return IDOutput{ID: id}, err
}

func (s *Server) deleteOfficial(ctx context.Context, in IDInput) (OKOutput, error) {
	if err := s.ports.Officials.Delete(ctx, in.ID); err != nil {
		return OKOutput{}, err
	}
	return OKOutput{OK: true}, nil
}

// BlotterInput carries an incident report to save.
type BlotterInput struct {
	Blotter domain.Blotter `json:"blotter"`
}

// BlotterStatusInput is a partial update of an incident report. Omitted fields are kept.
type BlotterStatusInput struct {
	ID          int64                 `json:"id"`
	Status      *domain.BlotterStatus `json:"status,omitempty"`
	Narrative   *string               `json:"narrative,omitempty"`
	Action      *string               `json:"action,omitempty"`
	Resolution  *string               `json:"resolution,omitempty"`
	HearingDate *string               `json:"hearing_date,omitempty" jsonschema:"YYYY-MM-DD date of the hearing"`
}

// BlottersOutput lists incident reports.
type BlottersOutput struct {
	Blotters []domain.Blotter `json:"blotters"`
	Count    int              `json:"count"`
}

func (s *Server) fetchBlotters(ctx context.Context, _ NoInput) (BlottersOutput, error) {
	blotters, err := s.ports.Blotters.List(ctx)
	if err != nil {
		return BlottersOutput{}, err
	}
	return BlottersOutput{Blotters: blotters, Count: len(blotters)}, nil
}

func (s *Server) saveBlotter(ctx context.Context, in BlotterInput) (IDOutput, error) {
	id, err := s.ports.Blotters.Save(ctx, in.Blotter)
	return IDOutput{ID: id}, err
}

func (s *Server) updateBlotterStatus(ctx context.Context, in BlotterStatusInput) (OKOutput, error) {
	patch := domain.BlotterPatch{
		Status:      in.Status,
		Narrative:   in.Narrative,
		Action:      in.Action,
		Resolution:  in.Resolution,
		HearingDate: in.HearingDate,
	}
	if err := s.ports.Blotters.UpdateCase(ctx, in.ID, patch); err != nil {
		return OKOutput{}, err
	}
	return OKOutput{OK: true}, nil
}

func (s *Server) deleteBlotter(ctx context.Context, in IDInput) (OKOutput, error) {
	if err := s.ports.Blotters.Delete(ctx, in.ID); err != nil {
		return OKOutput{}, err
	}
	return OKOutput{OK: true}, nil
}

// KindInput filters ledger queries.
type KindInput struct {
	Kind domain.LedgerKind `json:"kind,omitempty" jsonschema:"income or expense; omitted covers both"`
}

// LedgerEntryInput carries a ledger entry to save.
type LedgerEntryInput struct {
	Entry domain.LedgerEntry `json:"entry"`
}

// LedgerEntriesOutput lists ledger entries.
type LedgerEntriesOutput struct {
	Entries []domain.LedgerEntry `json:"entries"`
	Count   int                  `json:"count"`
}

// LedgerTotalsOutput lists category totals.
type LedgerTotalsOutput struct {
	Totals []domain.CategoryTotal `json:"totals"`
}

func (s *Server) fetchLedgerEntries(ctx context.Context, in KindInput) (LedgerEntriesOutput, error) {
	entries, err := s.ports.Ledger.List(ctx, in.Kind)
	if err != nil {
		return LedgerEntriesOutput{}, err
	}
	return LedgerEntriesOutput{Entries: entries, Count: len(entries)}, nil
}

func (s *Server) saveLedgerEntry(ctx context.Context, in LedgerEntryInput) (IDOutput, error) {
	id, err := s.ports.Ledger.Save(ctx, in.Entry)
	return IDOutput{ID: id}, err
}

func (s *Server) deleteLedgerEntry(ctx context.Context, in IDInput) (OKOutput, error) {
	if err := s.ports.Ledger.Delete(ctx, in.ID); err != nil {
		return OKOutput{}, err
	}
	return OKOutput{OK: true}, nil
}

func (s *Server) fetchLedgerTotals(ctx context.Context, in KindInput) (LedgerTotalsOutput, error) {
	totals, err := s.ports.Ledger.Totals(ctx, in.Kind)
	if err != nil {
		return LedgerTotalsOutput{}, err
	}
	return LedgerTotalsOutput{Totals: totals}, nil
}

// EventInput carries an event to save.
type EventInput struct {
	Event domain.Event `json:"event"`
}

// EventsOutput lists events.
type EventsOutput struct {
	Events []domain.Event `json:"events"`
	Count  int            `json:"count"`
}

func (s *Server) fetchEvents(ctx context.Context, _ NoInput) (EventsOutput, error) {
	events, err := s.ports.Events.List(ctx)
	if err != nil {
		return EventsOutput{}, err
	}
	return EventsOutput{Events: events, Count: len(events)}, nil
}

func (s *Server) saveEvent(ctx context.Context, in EventInput) (IDOutput, error) {
	id, err := s.ports.Events.Save(ctx, in.Event)
	return IDOutput{ID: id}, err
}

func (s *Server) deleteEvent(ctx context.Context, in IDInput) (OKOutput, error) {
	if err := s.ports.Events.Delete(ctx, in.ID); err != nil {
		return OKOutput{}, err
	}
	return OKOutput{OK: true}, nil
}

// SettingsInput carries the office identity to save.
type SettingsInput struct {
	Settings domain.Settings `json:"settings"`
}

// SettingsOutput is the office identity.
type SettingsOutput struct {
	Settings domain.Settings `json:"settings"`
	Saved    bool            `json:"saved" jsonschema:"false until settings are first saved"`
}

func (s *Server) fetchSettings(ctx context.Context, _ NoInput) (SettingsOutput, error) {
	settings, err := s.ports.Settings.Get(ctx)
	if err != nil {
		return SettingsOutput{}, err
	}
	return SettingsOutput{Settings: settings, Saved: !settings.IsZero()}, nil
}

func (s *Server) saveSettings(ctx context.Context, in SettingsInput) (OKOutput, error) {
	if err := s.ports.Settings.Save(ctx, in.Settings); err != nil {
		return OKOutput{}, err
	}
	return OKOutput{OK: true}, nil
}
