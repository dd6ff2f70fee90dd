package mcp

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
	"github.com/custodia-labs/barangay-cli/internal/logger"
)

// NoInput is the input schema for tools that take no arguments.
type NoInput struct{}

// IDInput selects a single record.
type IDInput struct {
	ID int64 `json:"id" jsonschema:"the record id"`
}

// IDsInput selects several records.
type IDsInput struct {
	IDs []int64 `json:"ids" jsonschema:"the record ids"`
}

// IDOutput reports the id of a saved record.
type IDOutput struct {
	ID int64 `json:"id"`
}

// OKOutput acknowledges a write that returns no data.
type OKOutput struct {
	OK bool `json:"ok"`
}

// DeletedOutput reports how many ids a bulk delete was asked to remove.
type DeletedOutput struct {
	Requested int `json:"requested"`
}

// addTool registers fn under name, logging each call with a correlation id.
// Errors reach the client as the domain description of the failure.
func addTool[In, Out any](s *Server, name, description string, fn func(context.Context, In) (Out, error)) {
	mcp.AddTool[In, Out](s.server, &mcp.Tool{
		Name:        name,
		Description: description,
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input In) (*mcp.CallToolResult, Out, error) {
		out, err := callTool(ctx, name, input, fn)
		return nil, out, err
	})
}

func callTool[In, Out any](ctx context.Context, name string, input In, fn func(context.Context, In) (Out, error)) (Out, error) {
	callID := uuid.NewString()
	start := time.Now()
	logger.Debug("mcp %s [%s] started", name, callID)

	out, err := fn(ctx, input)
	if err != nil {
		logger.Warn("mcp %s [%s] failed after %s: %s", name, callID, time.Since(start), domain.Describe(err))
		var zero Out
		return zero, &toolError{err: err}
	}

	logger.Debug("mcp %s [%s] done in %s", name, callID, time.Since(start))
	return out, nil
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	addTool(s, "fetch_all_residents", "List every registered resident", s.fetchAllResidents)
	addTool(s, "save_resident", "Insert a resident without an id, or replace the resident with that id", s.saveResident)
	addTool(s, "delete_resident", "Delete a resident by id; deleting a missing id succeeds", s.deleteResident)
	addTool(s, "delete_residents", "Delete several residents by id", s.deleteResidents)

	addTool(s, "fetch_household_heads", "List one head per household", s.fetchHouseholdHeads)
	addTool(s, "fetch_residents_by_household", "List the members of a household", s.fetchResidentsByHousehold)
	addTool(s, "fetch_household_income_totals", "Sum the monthly income of each household", s.fetchHouseholdIncomeTotals)
	addTool(s, "fetch_households_with_pwd", "List households with a member who is a person with disability", s.fetchHouseholdsWithPWD)
	addTool(s, "fetch_households_with_senior", "List households with a senior citizen member", s.fetchHouseholdsWithSenior)
	addTool(s, "fetch_low_income_households", "List households whose monthly income is below a threshold", s.fetchLowIncomeHouseholds)

	addTool(s, "save_map_pin", "Insert a household map pin without an id, or replace the pin with that id", s.saveMapPin)
	addTool(s, "save_map_pin_from_resident", "Create a map pin named after a resident", s.saveMapPinFromResident)
	addTool(s, "fetch_map_pins", "List every household map pin", s.fetchMapPins)
	addTool(s, "update_map_pin", "Replace an existing map pin", s.updateMapPin)
	addTool(s, "delete_map_pin", "Delete a map pin by id", s.deleteMapPin)

	addTool(s, "fetch_officials", "List barangay officials", s.fetchOfficials)
	addTool(s, "save_official", "Insert or replace a barangay official", s.saveOfficial)
	addTool(s, "delete_official", "Delete an official by id", s.deleteOfficial)

	addTool(s, "fetch_blotters", "List incident reports", s.fetchBlotters)
	addTool(s, "save_blotter", "Insert or replace an incident report", s.saveBlotter)
	addTool(s, "update_blotter_status", "Update the status and case fields of an incident report", s.updateBlotterStatus)
	addTool(s, "delete_blotter", "Delete an incident report by id", s.deleteBlotter)

	addTool(s, "fetch_ledger_entries", "List income and expense entries", s.fetchLedgerEntries)
	addTool(s, "save_ledger_entry", "Insert or replace an income or expense entry", s.saveLedgerEntry)
	addTool(s, "delete_ledger_entry", "Delete a ledger entry by id", s.deleteLedgerEntry)
	addTool(s, "fetch_ledger_totals", "Sum ledger amounts per category", s.fetchLedgerTotals)

	addTool(s, "fetch_events", "List barangay events", s.fetchEvents)
	addTool(s, "save_event", "Insert or replace a barangay event", s.saveEvent)
	addTool(s, "delete_event", "Delete an event by id", s.deleteEvent)

	addTool(s, "fetch_settings", "Show the office identity settings", s.fetchSettings)
	addTool(s, "save_settings", "Save the office identity settings", s.saveSettings)
}
