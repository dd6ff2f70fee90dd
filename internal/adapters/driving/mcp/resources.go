package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for barangay resources.
	uriScheme = "barangay://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "settings",
		Name:        "settings",
		Description: "Office identity of the barangay",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "households",
		Name:        "households",
		Description: "One head per registered household",
		MIMEType:    "application/json",
	}, s.handleHouseholdsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "households/{householdNumber}",
		Name:        "household-summary",
		Description: "Members, head and income of a single household",
		MIMEType:    "application/json",
	}, s.handleHouseholdSummaryResource)
}

// handleSettingsResource returns the saved settings.
func (s *Server) handleSettingsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	settings, err := s.ports.Settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting settings: %w", err)
	}
	return jsonResource(req.Params.URI, settings)
}

// handleHouseholdsResource lists household heads.
func (s *Server) handleHouseholdsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	heads, err := s.ports.Households.Heads(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing household heads: %w", err)
	}
	return jsonResource(req.Params.URI, heads)
}

// handleHouseholdSummaryResource returns the summary of one household.
func (s *Server) handleHouseholdSummaryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	number := extractHouseholdNumber(req.Params.URI)
	if number == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	summary, err := s.ports.Households.Summary(ctx, number)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("summarising household: %w", err)
	}
	return jsonResource(req.Params.URI, summary)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractHouseholdNumber extracts the number from a URI like barangay://households/{householdNumber}.
// Household numbers may contain spaces, so the segment is path-unescaped.
func extractHouseholdNumber(uri string) string {
	const prefix = uriScheme + "households/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	segment := strings.TrimPrefix(uri, prefix)
	if segment == "" || strings.Contains(segment, "/") {
		return ""
	}

	number, err := url.PathUnescape(segment)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(number)
}
