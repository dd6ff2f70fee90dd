package mcp

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
)

func TestExtractHouseholdNumber(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{
			name:     "valid household URI",
			uri:      "barangay://households/HH-12",
			expected: "HH-12",
		},
		{
			name:     "escaped space",
			uri:      "barangay://households/Zone%203%20HH1",
			expected: "Zone 3 HH1",
		},
		{
			name:     "invalid prefix",
			uri:      "file://households/HH-12",
			expected: "",
		},
		{
			name:     "nested path",
			uri:      "barangay://households/HH-12/members",
			expected: "",
		},
		{
			name:     "listing URI",
			uri:      "barangay://households/",
			expected: "",
		},
		{
			name:     "empty URI",
			uri:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractHouseholdNumber(tt.uri)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func readRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{Params: &mcp.ReadResourceParams{URI: uri}}
}

func TestServer_HouseholdSummaryResource(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t)

	_, err := server.saveResident(ctx, ResidentInput{Resident: household("Juan", "Dela Cruz", "HH1", domain.RoleHead, 5000)})
	require.NoError(t, err)

	res, err := server.handleHouseholdSummaryResource(ctx, readRequest("barangay://households/HH1"))
	require.NoError(t, err)
	require.Len(t, res.Contents, 1)
	assert.Equal(t, "application/json", res.Contents[0].MIMEType)
	assert.Contains(t, res.Contents[0].Text, `"household_number": "HH1"`)
	assert.Contains(t, res.Contents[0].Text, `"total_income": 5000`)

	_, err = server.handleHouseholdSummaryResource(ctx, readRequest("barangay://households/HH9"))
	assert.Error(t, err)
}

func TestServer_HouseholdsResource(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t)

	res, err := server.handleHouseholdsResource(ctx, readRequest("barangay://households"))
	require.NoError(t, err)
	assert.Equal(t, "[]", res.Contents[0].Text)
}

func TestServer_SettingsResource(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t)

	_, err := server.saveSettings(ctx, SettingsInput{Settings: domain.Settings{
		Barangay: "San Isidro", Municipality: "Tanay", Province: "Rizal",
	}})
	require.NoError(t, err)

	res, err := server.handleSettingsResource(ctx, readRequest("barangay://settings"))
	require.NoError(t, err)
	assert.Contains(t, res.Contents[0].Text, `"barangay": "San Isidro"`)
}
