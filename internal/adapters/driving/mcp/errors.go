// Package mcp provides an MCP (Model Context Protocol) server adapter for the barangay records store.
// Every record operation is exposed as a tool; failures cross the boundary as one descriptive string.
package mcp

import (
	"errors"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
)

// ErrMissingService is returned when a required service is not provided.
var ErrMissingService = errors.New("mcp: service is required")

// toolError carries a failed call back to the client as its domain description.
type toolError struct {
	err error
}

func (e *toolError) Error() string { return domain.Describe(e.err) }

func (e *toolError) Unwrap() error { return e.err }
