package mcp

import (
	"github.com/custodia-labs/membank/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Query executes classified, truncation-aware queries.
	Query driving.QueryService

	// Extract retrieves complete records.
	Extract driving.ExtractService

	// Tables lists the configured source tables.
	Tables driving.TableService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Query == nil {
		return ErrMissingQueryService
	}
	if p.Extract == nil {
		return ErrMissingExtractService
	}
	// Tables is optional; the resource handler degrades to an empty list.
	return nil
}
