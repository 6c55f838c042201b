// Package mcp provides an MCP (Model Context Protocol) server adapter for Membank.
// It enables AI assistants like Claude to query and extract stored content.
package mcp

import "errors"

var (
	// ErrMissingQueryService is returned when the query service is not provided.
	ErrMissingQueryService = errors.New("mcp: query service is required")

	// ErrMissingExtractService is returned when the extract service is not provided.
	ErrMissingExtractService = errors.New("mcp: extract service is required")
)
