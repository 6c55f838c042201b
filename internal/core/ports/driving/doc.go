// Package driving defines the interfaces that outer adapters call IN to core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// The CLI and MCP adapters depend on these interfaces; core services
// implement them.
//
//   - QueryService: classified, truncation-aware query execution
//   - ExtractService: full-content record extraction with provenance
//   - TableService: configured source table listing with record counts
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driving
