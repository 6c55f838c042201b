// Package domain defines the core business entities for Membank.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SourceTable: A registered content table with its field mapping
//   - Registry: The ordered, immutable list of source tables
//   - Intent / TruncationPolicy: The query-derived truncation strategy
//   - Row / TruncatedField: Storage rows and their truncated rendering
//   - MatchResult: A single hit from the multi-table search walk
//   - Suggestion: Advisory follow-up lookup instructions
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
