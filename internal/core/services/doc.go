// Package services implements the driving port interfaces.
// Services contain the core business logic — intent classification,
// truncation, the multi-table search walk, suggestion generation, and
// content extraction — and orchestrate calls to driven ports (adapters).
//
// Services are pure Go with no external dependencies beyond the ports.
package services
