// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Querier: Executes a query against the backing store and returns rows
//     with column names. This is the only surface the retrieval core uses
//     to reach storage.
//
// # Optional Interfaces
//
//   - RecordStore: Write path for content records. The retrieval core never
//     writes; this exists for outer tooling and for seeding tests.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
