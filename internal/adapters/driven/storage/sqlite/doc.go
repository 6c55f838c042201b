// Package sqlite provides the SQLite-based implementation of the driven
// storage ports.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO, enabling easy cross-compilation. A single database
// connection pool serves both ports:
//
//   - Querier: raw read access for the query/extraction core
//   - RecordStore: record writes for outer tooling and seeding
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory, applied in order at startup and tracked in the
// schema_migrations table.
//
// # Data Location
//
// By default, the database is stored at ~/.membank/data/membank.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking
// provided by SQLite in WAL mode.
package sqlite
