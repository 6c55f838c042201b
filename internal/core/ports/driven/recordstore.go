package driven

import (
	"context"

	"github.com/custodia-labs/membank/internal/core/domain"
)

// RecordStore is the write path for content records. It exists for the
// tooling that populates the content tables; the retrieval core only reads.
// Table names are validated against the registry by implementations.
type RecordStore interface {
	// Save stores or updates a record in the named source table. A record
	// with an empty key gets one generated; the stored key is returned.
	Save(ctx context.Context, table string, rec domain.Record) (string, error)

	// Delete removes a record by key from the named source table.
	Delete(ctx context.Context, table, key string) error

	// Count returns the number of records in the named source table.
	Count(ctx context.Context, table string) (int, error)
}
