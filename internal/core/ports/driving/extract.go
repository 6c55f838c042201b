package driving

import (
	"context"
	"time"

	"github.com/custodia-labs/membank/internal/core/domain"
)

// ExtractRequest identifies the record to extract. Key takes precedence over
// TitleFragment when both are set. Table, when non-empty, restricts the
// search to a single source table instead of the priority walk.
type ExtractRequest struct {
	Key           string
	TitleFragment string
	Table         string
}

// ExtractResult is the complete, untruncated payload for one record.
type ExtractResult struct {
	// Table is the source table that held the record.
	Table string

	// Tag is the table's display marker.
	Tag string

	// Key is the record's unique identifier.
	Key string

	// Title is the record's title.
	Title string

	// Content is byte-identical to the stored value; extraction never
	// truncates.
	Content string

	// SafeName is a filesystem-safe derived name for the record.
	SafeName string

	// MatchKind records how the record was found.
	MatchKind domain.MatchKind

	// UpdatedAt is the record's last-modification time.
	UpdatedAt time.Time
}

// ExtractService retrieves complete records with provenance.
type ExtractService interface {
	// Extract finds one record by key or title fragment. A miss returns a
	// *domain.NotFoundError listing every table attempted.
	Extract(ctx context.Context, req ExtractRequest) (*ExtractResult, error)
}

// TableInfo describes one configured source table for listings.
type TableInfo struct {
	Name    string
	Tag     string
	Rank    int
	Records int
}

// TableService lists the configured source tables in priority order.
type TableService interface {
	// ListTables returns the registry entries with record counts.
	ListTables(ctx context.Context) ([]TableInfo, error)
}
