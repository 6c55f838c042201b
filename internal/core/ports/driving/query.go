package driving

import (
	"context"

	"github.com/custodia-labs/membank/internal/core/domain"
)

// QueryReport is the outcome of a classified, truncation-aware query.
type QueryReport struct {
	// Strategy is the classified intent, reported even when the caller
	// overrode the limit.
	Strategy domain.Intent

	// Limit is the effective truncation limit; <= 0 means unlimited.
	Limit int

	// QueryType is the detected statement type (SELECT, PRAGMA, ...).
	QueryType string

	// Rows are the result rows with long string fields truncated per the
	// effective policy.
	Rows []domain.Row

	// Truncations describe every field that was shortened, per row index.
	Truncations map[int][]domain.FieldTruncation

	// Truncated reports whether any field in any row was shortened.
	Truncated bool

	// Suggestions are advisory follow-up lookups for truncated content.
	Suggestions []domain.Suggestion
}

// QueryService executes raw queries with intent classification and
// boundary-aware truncation.
type QueryService interface {
	// RunQuery classifies the query, executes it against storage, and
	// truncates string fields per the effective policy. maxContentLength
	// overrides the strategy default when non-nil; a value <= 0 disables
	// truncation entirely.
	RunQuery(ctx context.Context, query string, maxContentLength *int) (*QueryReport, error)
}
