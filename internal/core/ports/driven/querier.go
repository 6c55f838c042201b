package driven

import (
	"context"

	"github.com/custodia-labs/membank/internal/core/domain"
)

// Querier executes queries against the backing store. Implementations must
// expose column names per row and bind every argument; the core never
// interpolates values into query text.
//
// Error mapping contract: query-text rejections wrap domain.ErrQuerySyntax,
// connectivity failures wrap domain.ErrStorageUnavailable.
type Querier interface {
	// Query runs the statement with bound args and returns all result rows.
	Query(ctx context.Context, query string, args ...any) ([]domain.Row, error)
}
