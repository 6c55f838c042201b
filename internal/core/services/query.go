package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/membank/internal/core/domain"
	"github.com/custodia-labs/membank/internal/core/ports/driven"
	"github.com/custodia-labs/membank/internal/core/ports/driving"
	"github.com/custodia-labs/membank/internal/logger"
)

// QueryRunner executes raw queries with intent classification and
// boundary-aware truncation. Classification and truncation are total
// functions; the only failure sources are the query text and storage.
type QueryRunner struct {
	store       driven.Querier
	suggestions *SuggestionBuilder
}

// NewQueryRunner creates a runner over the storage querier.
func NewQueryRunner(store driven.Querier, suggestions *SuggestionBuilder) *QueryRunner {
	return &QueryRunner{store: store, suggestions: suggestions}
}

var _ driving.QueryService = (*QueryRunner)(nil)

// RunQuery classifies the query, executes it, truncates string fields per the
// effective policy, and attaches follow-up suggestions for anything cut.
func (r *QueryRunner) RunQuery(ctx context.Context, query string, maxContentLength *int) (*driving.QueryReport, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: query text is empty", domain.ErrInvalidInput)
	}

	policy := ResolvePolicy(query, maxContentLength)

	logger.Section("Query Execution")
	logger.Debug("Strategy: %s, Limit: %d", policy.Strategy, policy.Limit)

	rows, err := r.store.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("executing query: %w", err)
	}
	logger.Debug("Storage returned %d rows", len(rows))

	truncations := make(map[int][]domain.FieldTruncation)
	outRows := make([]domain.Row, len(rows))
	for i, row := range rows {
		truncated, fields := TruncateRow(row, policy)
		outRows[i] = truncated
		if len(fields) > 0 {
			truncations[i] = fields
		}
	}

	report := &driving.QueryReport{
		Strategy:    policy.Strategy,
		Limit:       policy.Limit,
		QueryType:   DetectQueryType(query),
		Rows:        outRows,
		Truncations: truncations,
		Truncated:   len(truncations) > 0,
	}
	if report.Truncated {
		report.Suggestions = r.suggestions.ForRows(outRows, truncations)
		logger.Info("Truncated fields in %d rows, %d suggestions", len(truncations), len(report.Suggestions))
	}
	return report, nil
}
