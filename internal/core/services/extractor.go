package services

import (
	"context"

	"github.com/custodia-labs/membank/internal/core/domain"
	"github.com/custodia-labs/membank/internal/core/ports/driving"
	"github.com/custodia-labs/membank/internal/logger"
)

// Extractor returns complete records with provenance. It never truncates:
// content in an ExtractResult is byte-identical to the stored value.
type Extractor struct {
	coordinator *SearchCoordinator
}

// NewExtractor creates an extractor backed by the search coordinator.
func NewExtractor(coordinator *SearchCoordinator) *Extractor {
	return &Extractor{coordinator: coordinator}
}

var _ driving.ExtractService = (*Extractor)(nil)

// Extract finds one record and assembles the full payload.
func (e *Extractor) Extract(ctx context.Context, req driving.ExtractRequest) (*driving.ExtractResult, error) {
	match, err := e.coordinator.Find(ctx, SearchQuery{
		Key:           req.Key,
		TitleFragment: req.TitleFragment,
		Table:         req.Table,
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("Extracted %q from %s (%d chars)", match.Key, match.Table.Name, len(match.Content))

	return &driving.ExtractResult{
		Table:     match.Table.Name,
		Tag:       match.Table.Tag,
		Key:       match.Key,
		Title:     match.Title,
		Content:   match.Content,
		SafeName:  domain.SafeName(match.Title, match.Key),
		MatchKind: match.Kind,
		UpdatedAt: match.UpdatedAt,
	}, nil
}
