package services

import (
	"fmt"

	"github.com/custodia-labs/membank/internal/core/domain"
)

// SuggestionBuilder turns truncation metadata into follow-up lookup
// instructions. It needs the registry to recognize key and title columns in
// arbitrary result rows.
type SuggestionBuilder struct {
	registry *domain.Registry
}

// NewSuggestionBuilder creates a builder over the given registry.
func NewSuggestionBuilder(registry *domain.Registry) *SuggestionBuilder {
	return &SuggestionBuilder{registry: registry}
}

// ForRows inspects every truncated row and emits at most one extraction
// suggestion per distinct record: key-based when a key column is present in
// the row, title-based otherwise. When anything was truncated, a single
// retry-without-limit suggestion closes the list.
func (b *SuggestionBuilder) ForRows(
	rows []domain.Row, truncations map[int][]domain.FieldTruncation,
) []domain.Suggestion {
	if len(truncations) == 0 {
		return nil
	}

	var out []domain.Suggestion
	seen := make(map[string]bool)

	for i, row := range rows {
		if len(truncations[i]) == 0 {
			continue
		}

		if key := b.lookupColumn(row, keyColumns); key != "" {
			if !seen["key:"+key] {
				seen["key:"+key] = true
				out = append(out, domain.Suggestion{
					Kind:        domain.SuggestExtractByKey,
					Instruction: fmt.Sprintf("extract key=%q for the full content", key),
				})
			}
			continue
		}

		if title := b.lookupColumn(row, titleColumns); title != "" {
			if !seen["title:"+title] {
				seen["title:"+title] = true
				out = append(out, domain.Suggestion{
					Kind:        domain.SuggestExtractByTitle,
					Instruction: fmt.Sprintf("extract title=%q for the full content", title),
				})
			}
		}
	}

	out = append(out, domain.Suggestion{
		Kind:        domain.SuggestRetryNoLimit,
		Instruction: "re-run the query with max_content_length=0 to disable truncation",
	})
	return out
}

// Column selectors over a table descriptor.
func keyColumns(t domain.SourceTable) string   { return t.KeyField }
func titleColumns(t domain.SourceTable) string { return t.TitleField }

// lookupColumn finds the first non-empty row value under any column that a
// registry table uses for the selected role.
func (b *SuggestionBuilder) lookupColumn(row domain.Row, field func(domain.SourceTable) string) string {
	for _, tbl := range b.registry.Tables() {
		if v, ok := row[field(tbl)]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}
