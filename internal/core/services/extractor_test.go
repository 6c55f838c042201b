package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/membank/internal/core/domain"
	"github.com/custodia-labs/membank/internal/core/ports/driving"
)

func newTestExtractor(tables map[string][]fakeRecord) *Extractor {
	coord, _ := newTestCoordinator(tables)
	return NewExtractor(coord)
}

func TestExtract(t *testing.T) {
	updated := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	longContent := strings.Repeat("full body content ", 200) // 3600 chars

	t.Run("returns the stored content byte for byte", func(t *testing.T) {
		extractor := newTestExtractor(map[string][]fakeRecord{
			"documents_v2": {{key: "abc-123", title: "Deploy Notes", content: longContent, updated: updated}},
		})

		result, err := extractor.Extract(context.Background(), driving.ExtractRequest{Key: "abc-123"})

		require.NoError(t, err)
		assert.Equal(t, "documents_v2", result.Table)
		assert.Equal(t, "📄", result.Tag)
		assert.Equal(t, longContent, result.Content)
		assert.Equal(t, domain.MatchExactKey, result.MatchKind)
		assert.Equal(t, updated, result.UpdatedAt)
		assert.Equal(t, "deploy_notes_abc-123.md", result.SafeName)
	})

	t.Run("round-trips through the result key", func(t *testing.T) {
		extractor := newTestExtractor(map[string][]fakeRecord{
			"discussions": {{key: "d1-uuid-long", title: "Updated SSH Access", content: "ssh body"}},
		})

		first, err := extractor.Extract(context.Background(), driving.ExtractRequest{TitleFragment: "SSH"})
		require.NoError(t, err)
		assert.Equal(t, domain.MatchFuzzyTitle, first.MatchKind)

		second, err := extractor.Extract(context.Background(), driving.ExtractRequest{Key: first.Key})
		require.NoError(t, err)
		assert.Equal(t, first.Content, second.Content)
		assert.Equal(t, first.Table, second.Table)
	})

	t.Run("key takes precedence over title fragment", func(t *testing.T) {
		extractor := newTestExtractor(map[string][]fakeRecord{
			"documents_v2": {
				{key: "by-key", title: "Unrelated", content: "key body"},
				{key: "by-title", title: "Wanted title", content: "title body"},
			},
		})

		result, err := extractor.Extract(context.Background(), driving.ExtractRequest{
			Key:           "by-key",
			TitleFragment: "Wanted title",
		})

		require.NoError(t, err)
		assert.Equal(t, "by-key", result.Key)
	})

	t.Run("miss reports the tables attempted", func(t *testing.T) {
		extractor := newTestExtractor(nil)

		_, err := extractor.Extract(context.Background(), driving.ExtractRequest{Key: "zzz999"})

		var nf *domain.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, []string{"documents_v2", "discussions", "artifacts"}, nf.TablesTried)
	})
}
