package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/membank/internal/core/domain"
)

// --- Mock implementations ---

type fakeRecord struct {
	key     string
	title   string
	content string
	updated time.Time
}

// fakeStore implements driven.Querier over in-memory tables, honoring the
// three query shapes the coordinator issues: exact key, key prefix, and the
// ordered key/title scan.
type fakeStore struct {
	registry *domain.Registry
	tables   map[string][]fakeRecord
	err      error
	queried  []string // table names in query order
}

func (f *fakeStore) Query(_ context.Context, query string, args ...any) ([]domain.Row, error) {
	if f.err != nil {
		return nil, f.err
	}

	name := tableOf(query)
	f.queried = append(f.queried, name)

	tbl, err := f.registry.ByName(name)
	if err != nil {
		return nil, err
	}

	recs := append([]fakeRecord(nil), f.tables[name]...)
	sort.Slice(recs, func(i, j int) bool {
		if !recs[i].updated.Equal(recs[j].updated) {
			return recs[i].updated.After(recs[j].updated)
		}
		return recs[i].key < recs[j].key
	})

	var out []domain.Row
	for _, r := range recs {
		switch {
		case strings.Contains(query, "= ?"):
			if r.key != args[0].(string) {
				continue
			}
		case strings.Contains(query, "LIKE ?"):
			prefix := strings.TrimSuffix(args[0].(string), "%")
			prefix = strings.NewReplacer(`\\`, `\`, `\%`, `%`, `\_`, `_`).Replace(prefix)
			if !strings.HasPrefix(r.key, prefix) {
				continue
			}
		}
		out = append(out, domain.Row{
			tbl.KeyField:      r.key,
			tbl.TitleField:    r.title,
			tbl.ContentField:  r.content,
			tbl.ModifiedField: r.updated,
		})
		if strings.Contains(query, "LIMIT 1") {
			break
		}
	}
	return out, nil
}

func tableOf(query string) string {
	fields := strings.Fields(query)
	for i, f := range fields {
		if strings.EqualFold(f, "FROM") && i+1 < len(fields) {
			return fields[i+1]
		}
	}
	return ""
}

func newTestCoordinator(tables map[string][]fakeRecord) (*SearchCoordinator, *fakeStore) {
	registry := domain.DefaultRegistry()
	store := &fakeStore{registry: registry, tables: tables}
	return NewSearchCoordinator(registry, store), store
}

// --- Tests ---

func TestFind_ExactKey(t *testing.T) {
	t.Run("higher priority table wins for a shared key", func(t *testing.T) {
		coord, _ := newTestCoordinator(map[string][]fakeRecord{
			"documents_v2": {{key: "k1", title: "Doc", content: "doc body"}},
			"artifacts":    {{key: "k1", title: "Artifact", content: "artifact body"}},
		})

		match, err := coord.Find(context.Background(), SearchQuery{Key: "k1"})

		require.NoError(t, err)
		assert.Equal(t, "documents_v2", match.Table.Name)
		assert.Equal(t, domain.MatchExactKey, match.Kind)
		assert.Equal(t, "doc body", match.Content)
	})

	t.Run("walks every table down to artifacts", func(t *testing.T) {
		coord, store := newTestCoordinator(map[string][]fakeRecord{
			"artifacts": {{key: "abc123", title: "Generated report", content: "report body"}},
		})

		match, err := coord.Find(context.Background(), SearchQuery{Key: "abc123"})

		require.NoError(t, err)
		assert.Equal(t, "artifacts", match.Table.Name)
		assert.Equal(t, domain.MatchExactKey, match.Kind)
		// Higher-priority tables were consulted first.
		assert.Equal(t, "documents_v2", store.queried[0])
	})
}

func TestFind_KeyPrefix(t *testing.T) {
	older := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("shortened key resolves by prefix", func(t *testing.T) {
		coord, _ := newTestCoordinator(map[string][]fakeRecord{
			"documents_v2": {{key: "abc123-full-uuid", title: "Doc", content: "body", updated: older}},
		})

		match, err := coord.Find(context.Background(), SearchQuery{Key: "abc123"})

		require.NoError(t, err)
		assert.Equal(t, domain.MatchKeyPrefix, match.Kind)
		assert.Equal(t, "abc123-full-uuid", match.Key)
	})

	t.Run("most recent row wins among prefix candidates", func(t *testing.T) {
		coord, _ := newTestCoordinator(map[string][]fakeRecord{
			"documents_v2": {
				{key: "abc-old", title: "Old", content: "old", updated: older},
				{key: "abc-new", title: "New", content: "new", updated: newer},
			},
		})

		match, err := coord.Find(context.Background(), SearchQuery{Key: "abc"})

		require.NoError(t, err)
		assert.Equal(t, "abc-new", match.Key)
	})

	t.Run("lexical key breaks recency ties", func(t *testing.T) {
		coord, _ := newTestCoordinator(map[string][]fakeRecord{
			"documents_v2": {
				{key: "abc-b", title: "B", content: "b", updated: older},
				{key: "abc-a", title: "A", content: "a", updated: older},
			},
		})

		match, err := coord.Find(context.Background(), SearchQuery{Key: "abc"})

		require.NoError(t, err)
		assert.Equal(t, "abc-a", match.Key)
	})

	t.Run("exact match beats a prefix match in the same table", func(t *testing.T) {
		coord, _ := newTestCoordinator(map[string][]fakeRecord{
			"documents_v2": {
				{key: "abc", title: "Exact", content: "exact", updated: older},
				{key: "abc-longer", title: "Longer", content: "longer", updated: newer},
			},
		})

		match, err := coord.Find(context.Background(), SearchQuery{Key: "abc"})

		require.NoError(t, err)
		assert.Equal(t, domain.MatchExactKey, match.Kind)
		assert.Equal(t, "abc", match.Key)
	})
}

func TestFind_Title(t *testing.T) {
	t.Run("fragment contained in a discussion summary", func(t *testing.T) {
		coord, _ := newTestCoordinator(map[string][]fakeRecord{
			"discussions": {{key: "d1", title: "Updated SSH Access", content: "ssh details"}},
		})

		match, err := coord.Find(context.Background(), SearchQuery{TitleFragment: "SSH"})

		require.NoError(t, err)
		assert.Equal(t, "discussions", match.Table.Name)
		assert.Equal(t, domain.MatchFuzzyTitle, match.Kind)
		assert.Equal(t, "Updated SSH Access", match.Title)
	})

	t.Run("exact match is case and whitespace insensitive", func(t *testing.T) {
		coord, _ := newTestCoordinator(map[string][]fakeRecord{
			"documents_v2": {{key: "d1", title: "Deploy   Notes", content: "steps"}},
		})

		match, err := coord.Find(context.Background(), SearchQuery{TitleFragment: "  deploy notes "})

		require.NoError(t, err)
		assert.Equal(t, domain.MatchExactTitle, match.Kind)
	})

	t.Run("exact beats fuzzy within a table", func(t *testing.T) {
		coord, _ := newTestCoordinator(map[string][]fakeRecord{
			"documents_v2": {
				{key: "fuzzy", title: "Deploy notes extra", content: "fuzzy body", updated: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)},
				{key: "exact", title: "Deploy notes", content: "exact body", updated: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
			},
		})

		match, err := coord.Find(context.Background(), SearchQuery{TitleFragment: "deploy notes"})

		require.NoError(t, err)
		assert.Equal(t, domain.MatchExactTitle, match.Kind)
		assert.Equal(t, "exact", match.Key)
	})

	t.Run("a fuzzy hit in a higher table beats a lower table", func(t *testing.T) {
		coord, _ := newTestCoordinator(map[string][]fakeRecord{
			"documents_v2": {{key: "doc", title: "All the notes collected", content: "doc"}},
			"discussions":  {{key: "disc", title: "notes", content: "disc"}},
		})

		match, err := coord.Find(context.Background(), SearchQuery{TitleFragment: "notes"})

		require.NoError(t, err)
		assert.Equal(t, "documents_v2", match.Table.Name)
		assert.Equal(t, domain.MatchFuzzyTitle, match.Kind)
	})

	t.Run("containment works in both directions", func(t *testing.T) {
		coord, _ := newTestCoordinator(map[string][]fakeRecord{
			"documents_v2": {{key: "d1", title: "SSH", content: "keys"}},
		})

		match, err := coord.Find(context.Background(), SearchQuery{TitleFragment: "updated ssh access notes"})

		require.NoError(t, err)
		assert.Equal(t, domain.MatchFuzzyTitle, match.Kind)
		assert.Equal(t, "d1", match.Key)
	})
}

func TestFind_TableRestriction(t *testing.T) {
	t.Run("only the named table is consulted", func(t *testing.T) {
		coord, store := newTestCoordinator(map[string][]fakeRecord{
			"documents_v2": {{key: "k1", title: "Doc", content: "doc"}},
		})

		_, err := coord.Find(context.Background(), SearchQuery{Key: "k1", Table: "artifacts"})

		var nf *domain.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, []string{"artifacts"}, nf.TablesTried)
		for _, name := range store.queried {
			assert.Equal(t, "artifacts", name)
		}
	})

	t.Run("restricted search still finds the record", func(t *testing.T) {
		coord, _ := newTestCoordinator(map[string][]fakeRecord{
			"artifacts": {{key: "k1", title: "Artifact", content: "body"}},
		})

		match, err := coord.Find(context.Background(), SearchQuery{Key: "k1", Table: "artifacts"})

		require.NoError(t, err)
		assert.Equal(t, "artifacts", match.Table.Name)
	})

	t.Run("unknown table name is rejected", func(t *testing.T) {
		coord, _ := newTestCoordinator(nil)

		_, err := coord.Find(context.Background(), SearchQuery{Key: "k1", Table: "no_such_table"})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestFind_NotFound(t *testing.T) {
	coord, _ := newTestCoordinator(map[string][]fakeRecord{
		"documents_v2": {{key: "other", title: "Other", content: "x"}},
	})

	_, err := coord.Find(context.Background(), SearchQuery{Key: "zzz999"})

	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, []string{"documents_v2", "discussions", "artifacts"}, nf.TablesTried)
	assert.Equal(t, "zzz999", nf.Key)
}

func TestFind_StorageFaultAborts(t *testing.T) {
	registry := domain.DefaultRegistry()
	store := &fakeStore{registry: registry, err: errors.New("disk I/O error")}
	coord := NewSearchCoordinator(registry, store)

	_, err := coord.Find(context.Background(), SearchQuery{Key: "k1"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "disk I/O error")
}

func TestFind_RequiresCriteria(t *testing.T) {
	coord, _ := newTestCoordinator(nil)

	_, err := coord.Find(context.Background(), SearchQuery{})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
