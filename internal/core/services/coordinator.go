package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/custodia-labs/membank/internal/core/domain"
	"github.com/custodia-labs/membank/internal/core/ports/driven"
	"github.com/custodia-labs/membank/internal/logger"
)

// SearchCoordinator walks the source table registry in priority order,
// attempting exact-key lookup, then key-prefix lookup, then progressively
// fuzzier title matching. The first hit wins; lower-priority tables are
// never consulted once a match is found.
type SearchCoordinator struct {
	registry *domain.Registry
	store    driven.Querier
}

// NewSearchCoordinator creates a coordinator over an immutable registry.
func NewSearchCoordinator(registry *domain.Registry, store driven.Querier) *SearchCoordinator {
	return &SearchCoordinator{registry: registry, store: store}
}

// SearchQuery identifies what to look for. Key takes precedence over
// TitleFragment. Table, when set, restricts the search to one table.
type SearchQuery struct {
	Key           string
	TitleFragment string
	Table         string
}

// Find locates a single record. A miss is not a failure: it returns a
// *domain.NotFoundError listing every table attempted, in walk order.
// A storage fault from any table aborts the whole call.
func (c *SearchCoordinator) Find(ctx context.Context, q SearchQuery) (*domain.MatchResult, error) {
	if q.Key == "" && q.TitleFragment == "" {
		return nil, fmt.Errorf("%w: search needs a key or a title fragment", domain.ErrInvalidInput)
	}

	tables := c.registry.Tables()
	if q.Table != "" {
		tbl, err := c.registry.ByName(q.Table)
		if err != nil {
			return nil, err
		}
		tables = []domain.SourceTable{tbl}
	}

	logger.Section("Record Search")
	logger.Debug("Key: %q, Title fragment: %q, Restriction: %q", q.Key, q.TitleFragment, q.Table)

	if q.Key != "" {
		match, err := c.searchByKey(ctx, q.Key, tables)
		if err != nil {
			return nil, err
		}
		if match != nil {
			logger.Info("Key match in %s (%s)", match.Table.Name, match.Kind)
			return match, nil
		}
	}

	if q.TitleFragment != "" {
		match, err := c.searchByTitle(ctx, q.TitleFragment, tables)
		if err != nil {
			return nil, err
		}
		if match != nil {
			logger.Info("Title match in %s (%s)", match.Table.Name, match.Kind)
			return match, nil
		}
	}

	tried := make([]string, len(tables))
	for i, t := range tables {
		tried[i] = t.Name
	}
	logger.Debug("No match; tables tried: %v", tried)

	return nil, &domain.NotFoundError{
		Key:           q.Key,
		TitleFragment: q.TitleFragment,
		TablesTried:   tried,
	}
}

// searchByKey attempts an exact key match, then a prefix match, per table.
func (c *SearchCoordinator) searchByKey(
	ctx context.Context, key string, tables []domain.SourceTable,
) (*domain.MatchResult, error) {
	for _, tbl := range tables {
		match, err := c.fetchByKey(ctx, tbl, key, domain.MatchExactKey)
		if err != nil {
			return nil, fmt.Errorf("key lookup in %s: %w", tbl.Name, err)
		}
		if match != nil {
			return match, nil
		}

		// Shortened identifiers: prefix match, most recent row first.
		prefixQuery := fmt.Sprintf(
			`SELECT %s, %s, %s, %s FROM %s WHERE %s LIKE ? ESCAPE '\' ORDER BY %s DESC, %s ASC LIMIT 1`,
			tbl.KeyField, tbl.TitleField, tbl.ContentField, tbl.ModifiedField,
			tbl.Name, tbl.KeyField, tbl.ModifiedField, tbl.KeyField,
		)
		rows, err := c.store.Query(ctx, prefixQuery, escapeLike(key)+"%")
		if err != nil {
			return nil, fmt.Errorf("key prefix lookup in %s: %w", tbl.Name, err)
		}
		if len(rows) > 0 {
			return rowToMatch(rows[0], tbl, domain.MatchKeyPrefix), nil
		}
	}
	return nil, nil
}

// searchByTitle attempts, per table, an exact normalized title match and
// then a fuzzy containment match, before moving to the next table.
func (c *SearchCoordinator) searchByTitle(
	ctx context.Context, fragment string, tables []domain.SourceTable,
) (*domain.MatchResult, error) {
	want := normalizeTitle(fragment)
	if want == "" {
		// A whitespace-only fragment would contain-match every title.
		return nil, nil
	}

	for _, tbl := range tables {
		// Scan key+title only; rows arrive pre-ordered by the determinism
		// tie-break (recency, then lexical key), so the first hit wins.
		scanQuery := fmt.Sprintf(
			`SELECT %s, %s FROM %s ORDER BY %s DESC, %s ASC`,
			tbl.KeyField, tbl.TitleField, tbl.Name, tbl.ModifiedField, tbl.KeyField,
		)
		rows, err := c.store.Query(ctx, scanQuery)
		if err != nil {
			return nil, fmt.Errorf("title scan in %s: %w", tbl.Name, err)
		}

		var exactKey, fuzzyKey string
		for _, row := range rows {
			title := normalizeTitle(asString(row[tbl.TitleField]))
			key := asString(row[tbl.KeyField])

			if title == want && exactKey == "" {
				exactKey = key
				break // exact beats fuzzy; ordering already picked the winner
			}
			if fuzzyKey == "" && title != "" &&
				(strings.Contains(title, want) || strings.Contains(want, title)) {
				fuzzyKey = key
			}
		}

		if exactKey != "" {
			return c.fetchByKey(ctx, tbl, exactKey, domain.MatchExactTitle)
		}
		if fuzzyKey != "" {
			return c.fetchByKey(ctx, tbl, fuzzyKey, domain.MatchFuzzyTitle)
		}
	}
	return nil, nil
}

// fetchByKey retrieves one full record by exact key.
func (c *SearchCoordinator) fetchByKey(
	ctx context.Context, tbl domain.SourceTable, key string, kind domain.MatchKind,
) (*domain.MatchResult, error) {
	query := fmt.Sprintf(
		`SELECT %s, %s, %s, %s FROM %s WHERE %s = ? LIMIT 1`,
		tbl.KeyField, tbl.TitleField, tbl.ContentField, tbl.ModifiedField,
		tbl.Name, tbl.KeyField,
	)
	rows, err := c.store.Query(ctx, query, key)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rowToMatch(rows[0], tbl, kind), nil
}

// rowToMatch builds a MatchResult from a fetched row.
func rowToMatch(row domain.Row, tbl domain.SourceTable, kind domain.MatchKind) *domain.MatchResult {
	return &domain.MatchResult{
		Table:     tbl,
		Key:       asString(row[tbl.KeyField]),
		Title:     asString(row[tbl.TitleField]),
		Content:   asString(row[tbl.ContentField]),
		Kind:      kind,
		UpdatedAt: asTime(row[tbl.ModifiedField]),
	}
}

// normalizeTitle lowercases and collapses whitespace runs for matching.
func normalizeTitle(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// escapeLike escapes LIKE metacharacters so bound fragments match literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// asString renders a raw column value as a string; non-strings pass through
// fmt for diagnostics rather than being dropped.
func asString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case []byte:
		return string(s)
	default:
		return fmt.Sprintf("%v", s)
	}
}

// asTime best-effort parses a raw column value as a timestamp.
func asTime(v any) time.Time {
	switch ts := v.(type) {
	case time.Time:
		return ts
	case string:
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, time.DateTime, "2006-01-02 15:04:05.999999999-07:00"} {
			if t, err := time.Parse(layout, ts); err == nil {
				return t
			}
		}
	}
	return time.Time{}
}
