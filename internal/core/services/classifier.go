package services

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/membank/internal/core/domain"
	"github.com/custodia-labs/membank/internal/logger"
)

// Pattern groups for intent classification, tested in order: a content
// match wins over an overview match, which decides whether large bodies are
// shown richly or sparsely. Queries are uppercased before matching.
var (
	contentFocusedPatterns = []*regexp.Regexp{
		regexp.MustCompile(`SELECT.*CONTENT.*FROM`),
		regexp.MustCompile(`WHERE.*CONTENT.*LIKE`),
		regexp.MustCompile(`SELECT.*SUMMARY.*FROM.*DISCUSSIONS`),
		regexp.MustCompile(`SELECT.*TITLE.*CONTENT.*FROM`),
		regexp.MustCompile(`CONTENT.*MATCH`),
	}

	overviewPatterns = []*regexp.Regexp{
		regexp.MustCompile(`SELECT\s+COUNT\(`),
		regexp.MustCompile(`SELECT.*COUNT\(`),
		regexp.MustCompile(`^PRAGMA`),
		regexp.MustCompile(`SELECT.*NAME.*FROM.*SQLITE_MASTER`),
		regexp.MustCompile(`SELECT.*\*.*LIMIT\s+[1-5]\b`),
	}
)

// Classify inspects a raw query string and picks a truncation strategy.
// It is a total function: anything that matches neither pattern group is
// balanced, the safe default.
func Classify(query string) domain.Intent {
	upper := strings.ToUpper(strings.TrimSpace(query))

	for _, p := range contentFocusedPatterns {
		if p.MatchString(upper) {
			return domain.IntentContentFocused
		}
	}
	for _, p := range overviewPatterns {
		if p.MatchString(upper) {
			return domain.IntentOverview
		}
	}
	return domain.IntentBalanced
}

// ResolvePolicy combines the classified strategy with an optional caller
// override. A nil override keeps the strategy's default limit; a non-nil
// override replaces it (values <= 0 disable truncation). The strategy label
// is preserved either way, for diagnostics.
func ResolvePolicy(query string, maxContentLength *int) domain.TruncationPolicy {
	strategy := Classify(query)
	limit := strategy.DefaultLimit()
	if maxContentLength != nil {
		limit = *maxContentLength
		logger.Debug("Truncation limit overridden by caller: %d", limit)
	}
	return domain.TruncationPolicy{Strategy: strategy, Limit: limit}
}

// DetectQueryType reports the statement type of a query for diagnostics.
func DetectQueryType(query string) string {
	upper := strings.ToUpper(strings.TrimSpace(query))

	for _, kind := range []string{
		"SELECT", "INSERT", "UPDATE", "DELETE", "CREATE", "DROP", "ALTER", "PRAGMA",
	} {
		if strings.HasPrefix(upper, kind) {
			return kind
		}
	}
	return "OTHER"
}
