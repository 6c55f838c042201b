package domain

import "time"

// MatchKind describes how the search coordinator found a record.
type MatchKind string

const (
	// MatchExactKey is a direct hit on the table's key field.
	MatchExactKey MatchKind = "exact_key"

	// MatchKeyPrefix is a prefix hit on the key field, for shortened
	// identifiers.
	MatchKeyPrefix MatchKind = "key_prefix"

	// MatchExactTitle is a case-insensitive, whitespace-normalized equality
	// hit on the title field.
	MatchExactTitle MatchKind = "exact_title"

	// MatchFuzzyTitle is a normalized substring containment hit, in either
	// direction, on the title field.
	MatchFuzzyTitle MatchKind = "fuzzy_title"
)

// MatchResult is a single hit from the multi-table search walk. It lives for
// one extraction request and is never persisted.
type MatchResult struct {
	// Table is the descriptor of the table that produced the hit.
	Table SourceTable

	// Key is the record's unique identifier.
	Key string

	// Title is the record's title (or summary, per the descriptor).
	Title string

	// Content is the full stored content, byte-identical to storage.
	Content string

	// Kind records how the match was made.
	Kind MatchKind

	// UpdatedAt is the record's last-modification time.
	UpdatedAt time.Time
}
