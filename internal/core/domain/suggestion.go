package domain

// SuggestionKind names the follow-up action a suggestion points at.
type SuggestionKind string

const (
	// SuggestExtractByKey points the caller at a full-content lookup by key.
	SuggestExtractByKey SuggestionKind = "extract_by_key"

	// SuggestExtractByTitle points at a full-content lookup by title when no
	// key is known.
	SuggestExtractByTitle SuggestionKind = "extract_by_title"

	// SuggestRetryNoLimit points at re-running the query with truncation
	// disabled.
	SuggestRetryNoLimit SuggestionKind = "retry_no_limit"
)

// Suggestion is an advisory follow-up instruction returned alongside
// truncated results. Suggestions are text only and never auto-executed.
type Suggestion struct {
	// Kind is the suggested action.
	Kind SuggestionKind

	// Instruction is the ready-to-use lookup text.
	Instruction string
}
