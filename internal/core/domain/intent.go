package domain

// Intent classifies what a query is after, which in turn decides how much
// content each string field may carry in a response.
type Intent string

const (
	// IntentContentFocused marks queries that select or filter on content
	// fields directly. Large bodies are shown richly.
	IntentContentFocused Intent = "content_focused"

	// IntentOverview marks counts, schema listings, and broad row
	// selections. Fields are kept short.
	IntentOverview Intent = "overview"

	// IntentBalanced is the safe default for everything else.
	IntentBalanced Intent = "balanced"
)

// Default character limits per strategy.
const (
	ContentFocusedLimit = 400
	OverviewLimit       = 80
	BalancedLimit       = 150
)

// DefaultLimit returns the default character limit for the intent.
func (i Intent) DefaultLimit() int {
	switch i {
	case IntentContentFocused:
		return ContentFocusedLimit
	case IntentOverview:
		return OverviewLimit
	default:
		return BalancedLimit
	}
}

// TruncationPolicy pairs a strategy label with the effective limit.
// Limit <= 0 means "no truncation"; the strategy label is still reported
// for diagnostics when the caller overrides the limit.
type TruncationPolicy struct {
	// Strategy is the classified intent.
	Strategy Intent

	// Limit is the maximum rendered length for string fields, in runes.
	Limit int
}

// Unlimited reports whether the policy disables truncation entirely.
func (p TruncationPolicy) Unlimited() bool {
	return p.Limit <= 0
}
