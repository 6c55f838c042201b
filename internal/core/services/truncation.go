package services

import (
	"strings"
	"unicode"

	"github.com/custodia-labs/membank/internal/core/domain"
)

// truncationMarker is appended to shortened values.
const truncationMarker = "..."

// boundaryFloor is how far back (as a fraction of the limit) the engine will
// look for a whitespace boundary before giving up and hard-cutting.
const boundaryFloor = 0.8

// Truncate shortens a string to the policy limit, cutting at the nearest
// preceding whitespace within the boundary window and appending a marker.
// It is a total, idempotent function: values within the limit, and values
// already carrying the marker at this limit, are returned unchanged.
// All positions are rune-based so multi-byte characters are never split.
func Truncate(s string, limit int) domain.TruncatedField {
	runes := []rune(s)
	length := len(runes)

	if limit <= 0 || length <= limit {
		return domain.TruncatedField{Value: s, OriginalLength: length, Truncated: false}
	}

	// Idempotence: a value produced by a previous pass at the same limit is
	// at most limit+3 runes and ends with the marker.
	if strings.HasSuffix(s, truncationMarker) && length <= limit+len(truncationMarker) {
		return domain.TruncatedField{Value: s, OriginalLength: length, Truncated: false}
	}

	cut := limit
	if limit > 20 {
		floor := int(float64(limit) * boundaryFloor)
		boundary := -1
		for i := limit; i > floor; i-- {
			if unicode.IsSpace(runes[i]) {
				boundary = i
				break
			}
		}
		if boundary > 0 {
			cut = boundary
		}
	}

	return domain.TruncatedField{
		Value:          string(runes[:cut]) + truncationMarker,
		OriginalLength: length,
		Truncated:      true,
	}
}

// TruncateRow applies the policy to every string-typed field of a row,
// returning a new row plus metadata for each shortened field. Non-string and
// short fields pass through untouched; the input row is never mutated.
func TruncateRow(row domain.Row, policy domain.TruncationPolicy) (domain.Row, []domain.FieldTruncation) {
	out := make(domain.Row, len(row))
	var truncations []domain.FieldTruncation

	for col, val := range row {
		s, ok := val.(string)
		if !ok || policy.Unlimited() {
			out[col] = val
			continue
		}

		field := Truncate(s, policy.Limit)
		out[col] = field.Value
		if field.Truncated {
			truncations = append(truncations, domain.FieldTruncation{Column: col, Field: field})
		}
	}

	return out, truncations
}
