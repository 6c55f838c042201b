package domain

import (
	"strings"
	"time"
	"unicode"
)

// Record is a content record as written by outer tooling. The retrieval core
// itself only reads; this type exists for the store's write path and for
// seeding tests.
type Record struct {
	// Key is the unique identifier. Empty on save means "generate one".
	Key string

	// Title is the human-readable title (stored in the table's title field).
	Title string

	// Content is the full text content.
	Content string

	// CreatedAt is when the record was first stored.
	CreatedAt time.Time

	// UpdatedAt is when the record was last updated.
	UpdatedAt time.Time
}

// safeNameMaxTitle caps the title portion of a derived file name. The cap is
// about the name only and has nothing to do with content truncation.
const safeNameMaxTitle = 50

// SafeName derives a filesystem-safe name from a title and record key:
// lowercase, non-alphanumeric runs collapsed to single underscores, title
// portion capped, short key suffix for uniqueness.
func SafeName(title, key string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
		} else {
			pendingSep = true
		}
	}

	name := b.String()
	if runes := []rune(name); len(runes) > safeNameMaxTitle {
		name = strings.TrimRight(string(runes[:safeNameMaxTitle]), "_")
	}
	if name == "" {
		name = "untitled"
	}

	shortKey := key
	if len(shortKey) > 8 {
		shortKey = shortKey[:8]
	}
	if shortKey == "" {
		shortKey = "unknown"
	}

	return name + "_" + shortKey + ".md"
}
