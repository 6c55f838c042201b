package domain

import (
	"fmt"
	"regexp"
	"sort"
)

// SourceTable describes one registered content table: where its title,
// content, and key live, and where it sits in the search priority order.
// Descriptors are created at process start and never mutated.
type SourceTable struct {
	// Name is the table name in the backing store.
	Name string

	// TitleField is the column holding the human-readable title.
	TitleField string

	// ContentField is the column holding the full text content.
	ContentField string

	// KeyField is the column holding the unique record identifier.
	KeyField string

	// ModifiedField is the column holding the last-modification time.
	// Used as the first tie-breaker when several rows match equally.
	ModifiedField string

	// Tag is a short display marker for provenance (e.g. "📄").
	Tag string

	// Rank is the search priority; lower ranks are searched first.
	Rank int
}

// identifierPattern is the only shape accepted for table and column names.
// Registry names are interpolated into SQL (values never are), so anything
// outside this set is a configuration fault.
var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate checks a single descriptor for missing or malformed fields.
func (t SourceTable) Validate() error {
	fields := map[string]string{
		"name":           t.Name,
		"title_field":    t.TitleField,
		"content_field":  t.ContentField,
		"key_field":      t.KeyField,
		"modified_field": t.ModifiedField,
	}
	for label, value := range fields {
		if value == "" {
			return fmt.Errorf("%w: table %q missing %s", ErrInvalidConfig, t.Name, label)
		}
		if !identifierPattern.MatchString(value) {
			return fmt.Errorf("%w: table %q has invalid %s %q", ErrInvalidConfig, t.Name, label, value)
		}
	}
	return nil
}

// Registry is the ordered list of source tables. Order encodes search
// priority and is total: no two tables share a rank. The registry is
// read-only after construction and safe for concurrent use.
type Registry struct {
	tables []SourceTable
}

// NewRegistry builds a registry from descriptors, sorting by ascending rank.
// It fails with ErrInvalidConfig if the list is empty, a descriptor is
// malformed, or names/ranks collide.
func NewRegistry(tables []SourceTable) (*Registry, error) {
	if len(tables) == 0 {
		return nil, fmt.Errorf("%w: no source tables configured", ErrInvalidConfig)
	}

	seenNames := make(map[string]bool, len(tables))
	seenRanks := make(map[int]bool, len(tables))
	ordered := make([]SourceTable, len(tables))
	copy(ordered, tables)

	for _, t := range ordered {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if seenNames[t.Name] {
			return nil, fmt.Errorf("%w: duplicate table %q", ErrInvalidConfig, t.Name)
		}
		if seenRanks[t.Rank] {
			return nil, fmt.Errorf("%w: duplicate rank %d (table %q)", ErrInvalidConfig, t.Rank, t.Name)
		}
		seenNames[t.Name] = true
		seenRanks[t.Rank] = true
	}

	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Rank < ordered[j].Rank
	})

	return &Registry{tables: ordered}, nil
}

// DefaultRegistry returns the built-in registry: structured documents first,
// free-form discussions second, generated artifacts last.
func DefaultRegistry() *Registry {
	r, err := NewRegistry([]SourceTable{
		{Name: "documents_v2", TitleField: "title", ContentField: "content", KeyField: "uuid", ModifiedField: "updated_at", Tag: "📄", Rank: 1},
		{Name: "discussions", TitleField: "summary", ContentField: "content", KeyField: "uuid", ModifiedField: "updated_at", Tag: "💭", Rank: 2},
		{Name: "artifacts", TitleField: "title", ContentField: "content", KeyField: "uuid", ModifiedField: "updated_at", Tag: "🎯", Rank: 3},
	})
	if err != nil {
		panic(err) // built-in descriptors are known valid
	}
	return r
}

// Tables returns the descriptors in priority order (ascending rank).
// The returned slice is a copy; mutating it does not affect the registry.
func (r *Registry) Tables() []SourceTable {
	out := make([]SourceTable, len(r.tables))
	copy(out, r.tables)
	return out
}

// ByName returns the descriptor for a table name.
func (r *Registry) ByName(name string) (SourceTable, error) {
	for _, t := range r.tables {
		if t.Name == name {
			return t, nil
		}
	}
	return SourceTable{}, fmt.Errorf("%w: unknown table %q", ErrInvalidInput, name)
}

// Names returns the table names in priority order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.tables))
	for i, t := range r.tables {
		names[i] = t.Name
	}
	return names
}

// Len returns the number of registered tables.
func (r *Registry) Len() int {
	return len(r.tables)
}
