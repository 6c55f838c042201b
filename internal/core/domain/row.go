package domain

// Row is a single storage result row: column name to raw value, exactly as
// returned by the storage collaborator. Rows are untouched until they pass
// through the truncation engine.
type Row map[string]any

// TruncatedField is the rendering of one string value after truncation.
type TruncatedField struct {
	// Value is the rendered value, possibly shortened with a marker.
	Value string

	// OriginalLength is the stored value's length in runes.
	OriginalLength int

	// Truncated reports whether Value differs from the stored value.
	Truncated bool
}

// FieldTruncation ties a TruncatedField to the column it came from.
type FieldTruncation struct {
	// Column is the column name within the row.
	Column string

	// Field is the truncation outcome for that column.
	Field TruncatedField
}
