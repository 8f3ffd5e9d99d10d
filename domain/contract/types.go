package contract

// RawRow represents one data row as string key-value pairs.
// The empty string is the missing-value sentinel: tabular adapters
// normalize absent cells to "" so every header has an entry.
type RawRow map[string]string

// Table represents the complete parsed dataset
type Table struct {
	Headers []string // Column headers in sheet order
	Rows    []RawRow // Data rows in sheet order
}

// RenderContext maps placeholder names to display-ready string values.
// Every key present in the source row is present here; missing source
// values map to "", never to an absent key.
type RenderContext map[string]string

// DateFieldSet is the set of column names receiving date formatting.
// Membership is by exact, case-sensitive name match.
type DateFieldSet map[string]struct{}

// NewDateFieldSet builds a DateFieldSet from column names
func NewDateFieldSet(columns []string) DateFieldSet {
	set := make(DateFieldSet, len(columns))
	for _, col := range columns {
		set[col] = struct{}{}
	}
	return set
}

// Contains reports whether the column receives date formatting
func (s DateFieldSet) Contains(column string) bool {
	_, ok := s[column]
	return ok
}

// GeneratedDocument is one rendered document ready for packaging
type GeneratedDocument struct {
	Filename string
	Content  []byte
}

// BatchResult carries the output of one generation pass.
// Documents is deduplicated by filename (last row wins, first position
// kept); Generated counts every row processed, collisions included.
type BatchResult struct {
	Documents []GeneratedDocument
	Generated int
}
