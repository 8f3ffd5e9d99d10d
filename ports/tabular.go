package ports

import (
	"godraft/domain/contract"
)

// TableReader parses a tabular file into ordered rows of named fields.
// An input with a header row but no data rows yields an empty Rows
// slice, not an error; the orchestrator owns the empty-dataset check.
type TableReader interface {
	ReadTable() (*contract.Table, error)
}
