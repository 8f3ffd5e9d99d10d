package contract

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxBaseNameLength bounds derived filenames for common filesystems
const MaxBaseNameLength = 80

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// SafeBaseName derives a filesystem-safe base name (no extension) from a
// candidate identifier. A blank candidate falls back to the row's
// 1-based position. Runs of characters outside [A-Za-z0-9_-] collapse to
// a single underscore; the result is capped at MaxBaseNameLength.
// Deterministic and idempotent.
func SafeBaseName(candidate string, rowIndex int) string {
	name := strings.TrimSpace(candidate)
	if name == "" {
		name = fmt.Sprintf("contract_%d", rowIndex)
	}

	name = unsafeChars.ReplaceAllString(name, "_")
	if len(name) > MaxBaseNameLength {
		name = name[:MaxBaseNameLength]
	}
	return name
}
