package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testNormalizer() *Normalizer {
	return NewNormalizer(NewDateFieldSet([]string{"effective_date", "start_date", "end_date"}))
}

func TestNormalizeDateFieldsDayFirst(t *testing.T) {
	n := testNormalizer()
	headers := []string{"contract_id", "effective_date", "start_date", "end_date"}

	row := RawRow{
		"contract_id":    "C-001",
		"effective_date": "03/04/2025",
		"start_date":     "05-01-2024",
		"end_date":       "2025-12-15",
	}

	context := n.Normalize(headers, row)

	// Ambiguous numeric dates resolve day-first
	assert.Equal(t, "3 April 2025", context["effective_date"])
	assert.Equal(t, "5 January 2024", context["start_date"])
	assert.Equal(t, "15 December 2025", context["end_date"])
	assert.Equal(t, "C-001", context["contract_id"])
}

func TestNormalizeUnparseableDateFallsBack(t *testing.T) {
	n := testNormalizer()
	headers := []string{"effective_date", "start_date"}

	row := RawRow{
		"effective_date": "upon signature",
		"start_date":     "31/31/2025",
	}

	context := n.Normalize(headers, row)

	assert.Equal(t, "upon signature", context["effective_date"])
	assert.Equal(t, "31/31/2025", context["start_date"])
}

func TestNormalizeMissingValuesBecomeEmptyStrings(t *testing.T) {
	n := testNormalizer()
	headers := []string{"contract_id", "party_name", "effective_date"}

	// party_name absent, effective_date explicitly empty
	row := RawRow{
		"contract_id":    "C-002",
		"effective_date": "",
	}

	context := n.Normalize(headers, row)

	assert.Len(t, context, 3)
	assert.Equal(t, "", context["party_name"])
	assert.Equal(t, "", context["effective_date"])
}

func TestNormalizeNonDateFieldsPassThrough(t *testing.T) {
	n := testNormalizer()
	headers := []string{"amount", "rate", "signed_date"}

	// signed_date is not in the date-field set, so it stays raw even
	// though it would parse
	row := RawRow{
		"amount":      "1250.50",
		"rate":        "4%",
		"signed_date": "03/04/2025",
	}

	context := n.Normalize(headers, row)

	assert.Equal(t, "1250.50", context["amount"])
	assert.Equal(t, "4%", context["rate"])
	assert.Equal(t, "03/04/2025", context["signed_date"])
}

func TestNormalizeDateFieldMatchIsCaseSensitive(t *testing.T) {
	n := testNormalizer()
	headers := []string{"Effective_Date"}

	context := n.Normalize(headers, RawRow{"Effective_Date": "03/04/2025"})

	assert.Equal(t, "03/04/2025", context["Effective_Date"])
}

func TestNormalizeKeepsEveryHeader(t *testing.T) {
	n := testNormalizer()
	headers := []string{"a", "b", "c", "d", "e"}
	row := RawRow{"a": "1", "c": "3", "e": "5"}

	context := n.Normalize(headers, row)

	for _, header := range headers {
		_, ok := context[header]
		assert.True(t, ok, "header %q must be present in the context", header)
	}
}
