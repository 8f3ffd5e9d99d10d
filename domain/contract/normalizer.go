package contract

// Normalizer converts raw rows into render contexts, applying
// type-specific display formatting per column
type Normalizer struct {
	dateFields DateFieldSet
}

// NewNormalizer creates a normalizer with the given date-field set
func NewNormalizer(dateFields DateFieldSet) *Normalizer {
	return &Normalizer{dateFields: dateFields}
}

// Normalize cleans and formats one data row into a context suitable for
// template rendering. Rules, per header:
//   - missing value → empty string
//   - date-designated column → day-first parse formatted as
//     "2 January 2006", raw value kept when parsing fails
//   - anything else → raw string unchanged
//
// No header is dropped or renamed and no value aborts the row.
func (n *Normalizer) Normalize(headers []string, row RawRow) RenderContext {
	context := make(RenderContext, len(headers))

	for _, header := range headers {
		value := row[header]
		if value == "" {
			context[header] = ""
			continue
		}

		if n.dateFields.Contains(header) {
			if t, ok := ParseDayFirst(value); ok {
				context[header] = FormatDate(t)
			} else {
				context[header] = value
			}
			continue
		}

		context[header] = value
	}

	return context
}
