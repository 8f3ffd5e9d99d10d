package app

import (
	"log"
	"time"

	"godraft/domain/contract"
	"godraft/internal/errors"
	"godraft/ports"
)

// GenerateService orchestrates one generation pass: every row of the
// parsed table is normalized, rendered against the template, named, and
// collected into a BatchResult for packaging.
type GenerateService struct {
	normalizer *contract.Normalizer
	renderer   ports.TemplateRenderer
	idColumn   string
}

// NewGenerateService creates a generation service
func NewGenerateService(normalizer *contract.Normalizer, renderer ports.TemplateRenderer, idColumn string) *GenerateService {
	return &GenerateService{
		normalizer: normalizer,
		renderer:   renderer,
		idColumn:   idColumn,
	}
}

// Generate processes the full table against the template, in row order.
// A table with zero data rows is a validation error. A render failure
// on any row aborts the whole batch; no partial result is returned.
//
// Two rows deriving the same filename collapse to one document, the
// later row's content winning while the earlier row's position is kept.
func (s *GenerateService) Generate(table *contract.Table, template []byte) (*contract.BatchResult, error) {
	if table == nil || len(table.Rows) == 0 {
		return nil, errors.ValidationError("data file has no data rows")
	}

	startTime := time.Now()
	log.Printf("[Generate] Starting batch of %d rows", len(table.Rows))

	result := &contract.BatchResult{}
	position := make(map[string]int, len(table.Rows))

	for i, row := range table.Rows {
		context := s.normalizer.Normalize(table.Headers, row)

		rendered, err := s.renderer.Render(template, context)
		if err != nil {
			return nil, errors.RenderError("failed to render row", errors.Wrapf(err, "row %d", i+1))
		}

		filename := contract.SafeBaseName(context[s.idColumn], i+1) + ".docx"
		doc := contract.GeneratedDocument{Filename: filename, Content: rendered}

		if at, seen := position[filename]; seen {
			result.Documents[at] = doc
		} else {
			position[filename] = len(result.Documents)
			result.Documents = append(result.Documents, doc)
		}
		result.Generated++
	}

	log.Printf("[Generate] Batch complete (%d rows, %d documents, %.2fms)",
		result.Generated, len(result.Documents), float64(time.Since(startTime).Nanoseconds())/1e6)
	return result, nil
}
