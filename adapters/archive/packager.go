package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"log"

	"godraft/domain/contract"
)

// Packager bundles generated documents into a single in-memory zip
type Packager struct{}

// NewPackager creates an archive packager
func NewPackager() *Packager {
	return &Packager{}
}

// Pack writes every document into a deflate-compressed zip, one member
// per document in input order, and returns a reader positioned at the
// start of the archive.
func (p *Packager) Pack(documents []contract.GeneratedDocument) (*bytes.Reader, error) {
	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)

	for _, doc := range documents {
		w, err := writer.Create(doc.Filename)
		if err != nil {
			writer.Close()
			return nil, fmt.Errorf("failed to add %s to archive: %w", doc.Filename, err)
		}
		if _, err := w.Write(doc.Content); err != nil {
			writer.Close()
			return nil, fmt.Errorf("failed to write %s to archive: %w", doc.Filename, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}

	log.Printf("[Packager] Archive built (%d members, %d bytes)", len(documents), buf.Len())
	return bytes.NewReader(buf.Bytes()), nil
}
