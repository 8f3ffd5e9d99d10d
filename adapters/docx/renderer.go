package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"godraft/domain/contract"
)

// Renderer fills {{placeholder}} slots in a docx template. A docx file
// is a zip archive; the text lives in word/document.xml plus any
// word/headerN.xml and word/footerN.xml parts. Substitution rewrites
// those parts and copies every other archive member verbatim.
type Renderer struct{}

// NewRenderer creates a docx template renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// placeholderPattern matches {{ name }} with optional inner whitespace
var placeholderPattern = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_]+)\s*\}\}`)

// xmlEscaper escapes substituted values for the document XML
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// Render opens the template bytes as a fresh archive and substitutes
// the context into every templated part. Each call works from its own
// zip reader, so renders are independent of one another.
//
// A placeholder with no matching context key fails the render; context
// keys without a placeholder are ignored.
func (r *Renderer) Render(template []byte, context contract.RenderContext) ([]byte, error) {
	reader, err := zip.NewReader(bytes.NewReader(template), int64(len(template)))
	if err != nil {
		return nil, fmt.Errorf("failed to open docx template: %w", err)
	}

	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)

	for _, file := range reader.File {
		content, err := readMember(file)
		if err != nil {
			writer.Close()
			return nil, fmt.Errorf("failed to read docx member %s: %w", file.Name, err)
		}

		if isTemplatedPart(file.Name) {
			content, err = substitute(content, context)
			if err != nil {
				writer.Close()
				return nil, fmt.Errorf("rendering %s: %w", file.Name, err)
			}
		}

		w, err := writer.Create(file.Name)
		if err != nil {
			writer.Close()
			return nil, fmt.Errorf("failed to write docx member %s: %w", file.Name, err)
		}
		if _, err := w.Write(content); err != nil {
			writer.Close()
			return nil, fmt.Errorf("failed to write docx member %s: %w", file.Name, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize rendered docx: %w", err)
	}

	return buf.Bytes(), nil
}

// isTemplatedPart reports whether an archive member holds renderable text
func isTemplatedPart(name string) bool {
	if name == "word/document.xml" {
		return true
	}
	if strings.HasPrefix(name, "word/header") && strings.HasSuffix(name, ".xml") {
		return true
	}
	if strings.HasPrefix(name, "word/footer") && strings.HasSuffix(name, ".xml") {
		return true
	}
	return false
}

// substitute replaces every placeholder token with its context value,
// XML-escaped. The first placeholder without a context key fails the
// whole part.
func substitute(content []byte, context contract.RenderContext) ([]byte, error) {
	var missing string

	replaced := placeholderPattern.ReplaceAllStringFunc(string(content), func(token string) string {
		name := placeholderPattern.FindStringSubmatch(token)[1]
		value, ok := context[name]
		if !ok {
			if missing == "" {
				missing = name
			}
			return token
		}
		return xmlEscaper.Replace(value)
	})

	if missing != "" {
		return nil, fmt.Errorf("placeholder %q has no matching column", missing)
	}

	return []byte(replaced), nil
}

func readMember(file *zip.File) ([]byte, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
