package ui

import (
	"html/template"
	"io/fs"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// renderHelp converts the embedded usage notes from markdown into HTML
// for the index page
func renderHelp(files fs.FS) (template.HTML, error) {
	raw, err := fs.ReadFile(files, "ui/notes.md")
	if err != nil {
		return "", err
	}

	p := parser.NewWithExtensions(parser.CommonExtensions)
	doc := p.Parse(raw)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})

	return template.HTML(markdown.Render(doc, renderer)), nil
}
