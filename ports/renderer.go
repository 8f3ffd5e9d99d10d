package ports

import (
	"godraft/domain/contract"
)

// TemplateRenderer applies a render context to a document template and
// yields the rendered document bytes. Implementations must load the
// template fresh on every call so that rendering one row can never leak
// state into another.
//
// A context key with no matching placeholder is silently ignored; a
// placeholder with no matching context key is a render failure.
type TemplateRenderer interface {
	Render(template []byte, context contract.RenderContext) ([]byte, error)
}
