package template

import (
	"io"
)

// TemplateRenderer is the engine contract shared with
// github.com/goliatone/go-template. Components render their template-backed
// partials (card, alert, page shells) through it so a theme can swap the
// files without touching Go code.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
