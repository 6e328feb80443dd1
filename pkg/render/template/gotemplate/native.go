package gotemplate

import (
	"fmt"
	"strings"

	gotemplatepkg "github.com/goliatone/go-template"

	"github.com/goliatone/go-uikit/pkg/render/template"
)

// NewNative builds the stock go-template renderer rooted at dir. It suits
// projects that already keep their templates on disk for go-template and want
// the kit to render through the same engine.
func NewNative(dir string) (template.TemplateRenderer, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, fmt.Errorf("gotemplate: native renderer needs a template directory")
	}
	renderer, err := gotemplatepkg.NewRenderer(
		gotemplatepkg.WithBaseDir(dir),
		gotemplatepkg.WithExtension(DefaultExtension),
	)
	if err != nil {
		return nil, fmt.Errorf("gotemplate: native renderer: %w", err)
	}
	return renderer, nil
}
