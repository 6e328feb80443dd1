// Package uikit is the entry point of the component kit. It re-exports the
// composition root from pkg/kit and the embedded templates and stylesheet so
// applications can mount them without importing the internal layout.
package uikit

import (
	"io/fs"
	"net/http"
	"strings"

	"github.com/goliatone/go-uikit/pkg/components"
	"github.com/goliatone/go-uikit/pkg/kit"
)

// Kit aliases kit.Kit, the composition root carrying theme, logger,
// resolver mode and registries.
type Kit = kit.Kit

// View aliases kit.View, a kit bound to one resolved theme.
type View = kit.View

// Option aliases kit.Option.
type Option = kit.Option

// Page aliases kit.Page for callers rendering data-driven documents.
type Page = kit.Page

// New constructs a Kit.
func New(options ...Option) *Kit {
	return kit.New(options...)
}

// Re-exported kit options.
var (
	WithThemeSelector  = kit.WithThemeSelector
	WithThemeDefaults  = kit.WithThemeDefaults
	WithThemeFallbacks = kit.WithThemeFallbacks
	WithLogger         = kit.WithLogger
	WithStrict         = kit.WithStrict
	WithTemplates      = kit.WithTemplates
	WithTemplateFS     = kit.WithTemplateFS
	WithRegistry       = kit.WithRegistry
	WithFieldRegistry  = kit.WithFieldRegistry
	WithCatalog        = kit.WithCatalog
	WithStylesheetHref = kit.WithStylesheetHref
)

// EmbeddedTemplates exposes the built-in component partials so callers can
// reuse or extend them in their own engine.
func EmbeddedTemplates() fs.FS {
	return components.TemplatesFS()
}

// AssetsFS exposes the embedded stylesheet.
//
// Typical mount:
//
//	mux.Handle("/assets/uikit/", uikit.AssetsHandler("/assets/uikit/"))
func AssetsFS() fs.FS {
	return components.AssetsFS()
}

// AssetsHandler serves AssetsFS under prefix. The default stylesheet href
// (kit.DefaultStylesheetHref) expects the "/assets/uikit/" prefix.
func AssetsHandler(prefix string) http.Handler {
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return http.StripPrefix(prefix, http.FileServerFS(AssetsFS()))
}
