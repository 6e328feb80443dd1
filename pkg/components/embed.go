package components

import (
	"embed"
	"io/fs"
	"sync"

	rendertemplate "github.com/goliatone/go-uikit/pkg/render/template"
	"github.com/goliatone/go-uikit/pkg/render/template/gotemplate"
)

//go:embed templates/components/*.tmpl
var embeddedTemplates embed.FS

//go:embed assets/*
var embeddedAssets embed.FS

// StylesheetName is the embedded base stylesheet served from AssetsFS.
const StylesheetName = "uikit.css"

// Template names of the embedded partials, relative to TemplatesFS.
const (
	CardTemplate  = "templates/components/card.tmpl"
	AlertTemplate = "templates/components/alert.tmpl"
)

// TemplatesFS exposes the embedded templates so a caller can layer its own
// engine over them.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

// AssetsFS exposes the embedded stylesheet for serving over HTTP or copying
// into an asset pipeline.
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return embeddedAssets
	}
	return sub
}

var (
	defaultEngineOnce sync.Once
	defaultEngineVal  rendertemplate.TemplateRenderer
	defaultEngineErr  error
)

func defaultEngine() (rendertemplate.TemplateRenderer, error) {
	defaultEngineOnce.Do(func() {
		engine, err := gotemplate.New(gotemplate.WithFS(TemplatesFS()))
		if err != nil {
			defaultEngineErr = err
			return
		}
		defaultEngineVal = engine
	})
	return defaultEngineVal, defaultEngineErr
}
