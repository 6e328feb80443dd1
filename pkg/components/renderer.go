package components

import (
	"bytes"
	"fmt"
	"maps"
	"strings"

	"github.com/rs/zerolog"

	rendertemplate "github.com/goliatone/go-uikit/pkg/render/template"
	"github.com/goliatone/go-uikit/pkg/variants"
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithResolver sets the variant resolver. Use a strict resolver in
// development so bad variant names fail loudly.
func WithResolver(resolver *variants.Resolver) Option {
	return func(r *Renderer) {
		if resolver != nil {
			r.resolver = resolver
		}
	}
}

// WithTemplates sets the engine used by template-backed components.
func WithTemplates(templates rendertemplate.TemplateRenderer) Option {
	return func(r *Renderer) {
		r.templates = templates
	}
}

// WithPartials maps partial keys (e.g. "components.card") to template names
// that replace the embedded defaults.
func WithPartials(partials map[string]string) Option {
	return func(r *Renderer) {
		if len(partials) == 0 {
			return
		}
		if r.partials == nil {
			r.partials = make(map[string]string, len(partials))
		}
		for key, value := range partials {
			if value = strings.TrimSpace(value); value != "" {
				r.partials[strings.TrimSpace(key)] = value
			}
		}
	}
}

// WithCatalog replaces built-in variant specs by name, letting a theme ship
// its own class tables.
func WithCatalog(catalog *variants.Catalog) Option {
	return func(r *Renderer) {
		r.catalog = catalog
	}
}

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Renderer) {
		r.logger = logger
	}
}

// Renderer renders components. It holds no per-request state and is safe
// for concurrent use once constructed.
type Renderer struct {
	resolver  *variants.Resolver
	templates rendertemplate.TemplateRenderer
	partials  map[string]string
	catalog   *variants.Catalog
	logger    zerolog.Logger
}

// NewRenderer constructs a Renderer. Without options it resolves variants in
// production mode and renders template-backed components from the embedded
// templates.
func NewRenderer(options ...Option) *Renderer {
	r := &Renderer{
		resolver: variants.NewResolver(),
		logger:   zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Partials returns a copy of the partial overrides.
func (r *Renderer) Partials() map[string]string {
	return maps.Clone(r.partials)
}

// Class resolves spec with the caller's choices and override, substituting
// a catalog spec of the same name when one is configured.
func (r *Renderer) Class(spec variants.Spec, choices variants.Choices, override string) string {
	if r.catalog != nil {
		if replacement, ok := r.catalog.Spec(spec.Name); ok {
			spec = replacement
		}
	}
	return r.resolver.Resolve(spec, choices, override)
}

func (r *Renderer) partial(key, fallback string) string {
	if name := r.partials[key]; name != "" {
		return name
	}
	return fallback
}

func (r *Renderer) renderTemplate(buf *bytes.Buffer, key, fallback string, data map[string]any) error {
	engine := r.templates
	if engine == nil {
		var err error
		if engine, err = defaultEngine(); err != nil {
			return fmt.Errorf("components: %s: %w", key, err)
		}
	}
	name := r.partial(key, fallback)
	if _, err := engine.RenderTemplate(name, data, buf); err != nil {
		return fmt.Errorf("components: render %s: %w", key, err)
	}
	return nil
}
