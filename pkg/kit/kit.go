package kit

import (
	"fmt"
	"io/fs"
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-uikit/pkg/components"
	"github.com/goliatone/go-uikit/pkg/fields"
	"github.com/goliatone/go-uikit/pkg/form"
	rendertemplate "github.com/goliatone/go-uikit/pkg/render/template"
	"github.com/goliatone/go-uikit/pkg/render/template/gotemplate"
	"github.com/goliatone/go-uikit/pkg/variants"
)

// DefaultStylesheetHref is where pages link the embedded stylesheet unless
// WithStylesheetHref says otherwise.
const DefaultStylesheetHref = "/assets/uikit/" + components.StylesheetName

// Option configures a Kit.
type Option func(*Kit)

// WithThemeSelector sets the go-theme selector used to resolve theme and
// variant names into partials, tokens and assets.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(k *Kit) {
		k.selector = selector
	}
}

// WithThemeDefaults sets the theme and variant selected when a view or page
// does not name one.
func WithThemeDefaults(name, variant string) Option {
	return func(k *Kit) {
		k.defaultTheme = strings.TrimSpace(name)
		k.defaultVariant = strings.TrimSpace(variant)
	}
}

// WithThemeFallbacks adds partials used when the selected theme does not
// override them. They layer over DefaultThemeFallbacks.
func WithThemeFallbacks(fallbacks map[string]string) Option {
	return func(k *Kit) {
		for key, value := range fallbacks {
			if key = strings.TrimSpace(key); key != "" {
				k.fallbacks[key] = value
			}
		}
	}
}

// WithLogger sets the logger handed to the resolver, the stores the kit
// creates and the theme selection path.
func WithLogger(logger zerolog.Logger) Option {
	return func(k *Kit) {
		k.logger = logger
	}
}

// WithStrict makes unknown variant values panic instead of logging and
// falling back to the axis default. Use it in development builds.
func WithStrict(strict bool) Option {
	return func(k *Kit) {
		k.strict = strict
	}
}

// WithTemplates replaces the template engine. The engine must be able to
// load every partial a theme maps, including the embedded fallbacks unless
// they are overridden.
func WithTemplates(templates rendertemplate.TemplateRenderer) Option {
	return func(k *Kit) {
		k.templates = templates
	}
}

// WithTemplateFS adds a template source searched before the embedded
// templates, so themes can ship partials alongside the application.
func WithTemplateFS(files fs.FS) Option {
	return func(k *Kit) {
		if files != nil {
			k.templateFS = append(k.templateFS, files)
		}
	}
}

// WithRegistry replaces the component registry used for data-driven pages.
func WithRegistry(registry *components.Registry) Option {
	return func(k *Kit) {
		k.registry = registry
	}
}

// WithFieldRegistry replaces the registry that maps field specs to adapters.
func WithFieldRegistry(registry *fields.Registry) Option {
	return func(k *Kit) {
		k.fieldRegistry = registry
	}
}

// WithCatalog replaces built-in variant specs by name.
func WithCatalog(catalog *variants.Catalog) Option {
	return func(k *Kit) {
		k.catalog = catalog
	}
}

// WithStylesheetHref sets the URL pages use for the embedded stylesheet.
// An empty href leaves it out.
func WithStylesheetHref(href string) Option {
	return func(k *Kit) {
		k.stylesheetHref = strings.TrimSpace(href)
		k.stylesheetSet = true
	}
}

// Kit is the composition root: it owns the theme selector, logger, resolver
// mode, template engine and registries, and hands them to views explicitly.
type Kit struct {
	selector       theme.ThemeSelector
	defaultTheme   string
	defaultVariant string
	fallbacks      map[string]string

	logger    zerolog.Logger
	strict    bool
	resolver  *variants.Resolver
	catalog   *variants.Catalog
	templates rendertemplate.TemplateRenderer

	templateFS     []fs.FS
	registry       *components.Registry
	fieldRegistry  *fields.Registry
	stylesheetHref string
	stylesheetSet  bool

	engineOnce sync.Once
	engineErr  error
}

// New constructs a Kit. Without options it renders in production mode with
// the embedded templates, the default component registry and no theme.
func New(options ...Option) *Kit {
	k := &Kit{
		fallbacks: DefaultThemeFallbacks(),
		logger:    zerolog.Nop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(k)
		}
	}
	if !k.stylesheetSet {
		k.stylesheetHref = DefaultStylesheetHref
	}
	if k.registry == nil {
		k.registry = components.NewDefaultRegistry(k.stylesheetHref)
	}
	if k.fieldRegistry == nil {
		k.fieldRegistry = fields.NewRegistry()
	}
	k.resolver = variants.NewResolver(
		variants.WithStrict(k.strict),
		variants.WithLogger(k.logger),
	)
	return k
}

// Strict reports whether the kit resolves variants in strict mode.
func (k *Kit) Strict() bool {
	return k.strict
}

// Logger returns the kit logger.
func (k *Kit) Logger() zerolog.Logger {
	return k.logger
}

// Registry returns the component registry.
func (k *Kit) Registry() *components.Registry {
	return k.registry
}

// NewForm creates a form store that logs through the kit logger. Options
// are applied after the kit defaults.
func (k *Kit) NewForm(options ...form.Option) *form.Store {
	opts := append([]form.Option{form.WithLogger(k.logger)}, options...)
	return form.New(opts...)
}

// View resolves a theme and returns the renderer bound to it. Empty names
// select the kit defaults.
func (k *Kit) View(themeName, variant string) (*View, error) {
	cfg, err := k.SelectTheme(themeName, variant)
	if err != nil {
		return nil, err
	}
	engine, err := k.engine()
	if err != nil {
		return nil, err
	}

	options := []components.Option{
		components.WithResolver(k.resolver),
		components.WithTemplates(engine),
		components.WithLogger(k.logger),
	}
	if k.catalog != nil {
		options = append(options, components.WithCatalog(k.catalog))
	}
	if cfg != nil {
		options = append(options, components.WithPartials(cfg.Partials))
	}

	return &View{
		kit:      k,
		theme:    cfg,
		renderer: components.NewRenderer(options...),
	}, nil
}

func (k *Kit) engine() (rendertemplate.TemplateRenderer, error) {
	k.engineOnce.Do(func() {
		if k.templates != nil {
			return
		}
		opts := make([]gotemplate.Option, 0, len(k.templateFS)+2)
		for _, files := range k.templateFS {
			opts = append(opts, gotemplate.WithFS(files))
		}
		opts = append(opts,
			gotemplate.WithFS(components.TemplatesFS()),
			gotemplate.WithFS(PageTemplatesFS()),
		)
		engine, err := gotemplate.New(opts...)
		if err != nil {
			k.engineErr = fmt.Errorf("kit: template engine: %w", err)
			return
		}
		k.templates = engine
	})
	return k.templates, k.engineErr
}

// View is a Kit bound to one resolved theme. It is safe to share between
// requests; per-request state lives in the form store passed to Fields.
type View struct {
	kit      *Kit
	theme    *theme.RendererConfig
	renderer *components.Renderer
}

// Theme returns the resolved theme configuration, nil when the kit has no
// selector.
func (v *View) Theme() *theme.RendererConfig {
	return v.theme
}

// Renderer returns the component renderer for this view.
func (v *View) Renderer() *components.Renderer {
	return v.renderer
}

// Fields returns a field adapter bound to store. A nil store yields an
// adapter whose calls fail with fields.ErrNoForm.
func (v *View) Fields(store *form.Store) *fields.Adapter {
	return fields.New(store,
		fields.WithRenderer(v.renderer),
		fields.WithRegistry(v.kit.fieldRegistry),
	)
}

// AssetURL resolves a theme asset key, or returns "" without a theme.
func (v *View) AssetURL(key string) string {
	if v.theme == nil || v.theme.AssetURL == nil {
		return ""
	}
	return v.theme.AssetURL(key)
}
