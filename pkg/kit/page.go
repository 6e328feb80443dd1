package kit

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html"
	"io"
	"io/fs"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-uikit/pkg/components"
	"github.com/goliatone/go-uikit/pkg/fields"
	"github.com/goliatone/go-uikit/pkg/form"
)

// PageTemplate is the document shell every page renders through.
const PageTemplate = "templates/page.tmpl"

//go:embed templates/page.tmpl
var pageTemplates embed.FS

// PageTemplatesFS exposes the embedded page shell so it can be exported
// alongside the component partials for an external engine.
func PageTemplatesFS() fs.FS {
	return pageTemplates
}

// ErrEmptyPage is returned when a page file has neither body nodes nor a
// form.
var ErrEmptyPage = errors.New("kit: page has no content")

// Page is a data-driven document: component nodes followed by an optional
// form built from field specs.
type Page struct {
	Title   string            `json:"title,omitempty" yaml:"title,omitempty"`
	Lang    string            `json:"lang,omitempty" yaml:"lang,omitempty"`
	Theme   string            `json:"theme,omitempty" yaml:"theme,omitempty"`
	Variant string            `json:"variant,omitempty" yaml:"variant,omitempty"`
	Body    []components.Node `json:"body,omitempty" yaml:"body,omitempty"`
	Form    *PageForm         `json:"form,omitempty" yaml:"form,omitempty"`
}

// PageForm describes the form section of a page.
type PageForm struct {
	ID      string            `json:"id,omitempty" yaml:"id,omitempty"`
	Action  string            `json:"action,omitempty" yaml:"action,omitempty"`
	Method  string            `json:"method,omitempty" yaml:"method,omitempty"`
	Submit  string            `json:"submit,omitempty" yaml:"submit,omitempty"`
	Hidden  map[string]string `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	Values  map[string]any    `json:"values,omitempty" yaml:"values,omitempty"`
	Fields  []fields.Spec     `json:"fields,omitempty" yaml:"fields,omitempty"`
	Columns int               `json:"columns,omitempty" yaml:"columns,omitempty"`
}

// ParsePage decodes a YAML (or JSON, which YAML accepts) page document.
func ParsePage(data []byte) (Page, error) {
	var page Page
	if err := yaml.Unmarshal(data, &page); err != nil {
		return Page{}, fmt.Errorf("kit: parse page: %w", err)
	}
	if len(page.Body) == 0 && page.Form == nil {
		return Page{}, ErrEmptyPage
	}
	if page.Form != nil {
		seen := make(map[string]struct{}, len(page.Form.Fields))
		for idx, spec := range page.Form.Fields {
			name := strings.TrimSpace(spec.Name)
			if name == "" {
				return Page{}, fmt.Errorf("kit: parse page: field %d has no name", idx)
			}
			if _, dup := seen[name]; dup {
				return Page{}, fmt.Errorf("kit: parse page: duplicate field %q", name)
			}
			seen[name] = struct{}{}
		}
	}
	return page, nil
}

// LoadPage reads and parses a page from fsys.
func LoadPage(fsys fs.FS, path string) (Page, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Page{}, fmt.Errorf("kit: read page %s: %w", path, err)
	}
	page, err := ParsePage(data)
	if err != nil {
		return Page{}, fmt.Errorf("%w (%s)", err, path)
	}
	return page, nil
}

// NewPageForm creates a store seeded with the page form values and with
// every field registered under its rules.
func (v *View) NewPageForm(page Page, options ...form.Option) (*form.Store, error) {
	var values map[string]any
	if page.Form != nil {
		values = page.Form.Values
	}
	store := v.kit.NewForm(append([]form.Option{form.WithValues(values)}, options...)...)
	if page.Form == nil {
		return store, nil
	}
	for _, spec := range page.Form.Fields {
		if _, err := store.Register(spec.Name, spec.FieldOptions()...); err != nil {
			return nil, fmt.Errorf("kit: register %s: %w", spec.Name, err)
		}
	}
	return store, nil
}

// RenderPage writes page as a full HTML document. The form section binds to
// store; a nil store is replaced by one seeded from the page values.
func (v *View) RenderPage(w io.Writer, page Page, store *form.Store) error {
	if page.Form != nil && store == nil {
		var err error
		if store, err = v.NewPageForm(page); err != nil {
			return err
		}
	}

	var body bytes.Buffer
	names := make([]string, 0, len(page.Body)+1)
	for _, node := range page.Body {
		if err := v.kit.registry.Render(&body, v.renderer, node); err != nil {
			return fmt.Errorf("kit: render page: %w", err)
		}
		names = append(names, components.Collect(node)...)
	}
	if page.Form != nil {
		if err := v.renderForm(&body, *page.Form, store); err != nil {
			return err
		}
		names = append(names, components.NameForm)
	}

	stylesheets, scripts := v.kit.registry.Assets(names)
	if href := v.AssetURL(StylesheetAsset); href != "" {
		stylesheets = append(stylesheets, href)
	}

	lang := page.Lang
	if lang == "" {
		lang = "en"
	}
	data := map[string]any{
		"title":       page.Title,
		"lang":        lang,
		"stylesheets": stylesheets,
		"head":        "",
		"body":        body.String(),
		"scripts":     renderScripts(scripts),
	}
	if cfg := v.theme; cfg != nil {
		data["theme"] = cfg.Theme
		data["variant"] = cfg.Variant
		data["theme_style"] = CSSVarsStyle(cfg.CSSVars)
	}

	engine, err := v.kit.engine()
	if err != nil {
		return err
	}
	if _, err := engine.RenderTemplate(PageTemplate, data, w); err != nil {
		return fmt.Errorf("kit: render page: %w", err)
	}
	return nil
}

func (v *View) renderForm(buf *bytes.Buffer, spec PageForm, store *form.Store) error {
	adapter := v.Fields(store)

	var children bytes.Buffer
	grid := "space-y-6"
	if spec.Columns > 1 {
		grid = fmt.Sprintf("grid gap-6 md:grid-cols-%d", spec.Columns)
	}
	children.WriteString(`<div class="` + grid + `">`)
	for _, field := range spec.Fields {
		if err := adapter.Render(&children, field); err != nil {
			return fmt.Errorf("kit: render field: %w", err)
		}
	}
	children.WriteString(`</div>`)

	label := spec.Submit
	if label == "" {
		label = "Submit"
	}
	if err := v.renderer.Button(&children, components.ButtonProps{Type: "submit", Label: label}); err != nil {
		return err
	}

	encType := ""
	for _, field := range spec.Fields {
		if adapter.Kind(field) == fields.KindDndInput {
			encType = "multipart/form-data"
			break
		}
	}

	return v.renderer.Form(buf, components.FormProps{
		ID:         spec.ID,
		Action:     spec.Action,
		Method:     spec.Method,
		EncType:    encType,
		Hidden:     spec.Hidden,
		FormErrors: store.FormErrors(),
		Children:   components.Markup(children.String()),
	})
}

func renderScripts(scripts []components.Script) string {
	if len(scripts) == 0 {
		return ""
	}
	var b strings.Builder
	for _, script := range scripts {
		b.WriteString("<script")
		if script.Module {
			b.WriteString(` type="module"`)
		} else if script.Type != "" {
			b.WriteString(` type="` + html.EscapeString(script.Type) + `"`)
		}
		if script.Src != "" {
			b.WriteString(` src="` + html.EscapeString(script.Src) + `"`)
		}
		if script.Async {
			b.WriteString(" async")
		}
		if script.Defer {
			b.WriteString(" defer")
		}
		keys := make([]string, 0, len(script.Attrs))
		for key := range script.Attrs {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			b.WriteString(" " + html.EscapeString(key) + `="` + html.EscapeString(script.Attrs[key]) + `"`)
		}
		b.WriteString(">")
		if script.Src == "" {
			b.WriteString(script.Inline)
		}
		b.WriteString("</script>\n")
	}
	return b.String()
}

// RenderPage resolves the theme the page names, falling back to the kit
// defaults, and renders it.
func (k *Kit) RenderPage(w io.Writer, page Page, store *form.Store) error {
	view, err := k.View(page.Theme, page.Variant)
	if err != nil {
		return err
	}
	return view.RenderPage(w, page, store)
}
