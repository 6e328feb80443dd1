package fields

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/goliatone/go-uikit/pkg/components"
	"github.com/goliatone/go-uikit/pkg/form"
)

// Option configures an Adapter.
type Option func(*Adapter)

// WithRenderer sets the component renderer. Defaults to
// components.NewRenderer().
func WithRenderer(renderer *components.Renderer) Option {
	return func(a *Adapter) {
		if renderer != nil {
			a.renderer = renderer
		}
	}
}

// WithRegistry sets the kind registry used by Render and Apply.
func WithRegistry(registry *Registry) Option {
	return func(a *Adapter) {
		if registry != nil {
			a.registry = registry
		}
	}
}

// Adapter renders fields bound to one form store.
type Adapter struct {
	store    *form.Store
	renderer *components.Renderer
	registry *Registry
}

// New returns an adapter bound to store. A nil store is accepted here and
// reported as ErrNoForm by every render and change call.
func New(store *form.Store, options ...Option) *Adapter {
	a := &Adapter{
		store:    store,
		renderer: components.NewRenderer(),
		registry: NewRegistry(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(a)
		}
	}
	return a
}

// Store returns the bound store.
func (a *Adapter) Store() *form.Store {
	if a == nil {
		return nil
	}
	return a.store
}

// bind registers the field on first use, or whenever the props carry
// rules, and returns its current binding.
func (a *Adapter) bind(p Props) (form.Binding, error) {
	name := strings.TrimSpace(p.Name)
	if a == nil || a.store == nil {
		return form.Binding{}, fmt.Errorf("fields: %s: %w", name, ErrNoForm)
	}
	if name == "" {
		return form.Binding{}, fmt.Errorf("fields: field name is required")
	}
	opts := p.FieldOptions()
	if binding, ok := a.store.Field(name); ok && len(opts) == 0 {
		return binding, nil
	}
	binding, err := a.store.Register(name, opts...)
	if err != nil {
		return form.Binding{}, fmt.Errorf("fields: %w", err)
	}
	return binding, nil
}

// field returns the binding for name, registering it without rules when
// needed.
func (a *Adapter) field(name string) (form.Binding, error) {
	return a.bind(Props{Name: name})
}

type layout int

const (
	stacked layout = iota
	// inline puts the control before its label on one row.
	inline
)

func (a *Adapter) item(buf *bytes.Buffer, p Props, pres Presentation, l layout, control func(*bytes.Buffer) error) error {
	buf.WriteString(`<div class="space-y-2" data-slot="form-item"`)
	writeAttr(buf, "data-field", p.Name)
	if pres.Invalid {
		buf.WriteString(` data-invalid="true"`)
	}
	buf.WriteByte('>')

	label := func() error {
		if pres.Label == "" {
			return nil
		}
		return a.renderer.Label(buf, components.LabelProps{
			For:      pres.ID,
			Text:     pres.Label,
			Required: pres.Required,
			Invalid:  pres.Invalid,
		})
	}

	if l == inline {
		buf.WriteString(`<div class="flex flex-row items-center space-x-3 space-y-0">`)
		if err := control(buf); err != nil {
			return err
		}
		if err := label(); err != nil {
			return err
		}
		buf.WriteString(`</div>`)
	} else {
		if err := label(); err != nil {
			return err
		}
		if err := control(buf); err != nil {
			return err
		}
	}

	if pres.ShowDescription {
		buf.WriteString(`<p`)
		writeAttr(buf, "id", pres.DescriptionID)
		buf.WriteString(` class="text-sm text-muted-foreground">`)
		buf.WriteString(html.EscapeString(pres.Description))
		buf.WriteString(`</p>`)
	}
	switch pres.Slot {
	case SlotError:
		buf.WriteString(`<p`)
		writeAttr(buf, "id", pres.MessageID)
		buf.WriteString(` class="text-sm font-medium text-destructive">`)
		buf.WriteString(html.EscapeString(pres.Message))
		buf.WriteString(`</p>`)
	case SlotWarning:
		buf.WriteString(`<p`)
		writeAttr(buf, "id", pres.MessageID)
		buf.WriteString(` class="text-sm text-yellow-600 dark:text-yellow-500" role="alert">`)
		buf.WriteString(html.EscapeString(pres.Message))
		buf.WriteString(`</p>`)
	}
	buf.WriteString(`</div>`)
	return nil
}

func writeAttr(buf *bytes.Buffer, name, value string) {
	if value == "" {
		return
	}
	buf.WriteByte(' ')
	buf.WriteString(name)
	buf.WriteString(`="`)
	buf.WriteString(html.EscapeString(value))
	buf.WriteByte('"')
}

func mustRender(err error) {
	if err != nil {
		panic(err)
	}
}
