package fields

import (
	"bytes"
	"fmt"
	"html"
	"slices"
	"strings"

	"github.com/goliatone/go-uikit/pkg/components"
	"github.com/goliatone/go-uikit/pkg/variants"
	"github.com/goliatone/go-uikit/pkg/widgets"
)

// CheckboxProps configures Checkbox.
type CheckboxProps struct {
	Props `yaml:",inline"`
}

// Checkbox renders a checkbox with its label on the same row.
func (a *Adapter) Checkbox(buf *bytes.Buffer, p CheckboxProps) error {
	binding, err := a.bind(p.Props)
	if err != nil {
		return err
	}
	pres := Present(p.Props, binding)
	return a.item(buf, p.Props, pres, inline, func(buf *bytes.Buffer) error {
		return a.renderer.Checkbox(buf, components.CheckboxProps{
			Control: pres.control(p.Props),
			Checked: truthy(binding.Value),
			Class:   p.Class,
		})
	})
}

// MustCheckbox is Checkbox that panics on error.
func (a *Adapter) MustCheckbox(buf *bytes.Buffer, p CheckboxProps) {
	mustRender(a.Checkbox(buf, p))
}

// SwitchProps configures Switch.
type SwitchProps struct {
	Props `yaml:",inline"`
}

// Switch renders a switch with its label on the same row.
func (a *Adapter) Switch(buf *bytes.Buffer, p SwitchProps) error {
	binding, err := a.bind(p.Props)
	if err != nil {
		return err
	}
	pres := Present(p.Props, binding)
	return a.item(buf, p.Props, pres, inline, func(buf *bytes.Buffer) error {
		return a.renderer.Switch(buf, components.SwitchProps{
			Control: pres.control(p.Props),
			Checked: truthy(binding.Value),
			Class:   p.Class,
		})
	})
}

// MustSwitch is Switch that panics on error.
func (a *Adapter) MustSwitch(buf *bytes.Buffer, p SwitchProps) {
	mustRender(a.Switch(buf, p))
}

// ChangeBool stores a checked state.
func (a *Adapter) ChangeBool(name string, checked bool) error {
	binding, err := a.field(name)
	if err != nil {
		return err
	}
	return binding.OnChange(checked)
}

// SelectMode is the mutually exclusive configuration of Select: either
// SingleSelect or MultipleSelect.
type SelectMode interface {
	selectMode()
}

// SingleSelect stores one option id as a string.
type SingleSelect struct {
	Searchable bool   `json:"searchable,omitempty" yaml:"searchable,omitempty"`
	Query      string `json:"query,omitempty" yaml:"query,omitempty"`
}

// MultipleSelect stores a []string of option ids. Max caps the selection;
// zero is unlimited.
type MultipleSelect struct {
	Max           int    `json:"max,omitempty" yaml:"max,omitempty"`
	Searchable    bool   `json:"searchable,omitempty" yaml:"searchable,omitempty"`
	ShowSelectAll bool   `json:"showSelectAll,omitempty" yaml:"showSelectAll,omitempty"`
	Query         string `json:"query,omitempty" yaml:"query,omitempty"`
}

func (SingleSelect) selectMode()   {}
func (MultipleSelect) selectMode() {}

// SelectProps configures Select. A nil Mode is SingleSelect{}.
type SelectProps struct {
	Props     `yaml:",inline"`
	Options   []widgets.Option `json:"options,omitempty" yaml:"options,omitempty"`
	Mode      SelectMode       `json:"-" yaml:"-"`
	Open      bool             `json:"open,omitempty" yaml:"open,omitempty"`
	FullWidth bool             `json:"fullWidth,omitempty" yaml:"fullWidth,omitempty"`
}

// Select renders a single or multiple choice combobox depending on Mode.
func (a *Adapter) Select(buf *bytes.Buffer, p SelectProps) error {
	binding, err := a.bind(p.Props)
	if err != nil {
		return err
	}
	pres := Present(p.Props, binding)

	switch mode := p.Mode.(type) {
	case nil:
		return a.renderSingle(buf, p, pres, SingleSelect{}, binding.Value)
	case SingleSelect:
		return a.renderSingle(buf, p, pres, mode, binding.Value)
	case *SingleSelect:
		return a.renderSingle(buf, p, pres, *mode, binding.Value)
	case MultipleSelect:
		return a.renderMultiple(buf, p, pres, mode, binding.Value)
	case *MultipleSelect:
		return a.renderMultiple(buf, p, pres, *mode, binding.Value)
	default:
		return fmt.Errorf("fields: %s: unsupported select mode %T", p.Name, p.Mode)
	}
}

// MustSelect is Select that panics on error.
func (a *Adapter) MustSelect(buf *bytes.Buffer, p SelectProps) {
	mustRender(a.Select(buf, p))
}

// MultiSelect renders Select in MultipleSelect mode.
func (a *Adapter) MultiSelect(buf *bytes.Buffer, p SelectProps, mode MultipleSelect) error {
	p.Mode = mode
	return a.Select(buf, p)
}

func (a *Adapter) renderSingle(buf *bytes.Buffer, p SelectProps, pres Presentation, mode SingleSelect, value any) error {
	return a.item(buf, p.Props, pres, stacked, func(buf *bytes.Buffer) error {
		return a.renderer.Select(buf, components.SelectProps{
			Control:     pres.control(p.Props),
			Options:     p.Options,
			Value:       TextDisplay(value, value != nil),
			Placeholder: p.Placeholder,
			Searchable:  mode.Searchable,
			Query:       mode.Query,
			Open:        p.Open,
			FullWidth:   p.FullWidth,
			Class:       p.Class,
		})
	})
}

func (a *Adapter) renderMultiple(buf *bytes.Buffer, p SelectProps, pres Presentation, mode MultipleSelect, value any) error {
	return a.item(buf, p.Props, pres, stacked, func(buf *bytes.Buffer) error {
		return a.renderer.MultiSelect(buf, components.MultiSelectProps{
			Control:       pres.control(p.Props),
			Options:       p.Options,
			Value:         selection(value),
			Max:           mode.Max,
			Placeholder:   p.Placeholder,
			Searchable:    mode.Searchable,
			ShowSelectAll: mode.ShowSelectAll,
			Query:         mode.Query,
			Open:          p.Open,
			FullWidth:     p.FullWidth,
			Class:         p.Class,
		})
	})
}

// ChangeChoice stores a single option id. An empty id removes the value.
func (a *Adapter) ChangeChoice(name, id string) error {
	binding, err := a.field(name)
	if err != nil {
		return err
	}
	if id == "" {
		return binding.OnChange(nil)
	}
	return binding.OnChange(id)
}

// ChangeSelection stores a multi-select selection. An empty selection
// removes the value so required rules fail on it.
func (a *Adapter) ChangeSelection(name string, ids []string) error {
	binding, err := a.field(name)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return binding.OnChange(nil)
	}
	return binding.OnChange(slices.Clone(ids))
}

// ToggleOption applies widgets.MultiSelect.Toggle to the stored selection.
func (a *Adapter) ToggleOption(name string, state widgets.MultiSelect, id string) error {
	current, err := a.Selection(name)
	if err != nil {
		return err
	}
	return a.ChangeSelection(name, state.Toggle(current, id))
}

// ToggleAll applies widgets.MultiSelect.ToggleAll to the stored selection.
func (a *Adapter) ToggleAll(name string, state widgets.MultiSelect) error {
	current, err := a.Selection(name)
	if err != nil {
		return err
	}
	return a.ChangeSelection(name, state.ToggleAll(current))
}

// RemoveOption applies widgets.MultiSelect.Remove to the stored selection.
func (a *Adapter) RemoveOption(name string, state widgets.MultiSelect, id string) error {
	current, err := a.Selection(name)
	if err != nil {
		return err
	}
	return a.ChangeSelection(name, state.Remove(current, id))
}

// Selection returns the stored selection of a multi-select field.
func (a *Adapter) Selection(name string) ([]string, error) {
	binding, err := a.field(name)
	if err != nil {
		return nil, err
	}
	return selection(binding.Value), nil
}

// RadioGroupProps configures RadioGroup. Buttons renders the options as a
// segmented row of buttons instead of radio circles.
type RadioGroupProps struct {
	Props       `yaml:",inline"`
	Options     []widgets.Option `json:"options,omitempty" yaml:"options,omitempty"`
	Orientation string           `json:"orientation,omitempty" yaml:"orientation,omitempty"`
	Buttons     bool             `json:"buttons,omitempty" yaml:"buttons,omitempty"`
	ButtonSize  string           `json:"buttonSize,omitempty" yaml:"buttonSize,omitempty"`
}

// RadioGroup renders a labelled radio group bound to the store.
func (a *Adapter) RadioGroup(buf *bytes.Buffer, p RadioGroupProps) error {
	binding, err := a.bind(p.Props)
	if err != nil {
		return err
	}
	pres := Present(p.Props, binding)
	value := TextDisplay(binding.Value, binding.Present)
	if p.Buttons {
		return a.item(buf, p.Props, pres, stacked, func(buf *bytes.Buffer) error {
			return a.radioButtons(buf, p, pres, value)
		})
	}
	return a.item(buf, p.Props, pres, stacked, func(buf *bytes.Buffer) error {
		return a.renderer.RadioGroup(buf, components.RadioGroupProps{
			Control:     pres.control(p.Props),
			Options:     p.Options,
			Value:       value,
			Orientation: p.Orientation,
			Class:       p.Class,
		})
	})
}

// MustRadioGroup is RadioGroup that panics on error.
func (a *Adapter) MustRadioGroup(buf *bytes.Buffer, p RadioGroupProps) {
	mustRender(a.RadioGroup(buf, p))
}

func (a *Adapter) radioButtons(buf *bytes.Buffer, p RadioGroupProps, pres Presentation, value string) error {
	buf.WriteString(`<div role="radiogroup"`)
	writeAttr(buf, "id", pres.ID)
	writeAttr(buf, "class", a.renderer.Class(variants.Spec{
		Name: "radio-button-group",
		Base: "flex w-fit gap-2 rounded-md border border-gray-200 p-2",
	}, nil, p.Class))
	writeAttr(buf, "aria-label", p.AriaLabel)
	writeAttr(buf, "aria-describedby", pres.DescribedBy)
	fmt.Fprintf(buf, ` aria-invalid="%t"`, pres.Invalid)
	if p.Required {
		buf.WriteString(` aria-required="true"`)
	}
	buf.WriteByte('>')
	for _, opt := range p.Options {
		checked := opt.ID == value
		variant := "secondary"
		if checked {
			variant = "default"
		}
		size := p.ButtonSize
		if size == "" {
			size = "sm"
		}
		buf.WriteString(`<button type="button" role="radio"`)
		fmt.Fprintf(buf, ` aria-checked="%t"`, checked)
		writeAttr(buf, "data-value", opt.ID)
		writeAttr(buf, "class", a.renderer.Class(components.ButtonSpec, variants.Choices{"variant": variant, "size": size}, ""))
		if p.Disabled || p.ReadOnly || opt.Disabled {
			buf.WriteString(` disabled`)
		}
		buf.WriteByte('>')
		buf.WriteString(html.EscapeString(opt.Label))
		buf.WriteString(`</button>`)
	}
	buf.WriteString(`</div>`)
	if p.Name != "" {
		buf.WriteString(`<input type="hidden"`)
		writeAttr(buf, "name", p.Name)
		buf.WriteString(` value="`)
		buf.WriteString(html.EscapeString(value))
		buf.WriteString(`">`)
	}
	return nil
}

func truthy(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "on", "1", "yes":
			return true
		}
	}
	return false
}

func selection(value any) []string {
	switch v := value.(type) {
	case []string:
		return slices.Clone(v)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		if v != "" {
			return []string{v}
		}
	}
	return nil
}
