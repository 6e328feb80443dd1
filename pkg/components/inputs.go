package components

import (
	"bytes"
	"strconv"

	"github.com/goliatone/go-uikit/pkg/variants"
)

// Control carries the identity and accessibility state shared by every form
// control. Field adapters fill it from the form store.
type Control struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Disabled    bool   `json:"disabled,omitempty"`
	ReadOnly    bool   `json:"readOnly,omitempty"`
	Required    bool   `json:"required,omitempty"`
	Invalid     bool   `json:"invalid,omitempty"`
	DescribedBy string `json:"describedBy,omitempty"`
	AriaLabel   string `json:"ariaLabel,omitempty"`
}

func (c Control) id() string {
	if c.ID != "" {
		return c.ID
	}
	return ControlID(c.Name)
}

func (c Control) writeAria(buf *bytes.Buffer) {
	attr(buf, "aria-label", c.AriaLabel)
	attr(buf, "aria-describedby", c.DescribedBy)
	ariaState(buf, "aria-invalid", c.Invalid)
	ariaBool(buf, "aria-required", c.Required)
}

// InputProps configures Input.
type InputProps struct {
	Control
	Type         string `json:"type,omitempty"`
	Value        string `json:"value,omitempty"`
	Placeholder  string `json:"placeholder,omitempty"`
	Size         string `json:"size,omitempty"`
	AutoComplete string `json:"autoComplete,omitempty"`
	Min          string `json:"min,omitempty"`
	Max          string `json:"max,omitempty"`
	Step         string `json:"step,omitempty"`
	StartIcon    Icon   `json:"startIcon,omitempty"`
	EndIcon      Icon   `json:"endIcon,omitempty"`
	Loading      bool   `json:"loading,omitempty"`
	Class        string `json:"class,omitempty"`
}

// Input renders a text-like input. Icons and the loading spinner are
// overlaid inside a relative wrapper.
func (r *Renderer) Input(buf *bytes.Buffer, p InputProps) error {
	variant := "default"
	if p.Invalid {
		variant = "error"
	}
	extra := p.Class
	if p.StartIcon != "" {
		extra = "pl-9 " + extra
	}
	if p.EndIcon != "" || p.Loading {
		extra = "pr-9 " + extra
	}
	class := r.Class(InputSpec, variants.Choices{"variant": variant, "size": p.Size}, extra)

	wrapped := p.StartIcon != "" || p.EndIcon != "" || p.Loading
	if wrapped {
		buf.WriteString(`<div class="relative">`)
		writeIcon(buf, p.StartIcon, "absolute left-3 top-1/2 -translate-y-1/2 text-muted-foreground")
	}

	typ := p.Type
	if typ == "" {
		typ = "text"
	}
	buf.WriteString(`<input`)
	attr(buf, "id", p.id())
	attr(buf, "name", p.Name)
	attr(buf, "type", typ)
	attrAlways(buf, "value", p.Value)
	attr(buf, "placeholder", p.Placeholder)
	attr(buf, "autocomplete", p.AutoComplete)
	attr(buf, "min", p.Min)
	attr(buf, "max", p.Max)
	attr(buf, "step", p.Step)
	attr(buf, "class", class)
	boolAttr(buf, "disabled", p.Disabled || p.Loading)
	boolAttr(buf, "readonly", p.ReadOnly)
	boolAttr(buf, "required", p.Required)
	p.writeAria(buf)
	buf.WriteByte('>')

	if wrapped {
		if p.Loading {
			buf.WriteString(`<div class="absolute right-3 top-1/2 -translate-y-1/2 text-muted-foreground">`)
			buf.WriteString(string(glyphSpinner))
			buf.WriteString(`</div>`)
		} else {
			writeIcon(buf, p.EndIcon, "absolute right-3 top-1/2 -translate-y-1/2 text-muted-foreground")
		}
		buf.WriteString(`</div>`)
	}
	return nil
}

// TextareaProps configures Textarea. AutoResize marks the element for the
// client script that grows it with its content.
type TextareaProps struct {
	Control
	Value       string `json:"value,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
	Rows        int    `json:"rows,omitempty"`
	AutoResize  bool   `json:"autoResize,omitempty"`
	Class       string `json:"class,omitempty"`
}

// Textarea renders a multi-line text control.
func (r *Renderer) Textarea(buf *bytes.Buffer, p TextareaProps) error {
	buf.WriteString(`<textarea`)
	attr(buf, "id", p.id())
	attr(buf, "name", p.Name)
	attr(buf, "placeholder", p.Placeholder)
	if p.Rows > 0 {
		attr(buf, "rows", strconv.Itoa(p.Rows))
	}
	attr(buf, "class", r.Class(TextareaSpec, variants.Choices{"invalid": boolChoice(p.Invalid)}, p.Class))
	boolAttr(buf, "disabled", p.Disabled)
	boolAttr(buf, "readonly", p.ReadOnly)
	boolAttr(buf, "required", p.Required)
	if p.AutoResize {
		attr(buf, "data-autoresize", "true")
	}
	p.writeAria(buf)
	buf.WriteByte('>')
	text(buf, p.Value)
	buf.WriteString(`</textarea>`)
	return nil
}

// CheckboxProps configures Checkbox. Value defaults to "on" like a native
// checkbox.
type CheckboxProps struct {
	Control
	Checked bool   `json:"checked,omitempty"`
	Value   string `json:"value,omitempty"`
	Class   string `json:"class,omitempty"`
}

// Checkbox renders a native checkbox carrying data-state for styling.
func (r *Renderer) Checkbox(buf *bytes.Buffer, p CheckboxProps) error {
	value := p.Value
	if value == "" {
		value = "on"
	}
	buf.WriteString(`<input type="checkbox"`)
	attr(buf, "id", p.id())
	attr(buf, "name", p.Name)
	attr(buf, "value", value)
	attr(buf, "class", r.Class(CheckboxSpec, variants.Choices{"invalid": boolChoice(p.Invalid)}, p.Class))
	attr(buf, "data-state", checkedState(p.Checked))
	boolAttr(buf, "checked", p.Checked)
	boolAttr(buf, "disabled", p.Disabled || p.ReadOnly)
	boolAttr(buf, "required", p.Required)
	p.writeAria(buf)
	buf.WriteByte('>')
	return nil
}

// SwitchProps configures Switch.
type SwitchProps struct {
	Control
	Checked bool   `json:"checked,omitempty"`
	Class   string `json:"class,omitempty"`
}

// Switch renders a toggle button with role="switch". A hidden input carries
// the value on submit: "true" or "false".
func (r *Renderer) Switch(buf *bytes.Buffer, p SwitchProps) error {
	state := checkedState(p.Checked)
	buf.WriteString(`<button type="button" role="switch"`)
	attr(buf, "id", p.id())
	ariaState(buf, "aria-checked", p.Checked)
	attr(buf, "data-state", state)
	attr(buf, "class", r.Class(SwitchSpec, variants.Choices{"invalid": boolChoice(p.Invalid)}, p.Class))
	boolAttr(buf, "disabled", p.Disabled || p.ReadOnly)
	p.writeAria(buf)
	attr(buf, "data-component", "switch")
	buf.WriteString(`><span`)
	attr(buf, "data-state", state)
	buf.WriteString(` class="pointer-events-none block h-4 w-4 rounded-full bg-background shadow-lg ring-0 transition-transform data-[state=checked]:translate-x-4 data-[state=unchecked]:translate-x-0"></span></button>`)
	if p.Name != "" {
		buf.WriteString(`<input type="hidden"`)
		attr(buf, "name", p.Name)
		attr(buf, "value", strconv.FormatBool(p.Checked))
		buf.WriteByte('>')
	}
	return nil
}
