package fields

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goliatone/go-uikit/pkg/components"
)

// TextFieldProps configures TextField. Type is the input type; "number"
// switches the stored value to float64.
type TextFieldProps struct {
	Props        `yaml:",inline"`
	Type         string          `json:"type,omitempty" yaml:"type,omitempty"`
	AutoComplete string          `json:"autoComplete,omitempty" yaml:"autoComplete,omitempty"`
	Min          string          `json:"min,omitempty" yaml:"min,omitempty"`
	Max          string          `json:"max,omitempty" yaml:"max,omitempty"`
	Step         string          `json:"step,omitempty" yaml:"step,omitempty"`
	Size         string          `json:"size,omitempty" yaml:"size,omitempty"`
	StartIcon    components.Icon `json:"startIcon,omitempty" yaml:"startIcon,omitempty"`
	EndIcon      components.Icon `json:"endIcon,omitempty" yaml:"endIcon,omitempty"`
	Loading      bool            `json:"loading,omitempty" yaml:"loading,omitempty"`
}

func (p TextFieldProps) numeric() bool {
	return strings.EqualFold(strings.TrimSpace(p.Type), "number")
}

// TextField renders a labelled input bound to the store.
func (a *Adapter) TextField(buf *bytes.Buffer, p TextFieldProps) error {
	binding, err := a.bind(p.Props)
	if err != nil {
		return err
	}
	pres := Present(p.Props, binding)
	display := TextDisplay(binding.Value, binding.Present)
	if p.numeric() {
		display = NumberDisplay(binding.Value, binding.Present)
	}
	return a.item(buf, p.Props, pres, stacked, func(buf *bytes.Buffer) error {
		return a.renderer.Input(buf, components.InputProps{
			Control:      pres.control(p.Props),
			Type:         p.Type,
			Value:        display,
			Placeholder:  p.Placeholder,
			Size:         p.Size,
			AutoComplete: p.AutoComplete,
			Min:          p.Min,
			Max:          p.Max,
			Step:         p.Step,
			StartIcon:    p.StartIcon,
			EndIcon:      p.EndIcon,
			Loading:      p.Loading,
			Class:        p.Class,
		})
	})
}

// MustTextField is TextField that panics on error.
func (a *Adapter) MustTextField(buf *bytes.Buffer, p TextFieldProps) {
	mustRender(a.TextField(buf, p))
}

// TextareaProps configures Textarea.
type TextareaProps struct {
	Props      `yaml:",inline"`
	Rows       int  `json:"rows,omitempty" yaml:"rows,omitempty"`
	AutoResize bool `json:"autoResize,omitempty" yaml:"autoResize,omitempty"`
}

// Textarea renders a labelled multi-line input bound to the store.
func (a *Adapter) Textarea(buf *bytes.Buffer, p TextareaProps) error {
	binding, err := a.bind(p.Props)
	if err != nil {
		return err
	}
	pres := Present(p.Props, binding)
	return a.item(buf, p.Props, pres, stacked, func(buf *bytes.Buffer) error {
		return a.renderer.Textarea(buf, components.TextareaProps{
			Control:     pres.control(p.Props),
			Value:       TextDisplay(binding.Value, binding.Present),
			Placeholder: p.Placeholder,
			Rows:        p.Rows,
			AutoResize:  p.AutoResize,
			Class:       p.Class,
		})
	})
}

// MustTextarea is Textarea that panics on error.
func (a *Adapter) MustTextarea(buf *bytes.Buffer, p TextareaProps) {
	mustRender(a.Textarea(buf, p))
}

// ChangeText stores raw text exactly as typed. Trimming happens on blur.
func (a *Adapter) ChangeText(name, raw string) error {
	binding, err := a.field(name)
	if err != nil {
		return err
	}
	return binding.OnChange(raw)
}

// BlurText trims a string value, stores it and marks the field touched.
func (a *Adapter) BlurText(name string) error {
	binding, err := a.field(name)
	if err != nil {
		return err
	}
	if s, ok := binding.Value.(string); ok {
		if trimmed := strings.TrimSpace(s); trimmed != s {
			if err := binding.OnChange(trimmed); err != nil {
				return err
			}
		}
	}
	binding.OnBlur()
	return nil
}

// ChangeNumber coerces raw into a float64. Empty input removes the value so
// the field is absent rather than zero. Input that is not a finite number
// is rejected with ErrInvalidNumber and leaves the stored value untouched.
func (a *Adapter) ChangeNumber(name, raw string) error {
	binding, err := a.field(name)
	if err != nil {
		return err
	}
	value, ok, err := ParseNumber(raw)
	if err != nil {
		return fmt.Errorf("fields: %s: %w", name, err)
	}
	if !ok {
		return binding.OnChange(nil)
	}
	return binding.OnChange(value)
}

// ParseNumber converts input text to a number. ok is false for blank input.
func ParseNumber(raw string) (value float64, ok bool, err error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false, nil
	}
	value, err = strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false, fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
	}
	return value, true, nil
}

// NumberDisplay formats a stored number for an input. Absent values show
// as an empty string.
func NumberDisplay(value any, present bool) string {
	if !present || value == nil {
		return ""
	}
	switch v := value.(type) {
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case string:
		return v
	}
	return fmt.Sprint(value)
}

// TextDisplay formats a stored value for a text control.
func TextDisplay(value any, present bool) string {
	if !present || value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}
