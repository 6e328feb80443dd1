package fields

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/goliatone/go-uikit/pkg/components"
	"github.com/goliatone/go-uikit/pkg/widgets"
)

// Spec describes one field in data form, e.g. a page file or a schema. Kind
// may be left empty for the Registry to infer from Type, Format and
// Options.
type Spec struct {
	Props         `yaml:",inline"`
	Kind          Kind                 `json:"kind,omitempty" yaml:"kind,omitempty"`
	Type          string               `json:"type,omitempty" yaml:"type,omitempty"`
	Format        string               `json:"format,omitempty" yaml:"format,omitempty"`
	Options       []widgets.Option     `json:"options,omitempty" yaml:"options,omitempty"`
	Multiple      bool                 `json:"multiple,omitempty" yaml:"multiple,omitempty"`
	Max           int                  `json:"max,omitempty" yaml:"max,omitempty"`
	Searchable    bool                 `json:"searchable,omitempty" yaml:"searchable,omitempty"`
	ShowSelectAll bool                 `json:"showSelectAll,omitempty" yaml:"showSelectAll,omitempty"`
	Rows          int                  `json:"rows,omitempty" yaml:"rows,omitempty"`
	Buttons       bool                 `json:"buttons,omitempty" yaml:"buttons,omitempty"`
	Files         components.FileRules `json:"files,omitempty" yaml:"files,omitempty"`
}

// Kind returns the adapter kind the registry picks for spec.
func (a *Adapter) Kind(spec Spec) Kind {
	return a.registry.Resolve(spec)
}

// Render renders spec with the adapter its kind selects.
func (a *Adapter) Render(buf *bytes.Buffer, spec Spec) error {
	switch kind := a.Kind(spec); kind {
	case KindText:
		return a.TextField(buf, TextFieldProps{Props: spec.Props, Type: inputType(spec)})
	case KindTextarea:
		return a.Textarea(buf, TextareaProps{Props: spec.Props, Rows: spec.Rows})
	case KindCheckbox:
		return a.Checkbox(buf, CheckboxProps{Props: spec.Props})
	case KindSwitch:
		return a.Switch(buf, SwitchProps{Props: spec.Props})
	case KindSelect:
		return a.Select(buf, SelectProps{Props: spec.Props, Options: spec.Options, Mode: SingleSelect{Searchable: spec.Searchable}})
	case KindMultiSelect:
		return a.Select(buf, SelectProps{Props: spec.Props, Options: spec.Options, Mode: MultipleSelect{
			Max:           spec.Max,
			Searchable:    spec.Searchable,
			ShowSelectAll: spec.ShowSelectAll,
		}})
	case KindRadioGroup:
		return a.RadioGroup(buf, RadioGroupProps{Props: spec.Props, Options: spec.Options, Buttons: spec.Buttons})
	case KindDndInput:
		return a.DndInput(buf, DndInputProps{Props: spec.Props, Rules: spec.Files})
	default:
		return fmt.Errorf("fields: %s: unknown kind %q", spec.Name, kind)
	}
}

// Apply copies submitted form values into the store, coercing them the way
// each kind expects: numbers to float64, text trimmed, checkboxes from
// presence, multi-selects from repeated keys. File fields are skipped;
// use ChangeFiles with the multipart headers. Every field is registered
// with its rules so a following Submit validates all of them.
func (a *Adapter) Apply(values url.Values, specs []Spec) error {
	if a == nil || a.store == nil {
		return fmt.Errorf("fields: apply: %w", ErrNoForm)
	}
	var errs []error
	for _, spec := range specs {
		if _, err := a.bind(spec.Props); err != nil {
			errs = append(errs, err)
			continue
		}
		if err := a.applyOne(values, spec); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (a *Adapter) applyOne(values url.Values, spec Spec) error {
	name := spec.Name
	switch a.Kind(spec) {
	case KindCheckbox:
		return a.ChangeBool(name, values.Has(name) && truthy(values.Get(name)))
	case KindSwitch:
		on, _ := strconv.ParseBool(values.Get(name))
		return a.ChangeBool(name, on)
	case KindMultiSelect:
		return a.applySelection(spec, nonEmpty(values[name]))
	case KindSelect, KindRadioGroup:
		if !values.Has(name) {
			return nil
		}
		id := strings.TrimSpace(values.Get(name))
		if id != "" && !available(spec.Options, id) {
			if err := a.ChangeChoice(name, ""); err != nil {
				return err
			}
			return a.reject(name, "Choose one of the available options", id)
		}
		return a.ChangeChoice(name, id)
	case KindDndInput:
		return nil
	}

	if !values.Has(name) {
		return nil
	}
	if inputType(spec) == "number" {
		return a.ChangeNumber(name, values.Get(name))
	}
	if err := a.ChangeText(name, values.Get(name)); err != nil {
		return err
	}
	return a.BlurText(name)
}

func inputType(spec Spec) string {
	switch typ := strings.ToLower(strings.TrimSpace(spec.Type)); typ {
	case "", "string":
		return "text"
	case "integer", "float":
		return "number"
	default:
		return typ
	}
}

// applySelection keeps the posted ids that name enabled options, up to
// spec.Max, the same way toggling them one by one in the widget would.
func (a *Adapter) applySelection(spec Spec, posted []string) error {
	state := widgets.MultiSelect{Options: spec.Options, Max: spec.Max}
	var (
		selected []string
		rejected []string
	)
	for _, id := range posted {
		if slices.Contains(selected, id) {
			continue
		}
		if !available(spec.Options, id) {
			rejected = append(rejected, id)
			continue
		}
		if state.AtLimit(selected) {
			rejected = append(rejected, id)
			continue
		}
		selected = state.Toggle(selected, id)
	}
	if err := a.ChangeSelection(spec.Name, selected); err != nil {
		return err
	}
	if len(rejected) == 0 {
		return nil
	}
	message := "Contains an unavailable option"
	if state.AtLimit(selected) {
		message = fmt.Sprintf("Select at most %d", spec.Max)
	}
	return a.reject(spec.Name, message, rejected...)
}

// reject records message as the field error and reports the ids that were
// dropped.
func (a *Adapter) reject(name, message string, ids ...string) error {
	a.store.SetError(name, message)
	return fmt.Errorf("fields: %s: %w: %s", name, ErrUnavailableOption, strings.Join(ids, ", "))
}

func available(options []widgets.Option, id string) bool {
	option, ok := widgets.Find(options, id)
	return ok && !option.Disabled
}

func nonEmpty(values []string) []string {
	var out []string
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			out = append(out, value)
		}
	}
	return out
}
