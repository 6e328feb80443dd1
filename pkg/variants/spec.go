package variants

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Axis maps every allowed value of one style dimension to a class fragment.
type Axis struct {
	Values  map[string]string `json:"values" yaml:"values"`
	Default string            `json:"default,omitempty" yaml:"default,omitempty"`
}

// Compound applies Class when every axis in When resolved to the given value.
type Compound struct {
	When  map[string]string `json:"when" yaml:"when"`
	Class string            `json:"class" yaml:"class"`
}

// Spec is a static variant specification. Build it once (package level or
// at startup) and reuse it for every render.
type Spec struct {
	Name     string          `json:"name,omitempty" yaml:"name,omitempty"`
	Base     string          `json:"base,omitempty" yaml:"base,omitempty"`
	Axes     map[string]Axis `json:"axes,omitempty" yaml:"axes,omitempty"`
	Compound []Compound      `json:"compound,omitempty" yaml:"compound,omitempty"`
}

// Choices records the caller's chosen value per axis. Missing or empty
// entries fall back to the axis default.
type Choices map[string]string

// Bool formats a boolean axis value ("true"/"false").
func Bool(value bool) string {
	return strconv.FormatBool(value)
}

// Validate checks that defaults and compound conditions reference declared
// values.
func (s Spec) Validate() error {
	for _, name := range s.AxisNames() {
		axis := s.Axes[name]
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("variants: spec %q declares an empty axis name", s.Name)
		}
		if len(axis.Values) == 0 {
			return fmt.Errorf("variants: spec %q axis %q declares no values", s.Name, name)
		}
		if axis.Default != "" {
			if _, ok := axis.Values[axis.Default]; !ok {
				return fmt.Errorf("variants: spec %q axis %q default %q is not a declared value", s.Name, name, axis.Default)
			}
		}
	}
	for idx, compound := range s.Compound {
		if len(compound.When) == 0 {
			return fmt.Errorf("variants: spec %q compound #%d has no conditions", s.Name, idx)
		}
		for axisName, value := range compound.When {
			axis, ok := s.Axes[axisName]
			if !ok {
				return fmt.Errorf("variants: spec %q compound #%d references unknown axis %q", s.Name, idx, axisName)
			}
			if _, ok := axis.Values[value]; !ok {
				return fmt.Errorf("variants: spec %q compound #%d references unknown value %q for axis %q", s.Name, idx, value, axisName)
			}
		}
	}
	return nil
}

// MustCompile validates the spec and panics on error. Intended for
// package-level spec declarations.
func MustCompile(spec Spec) Spec {
	if err := spec.Validate(); err != nil {
		panic(err)
	}
	return spec
}

// AxisNames returns the declared axes in sorted order, which is also the
// order fragments are emitted in.
func (s Spec) AxisNames() []string {
	return slices.Sorted(maps.Keys(s.Axes))
}

// Values returns the sorted allowed values of an axis.
func (s Spec) Values(axis string) []string {
	return slices.Sorted(maps.Keys(s.Axes[axis].Values))
}

// Defaults returns the declared default per axis.
func (s Spec) Defaults() Choices {
	out := make(Choices, len(s.Axes))
	for name, axis := range s.Axes {
		if axis.Default != "" {
			out[name] = axis.Default
		}
	}
	return out
}
