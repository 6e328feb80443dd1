package variants

import (
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-uikit/pkg/classnames"
)

// Option configures a Resolver.
type Option func(*Resolver)

// WithStrict makes usage errors panic instead of falling back to defaults.
// Enable it in development and tests.
func WithStrict(strict bool) Option {
	return func(r *Resolver) {
		r.strict = strict
	}
}

// WithLogger sets the logger used to report usage errors in production mode.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// Resolver resolves specs into class strings. The zero value is a
// production resolver with logging disabled.
type Resolver struct {
	strict bool
	logger zerolog.Logger
}

// NewResolver constructs a Resolver applying the provided options.
func NewResolver(options ...Option) *Resolver {
	r := &Resolver{logger: zerolog.Nop()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Strict reports whether usage errors panic.
func (r *Resolver) Strict() bool {
	return r != nil && r.strict
}

var defaultResolver = NewResolver()

// Resolve resolves with a production resolver that does not log.
func Resolve(spec Spec, choices Choices, override string) string {
	return defaultResolver.Resolve(spec, choices, override)
}

// Resolve returns the merged class string for the spec. In strict mode a
// usage error panics with a *UsageError; otherwise it is logged and the
// offending axis resolves to its default.
func (r *Resolver) Resolve(spec Spec, choices Choices, override string) string {
	class, errs := resolve(spec, choices, override)
	if len(errs) == 0 {
		return class
	}
	if r.Strict() {
		panic(errs[0])
	}
	if r != nil {
		for _, err := range errs {
			r.logger.Warn().
				Str("spec", err.Spec).
				Str("axis", err.Axis).
				Str("value", err.Value).
				Msg("variants: unknown choice, falling back to default")
		}
	}
	return class
}

// ResolveE resolves like a production resolver but also returns the first
// usage error, if any. The returned class is always usable.
func (r *Resolver) ResolveE(spec Spec, choices Choices, override string) (string, error) {
	class, errs := resolve(spec, choices, override)
	if len(errs) > 0 {
		return class, errs[0]
	}
	return class, nil
}

func resolve(spec Spec, choices Choices, override string) (string, []*UsageError) {
	var errs []*UsageError

	for axisName, value := range choices {
		if _, ok := spec.Axes[axisName]; !ok && strings.TrimSpace(value) != "" {
			errs = append(errs, &UsageError{Spec: spec.Name, Axis: axisName, Value: value, Err: ErrUnknownAxis})
		}
	}

	names := spec.AxisNames()
	selected := make(map[string]string, len(names))
	parts := make([]string, 0, len(names)+len(spec.Compound)+2)
	parts = append(parts, spec.Base)

	for _, name := range names {
		axis := spec.Axes[name]
		value := strings.TrimSpace(choices[name])
		if value != "" {
			if _, ok := axis.Values[value]; !ok {
				errs = append(errs, &UsageError{
					Spec:    spec.Name,
					Axis:    name,
					Value:   value,
					Allowed: spec.Values(name),
					Err:     ErrUnknownValue,
				})
				value = ""
			}
		}
		if value == "" {
			value = axis.Default
		}
		if value == "" {
			continue
		}
		selected[name] = value
		parts = append(parts, axis.Values[value])
	}

	for _, compound := range spec.Compound {
		if matches(compound, selected) {
			parts = append(parts, compound.Class)
		}
	}

	parts = append(parts, override)
	sortErrors(errs)
	return classnames.Merge(parts...), errs
}

func matches(compound Compound, selected map[string]string) bool {
	if len(compound.When) == 0 {
		return false
	}
	for axis, want := range compound.When {
		if selected[axis] != want {
			return false
		}
	}
	return true
}

// sortErrors keeps reporting deterministic despite map iteration.
func sortErrors(errs []*UsageError) {
	slices.SortFunc(errs, func(a, b *UsageError) int {
		if c := strings.Compare(a.Axis, b.Axis); c != 0 {
			return c
		}
		return strings.Compare(a.Value, b.Value)
	})
}
