package fields

import (
	"sort"
	"strings"
	"sync"
)

// Kind names an adapter.
type Kind string

// Built-in adapter kinds.
const (
	KindText        Kind = "text"
	KindTextarea    Kind = "textarea"
	KindCheckbox    Kind = "checkbox"
	KindSwitch      Kind = "switch"
	KindSelect      Kind = "select"
	KindMultiSelect Kind = "multi-select"
	KindRadioGroup  Kind = "radio-group"
	KindDndInput    Kind = "dnd-input"
)

// Matcher decides whether a kind should handle the described field.
type Matcher func(spec Spec) bool

type rule struct {
	kind     Kind
	priority int
	match    Matcher
	order    int
}

// Registry picks the adapter kind for a Spec that does not name one.
// Higher priority wins; ties fall back to registration order. Specs no
// matcher claims render as KindText.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry constructs a registry with the built-in matchers registered.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register adds a matcher for kind. The latest registration of a kind does
// not replace earlier ones; give it a higher priority to take precedence.
func (r *Registry) Register(kind Kind, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := Kind(strings.TrimSpace(string(kind)))
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		kind:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Resolve returns the kind for spec. An explicit spec.Kind always wins.
func (r *Registry) Resolve(spec Spec) Kind {
	if explicit := Kind(strings.TrimSpace(string(spec.Kind))); explicit != "" {
		return explicit
	}
	if r == nil {
		return KindText
	}
	r.mu.RLock()
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(spec) {
			return entry.kind
		}
	}
	return KindText
}

func (r *Registry) registerBuiltins() {
	r.Register(KindDndInput, 100, func(spec Spec) bool {
		return normalizedType(spec) == "file"
	})

	r.Register(KindCheckbox, 90, func(spec Spec) bool {
		return normalizedType(spec) == "boolean" || normalizedType(spec) == "checkbox"
	})

	r.Register(KindMultiSelect, 80, func(spec Spec) bool {
		return len(spec.Options) > 0 && (spec.Multiple || normalizedType(spec) == "array")
	})

	r.Register(KindRadioGroup, 75, func(spec Spec) bool {
		return len(spec.Options) > 0 && normalizedType(spec) == "radio"
	})

	r.Register(KindSelect, 70, func(spec Spec) bool {
		return len(spec.Options) > 0
	})

	r.Register(KindTextarea, 60, func(spec Spec) bool {
		if spec.Rows > 0 {
			return true
		}
		switch strings.ToLower(strings.TrimSpace(spec.Format)) {
		case "textarea", "multiline", "markdown":
			return true
		}
		return false
	})
}

func normalizedType(spec Spec) string {
	return strings.ToLower(strings.TrimSpace(spec.Type))
}
