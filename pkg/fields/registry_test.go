package fields

import (
	"testing"

	"github.com/goliatone/go-uikit/pkg/widgets"
)

func TestResolve_ExplicitKindWins(t *testing.T) {
	reg := NewRegistry()
	spec := Spec{Kind: KindSwitch, Type: "boolean"}

	if got := reg.Resolve(spec); got != KindSwitch {
		t.Fatalf("expected explicit kind to win, got %q", got)
	}
}

func TestResolve_Builtins(t *testing.T) {
	reg := NewRegistry()
	options := []widgets.Option{{ID: "a"}, {ID: "b"}}

	cases := []struct {
		name   string
		spec   Spec
		expect Kind
	}{
		{name: "default text", spec: Spec{Type: "email"}, expect: KindText},
		{name: "boolean checkbox", spec: Spec{Type: "boolean"}, expect: KindCheckbox},
		{name: "array with options", spec: Spec{Type: "array", Options: options}, expect: KindMultiSelect},
		{name: "multiple flag", spec: Spec{Options: options, Multiple: true}, expect: KindMultiSelect},
		{name: "radio", spec: Spec{Type: "radio", Options: options}, expect: KindRadioGroup},
		{name: "options select", spec: Spec{Type: "string", Options: options}, expect: KindSelect},
		{name: "textarea format", spec: Spec{Format: "markdown"}, expect: KindTextarea},
		{name: "textarea rows", spec: Spec{Rows: 3}, expect: KindTextarea},
		{name: "file", spec: Spec{Type: "file", Options: options}, expect: KindDndInput},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := reg.Resolve(tc.spec); got != tc.expect {
				t.Fatalf("expected %q, got %q", tc.expect, got)
			}
		})
	}
}

func TestResolve_PriorityOrdering(t *testing.T) {
	reg := &Registry{}
	reg.Register("low", 10, func(Spec) bool { return true })
	reg.Register("high", 20, func(Spec) bool { return true })
	reg.Register("high-later", 20, func(Spec) bool { return true })

	if got := reg.Resolve(Spec{}); got != "high" {
		t.Fatalf("expected highest priority, first registered; got %q", got)
	}
}

func TestResolve_EmptyRegistryFallsBackToText(t *testing.T) {
	var reg *Registry
	if got := reg.Resolve(Spec{Type: "boolean"}); got != KindText {
		t.Fatalf("expected text fallback, got %q", got)
	}
	if got := (&Registry{}).Resolve(Spec{}); got != KindText {
		t.Fatalf("expected text fallback, got %q", got)
	}
}

func TestHasTag(t *testing.T) {
	if !hasTag("omitempty, required,min=3", "required") {
		t.Fatalf("expected required to be found")
	}
	if hasTag("required_if=x 1", "required") {
		t.Fatalf("required_if is not required")
	}
}
