package components_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-uikit/pkg/components"
)

func noopRenderer(*bytes.Buffer, map[string]any, components.ComponentData) error { return nil }

func TestRegistryDescriptorClone(t *testing.T) {
	reg := components.NewRegistry()
	if err := reg.Register("Test", components.Descriptor{Renderer: noopRenderer, Stylesheets: []string{"/a.css"}}); err != nil {
		t.Fatalf("register: %v", err)
	}

	desc, ok := reg.Descriptor("test")
	if !ok {
		t.Fatalf("descriptor not found")
	}
	desc.Stylesheets = append(desc.Stylesheets, "/mutated.css")

	original, _ := reg.Descriptor("test")
	if diff := cmp.Diff([]string{"/a.css"}, original.Stylesheets); diff != "" {
		t.Fatalf("registry descriptor mutated (-want +got):\n%s", diff)
	}
}

func TestRegistryRejectsInvalidDescriptors(t *testing.T) {
	reg := components.NewRegistry()
	if err := reg.Register(" ", components.Descriptor{Renderer: noopRenderer}); err == nil {
		t.Fatalf("expected empty name to fail")
	}
	if err := reg.Register("x", components.Descriptor{}); err == nil {
		t.Fatalf("expected nil renderer to fail")
	}
}

func TestRegistryAssetsDeduplicates(t *testing.T) {
	reg := components.NewRegistry()
	reg.MustRegister("input", components.Descriptor{
		Renderer:    noopRenderer,
		Stylesheets: []string{"/shared.css", "/input.css"},
		Scripts:     []components.Script{{Src: "/shared.js"}},
	})
	reg.MustRegister("select", components.Descriptor{
		Renderer:    noopRenderer,
		Stylesheets: []string{"/shared.css", "/select.css"},
		Scripts:     []components.Script{{Src: "/shared.js"}, {Src: "/select.js"}},
	})

	styles, scripts := reg.Assets([]string{"input", "select", "unknown"})
	if diff := cmp.Diff([]string{"/shared.css", "/input.css", "/select.css"}, styles); diff != "" {
		t.Fatalf("styles mismatch (-want +got):\n%s", diff)
	}
	if len(scripts) != 2 {
		t.Fatalf("expected 2 unique scripts, got %d: %v", len(scripts), scripts)
	}
}

func TestRegistryCloneIsolated(t *testing.T) {
	reg := components.NewRegistry()
	reg.MustRegister("a", components.Descriptor{Renderer: noopRenderer})
	clone := reg.Clone()
	clone.MustRegister("b", components.Descriptor{Renderer: noopRenderer})

	if diff := cmp.Diff([]string{"a"}, reg.Names()); diff != "" {
		t.Fatalf("original mutated (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "b"}, clone.Names()); diff != "" {
		t.Fatalf("clone names (-want +got):\n%s", diff)
	}
}

func TestDefaultRegistryRendersNodes(t *testing.T) {
	reg := components.NewDefaultRegistry("/assets/uikit.css")
	r := components.NewRenderer()

	page := components.Node{
		Component: components.NameStack,
		Props:     map[string]any{"direction": "horizontal"},
		Children: []components.Node{
			{Component: components.NameButton, Props: map[string]any{"label": "Go", "variant": "outline"}},
			{Component: components.NameCard, Props: map[string]any{
				"title":   "Stats",
				"content": map[string]any{"component": "badge", "props": map[string]any{"label": "New"}},
			}},
		},
	}

	var buf bytes.Buffer
	if err := reg.Render(&buf, r, page); err != nil {
		t.Fatalf("render: %v", err)
	}
	got := buf.String()
	assertContains(t, got,
		`flex-row`,
		`>Go</button>`,
		`border border-input`,
		`data-component="card"`,
		`data-component="badge">New</div>`,
	)

	styles, _ := reg.Assets(components.Collect(page))
	if diff := cmp.Diff([]string{"/assets/uikit.css"}, styles); diff != "" {
		t.Fatalf("styles mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryUnknownComponent(t *testing.T) {
	reg := components.NewDefaultRegistry("")
	err := reg.Render(&bytes.Buffer{}, nil, components.Node{Component: "carousel"})
	if !errors.Is(err, components.ErrUnknownComponent) {
		t.Fatalf("expected ErrUnknownComponent, got %v", err)
	}
}

func TestDefaultRegistryNames(t *testing.T) {
	names := components.NewDefaultRegistry("").Names()
	for _, want := range []string{
		components.NameButton, components.NameSidebar, components.NameDndInput, components.NameForm,
		components.NameDialog, components.NamePopover, components.NameTooltip, components.NameCollapsible,
		components.NameAccordion, components.NameTabs, components.NameAvatar, components.NameBreadcrumb,
		components.NamePagination,
	} {
		found := false
		for _, name := range names {
			if name == want {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected %q in %v", want, names)
		}
	}
}

func TestDefaultRegistryExpandsNodesInsideItems(t *testing.T) {
	reg := components.NewDefaultRegistry("")
	node := components.Node{
		Component: components.NameAccordion,
		Props: map[string]any{
			"id":   "faq",
			"open": []any{"billing"},
			"items": []any{
				map[string]any{
					"value":   "billing",
					"title":   "Billing",
					"content": map[string]any{"component": "badge", "props": map[string]any{"label": "Paid"}},
				},
				map[string]any{"value": "plans", "title": "Plans", "content": "<p>Three plans</p>"},
			},
		},
	}

	var buf bytes.Buffer
	if err := reg.Render(&buf, nil, node); err != nil {
		t.Fatalf("render: %v", err)
	}
	assertContains(t, buf.String(),
		`data-component="badge">Paid</div>`,
		`<p>Three plans</p>`,
		`id="faq-content-0"`,
	)
	if got := node.Props["items"].([]any)[0].(map[string]any)["content"]; !isMap(got) {
		t.Fatalf("expected source props to stay untouched, got %T", got)
	}
}

func isMap(v any) bool {
	_, ok := v.(map[string]any)
	return ok
}

func TestDefaultRegistryNestedItemErrorsNameTheProp(t *testing.T) {
	reg := components.NewDefaultRegistry("")
	node := components.Node{
		Component: components.NameTabs,
		Props: map[string]any{
			"tabs": []any{
				map[string]any{"value": "a", "label": "A", "content": map[string]any{"component": "carousel"}},
			},
		},
	}
	err := reg.Render(&bytes.Buffer{}, nil, node)
	if !errors.Is(err, components.ErrUnknownComponent) {
		t.Fatalf("expected ErrUnknownComponent, got %v", err)
	}
	assertContains(t, err.Error(), `prop "tabs"`, "item 0")
}

func TestCollect(t *testing.T) {
	got := components.Collect(components.Node{
		Component: "Stack",
		Children:  []components.Node{{Component: "button"}, {Component: "stack"}, {Component: "badge"}},
	})
	if diff := cmp.Diff([]string{"stack", "button", "badge"}, got); diff != "" {
		t.Fatalf("collect mismatch (-want +got):\n%s", diff)
	}
}
