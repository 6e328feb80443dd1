package variants

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func TestLoadFS_ParsesYAMLAndJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"catalog/buttons.yaml": {Data: []byte(`
specs:
  Button:
    base: inline-flex
    axes:
      size:
        default: md
        values:
          md: h-9
          lg: h-10
`)},
		"catalog/badge.json": {Data: []byte(`{"specs":{"badge":{"base":"rounded-full","axes":{"tone":{"default":"info","values":{"info":"bg-blue-100"}}}}}}`)},
		"catalog/readme.md":  {Data: []byte("ignored")},
	}

	catalog, err := LoadFS(fsys)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	if diff := cmp.Diff([]string{"badge", "button"}, catalog.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	spec, ok := catalog.Spec("BUTTON")
	if !ok {
		t.Fatalf("expected button spec")
	}
	if got := Resolve(spec, Choices{"size": "lg"}, ""); got != "inline-flex h-10" {
		t.Fatalf("unexpected resolution %q", got)
	}
}

func TestLoadFS_RejectsDuplicatesAndInvalidSpecs(t *testing.T) {
	dup := fstest.MapFS{
		"a.yaml": {Data: []byte("specs:\n  button:\n    base: a\n")},
		"b.yaml": {Data: []byte("specs:\n  button:\n    base: b\n")},
	}
	if _, err := LoadFS(dup); err == nil || !strings.Contains(err.Error(), "duplicate spec") {
		t.Fatalf("expected duplicate error, got %v", err)
	}

	invalid := fstest.MapFS{
		"a.yaml": {Data: []byte("specs:\n  button:\n    axes:\n      size:\n        default: xl\n        values:\n          sm: h-8\n")},
	}
	if _, err := LoadFS(invalid); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestCatalog_MergeOverrides(t *testing.T) {
	base, err := NewCatalog(Spec{Name: "button", Base: "a"}, Spec{Name: "badge", Base: "b"})
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	theme, err := NewCatalog(Spec{Name: "button", Base: "themed"})
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	if err := base.Merge(theme); err != nil {
		t.Fatalf("merge: %v", err)
	}
	spec, _ := base.Spec("button")
	if spec.Base != "themed" {
		t.Fatalf("expected override, got %q", spec.Base)
	}
	if _, ok := base.Spec("badge"); !ok {
		t.Fatalf("expected badge to survive merge")
	}
}

func TestLoadFS_NilFS(t *testing.T) {
	catalog, err := LoadFS(nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(catalog.Names()) != 0 {
		t.Fatalf("expected empty catalog")
	}
}
