package kit

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-uikit/pkg/components"
	"github.com/goliatone/go-uikit/pkg/form"
	"github.com/goliatone/go-uikit/pkg/variants"
)

func acmeManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			"brand":  "#123456",
			"radius": "0.5rem",
		},
		Templates: map[string]string{
			components.PartialCard: "themes/acme/card.tmpl",
		},
		Assets: theme.Assets{
			Prefix: "/assets/themes/acme",
			Files: map[string]string{
				StylesheetAsset: "theme.css",
			},
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					"brand": "#654321",
				},
				Templates: map[string]string{
					components.PartialAlert: "themes/acme/dark/alert.tmpl",
				},
				Assets: theme.Assets{
					Files: map[string]string{
						"uikit.vendor": "vendor.dark.js",
					},
				},
			},
		},
	}
}

func TestRendererConfig_LayersManifestAndVariant(t *testing.T) {
	cfg := RendererConfig(&theme.Selection{
		Theme:    "acme",
		Variant:  "dark",
		Manifest: acmeManifest(),
	}, DefaultThemeFallbacks())

	wantPartials := map[string]string{
		components.PartialCard:  "themes/acme/card.tmpl",
		components.PartialAlert: "themes/acme/dark/alert.tmpl",
	}
	if diff := cmp.Diff(wantPartials, cfg.Partials); diff != "" {
		t.Fatalf("partials mismatch (-want +got):\n%s", diff)
	}

	wantVars := map[string]string{
		"--brand":  "#654321",
		"--radius": "0.5rem",
	}
	if diff := cmp.Diff(wantVars, cfg.CSSVars); diff != "" {
		t.Fatalf("css vars mismatch (-want +got):\n%s", diff)
	}
	if cfg.Tokens["brand"] != "#654321" {
		t.Fatalf("variant token should win, got %q", cfg.Tokens["brand"])
	}

	if got := cfg.AssetURL("uikit.vendor"); got != "/assets/themes/acme/vendor.dark.js" {
		t.Fatalf("vendor asset: got %q", got)
	}
	if got := cfg.AssetURL(StylesheetAsset); got != "/assets/themes/acme/theme.css" {
		t.Fatalf("stylesheet asset: got %q", got)
	}
	if got := cfg.AssetURL("missing"); got != "" {
		t.Fatalf("missing asset should resolve empty, got %q", got)
	}
}

func TestRendererConfig_FallbacksWithoutOverrides(t *testing.T) {
	cfg := RendererConfig(&theme.Selection{
		Theme:    "plain",
		Manifest: &theme.Manifest{Name: "plain"},
	}, DefaultThemeFallbacks())

	if diff := cmp.Diff(DefaultThemeFallbacks(), cfg.Partials); diff != "" {
		t.Fatalf("partials mismatch (-want +got):\n%s", diff)
	}
	if len(cfg.CSSVars) != 0 {
		t.Fatalf("expected no css vars, got %v", cfg.CSSVars)
	}
}

func TestCSSVarsStyle(t *testing.T) {
	got := CSSVarsStyle(map[string]string{"--radius": "0.5rem", "--brand": "#123"})
	want := ":root {\n--brand: #123;\n--radius: 0.5rem;\n}"
	if got != want {
		t.Fatalf("style mismatch:\nwant %q\n got %q", want, got)
	}
	if CSSVarsStyle(nil) != "" {
		t.Fatalf("expected empty style for no vars")
	}
}

func TestKit_SelectThemeUsesDefaults(t *testing.T) {
	selector := &stubThemeSelector{selection: &theme.Selection{
		Theme:    "acme",
		Variant:  "dark",
		Manifest: acmeManifest(),
	}}
	k := New(WithThemeSelector(selector), WithThemeDefaults("acme", "dark"))

	view, err := k.View("", "")
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	want := []selectorCall{{name: "acme", variant: "dark"}}
	if diff := cmp.Diff(want, selector.calls, cmp.AllowUnexported(selectorCall{})); diff != "" {
		t.Fatalf("selector calls mismatch (-want +got):\n%s", diff)
	}
	if view.Theme() == nil || view.Theme().Variant != "dark" {
		t.Fatalf("expected resolved theme, got %+v", view.Theme())
	}
	if got := view.Renderer().Partials()[components.PartialCard]; got != "themes/acme/card.tmpl" {
		t.Fatalf("renderer partial: got %q", got)
	}

	if _, err := k.View("other", "light"); err != nil {
		t.Fatalf("view: %v", err)
	}
	if last := selector.calls[len(selector.calls)-1]; last.name != "other" || last.variant != "light" {
		t.Fatalf("explicit names should pass through, got %+v", last)
	}
}

func TestKit_SelectThemeError(t *testing.T) {
	boom := errors.New("no such theme")
	k := New(WithThemeSelector(&stubThemeSelector{err: boom}))

	if _, err := k.View("ghost", ""); !errors.Is(err, boom) {
		t.Fatalf("expected selector error, got %v", err)
	}

	k = New(WithThemeSelector(&stubThemeSelector{}))
	if _, err := k.View("ghost", ""); err == nil {
		t.Fatalf("expected error for empty selection")
	}
}

func TestKit_WithoutSelector(t *testing.T) {
	view, err := New().View("acme", "dark")
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if view.Theme() != nil {
		t.Fatalf("expected no theme without a selector")
	}
	if view.AssetURL(StylesheetAsset) != "" {
		t.Fatalf("expected empty asset url without a theme")
	}
}

func TestKit_StrictModePanicsOnUnknownVariant(t *testing.T) {
	view, err := New(WithStrict(true)).View("", "")
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	defer func() {
		recovered := recover()
		usage, ok := recovered.(*variants.UsageError)
		if !ok {
			t.Fatalf("expected *variants.UsageError panic, got %v", recovered)
		}
		if !errors.Is(usage, variants.ErrUnknownValue) {
			t.Fatalf("expected ErrUnknownValue, got %v", usage)
		}
	}()
	var buf bytes.Buffer
	_ = view.Renderer().Button(&buf, components.ButtonProps{Label: "Go", Variant: "sparkly"})
}

func TestKit_ProductionModeFallsBack(t *testing.T) {
	view, err := New().View("", "")
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	var buf bytes.Buffer
	if err := view.Renderer().Button(&buf, components.ButtonProps{Label: "Go", Variant: "sparkly"}); err != nil {
		t.Fatalf("button: %v", err)
	}
	if !strings.Contains(buf.String(), "bg-primary") {
		t.Fatalf("expected default variant classes, got %s", buf.String())
	}
}

func TestKit_NewFormFieldsBinding(t *testing.T) {
	k := New()
	view, err := k.View("", "")
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	store := k.NewForm(form.WithValues(map[string]any{"email": "ada@example.com"}))
	adapter := view.Fields(store)
	if adapter.Store() != store {
		t.Fatalf("adapter should bind the given store")
	}
	if view.Fields(nil).Store() != nil {
		t.Fatalf("nil store should stay nil")
	}
}

type selectorCall struct {
	name    string
	variant string
}

type stubThemeSelector struct {
	selection *theme.Selection
	err       error
	calls     []selectorCall
}

func (s *stubThemeSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.calls = append(s.calls, selectorCall{name: name, variant: variant})
	return s.selection, s.err
}

func themedKit(t *testing.T, extra ...Option) *Kit {
	t.Helper()
	selector := &stubThemeSelector{selection: &theme.Selection{
		Theme:    "acme",
		Variant:  "dark",
		Manifest: acmeManifest(),
	}}
	templates := fstest.MapFS{
		"themes/acme/card.tmpl": &fstest.MapFile{
			Data: []byte(`<section data-theme-card="acme" class="{{ class }}"><h2>{{ title }}</h2>{{ content|safe }}</section>`),
		},
		"themes/acme/dark/alert.tmpl": &fstest.MapFile{
			Data: []byte(`<aside role="alert" data-theme-alert="dark">{{ title }}</aside>`),
		},
	}
	options := append([]Option{
		WithThemeSelector(selector),
		WithThemeDefaults("acme", "dark"),
		WithTemplateFS(templates),
	}, extra...)
	return New(options...)
}
