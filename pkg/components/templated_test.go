package components_test

import (
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-uikit/pkg/components"
	"github.com/goliatone/go-uikit/pkg/render/template/gotemplate"
	"github.com/goliatone/go-uikit/pkg/testsupport"
)

func TestCardUsesEmbeddedTemplate(t *testing.T) {
	r := components.NewRenderer()
	got := render(t, r.Card, components.CardProps{
		Title:       "Hello <b>",
		Description: "Details",
		Content:     "<p>Body</p>",
	})
	got = testsupport.NormalizeHTML(got)

	assertContains(t, got,
		`data-component="card"`,
		`rounded-xl border bg-card`,
		`Hello &lt;b&gt;</h3>`,
		`<p class="text-sm text-muted-foreground">Details</p>`,
		`<div class="p-6 pt-0"><p>Body</p></div>`,
	)
	assertNotContains(t, got, "flex items-center p-6 pt-0")
}

func TestCardPartialOverride(t *testing.T) {
	engine, err := gotemplate.New(gotemplate.WithFS(fstest.MapFS{
		"theme/card.tmpl": {Data: []byte(`<section class="{{ class }}">{{ title }}</section>`)},
	}))
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	r := components.NewRenderer(
		components.WithTemplates(engine),
		components.WithPartials(map[string]string{components.PartialCard: "theme/card.tmpl"}),
	)

	got := render(t, r.Card, components.CardProps{Title: "Custom", Class: "p-2"})
	assertContains(t, got, `<section class="`, `p-2`, `>Custom</section>`)
}

func TestAlertVariant(t *testing.T) {
	r := components.NewRenderer()
	got := testsupport.NormalizeHTML(render(t, r.Alert, components.AlertProps{
		Variant:     "destructive",
		Title:       "Heads up",
		Description: "Something failed",
	}))

	assertContains(t, got,
		`role="alert"`,
		`data-variant="destructive"`,
		`text-destructive`,
		`>Heads up</h5>`,
		`Something failed`,
	)
}

func TestAssetsFS(t *testing.T) {
	if _, err := components.AssetsFS().Open(components.StylesheetName); err != nil {
		t.Fatalf("open stylesheet: %v", err)
	}
	if _, err := components.TemplatesFS().Open(components.CardTemplate); err != nil {
		t.Fatalf("open card template: %v", err)
	}
}
