package components_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-uikit/pkg/components"
)

func TestAvatarFallsBackToInitials(t *testing.T) {
	r := components.NewRenderer()
	got := render(t, r.Avatar, components.AvatarProps{Alt: "ada lovelace byron", Size: "lg"})

	assertContains(t, got,
		`<span data-component="avatar" class="`,
		"h-14 w-14",
		`role="img" aria-label="ada lovelace byron">AL</span></span>`,
	)
	assertNotContains(t, got, "<img")
}

func TestAvatarImageHidesFallback(t *testing.T) {
	r := components.NewRenderer()
	got := render(t, r.Avatar, components.AvatarProps{Src: "/a.png", Alt: "Ada Lovelace"})

	assertContains(t, got,
		`<img class="aspect-square h-full w-full" src="/a.png" alt="Ada Lovelace">`,
		`bg-muted" hidden>AL</span>`,
		"h-10 w-10",
	)

	if _, err := components.Render(r.Avatar, components.AvatarProps{}); err == nil {
		t.Fatalf("expected an empty avatar to fail")
	}
}

func crumbs() []components.BreadcrumbItem {
	return []components.BreadcrumbItem{
		{Label: "Home", Href: "/"},
		{Label: "Docs", Href: "/docs"},
		{Label: "Components", Href: "/docs/components"},
		{Label: "Button", Href: "/docs/components/button"},
	}
}

func TestBreadcrumbMarksCurrentPage(t *testing.T) {
	r := components.NewRenderer()
	got := render(t, r.Breadcrumb, components.BreadcrumbProps{Items: crumbs()})

	assertContains(t, got,
		`<nav aria-label="breadcrumb"><ol class="`,
		`<a class="transition-colors hover:text-foreground" href="/">Home</a>`,
		`href="/docs">Docs</a>`,
		`<li role="presentation" aria-hidden="true" class="`,
		`<span role="link" aria-disabled="true" aria-current="page" class="font-normal text-foreground">Button</span>`,
	)
	assertNotContains(t, got, `href="/docs/components/button"`, "sr-only")
	if n := strings.Count(got, `role="presentation"`); n != 3 {
		t.Fatalf("expected 3 separators, got %d\n%s", n, got)
	}
}

func TestBreadcrumbCollapsesMiddle(t *testing.T) {
	r := components.NewRenderer()
	got := render(t, r.Breadcrumb, components.BreadcrumbProps{Items: crumbs(), MaxItems: 3, Separator: "<span>/</span>"})

	assertContains(t, got,
		`>Home</a></li><li role="presentation" aria-hidden="true" class="[&>svg]:h-3.5 [&>svg]:w-3.5"><span>/</span></li>`,
		`<span class="sr-only">More</span>`,
		`>Components</a>`,
		`>Button</span>`,
	)
	assertNotContains(t, got, ">Docs<")
}

func TestBreadcrumbRejectsEmptyLabels(t *testing.T) {
	r := components.NewRenderer()
	if _, err := components.Render(r.Breadcrumb, components.BreadcrumbProps{}); err == nil {
		t.Fatalf("expected empty breadcrumb to fail")
	}
	if _, err := components.Render(r.Breadcrumb, components.BreadcrumbProps{Items: []components.BreadcrumbItem{{Label: " "}}}); err == nil {
		t.Fatalf("expected blank label to fail")
	}
}

func TestPageWindow(t *testing.T) {
	cases := []struct {
		page, total, siblings int
		want                  []int
	}{
		{1, 1, 1, []int{1}},
		{3, 5, 1, []int{1, 2, 3, 4, 5}},
		{1, 10, 1, []int{1, 2, 3, 4, 5, 0, 10}},
		{4, 10, 1, []int{1, 2, 3, 4, 5, 0, 10}},
		{5, 10, 1, []int{1, 0, 4, 5, 6, 0, 10}},
		{7, 10, 1, []int{1, 0, 6, 7, 8, 9, 10}},
		{10, 10, 1, []int{1, 0, 6, 7, 8, 9, 10}},
		{10, 20, 2, []int{1, 0, 8, 9, 10, 11, 12, 0, 20}},
	}
	for _, tc := range cases {
		got := components.PageWindow(tc.page, tc.total, tc.siblings)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Fatalf("PageWindow(%d, %d, %d) mismatch (-want +got):\n%s", tc.page, tc.total, tc.siblings, diff)
		}
	}
}

func TestPaginationLinks(t *testing.T) {
	r := components.NewRenderer()
	got := render(t, r.Pagination, components.PaginationProps{Page: 1, Total: 3, Href: "/items?page={page}"})

	assertContains(t, got,
		`<nav role="navigation" aria-label="pagination" class="`,
		`<li><a aria-label="Go to previous page" aria-disabled="true" class="`,
		" pointer-events-none",
		" opacity-50",
		`<a href="/items?page=1" aria-current="page" data-active="true" class="`,
		`>1</a></li>`,
		`<a href="/items?page=2" data-active="false" class="`,
		`<a href="/items?page=2" aria-label="Go to next page" class="`,
		"<span>Next</span>",
	)
	assertNotContains(t, got, `href="/items?page=0"`, "More pages")
}

func TestPaginationButtonsAndEllipsis(t *testing.T) {
	r := components.NewRenderer()
	got := render(t, r.Pagination, components.PaginationProps{Page: 20, Total: 20})

	assertContains(t, got,
		`<button type="button" data-page="19" aria-label="Go to previous page" class="`,
		`<button type="button" disabled aria-label="Go to next page" aria-disabled="true" class="`,
		`data-page="20" aria-current="page" data-active="true"`,
		`<span class="sr-only">More pages</span>`,
	)
}

func TestPaginationRejectsOutOfRange(t *testing.T) {
	r := components.NewRenderer()
	for _, props := range []components.PaginationProps{{Page: 1, Total: 0}, {Page: 0, Total: 3}, {Page: 4, Total: 3}} {
		if _, err := components.Render(r.Pagination, props); err == nil {
			t.Fatalf("expected %+v to fail", props)
		}
	}
}
