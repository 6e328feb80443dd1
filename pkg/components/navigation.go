package components

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/goliatone/go-uikit/pkg/classnames"
	"github.com/goliatone/go-uikit/pkg/variants"
)

// AvatarProps configures Avatar. Without Fallback the initials of Alt are
// shown while the image is missing.
type AvatarProps struct {
	Src      string `json:"src,omitempty"`
	Alt      string `json:"alt,omitempty"`
	Fallback string `json:"fallback,omitempty"`
	Size     string `json:"size,omitempty"`
	Class    string `json:"class,omitempty"`
}

func (r *Renderer) Avatar(buf *bytes.Buffer, p AvatarProps) error {
	fallback := p.Fallback
	if fallback == "" {
		fallback = initials(p.Alt)
	}
	if p.Src == "" && fallback == "" {
		return fmt.Errorf("components: avatar needs a src, alt or fallback")
	}

	buf.WriteString(`<span data-component="avatar"`)
	attr(buf, "class", r.Class(AvatarSpec, variants.Choices{"size": p.Size}, p.Class))
	buf.WriteByte('>')
	if p.Src != "" {
		buf.WriteString(`<img class="aspect-square h-full w-full"`)
		attr(buf, "src", p.Src)
		attrAlways(buf, "alt", p.Alt)
		buf.WriteString(`>`)
	}
	if fallback != "" {
		buf.WriteString(`<span data-avatar-fallback class="flex h-full w-full items-center justify-center rounded-full bg-muted"`)
		boolAttr(buf, "hidden", p.Src != "")
		if p.Src == "" && p.Alt != "" {
			attr(buf, "role", "img")
			attr(buf, "aria-label", p.Alt)
		}
		buf.WriteByte('>')
		text(buf, fallback)
		buf.WriteString(`</span>`)
	}
	buf.WriteString(`</span>`)
	return nil
}

// initials returns the upper-cased first letters of the first two words.
func initials(name string) string {
	var out []rune
	for _, word := range strings.Fields(name) {
		first, _ := utf8.DecodeRuneInString(word)
		out = append(out, unicode.ToUpper(first))
		if len(out) == 2 {
			break
		}
	}
	return string(out)
}

// BreadcrumbItem is one crumb. The last item is the current page and its
// Href is ignored.
type BreadcrumbItem struct {
	Label string `json:"label"`
	Href  string `json:"href,omitempty"`
}

// BreadcrumbProps configures Breadcrumb. A positive MaxItems keeps the
// first crumb and the trailing ones, collapsing the middle to an ellipsis.
type BreadcrumbProps struct {
	Items     []BreadcrumbItem `json:"items,omitempty"`
	MaxItems  int              `json:"maxItems,omitempty"`
	Separator Markup           `json:"separator,omitempty"`
	Class     string           `json:"class,omitempty"`
}

func (r *Renderer) Breadcrumb(buf *bytes.Buffer, p BreadcrumbProps) error {
	if len(p.Items) == 0 {
		return fmt.Errorf("components: breadcrumb needs at least one item")
	}
	for idx, item := range p.Items {
		if strings.TrimSpace(item.Label) == "" {
			return fmt.Errorf("components: breadcrumb item %d needs a label", idx)
		}
	}
	separator := p.Separator
	if separator == "" {
		separator = glyphChevronRight
	}
	items, collapsedAt := collapseCrumbs(p.Items, p.MaxItems)

	buf.WriteString(`<nav aria-label="breadcrumb"`)
	attr(buf, "class", p.Class)
	buf.WriteString(`><ol class="flex flex-wrap items-center gap-1.5 break-words text-sm text-muted-foreground sm:gap-2.5">`)
	last := len(items) - 1
	for idx, item := range items {
		if idx > 0 {
			writeCrumbSeparator(buf, separator)
		}
		if idx == collapsedAt {
			buf.WriteString(`<li class="inline-flex items-center gap-1.5"><span role="presentation" aria-hidden="true" class="flex h-9 w-9 items-center justify-center">`)
			buf.WriteString(string(glyphEllipsis))
			buf.WriteString(`<span class="sr-only">More</span></span></li>`)
			writeCrumbSeparator(buf, separator)
		}
		buf.WriteString(`<li class="inline-flex items-center gap-1.5">`)
		switch {
		case idx == last:
			buf.WriteString(`<span role="link" aria-disabled="true" aria-current="page" class="font-normal text-foreground">`)
			text(buf, item.Label)
			buf.WriteString(`</span>`)
		case item.Href != "":
			buf.WriteString(`<a class="transition-colors hover:text-foreground"`)
			attr(buf, "href", item.Href)
			buf.WriteByte('>')
			text(buf, item.Label)
			buf.WriteString(`</a>`)
		default:
			buf.WriteString(`<span>`)
			text(buf, item.Label)
			buf.WriteString(`</span>`)
		}
		buf.WriteString(`</li>`)
	}
	buf.WriteString(`</ol></nav>`)
	return nil
}

// collapseCrumbs trims items to limit entries. collapsedAt is the index in
// the result before which the ellipsis goes, or -1.
func collapseCrumbs(items []BreadcrumbItem, limit int) ([]BreadcrumbItem, int) {
	if limit <= 0 || len(items) <= limit {
		return items, -1
	}
	limit = max(limit, 2)
	out := make([]BreadcrumbItem, 0, limit)
	out = append(out, items[0])
	out = append(out, items[len(items)-(limit-1):]...)
	return out, 1
}

func writeCrumbSeparator(buf *bytes.Buffer, separator Markup) {
	buf.WriteString(`<li role="presentation" aria-hidden="true" class="[&>svg]:h-3.5 [&>svg]:w-3.5">`)
	buf.WriteString(string(separator))
	buf.WriteString(`</li>`)
}

// PaginationProps configures Pagination. Href is a link template where
// "{page}" is replaced by the page number; without it pages render as
// buttons carrying data-page.
type PaginationProps struct {
	Page     int    `json:"page"`
	Total    int    `json:"total"`
	Href     string `json:"href,omitempty"`
	Siblings int    `json:"siblings,omitempty"`
	Class    string `json:"class,omitempty"`
}

// PageWindow lists the pages to show around page, with 0 standing for an
// ellipsis. The first and last page are always present.
func PageWindow(page, total, siblings int) []int {
	if siblings < 0 {
		siblings = 0
	}
	// first, last, current, two ellipses
	slots := 2*siblings + 5
	if total <= slots {
		return pageRange(1, total)
	}
	left := max(page-siblings, 1)
	right := min(page+siblings, total)
	leftGap := left > 3
	rightGap := right < total-2

	switch {
	case !leftGap && rightGap:
		return append(pageRange(1, slots-2), 0, total)
	case leftGap && !rightGap:
		return append([]int{1, 0}, pageRange(total-(slots-2)+1, total)...)
	default:
		out := append([]int{1, 0}, pageRange(left, right)...)
		return append(out, 0, total)
	}
}

func pageRange(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for n := from; n <= to; n++ {
		out = append(out, n)
	}
	return out
}

func (r *Renderer) Pagination(buf *bytes.Buffer, p PaginationProps) error {
	if p.Total < 1 {
		return fmt.Errorf("components: pagination needs at least one page, got %d", p.Total)
	}
	if p.Page < 1 || p.Page > p.Total {
		return fmt.Errorf("components: page %d is outside 1..%d", p.Page, p.Total)
	}
	siblings := p.Siblings
	if siblings == 0 {
		siblings = 1
	}

	buf.WriteString(`<nav role="navigation" aria-label="pagination"`)
	attr(buf, "class", classnames.Merge("mx-auto flex w-full justify-center", p.Class))
	buf.WriteString(`><ul class="flex flex-row items-center gap-1">`)

	r.writePageStep(buf, p, p.Page-1, "Go to previous page", "Previous", glyphChevronLeft, true)
	for _, n := range PageWindow(p.Page, p.Total, siblings) {
		buf.WriteString(`<li>`)
		if n == 0 {
			buf.WriteString(`<span aria-hidden="true" class="flex h-9 w-9 items-center justify-center">`)
			buf.WriteString(string(glyphEllipsis))
			buf.WriteString(`<span class="sr-only">More pages</span></span></li>`)
			continue
		}
		active := n == p.Page
		variant := "ghost"
		if active {
			variant = "outline"
		}
		openPageLink(buf, p.Href, n, false)
		if active {
			attr(buf, "aria-current", "page")
		}
		attr(buf, "data-active", variants.Bool(active))
		attr(buf, "class", r.Class(ButtonSpec, variants.Choices{"variant": variant, "size": "icon"}, ""))
		buf.WriteByte('>')
		buf.WriteString(strconv.Itoa(n))
		closePageLink(buf, p.Href)
		buf.WriteString(`</li>`)
	}
	r.writePageStep(buf, p, p.Page+1, "Go to next page", "Next", glyphChevronRight, false)

	buf.WriteString(`</ul></nav>`)
	return nil
}

func (r *Renderer) writePageStep(buf *bytes.Buffer, p PaginationProps, target int, aria, label string, glyph Markup, iconFirst bool) {
	disabled := target < 1 || target > p.Total
	buf.WriteString(`<li>`)
	openPageLink(buf, p.Href, target, disabled)
	attr(buf, "aria-label", aria)
	ariaBool(buf, "aria-disabled", disabled)
	pad := "pr-2.5"
	if iconFirst {
		pad = "pl-2.5"
	}
	attr(buf, "class", r.Class(ButtonSpec, variants.Choices{"variant": "ghost"},
		classnames.Join("gap-1", pad, classnames.If(disabled, "pointer-events-none opacity-50"))))
	buf.WriteByte('>')
	if iconFirst {
		buf.WriteString(string(glyph))
	}
	buf.WriteString(`<span>`)
	text(buf, label)
	buf.WriteString(`</span>`)
	if !iconFirst {
		buf.WriteString(string(glyph))
	}
	closePageLink(buf, p.Href)
	buf.WriteString(`</li>`)
}

// openPageLink writes an unterminated <a> or <button> start tag for page n.
// Disabled links lose their href so they cannot be followed.
func openPageLink(buf *bytes.Buffer, href string, n int, disabled bool) {
	if href == "" {
		buf.WriteString(`<button type="button"`)
		if !disabled {
			attr(buf, "data-page", strconv.Itoa(n))
		}
		boolAttr(buf, "disabled", disabled)
		return
	}
	buf.WriteString(`<a`)
	if !disabled {
		attr(buf, "href", strings.ReplaceAll(href, "{page}", strconv.Itoa(n)))
	}
}

func closePageLink(buf *bytes.Buffer, href string) {
	if href == "" {
		buf.WriteString(`</button>`)
		return
	}
	buf.WriteString(`</a>`)
}
