package components

import (
	"bytes"
	"fmt"

	"github.com/goliatone/go-uikit/pkg/variants"
)

// LabelProps configures Label.
type LabelProps struct {
	ID       string `json:"id,omitempty"`
	For      string `json:"for,omitempty"`
	Text     string `json:"text,omitempty"`
	Required bool   `json:"required,omitempty"`
	Invalid  bool   `json:"invalid,omitempty"`
	Class    string `json:"class,omitempty"`
}

// Label renders a form label. Required appends the "*" glyph.
func (r *Renderer) Label(buf *bytes.Buffer, p LabelProps) error {
	buf.WriteString(`<label`)
	attr(buf, "id", p.ID)
	attr(buf, "for", p.For)
	attr(buf, "class", r.Class(LabelSpec, variants.Choices{"invalid": boolChoice(p.Invalid)}, p.Class))
	buf.WriteByte('>')
	text(buf, p.Text)
	if p.Required {
		buf.WriteString(`<span class="text-destructive ml-1" aria-hidden="true">*</span>`)
	}
	buf.WriteString(`</label>`)
	return nil
}

// TypographyProps configures Typography. As overrides the element chosen
// by the variant.
type TypographyProps struct {
	Variant  string `json:"variant,omitempty"`
	Align    string `json:"align,omitempty"`
	As       string `json:"as,omitempty"`
	Text     string `json:"text,omitempty"`
	Children Markup `json:"children,omitempty"`
	Class    string `json:"class,omitempty"`
}

var typographyElements = map[string]string{
	"h1": "h1", "h2": "h2", "h3": "h3", "h4": "h4", "h5": "h5", "h6": "h6",
	"blockquote": "blockquote", "list": "ul",
}

var allowedTextElements = map[string]struct{}{
	"p": {}, "span": {}, "div": {}, "label": {}, "strong": {}, "em": {}, "small": {},
	"h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {},
	"blockquote": {}, "ul": {}, "ol": {}, "li": {}, "figcaption": {}, "legend": {},
}

// Typography renders text with one of the type-scale variants.
func (r *Renderer) Typography(buf *bytes.Buffer, p TypographyProps) error {
	element := "p"
	if tag, ok := typographyElements[p.Variant]; ok {
		element = tag
	}
	if p.As != "" {
		if _, ok := allowedTextElements[p.As]; !ok {
			return fmt.Errorf("components: typography: element %q is not allowed", p.As)
		}
		element = p.As
	}

	buf.WriteString(`<` + element)
	attr(buf, "class", r.Class(TypographySpec, variants.Choices{"variant": p.Variant, "align": p.Align}, p.Class))
	buf.WriteByte('>')
	content(buf, p.Text, p.Children)
	buf.WriteString(`</` + element + `>`)
	return nil
}
