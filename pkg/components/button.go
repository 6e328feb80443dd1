package components

import (
	"bytes"
	"strings"

	"github.com/goliatone/go-uikit/pkg/variants"
)

// ButtonProps configures Button. Href renders the button as a link with the
// same styling.
type ButtonProps struct {
	ID        string `json:"id,omitempty"`
	Type      string `json:"type,omitempty"`
	Name      string `json:"name,omitempty"`
	Value     string `json:"value,omitempty"`
	Href      string `json:"href,omitempty"`
	Variant   string `json:"variant,omitempty"`
	Size      string `json:"size,omitempty"`
	Label     string `json:"label,omitempty"`
	Children  Markup `json:"children,omitempty"`
	AriaLabel string `json:"ariaLabel,omitempty"`
	Disabled  bool   `json:"disabled,omitempty"`
	Loading   bool   `json:"loading,omitempty"`
	StartIcon Icon   `json:"startIcon,omitempty"`
	EndIcon   Icon   `json:"endIcon,omitempty"`
	Class     string `json:"class,omitempty"`
}

// Button renders a button. Loading disables it and replaces the icons with
// a spinner.
func (r *Renderer) Button(buf *bytes.Buffer, p ButtonProps) error {
	class := r.Class(ButtonSpec, variants.Choices{"variant": p.Variant, "size": p.Size}, p.Class)
	disabled := p.Disabled || p.Loading
	ariaLabel := p.AriaLabel
	if ariaLabel == "" {
		ariaLabel = p.Label
	}

	link := strings.TrimSpace(p.Href) != ""
	if link {
		buf.WriteString(`<a`)
		attr(buf, "id", p.ID)
		if !disabled {
			attr(buf, "href", p.Href)
		} else {
			attr(buf, "role", "link")
		}
	} else {
		buf.WriteString(`<button`)
		attr(buf, "id", p.ID)
		typ := p.Type
		if typ == "" {
			typ = "button"
		}
		attr(buf, "type", typ)
		attr(buf, "name", p.Name)
		attr(buf, "value", p.Value)
		boolAttr(buf, "disabled", disabled)
	}
	attr(buf, "class", class)
	attr(buf, "aria-label", ariaLabel)
	ariaState(buf, "aria-disabled", disabled)
	ariaBool(buf, "aria-busy", p.Loading)
	attr(buf, "data-component", "button")
	buf.WriteByte('>')

	if p.Loading {
		buf.WriteString(string(glyphSpinner))
	} else {
		writeIcon(buf, p.StartIcon, "mr-2")
	}
	content(buf, p.Label, p.Children)
	if !p.Loading {
		writeIcon(buf, p.EndIcon, "ml-2")
	}

	if link {
		buf.WriteString(`</a>`)
	} else {
		buf.WriteString(`</button>`)
	}
	return nil
}

// BadgeProps configures Badge.
type BadgeProps struct {
	Variant   string `json:"variant,omitempty"`
	Size      string `json:"size,omitempty"`
	Label     string `json:"label,omitempty"`
	Children  Markup `json:"children,omitempty"`
	Icon      Icon   `json:"icon,omitempty"`
	IconAfter Icon   `json:"iconAfter,omitempty"`
	Class     string `json:"class,omitempty"`
}

// Badge renders a status or count badge.
func (r *Renderer) Badge(buf *bytes.Buffer, p BadgeProps) error {
	buf.WriteString(`<div`)
	attr(buf, "class", r.Class(BadgeSpec, variants.Choices{"variant": p.Variant, "size": p.Size}, p.Class))
	attr(buf, "data-component", "badge")
	buf.WriteByte('>')
	writeIcon(buf, p.Icon, "mr-1")
	content(buf, p.Label, p.Children)
	writeIcon(buf, p.IconAfter, "ml-1")
	buf.WriteString(`</div>`)
	return nil
}
