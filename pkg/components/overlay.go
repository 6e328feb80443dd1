package components

import (
	"bytes"
	"fmt"

	"github.com/goliatone/go-uikit/pkg/classnames"
	"github.com/goliatone/go-uikit/pkg/variants"
	"github.com/goliatone/go-uikit/pkg/widgets"
)

// DialogProps configures Dialog. Side "top", "bottom", "left" or "right"
// renders a sheet anchored to that edge instead of a centered dialog.
// Without Trigger or TriggerLabel no trigger button is written and the
// caller opens the dialog by id.
type DialogProps struct {
	ID           string `json:"id,omitempty"`
	Title        string `json:"title,omitempty"`
	Description  string `json:"description,omitempty"`
	Trigger      Markup `json:"trigger,omitempty"`
	TriggerLabel string `json:"triggerLabel,omitempty"`
	Content      Markup `json:"content,omitempty"`
	Footer       Markup `json:"footer,omitempty"`
	Open         bool   `json:"open,omitempty"`
	Side         string `json:"side,omitempty"`
	CloseLabel   string `json:"closeLabel,omitempty"`
	Class        string `json:"class,omitempty"`
}

// Dialog renders a modal role="dialog" panel with its overlay. The title
// labels the dialog, so it is required.
func (r *Renderer) Dialog(buf *bytes.Buffer, p DialogProps) error {
	if p.Title == "" {
		return fmt.Errorf("components: dialog needs a title")
	}
	id := p.ID
	if id == "" {
		id = "dialog"
	}
	contentID := id + "-content"
	titleID := id + "-title"
	descriptionID := ""
	if p.Description != "" {
		descriptionID = id + "-description"
	}
	disclosure := widgets.NewDisclosure(p.Open)
	closeLabel := p.CloseLabel
	if closeLabel == "" {
		closeLabel = "Close"
	}

	buf.WriteString(`<div data-component="dialog"`)
	attr(buf, "data-state", disclosure.State())
	buf.WriteByte('>')

	if p.Trigger != "" || p.TriggerLabel != "" {
		buf.WriteString(`<button type="button" aria-haspopup="dialog"`)
		attr(buf, "id", id+"-trigger")
		attr(buf, "aria-controls", contentID)
		attr(buf, "aria-expanded", disclosure.AriaExpanded())
		attr(buf, "data-state", disclosure.State())
		attr(buf, "class", r.Class(ButtonSpec, variants.Choices{"variant": "outline"}, ""))
		buf.WriteByte('>')
		content(buf, p.TriggerLabel, p.Trigger)
		buf.WriteString(`</button>`)
	}

	buf.WriteString(`<div data-dialog-overlay aria-hidden="true"`)
	attr(buf, "data-state", disclosure.State())
	boolAttr(buf, "hidden", !disclosure.Open())
	buf.WriteString(` class="fixed inset-0 z-50 bg-black/80 data-[state=open]:animate-in data-[state=closed]:animate-out data-[state=closed]:fade-out-0 data-[state=open]:fade-in-0"></div>`)

	buf.WriteString(`<div role="dialog" aria-modal="true" tabindex="-1"`)
	attr(buf, "id", contentID)
	attr(buf, "aria-labelledby", titleID)
	attr(buf, "aria-describedby", descriptionID)
	attr(buf, "data-state", disclosure.State())
	attr(buf, "data-side", p.Side)
	boolAttr(buf, "hidden", !disclosure.Open())
	attr(buf, "class", r.Class(DialogSpec, variants.Choices{"side": p.Side}, p.Class))
	buf.WriteByte('>')

	buf.WriteString(`<div class="flex flex-col space-y-1.5 text-center sm:text-left">`)
	buf.WriteString(`<h2 class="text-lg font-semibold leading-none tracking-tight"`)
	attr(buf, "id", titleID)
	buf.WriteByte('>')
	text(buf, p.Title)
	buf.WriteString(`</h2>`)
	if descriptionID != "" {
		buf.WriteString(`<p class="text-sm text-muted-foreground"`)
		attr(buf, "id", descriptionID)
		buf.WriteByte('>')
		text(buf, p.Description)
		buf.WriteString(`</p>`)
	}
	buf.WriteString(`</div>`)

	buf.WriteString(string(p.Content))
	if p.Footer != "" {
		buf.WriteString(`<div class="flex flex-col-reverse sm:flex-row sm:justify-end sm:space-x-2">`)
		buf.WriteString(string(p.Footer))
		buf.WriteString(`</div>`)
	}

	buf.WriteString(`<button type="button" data-dialog-close`)
	attr(buf, "aria-controls", contentID)
	attr(buf, "aria-label", closeLabel)
	buf.WriteString(` class="absolute right-4 top-4 rounded-sm opacity-70 ring-offset-background transition-opacity hover:opacity-100 focus:outline-none focus:ring-2 focus:ring-ring focus:ring-offset-2 disabled:pointer-events-none">`)
	buf.WriteString(string(glyphX))
	buf.WriteString(`</button>`)

	buf.WriteString(`</div></div>`)
	return nil
}

// PopoverProps configures Popover.
type PopoverProps struct {
	ID           string `json:"id,omitempty"`
	Trigger      Markup `json:"trigger,omitempty"`
	TriggerLabel string `json:"triggerLabel,omitempty"`
	Content      Markup `json:"content,omitempty"`
	Open         bool   `json:"open,omitempty"`
	Side         string `json:"side,omitempty"`
	Align        string `json:"align,omitempty"`
	Class        string `json:"class,omitempty"`
}

// Popover renders a trigger and a non-modal floating panel. Positioning is
// left to the client through data-side and data-align.
func (r *Renderer) Popover(buf *bytes.Buffer, p PopoverProps) error {
	if p.Trigger == "" && p.TriggerLabel == "" {
		return fmt.Errorf("components: popover needs a trigger")
	}
	id := p.ID
	if id == "" {
		id = "popover"
	}
	contentID := id + "-content"
	disclosure := widgets.NewDisclosure(p.Open)
	side := p.Side
	if side == "" {
		side = "bottom"
	}
	align := p.Align
	if align == "" {
		align = "center"
	}

	buf.WriteString(`<div class="relative inline-block" data-component="popover">`)
	buf.WriteString(`<button type="button" aria-haspopup="dialog"`)
	attr(buf, "id", id+"-trigger")
	attr(buf, "aria-controls", contentID)
	attr(buf, "aria-expanded", disclosure.AriaExpanded())
	attr(buf, "data-state", disclosure.State())
	buf.WriteByte('>')
	content(buf, p.TriggerLabel, p.Trigger)
	buf.WriteString(`</button>`)

	buf.WriteString(`<div role="dialog"`)
	attr(buf, "id", contentID)
	attr(buf, "aria-labelledby", id+"-trigger")
	attr(buf, "data-state", disclosure.State())
	attr(buf, "data-side", side)
	attr(buf, "data-align", align)
	boolAttr(buf, "hidden", !disclosure.Open())
	attr(buf, "class", r.Class(PopoverSpec, nil, p.Class))
	buf.WriteByte('>')
	buf.WriteString(string(p.Content))
	buf.WriteString(`</div></div>`)
	return nil
}

// TooltipProps configures Tooltip. Label is plain text.
type TooltipProps struct {
	ID      string `json:"id,omitempty"`
	Trigger Markup `json:"trigger,omitempty"`
	Label   string `json:"label,omitempty"`
	Side    string `json:"side,omitempty"`
	Open    bool   `json:"open,omitempty"`
	Class   string `json:"class,omitempty"`
}

// Tooltip wraps Trigger and links it to a role="tooltip" label through
// aria-describedby, so the label is announced even while hidden.
func (r *Renderer) Tooltip(buf *bytes.Buffer, p TooltipProps) error {
	if p.Trigger == "" || p.Label == "" {
		return fmt.Errorf("components: tooltip needs a trigger and a label")
	}
	id := p.ID
	if id == "" {
		id = "tooltip"
	}
	disclosure := widgets.NewDisclosure(p.Open)
	side := p.Side
	if side == "" {
		side = "top"
	}

	buf.WriteString(`<span class="relative inline-flex" data-component="tooltip">`)
	buf.WriteString(`<span`)
	attr(buf, "aria-describedby", id)
	attr(buf, "data-state", tooltipState(disclosure))
	buf.WriteByte('>')
	buf.WriteString(string(p.Trigger))
	buf.WriteString(`</span>`)

	buf.WriteString(`<span role="tooltip"`)
	attr(buf, "id", id)
	attr(buf, "data-state", tooltipState(disclosure))
	attr(buf, "data-side", side)
	boolAttr(buf, "hidden", !disclosure.Open())
	attr(buf, "class", r.Class(TooltipSpec, nil, classnames.Join("absolute", p.Class)))
	buf.WriteByte('>')
	text(buf, p.Label)
	buf.WriteString(`</span></span>`)
	return nil
}

// tooltipState follows the tooltip primitive, which reports "delayed-open"
// rather than "open".
func tooltipState(d widgets.Disclosure) string {
	if d.Open() {
		return "delayed-open"
	}
	return widgets.StateClosed
}
