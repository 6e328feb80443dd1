package components

import (
	"bytes"
	"fmt"
	"slices"
	"strconv"

	"github.com/goliatone/go-uikit/pkg/classnames"
	"github.com/goliatone/go-uikit/pkg/variants"
	"github.com/goliatone/go-uikit/pkg/widgets"
)

// CollapsibleProps configures Collapsible.
type CollapsibleProps struct {
	ID           string `json:"id,omitempty"`
	Trigger      Markup `json:"trigger,omitempty"`
	TriggerLabel string `json:"triggerLabel,omitempty"`
	Content      Markup `json:"content,omitempty"`
	Open         bool   `json:"open,omitempty"`
	Disabled     bool   `json:"disabled,omitempty"`
	Class        string `json:"class,omitempty"`
}

// Collapsible renders a trigger button controlling one content region.
func (r *Renderer) Collapsible(buf *bytes.Buffer, p CollapsibleProps) error {
	if p.Trigger == "" && p.TriggerLabel == "" {
		return fmt.Errorf("components: collapsible needs a trigger")
	}
	id := p.ID
	if id == "" {
		id = "collapsible"
	}
	contentID := id + "-content"
	disclosure := widgets.NewDisclosure(p.Open)

	buf.WriteString(`<div data-component="collapsible"`)
	attr(buf, "data-state", disclosure.State())
	boolAttr(buf, "data-disabled", p.Disabled)
	attr(buf, "class", p.Class)
	buf.WriteByte('>')

	buf.WriteString(`<button type="button"`)
	attr(buf, "id", id+"-trigger")
	attr(buf, "aria-controls", contentID)
	attr(buf, "aria-expanded", disclosure.AriaExpanded())
	attr(buf, "data-state", disclosure.State())
	boolAttr(buf, "disabled", p.Disabled)
	buf.WriteByte('>')
	content(buf, p.TriggerLabel, p.Trigger)
	buf.WriteString(`</button>`)

	buf.WriteString(`<div`)
	attr(buf, "id", contentID)
	attr(buf, "data-state", disclosure.State())
	boolAttr(buf, "hidden", !disclosure.Open())
	buf.WriteByte('>')
	buf.WriteString(string(p.Content))
	buf.WriteString(`</div></div>`)
	return nil
}

// AccordionType selects whether one or several items may be open.
type AccordionType string

const (
	AccordionSingle   AccordionType = "single"
	AccordionMultiple AccordionType = "multiple"
)

// AccordionItem is one section of an Accordion. Value identifies it in
// AccordionProps.Open.
type AccordionItem struct {
	Value    string `json:"value"`
	Title    string `json:"title"`
	Content  Markup `json:"content,omitempty"`
	Disabled bool   `json:"disabled,omitempty"`
}

// AccordionProps configures Accordion. A single accordion accepts at most
// one open value; unless Collapsible, its open item cannot be closed and
// its trigger is marked aria-disabled.
type AccordionProps struct {
	ID          string          `json:"id,omitempty"`
	Type        AccordionType   `json:"type,omitempty"`
	Items       []AccordionItem `json:"items,omitempty"`
	Open        []string        `json:"open,omitempty"`
	Collapsible bool            `json:"collapsible,omitempty"`
	Class       string          `json:"class,omitempty"`
}

func (p AccordionProps) validate() error {
	switch p.Type {
	case "", AccordionSingle:
		if len(p.Open) > 1 {
			return fmt.Errorf("components: single accordion opens at most one item, got %d", len(p.Open))
		}
	case AccordionMultiple:
	default:
		return fmt.Errorf("components: unknown accordion type %q", p.Type)
	}
	seen := make(map[string]struct{}, len(p.Items))
	for idx, item := range p.Items {
		if item.Value == "" || item.Title == "" {
			return fmt.Errorf("components: accordion item %d needs a value and a title", idx)
		}
		if _, dup := seen[item.Value]; dup {
			return fmt.Errorf("components: duplicate accordion value %q", item.Value)
		}
		seen[item.Value] = struct{}{}
	}
	for _, value := range p.Open {
		if _, ok := seen[value]; !ok {
			return fmt.Errorf("components: accordion has no item %q", value)
		}
	}
	return nil
}

// Accordion renders a vertical stack of headed sections, each a button
// controlling a role="region" panel.
func (r *Renderer) Accordion(buf *bytes.Buffer, p AccordionProps) error {
	if err := p.validate(); err != nil {
		return err
	}
	id := p.ID
	if id == "" {
		id = "accordion"
	}
	kind := p.Type
	if kind == "" {
		kind = AccordionSingle
	}

	buf.WriteString(`<div data-component="accordion" data-orientation="vertical"`)
	attr(buf, "data-type", string(kind))
	attr(buf, "class", p.Class)
	buf.WriteByte('>')

	for idx, item := range p.Items {
		disclosure := widgets.NewDisclosure(slices.Contains(p.Open, item.Value))
		locked := kind == AccordionSingle && !p.Collapsible && disclosure.Open()
		triggerID := id + "-trigger-" + strconv.Itoa(idx)
		contentID := id + "-content-" + strconv.Itoa(idx)

		buf.WriteString(`<div class="border-b"`)
		attr(buf, "data-value", item.Value)
		attr(buf, "data-state", disclosure.State())
		boolAttr(buf, "data-disabled", item.Disabled)
		buf.WriteByte('>')

		buf.WriteString(`<h3 class="flex"><button type="button"`)
		attr(buf, "id", triggerID)
		attr(buf, "aria-controls", contentID)
		attr(buf, "aria-expanded", disclosure.AriaExpanded())
		ariaBool(buf, "aria-disabled", locked)
		attr(buf, "data-state", disclosure.State())
		boolAttr(buf, "disabled", item.Disabled)
		buf.WriteString(` class="flex flex-1 items-center justify-between py-4 text-left text-sm font-medium transition-all hover:underline [&[data-state=open]>svg]:rotate-180">`)
		text(buf, item.Title)
		buf.WriteString(string(glyphChevronDown))
		buf.WriteString(`</button></h3>`)

		buf.WriteString(`<div role="region"`)
		attr(buf, "id", contentID)
		attr(buf, "aria-labelledby", triggerID)
		attr(buf, "data-state", disclosure.State())
		boolAttr(buf, "hidden", !disclosure.Open())
		buf.WriteString(` class="overflow-hidden text-sm data-[state=closed]:animate-accordion-up data-[state=open]:animate-accordion-down">`)
		buf.WriteString(`<div class="pb-4 pt-0">`)
		buf.WriteString(string(item.Content))
		buf.WriteString(`</div></div></div>`)
	}
	buf.WriteString(`</div>`)
	return nil
}

// Tab is one trigger and panel of Tabs.
type Tab struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Content  Markup `json:"content,omitempty"`
	Disabled bool   `json:"disabled,omitempty"`
}

// TabsProps configures Tabs. An empty Value selects the first enabled tab.
type TabsProps struct {
	ID          string `json:"id,omitempty"`
	Tabs        []Tab  `json:"tabs,omitempty"`
	Value       string `json:"value,omitempty"`
	Orientation string `json:"orientation,omitempty"`
	Class       string `json:"class,omitempty"`
}

func (p TabsProps) active() (string, error) {
	if len(p.Tabs) == 0 {
		return "", fmt.Errorf("components: tabs need at least one tab")
	}
	seen := make(map[string]Tab, len(p.Tabs))
	first := ""
	for idx, tab := range p.Tabs {
		if tab.Value == "" || tab.Label == "" {
			return "", fmt.Errorf("components: tab %d needs a value and a label", idx)
		}
		if _, dup := seen[tab.Value]; dup {
			return "", fmt.Errorf("components: duplicate tab value %q", tab.Value)
		}
		seen[tab.Value] = tab
		if first == "" && !tab.Disabled {
			first = tab.Value
		}
	}
	if p.Value == "" {
		if first == "" {
			return "", fmt.Errorf("components: every tab is disabled")
		}
		return first, nil
	}
	tab, ok := seen[p.Value]
	switch {
	case !ok:
		return "", fmt.Errorf("components: tabs have no tab %q", p.Value)
	case tab.Disabled:
		return "", fmt.Errorf("components: tab %q is disabled", p.Value)
	}
	return p.Value, nil
}

// Tabs renders a role="tablist" and one role="tabpanel" per tab. Only the
// active trigger is in the tab order.
func (r *Renderer) Tabs(buf *bytes.Buffer, p TabsProps) error {
	active, err := p.active()
	if err != nil {
		return err
	}
	id := p.ID
	if id == "" {
		id = "tabs"
	}
	orientation := p.Orientation
	if orientation == "" {
		orientation = "horizontal"
	}

	buf.WriteString(`<div data-component="tabs"`)
	attr(buf, "data-orientation", orientation)
	attr(buf, "class", classnames.Join(classnames.If(orientation == "vertical", "flex gap-2"), p.Class))
	buf.WriteByte('>')

	buf.WriteString(`<div role="tablist"`)
	attr(buf, "aria-orientation", orientation)
	attr(buf, "class", r.Class(TabsListSpec, variants.Choices{"orientation": orientation}, ""))
	buf.WriteByte('>')
	for idx, tab := range p.Tabs {
		selected := tab.Value == active
		buf.WriteString(`<button type="button" role="tab"`)
		attr(buf, "id", id+"-trigger-"+strconv.Itoa(idx))
		attr(buf, "aria-controls", id+"-content-"+strconv.Itoa(idx))
		ariaState(buf, "aria-selected", selected)
		attr(buf, "data-state", tabState(selected))
		attr(buf, "data-value", tab.Value)
		if !selected {
			attr(buf, "tabindex", "-1")
		}
		boolAttr(buf, "disabled", tab.Disabled)
		attr(buf, "class", r.Class(TabsTriggerSpec, variants.Choices{"active": variants.Bool(selected)}, ""))
		buf.WriteByte('>')
		text(buf, tab.Label)
		buf.WriteString(`</button>`)
	}
	buf.WriteString(`</div>`)

	for idx, tab := range p.Tabs {
		selected := tab.Value == active
		buf.WriteString(`<div role="tabpanel" tabindex="0"`)
		attr(buf, "id", id+"-content-"+strconv.Itoa(idx))
		attr(buf, "aria-labelledby", id+"-trigger-"+strconv.Itoa(idx))
		attr(buf, "data-state", tabState(selected))
		boolAttr(buf, "hidden", !selected)
		buf.WriteString(` class="mt-2 ring-offset-background focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-ring focus-visible:ring-offset-2">`)
		buf.WriteString(string(tab.Content))
		buf.WriteString(`</div>`)
	}
	buf.WriteString(`</div>`)
	return nil
}

func tabState(active bool) string {
	if active {
		return "active"
	}
	return "inactive"
}
