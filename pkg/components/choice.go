package components

import (
	"bytes"
	"slices"
	"strconv"

	"github.com/goliatone/go-uikit/pkg/variants"
	"github.com/goliatone/go-uikit/pkg/widgets"
)

// RadioGroupProps configures RadioGroup.
type RadioGroupProps struct {
	Control
	Options     []widgets.Option `json:"options,omitempty"`
	Value       string           `json:"value,omitempty"`
	Orientation string           `json:"orientation,omitempty"`
	Class       string           `json:"class,omitempty"`
}

// RadioGroup renders native radio inputs inside a role="radiogroup"
// container. Item ids are the group id plus the option id.
func (r *Renderer) RadioGroup(buf *bytes.Buffer, p RadioGroupProps) error {
	groupID := p.id()
	orientation := p.Orientation
	if orientation == "" {
		orientation = "vertical"
	}
	layout := "grid gap-2"
	if orientation == "horizontal" {
		layout = "flex flex-row gap-4"
	}

	buf.WriteString(`<div role="radiogroup"`)
	attr(buf, "id", groupID)
	attr(buf, "class", r.Class(variants.Spec{Name: "radio-group", Base: layout}, nil, p.Class))
	attr(buf, "aria-orientation", orientation)
	p.writeAria(buf)
	if p.Disabled {
		attr(buf, "data-disabled", "")
		attr(buf, "aria-disabled", "true")
	}
	buf.WriteByte('>')

	itemClass := r.Class(RadioItemSpec, variants.Choices{"invalid": boolChoice(p.Invalid)}, "")
	for idx, opt := range p.Options {
		itemID := groupID + "-" + opt.ID
		if opt.ID == "" {
			itemID = groupID + "-" + strconv.Itoa(idx)
		}
		checked := opt.ID == p.Value
		buf.WriteString(`<div class="flex items-center space-x-2">`)
		buf.WriteString(`<input type="radio"`)
		attr(buf, "id", itemID)
		attr(buf, "name", p.Name)
		attrAlways(buf, "value", opt.ID)
		attr(buf, "class", itemClass)
		attr(buf, "data-state", checkedState(checked))
		boolAttr(buf, "checked", checked)
		boolAttr(buf, "disabled", p.Disabled || p.ReadOnly || opt.Disabled)
		boolAttr(buf, "required", p.Required)
		buf.WriteString(`><label`)
		attr(buf, "for", itemID)
		attr(buf, "class", r.Class(LabelSpec, nil, "cursor-pointer"))
		buf.WriteByte('>')
		text(buf, opt.Label)
		buf.WriteString(`</label></div>`)
	}
	buf.WriteString(`</div>`)
	return nil
}

// SelectProps configures Select. Open and Query describe the listbox state
// when the page is rendered with it expanded, e.g. after a server-side
// search.
type SelectProps struct {
	Control
	Options     []widgets.Option `json:"options,omitempty"`
	Value       string           `json:"value,omitempty"`
	Placeholder string           `json:"placeholder,omitempty"`
	Searchable  bool             `json:"searchable,omitempty"`
	Query       string           `json:"query,omitempty"`
	Open        bool             `json:"open,omitempty"`
	FullWidth   bool             `json:"fullWidth,omitempty"`
	Class       string           `json:"class,omitempty"`
}

// Select renders a single-choice combobox: a trigger button, a listbox and a
// hidden input holding the value for submission.
func (r *Renderer) Select(buf *bytes.Buffer, p SelectProps) error {
	id := p.id()
	contentID := id + "-content"
	disclosure := widgets.NewDisclosure(p.Open)
	selected, hasSelection := widgets.Find(p.Options, p.Value)
	placeholder := p.Placeholder
	if placeholder == "" {
		placeholder = "Select an option"
	}

	buf.WriteString(`<div class="relative" data-component="select">`)
	buf.WriteString(`<button type="button" role="combobox"`)
	attr(buf, "id", id)
	attr(buf, "aria-controls", contentID)
	attr(buf, "aria-expanded", disclosure.AriaExpanded())
	attr(buf, "aria-haspopup", "listbox")
	attr(buf, "data-state", disclosure.State())
	attr(buf, "class", r.Class(SelectTriggerSpec, variants.Choices{
		"fullWidth": boolChoice(p.FullWidth),
		"invalid":   boolChoice(p.Invalid),
		"empty":     boolChoice(!hasSelection),
	}, p.Class))
	boolAttr(buf, "disabled", p.Disabled || p.ReadOnly)
	p.writeAria(buf)
	buf.WriteString(`><span data-slot="value">`)
	if hasSelection {
		text(buf, selected.Label)
	} else {
		text(buf, placeholder)
	}
	buf.WriteString(`</span>`)
	buf.WriteString(string(glyphChevronDown))
	buf.WriteString(`</button>`)

	writeListboxOpen(buf, contentID, disclosure, false)
	if p.Searchable {
		writeSearch(buf, id, p.Query)
	}
	visible := widgets.Filter(p.Options, p.Query)
	for _, opt := range visible {
		isSelected := hasSelection && opt.ID == selected.ID
		writeOption(buf, id, opt, isSelected, opt.Disabled)
	}
	if len(visible) == 0 {
		buf.WriteString(`<div class="px-3 py-2 text-sm text-muted-foreground" data-slot="empty">No results</div>`)
	}
	buf.WriteString(`</div>`)

	if p.Name != "" {
		buf.WriteString(`<input type="hidden"`)
		attr(buf, "name", p.Name)
		attrAlways(buf, "value", p.Value)
		buf.WriteByte('>')
	}
	buf.WriteString(`</div>`)
	return nil
}

// MultiSelectProps configures MultiSelect. Max caps the selection; zero is
// unlimited.
type MultiSelectProps struct {
	Control
	Options       []widgets.Option `json:"options,omitempty"`
	Value         []string         `json:"value,omitempty"`
	Max           int              `json:"max,omitempty"`
	Placeholder   string           `json:"placeholder,omitempty"`
	Searchable    bool             `json:"searchable,omitempty"`
	ShowSelectAll bool             `json:"showSelectAll,omitempty"`
	Query         string           `json:"query,omitempty"`
	Open          bool             `json:"open,omitempty"`
	FullWidth     bool             `json:"fullWidth,omitempty"`
	Class         string           `json:"class,omitempty"`
}

// MultiSelect renders a multi-choice combobox with removable chips. Options
// that cannot be added because the cap is reached are marked aria-disabled.
// One hidden input per selected value carries the selection on submit.
func (r *Renderer) MultiSelect(buf *bytes.Buffer, p MultiSelectProps) error {
	id := p.id()
	contentID := id + "-content"
	disclosure := widgets.NewDisclosure(p.Open)
	state := widgets.MultiSelect{Options: p.Options, Max: p.Max}
	chosen := state.Selected(p.Value)
	atLimit := state.AtLimit(p.Value)
	placeholder := p.Placeholder
	if placeholder == "" {
		placeholder = "Select options"
	}
	ariaLabel := p.AriaLabel
	if ariaLabel == "" {
		ariaLabel = placeholder
	}

	buf.WriteString(`<div class="relative" data-component="multi-select"`)
	if p.Max > 0 {
		attr(buf, "data-max", strconv.Itoa(p.Max))
	}
	buf.WriteString(`><div role="combobox" tabindex="0"`)
	attr(buf, "id", id)
	attr(buf, "aria-controls", contentID)
	attr(buf, "aria-expanded", disclosure.AriaExpanded())
	attr(buf, "aria-haspopup", "listbox")
	attr(buf, "aria-label", ariaLabel)
	attr(buf, "aria-describedby", p.DescribedBy)
	ariaState(buf, "aria-invalid", p.Invalid)
	ariaBool(buf, "aria-required", p.Required)
	if p.Disabled || p.ReadOnly {
		attr(buf, "aria-disabled", "true")
	}
	attr(buf, "data-state", disclosure.State())
	attr(buf, "class", r.Class(SelectTriggerSpec, variants.Choices{
		"fullWidth": boolChoice(p.FullWidth),
		"invalid":   boolChoice(p.Invalid),
		"empty":     boolChoice(len(chosen) == 0),
	}, p.Class))
	buf.WriteString(`><div class="flex flex-wrap gap-1">`)
	if len(chosen) == 0 {
		buf.WriteString(`<span>`)
		text(buf, placeholder)
		buf.WriteString(`</span>`)
	}
	for _, opt := range chosen {
		buf.WriteString(`<div class="flex items-center gap-1 bg-secondary text-secondary-foreground px-2 py-0.5 rounded-md text-sm"><span>`)
		text(buf, opt.Label)
		buf.WriteString(`</span><button type="button" class="hover:bg-secondary-foreground/20 rounded-sm" data-action="remove"`)
		attr(buf, "data-value", opt.ID)
		attr(buf, "aria-label", "Remove "+opt.Label)
		boolAttr(buf, "disabled", p.Disabled || p.ReadOnly)
		buf.WriteString(`>`)
		buf.WriteString(string(glyphX))
		buf.WriteString(`</button></div>`)
	}
	buf.WriteString(`</div>`)
	buf.WriteString(string(glyphChevronDown))
	buf.WriteString(`</div>`)

	writeListboxOpen(buf, contentID, disclosure, true)
	if p.Searchable {
		writeSearch(buf, id, p.Query)
	}
	if p.ShowSelectAll {
		all := state.AllSelected(p.Value)
		buf.WriteString(`<div role="option" data-action="select-all" class="flex items-center gap-2 cursor-pointer my-1 px-2 py-1.5 text-sm rounded-sm hover:bg-accent"`)
		ariaState(buf, "aria-selected", all)
		buf.WriteString(`>`)
		writeCheckSlot(buf, all)
		buf.WriteString(`<span>Select All</span></div>`)
	}
	visible := widgets.Filter(p.Options, p.Query)
	for _, opt := range visible {
		isSelected := slices.Contains(p.Value, opt.ID)
		blocked := opt.Disabled || (atLimit && !isSelected)
		writeOption(buf, id, opt, isSelected, blocked)
	}
	if len(visible) == 0 {
		buf.WriteString(`<div class="px-3 py-2 text-sm text-muted-foreground" data-slot="empty">No items found.</div>`)
	}
	buf.WriteString(`</div>`)

	if p.Name != "" {
		for _, opt := range chosen {
			buf.WriteString(`<input type="hidden"`)
			attr(buf, "name", p.Name)
			attrAlways(buf, "value", opt.ID)
			buf.WriteByte('>')
		}
	}
	buf.WriteString(`</div>`)
	return nil
}

func writeListboxOpen(buf *bytes.Buffer, contentID string, disclosure widgets.Disclosure, multiple bool) {
	buf.WriteString(`<div role="listbox"`)
	attr(buf, "id", contentID)
	if multiple {
		attr(buf, "aria-multiselectable", "true")
	}
	attr(buf, "data-state", disclosure.State())
	boolAttr(buf, "hidden", !disclosure.Open())
	buf.WriteString(` class="absolute z-50 mt-1 max-h-[12rem] w-[13rem] overflow-y-auto rounded-md border bg-popover p-1 text-popover-foreground shadow-md">`)
}

func writeSearch(buf *bytes.Buffer, id, query string) {
	buf.WriteString(`<div class="p-2"><input type="search" role="searchbox" placeholder="Search..." class="h-9 w-full rounded-md border border-input bg-background px-3 text-sm"`)
	attr(buf, "aria-controls", id+"-content")
	attrAlways(buf, "value", query)
	buf.WriteString(`></div>`)
}

func writeOption(buf *bytes.Buffer, id string, opt widgets.Option, selected, disabled bool) {
	buf.WriteString(`<div role="option"`)
	attr(buf, "id", id+"-option-"+opt.ID)
	attrAlways(buf, "data-value", opt.ID)
	ariaState(buf, "aria-selected", selected)
	if disabled {
		attr(buf, "aria-disabled", "true")
		attr(buf, "data-disabled", "")
	}
	attr(buf, "data-state", checkedState(selected))
	buf.WriteString(` class="relative flex cursor-pointer select-none items-center gap-2 rounded-sm px-2 py-1.5 my-1 text-sm hover:bg-accent data-[disabled]:pointer-events-none data-[disabled]:opacity-50">`)
	writeCheckSlot(buf, selected)
	buf.WriteString(`<span>`)
	text(buf, opt.Label)
	buf.WriteString(`</span></div>`)
}

func writeCheckSlot(buf *bytes.Buffer, checked bool) {
	buf.WriteString(`<span class="flex h-4 w-4 items-center justify-center rounded border border-primary">`)
	if checked {
		buf.WriteString(string(glyphCheck))
	}
	buf.WriteString(`</span>`)
}
