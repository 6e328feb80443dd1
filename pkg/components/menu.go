package components

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/goliatone/go-uikit/pkg/classnames"
	"github.com/goliatone/go-uikit/pkg/variants"
	"github.com/goliatone/go-uikit/pkg/widgets"
)

// ItemKind selects how a menu entry renders and which fields apply.
type ItemKind string

const (
	// ItemAction is a plain command. Href turns it into a link.
	ItemAction ItemKind = "item"
	// ItemCheckbox toggles Checked independently of other entries.
	ItemCheckbox ItemKind = "checkbox"
	// ItemRadio is one choice of the radio set named by Group.
	ItemRadio ItemKind = "radio"
	// ItemLabel is a non-interactive heading.
	ItemLabel ItemKind = "label"
	// ItemSeparator divides groups of entries.
	ItemSeparator ItemKind = "separator"
)

// MenuItem is one dropdown entry. Construct entries with the helper
// functions so only the fields valid for the kind are set.
type MenuItem struct {
	Kind        ItemKind `json:"kind,omitempty"`
	Label       string   `json:"label,omitempty"`
	Description string   `json:"description,omitempty"`
	Icon        Icon     `json:"icon,omitempty"`
	Shortcut    string   `json:"shortcut,omitempty"`
	Href        string   `json:"href,omitempty"`
	Action      string   `json:"action,omitempty"`
	Value       string   `json:"value,omitempty"`
	Group       string   `json:"group,omitempty"`
	Checked     bool     `json:"checked,omitempty"`
	Disabled    bool     `json:"disabled,omitempty"`
	Inset       bool     `json:"inset,omitempty"`
}

// Item builds a command entry identified by action.
func Item(label, action string) MenuItem {
	return MenuItem{Kind: ItemAction, Label: label, Action: action}
}

// LinkItem builds a command entry that navigates to href.
func LinkItem(label, href string) MenuItem {
	return MenuItem{Kind: ItemAction, Label: label, Href: href}
}

// CheckboxItem builds a checkable entry.
func CheckboxItem(label, value string, checked bool) MenuItem {
	return MenuItem{Kind: ItemCheckbox, Label: label, Value: value, Checked: checked}
}

// RadioItem builds one choice of the radio set group.
func RadioItem(group, label, value string, checked bool) MenuItem {
	return MenuItem{Kind: ItemRadio, Group: group, Label: label, Value: value, Checked: checked}
}

// LabelItem builds a heading entry.
func LabelItem(label string) MenuItem {
	return MenuItem{Kind: ItemLabel, Label: label}
}

// SeparatorItem builds a divider entry.
func SeparatorItem() MenuItem {
	return MenuItem{Kind: ItemSeparator}
}

// Validate reports entries whose fields do not fit their kind.
func (m MenuItem) Validate() error {
	switch m.Kind {
	case ItemAction, "":
		if m.Label == "" {
			return fmt.Errorf("components: menu item needs a label")
		}
	case ItemCheckbox:
		if m.Label == "" {
			return fmt.Errorf("components: checkbox menu item needs a label")
		}
	case ItemRadio:
		if m.Label == "" || m.Value == "" {
			return fmt.Errorf("components: radio menu item needs a label and a value")
		}
	case ItemLabel:
		if m.Label == "" {
			return fmt.Errorf("components: label menu item needs text")
		}
	case ItemSeparator:
		if m.Label != "" || m.Href != "" || m.Checked {
			return fmt.Errorf("components: separator menu item carries no content")
		}
	default:
		return fmt.Errorf("components: unknown menu item kind %q", m.Kind)
	}
	return nil
}

// DropdownMenuProps configures DropdownMenu. Trigger replaces the default
// "more" glyph.
type DropdownMenuProps struct {
	ID           string     `json:"id,omitempty"`
	Trigger      Markup     `json:"trigger,omitempty"`
	TriggerLabel string     `json:"triggerLabel,omitempty"`
	ContentLabel string     `json:"contentLabel,omitempty"`
	Items        []MenuItem `json:"items,omitempty"`
	Open         bool       `json:"open,omitempty"`
	Align        string     `json:"align,omitempty"`
	FullWidth    bool       `json:"fullWidth,omitempty"`
	Class        string     `json:"class,omitempty"`
}

// DropdownMenu renders a trigger and a role="menu" panel. Entries render by
// kind: menuitem, menuitemcheckbox, menuitemradio, a group label or a
// separator.
func (r *Renderer) DropdownMenu(buf *bytes.Buffer, p DropdownMenuProps) error {
	for idx, item := range p.Items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("components: dropdown item %d: %w", idx, err)
		}
	}

	id := p.ID
	if id == "" {
		id = "dropdown"
	}
	contentID := id + "-content"
	disclosure := widgets.NewDisclosure(p.Open)
	triggerLabel := p.TriggerLabel
	if triggerLabel == "" {
		triggerLabel = "Open menu"
	}
	contentLabel := p.ContentLabel
	if contentLabel == "" {
		contentLabel = "Menu"
	}
	align := p.Align
	if align == "" {
		align = "start"
	}
	width := "min-w-[8rem]"
	if p.FullWidth {
		width = "w-full"
	}

	buf.WriteString(`<div class="relative inline-block" data-component="dropdown-menu">`)
	buf.WriteString(`<div role="button" tabindex="0" aria-haspopup="menu"`)
	attr(buf, "id", id+"-trigger")
	attr(buf, "aria-controls", contentID)
	attr(buf, "aria-expanded", disclosure.AriaExpanded())
	attr(buf, "aria-label", triggerLabel)
	attr(buf, "data-state", disclosure.State())
	attr(buf, "class", r.Class(variants.Spec{Name: "dropdown-trigger", Base: "cursor-pointer"}, nil, classnames.Join(fullWidthClass(p.FullWidth), p.Class)))
	buf.WriteByte('>')
	if p.Trigger != "" {
		buf.WriteString(string(p.Trigger))
	} else {
		buf.WriteString(string(glyphMore))
	}
	buf.WriteString(`</div>`)

	buf.WriteString(`<div role="menu"`)
	attr(buf, "id", contentID)
	attr(buf, "aria-label", contentLabel)
	attr(buf, "aria-labelledby", id+"-trigger")
	attr(buf, "data-state", disclosure.State())
	attr(buf, "data-align", align)
	boolAttr(buf, "hidden", !disclosure.Open())
	attr(buf, "class", "z-50 overflow-hidden rounded-md border bg-popover p-1 text-popover-foreground shadow-md "+width+
		" data-[state=open]:animate-in data-[state=closed]:animate-out data-[state=closed]:fade-out-0 data-[state=open]:fade-in-0 data-[state=closed]:zoom-out-95 data-[state=open]:zoom-in-95")
	buf.WriteByte('>')

	for idx, item := range p.Items {
		r.writeMenuItem(buf, id, idx, item, p.FullWidth)
	}
	buf.WriteString(`</div></div>`)
	return nil
}

func (r *Renderer) writeMenuItem(buf *bytes.Buffer, menuID string, idx int, item MenuItem, fullWidth bool) {
	switch item.Kind {
	case ItemSeparator:
		buf.WriteString(`<div role="separator" aria-orientation="horizontal" class="-mx-1 my-1 h-px bg-muted"></div>`)
		return
	case ItemLabel:
		buf.WriteString(`<div role="presentation"`)
		attr(buf, "class", classFor(item.Inset, "px-2 py-1.5 text-sm font-semibold", "pl-8"))
		buf.WriteByte('>')
		text(buf, item.Label)
		buf.WriteString(`</div>`)
		return
	}

	role := "menuitem"
	inset := item.Inset
	switch item.Kind {
	case ItemCheckbox:
		role = "menuitemcheckbox"
		inset = true
	case ItemRadio:
		role = "menuitemradio"
		inset = true
	}
	descID := ""
	if item.Description != "" {
		descID = menuID + "-item-" + strconv.Itoa(idx) + "-desc"
	}

	tag := "div"
	if item.Kind != ItemCheckbox && item.Kind != ItemRadio && item.Href != "" && !item.Disabled {
		tag = "a"
	}
	buf.WriteString(`<` + tag)
	attr(buf, "role", role)
	attr(buf, "tabindex", "-1")
	if tag == "a" {
		attr(buf, "href", item.Href)
	}
	attr(buf, "aria-label", item.Label)
	attr(buf, "aria-describedby", descID)
	if item.Disabled {
		attr(buf, "aria-disabled", "true")
		attr(buf, "data-disabled", "")
	}
	if item.Kind == ItemCheckbox || item.Kind == ItemRadio {
		ariaState(buf, "aria-checked", item.Checked)
		attr(buf, "data-state", checkedState(item.Checked))
		attrAlways(buf, "data-value", item.Value)
	}
	attr(buf, "data-group", item.Group)
	attr(buf, "data-action", item.Action)
	attr(buf, "class", r.Class(MenuItemSpec, variants.Choices{
		"inset":     boolChoice(inset),
		"fullWidth": boolChoice(fullWidth),
	}, ""))
	buf.WriteByte('>')

	if item.Kind == ItemCheckbox || item.Kind == ItemRadio {
		buf.WriteString(`<span class="absolute left-2 flex h-3.5 w-3.5 items-center justify-center">`)
		if item.Checked {
			if item.Kind == ItemRadio {
				buf.WriteString(string(glyphCircle))
			} else {
				buf.WriteString(string(glyphCheck))
			}
		}
		buf.WriteString(`</span>`)
	}
	writeIcon(buf, item.Icon, "mr-2")
	text(buf, item.Label)
	if item.Shortcut != "" {
		buf.WriteString(`<span class="ml-auto text-xs tracking-widest opacity-60">`)
		text(buf, item.Shortcut)
		buf.WriteString(`</span>`)
	}
	if descID != "" {
		buf.WriteString(`<span class="sr-only"`)
		attr(buf, "id", descID)
		buf.WriteByte('>')
		text(buf, item.Description)
		buf.WriteString(`</span>`)
	}
	buf.WriteString(`</` + tag + `>`)
}

func classFor(on bool, base, extra string) string {
	if on {
		return base + " " + extra
	}
	return base
}

func fullWidthClass(on bool) string {
	if on {
		return "w-full"
	}
	return ""
}
