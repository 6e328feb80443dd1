package components

import (
	"bytes"

	"github.com/goliatone/go-uikit/pkg/classnames"
	"github.com/goliatone/go-uikit/pkg/variants"
	"github.com/goliatone/go-uikit/pkg/widgets"
)

// Sidebar widths exposed as CSS custom properties on the layout wrapper.
const (
	SidebarWidth       = "16rem"
	SidebarWidthMobile = "18rem"
	SidebarWidthIcon   = "3rem"
)

// SidebarItem is one navigation entry.
type SidebarItem struct {
	Label    string `json:"label"`
	Href     string `json:"href,omitempty"`
	Icon     Icon   `json:"icon,omitempty"`
	Active   bool   `json:"active,omitempty"`
	Disabled bool   `json:"disabled,omitempty"`
	Badge    string `json:"badge,omitempty"`
}

// SidebarGroup is a labelled block of entries.
type SidebarGroup struct {
	Label string        `json:"label,omitempty"`
	Items []SidebarItem `json:"items,omitempty"`
}

// SidebarProps configures Sidebar. State usually comes from
// widgets.SidebarFromRequest so the collapsed state survives reloads.
type SidebarProps struct {
	ID          string          `json:"id,omitempty"`
	State       widgets.Sidebar `json:"state"`
	Side        string          `json:"side,omitempty"`
	Variant     string          `json:"variant,omitempty"`
	Collapsible string          `json:"collapsible,omitempty"`
	Header      Markup          `json:"header,omitempty"`
	Groups      []SidebarGroup  `json:"groups,omitempty"`
	Footer      Markup          `json:"footer,omitempty"`
	Main        Markup          `json:"main,omitempty"`
	MenuVariant string          `json:"menuVariant,omitempty"`
	MenuSize    string          `json:"menuSize,omitempty"`
	Class       string          `json:"class,omitempty"`
}

// Sidebar renders the layout wrapper, the sidebar panel (or the mobile
// sheet) and the main inset. data-state and data-collapsible drive the
// collapsed styling.
func (r *Renderer) Sidebar(buf *bytes.Buffer, p SidebarProps) error {
	id := p.ID
	if id == "" {
		id = "sidebar"
	}
	side := p.Side
	if side != "right" {
		side = "left"
	}
	variant := p.Variant
	if variant == "" {
		variant = "sidebar"
	}
	collapsible := p.Collapsible
	if collapsible == "" {
		collapsible = "offcanvas"
	}

	buf.WriteString(`<div class="group/sidebar-wrapper flex min-h-svh w-full has-[[data-variant=inset]]:bg-sidebar"`)
	attr(buf, "style", "--sidebar-width: "+SidebarWidth+"; --sidebar-width-icon: "+SidebarWidthIcon)
	buf.WriteByte('>')

	if p.State.IsMobile {
		open := widgets.NewDisclosure(p.State.OpenMobile)
		buf.WriteString(`<div role="dialog" aria-modal="true" data-sidebar="sidebar" data-mobile="true"`)
		attr(buf, "id", id)
		attr(buf, "data-state", open.State())
		attr(buf, "data-side", side)
		boolAttr(buf, "hidden", !open.Open())
		attr(buf, "style", "--sidebar-width: "+SidebarWidthMobile)
		attr(buf, "class", r.Class(variants.Spec{Name: "sidebar-sheet", Base: "fixed inset-y-0 z-50 flex h-full w-[--sidebar-width] flex-col bg-sidebar p-0 text-sidebar-foreground shadow-lg"}, nil, p.Class))
		buf.WriteByte('>')
		r.writeSidebarBody(buf, p)
		buf.WriteString(`</div>`)
	} else {
		collapsed := ""
		if !p.State.Open && collapsible != "none" {
			collapsed = collapsible
		}
		buf.WriteString(`<div class="group peer hidden text-sidebar-foreground md:block" data-component="sidebar"`)
		attr(buf, "data-state", p.State.State())
		attrAlways(buf, "data-collapsible", collapsed)
		attr(buf, "data-variant", variant)
		attr(buf, "data-side", side)
		buf.WriteString(`><div class="relative h-svh w-[--sidebar-width] bg-transparent transition-[width] duration-200 ease-linear group-data-[collapsible=offcanvas]:w-0 group-data-[collapsible=icon]:w-[--sidebar-width-icon]"></div>`)
		panel := "fixed inset-y-0 z-10 hidden h-svh w-[--sidebar-width] transition-[left,right,width] duration-200 ease-linear md:flex group-data-[collapsible=icon]:w-[--sidebar-width-icon]"
		if side == "left" {
			panel += " left-0 group-data-[collapsible=offcanvas]:left-[calc(var(--sidebar-width)*-1)]"
		} else {
			panel += " right-0 group-data-[collapsible=offcanvas]:right-[calc(var(--sidebar-width)*-1)]"
		}
		if variant == "floating" || variant == "inset" {
			panel += " p-2"
		} else if side == "left" {
			panel += " border-r"
		} else {
			panel += " border-l"
		}
		buf.WriteString(`<div`)
		attr(buf, "id", id)
		attr(buf, "class", r.Class(variants.Spec{Name: "sidebar-panel", Base: panel}, nil, p.Class))
		buf.WriteString(`><div data-sidebar="sidebar" class="flex h-full w-full flex-col bg-sidebar group-data-[variant=floating]:rounded-lg group-data-[variant=floating]:border group-data-[variant=floating]:border-sidebar-border group-data-[variant=floating]:shadow">`)
		r.writeSidebarBody(buf, p)
		buf.WriteString(`</div></div></div>`)
	}

	buf.WriteString(`<main class="relative flex w-full flex-1 flex-col bg-background">`)
	buf.WriteString(string(p.Main))
	buf.WriteString(`</main></div>`)
	return nil
}

func (r *Renderer) writeSidebarBody(buf *bytes.Buffer, p SidebarProps) {
	if p.Header != "" {
		buf.WriteString(`<div data-sidebar="header" class="flex flex-col gap-2 p-2">`)
		buf.WriteString(string(p.Header))
		buf.WriteString(`</div>`)
	}
	buf.WriteString(`<div data-sidebar="content" class="flex min-h-0 flex-1 flex-col gap-2 overflow-auto group-data-[collapsible=icon]:overflow-hidden">`)
	for _, group := range p.Groups {
		buf.WriteString(`<div data-sidebar="group" class="relative flex w-full min-w-0 flex-col p-2">`)
		if group.Label != "" {
			buf.WriteString(`<div data-sidebar="group-label" class="flex h-8 shrink-0 items-center rounded-md px-2 text-xs font-medium text-sidebar-foreground/70 group-data-[collapsible=icon]:-mt-8 group-data-[collapsible=icon]:opacity-0">`)
			text(buf, group.Label)
			buf.WriteString(`</div>`)
		}
		buf.WriteString(`<ul data-sidebar="menu" class="flex w-full min-w-0 flex-col gap-1">`)
		for _, item := range group.Items {
			r.writeSidebarItem(buf, p, item)
		}
		buf.WriteString(`</ul></div>`)
	}
	buf.WriteString(`</div>`)
	if p.Footer != "" {
		buf.WriteString(`<div data-sidebar="footer" class="flex flex-col gap-2 p-2">`)
		buf.WriteString(string(p.Footer))
		buf.WriteString(`</div>`)
	}
}

func (r *Renderer) writeSidebarItem(buf *bytes.Buffer, p SidebarProps, item SidebarItem) {
	class := r.Class(SidebarMenuButtonSpec, variants.Choices{"variant": p.MenuVariant, "size": p.MenuSize}, "")
	buf.WriteString(`<li data-sidebar="menu-item" class="group/menu-item relative">`)
	tag := "button"
	if item.Href != "" && !item.Disabled {
		tag = "a"
	}
	buf.WriteString(`<` + tag + ` data-sidebar="menu-button"`)
	if tag == "a" {
		attr(buf, "href", item.Href)
	} else {
		attr(buf, "type", "button")
		boolAttr(buf, "disabled", item.Disabled)
	}
	attr(buf, "data-active", boolChoice(item.Active))
	if item.Active {
		attr(buf, "aria-current", "page")
	}
	if item.Disabled {
		attr(buf, "aria-disabled", "true")
	}
	attr(buf, "data-size", p.MenuSize)
	attr(buf, "class", class)
	buf.WriteByte('>')
	writeIcon(buf, item.Icon, "")
	buf.WriteString(`<span>`)
	text(buf, item.Label)
	buf.WriteString(`</span>`)
	buf.WriteString(`</` + tag + `>`)
	if item.Badge != "" {
		buf.WriteString(`<div data-sidebar="menu-badge" class="pointer-events-none absolute right-1 flex h-5 min-w-5 select-none items-center justify-center rounded-md px-1 text-xs font-medium tabular-nums text-sidebar-foreground group-data-[collapsible=icon]:hidden">`)
		text(buf, item.Badge)
		buf.WriteString(`</div>`)
	}
	buf.WriteString(`</li>`)
}

// SidebarTriggerProps configures SidebarTrigger.
type SidebarTriggerProps struct {
	Controls string          `json:"controls,omitempty"`
	State    widgets.Sidebar `json:"state"`
	Class    string          `json:"class,omitempty"`
}

// SidebarTrigger renders the toggle button. The client toggles the sidebar
// on click and on Ctrl/Cmd plus widgets.SidebarShortcut, then persists the
// new state with the sidebar cookie.
func (r *Renderer) SidebarTrigger(buf *bytes.Buffer, p SidebarTriggerProps) error {
	controls := p.Controls
	if controls == "" {
		controls = "sidebar"
	}
	expanded := p.State.Open
	if p.State.IsMobile {
		expanded = p.State.OpenMobile
	}
	buf.WriteString(`<button type="button" data-sidebar="trigger"`)
	attr(buf, "aria-controls", controls)
	ariaState(buf, "aria-expanded", expanded)
	attr(buf, "data-shortcut", widgets.SidebarShortcut)
	attr(buf, "data-cookie", widgets.SidebarCookieName)
	attr(buf, "class", r.Class(ButtonSpec, variants.Choices{"variant": "ghost", "size": "icon"}, classnames.Join("h-7 w-7", p.Class)))
	buf.WriteByte('>')
	buf.WriteString(string(glyphPanelLeft))
	buf.WriteString(`<span class="sr-only">Toggle Sidebar</span></button>`)
	return nil
}
