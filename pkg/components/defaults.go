package components

// NewDefaultRegistry constructs a registry pre-populated with every built-in
// component. The embedded stylesheet is attached to each descriptor under
// stylesheetHref when it is non-empty.
func NewDefaultRegistry(stylesheetHref string) *Registry {
	registry := NewRegistry()
	var styles []string
	if stylesheetHref != "" {
		styles = []string{stylesheetHref}
	}
	add := func(name string, fn RenderFunc) {
		registry.MustRegister(name, Descriptor{Renderer: fn, Stylesheets: styles})
	}

	add(NameButton, Typed((*Renderer).Button))
	add(NameBadge, Typed((*Renderer).Badge))
	add(NameLabel, Typed((*Renderer).Label))
	add(NameTypography, Typed((*Renderer).Typography))
	add(NameStack, Typed((*Renderer).Stack))
	add(NameContainer, Typed((*Renderer).Container))
	add(NameSeparator, Typed((*Renderer).Separator))
	add(NameSkeleton, Typed((*Renderer).Skeleton))
	add(NameInput, Typed((*Renderer).Input))
	add(NameTextarea, Typed((*Renderer).Textarea))
	add(NameCheckbox, Typed((*Renderer).Checkbox))
	add(NameSwitch, Typed((*Renderer).Switch))
	add(NameRadioGroup, Typed((*Renderer).RadioGroup))
	add(NameSelect, Typed((*Renderer).Select))
	add(NameMultiSelect, Typed((*Renderer).MultiSelect))
	add(NameDropdownMenu, Typed((*Renderer).DropdownMenu))
	add(NameSidebar, Typed((*Renderer).Sidebar))
	add(NameSidebarTrigger, Typed((*Renderer).SidebarTrigger))
	add(NameDndInput, Typed((*Renderer).DndInput))
	add(NameCard, Typed((*Renderer).Card))
	add(NameAlert, Typed((*Renderer).Alert))
	add(NameForm, Typed((*Renderer).Form))
	add(NameDialog, Typed((*Renderer).Dialog))
	add(NamePopover, Typed((*Renderer).Popover))
	add(NameTooltip, Typed((*Renderer).Tooltip))
	add(NameCollapsible, Typed((*Renderer).Collapsible))
	add(NameAccordion, Typed((*Renderer).Accordion))
	add(NameTabs, Typed((*Renderer).Tabs))
	add(NameAvatar, Typed((*Renderer).Avatar))
	add(NameBreadcrumb, Typed((*Renderer).Breadcrumb))
	add(NamePagination, Typed((*Renderer).Pagination))

	return registry
}
