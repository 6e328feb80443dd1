package components

// Canonical component names used by the default registry.
const (
	NameButton         = "button"
	NameBadge          = "badge"
	NameLabel          = "label"
	NameTypography     = "typography"
	NameStack          = "stack"
	NameContainer      = "container"
	NameSeparator      = "separator"
	NameSkeleton       = "skeleton"
	NameInput          = "input"
	NameTextarea       = "textarea"
	NameCheckbox       = "checkbox"
	NameSwitch         = "switch"
	NameRadioGroup     = "radio-group"
	NameSelect         = "select"
	NameMultiSelect    = "multi-select"
	NameDropdownMenu   = "dropdown-menu"
	NameSidebar        = "sidebar"
	NameSidebarTrigger = "sidebar-trigger"
	NameDndInput       = "dnd-input"
	NameCard           = "card"
	NameAlert          = "alert"
	NameForm           = "form"
	NameDialog         = "dialog"
	NamePopover        = "popover"
	NameTooltip        = "tooltip"
	NameCollapsible    = "collapsible"
	NameAccordion      = "accordion"
	NameTabs           = "tabs"
	NameAvatar         = "avatar"
	NameBreadcrumb     = "breadcrumb"
	NamePagination     = "pagination"
)
