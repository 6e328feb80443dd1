package components

import "github.com/goliatone/go-uikit/pkg/variants"

// Variant specs of the built-in components. They are exported so callers
// can resolve the same classes for their own markup, and replaceable by name
// through WithCatalog.
var (
	ButtonSpec = variants.MustCompile(variants.Spec{
		Name: "button",
		Base: "inline-flex items-center justify-center whitespace-nowrap rounded-md text-sm font-medium ring-offset-background transition-colors focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-ring focus-visible:ring-offset-2 disabled:pointer-events-none disabled:opacity-50",
		Axes: map[string]variants.Axis{
			"variant": {
				Default: "default",
				Values: map[string]string{
					"default":     "bg-primary text-primary-foreground shadow hover:bg-primary/90",
					"destructive": "bg-destructive text-destructive-foreground shadow-sm hover:bg-destructive/90",
					"outline":     "border border-input bg-background shadow-sm hover:bg-accent hover:text-accent-foreground",
					"secondary":   "bg-secondary text-secondary-foreground shadow-sm hover:bg-secondary/80",
					"ghost":       "hover:bg-accent hover:text-accent-foreground",
					"link":        "text-primary underline-offset-4 hover:underline",
				},
			},
			"size": {
				Default: "default",
				Values: map[string]string{
					"default": "h-9 px-4 py-2",
					"sm":      "h-8 rounded-md px-3 text-xs",
					"lg":      "h-10 rounded-md px-8",
					"icon":    "h-9 w-9",
				},
			},
		},
	})

	BadgeSpec = variants.MustCompile(variants.Spec{
		Name: "badge",
		Base: "inline-flex items-center rounded-md border font-semibold transition-colors focus:outline-none focus:ring-2 focus:ring-ring focus:ring-offset-2",
		Axes: map[string]variants.Axis{
			"variant": {
				Default: "default",
				Values: map[string]string{
					"default":     "border-transparent bg-primary text-primary-foreground shadow hover:bg-primary/80",
					"secondary":   "border-transparent bg-secondary text-secondary-foreground hover:bg-secondary/80",
					"destructive": "border-transparent bg-destructive text-destructive-foreground shadow hover:bg-destructive/80",
					"outline":     "text-foreground",
					"success":     "border-transparent bg-green-500 text-white shadow hover:bg-green-500/80",
					"warning":     "border-transparent bg-yellow-500 text-white shadow hover:bg-yellow-500/80",
					"info":        "border-transparent bg-blue-500 text-white shadow hover:bg-blue-500/80",
				},
			},
			"size": {
				Default: "default",
				Values: map[string]string{
					"sm":      "px-2 py-0.5 text-xs",
					"default": "px-2.5 py-0.5 text-xs",
					"lg":      "px-3 py-1 text-sm",
				},
			},
		},
	})

	LabelSpec = variants.MustCompile(variants.Spec{
		Name: "label",
		Base: "text-sm font-medium leading-none peer-disabled:cursor-not-allowed peer-disabled:opacity-70",
		Axes: map[string]variants.Axis{
			"invalid": {Default: "false", Values: map[string]string{"true": "text-destructive", "false": ""}},
		},
	})

	TypographySpec = variants.MustCompile(variants.Spec{
		Name: "typography",
		Axes: map[string]variants.Axis{
			"variant": {
				Default: "p",
				Values: map[string]string{
					"h1":         "scroll-m-20 text-4xl font-extrabold tracking-tight lg:text-5xl",
					"h2":         "scroll-m-20 text-3xl font-semibold tracking-tight",
					"h3":         "scroll-m-20 text-2xl font-semibold tracking-tight",
					"h4":         "scroll-m-20 text-xl font-semibold tracking-tight",
					"h5":         "scroll-m-20 text-lg font-semibold tracking-tight",
					"h6":         "scroll-m-20 text-base font-semibold tracking-tight",
					"p":          "leading-7 [&:not(:first-child)]:mt-6",
					"blockquote": "mt-6 border-l-2 border-slate-300 pl-6 italic",
					"list":       "my-6 ml-6 list-disc [&>li]:mt-2",
					"lead":       "text-xl text-muted-foreground",
					"large":      "text-lg font-semibold",
					"small":      "text-sm font-medium leading-none",
					"muted":      "text-sm text-muted-foreground",
				},
			},
			"align": {
				Default: "left",
				Values: map[string]string{
					"left":    "text-left",
					"center":  "text-center",
					"right":   "text-right",
					"justify": "text-justify",
				},
			},
		},
	})

	StackSpec = variants.MustCompile(variants.Spec{
		Name: "stack",
		Base: "flex",
		Axes: map[string]variants.Axis{
			"direction": {Default: "vertical", Values: map[string]string{"vertical": "flex-col", "horizontal": "flex-row"}},
			"spacing": {
				Default: "md",
				Values: map[string]string{
					"none": "gap-0", "xs": "gap-1", "sm": "gap-2", "md": "gap-4", "lg": "gap-6", "xl": "gap-8",
				},
			},
			"wrap":   {Default: "false", Values: map[string]string{"true": "flex-wrap", "false": ""}},
			"center": {Default: "false", Values: map[string]string{"true": "items-center justify-center", "false": ""}},
			"justify": {
				Values: map[string]string{
					"start": "justify-start", "end": "justify-end", "center": "justify-center",
					"between": "justify-between", "around": "justify-around", "evenly": "justify-evenly",
				},
			},
			"align": {
				Values: map[string]string{
					"start": "items-start", "end": "items-end", "center": "items-center",
					"stretch": "items-stretch", "baseline": "items-baseline",
				},
			},
		},
	})

	ContainerSpec = variants.MustCompile(variants.Spec{
		Name: "container",
		Base: "mx-auto w-full",
		Axes: map[string]variants.Axis{
			"padding": {Default: "true", Values: map[string]string{"true": "px-4 sm:px-6 lg:px-8", "false": ""}},
			"maxWidth": {
				Default: "lg",
				Values: map[string]string{
					"sm": "max-w-screen-sm", "md": "max-w-screen-md", "lg": "max-w-screen-lg",
					"xl": "max-w-screen-xl", "full": "max-w-full", "none": "",
				},
			},
		},
	})

	SeparatorSpec = variants.MustCompile(variants.Spec{
		Name: "separator",
		Base: "shrink-0 bg-border",
		Axes: map[string]variants.Axis{
			"orientation": {
				Default: "horizontal",
				Values:  map[string]string{"horizontal": "h-[1px] w-full", "vertical": "h-full w-[1px]"},
			},
		},
	})

	InputSpec = variants.MustCompile(variants.Spec{
		Name: "input",
		Base: "flex w-full items-center rounded-md border border-input bg-background text-sm ring-offset-background file:border-0 file:bg-transparent file:text-sm file:font-medium placeholder:text-muted-foreground focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-ring focus-visible:ring-offset-2 disabled:cursor-not-allowed disabled:opacity-50",
		Axes: map[string]variants.Axis{
			"variant": {
				Default: "default",
				Values: map[string]string{
					"default": "border-input",
					"error":   "border-destructive focus-visible:ring-destructive",
				},
			},
			"size": {
				Default: "default",
				Values: map[string]string{
					"default": "h-10 px-3",
					"sm":      "h-8 px-2 text-xs",
					"lg":      "h-12 px-4 text-base",
				},
			},
		},
	})

	TextareaSpec = variants.MustCompile(variants.Spec{
		Name: "textarea",
		Base: "flex min-h-[60px] w-full rounded-md border border-input bg-transparent px-3 py-2 text-base shadow-sm placeholder:text-muted-foreground focus-visible:outline-none focus-visible:ring-1 focus-visible:ring-ring disabled:cursor-not-allowed disabled:opacity-50 md:text-sm",
		Axes: map[string]variants.Axis{
			"invalid": {Default: "false", Values: map[string]string{"true": "border-destructive focus-visible:ring-destructive", "false": ""}},
		},
	})

	CheckboxSpec = variants.MustCompile(variants.Spec{
		Name: "checkbox",
		Base: "peer h-4 w-4 shrink-0 rounded-sm border border-primary shadow focus-visible:outline-none focus-visible:ring-1 focus-visible:ring-ring disabled:cursor-not-allowed disabled:opacity-50 data-[state=checked]:bg-primary data-[state=checked]:text-primary-foreground",
		Axes: map[string]variants.Axis{
			"invalid": {Default: "false", Values: map[string]string{"true": "border-destructive", "false": ""}},
		},
	})

	SwitchSpec = variants.MustCompile(variants.Spec{
		Name: "switch",
		Base: "peer inline-flex h-5 w-9 shrink-0 cursor-pointer items-center rounded-full border-2 border-transparent shadow-sm transition-colors focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-ring focus-visible:ring-offset-2 focus-visible:ring-offset-background disabled:cursor-not-allowed disabled:opacity-50 data-[state=checked]:bg-primary data-[state=unchecked]:bg-input",
		Axes: map[string]variants.Axis{
			"invalid": {Default: "false", Values: map[string]string{"true": "ring-1 ring-destructive", "false": ""}},
		},
	})

	RadioItemSpec = variants.MustCompile(variants.Spec{
		Name: "radio-item",
		Base: "aspect-square h-4 w-4 rounded-full border border-primary text-primary shadow focus:outline-none focus-visible:ring-1 focus-visible:ring-ring disabled:cursor-not-allowed disabled:opacity-50",
		Axes: map[string]variants.Axis{
			"invalid": {Default: "false", Values: map[string]string{"true": "border-destructive", "false": ""}},
		},
	})

	SelectTriggerSpec = variants.MustCompile(variants.Spec{
		Name: "select-trigger",
		Base: "inline-flex w-[13rem] min-h-[2.5rem] h-auto items-center justify-between rounded-md border border-input bg-background px-3 py-2 text-sm shadow-sm focus:outline-none focus:ring-2 focus:ring-ring disabled:cursor-not-allowed disabled:opacity-50",
		Axes: map[string]variants.Axis{
			"fullWidth": {Default: "false", Values: map[string]string{"true": "w-full", "false": ""}},
			"invalid":   {Default: "false", Values: map[string]string{"true": "border-destructive focus-visible:ring-destructive", "false": ""}},
			"empty":     {Default: "false", Values: map[string]string{"true": "text-muted-foreground", "false": ""}},
		},
	})

	MenuItemSpec = variants.MustCompile(variants.Spec{
		Name: "menu-item",
		Base: "relative flex cursor-default select-none items-center rounded-sm px-2 py-1.5 text-sm outline-none hover:bg-accent hover:text-accent-foreground focus:bg-accent focus:text-accent-foreground data-[disabled]:pointer-events-none data-[disabled]:opacity-50",
		Axes: map[string]variants.Axis{
			"inset":     {Default: "false", Values: map[string]string{"true": "pl-8", "false": ""}},
			"fullWidth": {Default: "false", Values: map[string]string{"true": "w-full", "false": ""}},
		},
	})

	SidebarMenuButtonSpec = variants.MustCompile(variants.Spec{
		Name: "sidebar-menu-button",
		Base: "peer/menu-button flex w-full items-center gap-2 overflow-hidden rounded-md p-2 text-left text-sm outline-none ring-sidebar-ring transition-[width,height,padding] hover:bg-sidebar-accent hover:text-sidebar-accent-foreground focus-visible:ring-2 disabled:pointer-events-none disabled:opacity-50 aria-disabled:pointer-events-none aria-disabled:opacity-50 data-[active=true]:bg-sidebar-accent data-[active=true]:font-medium data-[active=true]:text-sidebar-accent-foreground group-data-[collapsible=icon]:!size-8 group-data-[collapsible=icon]:!p-2",
		Axes: map[string]variants.Axis{
			"variant": {
				Default: "default",
				Values: map[string]string{
					"default": "hover:bg-sidebar-accent hover:text-sidebar-accent-foreground",
					"outline": "bg-background shadow-[0_0_0_1px_hsl(var(--sidebar-border))] hover:bg-sidebar-accent hover:text-sidebar-accent-foreground",
				},
			},
			"size": {
				Default: "default",
				Values: map[string]string{
					"default": "h-8 text-sm",
					"sm":      "h-7 text-xs",
					"lg":      "h-12 text-sm group-data-[collapsible=icon]:!p-0",
				},
			},
		},
	})

	CardSpec = variants.MustCompile(variants.Spec{Name: "card", Base: "rounded-xl border bg-card text-card-foreground shadow"})

	// DialogSpec positions dialog content. Any side other than "center"
	// renders the dialog as a sheet sliding in from that edge.
	DialogSpec = variants.MustCompile(variants.Spec{
		Name: "dialog",
		Base: "fixed z-50 gap-4 bg-background p-6 shadow-lg transition ease-in-out data-[state=open]:animate-in data-[state=closed]:animate-out data-[state=closed]:duration-300 data-[state=open]:duration-500",
		Axes: map[string]variants.Axis{
			"side": {
				Default: "center",
				Values: map[string]string{
					"center": "left-[50%] top-[50%] grid w-full max-w-lg translate-x-[-50%] translate-y-[-50%] border sm:rounded-lg data-[state=closed]:fade-out-0 data-[state=open]:fade-in-0 data-[state=closed]:zoom-out-95 data-[state=open]:zoom-in-95",
					"top":    "inset-x-0 top-0 border-b data-[state=closed]:slide-out-to-top data-[state=open]:slide-in-from-top",
					"bottom": "inset-x-0 bottom-0 border-t data-[state=closed]:slide-out-to-bottom data-[state=open]:slide-in-from-bottom",
					"left":   "inset-y-0 left-0 h-full w-3/4 border-r data-[state=closed]:slide-out-to-left data-[state=open]:slide-in-from-left sm:max-w-sm",
					"right":  "inset-y-0 right-0 h-full w-3/4 border-l data-[state=closed]:slide-out-to-right data-[state=open]:slide-in-from-right sm:max-w-sm",
				},
			},
		},
	})

	PopoverSpec = variants.MustCompile(variants.Spec{
		Name: "popover",
		Base: "z-50 w-72 rounded-md border bg-popover p-4 text-popover-foreground shadow-md outline-none data-[state=open]:animate-in data-[state=closed]:animate-out data-[state=closed]:fade-out-0 data-[state=open]:fade-in-0 data-[state=closed]:zoom-out-95 data-[state=open]:zoom-in-95",
	})

	TooltipSpec = variants.MustCompile(variants.Spec{
		Name: "tooltip",
		Base: "z-50 overflow-hidden rounded-md bg-primary px-3 py-1.5 text-xs text-primary-foreground animate-in fade-in-0 zoom-in-95 data-[state=closed]:animate-out data-[state=closed]:fade-out-0 data-[state=closed]:zoom-out-95",
	})

	TabsListSpec = variants.MustCompile(variants.Spec{
		Name: "tabs-list",
		Base: "inline-flex items-center justify-center rounded-lg bg-muted p-1 text-muted-foreground",
		Axes: map[string]variants.Axis{
			"orientation": {
				Default: "horizontal",
				Values:  map[string]string{"horizontal": "h-9", "vertical": "h-auto flex-col"},
			},
		},
	})

	TabsTriggerSpec = variants.MustCompile(variants.Spec{
		Name: "tabs-trigger",
		Base: "inline-flex items-center justify-center whitespace-nowrap rounded-md px-3 py-1 text-sm font-medium ring-offset-background transition-all focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-ring focus-visible:ring-offset-2 disabled:pointer-events-none disabled:opacity-50",
		Axes: map[string]variants.Axis{
			"active": {
				Default: "false",
				Values:  map[string]string{"true": "bg-background text-foreground shadow", "false": ""},
			},
		},
	})

	AvatarSpec = variants.MustCompile(variants.Spec{
		Name: "avatar",
		Base: "relative flex shrink-0 overflow-hidden rounded-full",
		Axes: map[string]variants.Axis{
			"size": {
				Default: "default",
				Values:  map[string]string{"sm": "h-8 w-8", "default": "h-10 w-10", "lg": "h-14 w-14"},
			},
		},
	})

	SkeletonSpec = variants.MustCompile(variants.Spec{Name: "skeleton", Base: "animate-pulse rounded-md bg-primary/10"})

	AlertSpec = variants.MustCompile(variants.Spec{
		Name: "alert",
		Base: "relative w-full rounded-lg border px-4 py-3 text-sm [&>svg+div]:translate-y-[-3px] [&>svg]:absolute [&>svg]:left-4 [&>svg]:top-4 [&>svg]:text-foreground [&>svg~*]:pl-7",
		Axes: map[string]variants.Axis{
			"variant": {
				Default: "default",
				Values: map[string]string{
					"default":     "bg-background text-foreground",
					"destructive": "border-destructive/50 text-destructive dark:border-destructive [&>svg]:text-destructive",
					"success":     "border-green-500/50 text-green-700 [&>svg]:text-green-600",
					"warning":     "border-yellow-500/50 text-yellow-700 [&>svg]:text-yellow-600",
				},
			},
		},
	})

	DropzoneSpec = variants.MustCompile(variants.Spec{
		Name: "dnd-input",
		Base: "flex items-center border-2 border-dashed border-blue-500 rounded-lg p-4 cursor-pointer transition-colors",
		Axes: map[string]variants.Axis{
			"active":   {Default: "false", Values: map[string]string{"true": "bg-blue-50 border-blue-700", "false": ""}},
			"invalid":  {Default: "false", Values: map[string]string{"true": "border-destructive focus-visible:ring-destructive", "false": ""}},
			"disabled": {Default: "false", Values: map[string]string{"true": "cursor-not-allowed opacity-50", "false": ""}},
		},
	})
)

// BuiltinSpecs lists every built-in spec, e.g. for the CLI's variant listing.
func BuiltinSpecs() []variants.Spec {
	return []variants.Spec{
		AlertSpec, AvatarSpec, BadgeSpec, ButtonSpec, CardSpec, CheckboxSpec, ContainerSpec,
		DialogSpec, DropzoneSpec, InputSpec, LabelSpec, MenuItemSpec, PopoverSpec, RadioItemSpec,
		SelectTriggerSpec, SeparatorSpec, SidebarMenuButtonSpec, SkeletonSpec, StackSpec,
		SwitchSpec, TabsListSpec, TabsTriggerSpec, TextareaSpec, TooltipSpec, TypographySpec,
	}
}

func boolChoice(on bool) string {
	return variants.Bool(on)
}
