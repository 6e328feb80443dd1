package widgets

// Data-state values emitted on disclosure triggers and content.
const (
	StateOpen   = "open"
	StateClosed = "closed"
)

// Disclosure is the open/closed state shared by dropdown menus, popovers,
// collapsibles and select listboxes.
type Disclosure struct {
	open bool
}

// NewDisclosure returns a disclosure in the given initial state.
func NewDisclosure(open bool) Disclosure {
	return Disclosure{open: open}
}

// Open reports whether the disclosure is open.
func (d Disclosure) Open() bool { return d.open }

// SetOpen returns the disclosure with the requested state.
func (d Disclosure) SetOpen(open bool) Disclosure {
	d.open = open
	return d
}

// Toggle flips the state.
func (d Disclosure) Toggle() Disclosure {
	d.open = !d.open
	return d
}

// State returns "open" or "closed".
func (d Disclosure) State() string {
	if d.open {
		return StateOpen
	}
	return StateClosed
}

// AriaExpanded renders the aria-expanded attribute value.
func (d Disclosure) AriaExpanded() string {
	if d.open {
		return "true"
	}
	return "false"
}
