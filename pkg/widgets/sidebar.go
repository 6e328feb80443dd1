package widgets

import (
	"net/http"
	"strconv"
	"time"
)

const (
	// SidebarCookieName stores the desktop expanded state.
	SidebarCookieName = "sidebar_state"
	// SidebarCookieMaxAge is how long the state is remembered.
	SidebarCookieMaxAge = 7 * 24 * time.Hour
	// SidebarShortcut is the key that, with Ctrl or Cmd, toggles the sidebar.
	SidebarShortcut = "b"
)

// Sidebar data-state values.
const (
	SidebarExpanded  = "expanded"
	SidebarCollapsed = "collapsed"
)

// Sidebar tracks the desktop expanded flag and the mobile sheet flag
// separately, since a phone and a desktop view toggle different things.
type Sidebar struct {
	Open       bool `json:"open"`
	OpenMobile bool `json:"openMobile,omitempty"`
	IsMobile   bool `json:"isMobile,omitempty"`
}

// NewSidebar returns an expanded desktop sidebar.
func NewSidebar() Sidebar {
	return Sidebar{Open: true}
}

// State returns "expanded" or "collapsed" for the desktop sidebar.
func (s Sidebar) State() string {
	if s.Open {
		return SidebarExpanded
	}
	return SidebarCollapsed
}

// Toggle flips the mobile sheet on mobile and the desktop sidebar otherwise.
func (s Sidebar) Toggle() Sidebar {
	if s.IsMobile {
		s.OpenMobile = !s.OpenMobile
	} else {
		s.Open = !s.Open
	}
	return s
}

// SetOpen sets the desktop state.
func (s Sidebar) SetOpen(open bool) Sidebar {
	s.Open = open
	return s
}

// SidebarCookie builds the cookie persisting the desktop state.
func SidebarCookie(s Sidebar) *http.Cookie {
	return &http.Cookie{
		Name:     SidebarCookieName,
		Value:    strconv.FormatBool(s.Open),
		Path:     "/",
		MaxAge:   int(SidebarCookieMaxAge / time.Second),
		SameSite: http.SameSiteLaxMode,
	}
}

// SidebarFromRequest restores the desktop state from the request cookie.
// A missing or malformed cookie yields defaultOpen.
func SidebarFromRequest(r *http.Request, defaultOpen bool) Sidebar {
	s := Sidebar{Open: defaultOpen}
	if r == nil {
		return s
	}
	cookie, err := r.Cookie(SidebarCookieName)
	if err != nil {
		return s
	}
	if open, err := strconv.ParseBool(cookie.Value); err == nil {
		s.Open = open
	}
	return s
}
