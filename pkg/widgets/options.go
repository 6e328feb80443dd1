package widgets

import (
	"strings"
)

// Option is one selectable choice of a select, multi-select or radio group.
type Option struct {
	ID       string `json:"id" yaml:"id"`
	Label    string `json:"label" yaml:"label"`
	Disabled bool   `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	// Group is an optional heading the option is listed under.
	Group string `json:"group,omitempty" yaml:"group,omitempty"`
}

// Enabled returns the ids of options that are not disabled, in option order.
func Enabled(options []Option) []string {
	ids := make([]string, 0, len(options))
	for _, opt := range options {
		if !opt.Disabled {
			ids = append(ids, opt.ID)
		}
	}
	return ids
}

// Find returns the option with id.
func Find(options []Option, id string) (Option, bool) {
	for _, opt := range options {
		if opt.ID == id {
			return opt, true
		}
	}
	return Option{}, false
}

// Filter keeps options whose label or id contains query, ignoring case and
// surrounding whitespace. An empty query keeps everything.
func Filter(options []Option, query string) []Option {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return append([]Option(nil), options...)
	}
	out := make([]Option, 0, len(options))
	for _, opt := range options {
		if strings.Contains(strings.ToLower(opt.Label), query) ||
			strings.Contains(strings.ToLower(opt.ID), query) {
			out = append(out, opt)
		}
	}
	return out
}

// Groups partitions options by Group keeping first-seen group order.
// Ungrouped options are reported under the empty name.
func Groups(options []Option) (names []string, grouped map[string][]Option) {
	grouped = make(map[string][]Option)
	for _, opt := range options {
		if _, seen := grouped[opt.Group]; !seen {
			names = append(names, opt.Group)
		}
		grouped[opt.Group] = append(grouped[opt.Group], opt)
	}
	return names, grouped
}
