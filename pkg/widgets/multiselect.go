package widgets

import "slices"

// MultiSelect describes the option set and cap of a multi-select. Its
// methods never modify the selection they receive.
type MultiSelect struct {
	Options []Option
	// Max caps the selection size. Zero means unlimited.
	Max int
}

// Toggle removes id when selected, otherwise adds it when the cap allows.
// Disabled and unknown ids leave the selection unchanged.
func (m MultiSelect) Toggle(selected []string, id string) []string {
	opt, ok := Find(m.Options, id)
	if !ok || opt.Disabled {
		return slices.Clone(selected)
	}
	if slices.Contains(selected, id) {
		return m.Remove(selected, id)
	}
	if m.Max > 0 && len(selected) >= m.Max {
		return slices.Clone(selected)
	}
	out := make([]string, 0, len(selected)+1)
	out = append(out, selected...)
	return append(out, id)
}

// ToggleAll clears the selection when it already holds every enabled
// option, otherwise selects every enabled option in option order.
func (m MultiSelect) ToggleAll(selected []string) []string {
	if m.AllSelected(selected) {
		return []string{}
	}
	return Enabled(m.Options)
}

// AllSelected reports whether selected holds exactly the enabled options.
func (m MultiSelect) AllSelected(selected []string) bool {
	enabled := Enabled(m.Options)
	if len(enabled) == 0 {
		return false
	}
	set := make(map[string]struct{}, len(selected))
	for _, id := range selected {
		set[id] = struct{}{}
	}
	if len(set) != len(enabled) {
		return false
	}
	for _, id := range enabled {
		if _, ok := set[id]; !ok {
			return false
		}
	}
	return true
}

// Remove drops id from the selection.
func (m MultiSelect) Remove(selected []string, id string) []string {
	out := make([]string, 0, len(selected))
	for _, current := range selected {
		if current != id {
			out = append(out, current)
		}
	}
	return out
}

// AtLimit reports whether no further option can be added.
func (m MultiSelect) AtLimit(selected []string) bool {
	return m.Max > 0 && len(selected) >= m.Max
}

// Selected returns the selected options in option order.
func (m MultiSelect) Selected(selected []string) []Option {
	out := make([]Option, 0, len(selected))
	for _, opt := range m.Options {
		if slices.Contains(selected, opt.ID) {
			out = append(out, opt)
		}
	}
	return out
}
