package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fruit() []Option {
	return []Option{
		{ID: "a", Label: "Apple"},
		{ID: "b", Label: "Banana"},
		{ID: "c", Label: "Cherry", Disabled: true},
		{ID: "d", Label: "Date"},
	}
}

func TestMultiSelect_ToggleRespectsMax(t *testing.T) {
	m := MultiSelect{Options: fruit(), Max: 2}

	selected := m.Toggle(nil, "a")
	selected = m.Toggle(selected, "b")
	assert.Equal(t, []string{"a", "b"}, selected)
	assert.True(t, m.AtLimit(selected))

	assert.Equal(t, []string{"a", "b"}, m.Toggle(selected, "d"))
	assert.Equal(t, []string{"b"}, m.Toggle(selected, "a"))
}

func TestMultiSelect_ToggleIgnoresDisabledAndUnknown(t *testing.T) {
	m := MultiSelect{Options: fruit()}
	assert.Equal(t, []string{"a"}, m.Toggle([]string{"a"}, "c"))
	assert.Equal(t, []string{"a"}, m.Toggle([]string{"a"}, "zzz"))
}

func TestMultiSelect_ToggleDoesNotMutateInput(t *testing.T) {
	m := MultiSelect{Options: fruit()}
	input := make([]string, 1, 4)
	input[0] = "a"

	_ = m.Toggle(input, "b")
	_ = m.Remove(input, "a")
	assert.Equal(t, []string{"a"}, input)
	assert.Equal(t, "", input[:2][1])
}

func TestMultiSelect_ToggleAll(t *testing.T) {
	m := MultiSelect{Options: fruit()}

	all := m.ToggleAll(nil)
	assert.Equal(t, []string{"a", "b", "d"}, all)

	assert.Equal(t, []string{}, m.ToggleAll([]string{"d", "a", "b"}))
	assert.Equal(t, []string{"a", "b", "d"}, m.ToggleAll([]string{"a"}))
}

func TestMultiSelect_ToggleAllComparesMembersNotLength(t *testing.T) {
	m := MultiSelect{Options: fruit()}
	// Same size as the enabled set but includes the disabled option.
	assert.Equal(t, []string{"a", "b", "d"}, m.ToggleAll([]string{"a", "b", "c"}))
}

func TestMultiSelect_RemoveAndSelected(t *testing.T) {
	m := MultiSelect{Options: fruit()}
	assert.Equal(t, []string{"a"}, m.Remove([]string{"a", "c"}, "c"))

	got := m.Selected([]string{"d", "a"})
	assert.Equal(t, []Option{{ID: "a", Label: "Apple"}, {ID: "d", Label: "Date"}}, got)
}

func TestFilter(t *testing.T) {
	options := fruit()
	assert.Len(t, Filter(options, ""), 4)
	assert.Equal(t, []Option{{ID: "b", Label: "Banana"}}, Filter(options, " BAN "))
	assert.Equal(t, []Option{{ID: "d", Label: "Date"}}, Filter(options, "d"))
	assert.Empty(t, Filter(options, "kiwi"))
}

func TestGroups(t *testing.T) {
	names, grouped := Groups([]Option{
		{ID: "1", Group: "Fruit"},
		{ID: "2"},
		{ID: "3", Group: "Fruit"},
	})
	assert.Equal(t, []string{"Fruit", ""}, names)
	assert.Len(t, grouped["Fruit"], 2)
}
