package fields_test

import (
	"bytes"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-uikit/pkg/components"
	"github.com/goliatone/go-uikit/pkg/fields"
	"github.com/goliatone/go-uikit/pkg/form"
	"github.com/goliatone/go-uikit/pkg/widgets"
)

func renderField[P any](t *testing.T, fn func(*bytes.Buffer, P) error, props P) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, fn(&buf, props))
	return buf.String()
}

func TestAdapterWithoutStoreFailsFast(t *testing.T) {
	a := fields.New(nil)

	err := a.TextField(&bytes.Buffer{}, fields.TextFieldProps{Props: fields.Props{Name: "email"}})
	require.ErrorIs(t, err, fields.ErrNoForm)
	assert.Contains(t, err.Error(), "email")

	require.ErrorIs(t, a.ChangeText("email", "x"), fields.ErrNoForm)
	require.ErrorIs(t, a.Apply(url.Values{}, nil), fields.ErrNoForm)

	assert.Panics(t, func() {
		a.MustCheckbox(&bytes.Buffer{}, fields.CheckboxProps{Props: fields.Props{Name: "terms"}})
	})
}

func TestPresentSlotPriority(t *testing.T) {
	props := fields.Props{Name: "email", Description: "We never share it", Warning: "Looks like a personal address"}

	tests := []struct {
		name            string
		props           fields.Props
		binding         form.Binding
		wantSlot        fields.Slot
		wantMessage     string
		wantDescription bool
		wantDescribedBy string
	}{
		{
			name:            "nothing",
			props:           fields.Props{Name: "email", Description: "We never share it"},
			wantSlot:        fields.SlotNone,
			wantDescription: true,
			wantDescribedBy: "ui-email-form-item-description",
		},
		{
			name:            "warning",
			props:           props,
			wantSlot:        fields.SlotWarning,
			wantMessage:     "Looks like a personal address",
			wantDescription: true,
			wantDescribedBy: "ui-email-form-item-description ui-email-form-item-message",
		},
		{
			name:            "error wins",
			props:           props,
			binding:         form.Binding{Error: &form.FieldError{Field: "email", Rule: "email", Message: "Enter a valid email address"}},
			wantSlot:        fields.SlotError,
			wantMessage:     "Enter a valid email address",
			wantDescription: false,
			wantDescribedBy: "ui-email-form-item-message",
		},
		{
			name:            "caller ids first",
			props:           fields.Props{Name: "email", AriaDescribedBy: "hint"},
			wantSlot:        fields.SlotNone,
			wantDescribedBy: "hint",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pres := fields.Present(tt.props, tt.binding)
			assert.Equal(t, tt.wantSlot, pres.Slot)
			assert.Equal(t, tt.wantMessage, pres.Message)
			assert.Equal(t, tt.wantDescription, pres.ShowDescription)
			assert.Equal(t, tt.wantDescribedBy, pres.DescribedBy)
			assert.Equal(t, "ui-email-form-item", pres.ID)
		})
	}
}

func TestNumberCoercion(t *testing.T) {
	store := form.New()
	a := fields.New(store)

	require.NoError(t, a.ChangeNumber("age", "42"))
	value, ok := store.Value("age")
	require.True(t, ok)
	assert.Equal(t, float64(42), value)

	got := renderField(t, a.TextField, fields.TextFieldProps{Props: fields.Props{Name: "age"}, Type: "number"})
	assert.Contains(t, got, `value="42"`)

	require.NoError(t, a.ChangeNumber("age", ""))
	_, ok = store.Value("age")
	assert.False(t, ok, "empty input must leave the field absent")

	got = renderField(t, a.TextField, fields.TextFieldProps{Props: fields.Props{Name: "age"}, Type: "number"})
	assert.Contains(t, got, `value=""`)

	err := a.ChangeNumber("age", "abc")
	require.ErrorIs(t, err, fields.ErrInvalidNumber)
	_, ok = store.Value("age")
	assert.False(t, ok)

	require.ErrorIs(t, a.ChangeNumber("age", "NaN"), fields.ErrInvalidNumber)
}

func TestTextTrimmedOnBlurOnly(t *testing.T) {
	store := form.New()
	a := fields.New(store)

	require.NoError(t, a.ChangeText("name", "  a b c  "))
	value, _ := store.Value("name")
	assert.Equal(t, "  a b c  ", value)

	got := renderField(t, a.TextField, fields.TextFieldProps{Props: fields.Props{Name: "name"}})
	assert.Contains(t, got, `value="  a b c  "`)

	require.NoError(t, a.BlurText("name"))
	value, _ = store.Value("name")
	assert.Equal(t, "a b c", value)

	binding, ok := store.Field("name")
	require.True(t, ok)
	assert.True(t, binding.Touched)
}

func TestRequiredFieldSubmitRendersError(t *testing.T) {
	store := form.New()
	a := fields.New(store)
	props := fields.TextFieldProps{
		Props: fields.Props{Name: "email", Label: "Email", Required: true, Description: "Work address", Warning: "Check twice"},
		Type:  "email",
	}

	before := renderField(t, a.TextField, props)
	assert.Contains(t, before, "Check twice")
	assert.Contains(t, before, "Work address")
	assert.Contains(t, before, `aria-invalid="false"`)

	err := store.Submit(nil)
	require.ErrorIs(t, err, form.ErrInvalid)

	after := renderField(t, a.TextField, props)
	assert.Contains(t, after, `<label for="ui-email-form-item"`)
	assert.Contains(t, after, `>*</span>`)
	assert.Contains(t, after, `aria-invalid="true"`)
	assert.Contains(t, after, `aria-required="true"`)
	assert.Contains(t, after, `aria-describedby="ui-email-form-item-message"`)
	assert.Contains(t, after, `<p id="ui-email-form-item-message" class="text-sm font-medium text-destructive">This field is required</p>`)
	assert.NotContains(t, after, "Check twice")
	assert.NotContains(t, after, "Work address")

	require.NoError(t, a.ChangeText("email", "ada@example.com"))
	fixed := renderField(t, a.TextField, props)
	assert.Contains(t, fixed, "Check twice", "warning returns once the error clears")
	assert.Contains(t, fixed, `aria-invalid="false"`)

	var submitted map[string]any
	require.NoError(t, store.Submit(func(values map[string]any) error {
		submitted = values
		return nil
	}))
	assert.Equal(t, "ada@example.com", submitted["email"])
}

func TestCheckboxAndSwitchBindings(t *testing.T) {
	store := form.New(form.WithValues(map[string]any{"notify": true}))
	a := fields.New(store)

	toggle := renderField(t, a.Switch, fields.SwitchProps{Props: fields.Props{Name: "notify", Label: "Notify me"}})
	assert.Contains(t, toggle, `aria-checked="true"`)
	assert.Contains(t, toggle, `<label for="ui-notify-form-item"`)

	require.NoError(t, a.ChangeBool("terms", false))
	box := renderField(t, a.Checkbox, fields.CheckboxProps{Props: fields.Props{Name: "terms", Label: "Accept", Required: true}})
	assert.Contains(t, box, `data-state="unchecked"`)

	require.Error(t, store.Submit(nil))
	require.NoError(t, a.ChangeBool("terms", true))
	assert.Nil(t, store.Error("terms"))
}

func TestSelectModes(t *testing.T) {
	store := form.New(form.WithValues(map[string]any{"country": "de", "tags": []string{"a"}}))
	a := fields.New(store)
	options := []widgets.Option{{ID: "a", Label: "Alpha"}, {ID: "b", Label: "Beta"}, {ID: "de", Label: "Germany"}}

	single := renderField(t, a.Select, fields.SelectProps{Props: fields.Props{Name: "country"}, Options: options})
	assert.Contains(t, single, `role="combobox"`)
	assert.Contains(t, single, `>Germany</span>`)
	assert.Contains(t, single, `<input type="hidden" name="country" value="de">`)

	multi := renderField(t, a.Select, fields.SelectProps{Props: fields.Props{Name: "tags"}, Options: options, Mode: fields.MultipleSelect{Max: 2}})
	assert.Contains(t, multi, `data-component="multi-select"`)
	assert.Contains(t, multi, `data-action="remove" data-value="a"`)
	assert.Equal(t, 1, strings.Count(multi, `<input type="hidden" name="tags"`))
}

func TestMultiSelectOperationsThroughStore(t *testing.T) {
	store := form.New()
	a := fields.New(store)
	state := widgets.MultiSelect{
		Options: []widgets.Option{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d", Disabled: true}},
		Max:     2,
	}

	require.NoError(t, a.ToggleOption("tags", state, "a"))
	require.NoError(t, a.ToggleOption("tags", state, "b"))
	require.NoError(t, a.ToggleOption("tags", state, "c"))
	sel, err := a.Selection("tags")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, sel)

	require.NoError(t, a.RemoveOption("tags", state, "a"))
	sel, _ = a.Selection("tags")
	assert.Equal(t, []string{"b"}, sel)

	unlimited := widgets.MultiSelect{Options: state.Options}
	require.NoError(t, a.ToggleAll("tags", unlimited))
	sel, _ = a.Selection("tags")
	assert.Equal(t, []string{"a", "b", "c"}, sel)

	require.NoError(t, a.ToggleAll("tags", unlimited))
	_, ok := store.Value("tags")
	assert.False(t, ok, "clearing leaves the field absent")
}

func TestSelectPropsDecodeFromYAML(t *testing.T) {
	doc := `
name: country
label: Country
required: true
open: true
fullWidth: true
options:
  - id: es
    label: Spain
  - id: pt
    label: Portugal
`
	var props fields.SelectProps
	require.NoError(t, yaml.Unmarshal([]byte(doc), &props))
	assert.Equal(t, "country", props.Name)
	assert.Equal(t, "Country", props.Label)
	assert.True(t, props.Required)
	assert.True(t, props.Open)
	assert.True(t, props.FullWidth)
	require.Len(t, props.Options, 2)
	assert.Equal(t, "pt", props.Options[1].ID)
	assert.Nil(t, props.Mode)
}

func TestRadioGroupButtons(t *testing.T) {
	store := form.New(form.WithValues(map[string]any{"size": "m"}))
	a := fields.New(store)
	got := renderField(t, a.RadioGroup, fields.RadioGroupProps{
		Props:   fields.Props{Name: "size", Label: "Size"},
		Options: []widgets.Option{{ID: "s", Label: "Small"}, {ID: "m", Label: "Medium"}},
		Buttons: true,
	})
	assert.Contains(t, got, `role="radiogroup"`)
	assert.Contains(t, got, `<button type="button" role="radio" aria-checked="true" data-value="m"`)
	assert.Contains(t, got, `<input type="hidden" name="size" value="m">`)

	native := renderField(t, a.RadioGroup, fields.RadioGroupProps{
		Props:   fields.Props{Name: "size"},
		Options: []widgets.Option{{ID: "s", Label: "Small"}, {ID: "m", Label: "Medium"}},
	})
	assert.Contains(t, native, `id="ui-size-form-item-m"`)
}

func TestChangeFilesStoresAcceptedOnly(t *testing.T) {
	store := form.New()
	a := fields.New(store)
	rules := components.FileRules{Accept: components.Accept{"image/*": nil}, Multiple: true}

	rejected, err := a.ChangeFiles("files", []components.FileInfo{
		{Name: "a.png", Size: 1, Type: "image/png"},
		{Name: "b.exe", Size: 1, Type: "application/octet-stream"},
	}, rules)
	require.NoError(t, err)
	require.Len(t, rejected, 1)
	assert.Equal(t, components.FileInvalidType, rejected[0].Errors[0].Code)

	value, ok := store.Value("files")
	require.True(t, ok)
	assert.Equal(t, []components.FileInfo{{Name: "a.png", Size: 1, Type: "image/png"}}, value)

	got := renderField(t, a.DndInput, fields.DndInputProps{Props: fields.Props{Name: "files", Label: "Upload"}, Rules: rules})
	assert.Contains(t, got, `aria-label="File upload area"`)
	assert.Contains(t, got, `accept="image/*"`)
}

func TestApplyFormValues(t *testing.T) {
	store := form.New()
	a := fields.New(store)
	specs := []fields.Spec{
		{Props: fields.Props{Name: "name", Required: true}},
		{Props: fields.Props{Name: "age"}, Type: "number"},
		{Props: fields.Props{Name: "terms"}, Type: "boolean"},
		{Props: fields.Props{Name: "news"}, Kind: fields.KindSwitch},
		{Props: fields.Props{Name: "tags"}, Options: []widgets.Option{{ID: "a"}, {ID: "b"}}, Multiple: true},
		{Props: fields.Props{Name: "plan"}, Options: []widgets.Option{{ID: "free"}}},
	}
	values := url.Values{
		"name": {"  Ada  "},
		"age":  {"36"},
		"news": {"true"},
		"tags": {"a", "", "b"},
		"plan": {"free"},
	}

	require.NoError(t, a.Apply(values, specs))
	got := store.Values()
	assert.Equal(t, "Ada", got["name"])
	assert.Equal(t, float64(36), got["age"])
	assert.Equal(t, false, got["terms"])
	assert.Equal(t, true, got["news"])
	assert.Equal(t, []string{"a", "b"}, got["tags"])
	assert.Equal(t, "free", got["plan"])
	require.NoError(t, store.Submit(nil))

	err := a.Apply(url.Values{"age": {"old"}}, specs[1:2])
	require.True(t, errors.Is(err, fields.ErrInvalidNumber))
}

func TestApplyDropsUnavailableChoices(t *testing.T) {
	store := form.New()
	a := fields.New(store)
	tags := fields.Spec{
		Props:    fields.Props{Name: "tags"},
		Options:  []widgets.Option{{ID: "a"}, {ID: "b", Disabled: true}, {ID: "c"}},
		Multiple: true,
		Max:      1,
	}
	plan := fields.Spec{
		Props:   fields.Props{Name: "plan"},
		Options: []widgets.Option{{ID: "free"}, {ID: "legacy", Disabled: true}},
	}

	err := a.Apply(url.Values{"tags": {"a", "b", "zzz"}}, []fields.Spec{tags})
	require.ErrorIs(t, err, fields.ErrUnavailableOption)
	assert.Equal(t, []string{"a"}, store.Values()["tags"])
	require.NotNil(t, store.Error("tags"))
	assert.Equal(t, "Contains an unavailable option", store.Error("tags").Message)

	err = a.Apply(url.Values{"tags": {"a", "c"}}, []fields.Spec{tags})
	require.ErrorIs(t, err, fields.ErrUnavailableOption)
	assert.Equal(t, []string{"a"}, store.Values()["tags"])
	assert.Equal(t, "Select at most 1", store.Error("tags").Message)

	for _, posted := range []string{"legacy", "enterprise"} {
		err = a.Apply(url.Values{"plan": {posted}}, []fields.Spec{plan})
		require.ErrorIs(t, err, fields.ErrUnavailableOption, posted)
		_, present := store.Value("plan")
		assert.False(t, present, posted)
		require.NotNil(t, store.Error("plan"))
	}

	require.NoError(t, a.Apply(url.Values{"plan": {"free"}, "tags": {"c"}}, []fields.Spec{plan, tags}))
	assert.Equal(t, "free", store.Values()["plan"])
	assert.Equal(t, []string{"c"}, store.Values()["tags"])
}

func TestSlotFollowsStoreThroughErrorAndFix(t *testing.T) {
	store := form.New(form.WithMode(form.OnChange))
	a := fields.New(store)
	props := fields.TextFieldProps{
		Props: fields.Props{Name: "email", Label: "Email", Rules: "email", Warning: "Use your work address"},
		Type:  "email",
	}
	warning := `role="alert">Use your work address</p>`

	initial := renderField(t, a.TextField, props)
	assert.Contains(t, initial, warning)

	require.NoError(t, a.ChangeText("email", "not-an-email"))
	broken := renderField(t, a.TextField, props)
	assert.Contains(t, broken, `class="text-sm font-medium text-destructive">Enter a valid email address</p>`)
	assert.Contains(t, broken, `aria-invalid="true"`)
	assert.NotContains(t, broken, "Use your work address")

	require.NoError(t, a.ChangeText("email", "ada@example.com"))
	fixed := renderField(t, a.TextField, props)
	assert.Contains(t, fixed, warning)
	assert.Contains(t, fixed, `aria-invalid="false"`)
	assert.NotContains(t, fixed, "font-medium text-destructive")
}

func TestRenderDispatchesByKind(t *testing.T) {
	a := fields.New(form.New())
	cases := map[string]struct {
		spec fields.Spec
		want string
	}{
		"text":     {fields.Spec{Props: fields.Props{Name: "a"}}, `type="text"`},
		"textarea": {fields.Spec{Props: fields.Props{Name: "b"}, Rows: 4}, `<textarea`},
		"checkbox": {fields.Spec{Props: fields.Props{Name: "c"}, Type: "boolean"}, `type="checkbox"`},
		"select":   {fields.Spec{Props: fields.Props{Name: "d"}, Options: []widgets.Option{{ID: "x", Label: "X"}}}, `data-component="select"`},
		"file":     {fields.Spec{Props: fields.Props{Name: "e"}, Type: "file"}, `type="file"`},
		"radio":    {fields.Spec{Props: fields.Props{Name: "f"}, Type: "radio", Options: []widgets.Option{{ID: "x", Label: "X"}}}, `type="radio"`},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, a.Render(&buf, tc.spec))
			assert.Contains(t, buf.String(), tc.want)
		})
	}

	err := a.Render(&bytes.Buffer{}, fields.Spec{Props: fields.Props{Name: "z"}, Kind: "carousel"})
	require.Error(t, err)
}
