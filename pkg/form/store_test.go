package form

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_RegisterReturnsBindingWithDefaults(t *testing.T) {
	store := New(WithValues(map[string]any{"profile": map[string]any{"name": "Ada"}}))

	binding, err := store.Register("profile.name", Rules("required"))
	require.NoError(t, err)

	assert.Equal(t, "profile.name", binding.Name)
	assert.Equal(t, "Ada", binding.Value)
	assert.True(t, binding.Present)
	assert.Nil(t, binding.Error)
	require.NotNil(t, binding.OnChange)
	require.NotNil(t, binding.OnBlur)
}

func TestStore_RegisterRejectsEmptyName(t *testing.T) {
	_, err := New().Register("  ")
	require.Error(t, err)
}

func TestStore_ChangeNilLeavesFieldAbsent(t *testing.T) {
	store := New()
	binding, err := store.Register("age")
	require.NoError(t, err)

	require.NoError(t, binding.OnChange(float64(42)))
	value, ok := store.Value("age")
	require.True(t, ok)
	assert.Equal(t, float64(42), value)

	require.NoError(t, binding.OnChange(nil))
	_, ok = store.Value("age")
	assert.False(t, ok)
}

func TestStore_ChangeCreatesNestedContainers(t *testing.T) {
	store := New()
	require.NoError(t, store.Change("items.1.sku", "abc"))

	values := store.Values()
	items, ok := values["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 2)
	assert.Nil(t, items[0])
	assert.Equal(t, map[string]any{"sku": "abc"}, items[1])
}

func TestStore_ValuesAreCopies(t *testing.T) {
	store := New(WithValues(map[string]any{"tags": []any{"a"}}))
	values := store.Values()
	values["tags"].([]any)[0] = "mutated"

	value, _ := store.Value("tags")
	assert.Equal(t, []any{"a"}, value)
}

func TestStore_SubmitBlocksInvalidForm(t *testing.T) {
	store := New()
	_, err := store.Register("email", Rules("required,email"))
	require.NoError(t, err)

	called := false
	err = store.Submit(func(map[string]any) error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, ErrInvalid)
	assert.False(t, called)

	fe := store.Error("email")
	require.NotNil(t, fe)
	assert.Equal(t, "required", fe.Rule)
	assert.Equal(t, "This field is required", fe.Message)
}

func TestStore_RevalidatesOnChangeAfterSubmit(t *testing.T) {
	store := New()
	binding, err := store.Register("email", Rules("required,email"), Message("email", "Bad address"))
	require.NoError(t, err)

	require.Error(t, store.Submit(nil))
	require.NoError(t, binding.OnChange("nope"))
	require.NotNil(t, store.Error("email"))
	assert.Equal(t, "Bad address", store.Error("email").Message)

	require.NoError(t, binding.OnChange("ada@example.com"))
	assert.Nil(t, store.Error("email"))

	var got map[string]any
	require.NoError(t, store.Submit(func(values map[string]any) error {
		got = values
		return nil
	}))
	assert.Equal(t, map[string]any{"email": "ada@example.com"}, got)
}

func TestStore_ModeControlsWhenRulesRun(t *testing.T) {
	onSubmit := New()
	_, _ = onSubmit.Register("name", Rules("required"))
	require.NoError(t, onSubmit.Change("name", ""))
	onSubmit.Blur("name")
	assert.Nil(t, onSubmit.Error("name"))

	onBlur := New(WithMode(OnBlur))
	_, _ = onBlur.Register("name", Rules("required"))
	require.NoError(t, onBlur.Change("name", ""))
	assert.Nil(t, onBlur.Error("name"))
	onBlur.Blur("name")
	assert.NotNil(t, onBlur.Error("name"))

	onChange := New(WithMode(OnChange))
	_, _ = onChange.Register("name", Rules("required"))
	require.NoError(t, onChange.Change("name", ""))
	assert.NotNil(t, onChange.Error("name"))

	onTouched := New(WithMode(OnTouched))
	_, _ = onTouched.Register("name", Rules("required"))
	require.NoError(t, onTouched.Change("name", ""))
	assert.Nil(t, onTouched.Error("name"))
	onTouched.Blur("name")
	require.NoError(t, onTouched.Change("name", "x"))
	assert.Nil(t, onTouched.Error("name"))
	require.NoError(t, onTouched.Change("name", ""))
	assert.NotNil(t, onTouched.Error("name"))
}

func TestStore_AbsentOptionalValueSkipsRules(t *testing.T) {
	store := New()
	_, _ = store.Register("age", Rules("gte=18"))
	assert.Nil(t, store.ValidateField("age"))

	require.NoError(t, store.Change("age", float64(12)))
	fe := store.ValidateField("age")
	require.NotNil(t, fe)
	assert.Equal(t, "gte", fe.Rule)
	assert.Equal(t, "Must be at least 18", fe.Message)
}

func TestStore_NotBlankRejectsWhitespace(t *testing.T) {
	store := New()
	_, _ = store.Register("title", Rules("notblank"))
	require.NoError(t, store.Change("title", "   "))
	fe := store.ValidateField("title")
	require.NotNil(t, fe)
	assert.Equal(t, "notblank", fe.Rule)
}

func TestStore_MinLengthMessageUsesCharacters(t *testing.T) {
	store := New()
	_, _ = store.Register("password", Rules("min=8"))
	require.NoError(t, store.Change("password", "short"))
	fe := store.ValidateField("password")
	require.NotNil(t, fe)
	assert.Equal(t, "Must be at least 8 characters", fe.Message)
}

func TestStore_UnregisterDiscardsBindingButKeepsValue(t *testing.T) {
	store := New()
	_, _ = store.Register("name", Rules("required"))
	require.Error(t, store.Submit(nil))

	store.Unregister("name")
	_, ok := store.Field("name")
	assert.False(t, ok)
	assert.Nil(t, store.Error("name"))
	assert.NoError(t, store.Submit(nil))

	dropping := New(WithShouldUnregister(true), WithValues(map[string]any{"name": "Ada"}))
	_, _ = dropping.Register("name")
	dropping.Unregister("name")
	_, ok = dropping.Value("name")
	assert.False(t, ok)
}

func TestStore_ApplyErrorsMapsServerPayload(t *testing.T) {
	store := New()
	_, _ = store.Register("email")
	_, _ = store.Register("address.city")

	mapping := store.ApplyErrors(map[string][]string{
		"/data/email":    {"already taken", "already taken"},
		"address[city]":  {"unknown city"},
		"__all__":        {"try again later"},
		"/data/nickname": {"reserved"},
	})

	assert.Equal(t, []string{"already taken"}, mapping.Fields["email"])
	assert.Equal(t, "already taken", store.Error("email").Message)
	assert.Equal(t, "unknown city", store.Error("address.city").Message)
	assert.ElementsMatch(t, []string{"try again later", "reserved"}, store.FormErrors())
}

func TestStore_ResetRestoresDefaults(t *testing.T) {
	store := New(WithValues(map[string]any{"name": "Ada"}))
	_, _ = store.Register("name", Rules("required"))
	require.NoError(t, store.Change("name", "Grace"))
	assert.True(t, store.Dirty("name"))
	_ = store.Submit(nil)

	store.Reset(nil)
	value, _ := store.Value("name")
	assert.Equal(t, "Ada", value)
	assert.False(t, store.Dirty("name"))
	assert.Zero(t, store.SubmitCount())
}

func TestStore_DecodeIntoStruct(t *testing.T) {
	store := New(WithValues(map[string]any{"name": "Ada", "age": float64(36)}))
	var out struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}
	require.NoError(t, store.Decode(&out))
	assert.Equal(t, "Ada", out.Name)
	assert.Equal(t, 36, out.Age)
}

func TestStore_SubmitPropagatesHandlerError(t *testing.T) {
	boom := errors.New("boom")
	err := New().Submit(func(map[string]any) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestStore_RegisterRejectsUnknownRule(t *testing.T) {
	store := New(WithMode(OnChange))
	_, err := store.Register("name", Rules("nosuchrule"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRules)

	_, ok := store.Field("name")
	assert.False(t, ok)
	assert.NotPanics(t, func() {
		require.NoError(t, store.Change("name", "x"))
	})
}

func TestStore_RegisterAcceptsKindSpecificRules(t *testing.T) {
	store := New()
	_, err := store.Register("tags", Rules("dive,required"))
	require.NoError(t, err)
	_, err = store.Register("age", Rules("required,gte=18"))
	require.NoError(t, err)
}

func TestStore_RuleMismatchedWithValueBecomesInvalidError(t *testing.T) {
	store := New(WithMode(OnChange))
	_, err := store.Register("tags", Rules("dive,required"))
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		require.NoError(t, store.Change("tags", "not-a-list"))
	})
	fe := store.Error("tags")
	require.NotNil(t, fe)
	assert.Equal(t, "invalid", fe.Rule)
}
