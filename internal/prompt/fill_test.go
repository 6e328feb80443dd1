package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-uikit/pkg/fields"
	"github.com/goliatone/go-uikit/pkg/form"
	"github.com/goliatone/go-uikit/pkg/widgets"
)

type stubDriver struct {
	inputs       []string
	passwords    []string
	confirms     []bool
	selects      []int
	multis       [][]int
	textAreas    []string
	infoMessages []string
	inputCfgs    []InputConfig
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.inputCfgs = append(s.inputCfgs, cfg)
	if len(s.inputs) == 0 {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[0]
	s.inputs = s.inputs[1:]
	return val, nil
}

func (s *stubDriver) Password(_ context.Context, _ InputConfig) (string, error) {
	if len(s.passwords) == 0 {
		return "", errors.New("no password scripted")
	}
	val := s.passwords[0]
	s.passwords = s.passwords[1:]
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if len(s.confirms) == 0 {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirms[0]
	s.confirms = s.confirms[1:]
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, _ SelectConfig) (int, error) {
	if len(s.selects) == 0 {
		return -1, errors.New("no select scripted")
	}
	val := s.selects[0]
	s.selects = s.selects[1:]
	return val, nil
}

func (s *stubDriver) MultiSelect(_ context.Context, _ SelectConfig) ([]int, error) {
	if len(s.multis) == 0 {
		return nil, errors.New("no multiselect scripted")
	}
	val := s.multis[0]
	s.multis = s.multis[1:]
	return val, nil
}

func (s *stubDriver) TextArea(_ context.Context, _ TextAreaConfig) (string, error) {
	if len(s.textAreas) == 0 {
		return "", errors.New("no textarea scripted")
	}
	val := s.textAreas[0]
	s.textAreas = s.textAreas[1:]
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func roleOptions() []widgets.Option {
	return []widgets.Option{
		{ID: "viewer", Label: "Viewer"},
		{ID: "legacy", Label: "Legacy", Disabled: true},
		{ID: "editor", Label: "Editor"},
	}
}

func TestFiller_FillsEveryKind(t *testing.T) {
	store := form.New()
	adapter := fields.New(store)
	driver := &stubDriver{
		inputs:    []string{"  ada@example.com ", "42"},
		passwords: []string{"s3cret"},
		confirms:  []bool{true},
		selects:   []int{1},
		multis:    [][]int{{0, 1}},
		textAreas: []string{" Hello \n"},
	}

	specs := []fields.Spec{
		{Props: fields.Props{Name: "email", Label: "Email", Required: true, Rules: "email"}, Type: "email"},
		{Props: fields.Props{Name: "age", Label: "Age"}, Type: "number"},
		{Props: fields.Props{Name: "password", Label: "Password"}, Type: "password"},
		{Props: fields.Props{Name: "terms", Label: "Accept terms"}, Type: "boolean"},
		{Props: fields.Props{Name: "role", Label: "Role"}, Options: roleOptions()},
		{Props: fields.Props{Name: "tags", Label: "Tags"}, Options: roleOptions(), Multiple: true},
		{Props: fields.Props{Name: "bio", Label: "Bio"}, Rows: 3},
		{Props: fields.Props{Name: "avatar", Label: "Avatar"}, Type: "file"},
	}

	require.NoError(t, NewFiller(driver, adapter).Fill(context.Background(), specs))

	values := store.Values()
	require.Equal(t, "ada@example.com", values["email"])
	require.Equal(t, float64(42), values["age"])
	require.Equal(t, "s3cret", values["password"])
	require.Equal(t, true, values["terms"])
	require.Equal(t, "editor", values["role"])
	require.Equal(t, []string{"viewer", "editor"}, values["tags"])
	require.Equal(t, "Hello", values["bio"])
	require.NotContains(t, values, "avatar")
	require.Len(t, driver.infoMessages, 1)
	require.Contains(t, driver.infoMessages[0], "Avatar")
}

func TestFiller_RetriesInvalidAnswers(t *testing.T) {
	store := form.New()
	adapter := fields.New(store)
	driver := &stubDriver{inputs: []string{"", "not-an-email", "ada@example.com"}}

	specs := []fields.Spec{
		{Props: fields.Props{Name: "email", Label: "Email", Required: true, Rules: "email"}, Type: "email"},
	}
	require.NoError(t, NewFiller(driver, adapter).Fill(context.Background(), specs))
	require.Len(t, driver.infoMessages, 2)
	require.Contains(t, driver.infoMessages[0], "required")
	require.Equal(t, "Email *", driver.inputCfgs[0].Message)
	require.Nil(t, store.Error("email"))
}

func TestFiller_NumberRetriesAndGivesUp(t *testing.T) {
	store := form.New()
	adapter := fields.New(store)
	driver := &stubDriver{inputs: []string{"abc", "NaN"}}

	specs := []fields.Spec{{Props: fields.Props{Name: "age"}, Type: "number"}}
	err := NewFiller(driver, adapter, WithAttempts(2)).Fill(context.Background(), specs)
	require.ErrorIs(t, err, ErrTooManyAttempts)
	_, present := store.Value("age")
	require.False(t, present)
	require.Equal(t, []string{"age: enter a number", "age: enter a number"}, driver.infoMessages)
}

func TestFiller_UsesStoredValuesAsDefaults(t *testing.T) {
	store := form.New(form.WithValues(map[string]any{"name": "Ada", "count": float64(3)}))
	adapter := fields.New(store)
	driver := &stubDriver{inputs: []string{"Ada", "3"}}

	specs := []fields.Spec{
		{Props: fields.Props{Name: "name"}},
		{Props: fields.Props{Name: "count"}, Type: "integer"},
	}
	require.NoError(t, NewFiller(driver, adapter).Fill(context.Background(), specs))
	require.Equal(t, "Ada", driver.inputCfgs[0].Default)
	require.Equal(t, "3", driver.inputCfgs[1].Default)
}

func TestFiller_MultiSelectHonorsMax(t *testing.T) {
	store := form.New()
	adapter := fields.New(store)
	driver := &stubDriver{multis: [][]int{{0, 1}}}

	specs := []fields.Spec{{Props: fields.Props{Name: "tags"}, Options: roleOptions(), Multiple: true, Max: 1}}
	require.NoError(t, NewFiller(driver, adapter).Fill(context.Background(), specs))
	require.Equal(t, []string{"viewer"}, store.Values()["tags"])
}

func TestFiller_RequiresStore(t *testing.T) {
	err := NewFiller(&stubDriver{}, fields.New(nil)).Fill(context.Background(), nil)
	require.ErrorIs(t, err, fields.ErrNoForm)
}

func TestDriverHelpers(t *testing.T) {
	options := []string{"a", "b", "c"}
	require.Equal(t, 1, indexOf(options, "b"))
	require.Equal(t, -1, indexOf(options, "z"))
	require.Equal(t, []int{0, 2}, indicesOf(options, []string{"c", "a"}))
	require.Equal(t, []string{"a", "c"}, defaultsFromIndices(options, []int{0, 2, 9}))
}
