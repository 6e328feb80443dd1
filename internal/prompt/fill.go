package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-uikit/pkg/fields"
	"github.com/goliatone/go-uikit/pkg/widgets"
)

// DefaultAttempts is how often a field is asked again while invalid.
const DefaultAttempts = 3

// Filler walks field specs, asks for each value through a Driver and writes
// the answers into the adapter's store, re-asking while the field's rules
// fail.
type Filler struct {
	driver   Driver
	adapter  *fields.Adapter
	attempts int
	logger   zerolog.Logger
}

// FillerOption configures a Filler.
type FillerOption func(*Filler)

// WithAttempts sets the number of tries per field. Values below one keep
// the default.
func WithAttempts(n int) FillerOption {
	return func(f *Filler) {
		if n > 0 {
			f.attempts = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) FillerOption {
	return func(f *Filler) {
		f.logger = logger
	}
}

// NewFiller binds driver to adapter.
func NewFiller(driver Driver, adapter *fields.Adapter, options ...FillerOption) *Filler {
	f := &Filler{
		driver:   driver,
		adapter:  adapter,
		attempts: DefaultAttempts,
		logger:   zerolog.Nop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(f)
		}
	}
	return f
}

// Fill asks for every spec in order. File fields cannot be answered in a
// terminal and are reported and skipped.
func (f *Filler) Fill(ctx context.Context, specs []fields.Spec) error {
	if f.adapter.Store() == nil {
		return fmt.Errorf("prompt: fill: %w", fields.ErrNoForm)
	}
	for _, spec := range specs {
		if err := f.fillField(ctx, spec); err != nil {
			return err
		}
	}
	return nil
}

func (f *Filler) fillField(ctx context.Context, spec fields.Spec) error {
	kind := f.adapter.Kind(spec)
	if kind == fields.KindDndInput {
		return f.driver.Info(ctx, fmt.Sprintf("%s: file uploads are skipped in the terminal", label(spec)))
	}
	store := f.adapter.Store()
	if _, ok := store.Field(spec.Name); !ok {
		if _, err := store.Register(spec.Name, spec.FieldOptions()...); err != nil {
			return fmt.Errorf("prompt: register %s: %w", spec.Name, err)
		}
	}

	for attempt := 1; attempt <= f.attempts; attempt++ {
		err := f.ask(ctx, spec, kind)
		switch {
		case errors.Is(err, fields.ErrInvalidNumber):
			if infoErr := f.driver.Info(ctx, fmt.Sprintf("%s: enter a number", label(spec))); infoErr != nil {
				return infoErr
			}
			continue
		case err != nil:
			return err
		}

		fieldErr := store.ValidateField(spec.Name)
		if fieldErr == nil {
			return nil
		}
		f.logger.Debug().Str("field", spec.Name).Str("rule", fieldErr.Rule).Int("attempt", attempt).Msg("invalid answer")
		if err := f.driver.Info(ctx, fmt.Sprintf("%s: %s", label(spec), fieldErr.Message)); err != nil {
			return err
		}
	}
	return fmt.Errorf("%w: %s", ErrTooManyAttempts, spec.Name)
}

func (f *Filler) ask(ctx context.Context, spec fields.Spec, kind fields.Kind) error {
	store := f.adapter.Store()
	current, present := store.Value(spec.Name)
	message := label(spec)

	switch kind {
	case fields.KindCheckbox, fields.KindSwitch:
		checked, _ := current.(bool)
		answer, err := f.driver.Confirm(ctx, ConfirmConfig{Message: message, Default: checked, Help: spec.Description})
		if err != nil {
			return err
		}
		return f.adapter.ChangeBool(spec.Name, answer)

	case fields.KindSelect, fields.KindRadioGroup:
		options := enabledOptions(spec.Options)
		idx, err := f.driver.Select(ctx, SelectConfig{
			Message:      message,
			Options:      optionLabels(options),
			DefaultIndex: optionIndex(options, fields.TextDisplay(current, present)),
			Help:         spec.Description,
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(options) {
			return f.adapter.ChangeChoice(spec.Name, "")
		}
		return f.adapter.ChangeChoice(spec.Name, options[idx].ID)

	case fields.KindMultiSelect:
		options := enabledOptions(spec.Options)
		selected, err := f.adapter.Selection(spec.Name)
		if err != nil {
			return err
		}
		var defaults []int
		for _, id := range selected {
			if idx := optionIndex(options, id); idx >= 0 {
				defaults = append(defaults, idx)
			}
		}
		picked, err := f.driver.MultiSelect(ctx, SelectConfig{
			Message:  message,
			Options:  optionLabels(options),
			Defaults: defaults,
			Help:     spec.Description,
		})
		if err != nil {
			return err
		}
		state := widgets.MultiSelect{Options: spec.Options, Max: spec.Max}
		var ids []string
		for _, idx := range picked {
			if idx >= 0 && idx < len(options) {
				ids = state.Toggle(ids, options[idx].ID)
			}
		}
		return f.adapter.ChangeSelection(spec.Name, ids)

	case fields.KindTextarea:
		answer, err := f.driver.TextArea(ctx, TextAreaConfig{
			Message: message,
			Default: fields.TextDisplay(current, present),
			Help:    spec.Description,
		})
		if err != nil {
			return err
		}
		if err := f.adapter.ChangeText(spec.Name, answer); err != nil {
			return err
		}
		return f.adapter.BlurText(spec.Name)
	}

	cfg := InputConfig{Message: message, Help: spec.Description}
	switch strings.ToLower(spec.Type) {
	case "password":
		answer, err := f.driver.Password(ctx, cfg)
		if err != nil {
			return err
		}
		return f.adapter.ChangeText(spec.Name, answer)
	case "number", "integer", "float":
		cfg.Default = fields.NumberDisplay(current, present)
		answer, err := f.driver.Input(ctx, cfg)
		if err != nil {
			return err
		}
		return f.adapter.ChangeNumber(spec.Name, answer)
	}

	cfg.Default = fields.TextDisplay(current, present)
	answer, err := f.driver.Input(ctx, cfg)
	if err != nil {
		return err
	}
	if err := f.adapter.ChangeText(spec.Name, answer); err != nil {
		return err
	}
	return f.adapter.BlurText(spec.Name)
}

func label(spec fields.Spec) string {
	text := spec.Label
	if text == "" {
		text = spec.Name
	}
	if spec.Required {
		text += " *"
	}
	return text
}

func enabledOptions(options []widgets.Option) []widgets.Option {
	out := make([]widgets.Option, 0, len(options))
	for _, option := range options {
		if !option.Disabled {
			out = append(out, option)
		}
	}
	return out
}

func optionLabels(options []widgets.Option) []string {
	labels := make([]string, len(options))
	for i, option := range options {
		labels[i] = option.Label
		if labels[i] == "" {
			labels[i] = option.ID
		}
	}
	return labels
}

func optionIndex(options []widgets.Option, id string) int {
	for i, option := range options {
		if option.ID == id {
			return i
		}
	}
	return -1
}
