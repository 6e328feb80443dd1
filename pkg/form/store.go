package form

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Mode selects when field rules run before the first submit. After a submit
// every change re-validates the changed field.
type Mode int

const (
	// OnSubmit validates only when the form is submitted.
	OnSubmit Mode = iota
	// OnBlur validates a field when it loses focus.
	OnBlur
	// OnChange validates a field on every change.
	OnChange
	// OnTouched validates on the first blur and on every change after it.
	OnTouched
)

// Option configures a Store.
type Option func(*Store)

// WithValues seeds the store with default values. The map is deep copied.
func WithValues(values map[string]any) Option {
	return func(s *Store) {
		s.values = cloneValues(values)
		s.initial = cloneValues(values)
	}
}

// WithMode sets the validation mode.
func WithMode(mode Mode) Option {
	return func(s *Store) {
		s.mode = mode
	}
}

// WithValidator replaces the shared validator instance.
func WithValidator(v *validator.Validate) Option {
	return func(s *Store) {
		if v != nil {
			s.validate = v
		}
	}
}

// WithLogger attaches a logger for diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithShouldUnregister drops a field's value together with its binding on
// Unregister. By default values outlive their bindings.
func WithShouldUnregister(enabled bool) Option {
	return func(s *Store) {
		s.shouldUnregister = enabled
	}
}

// FieldOption configures a field registration.
type FieldOption func(*registration)

// Rules sets go-playground/validator tags for the field, e.g.
// "required,email" or "omitempty,min=3".
func Rules(tags string) FieldOption {
	return func(r *registration) {
		r.rules = tags
	}
}

// Message overrides the message shown when rule tag fails.
func Message(tag, message string) FieldOption {
	return func(r *registration) {
		if r.messages == nil {
			r.messages = make(map[string]string)
		}
		r.messages[tag] = message
	}
}

type registration struct {
	rules    string
	messages map[string]string
}

// Binding is the live connection between one registered field and the
// store. It is a snapshot; take a fresh one after changes.
type Binding struct {
	Name     string
	Value    any
	Present  bool
	Error    *FieldError
	Touched  bool
	OnChange func(value any) error
	OnBlur   func()
}

// Store is the form-state container that owns field values and validation
// errors. A Store belongs to one form instance and is safe for concurrent
// use.
type Store struct {
	mu sync.RWMutex

	values     map[string]any
	initial    map[string]any
	errors     map[string]*FieldError
	formErrors []string
	touched    map[string]bool
	fields     map[string]registration

	mode             Mode
	shouldUnregister bool
	submitCount      int
	validate         *validator.Validate
	logger           zerolog.Logger
}

// New constructs an empty Store applying the provided options.
func New(options ...Option) *Store {
	s := &Store{
		values:   make(map[string]any),
		initial:  make(map[string]any),
		errors:   make(map[string]*FieldError),
		touched:  make(map[string]bool),
		fields:   make(map[string]registration),
		validate: Validator(),
		logger:   zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// Register records the field and its rules and returns its binding.
// Registering an existing name updates its rules.
func (s *Store) Register(name string, options ...FieldOption) (Binding, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Binding{}, fmt.Errorf("form: register: empty field name")
	}
	var reg registration
	for _, opt := range options {
		if opt != nil {
			opt(&reg)
		}
	}
	if err := checkRules(s.validate, reg.rules); err != nil {
		return Binding{}, fmt.Errorf("form: register %s: %w", name, err)
	}

	s.mu.Lock()
	s.fields[name] = reg
	s.mu.Unlock()

	return s.binding(name), nil
}

// Unregister discards the field's binding, error and touched state.
func (s *Store) Unregister(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.fields, name)
	delete(s.errors, name)
	delete(s.touched, name)
	if s.shouldUnregister {
		deletePath(s.values, name)
	}
}

// Field returns the binding for a registered field.
func (s *Store) Field(name string) (Binding, bool) {
	s.mu.RLock()
	_, ok := s.fields[name]
	s.mu.RUnlock()
	if !ok {
		return Binding{}, false
	}
	return s.binding(name), true
}

// Registered lists registered field names in sorted order.
func (s *Store) Registered() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.fields))
	for name := range s.fields {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (s *Store) binding(name string) Binding {
	s.mu.RLock()
	value, present := getPath(s.values, name)
	b := Binding{
		Name:    name,
		Value:   deepCopy(value),
		Present: present,
		Error:   copyError(s.errors[name]),
		Touched: s.touched[name],
	}
	s.mu.RUnlock()

	b.OnChange = func(value any) error { return s.Change(name, value) }
	b.OnBlur = func() { s.Blur(name) }
	return b
}

// Change stores value at name. A nil value removes it, leaving the field
// absent.
func (s *Store) Change(name string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if value == nil {
		deletePath(s.values, name)
	} else if err := setPath(s.values, name, value); err != nil {
		return fmt.Errorf("form: change %s: %w", name, err)
	}

	if s.shouldValidateOnChange(name) {
		s.validateLocked(name)
	}
	return nil
}

// Blur marks the field touched and validates it when the mode asks for it.
func (s *Store) Blur(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touched[name] = true
	if s.mode == OnBlur || s.mode == OnTouched || s.submitCount > 0 {
		s.validateLocked(name)
	}
}

func (s *Store) shouldValidateOnChange(name string) bool {
	switch {
	case s.submitCount > 0:
		return true
	case s.mode == OnChange:
		return true
	case s.mode == OnTouched:
		return s.touched[name]
	}
	return false
}

// Value returns the current value at name.
func (s *Store) Value(name string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := getPath(s.values, name)
	return deepCopy(value), ok
}

// Values returns a deep copy of the value tree.
func (s *Store) Values() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneValues(s.values)
}

// Decode copies the value tree into target through its JSON representation.
func (s *Store) Decode(target any) error {
	payload, err := json.Marshal(s.Values())
	if err != nil {
		return fmt.Errorf("form: encode values: %w", err)
	}
	if err := json.Unmarshal(payload, target); err != nil {
		return fmt.Errorf("form: decode values: %w", err)
	}
	return nil
}

// Error returns the current error for name, or nil.
func (s *Store) Error(name string) *FieldError {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyError(s.errors[name])
}

// Errors returns a copy of every field error keyed by field name.
func (s *Store) Errors() map[string]*FieldError {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]*FieldError, len(s.errors))
	for name, fe := range s.errors {
		out[name] = copyError(fe)
	}
	return out
}

// SetError records a manual error, e.g. one produced by a server round trip.
func (s *Store) SetError(name, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors[name] = &FieldError{Field: name, Rule: "manual", Message: strings.TrimSpace(message)}
}

// ClearErrors removes the errors for names, or every error when none are
// given.
func (s *Store) ClearErrors(names ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(names) == 0 {
		s.errors = make(map[string]*FieldError)
		s.formErrors = nil
		return
	}
	for _, name := range names {
		delete(s.errors, name)
	}
}

// FormErrors returns messages that belong to the form rather than a field.
func (s *Store) FormErrors() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.formErrors)
}

// ApplyErrors maps a server error payload onto the registered fields. The
// first message per field becomes its error; unmatched keys become form
// errors.
func (s *Store) ApplyErrors(payload map[string][]string) ErrorMapping {
	mapping := MapErrorPayload(s.Registered(), payload)

	s.mu.Lock()
	defer s.mu.Unlock()
	for name, messages := range mapping.Fields {
		s.errors[name] = &FieldError{Field: name, Rule: "server", Message: messages[0]}
	}
	s.formErrors = MergeFormErrors(s.formErrors, mapping.Form...)
	return mapping
}

// ValidateField runs the rules of one registered field and records the
// result.
func (s *Store) ValidateField(name string) *FieldError {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyError(s.validateLocked(name))
}

// Validate runs every registered field's rules and reports whether the form
// is valid.
func (s *Store) Validate() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	valid := true
	for name := range s.fields {
		if s.validateLocked(name) != nil {
			valid = false
		}
	}
	return valid
}

func (s *Store) validateLocked(name string) *FieldError {
	reg, ok := s.fields[name]
	if !ok {
		return nil
	}
	value, present := getPath(s.values, name)
	fe, err := checkValue(s.validate, name, value, present, reg)
	if err != nil {
		s.logger.Error().Err(err).Str("field", name).Msg("form: rule evaluation failed")
		fe = &FieldError{Field: name, Rule: "invalid", Message: ruleMessage("invalid", "", 0, reg.messages)}
	}
	if fe == nil {
		delete(s.errors, name)
		return nil
	}
	s.errors[name] = fe
	return fe
}

// Submit validates the whole form and, when valid, hands a copy of the
// values to handler. Invalid forms return an error wrapping ErrInvalid and
// handler is not called.
func (s *Store) Submit(handler func(values map[string]any) error) error {
	s.mu.Lock()
	s.submitCount++
	s.formErrors = nil
	invalid := 0
	for name := range s.fields {
		s.touched[name] = true
		if s.validateLocked(name) != nil {
			invalid++
		}
	}
	s.mu.Unlock()

	if invalid > 0 {
		return fmt.Errorf("%w: %d field(s)", ErrInvalid, invalid)
	}
	if handler == nil {
		return nil
	}
	return handler(s.Values())
}

// SubmitCount reports how many times Submit was called since the last
// Reset.
func (s *Store) SubmitCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.submitCount
}

// Dirty reports whether the value at name differs from its default.
func (s *Store) Dirty(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	current, okCurrent := getPath(s.values, name)
	initial, okInitial := getPath(s.initial, name)
	if okCurrent != okInitial {
		return true
	}
	return fmt.Sprint(current) != fmt.Sprint(initial)
}

// Reset restores the default values and clears errors, touched state and
// the submit count. Passing values replaces the defaults.
func (s *Store) Reset(values map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if values != nil {
		s.initial = cloneValues(values)
	}
	s.values = cloneValues(s.initial)
	s.errors = make(map[string]*FieldError)
	s.formErrors = nil
	s.touched = make(map[string]bool)
	s.submitCount = 0
}

func copyError(fe *FieldError) *FieldError {
	if fe == nil {
		return nil
	}
	out := *fe
	return &out
}
