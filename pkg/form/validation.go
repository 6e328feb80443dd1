package form

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// Validator returns the shared validator used when a Store is built without
// WithValidator. It understands the stock go-playground tags plus "notblank".
func Validator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			field := fl.Field()
			switch field.Kind() {
			case reflect.String:
				return strings.TrimSpace(field.String()) != ""
			case reflect.Slice, reflect.Map, reflect.Array:
				return field.Len() > 0
			default:
				return !field.IsZero()
			}
		})
		validateInst = v
	})
	return validateInst
}

var defaultMessages = map[string]string{
	"required": "This field is required",
	"notblank": "This field is required",
	"email":    "Enter a valid email address",
	"url":      "Enter a valid URL",
	"http_url": "Enter a valid URL",
	"uuid":     "Enter a valid UUID",
	"numeric":  "Enter a number",
	"number":   "Enter a number",
	"alpha":    "Use letters only",
	"alphanum": "Use letters and numbers only",
}

// ruleMessage renders the message for a failed rule. Explicit messages win
// over the built-in catalogue.
func ruleMessage(tag, param string, kind reflect.Kind, custom map[string]string) string {
	if msg, ok := custom[tag]; ok && msg != "" {
		return msg
	}
	if msg, ok := defaultMessages[tag]; ok {
		return msg
	}

	unit := "characters"
	switch kind {
	case reflect.Slice, reflect.Array, reflect.Map:
		unit = "items"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		unit = ""
	}

	switch tag {
	case "min", "gte":
		if unit == "" {
			return fmt.Sprintf("Must be at least %s", param)
		}
		return fmt.Sprintf("Must be at least %s %s", param, unit)
	case "max", "lte":
		if unit == "" {
			return fmt.Sprintf("Must be at most %s", param)
		}
		return fmt.Sprintf("Must be at most %s %s", param, unit)
	case "gt":
		return fmt.Sprintf("Must be greater than %s", param)
	case "lt":
		return fmt.Sprintf("Must be less than %s", param)
	case "len":
		if unit == "" {
			return fmt.Sprintf("Must equal %s", param)
		}
		return fmt.Sprintf("Must be exactly %s %s", param, unit)
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", strings.Join(strings.Fields(param), ", "))
	}
	return "Invalid value"
}

func hasRule(rules, tag string) bool {
	for _, part := range strings.Split(rules, ",") {
		if strings.TrimSpace(part) == tag {
			return true
		}
	}
	return false
}

// ErrInvalidRules is returned by Register when a rule string names a tag the
// validator does not know.
var ErrInvalidRules = errors.New("form: invalid rules")

var ruleSamples = []any{"", float64(0), false, []string{}}

// checkRules reports whether rules can be evaluated by v. A tag that panics
// for every sample kind is undefined; kind-specific tags such as "dive" pass.
func checkRules(v *validator.Validate, rules string) error {
	rules = strings.TrimSpace(rules)
	if rules == "" {
		return nil
	}
	var last error
	for _, sample := range ruleSamples {
		_, err := safeVar(v, sample, rules)
		if err == nil {
			return nil
		}
		last = err
	}
	return fmt.Errorf("%w %q: %v", ErrInvalidRules, rules, last)
}

// safeVar runs v.Var, turning the validator's panics on bad tags into an
// error. The first return is the validation result.
func safeVar(v *validator.Validate, value any, rules string) (result error, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return v.Var(value, rules), nil
}

// checkValue validates one value against its rules. An absent value only
// fails "required"/"notblank"; other rules apply once a value exists.
func checkValue(v *validator.Validate, name string, value any, present bool, reg registration) (*FieldError, error) {
	rules := strings.TrimSpace(reg.rules)
	if rules == "" {
		return nil, nil
	}
	if !present || value == nil {
		for _, tag := range []string{"required", "notblank"} {
			if hasRule(rules, tag) {
				return &FieldError{Field: name, Rule: tag, Message: ruleMessage(tag, "", reflect.Invalid, reg.messages)}, nil
			}
		}
		return nil, nil
	}

	err, panicErr := safeVar(v, value, rules)
	if panicErr != nil {
		return nil, fmt.Errorf("form: validate %s: %w", name, panicErr)
	}
	if err == nil {
		return nil, nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return nil, fmt.Errorf("form: validate %s: %w", name, err)
	}
	fe := verrs[0]
	return &FieldError{
		Field:   name,
		Rule:    fe.Tag(),
		Message: ruleMessage(fe.Tag(), fe.Param(), fe.Kind(), reg.messages),
	}, nil
}
