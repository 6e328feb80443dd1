package form

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalid is returned by Submit when at least one registered field fails
// validation.
var ErrInvalid = errors.New("form: validation failed")

// FieldError is the error state of a single field. A nil *FieldError means
// the field is valid.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule,omitempty"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("form: %s: %s", e.Field, e.Message)
}

// ErrorMapping splits a server error payload into messages for registered
// fields and messages for the form as a whole.
type ErrorMapping struct {
	Fields map[string][]string
	Form   []string
}

// MapErrorPayload resolves server error keys (dotted paths, JSON pointers,
// bracketed indices, request wrappers such as "body" or "data") onto the
// given field paths. Keys that match no field become form-level messages so
// nothing is lost.
func MapErrorPayload(fieldPaths []string, payload map[string][]string) ErrorMapping {
	mapping := ErrorMapping{Fields: make(map[string][]string)}
	if len(payload) == 0 {
		mapping.Fields = nil
		return mapping
	}

	known := make(map[string]struct{}, len(fieldPaths))
	for _, path := range fieldPaths {
		if path = strings.TrimSpace(path); path != "" {
			known[path] = struct{}{}
		}
	}

	for raw, messages := range payload {
		cleaned := uniqueMessages(messages)
		if len(cleaned) == 0 {
			continue
		}
		field := resolveErrorKey(raw, known)
		if field == "" {
			mapping.Form = append(mapping.Form, cleaned...)
			continue
		}
		mapping.Fields[field] = append(mapping.Fields[field], cleaned...)
	}

	if len(mapping.Fields) == 0 {
		mapping.Fields = nil
	}
	mapping.Form = uniqueMessages(mapping.Form)
	return mapping
}

// MergeFormErrors appends extras to existing, trimming blanks and duplicates
// while keeping first-seen order.
func MergeFormErrors(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return uniqueMessages(combined)
}

func uniqueMessages(messages []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(messages))
	for _, message := range messages {
		message = strings.TrimSpace(message)
		if message == "" {
			continue
		}
		if _, dup := seen[message]; dup {
			continue
		}
		seen[message] = struct{}{}
		out = append(out, message)
	}
	return out
}

func resolveErrorKey(raw string, known map[string]struct{}) string {
	if isFormKey(raw) {
		return ""
	}
	segments := errorKeySegments(raw)
	if len(segments) == 0 {
		return ""
	}

	best := ""
	for _, candidate := range keyCandidates(segments) {
		match := longestKnownPrefix(candidate, known)
		if strings.Count(match, ".") > strings.Count(best, ".") || (best == "" && match != "") {
			best = match
		}
	}
	return best
}

func errorKeySegments(raw string) []string {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimLeft(clean, "#$/.")
	clean = strings.NewReplacer("[", ".", "]", "").Replace(clean)

	parts := strings.FieldsFunc(clean, func(r rune) bool { return r == '.' || r == '/' })
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		// JSON pointer escapes.
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		out = append(out, part)
	}
	return out
}

var requestWrappers = map[string]struct{}{
	"body":       {},
	"request":    {},
	"payload":    {},
	"data":       {},
	"attributes": {},
	"form":       {},
}

func keyCandidates(segments []string) [][]string {
	unwrapped := segments
	for len(unwrapped) > 0 {
		if _, ok := requestWrappers[strings.ToLower(unwrapped[0])]; !ok {
			break
		}
		unwrapped = unwrapped[1:]
	}
	return [][]string{
		segments,
		unwrapped,
		withoutIndices(segments),
		withoutIndices(unwrapped),
	}
}

func withoutIndices(segments []string) []string {
	out := make([]string, 0, len(segments))
	for _, segment := range segments {
		if _, err := strconv.Atoi(segment); err == nil {
			continue
		}
		out = append(out, segment)
	}
	return out
}

func longestKnownPrefix(segments []string, known map[string]struct{}) string {
	for end := len(segments); end > 0; end-- {
		candidate := strings.Join(segments[:end], ".")
		if _, ok := known[candidate]; ok {
			return candidate
		}
	}
	return ""
}

func isFormKey(key string) bool {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "", ".", "/", "#", "$", "form", "base", "__all__", "non_field_errors", "non-field-errors":
		return true
	}
	return false
}
