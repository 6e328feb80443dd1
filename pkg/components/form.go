package components

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
)

// HiddenField is a hidden input emitted at the top of a Form.
type HiddenField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Hidden returns a HiddenField for an arbitrary name/value pair.
func Hidden(name string, value any) HiddenField {
	return HiddenField{
		Name:  strings.TrimSpace(name),
		Value: fmt.Sprint(value),
	}
}

// CSRFToken carries a CSRF token under the name the backend expects, e.g.
// "_csrf" or "csrf_token".
func CSRFToken(name, token string) HiddenField {
	return Hidden(name, token)
}

// VersionField carries a record version for optimistic locking.
func VersionField(name string, version any) HiddenField {
	return Hidden(name, version)
}

// MergeHiddenFields returns a copy of base with fields applied. Empty names
// are ignored; later fields win on name collisions.
func MergeHiddenFields(base map[string]string, fields ...HiddenField) map[string]string {
	if len(base) == 0 && len(fields) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(fields))
	for key, value := range base {
		if trimmed := strings.TrimSpace(key); trimmed != "" {
			out[trimmed] = value
		}
	}
	for _, field := range fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			continue
		}
		out[name] = field.Value
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// SortedHiddenFields orders hidden fields by name for deterministic output.
func SortedHiddenFields(fields map[string]string) []HiddenField {
	if len(fields) == 0 {
		return nil
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		if strings.TrimSpace(name) != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	result := make([]HiddenField, 0, len(names))
	for _, name := range names {
		result = append(result, HiddenField{Name: strings.TrimSpace(name), Value: fields[name]})
	}
	return result
}

// FormProps configures Form.
type FormProps struct {
	ID         string            `json:"id,omitempty"`
	Action     string            `json:"action,omitempty"`
	Method     string            `json:"method,omitempty"`
	EncType    string            `json:"encType,omitempty"`
	Hidden     map[string]string `json:"hidden,omitempty"`
	FormErrors []string          `json:"formErrors,omitempty"`
	NoValidate bool              `json:"noValidate,omitempty"`
	Children   Markup            `json:"children,omitempty"`
	Class      string            `json:"class,omitempty"`
}

// Form renders the form element, its hidden fields and any form-level
// errors (e.g. server errors that matched no field) ahead of the fields.
func (r *Renderer) Form(buf *bytes.Buffer, p FormProps) error {
	method := strings.ToLower(strings.TrimSpace(p.Method))
	if method == "" {
		method = "post"
	}
	buf.WriteString(`<form data-component="form"`)
	attr(buf, "id", p.ID)
	attr(buf, "action", p.Action)
	attr(buf, "method", method)
	attr(buf, "enctype", p.EncType)
	boolAttr(buf, "novalidate", p.NoValidate)
	attr(buf, "class", r.Class(StackSpec, nil, p.Class))
	buf.WriteByte('>')

	for _, field := range SortedHiddenFields(p.Hidden) {
		buf.WriteString(`<input type="hidden"`)
		attr(buf, "name", field.Name)
		attrAlways(buf, "value", field.Value)
		buf.WriteByte('>')
	}

	if len(p.FormErrors) > 0 {
		buf.WriteString(`<div role="alert" data-form-errors class="rounded-md border border-destructive/50 px-4 py-3 text-sm text-destructive">`)
		if len(p.FormErrors) == 1 {
			buf.WriteString(`<p>`)
			text(buf, p.FormErrors[0])
			buf.WriteString(`</p>`)
		} else {
			buf.WriteString(`<ul class="list-disc pl-4">`)
			for _, msg := range p.FormErrors {
				buf.WriteString(`<li>`)
				text(buf, msg)
				buf.WriteString(`</li>`)
			}
			buf.WriteString(`</ul>`)
		}
		buf.WriteString(`</div>`)
	}

	buf.WriteString(string(p.Children))
	buf.WriteString(`</form>`)
	return nil
}
