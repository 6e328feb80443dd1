package components

import (
	"bytes"
	"html"
	"strconv"
	"strings"
)

// Markup is trusted HTML, usually the output of another component. It is
// written verbatim.
type Markup string

// Text escapes s into Markup.
func Text(s string) Markup {
	return Markup(html.EscapeString(s))
}

// Render is a convenience that renders a component into Markup for
// composition as children of another component.
func Render[P any](render func(*bytes.Buffer, P) error, props P) (Markup, error) {
	var buf bytes.Buffer
	if err := render(&buf, props); err != nil {
		return "", err
	}
	return Markup(buf.String()), nil
}

func attr(buf *bytes.Buffer, name, value string) {
	if value == "" {
		return
	}
	buf.WriteByte(' ')
	buf.WriteString(name)
	buf.WriteString(`="`)
	buf.WriteString(html.EscapeString(value))
	buf.WriteByte('"')
}

// attrAlways writes the attribute even when value is empty.
func attrAlways(buf *bytes.Buffer, name, value string) {
	buf.WriteByte(' ')
	buf.WriteString(name)
	buf.WriteString(`="`)
	buf.WriteString(html.EscapeString(value))
	buf.WriteByte('"')
}

func boolAttr(buf *bytes.Buffer, name string, on bool) {
	if on {
		buf.WriteByte(' ')
		buf.WriteString(name)
	}
}

// ariaBool writes name="true" when on. aria attributes are omitted rather
// than written as "false" unless the state is always meaningful.
func ariaBool(buf *bytes.Buffer, name string, on bool) {
	if on {
		attr(buf, name, "true")
	}
}

func ariaState(buf *bytes.Buffer, name string, on bool) {
	attrAlways(buf, name, strconv.FormatBool(on))
}

func text(buf *bytes.Buffer, s string) {
	buf.WriteString(html.EscapeString(s))
}

func content(buf *bytes.Buffer, label string, children Markup) {
	if children != "" {
		buf.WriteString(string(children))
		return
	}
	text(buf, label)
}

func checkedState(on bool) string {
	if on {
		return "checked"
	}
	return "unchecked"
}

func joinIDs(ids ...string) string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	return strings.Join(out, " ")
}

// ControlID derives a stable element id from a field name, matching the ids
// that field adapters link labels and messages to.
func ControlID(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	replacer := strings.NewReplacer(".", "-", "[", "-", "]", "", " ", "-")
	return "ui-" + replacer.Replace(trimmed)
}
