package testsupport

import (
	"bytes"
	"io"
	"os"
	"regexp"
	"strings"
	"testing"
)

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

var interTagSpace = regexp.MustCompile(`>\s+<`)

// NormalizeHTML collapses whitespace between tags and trims the result so
// markup comparisons ignore template indentation.
func NormalizeHTML(markup string) string {
	markup = strings.TrimSpace(markup)
	markup = interTagSpace.ReplaceAllString(markup, "><")
	return strings.Join(strings.Fields(markup), " ")
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents. Tests can assert
// the renderer returns and writes the same payload without duplicating buffer
// setup.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
