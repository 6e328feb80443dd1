package form

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMapErrorPayload(t *testing.T) {
	paths := []string{"email", "address", "address.city", "tags"}

	tests := []struct {
		name    string
		payload map[string][]string
		want    ErrorMapping
	}{
		{
			name:    "empty payload",
			payload: nil,
			want:    ErrorMapping{},
		},
		{
			name:    "dotted path",
			payload: map[string][]string{"address.city": {" required "}},
			want:    ErrorMapping{Fields: map[string][]string{"address.city": {"required"}}},
		},
		{
			name:    "json pointer with wrapper",
			payload: map[string][]string{"#/body/address/city": {"required"}},
			want:    ErrorMapping{Fields: map[string][]string{"address.city": {"required"}}},
		},
		{
			name:    "indexed path collapses onto collection",
			payload: map[string][]string{"tags[2]": {"too long"}},
			want:    ErrorMapping{Fields: map[string][]string{"tags": {"too long"}}},
		},
		{
			name:    "deeper unknown segment falls back to parent",
			payload: map[string][]string{"address.zip": {"bad zip"}},
			want:    ErrorMapping{Fields: map[string][]string{"address": {"bad zip"}}},
		},
		{
			name:    "form level keys",
			payload: map[string][]string{"non_field_errors": {"conflict", ""}, "unknown": {"conflict"}},
			want:    ErrorMapping{Form: []string{"conflict"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapErrorPayload(paths, tt.payload)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("mapping mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMergeFormErrors(t *testing.T) {
	got := MergeFormErrors([]string{"a", " b "}, "b", "", "c")
	if diff := cmp.Diff([]string{"a", "b", "c"}, got); diff != "" {
		t.Fatalf("merge mismatch (-want +got):\n%s", diff)
	}
}
