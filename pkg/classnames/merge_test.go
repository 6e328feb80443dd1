package classnames

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMerge_LastWinsPerGroup(t *testing.T) {
	cases := []struct {
		name  string
		parts []string
		want  string
	}{
		{
			name:  "background color override",
			parts: []string{"px-2 py-1 bg-red-500", "bg-blue-500"},
			want:  "px-2 py-1 bg-blue-500",
		},
		{
			name:  "padding shorthand replaces sides",
			parts: []string{"px-2 py-1 pt-3", "p-4"},
			want:  "p-4",
		},
		{
			name:  "side refines shorthand",
			parts: []string{"p-4", "px-2"},
			want:  "p-4 px-2",
		},
		{
			name:  "modifiers scope conflicts",
			parts: []string{"hover:bg-accent bg-primary", "bg-secondary"},
			want:  "hover:bg-accent bg-secondary",
		},
		{
			name:  "grid columns override",
			parts: []string{"grid grid-cols-2", "grid-cols-3"},
			want:  "grid grid-cols-3",
		},
		{
			name:  "gap override",
			parts: []string{"flex gap-2", "gap-4"},
			want:  "flex gap-4",
		},
		{
			name:  "text size and color are independent",
			parts: []string{"text-sm text-muted-foreground", "text-destructive"},
			want:  "text-sm text-destructive",
		},
		{
			name:  "arbitrary font size",
			parts: []string{"text-sm", "text-[0.8rem]"},
			want:  "text-[0.8rem]",
		},
		{
			name:  "border width vs color",
			parts: []string{"border border-input", "border-destructive"},
			want:  "border border-destructive",
		},
		{
			name:  "ring width vs color under modifier",
			parts: []string{"focus-visible:ring-2 focus-visible:ring-ring", "focus-visible:ring-destructive"},
			want:  "focus-visible:ring-2 focus-visible:ring-destructive",
		},
		{
			name:  "arbitrary width",
			parts: []string{"w-[13rem] justify-between", "w-full"},
			want:  "justify-between w-full",
		},
		{
			name:  "duplicates keep last position",
			parts: []string{"foo bar", "foo"},
			want:  "bar foo",
		},
		{
			name:  "display group",
			parts: []string{"flex items-center", "hidden"},
			want:  "items-center hidden",
		},
		{
			name:  "important is its own scope",
			parts: []string{"!p-2 p-4", "p-1"},
			want:  "!p-2 p-1",
		},
		{
			name:  "empty parts",
			parts: []string{"", "  ", "h-9"},
			want:  "h-9",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Merge(tc.parts...); got != tc.want {
				t.Fatalf("Merge(%q)\nwant: %q\n got: %q", tc.parts, tc.want, got)
			}
		})
	}
}

func TestJoin_SkipsEmptyParts(t *testing.T) {
	got := Join("a", "", If(false, "b"), If(true, "c"), "  d   e ")
	if got != "a c d e" {
		t.Fatalf("unexpected join result %q", got)
	}
}

func TestTokens_NilForEmpty(t *testing.T) {
	if diff := cmp.Diff([]string(nil), Tokens("", " ")); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
}
