package classnames

import (
	"slices"
	"strings"

	twmerge "github.com/Oudwins/tailwind-merge-go"
)

// Join concatenates the non-empty parts with single spaces. It does not
// resolve conflicts; use Merge when later parts must override earlier ones.
func Join(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, strings.Join(strings.Fields(trimmed), " "))
		}
	}
	return strings.Join(out, " ")
}

// If returns value when cond is true and an empty string otherwise, so
// conditional classes read inline at call sites.
func If(cond bool, value string) string {
	if cond {
		return value
	}
	return ""
}

// Merge returns the parts as one class list in which later utilities
// override earlier conflicting ones and repeated tokens appear once.
func Merge(parts ...string) string {
	return strings.Join(Tokens(parts...), " ")
}

// Tokens is Merge without the final join.
func Tokens(parts ...string) []string {
	joined := Join(parts...)
	if joined == "" {
		return nil
	}
	merged := strings.Fields(twmerge.Merge(joined))

	// twmerge keeps every token it cannot classify; drop repeats, keeping
	// the last position.
	seen := make(map[string]struct{}, len(merged))
	kept := make([]string, 0, len(merged))
	for idx := len(merged) - 1; idx >= 0; idx-- {
		if _, dup := seen[merged[idx]]; dup {
			continue
		}
		seen[merged[idx]] = struct{}{}
		kept = append(kept, merged[idx])
	}
	slices.Reverse(kept)
	return kept
}
