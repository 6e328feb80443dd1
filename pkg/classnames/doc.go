// Package classnames joins and merges utility class lists.
//
// Merge follows the "last wins" rule of utility-first stylesheets through
// tailwind-merge-go: when two tokens target the same style property under
// the same modifiers, only the later one survives. Unknown tokens are only
// de-duplicated.
package classnames
