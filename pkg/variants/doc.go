// Package variants resolves discrete style axes into a single class string.
//
// A Spec declares a base class list, a set of axes (for example "variant" and
// "size") mapping each allowed value to a class fragment, optional per-axis
// defaults, and compound fragments that apply when several axes match. A
// Resolver turns a Spec plus the caller's Choices and free-form override
// classes into one merged class list; override tokens are appended last and
// win over conflicting variant tokens.
//
// Resolution is pure. Unknown axis values are usage errors: a strict Resolver
// panics (development), a production Resolver logs a warning and falls back
// to the axis default so a styling mistake never breaks rendering.
package variants
