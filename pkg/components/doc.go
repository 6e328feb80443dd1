// Package components renders the presentational catalog (buttons, inputs,
// selects, menus, layout primitives) into HTML fragments.
//
// Every component takes a typed props struct and writes into a
// *bytes.Buffer. Class strings come from variant specs resolved through the
// Renderer's variants.Resolver, with the caller's Class merged last. Markup
// carries the ARIA roles and data-state hooks a client-side interaction
// layer needs; the package does not emit behaviour of its own.
package components
