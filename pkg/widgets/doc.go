// Package widgets holds the small local state machines behind the
// interactive components: open/closed disclosures, multi-select selection,
// option filtering and sidebar state.
//
// Every operation is pure or confined to a single value; nothing here
// touches the network or the DOM.
package widgets
