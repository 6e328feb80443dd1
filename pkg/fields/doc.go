// Package fields binds named fields of a form.Store to presentational
// controls from package components.
//
// Every adapter renders the same block: label, control, description and a
// single message slot. The slot shows the validation error when there is
// one and the warning text otherwise; the description is hidden while an
// error is shown. The store is passed explicitly to New, and rendering
// without one fails with ErrNoForm.
package fields
