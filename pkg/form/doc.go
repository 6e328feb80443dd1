// Package form holds the state of one form instance: field values addressed
// by dotted paths, per-field validation errors and form-level messages.
//
// Field adapters register fields on a Store, render from the returned
// Binding and report edits back through Binding.OnChange and Binding.OnBlur.
// Rules are go-playground/validator tags evaluated against each value.
package form
