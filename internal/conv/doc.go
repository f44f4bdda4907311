// Package conv holds small conversion helpers: a JSON round-trip Convert used
// to coerce workflow action inputs and outputs, and pointer helpers for
// optional request fields.
package conv
