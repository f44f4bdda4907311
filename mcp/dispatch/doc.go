// Package dispatch maps a tool call (name plus argument bag) onto the tally
// service and renders the result as text.
package dispatch
