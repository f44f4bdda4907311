// Package tool defines the governance tool catalog: names, descriptions,
// input schemas and the typed request each tool's argument bag decodes into.
package tool
