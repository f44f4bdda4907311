// Package format renders upstream entities as deterministic plain-text blocks.
//
// List renderers open with a "Found <N> <resource>:" header followed by one
// block per item, each block terminated by a "---" line. Missing optional
// values render as a placeholder, never as an empty or null literal.
package format
