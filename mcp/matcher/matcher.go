// Package matcher implements the name patterns used to enable tools.
package matcher

import "strings"

// Match reports whether name satisfies pattern: "*" matches everything,
// otherwise pattern is a prefix of name.
func Match(pattern, name string) bool {
	pattern = strings.TrimSpace(pattern)
	if pattern == "*" {
		return true
	}
	if pattern == "" {
		return false
	}
	return strings.HasPrefix(name, pattern)
}

// Any reports whether name matches at least one pattern and no exclusion.
// A pattern starting with "!" excludes matching names.
func Any(patterns []string, name string) bool {
	matched := false
	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if excluded, ok := strings.CutPrefix(pattern, "!"); ok {
			if Match(excluded, name) {
				return false
			}
			continue
		}
		if Match(pattern, name) {
			matched = true
		}
	}
	return matched
}
