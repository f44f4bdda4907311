// Package identity turns the heterogeneous identifiers accepted by the tools
// (organization slug, numeric organization id, chain-qualified governor id)
// into the canonical organization id the upstream filters require.
package identity

import (
	"regexp"
	"strings"
)

// Kind is the syntactic class of an identifier.
type Kind int

const (
	// Empty is a blank identifier.
	Empty Kind = iota
	// Governor is a chain-qualified governor id ("eip155:<chain>:<address>").
	Governor
	// OrganizationID is a purely numeric organization id.
	OrganizationID
	// Slug is any other string.
	Slug
)

func (k Kind) String() string {
	switch k {
	case Governor:
		return "governorId"
	case OrganizationID:
		return "organizationId"
	case Slug:
		return "slug"
	}
	return "empty"
}

// GovernorPrefix starts every chain-qualified governor id.
const GovernorPrefix = "eip155:"

var numericExpr = regexp.MustCompile(`^\d+$`)

// Classify applies the single classification order used by every tool:
// strict eip155 prefix, then all digits, then slug.
func Classify(value string) Kind {
	value = strings.TrimSpace(value)
	switch {
	case value == "":
		return Empty
	case strings.HasPrefix(value, GovernorPrefix):
		return Governor
	case numericExpr.MatchString(value):
		return OrganizationID
	}
	return Slug
}
