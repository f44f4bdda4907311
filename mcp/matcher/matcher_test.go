package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	var testCases = []struct {
		pattern   string
		candidate string
		matched   bool
	}{
		{"*", "list-daos", true},
		{"", "list-daos", false},
		{"get-dao", "get-dao", true},
		{"get-dao", "get-delegators", false},
		{"list-", "list-proposals", true},
		{" list- ", "list-proposals", true},
		{"get-address-", "get-proposal", false},
	}

	for i, tc := range testCases {
		assert.Equal(t, tc.matched, Match(tc.pattern, tc.candidate), "[%d] Match(%q, %q)", i, tc.pattern, tc.candidate)
	}
}

func TestAny(t *testing.T) {
	var testCases = []struct {
		description string
		patterns    []string
		candidate   string
		matched     bool
	}{
		{description: "no patterns", candidate: "list-daos", matched: false},
		{description: "star", patterns: []string{"*"}, candidate: "list-daos", matched: true},
		{description: "excluded", patterns: []string{"*", "!get-address-"}, candidate: "get-address-votes", matched: false},
		{description: "exclusion order independent", patterns: []string{"!get-address-", "*"}, candidate: "get-address-votes", matched: false},
		{description: "not excluded", patterns: []string{"*", "!get-address-"}, candidate: "get-dao", matched: true},
		{description: "exclusion only", patterns: []string{"!list-"}, candidate: "get-dao", matched: false},
		{description: "second pattern", patterns: []string{"list-", "get-dao"}, candidate: "get-dao", matched: true},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.matched, Any(tc.patterns, tc.candidate), tc.description)
	}
}
