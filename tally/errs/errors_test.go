package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	var testCases = []struct {
		description string
		err         error
		kind        Kind
		message     string
	}{
		{
			description: "validation",
			err:         Validationf("%s is required", "address"),
			kind:        Validation,
			message:     "address is required",
		},
		{
			description: "not found wrapped by resource prefix",
			err:         fmt.Errorf("Failed to fetch DAO: %w", NotFoundf("DAO not found: %s", "nope")),
			kind:        NotFound,
			message:     "Failed to fetch DAO: DAO not found: nope",
		},
		{
			description: "upstream with cause",
			err:         Upstreamf(errors.New("connection refused"), "GraphQL request failed"),
			kind:        Upstream,
			message:     "GraphQL request failed: connection refused",
		},
		{
			description: "unknown tool",
			err:         NewUnknownTool("list-cats"),
			kind:        UnknownTool,
			message:     "Unknown tool: list-cats",
		},
	}

	for _, testCase := range testCases {
		assert.EqualValues(t, testCase.message, testCase.err.Error(), testCase.description)
		assert.True(t, Is(testCase.err, testCase.kind), testCase.description)
		assert.EqualValues(t, testCase.kind, KindOf(testCase.err), testCase.description)
	}
}

func TestIsNestedKinds(t *testing.T) {
	inner := NotFoundf("DAO not found: x")
	outer := Upstreamf(inner, "lookup failed")
	assert.True(t, Is(outer, Upstream))
	assert.True(t, Is(outer, NotFound))
	assert.False(t, Is(outer, Validation))
	assert.False(t, Is(errors.New("plain"), Validation))
	assert.EqualValues(t, "UpstreamError", Upstream.String())
}
