package conv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type proposalRef struct {
	ID         string `json:"id"`
	GovernorID string `json:"governorId,omitempty"`
	Limit      *int   `json:"limit,omitempty"`
}

func TestConvert(t *testing.T) {
	testCases := []struct {
		description string
		input       interface{}
		expect      proposalRef
		expectErr   bool
	}{
		{description: "nil keeps zero value", input: nil, expect: proposalRef{}},
		{description: "assignable", input: proposalRef{ID: "1"}, expect: proposalRef{ID: "1"}},
		{
			description: "map",
			input:       map[string]interface{}{"id": "42", "governorId": "eip155:1:0xabc", "limit": float64(5)},
			expect:      proposalRef{ID: "42", GovernorID: "eip155:1:0xabc", Limit: Pointer(5)},
		},
		{description: "wrong shape", input: map[string]interface{}{"id": 1}, expectErr: true},
	}
	for _, testCase := range testCases {
		var actual proposalRef
		err := Convert(testCase.input, &actual)
		if testCase.expectErr {
			assert.Error(t, err, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
	assert.Error(t, Convert(1, nil))
	var notPointer proposalRef
	assert.Error(t, Convert(1, notPointer))
}

func TestDereference(t *testing.T) {
	assert.Equal(t, "", Dereference[string](nil))
	assert.Equal(t, "x", Dereference(Pointer("x")))
}
