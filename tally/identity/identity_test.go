package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/tally-mcp/tally/errs"
	"github.com/viant/tally-mcp/tally/model"
)

const uniswapID = "2206072050458560434"

type fakeLookup struct {
	orgs  map[string]*model.Organization
	calls []string
	err   error
}

func (f *fakeLookup) OrganizationBySlug(ctx context.Context, slug string) (*model.Organization, error) {
	f.calls = append(f.calls, slug)
	if f.err != nil {
		return nil, f.err
	}
	return f.orgs[slug], nil
}

func newFakeLookup() *fakeLookup {
	return &fakeLookup{orgs: map[string]*model.Organization{
		"uniswap": {ID: uniswapID, Slug: "uniswap", Name: "Uniswap"},
	}}
}

func TestClassify(t *testing.T) {
	var testCases = []struct {
		value  string
		expect Kind
	}{
		{value: "", expect: Empty},
		{value: "   ", expect: Empty},
		{value: "eip155:1:0x408ED6354d4973f66138C91495F2f2FCbd8724C3", expect: Governor},
		{value: uniswapID, expect: OrganizationID},
		{value: "uniswap", expect: Slug},
		{value: "my-eip155:1:dao", expect: Slug},
		{value: "123abc", expect: Slug},
		{value: "-12", expect: Slug},
	}
	for _, testCase := range testCases {
		assert.EqualValues(t, testCase.expect, Classify(testCase.value), testCase.value)
	}
}

func TestFromCombined(t *testing.T) {
	assert.EqualValues(t, Ref{GovernorID: "eip155:1:0xabc"}, FromCombined(" eip155:1:0xabc "))
	assert.EqualValues(t, Ref{ID: "42"}, FromCombined("42"))
	assert.EqualValues(t, Ref{Slug: "arbitrum"}, FromCombined("arbitrum"))
	assert.True(t, FromCombined("").IsZero())
}

func TestResolver_ResolveOrganizationID(t *testing.T) {
	var testCases = []struct {
		description string
		ref         Ref
		expectID    string
		expectKind  errs.Kind
		expectCalls []string
	}{
		{
			description: "numeric id passes through without lookup",
			ref:         Ref{ID: uniswapID},
			expectID:    uniswapID,
		},
		{
			description: "slug resolves via lookup",
			ref:         Ref{Slug: "uniswap"},
			expectID:    uniswapID,
			expectCalls: []string{"uniswap"},
		},
		{
			description: "opaque id treated as slug",
			ref:         Ref{ID: "uniswap"},
			expectID:    uniswapID,
			expectCalls: []string{"uniswap"},
		},
		{
			description: "governor id alone is ambiguous",
			ref:         Ref{GovernorID: "eip155:1:0xabc"},
			expectKind:  errs.AmbiguousIdentifier,
		},
		{
			description: "governor-shaped id alone is ambiguous",
			ref:         Ref{ID: "eip155:1:0xabc"},
			expectKind:  errs.AmbiguousIdentifier,
		},
		{
			description: "governor id with slug resolves slug",
			ref:         Ref{GovernorID: "eip155:1:0xabc", Slug: "uniswap"},
			expectID:    uniswapID,
			expectCalls: []string{"uniswap"},
		},
		{
			description: "unknown slug",
			ref:         Ref{Slug: "missing"},
			expectKind:  errs.NotFound,
			expectCalls: []string{"missing"},
		},
		{
			description: "nothing supplied",
			ref:         Ref{},
			expectKind:  errs.Validation,
		},
	}

	for _, testCase := range testCases {
		lookup := newFakeLookup()
		resolver := NewResolver(lookup)
		id, err := resolver.ResolveOrganizationID(context.Background(), testCase.ref)
		if testCase.expectKind != 0 {
			require.Error(t, err, testCase.description)
			assert.True(t, errs.Is(err, testCase.expectKind), "%s: %v", testCase.description, err)
		} else {
			require.NoError(t, err, testCase.description)
			assert.EqualValues(t, testCase.expectID, id, testCase.description)
		}
		assert.EqualValues(t, testCase.expectCalls, lookup.calls, testCase.description)
	}
}

func TestResolver_LookupError(t *testing.T) {
	boom := errors.New("boom")
	resolver := NewResolver(&fakeLookup{err: boom})
	_, err := resolver.ResolveOrganizationID(context.Background(), Ref{Slug: "uniswap"})
	assert.ErrorIs(t, err, boom)
}
