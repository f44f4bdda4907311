package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/tally-mcp/internal/conv"
	"github.com/viant/tally-mcp/tally/errs"
)

const orgID = "2206072050458560434"

func TestOrganizationsInput(t *testing.T) {
	var testCases = []struct {
		description string
		args        OrganizationsArgs
		expect      map[string]interface{}
		expectErr   bool
	}{
		{
			description: "defaults",
			expect: map[string]interface{}{"input": map[string]interface{}{
				"sort": map[string]interface{}{"sortBy": "popular", "isDescending": true},
				"page": map[string]interface{}{"limit": 20},
			}},
		},
		{
			description: "limit capped and cursor passed through",
			args:        OrganizationsArgs{Page: Page{Limit: conv.Pointer(999), AfterCursor: "abc"}, SortBy: "explore"},
			expect: map[string]interface{}{"input": map[string]interface{}{
				"sort": map[string]interface{}{"sortBy": "explore", "isDescending": true},
				"page": map[string]interface{}{"limit": 50, "afterCursor": "abc"},
			}},
		},
		{
			description: "zero limit falls back to default",
			args:        OrganizationsArgs{Page: Page{Limit: conv.Pointer(0)}, SortBy: "name"},
			expect: map[string]interface{}{"input": map[string]interface{}{
				"sort": map[string]interface{}{"sortBy": "name", "isDescending": true},
				"page": map[string]interface{}{"limit": 20},
			}},
		},
		{
			description: "unsupported sort",
			args:        OrganizationsArgs{SortBy: "holders"},
			expectErr:   true,
		},
	}
	for _, testCase := range testCases {
		actual, err := OrganizationsInput(testCase.args)
		if testCase.expectErr {
			assert.True(t, errs.Is(err, errs.Validation), testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestOrganizationInput(t *testing.T) {
	actual, err := OrganizationInput(" uniswap ")
	require.NoError(t, err)
	assert.EqualValues(t, map[string]interface{}{"input": map[string]interface{}{"slug": "uniswap"}}, actual)

	_, err = OrganizationInput("")
	assert.True(t, errs.Is(err, errs.Validation))
}

func TestDelegatesInput(t *testing.T) {
	actual, err := DelegatesInput(orgID, DelegatesArgs{
		Page:     Page{Limit: conv.Pointer(5), BeforeCursor: "prev"},
		HasVotes: conv.Pointer(true),
	})
	require.NoError(t, err)
	assert.EqualValues(t, map[string]interface{}{"input": map[string]interface{}{
		"filters": map[string]interface{}{"organizationId": orgID, "hasVotes": true},
		"sort":    map[string]interface{}{"sortBy": "votes", "isDescending": true},
		"page":    map[string]interface{}{"limit": 5, "beforeCursor": "prev"},
	}}, actual)

	_, err = DelegatesInput("", DelegatesArgs{})
	require.Error(t, err)
	assert.EqualValues(t, "Either organizationId or organizationSlug must be provided", err.Error())
}

func TestDelegatorsInput(t *testing.T) {
	var testCases = []struct {
		description    string
		organizationID string
		args           DelegatorsArgs
		expect         map[string]interface{}
		expectErr      string
	}{
		{
			description:    "organization filter with default sort",
			organizationID: orgID,
			args:           DelegatorsArgs{Address: "0xabc"},
			expect: map[string]interface{}{"input": map[string]interface{}{
				"filters": map[string]interface{}{"address": "0xabc", "organizationId": orgID},
				"sort":    map[string]interface{}{"sortBy": "id", "isDescending": true},
				"page":    map[string]interface{}{"limit": 20},
			}},
		},
		{
			description: "governor filter ascending by votes",
			args:        DelegatorsArgs{Address: "0xabc", GovernorID: "eip155:1:0xdef", SortBy: "votes", IsDescending: conv.Pointer(false)},
			expect: map[string]interface{}{"input": map[string]interface{}{
				"filters": map[string]interface{}{"address": "0xabc", "governorId": "eip155:1:0xdef"},
				"sort":    map[string]interface{}{"sortBy": "votes", "isDescending": false},
				"page":    map[string]interface{}{"limit": 20},
			}},
		},
		{
			description: "missing scope",
			args:        DelegatorsArgs{Address: "0xabc"},
			expectErr:   "Either organizationId/organizationSlug or governorId must be provided",
		},
		{
			description:    "missing address",
			organizationID: orgID,
			expectErr:      "address is required",
		},
		{
			description:    "bad sort",
			organizationID: orgID,
			args:           DelegatorsArgs{Address: "0xabc", SortBy: "name"},
			expectErr:      `sortBy must be one of id, votes, got "name"`,
		},
	}
	for _, testCase := range testCases {
		actual, err := DelegatorsInput(testCase.organizationID, testCase.args)
		if testCase.expectErr != "" {
			require.Error(t, err, testCase.description)
			assert.EqualValues(t, testCase.expectErr, err.Error(), testCase.description)
			assert.True(t, errs.Is(err, errs.Validation), testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestProposalsInput(t *testing.T) {
	actual, err := ProposalsInput(orgID, ProposalsArgs{IncludeArchived: conv.Pointer(true), IsDraft: conv.Pointer(false)})
	require.NoError(t, err)
	assert.EqualValues(t, map[string]interface{}{"input": map[string]interface{}{
		"filters": map[string]interface{}{"organizationId": orgID, "includeArchived": true, "isDraft": false},
		"sort":    map[string]interface{}{"sortBy": "id", "isDescending": true},
		"page":    map[string]interface{}{"limit": 20},
	}}, actual)

	_, err = ProposalsInput("", ProposalsArgs{})
	require.Error(t, err)
	assert.EqualValues(t, "Either organizationId, organizationSlug, or governorId must be provided to list proposals", err.Error())
}

func TestProposalInput(t *testing.T) {
	var testCases = []struct {
		description string
		args        ProposalArgs
		expect      map[string]interface{}
		expectErr   string
	}{
		{
			description: "global id",
			args:        ProposalArgs{ID: "123", IsLatest: conv.Pointer(true)},
			expect:      map[string]interface{}{"input": map[string]interface{}{"id": "123", "isLatest": true}},
		},
		{
			description: "onchain id with governor",
			args:        ProposalArgs{OnchainID: "7", GovernorID: "eip155:1:0xabc"},
			expect:      map[string]interface{}{"input": map[string]interface{}{"onchainId": "7", "governorId": "eip155:1:0xabc"}},
		},
		{
			description: "onchain id without governor",
			args:        ProposalArgs{OnchainID: "7"},
			expectErr:   "governorId is required when fetching a proposal by onchainId",
		},
		{
			description: "nothing",
			expectErr:   "Must provide either id or both onchainId and governorId",
		},
	}
	for _, testCase := range testCases {
		actual, err := ProposalInput(testCase.args)
		if testCase.expectErr != "" {
			require.Error(t, err, testCase.description)
			assert.EqualValues(t, testCase.expectErr, err.Error(), testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestVotesInput(t *testing.T) {
	actual, err := VotesInput("0xabc", nil, Page{})
	require.NoError(t, err)
	assert.EqualValues(t, map[string]interface{}{"input": map[string]interface{}{
		"filters": map[string]interface{}{"proposalIds": []string{}, "voter": "0xabc"},
		"page":    map[string]interface{}{"limit": 20},
	}}, actual)
}

func TestAddressProposalsInput(t *testing.T) {
	created, err := AddressCreatedProposalsInput("0xabc", "", Page{})
	require.NoError(t, err)
	assert.EqualValues(t, map[string]interface{}{"proposer": "0xabc"}, created["input"].(map[string]interface{})["filters"])

	created, err = AddressCreatedProposalsInput("0xabc", orgID, Page{})
	require.NoError(t, err)
	assert.EqualValues(t, map[string]interface{}{"proposer": "0xabc", "organizationId": orgID}, created["input"].(map[string]interface{})["filters"])

	_, err = AddressCreatedProposalsInput("", orgID, Page{})
	assert.True(t, errs.Is(err, errs.Validation))

	dao, err := AddressDAOProposalsInput("0xabc", orgID, Page{Limit: conv.Pointer(3)})
	require.NoError(t, err)
	assert.EqualValues(t, "0xabc", dao["address"])
	assert.EqualValues(t, map[string]interface{}{"organizationId": orgID}, dao["input"].(map[string]interface{})["filters"])

	_, err = AddressDAOProposalsInput("0xabc", "", Page{})
	assert.True(t, errs.Is(err, errs.Validation))
}
