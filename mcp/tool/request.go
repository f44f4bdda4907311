package tool

import (
	"github.com/viant/tally-mcp/tally/errs"
)

// Request is the typed form of one tool call. Exactly one concrete type exists
// per tool.
type Request interface {
	Tool() Name
	Validate() error
}

// Paging carries the shared cursor arguments.
type Paging struct {
	Limit        *int   `json:"limit,omitempty"`
	AfterCursor  string `json:"afterCursor,omitempty"`
	BeforeCursor string `json:"beforeCursor,omitempty"`
}

// Organization carries the separate organization reference arguments.
type Organization struct {
	OrganizationID   string `json:"organizationId,omitempty"`
	OrganizationSlug string `json:"organizationSlug,omitempty"`
	GovernorID       string `json:"governorId,omitempty"`
}

type ListDAOs struct {
	Paging
	SortBy string `json:"sortBy,omitempty"`
}

func (r *ListDAOs) Tool() Name      { return ListDAOsTool }
func (r *ListDAOs) Validate() error { return nil }

type GetDAO struct {
	Slug string `json:"slug"`
}

func (r *GetDAO) Tool() Name { return GetDAOTool }
func (r *GetDAO) Validate() error {
	if r.Slug == "" {
		return errs.Validationf("slug is required and must be a string")
	}
	return nil
}

type ListDelegates struct {
	OrganizationIDOrSlug string `json:"organizationIdOrSlug"`
	Paging
	HasVotes            *bool `json:"hasVotes,omitempty"`
	HasDelegators       *bool `json:"hasDelegators,omitempty"`
	IsSeekingDelegation *bool `json:"isSeekingDelegation,omitempty"`
}

func (r *ListDelegates) Tool() Name { return ListDelegatesTool }
func (r *ListDelegates) Validate() error {
	if r.OrganizationIDOrSlug == "" {
		return errs.Validationf("organizationIdOrSlug is required and must be a string")
	}
	return nil
}

type GetDelegators struct {
	Address string `json:"address"`
	Organization
	Paging
	SortBy       string `json:"sortBy,omitempty"`
	IsDescending *bool  `json:"isDescending,omitempty"`
}

func (r *GetDelegators) Tool() Name { return GetDelegatorsTool }
func (r *GetDelegators) Validate() error {
	if r.Address == "" {
		return errs.Validationf("address is required and must be a string")
	}
	return nil
}

type ListProposals struct {
	Organization
	Paging
	IncludeArchived *bool `json:"includeArchived,omitempty"`
	IsDraft         *bool `json:"isDraft,omitempty"`
	IsDescending    *bool `json:"isDescending,omitempty"`
}

func (r *ListProposals) Tool() Name      { return ListProposalsTool }
func (r *ListProposals) Validate() error { return nil }

type GetProposal struct {
	ID              string `json:"id,omitempty"`
	OnchainID       string `json:"onchainId,omitempty"`
	GovernorID      string `json:"governorId,omitempty"`
	IncludeArchived *bool  `json:"includeArchived,omitempty"`
	IsLatest        *bool  `json:"isLatest,omitempty"`
}

func (r *GetProposal) Tool() Name { return GetProposalTool }

// Validate requires exactly one of the two identifying shapes.
func (r *GetProposal) Validate() error {
	if r.ID != "" && r.OnchainID == "" {
		return nil
	}
	if r.ID == "" && r.OnchainID != "" && r.GovernorID != "" {
		return nil
	}
	return errs.Validationf("Must provide either id or both onchainId and governorId")
}

type GetAddressVotes struct {
	Address string `json:"address"`
	Organization
	Paging
}

func (r *GetAddressVotes) Tool() Name { return GetAddressVotesTool }
func (r *GetAddressVotes) Validate() error {
	if r.Address == "" {
		return errs.Validationf("address is required and must be a string")
	}
	if r.OrganizationSlug == "" && r.OrganizationID == "" {
		return errs.Validationf("organizationSlug is required and must be a string")
	}
	return nil
}

type GetAddressCreatedProposals struct {
	Address string `json:"address"`
	Organization
	Paging
}

func (r *GetAddressCreatedProposals) Tool() Name { return GetAddressCreatedProposalsTool }
func (r *GetAddressCreatedProposals) Validate() error {
	if r.Address == "" {
		return errs.Validationf("address is required and must be a string")
	}
	return nil
}

type GetAddressDAOProposals struct {
	Address string `json:"address"`
	Organization
	Paging
}

func (r *GetAddressDAOProposals) Tool() Name { return GetAddressDAOProposalsTool }
func (r *GetAddressDAOProposals) Validate() error {
	if r.Address == "" {
		return errs.Validationf("address is required and must be a string")
	}
	if r.OrganizationSlug == "" && r.OrganizationID == "" {
		return errs.Validationf("Either organizationId or organizationSlug must be provided")
	}
	return nil
}

// New returns an empty request for name, used to decode workflow action inputs.
func New(name Name) (Request, bool) {
	switch name {
	case ListDAOsTool:
		return &ListDAOs{}, true
	case GetDAOTool:
		return &GetDAO{}, true
	case ListDelegatesTool:
		return &ListDelegates{}, true
	case GetDelegatorsTool:
		return &GetDelegators{}, true
	case ListProposalsTool:
		return &ListProposals{}, true
	case GetProposalTool:
		return &GetProposal{}, true
	case GetAddressVotesTool:
		return &GetAddressVotes{}, true
	case GetAddressCreatedProposalsTool:
		return &GetAddressCreatedProposals{}, true
	case GetAddressDAOProposalsTool:
		return &GetAddressDAOProposals{}, true
	}
	return nil, false
}
