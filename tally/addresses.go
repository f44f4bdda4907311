package tally

import (
	"context"

	"github.com/viant/tally-mcp/internal/conv"
	"github.com/viant/tally-mcp/tally/errs"
	"github.com/viant/tally-mcp/tally/identity"
	"github.com/viant/tally-mcp/tally/model"
	"github.com/viant/tally-mcp/tally/page"
	"github.com/viant/tally-mcp/tally/query"
)

// AddressRequest scopes an address query. Organization is optional for
// created proposals and required otherwise.
type AddressRequest struct {
	Address      string
	Organization identity.Ref
	query.Page
}

// GetAddressVotes returns the votes cast by an address on an organization's
// proposals. The organization is resolved once, its proposals are walked in
// full, then the votes are fetched.
func (s *Service) GetAddressVotes(ctx context.Context, req AddressRequest) (*List[model.Vote], error) {
	if req.Address == "" {
		return nil, errs.Validationf("address is required to fetch address votes")
	}
	if req.Organization.IsZero() {
		return nil, errs.Validationf("organizationSlug is required to fetch address votes")
	}
	organizationID, err := s.resolver.ResolveOrganizationID(ctx, req.Organization)
	if err != nil {
		return nil, wrap("address votes", err)
	}
	proposalIDs, err := s.proposalIDs(ctx, organizationID)
	if err != nil {
		return nil, wrap("address votes", err)
	}
	if len(proposalIDs) == 0 {
		return &List[model.Vote]{Items: []model.Vote{}}, nil
	}
	variables, err := query.VotesInput(req.Address, proposalIDs, req.Page)
	if err != nil {
		return nil, err
	}
	var data struct {
		Votes *connection[model.Vote] `json:"votes"`
	}
	if err = s.requester.Request(ctx, query.Votes, variables, &data); err != nil {
		return nil, wrap("address votes", err)
	}
	return data.Votes.list(), nil
}

func (s *Service) proposalIDs(ctx context.Context, organizationID string) ([]string, error) {
	var ids []string
	var fetch page.Fetch[model.Proposal] = func(ctx context.Context, afterCursor string) ([]model.Proposal, model.PageInfo, error) {
		list, err := s.proposals(ctx, organizationID, query.ProposalsArgs{
			Page: query.Page{Limit: conv.Pointer(page.MaxLimit), AfterCursor: afterCursor},
		})
		if err != nil {
			return nil, model.PageInfo{}, err
		}
		return list.Items, list.PageInfo, nil
	}
	err := page.Walk(ctx, fetch, func(items []model.Proposal) error {
		for _, item := range items {
			ids = append(ids, item.ID)
		}
		s.logger.DebugContext(ctx, "walked proposal page", "organizationId", organizationID, "items", len(items), "total", len(ids))
		return nil
	})
	return ids, err
}

// GetAddressCreatedProposals returns proposals created by an address,
// optionally narrowed to one organization.
func (s *Service) GetAddressCreatedProposals(ctx context.Context, req AddressRequest) (*List[model.Proposal], error) {
	if req.Address == "" {
		return nil, errs.Validationf("address is required to fetch created proposals")
	}
	organizationID, err := s.resolveOptional(ctx, req.Organization)
	if err != nil {
		return nil, wrap("created proposals", err)
	}
	variables, err := query.AddressCreatedProposalsInput(req.Address, organizationID, req.Page)
	if err != nil {
		return nil, err
	}
	return s.addressProposals(ctx, "created proposals", query.AddressCreatedProposals, variables)
}

// GetAddressDAOProposals returns an organization's proposals annotated with
// the address's participation.
func (s *Service) GetAddressDAOProposals(ctx context.Context, req AddressRequest) (*List[model.Proposal], error) {
	if req.Address == "" {
		return nil, errs.Validationf("address is required to fetch DAO proposals")
	}
	if req.Organization.IsZero() {
		return nil, errs.Validationf("Either organizationId or organizationSlug must be provided")
	}
	organizationID, err := s.resolver.ResolveOrganizationID(ctx, req.Organization)
	if err != nil {
		return nil, wrap("address DAO proposals", err)
	}
	variables, err := query.AddressDAOProposalsInput(req.Address, organizationID, req.Page)
	if err != nil {
		return nil, err
	}
	return s.addressProposals(ctx, "address DAO proposals", query.AddressDAOProposals, variables)
}

func (s *Service) addressProposals(ctx context.Context, resource, document string, variables map[string]interface{}) (*List[model.Proposal], error) {
	var data struct {
		Proposals *connection[model.Proposal] `json:"proposals"`
	}
	if err := s.requester.Request(ctx, document, variables, &data); err != nil {
		return nil, wrap(resource, err)
	}
	return data.Proposals.list(), nil
}
