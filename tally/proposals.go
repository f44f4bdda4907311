package tally

import (
	"context"

	"github.com/viant/tally-mcp/tally/errs"
	"github.com/viant/tally-mcp/tally/identity"
	"github.com/viant/tally-mcp/tally/model"
	"github.com/viant/tally-mcp/tally/query"
)

// ProposalsRequest scopes list-proposals to an organization, a governor, or both.
type ProposalsRequest struct {
	Organization identity.Ref
	query.ProposalsArgs
}

// ListProposals returns one page of proposals.
func (s *Service) ListProposals(ctx context.Context, req ProposalsRequest) (*List[model.Proposal], error) {
	ref, governorID := splitScope(req.Organization)
	if req.GovernorID == "" {
		req.GovernorID = governorID
	}
	if ref.IsZero() && req.GovernorID == "" {
		_, err := query.ProposalsInput("", req.ProposalsArgs)
		return nil, err
	}
	organizationID, err := s.resolveOptional(ctx, ref)
	if err != nil {
		return nil, wrap("proposals", err)
	}
	return s.proposals(ctx, organizationID, req.ProposalsArgs)
}

func (s *Service) proposals(ctx context.Context, organizationID string, args query.ProposalsArgs) (*List[model.Proposal], error) {
	variables, err := query.ProposalsInput(organizationID, args)
	if err != nil {
		return nil, err
	}
	var data struct {
		Proposals *connection[model.Proposal] `json:"proposals"`
	}
	if err = s.requester.Request(ctx, query.Proposals, variables, &data); err != nil {
		return nil, wrap("proposals", err)
	}
	return data.Proposals.list(), nil
}

// GetProposal returns one proposal by global id or by (onchainId, governorId).
func (s *Service) GetProposal(ctx context.Context, args query.ProposalArgs) (*model.Proposal, error) {
	variables, err := query.ProposalInput(args)
	if err != nil {
		return nil, err
	}
	var data struct {
		Proposal *model.Proposal `json:"proposal"`
	}
	if err = s.requester.Request(ctx, query.Proposal, variables, &data); err != nil {
		return nil, wrap("proposal", err)
	}
	if data.Proposal == nil {
		key := args.ID
		if key == "" {
			key = args.OnchainID + "@" + args.GovernorID
		}
		return nil, wrap("proposal", errs.NotFoundf("Proposal not found: %s", key))
	}
	return data.Proposal, nil
}
