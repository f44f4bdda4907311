package tally

import (
	"context"

	"github.com/viant/tally-mcp/tally/identity"
	"github.com/viant/tally-mcp/tally/model"
	"github.com/viant/tally-mcp/tally/query"
)

// DelegatesRequest scopes list-delegates to one organization.
type DelegatesRequest struct {
	Organization identity.Ref
	query.DelegatesArgs
}

// ListDelegates returns delegates of an organization sorted by voting power.
func (s *Service) ListDelegates(ctx context.Context, req DelegatesRequest) (*List[model.Delegate], error) {
	organizationID, err := s.resolveOptional(ctx, req.Organization)
	if err != nil {
		return nil, wrap("delegates", err)
	}
	variables, err := query.DelegatesInput(organizationID, req.DelegatesArgs)
	if err != nil {
		return nil, err
	}
	var data struct {
		Delegates *connection[model.Delegate] `json:"delegates"`
	}
	if err = s.requester.Request(ctx, query.Delegates, variables, &data); err != nil {
		return nil, wrap("delegates", err)
	}
	return data.Delegates.list(), nil
}

// DelegatorsRequest scopes get-delegators to an organization or a governor.
// A governor-shaped Organization.ID is treated as a governor id.
type DelegatorsRequest struct {
	Organization identity.Ref
	query.DelegatorsArgs
}

// GetDelegators returns accounts delegating to an address.
func (s *Service) GetDelegators(ctx context.Context, req DelegatorsRequest) (*List[model.Delegation], error) {
	ref, governorID := splitScope(req.Organization)
	if req.GovernorID == "" {
		req.GovernorID = governorID
	}
	if err := req.DelegatorsArgs.Validate(!ref.IsZero()); err != nil {
		return nil, err
	}
	organizationID, err := s.resolveOptional(ctx, ref)
	if err != nil {
		return nil, wrap("delegators", err)
	}
	variables, err := query.DelegatorsInput(organizationID, req.DelegatorsArgs)
	if err != nil {
		return nil, err
	}
	var data struct {
		Delegators *connection[model.Delegation] `json:"delegators"`
	}
	if err = s.requester.Request(ctx, query.Delegators, variables, &data); err != nil {
		return nil, wrap("delegators", err)
	}
	return data.Delegators.list(), nil
}
