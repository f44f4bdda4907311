package tally

import (
	"context"

	"github.com/viant/tally-mcp/tally/errs"
	"github.com/viant/tally-mcp/tally/model"
	"github.com/viant/tally-mcp/tally/query"
)

// ListDAOs returns one page of organizations, each enriched.
func (s *Service) ListDAOs(ctx context.Context, args query.OrganizationsArgs) (*List[model.Organization], error) {
	variables, err := query.OrganizationsInput(args)
	if err != nil {
		return nil, err
	}
	var data struct {
		Organizations *connection[model.Organization] `json:"organizations"`
	}
	if err = s.requester.Request(ctx, query.Organizations, variables, &data); err != nil {
		return nil, wrap("DAOs", err)
	}
	ret := data.Organizations.list()
	for i := range ret.Items {
		ret.Items[i].Enrich()
	}
	return ret, nil
}

// GetDAO returns the enriched organization for slug.
func (s *Service) GetDAO(ctx context.Context, slug string) (*model.Organization, error) {
	if _, err := query.OrganizationInput(slug); err != nil {
		return nil, err
	}
	org, err := s.resolver.Organization(ctx, slug)
	if err != nil {
		if errs.Is(err, errs.NotFound) {
			return nil, err
		}
		return nil, wrap("DAO", err)
	}
	org.Enrich()
	return org, nil
}
