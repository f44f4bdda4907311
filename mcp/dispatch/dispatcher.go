package dispatch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	mcpctx "github.com/viant/tally-mcp/mcp/context"
	"github.com/viant/tally-mcp/mcp/tool"
	"github.com/viant/tally-mcp/tally"
	"github.com/viant/tally-mcp/tally/errs"
	"github.com/viant/tally-mcp/tally/format"
	"github.com/viant/tally-mcp/tally/identity"
	"github.com/viant/tally-mcp/tally/query"
)

// Dispatcher routes typed tool requests to the tally service.
type Dispatcher struct {
	service *tally.Service
	logger  *slog.Logger
	metrics *Metrics
}

// Option customizes a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the call logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) { d.logger = logger }
}

// WithMetrics sets tool call metrics.
func WithMetrics(metrics *Metrics) Option {
	return func(d *Dispatcher) { d.metrics = metrics }
}

// New creates a dispatcher for service.
func New(service *tally.Service, opts ...Option) *Dispatcher {
	ret := &Dispatcher{service: service}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.logger == nil {
		ret.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return ret
}

// Execute runs the named tool with an untyped argument bag and returns the
// rendered text. Failures read "Error <action>: <detail>".
func (d *Dispatcher) Execute(ctx context.Context, name string, args map[string]interface{}) (string, error) {
	definition, ok := tool.Lookup(name)
	if !ok {
		err := errs.NewUnknownTool(name)
		d.metrics.observe(name, err, 0)
		d.logger.WarnContext(ctx, "unknown tool", "tool", name)
		return "", err
	}
	req, err := tool.Decode(name, args)
	if err != nil {
		d.metrics.observe(name, err, 0)
		d.logger.DebugContext(ctx, "invalid arguments", "tool", name, "error", err)
		return "", fmt.Errorf("Error %s: %w", definition.Action, err)
	}
	result, err := d.Run(ctx, req)
	if err != nil {
		return "", fmt.Errorf("Error %s: %w", definition.Action, err)
	}
	return result.String(), nil
}

// Run executes an already decoded request.
func (d *Dispatcher) Run(ctx context.Context, req tool.Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	requestID, ok := mcpctx.RequestID(ctx)
	if !ok {
		ctx = mcpctx.WithRequestID(ctx, "")
		requestID, _ = mcpctx.RequestID(ctx)
	}
	name := req.Tool().String()
	started := time.Now()
	result, err := d.run(ctx, req)
	elapsed := time.Since(started)
	d.metrics.observe(name, err, elapsed)
	if err != nil {
		d.logger.ErrorContext(ctx, "tool call failed", "tool", name, "requestId", requestID, "elapsed", elapsed, "error", err)
		return nil, err
	}
	d.logger.DebugContext(ctx, "tool call", "tool", name, "requestId", requestID, "elapsed", elapsed)
	return result, nil
}

func (d *Dispatcher) run(ctx context.Context, req tool.Request) (*Result, error) {
	switch r := req.(type) {
	case *tool.ListDAOs:
		list, err := d.service.ListDAOs(ctx, query.OrganizationsArgs{Page: page(r.Paging), SortBy: r.SortBy})
		if err != nil {
			return nil, err
		}
		return listResult(format.DAOList(list.Items), list), nil
	case *tool.GetDAO:
		org, err := d.service.GetDAO(ctx, r.Slug)
		if err != nil {
			return nil, err
		}
		return &Result{Text: format.DAO(org)}, nil
	case *tool.ListDelegates:
		list, err := d.service.ListDelegates(ctx, tally.DelegatesRequest{
			Organization: identity.FromCombined(r.OrganizationIDOrSlug),
			DelegatesArgs: query.DelegatesArgs{
				Page:                page(r.Paging),
				HasVotes:            r.HasVotes,
				HasDelegators:       r.HasDelegators,
				IsSeekingDelegation: r.IsSeekingDelegation,
			},
		})
		if err != nil {
			return nil, err
		}
		return listResult(format.DelegatesList(list.Items), list), nil
	case *tool.GetDelegators:
		list, err := d.service.GetDelegators(ctx, tally.DelegatorsRequest{
			Organization: organization(r.Organization),
			DelegatorsArgs: query.DelegatorsArgs{
				Page:         page(r.Paging),
				Address:      r.Address,
				GovernorID:   r.GovernorID,
				SortBy:       r.SortBy,
				IsDescending: r.IsDescending,
			},
		})
		if err != nil {
			return nil, err
		}
		return listResult(format.DelegatorsList(list.Items), list), nil
	case *tool.ListProposals:
		list, err := d.service.ListProposals(ctx, tally.ProposalsRequest{
			Organization: organization(r.Organization),
			ProposalsArgs: query.ProposalsArgs{
				Page:            page(r.Paging),
				GovernorID:      r.GovernorID,
				IncludeArchived: r.IncludeArchived,
				IsDraft:         r.IsDraft,
				IsDescending:    r.IsDescending,
			},
		})
		if err != nil {
			return nil, err
		}
		return listResult(format.ProposalsList(list.Items), list), nil
	case *tool.GetProposal:
		proposal, err := d.service.GetProposal(ctx, query.ProposalArgs{
			ID:              r.ID,
			OnchainID:       r.OnchainID,
			GovernorID:      r.GovernorID,
			IncludeArchived: r.IncludeArchived,
			IsLatest:        r.IsLatest,
		})
		if err != nil {
			return nil, err
		}
		return &Result{Text: format.Proposal(proposal)}, nil
	case *tool.GetAddressVotes:
		list, err := d.service.GetAddressVotes(ctx, addressRequest(r.Address, r.Organization, r.Paging))
		if err != nil {
			return nil, err
		}
		return listResult(format.VotesList(list.Items), list), nil
	case *tool.GetAddressCreatedProposals:
		list, err := d.service.GetAddressCreatedProposals(ctx, addressRequest(r.Address, r.Organization, r.Paging))
		if err != nil {
			return nil, err
		}
		return listResult(format.AddressProposalsList(list.Items), list), nil
	case *tool.GetAddressDAOProposals:
		list, err := d.service.GetAddressDAOProposals(ctx, addressRequest(r.Address, r.Organization, r.Paging))
		if err != nil {
			return nil, err
		}
		return listResult(format.AddressProposalsList(list.Items), list), nil
	}
	return nil, errs.NewUnknownTool(fmt.Sprintf("%T", req))
}

type cursorer interface {
	NextCursor() (string, bool)
}

func listResult(text string, list cursorer) *Result {
	ret := &Result{Text: text}
	if cursor, ok := list.NextCursor(); ok {
		ret.NextCursor = cursor
	}
	return ret
}

func page(p tool.Paging) query.Page {
	return query.Page{Limit: p.Limit, AfterCursor: p.AfterCursor, BeforeCursor: p.BeforeCursor}
}

func organization(o tool.Organization) identity.Ref {
	return identity.Ref{ID: o.OrganizationID, Slug: o.OrganizationSlug}
}

func addressRequest(address string, o tool.Organization, p tool.Paging) tally.AddressRequest {
	return tally.AddressRequest{Address: address, Organization: organization(o), Page: page(p)}
}
