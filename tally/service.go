package tally

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/viant/tally-mcp/tally/errs"
	"github.com/viant/tally-mcp/tally/graphql"
	"github.com/viant/tally-mcp/tally/identity"
	"github.com/viant/tally-mcp/tally/model"
	"github.com/viant/tally-mcp/tally/query"
)

// List is one page of a list endpoint.
type List[T any] struct {
	Items    []T
	PageInfo model.PageInfo
}

// NextCursor returns the cursor continuing this list, if any.
func (l *List[T]) NextCursor() (string, bool) {
	if l == nil {
		return "", false
	}
	return l.PageInfo.Next()
}

type connection[T any] struct {
	Nodes    []T            `json:"nodes"`
	PageInfo model.PageInfo `json:"pageInfo"`
}

func (c *connection[T]) list() *List[T] {
	if c == nil {
		return &List[T]{Items: []T{}}
	}
	items := c.Nodes
	if items == nil {
		items = []T{}
	}
	return &List[T]{Items: items, PageInfo: c.PageInfo}
}

// Service exposes the governance resources.
type Service struct {
	requester graphql.Requester
	resolver  *identity.Resolver
	logger    *slog.Logger
}

// Option customizes a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// New creates a service backed by requester.
func New(requester graphql.Requester, opts ...Option) *Service {
	ret := &Service{requester: requester}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.logger == nil {
		ret.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	ret.resolver = identity.NewResolver(ret)
	return ret
}

// Resolver returns the identifier resolver bound to this service.
func (s *Service) Resolver() *identity.Resolver {
	return s.resolver
}

// OrganizationBySlug fetches an organization, returning nil when the upstream
// has no record for slug.
func (s *Service) OrganizationBySlug(ctx context.Context, slug string) (*model.Organization, error) {
	variables, err := query.OrganizationInput(slug)
	if err != nil {
		return nil, err
	}
	var data struct {
		Organization *model.Organization `json:"organization"`
	}
	if err = s.requester.Request(ctx, query.Organization, variables, &data); err != nil {
		if graphql.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return data.Organization, nil
}

// wrap prefixes resolution and upstream failures with the resource name.
// Validation errors are returned as raised.
func wrap(resource string, err error) error {
	if err == nil {
		return nil
	}
	if errs.Is(err, errs.Validation) {
		return err
	}
	return fmt.Errorf("Failed to fetch %s: %w", resource, err)
}

// splitScope separates a governor-shaped organization id into the governor slot
// so the same classification applies to every caller.
func splitScope(ref identity.Ref) (identity.Ref, string) {
	governorID := strings.TrimSpace(ref.GovernorID)
	if identity.Classify(ref.ID) == identity.Governor {
		if governorID == "" {
			governorID = strings.TrimSpace(ref.ID)
		}
		ref.ID = ""
	}
	ref.GovernorID = ""
	return ref, governorID
}

func (s *Service) resolveOptional(ctx context.Context, ref identity.Ref) (string, error) {
	if ref.IsZero() {
		return "", nil
	}
	return s.resolver.ResolveOrganizationID(ctx, ref)
}
