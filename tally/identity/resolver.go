package identity

import (
	"context"
	"strings"

	"github.com/viant/tally-mcp/tally/errs"
	"github.com/viant/tally-mcp/tally/model"
)

// Ref is an organization reference as supplied by a caller. Any field may be blank.
type Ref struct {
	ID         string
	Slug       string
	GovernorID string
}

// IsZero reports whether no identifier was supplied.
func (r Ref) IsZero() bool {
	return strings.TrimSpace(r.ID) == "" && strings.TrimSpace(r.Slug) == "" && strings.TrimSpace(r.GovernorID) == ""
}

// FromCombined classifies a single organizationIdOrSlug value into a Ref.
func FromCombined(value string) Ref {
	value = strings.TrimSpace(value)
	switch Classify(value) {
	case Governor:
		return Ref{GovernorID: value}
	case OrganizationID:
		return Ref{ID: value}
	case Slug:
		return Ref{Slug: value}
	}
	return Ref{}
}

// Lookup fetches an organization by slug.
type Lookup interface {
	OrganizationBySlug(ctx context.Context, slug string) (*model.Organization, error)
}

// Resolver resolves references to organization ids. It caches nothing: callers
// that need the same organization for several steps resolve once and reuse the id.
type Resolver struct {
	lookup Lookup
}

// NewResolver creates a resolver backed by lookup.
func NewResolver(lookup Lookup) *Resolver {
	return &Resolver{lookup: lookup}
}

// ResolveOrganizationID returns the organization id for ref. Numeric ids are
// returned without a network call. A governor id on its own cannot be mapped
// back to an organization and fails with AmbiguousIdentifier; when a slug is
// also present the slug wins and the governor id is ignored.
func (r *Resolver) ResolveOrganizationID(ctx context.Context, ref Ref) (string, error) {
	id := strings.TrimSpace(ref.ID)
	slug := strings.TrimSpace(ref.Slug)
	governorID := strings.TrimSpace(ref.GovernorID)

	switch Classify(id) {
	case OrganizationID:
		return id, nil
	case Governor:
		if governorID == "" {
			governorID = id
		}
	case Slug:
		if slug == "" {
			slug = id
		}
	}

	if slug != "" {
		org, err := r.Organization(ctx, slug)
		if err != nil {
			return "", err
		}
		return org.ID, nil
	}
	if governorID != "" {
		return "", errs.Ambiguousf("Organization slug is required when using a governor ID (%s): governor IDs cannot be resolved to an organization", governorID)
	}
	return "", errs.Validationf("organizationId or organizationSlug must be provided")
}

// Organization fetches the organization for slug, failing with NotFound when
// the lookup returns no record.
func (r *Resolver) Organization(ctx context.Context, slug string) (*model.Organization, error) {
	org, err := r.lookup.OrganizationBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if org == nil || org.ID == "" {
		return nil, errs.NotFoundf("DAO not found: %s", slug)
	}
	return org, nil
}
