package query

import (
	"strings"

	"github.com/viant/tally-mcp/tally/errs"
	"github.com/viant/tally-mcp/tally/page"
)

// Natural sort keys per resource.
const (
	SortPopular = "popular"
	SortVotes   = "votes"
	SortID      = "id"
)

// OrganizationSorts are the sort keys accepted by list-daos.
var OrganizationSorts = []string{"id", "name", "explore", "popular"}

// DelegatorSorts are the sort keys accepted by get-delegators.
var DelegatorSorts = []string{SortID, SortVotes}

// Page carries the caller's paging arguments.
type Page struct {
	Limit        *int
	AfterCursor  string
	BeforeCursor string
}

func (p Page) input() map[string]interface{} {
	return page.New(p.Limit, p.AfterCursor, p.BeforeCursor).Map()
}

func sort(sortBy string, isDescending *bool) map[string]interface{} {
	descending := true
	if isDescending != nil {
		descending = *isDescending
	}
	return map[string]interface{}{"sortBy": sortBy, "isDescending": descending}
}

func setBool(filters map[string]interface{}, key string, value *bool) {
	if value != nil {
		filters[key] = *value
	}
}

func oneOf(value string, allowed []string) bool {
	for _, candidate := range allowed {
		if value == candidate {
			return true
		}
	}
	return false
}

func variables(input map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{"input": input}
}

// OrganizationsArgs are the list-daos arguments.
type OrganizationsArgs struct {
	Page
	SortBy string
}

// OrganizationsInput builds the list-daos variables.
func OrganizationsInput(args OrganizationsArgs) (map[string]interface{}, error) {
	sortBy := strings.TrimSpace(args.SortBy)
	if sortBy == "" {
		sortBy = SortPopular
	}
	if !oneOf(sortBy, OrganizationSorts) {
		return nil, errs.Validationf("sortBy must be one of %s, got %q", strings.Join(OrganizationSorts, ", "), sortBy)
	}
	return variables(map[string]interface{}{
		"sort": sort(sortBy, nil),
		"page": args.Page.input(),
	}), nil
}

// OrganizationInput builds the get-dao variables.
func OrganizationInput(slug string) (map[string]interface{}, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, errs.Validationf("slug is required")
	}
	return variables(map[string]interface{}{"slug": slug}), nil
}

// DelegatesArgs are the list-delegates filters.
type DelegatesArgs struct {
	Page
	HasVotes            *bool
	HasDelegators       *bool
	IsSeekingDelegation *bool
}

// DelegatesInput builds the list-delegates variables for a resolved organization.
func DelegatesInput(organizationID string, args DelegatesArgs) (map[string]interface{}, error) {
	if organizationID == "" {
		return nil, errs.Validationf("Either organizationId or organizationSlug must be provided")
	}
	filters := map[string]interface{}{"organizationId": organizationID}
	setBool(filters, "hasVotes", args.HasVotes)
	setBool(filters, "hasDelegators", args.HasDelegators)
	setBool(filters, "isSeekingDelegation", args.IsSeekingDelegation)
	return variables(map[string]interface{}{
		"filters": filters,
		"sort":    sort(SortVotes, nil),
		"page":    args.Page.input(),
	}), nil
}

// DelegatorsArgs are the get-delegators arguments.
type DelegatorsArgs struct {
	Page
	Address      string
	GovernorID   string
	SortBy       string
	IsDescending *bool
}

// Validate checks the arguments before any organization lookup. hasOrganization
// reports whether an organization reference accompanies them.
func (a DelegatorsArgs) Validate(hasOrganization bool) error {
	if strings.TrimSpace(a.Address) == "" {
		return errs.Validationf("address is required")
	}
	if !hasOrganization && a.GovernorID == "" {
		return errs.Validationf("Either organizationId/organizationSlug or governorId must be provided")
	}
	if a.SortBy != "" && !oneOf(a.SortBy, DelegatorSorts) {
		return errs.Validationf("sortBy must be one of %s, got %q", strings.Join(DelegatorSorts, ", "), a.SortBy)
	}
	return nil
}

// DelegatorsInput builds the get-delegators variables. organizationID may be
// blank when a governor id is supplied.
func DelegatorsInput(organizationID string, args DelegatorsArgs) (map[string]interface{}, error) {
	if err := args.Validate(organizationID != ""); err != nil {
		return nil, err
	}
	sortBy := args.SortBy
	if sortBy == "" {
		sortBy = SortID
	}
	filters := map[string]interface{}{"address": args.Address}
	if organizationID != "" {
		filters["organizationId"] = organizationID
	}
	if args.GovernorID != "" {
		filters["governorId"] = args.GovernorID
	}
	return variables(map[string]interface{}{
		"filters": filters,
		"sort":    sort(sortBy, args.IsDescending),
		"page":    args.Page.input(),
	}), nil
}

// ProposalsArgs are the list-proposals arguments.
type ProposalsArgs struct {
	Page
	GovernorID      string
	IncludeArchived *bool
	IsDraft         *bool
	IsDescending    *bool
}

// ProposalsInput builds the list-proposals variables.
func ProposalsInput(organizationID string, args ProposalsArgs) (map[string]interface{}, error) {
	if organizationID == "" && args.GovernorID == "" {
		return nil, errs.Validationf("Either organizationId, organizationSlug, or governorId must be provided to list proposals")
	}
	filters := map[string]interface{}{}
	if organizationID != "" {
		filters["organizationId"] = organizationID
	}
	if args.GovernorID != "" {
		filters["governorId"] = args.GovernorID
	}
	setBool(filters, "includeArchived", args.IncludeArchived)
	setBool(filters, "isDraft", args.IsDraft)
	return variables(map[string]interface{}{
		"filters": filters,
		"sort":    sort(SortID, args.IsDescending),
		"page":    args.Page.input(),
	}), nil
}

// ProposalArgs identify one proposal by id or by (onchainId, governorId).
type ProposalArgs struct {
	ID              string
	OnchainID       string
	GovernorID      string
	IncludeArchived *bool
	IsLatest        *bool
}

// ProposalInput builds the get-proposal variables. The global id wins when both
// shapes are present; callers needing exclusivity enforce it beforehand.
func ProposalInput(args ProposalArgs) (map[string]interface{}, error) {
	input := map[string]interface{}{}
	switch {
	case args.ID != "":
		input["id"] = args.ID
	case args.OnchainID != "":
		if args.GovernorID == "" {
			return nil, errs.Validationf("governorId is required when fetching a proposal by onchainId")
		}
		input["onchainId"] = args.OnchainID
		input["governorId"] = args.GovernorID
	default:
		return nil, errs.Validationf("Must provide either id or both onchainId and governorId")
	}
	setBool(input, "includeArchived", args.IncludeArchived)
	setBool(input, "isLatest", args.IsLatest)
	return variables(input), nil
}

// VotesInput builds the votes variables for one voter across proposalIDs.
func VotesInput(voter string, proposalIDs []string, p Page) (map[string]interface{}, error) {
	if strings.TrimSpace(voter) == "" {
		return nil, errs.Validationf("address is required")
	}
	ids := proposalIDs
	if ids == nil {
		ids = []string{}
	}
	return variables(map[string]interface{}{
		"filters": map[string]interface{}{
			"proposalIds": ids,
			"voter":       voter,
		},
		"page": p.input(),
	}), nil
}

// AddressCreatedProposalsInput builds the variables for proposals created by
// address, optionally narrowed to one organization.
func AddressCreatedProposalsInput(address, organizationID string, p Page) (map[string]interface{}, error) {
	if strings.TrimSpace(address) == "" {
		return nil, errs.Validationf("address is required to fetch created proposals")
	}
	filters := map[string]interface{}{"proposer": address}
	if organizationID != "" {
		filters["organizationId"] = organizationID
	}
	return variables(map[string]interface{}{
		"filters": filters,
		"sort":    sort(SortID, nil),
		"page":    p.input(),
	}), nil
}

// AddressDAOProposalsInput builds the variables for an organization's proposals
// annotated with address's participation.
func AddressDAOProposalsInput(address, organizationID string, p Page) (map[string]interface{}, error) {
	if strings.TrimSpace(address) == "" {
		return nil, errs.Validationf("address is required to fetch DAO proposals")
	}
	if organizationID == "" {
		return nil, errs.Validationf("Either organizationId or organizationSlug must be provided")
	}
	ret := variables(map[string]interface{}{
		"filters": map[string]interface{}{"organizationId": organizationID},
		"sort":    sort(SortID, nil),
		"page":    p.input(),
	})
	ret["address"] = address
	return ret, nil
}
