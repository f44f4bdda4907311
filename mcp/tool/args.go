package tool

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/viant/tally-mcp/tally/errs"
)

// args type-checks an untyped argument bag. The first failure is kept.
type args struct {
	values map[string]interface{}
	err    error
}

func (a *args) fail(format string, values ...interface{}) {
	if a.err == nil {
		a.err = errs.Validationf(format, values...)
	}
}

func (a *args) lookup(key string) (interface{}, bool) {
	value, ok := a.values[key]
	if !ok || value == nil {
		return nil, false
	}
	return value, true
}

func (a *args) string(key string) string {
	value, ok := a.lookup(key)
	if !ok {
		return ""
	}
	text, ok := value.(string)
	if !ok {
		a.fail("%s must be a string, got %T", key, value)
		return ""
	}
	return strings.TrimSpace(text)
}

func (a *args) required(key string) string {
	ret := a.string(key)
	if ret == "" && a.err == nil {
		a.fail("%s is required and must be a string", key)
	}
	return ret
}

func (a *args) bool(key string) *bool {
	value, ok := a.lookup(key)
	if !ok {
		return nil
	}
	flag, ok := value.(bool)
	if !ok {
		a.fail("%s must be a boolean, got %T", key, value)
		return nil
	}
	return &flag
}

// int accepts any JSON number; fractions are truncated.
func (a *args) int(key string) *int {
	value, ok := a.lookup(key)
	if !ok {
		return nil
	}
	var number float64
	switch actual := value.(type) {
	case float64:
		number = actual
	case float32:
		number = float64(actual)
	case int:
		return &actual
	case int64:
		number = float64(actual)
	case json.Number:
		f, err := actual.Float64()
		if err != nil {
			a.fail("%s must be a number, got %q", key, actual.String())
			return nil
		}
		number = f
	default:
		a.fail("%s must be a number, got %T", key, value)
		return nil
	}
	if math.IsNaN(number) || math.IsInf(number, 0) {
		a.fail("%s must be a finite number", key)
		return nil
	}
	if number > math.MaxInt32 {
		number = math.MaxInt32
	}
	if number < math.MinInt32 {
		number = math.MinInt32
	}
	ret := int(number)
	return &ret
}

// Decode validates an argument bag into the typed request for name.
func Decode(name string, values map[string]interface{}) (Request, error) {
	if values == nil {
		values = map[string]interface{}{}
	}
	a := &args{values: values}
	var ret Request
	switch Name(name) {
	case ListDAOsTool:
		ret = &ListDAOs{Paging: a.paging(), SortBy: a.string("sortBy")}
	case GetDAOTool:
		ret = &GetDAO{Slug: a.required("slug")}
	case ListDelegatesTool:
		ret = &ListDelegates{
			OrganizationIDOrSlug: a.required("organizationIdOrSlug"),
			Paging:               a.paging(),
			HasVotes:             a.bool("hasVotes"),
			HasDelegators:        a.bool("hasDelegators"),
			IsSeekingDelegation:  a.bool("isSeekingDelegation"),
		}
	case GetDelegatorsTool:
		ret = &GetDelegators{
			Address:      a.required("address"),
			Organization: a.organization(),
			Paging:       a.paging(),
			SortBy:       a.string("sortBy"),
			IsDescending: a.bool("isDescending"),
		}
	case ListProposalsTool:
		ret = &ListProposals{
			Organization:    a.organization(),
			Paging:          a.paging(),
			IncludeArchived: a.bool("includeArchived"),
			IsDraft:         a.bool("isDraft"),
			IsDescending:    a.bool("isDescending"),
		}
	case GetProposalTool:
		ret = &GetProposal{
			ID:              a.string("id"),
			OnchainID:       a.string("onchainId"),
			GovernorID:      a.string("governorId"),
			IncludeArchived: a.bool("includeArchived"),
			IsLatest:        a.bool("isLatest"),
		}
	case GetAddressVotesTool:
		ret = &GetAddressVotes{Address: a.required("address"), Organization: a.organization(), Paging: a.paging()}
	case GetAddressCreatedProposalsTool:
		ret = &GetAddressCreatedProposals{Address: a.required("address"), Organization: a.organization(), Paging: a.paging()}
	case GetAddressDAOProposalsTool:
		ret = &GetAddressDAOProposals{Address: a.required("address"), Organization: a.organization(), Paging: a.paging()}
	default:
		return nil, errs.NewUnknownTool(name)
	}
	if a.err != nil {
		return nil, a.err
	}
	if err := ret.Validate(); err != nil {
		return nil, err
	}
	return ret, nil
}

func (a *args) paging() Paging {
	return Paging{Limit: a.int("limit"), AfterCursor: a.string("afterCursor"), BeforeCursor: a.string("beforeCursor")}
}

func (a *args) organization() Organization {
	return Organization{
		OrganizationID:   a.string("organizationId"),
		OrganizationSlug: a.string("organizationSlug"),
		GovernorID:       a.string("governorId"),
	}
}

// String renders a request for logs.
func String(req Request) string {
	data, err := json.Marshal(req)
	if err != nil {
		return fmt.Sprintf("%T", req)
	}
	return string(data)
}
