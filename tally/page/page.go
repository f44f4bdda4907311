// Package page implements the opaque cursor convention shared by every list
// endpoint: a request carries a limit and at most one of afterCursor or
// beforeCursor, a response carries firstCursor and lastCursor. Cursors are
// minted and consumed by the upstream API only.
package page

const (
	// DefaultLimit applies when the caller supplies no positive limit.
	DefaultLimit = 20
	// MaxLimit is the upstream page size cap.
	MaxLimit = 50
)

// Input is the upstream page object.
type Input struct {
	Limit        int    `json:"limit"`
	AfterCursor  string `json:"afterCursor,omitempty"`
	BeforeCursor string `json:"beforeCursor,omitempty"`
}

// Limit returns the effective page size: DefaultLimit when requested is nil
// or not positive, otherwise requested capped at MaxLimit.
func Limit(requested *int) int {
	if requested == nil || *requested < 1 {
		return DefaultLimit
	}
	if *requested > MaxLimit {
		return MaxLimit
	}
	return *requested
}

// New builds a page input. Cursors pass through verbatim.
func New(limit *int, afterCursor, beforeCursor string) *Input {
	return &Input{Limit: Limit(limit), AfterCursor: afterCursor, BeforeCursor: beforeCursor}
}

// Map renders the input as a GraphQL variable object.
func (i *Input) Map() map[string]interface{} {
	ret := map[string]interface{}{"limit": i.Limit}
	if i.AfterCursor != "" {
		ret["afterCursor"] = i.AfterCursor
	}
	if i.BeforeCursor != "" {
		ret["beforeCursor"] = i.BeforeCursor
	}
	return ret
}
