// Package errs defines the error taxonomy shared by the governance tools.
// Every failure surfaced to a tool caller carries one of the Kind values so
// that callers can branch on the category while the message stays a single
// human readable line.
package errs

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind int

const (
	// Validation marks a malformed or missing argument detected before any network call.
	Validation Kind = iota + 1
	// NotFound marks a slug or id that resolves to no record.
	NotFound
	// AmbiguousIdentifier marks a governor id supplied without an organization slug.
	AmbiguousIdentifier
	// Upstream marks a transport or GraphQL failure, rate limiting included.
	Upstream
	// UnknownTool marks a tool name outside the catalog.
	UnknownTool
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "ValidationError"
	case NotFound:
		return "NotFound"
	case AmbiguousIdentifier:
		return "AmbiguousIdentifier"
	case Upstream:
		return "UpstreamError"
	case UnknownTool:
		return "UnknownTool"
	}
	return "Error"
}

// Error is a categorized failure.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Message == "" && e.Err != nil:
		return e.Err.Error()
	case e.Err != nil:
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Validationf returns a Validation error.
func Validationf(format string, args ...interface{}) error {
	return &Error{Kind: Validation, Message: fmt.Sprintf(format, args...)}
}

// NotFoundf returns a NotFound error.
func NotFoundf(format string, args ...interface{}) error {
	return &Error{Kind: NotFound, Message: fmt.Sprintf(format, args...)}
}

// Ambiguousf returns an AmbiguousIdentifier error.
func Ambiguousf(format string, args ...interface{}) error {
	return &Error{Kind: AmbiguousIdentifier, Message: fmt.Sprintf(format, args...)}
}

// Upstreamf returns an Upstream error wrapping cause (which may be nil).
func Upstreamf(cause error, format string, args ...interface{}) error {
	return &Error{Kind: Upstream, Message: fmt.Sprintf(format, args...), Err: cause}
}

// WrapUpstream marks cause as an Upstream error keeping its message.
func WrapUpstream(cause error) error {
	return &Error{Kind: Upstream, Err: cause}
}

// NewUnknownTool returns an UnknownTool error for name.
func NewUnknownTool(name string) error {
	return &Error{Kind: UnknownTool, Message: "Unknown tool: " + name}
}

// KindOf returns the kind of the first categorized error in err's chain, or zero.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// Is reports whether err carries kind anywhere in its chain.
func Is(err error, kind Kind) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Kind == kind {
			return true
		}
		err = e.Err
	}
	return false
}
