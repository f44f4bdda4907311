package graphql

import (
	"errors"
	"strings"
)

// Errors is the GraphQL errors member.
type Errors []*Error

// Error is one GraphQL error entry.
type Error struct {
	Message    string      `json:"message"`
	Path       []string    `json:"path,omitempty"`
	Extensions *Extensions `json:"extensions,omitempty"`
}

type Extensions struct {
	Code   interface{} `json:"code,omitempty"`
	Status *Status     `json:"status,omitempty"`
}

type Status struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string { return e.Message }

func (e Errors) Error() string {
	messages := make([]string, 0, len(e))
	for _, item := range e {
		if item == nil || item.Message == "" {
			continue
		}
		messages = append(messages, item.Message)
	}
	return strings.Join(messages, "; ")
}

// NotFound reports whether every entry describes a missing record.
func (e Errors) NotFound() bool {
	if len(e) == 0 {
		return false
	}
	for _, item := range e {
		if item == nil || !item.notFound() {
			return false
		}
	}
	return true
}

func (e *Error) notFound() bool {
	if ext := e.Extensions; ext != nil {
		switch code := ext.Code.(type) {
		case float64:
			if code == 404 {
				return true
			}
		case string:
			if strings.EqualFold(code, "NOT_FOUND") {
				return true
			}
		}
		if ext.Status != nil && ext.Status.Code == 5 {
			return true
		}
	}
	return strings.Contains(strings.ToLower(e.Message), "not found")
}

// IsNotFound reports whether err carries GraphQL errors that all describe a
// missing record, whether delivered with a 2xx or an error status.
func IsNotFound(err error) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Errors.NotFound()
	}
	var gqlErrs Errors
	if errors.As(err, &gqlErrs) {
		return gqlErrs.NotFound()
	}
	return false
}
