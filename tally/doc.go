// Package tally composes identifier resolution, query building and the
// GraphQL requester into one method per governance resource.
//
// A Service holds only its requester and logger. It is configured once and
// is safe for concurrent use; every call issues its upstream requests
// sequentially and caches nothing between calls.
package tally
