// Package query holds the upstream GraphQL documents and the builders that
// compose their input variables. Builders are pure: given caller arguments and
// an already-resolved organization id they return the variables map or a
// validation error, without touching the network.
package query
