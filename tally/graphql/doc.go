// Package graphql is the thin transport to the upstream governance GraphQL
// endpoint. Callers depend on the Requester interface; Client is the HTTP
// implementation authenticated with a static API key header.
package graphql
