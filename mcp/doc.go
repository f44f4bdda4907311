// Package mcp exposes the Tally governance tools over the MCP protocol. Its
// Service loads configuration, builds the GraphQL client, the tool dispatcher
// and a Fluxor workflow engine in which the same tools are available as
// "tally.*" actions.
package mcp
