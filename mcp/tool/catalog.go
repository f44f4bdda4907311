package tool

import (
	mcpschema "github.com/viant/mcp-protocol/schema"
)

// Tool names.
const (
	ListDAOsTool                   Name = "list-daos"
	GetDAOTool                     Name = "get-dao"
	ListDelegatesTool              Name = "list-delegates"
	GetDelegatorsTool              Name = "get-delegators"
	ListProposalsTool              Name = "list-proposals"
	GetProposalTool                Name = "get-proposal"
	GetAddressVotesTool            Name = "get-address-votes"
	GetAddressCreatedProposalsTool Name = "get-address-created-proposals"
	GetAddressDAOProposalsTool     Name = "get-address-daos-proposals"
)

// Definition describes one tool.
type Definition struct {
	Name        Name
	Description string
	// Action completes "Error <action>: ..." failure messages.
	Action string
	Schema mcpschema.ToolInputSchema
}

// Metadata returns the MCP tool descriptor.
func (d *Definition) Metadata() mcpschema.Tool {
	description := d.Description
	return mcpschema.Tool{Name: d.Name.String(), Description: &description, InputSchema: d.Schema}
}

type property = map[string]interface{}

func str(description string) property {
	return property{"type": "string", "description": description}
}

func boolean(description string) property {
	return property{"type": "boolean", "description": description}
}

func number(description string) property {
	return property{"type": "number", "description": description}
}

func enum(description string, values ...string) property {
	return property{"type": "string", "enum": values, "description": description}
}

func schema(properties map[string]map[string]interface{}, required ...string) mcpschema.ToolInputSchema {
	return mcpschema.ToolInputSchema{Type: "object", Properties: properties, Required: required}
}

func limit(resource string) property {
	return number("Maximum number of " + resource + " to return (default: 20, max: 50)")
}

var (
	afterCursor  = str("Cursor for pagination")
	beforeCursor = str("Cursor for previous page pagination")
)

var catalog = []*Definition{
	{
		Name:        ListDAOsTool,
		Description: "List DAOs on Tally sorted by specified criteria",
		Action:      "fetching DAOs",
		Schema: schema(map[string]map[string]interface{}{
			"limit":        limit("DAOs"),
			"afterCursor":  afterCursor,
			"beforeCursor": beforeCursor,
			"sortBy":       enum("How to sort the DAOs (default: popular). 'explore' prioritizes DAOs with live proposals", "id", "name", "explore", "popular"),
		}),
	},
	{
		Name:        GetDAOTool,
		Description: "Get detailed information about a specific DAO",
		Action:      "fetching DAO",
		Schema: schema(map[string]map[string]interface{}{
			"slug": str("The DAO's slug (e.g., 'uniswap' or 'aave')"),
		}, "slug"),
	},
	{
		Name:        ListDelegatesTool,
		Description: "List delegates for a specific organization with their metadata",
		Action:      "fetching delegates",
		Schema: schema(map[string]map[string]interface{}{
			"organizationIdOrSlug": str("The organization's ID, governor ID (eip155 format), or slug (e.g., 'arbitrum', 'eip155:1:123', or numeric ID)"),
			"limit":                limit("delegates"),
			"afterCursor":          afterCursor,
			"beforeCursor":         beforeCursor,
			"hasVotes":             boolean("Filter for delegates with votes"),
			"hasDelegators":        boolean("Filter for delegates with delegators"),
			"isSeekingDelegation":  boolean("Filter for delegates seeking delegation"),
		}, "organizationIdOrSlug"),
	},
	{
		Name:        GetDelegatorsTool,
		Description: "Get list of delegators for a specific address",
		Action:      "fetching delegators",
		Schema: schema(map[string]map[string]interface{}{
			"address":          str("The Ethereum address to get delegators for (0x format)"),
			"organizationId":   str("Filter by specific organization ID"),
			"organizationSlug": str("Filter by organization slug (e.g., 'uniswap'). Alternative to organizationId"),
			"governorId":       str("Filter by specific governor ID"),
			"limit":            limit("delegators"),
			"afterCursor":      afterCursor,
			"beforeCursor":     beforeCursor,
			"sortBy":           enum("How to sort the delegators (default: id)", "id", "votes"),
			"isDescending":     boolean("Sort in descending order (default: true)"),
		}, "address"),
	},
	{
		Name:        ListProposalsTool,
		Description: "List proposals for a specific organization or governor",
		Action:      "fetching proposals",
		Schema: schema(map[string]map[string]interface{}{
			"organizationId":   str("Filter by organization ID (large integer as string)"),
			"organizationSlug": str("Filter by organization slug (e.g., 'uniswap'). Alternative to organizationId"),
			"governorId":       str("Filter by governor ID"),
			"includeArchived":  boolean("Include archived proposals"),
			"isDraft":          boolean("Filter for draft proposals"),
			"limit":            limit("proposals"),
			"afterCursor":      afterCursor,
			"beforeCursor":     beforeCursor,
			"isDescending":     boolean("Sort in descending order (default: true)"),
		}),
	},
	{
		Name:        GetProposalTool,
		Description: "Get detailed information about a specific proposal. You must provide either the Tally ID (globally unique) or both onchainId and governorId (unique within a governor).",
		Action:      "fetching proposal",
		Schema: schema(map[string]map[string]interface{}{
			"id":              str("The proposal's Tally ID (globally unique across all governors)"),
			"onchainId":       str("The proposal's onchain ID (only unique within a governor)"),
			"governorId":      str("The governor's ID (required when using onchainId)"),
			"includeArchived": boolean("Include archived proposals"),
			"isLatest":        boolean("Get the latest version of the proposal"),
		}),
	},
	{
		Name:        GetAddressVotesTool,
		Description: "Get votes cast by an address for a specific organization",
		Action:      "fetching address votes",
		Schema: schema(map[string]map[string]interface{}{
			"address":          str("The address to get votes for"),
			"organizationSlug": str("The organization slug to get votes from (e.g., 'uniswap')"),
			"limit":            limit("votes"),
			"afterCursor":      afterCursor,
		}, "address", "organizationSlug"),
	},
	{
		Name:        GetAddressCreatedProposalsTool,
		Description: "Get proposals created by an address, optionally narrowed to one organization",
		Action:      "fetching address created proposals",
		Schema: schema(map[string]map[string]interface{}{
			"address":          str("The Ethereum address that created the proposals"),
			"organizationId":   str("Restrict to one organization ID"),
			"organizationSlug": str("Restrict to one organization slug"),
			"limit":            limit("proposals"),
			"afterCursor":      afterCursor,
		}, "address"),
	},
	{
		Name:        GetAddressDAOProposalsTool,
		Description: "Get an organization's proposals annotated with an address's participation",
		Action:      "fetching address DAO proposals",
		Schema: schema(map[string]map[string]interface{}{
			"address":          str("The Ethereum address whose participation is reported"),
			"organizationId":   str("The organization ID (one of organizationId or organizationSlug is required)"),
			"organizationSlug": str("The organization slug (one of organizationId or organizationSlug is required)"),
			"limit":            limit("proposals"),
			"afterCursor":      afterCursor,
		}, "address"),
	},
}

// Catalog returns every tool definition in declaration order.
func Catalog() []*Definition {
	return catalog
}

// Lookup returns the definition for name.
func Lookup(name string) (*Definition, bool) {
	for _, def := range catalog {
		if string(def.Name) == name {
			return def, true
		}
	}
	return nil, false
}
