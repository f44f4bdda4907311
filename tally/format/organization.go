package format

import (
	"fmt"
	"strings"

	"github.com/viant/tally-mcp/tally/model"
)

// DAOList renders organizations. An empty list yields the header alone.
func DAOList(orgs []model.Organization) string {
	return list("DAOs", len(orgs), func(i int, b *strings.Builder) {
		organizationSummary(b, &orgs[i])
	})
}

// DAO renders a single organization including chain, token and governor ids.
func DAO(org *model.Organization) string {
	if org == nil {
		return NotAvailable
	}
	var b strings.Builder
	organizationSummary(&b, org)
	line(&b, "Chain IDs: %s", joinOrNA(org.ChainIDs))
	line(&b, "Token IDs: %s", joinOrNA(org.TokenIDs))
	line(&b, "Governor IDs: %s", joinOrNA(org.GovernorIDs))
	fmt.Fprintf(&b, "Features: %s", features(org.Features))
	return b.String()
}

func organizationSummary(b *strings.Builder, org *model.Organization) {
	meta := org.Metadata
	if meta == nil {
		meta = &model.OrganizationMetadata{}
	}
	line(b, "%s (%s)", orNA(org.Name), orNA(org.Slug))
	line(b, "Token Holders: %d", org.TokenOwnersCount)
	line(b, "Delegates: %d", org.DelegatesCount)
	line(b, "Proposals: %d", org.ProposalsCount)
	line(b, "Active Proposals: %s", yesNo(org.HasActiveProposals))
	line(b, "Description: %s", orDefault(meta.Description, noDescription))
	line(b, "Website: %s", orNA(meta.WebsiteURL))
	line(b, "Twitter: %s", orNA(meta.Twitter))
	line(b, "Discord: %s", orNA(meta.Discord))
	line(b, "GitHub: %s", orNA(meta.GitHub))
	line(b, "Governance: %s", orNA(meta.GovernanceURL))
}

func features(items []model.Feature) string {
	if len(items) == 0 {
		return NotAvailable
	}
	parts := make([]string, 0, len(items))
	for _, item := range items {
		state := "disabled"
		if item.Enabled {
			state = "enabled"
		}
		parts = append(parts, item.Name+" ("+state+")")
	}
	return strings.Join(parts, ", ")
}
