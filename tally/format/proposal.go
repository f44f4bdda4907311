package format

import (
	"strings"

	"github.com/viant/tally-mcp/tally/model"
)

// ProposalsList renders proposals with descriptions truncated to DescriptionLimit.
func ProposalsList(proposals []model.Proposal) string {
	return list("proposals", len(proposals), func(i int, b *strings.Builder) {
		proposal := &proposals[i]
		line(b, "%s", orNA(proposal.Metadata.Title))
		line(b, "Tally ID: %s", orNA(proposal.ID))
		line(b, "Onchain ID: %s", orNA(proposal.OnchainID))
		line(b, "Status: %s", orNA(string(proposal.Status)))
		line(b, "Created: %s", timestamp(proposal.CreatedAt))
		line(b, "Quorum: %s", bigOrNA(proposal.Quorum))
		line(b, "Organization: %s", organization(proposal.Governor.Organization))
		line(b, "Governor: %s", orNA(proposal.Governor.Name))
		line(b, "%s", voteStats(proposal.VoteStats))
		line(b, "Description: %s", listDescription(proposal.Metadata.Description))
	})
}

// Proposal renders a single proposal with its full description.
func Proposal(proposal *model.Proposal) string {
	if proposal == nil {
		return NotAvailable
	}
	proposer := ""
	if proposal.Proposer != nil {
		proposer = orDefault(proposal.Proposer.Name, proposal.Proposer.Address)
	}
	var b strings.Builder
	line(&b, "%s", orNA(proposal.Metadata.Title))
	line(&b, "Tally ID: %s", orNA(proposal.ID))
	line(&b, "Onchain ID: %s", orNA(proposal.OnchainID))
	line(&b, "Status: %s", orNA(string(proposal.Status)))
	line(&b, "Quorum: %s", bigOrNA(proposal.Quorum))
	line(&b, "Start: %s", timeBlock(proposal.Start))
	line(&b, "End: %s", timeBlock(proposal.End))
	line(&b, "Organization: %s", organization(proposal.Governor.Organization))
	line(&b, "Governor: %s", orNA(proposal.Governor.Name))
	line(&b, "Proposer: %s", orNA(proposer))
	line(&b, "Executable Calls: %d", len(proposal.ExecutableCalls))
	line(&b, "%s", voteStats(proposal.VoteStats))
	line(&b, "Description:\n%s", orDefault(proposal.Metadata.Description, noDescription))
	line(&b, "Links:")
	line(&b, "  Discourse: %s", orNA(proposal.Metadata.DiscourseURL))
	b.WriteString("  Snapshot: " + orNA(proposal.Metadata.SnapshotURL))
	return b.String()
}

// AddressProposalsList renders proposals scoped to an address. Participation is
// shown when the upstream annotated it.
func AddressProposalsList(proposals []model.Proposal) string {
	return list("proposals", len(proposals), func(i int, b *strings.Builder) {
		proposal := &proposals[i]
		line(b, "%s", orNA(proposal.Metadata.Title))
		line(b, "Tally ID: %s", orNA(proposal.ID))
		line(b, "Onchain ID: %s", orNA(proposal.OnchainID))
		line(b, "Status: %s", orNA(string(proposal.Status)))
		line(b, "Created: %s", timestamp(proposal.CreatedAt))
		line(b, "Organization: %s", organization(proposal.Governor.Organization))
		line(b, "Governor ID: %s", orNA(proposal.Governor.ID))
		if proposal.ParticipationType != "" {
			line(b, "Participation: %s", proposal.ParticipationType)
		}
		line(b, "%s", voteStats(proposal.VoteStats))
		line(b, "Description: %s", listDescription(proposal.Metadata.Description))
	})
}

func listDescription(description string) string {
	if strings.TrimSpace(description) == "" {
		return noDescription
	}
	return truncate(description, DescriptionLimit)
}
