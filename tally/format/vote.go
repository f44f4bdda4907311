package format

import (
	"strings"

	"github.com/viant/tally-mcp/tally/model"
)

// VotesList renders votes cast by an address. Amounts use the default decimals
// since the votes query carries no token.
func VotesList(votes []model.Vote) string {
	return list("votes", len(votes), func(i int, b *strings.Builder) {
		vote := &votes[i]
		reason := ""
		if vote.Reason != nil {
			reason = *vote.Reason
		}
		line(b, "Proposal ID: %s", orNA(vote.Proposal.ID))
		line(b, "Organization: %s", organization(vote.Proposal.Governor.Organization))
		line(b, "Voter: %s", orNA(vote.Voter.Address))
		line(b, "Vote: %s", orNA(string(vote.Type)))
		line(b, "Amount: %s", Amount(vote.Amount, nil))
		line(b, "Reason: %s", orNA(reason))
		line(b, "Cast at: %s", timestamp(vote.Block.Timestamp))
	})
}
