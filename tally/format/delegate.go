package format

import (
	"strings"

	"github.com/viant/tally-mcp/tally/model"
)

// DelegatesList renders delegates. Voting power is shown as the raw upstream integer.
func DelegatesList(delegates []model.Delegate) string {
	return list("delegates", len(delegates), func(i int, b *strings.Builder) {
		delegate := &delegates[i]
		statement := ""
		if delegate.Statement != nil {
			statement = delegate.Statement.StatementSummary
		}
		line(b, "%s", orNA(orDefault(delegate.Account.Name, delegate.Account.Address)))
		line(b, "Address: %s", orNA(delegate.Account.Address))
		line(b, "Votes: %s", bigOrNA(delegate.VotesCount))
		line(b, "Delegators: %d", delegate.DelegatorsCount)
		line(b, "Bio: %s", orDefault(delegate.Account.Bio, noBio))
		line(b, "Statement: %s", orDefault(statement, noStatement))
	})
}

// DelegatorsList renders delegation records with token-scaled votes.
func DelegatorsList(delegations []model.Delegation) string {
	return list("delegators", len(delegations), func(i int, b *strings.Builder) {
		delegation := &delegations[i]
		delegator := delegation.Delegator
		name := orDefault(delegator.Name, orDefault(delegator.ENS, delegator.Address))
		line(b, "%s", orNA(name))
		line(b, "Address: %s", orNA(delegator.Address))
		line(b, "Votes: %s", Amount(delegation.Votes, delegation.Token))
		line(b, "Delegated at: Block %d (%s)", delegation.BlockNumber, timestamp(delegation.BlockTimestamp))
		if token := delegation.Token; token != nil {
			line(b, "Token: %s (%s)", orNA(token.Symbol), orNA(token.Name))
		}
	})
}
