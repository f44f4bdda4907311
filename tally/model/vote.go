package model

// VoteType is the direction of a cast vote.
type VoteType string

const (
	VoteFor     VoteType = "for"
	VoteAgainst VoteType = "against"
	VoteAbstain VoteType = "abstain"
)

type Vote struct {
	ID       string       `json:"id"`
	Voter    Account      `json:"voter"`
	Proposal VoteProposal `json:"proposal"`
	Type     VoteType     `json:"type"`
	Amount   BigInt       `json:"amount"`
	Reason   *string      `json:"reason"`
	Block    TimeBlock    `json:"block"`
}

type VoteProposal struct {
	ID       string   `json:"id"`
	Governor Governor `json:"governor"`
}
