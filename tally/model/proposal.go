package model

// ProposalStatus enumerates upstream proposal states.
type ProposalStatus string

const (
	ProposalActive    ProposalStatus = "active"
	ProposalCanceled  ProposalStatus = "canceled"
	ProposalDefeated  ProposalStatus = "defeated"
	ProposalExecuted  ProposalStatus = "executed"
	ProposalExpired   ProposalStatus = "expired"
	ProposalPending   ProposalStatus = "pending"
	ProposalQueued    ProposalStatus = "queued"
	ProposalSucceeded ProposalStatus = "succeeded"
)

// Proposal is keyed globally by ID; OnchainID is unique only within its governor.
type Proposal struct {
	ID                string           `json:"id"`
	OnchainID         string           `json:"onchainId"`
	OriginalID        string           `json:"originalId,omitempty"`
	Status            ProposalStatus   `json:"status"`
	Metadata          ProposalMetadata `json:"metadata"`
	Quorum            BigInt           `json:"quorum"`
	CreatedAt         string           `json:"createdAt"`
	Start             *TimeBlock       `json:"start,omitempty"`
	End               *TimeBlock       `json:"end,omitempty"`
	Block             *TimeBlock       `json:"block,omitempty"`
	ExecutableCalls   []ExecutableCall `json:"executableCalls,omitempty"`
	VoteStats         []VoteStat       `json:"voteStats"`
	Governor          Governor         `json:"governor"`
	Proposer          *Account         `json:"proposer,omitempty"`
	Creator           *Account         `json:"creator,omitempty"`
	ParticipationType string           `json:"participationType,omitempty"`
}

type ProposalMetadata struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	DiscourseURL string `json:"discourseURL,omitempty"`
	SnapshotURL  string `json:"snapshotURL,omitempty"`
}

type TimeBlock struct {
	Timestamp string `json:"timestamp"`
}

type ExecutableCall struct {
	Value     string `json:"value"`
	Target    string `json:"target"`
	Calldata  string `json:"calldata"`
	Signature string `json:"signature"`
	Type      string `json:"type"`
}

// VoteStat aggregates one vote type (for, against, abstain, pending variants).
type VoteStat struct {
	Type        string  `json:"type"`
	VotesCount  BigInt  `json:"votesCount"`
	VotersCount int     `json:"votersCount"`
	Percent     float64 `json:"percent"`
}

type Governor struct {
	ID           string            `json:"id"`
	ChainID      string            `json:"chainId,omitempty"`
	Name         string            `json:"name"`
	Token        *GovernorToken    `json:"token,omitempty"`
	Organization OrganizationBrief `json:"organization"`
}

type GovernorToken struct {
	Decimals int `json:"decimals"`
}

type OrganizationBrief struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}
