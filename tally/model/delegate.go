package model

// Delegate is an account holding delegated voting power.
type Delegate struct {
	ID              string     `json:"id"`
	Account         Account    `json:"account"`
	VotesCount      BigInt     `json:"votesCount"`
	DelegatorsCount int        `json:"delegatorsCount"`
	Statement       *Statement `json:"statement,omitempty"`
}

type Account struct {
	Address string `json:"address"`
	Name    string `json:"name,omitempty"`
	Bio     string `json:"bio,omitempty"`
	Picture string `json:"picture,omitempty"`
	ENS     string `json:"ens,omitempty"`
	Twitter string `json:"twitter,omitempty"`
}

type Statement struct {
	StatementSummary string `json:"statementSummary,omitempty"`
}

// Delegation is a delegator record. Votes is denominated in token base units
// and must be scaled by Token.Decimals.
type Delegation struct {
	ChainID        string  `json:"chainId"`
	Delegator      Account `json:"delegator"`
	BlockNumber    int64   `json:"blockNumber"`
	BlockTimestamp string  `json:"blockTimestamp"`
	Votes          BigInt  `json:"votes"`
	Token          *Token  `json:"token,omitempty"`
}

type Token struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
}
