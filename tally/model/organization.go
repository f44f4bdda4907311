package model

import "strings"

// Organization is a DAO tracked by the upstream API. ID is the only key
// accepted by downstream filters.
type Organization struct {
	ID                 string                `json:"id"`
	Slug               string                `json:"slug"`
	Name               string                `json:"name"`
	ChainIDs           []string              `json:"chainIds"`
	GovernorIDs        []string              `json:"governorIds,omitempty"`
	TokenIDs           []string              `json:"tokenIds,omitempty"`
	ProposalsCount     int                   `json:"proposalsCount"`
	DelegatesCount     int                   `json:"delegatesCount"`
	TokenOwnersCount   int                   `json:"tokenOwnersCount"`
	HasActiveProposals bool                  `json:"hasActiveProposals"`
	Metadata           *OrganizationMetadata `json:"metadata,omitempty"`
	Features           []Feature             `json:"features,omitempty"`
}

// OrganizationMetadata holds descriptive data. The flat social fields are
// populated by Enrich from Socials.
type OrganizationMetadata struct {
	Description   string   `json:"description,omitempty"`
	Icon          string   `json:"icon,omitempty"`
	KarmaName     string   `json:"karmaName,omitempty"`
	Socials       *Socials `json:"socials,omitempty"`
	WebsiteURL    string   `json:"websiteUrl,omitempty"`
	Twitter       string   `json:"twitter,omitempty"`
	Discord       string   `json:"discord,omitempty"`
	Telegram      string   `json:"telegram,omitempty"`
	Discourse     string   `json:"discourse,omitempty"`
	GitHub        string   `json:"github,omitempty"`
	GovernanceURL string   `json:"governanceUrl,omitempty"`
}

type Socials struct {
	Website   string        `json:"website,omitempty"`
	Discord   string        `json:"discord,omitempty"`
	Telegram  string        `json:"telegram,omitempty"`
	Twitter   string        `json:"twitter,omitempty"`
	Discourse string        `json:"discourse,omitempty"`
	Others    []SocialOther `json:"others,omitempty"`
}

type SocialOther struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Feature struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

// Enrich flattens socials into the top-level convenience fields. It is the
// only in-place mutation applied to a decoded entity.
func (o *Organization) Enrich() {
	if o == nil || o.Metadata == nil || o.Metadata.Socials == nil {
		return
	}
	m := o.Metadata
	s := m.Socials
	m.WebsiteURL = firstNonEmpty(m.WebsiteURL, s.Website)
	m.Discord = firstNonEmpty(m.Discord, s.Discord)
	m.Twitter = firstNonEmpty(m.Twitter, s.Twitter)
	m.Telegram = firstNonEmpty(m.Telegram, s.Telegram)
	m.Discourse = firstNonEmpty(m.Discourse, s.Discourse)
	for _, other := range s.Others {
		switch strings.ToLower(strings.TrimSpace(other.Label)) {
		case "github":
			m.GitHub = firstNonEmpty(m.GitHub, other.Value)
		case "governance":
			m.GovernanceURL = firstNonEmpty(m.GovernanceURL, other.Value)
		}
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
