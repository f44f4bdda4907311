package query

// Organizations lists DAOs. Metadata is selected so list entries can be enriched.
const Organizations = `query Organizations($input: OrganizationsInput!) {
  organizations(input: $input) {
    nodes {
      ... on Organization {
        id
        name
        slug
        chainIds
        proposalsCount
        hasActiveProposals
        tokenOwnersCount
        delegatesCount
        metadata {
          description
          icon
          socials {
            website
            discord
            telegram
            twitter
            discourse
            others {
              label
              value
            }
          }
        }
      }
    }
    pageInfo {
      firstCursor
      lastCursor
    }
  }
}`

// Organization fetches one DAO by slug.
const Organization = `query OrganizationBySlug($input: OrganizationInput!) {
  organization(input: $input) {
    id
    name
    slug
    chainIds
    governorIds
    tokenIds
    hasActiveProposals
    proposalsCount
    delegatesCount
    tokenOwnersCount
    metadata {
      description
      icon
      socials {
        website
        discord
        telegram
        twitter
        discourse
        others {
          label
          value
        }
      }
      karmaName
    }
    features {
      name
      enabled
    }
  }
}`

const Delegates = `query Delegates($input: DelegatesInput!) {
  delegates(input: $input) {
    nodes {
      id
      account {
        address
        bio
        name
        picture
      }
      votesCount
      delegatorsCount
      statement {
        statementSummary
      }
    }
    pageInfo {
      firstCursor
      lastCursor
    }
  }
}`

const Delegators = `query Delegators($input: DelegatorsInput!) {
  delegators(input: $input) {
    nodes {
      chainId
      blockNumber
      blockTimestamp
      votes
      delegator {
        address
        name
        picture
        twitter
        ens
      }
      token {
        id
        name
        symbol
        decimals
      }
    }
    pageInfo {
      firstCursor
      lastCursor
    }
  }
}`

const timeBlock = `{
      ... on Block {
        timestamp
      }
      ... on BlocklessTimestamp {
        timestamp
      }
    }`

const Proposals = `query GovernanceProposals($input: ProposalsInput!) {
  proposals(input: $input) {
    nodes {
      ... on Proposal {
        id
        onchainId
        status
        createdAt
        quorum
        metadata {
          title
          description
        }
        voteStats {
          type
          votesCount
          votersCount
          percent
        }
        governor {
          id
          chainId
          name
          organization {
            name
            slug
          }
        }
      }
    }
    pageInfo {
      firstCursor
      lastCursor
    }
  }
}`

const Proposal = `query ProposalDetails($input: ProposalInput!) {
  proposal(input: $input) {
    id
    onchainId
    status
    quorum
    createdAt
    metadata {
      title
      description
      discourseURL
      snapshotURL
    }
    start ` + timeBlock + `
    end ` + timeBlock + `
    executableCalls {
      value
      target
      calldata
      signature
      type
    }
    voteStats {
      type
      votesCount
      votersCount
      percent
    }
    governor {
      id
      chainId
      name
      token {
        decimals
      }
      organization {
        name
        slug
      }
    }
    proposer {
      address
      name
      picture
    }
  }
}`

const Votes = `query GetVotes($input: VotesInput!) {
  votes(input: $input) {
    nodes {
      ... on Vote {
        id
        voter {
          address
        }
        proposal {
          id
          governor {
            id
            organization {
              id
              name
              slug
            }
          }
        }
        type
        amount
        reason
        block {
          timestamp
        }
      }
    }
    pageInfo {
      firstCursor
      lastCursor
    }
  }
}`

const AddressCreatedProposals = `query GetAddressCreatedProposals($input: ProposalsInput!) {
  proposals(input: $input) {
    nodes {
      ... on Proposal {
        id
        onchainId
        originalId
        status
        createdAt
        metadata {
          title
          description
        }
        block {
          timestamp
        }
        governor {
          id
          name
          organization {
            id
            name
            slug
          }
        }
        voteStats {
          type
          votesCount
          votersCount
          percent
        }
      }
    }
    pageInfo {
      firstCursor
      lastCursor
    }
  }
}`

const AddressDAOProposals = `query GetAddressDAOSProposals($input: ProposalsInput!, $address: Address!) {
  proposals(input: $input) {
    nodes {
      ... on Proposal {
        id
        onchainId
        originalId
        status
        createdAt
        metadata {
          title
          description
        }
        governor {
          id
          name
          organization {
            id
            name
            slug
          }
        }
        block {
          timestamp
        }
        proposer {
          address
        }
        creator {
          address
        }
        start ` + timeBlock + `
        voteStats {
          type
          votesCount
          votersCount
          percent
        }
        participationType(address: $address)
      }
    }
    pageInfo {
      firstCursor
      lastCursor
    }
  }
}`
