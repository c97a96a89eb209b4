// Package permissions implements the tier classifier and the access gate.
// Both are pure: they take a session snapshot and return a decision, no
// database access and no caching, so a permission-affecting change (a
// completed company verification, a role change) takes effect on the very
// next request.
package permissions

import (
	"blindboard-backend/models"
)

type Tier string

const (
	TierGuest   Tier = "guest"
	TierGeneral Tier = "general"
	TierCompany Tier = "company"
	TierAdmin   Tier = "admin"
)

// CompanyRef is the slice of the company row a session carries.
type CompanyRef struct {
	ID   string `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// Session is a snapshot of the requesting user, rebuilt on every request.
// A malformed or missing session must be passed as the zero value, which
// classifies as guest.
type Session struct {
	IsAuthenticated bool        `json:"isAuthenticated"`
	Role            models.Role `json:"role"`
	CompanyVerified bool        `json:"companyVerified"`
	Company         *CompanyRef `json:"company"`
}

// Capabilities are the feature flags derived from a tier.
type Capabilities struct {
	CanCreatePost          bool `json:"canCreatePost"`
	CanComment             bool `json:"canComment"`
	CanVote                bool `json:"canVote"`
	CanMessage             bool `json:"canMessage"`
	CanReport              bool `json:"canReport"`
	CanRequestCommunity    bool `json:"canRequestCommunity"`
	CanAccessCompanyBoards bool `json:"canAccessCompanyBoards"`
	CanAccessAdmin         bool `json:"canAccessAdmin"`
}

var tierCapabilities = map[Tier]Capabilities{
	TierGuest: {},
	TierGeneral: {
		CanCreatePost:       true,
		CanComment:          true,
		CanVote:             true,
		CanMessage:          true,
		CanReport:           true,
		CanRequestCommunity: true,
	},
	TierCompany: {
		CanCreatePost:          true,
		CanComment:             true,
		CanVote:                true,
		CanMessage:             true,
		CanReport:              true,
		CanRequestCommunity:    true,
		CanAccessCompanyBoards: true,
	},
	TierAdmin: {
		CanCreatePost:          true,
		CanComment:             true,
		CanVote:                true,
		CanMessage:             true,
		CanReport:              true,
		CanRequestCommunity:    true,
		CanAccessCompanyBoards: true,
		CanAccessAdmin:         true,
	},
}

// Classify maps a session to its tier and capability set. First match wins:
// unauthenticated is always guest no matter what the other fields claim,
// ADMIN role wins over company verification, company requires both the
// verified flag and an actual company on the session.
func Classify(s Session) (Tier, Capabilities) {
	var tier Tier
	switch {
	case !s.IsAuthenticated:
		tier = TierGuest
	case s.Role == models.AdminRole:
		tier = TierAdmin
	case s.CompanyVerified && s.Company != nil:
		tier = TierCompany
	default:
		tier = TierGeneral
	}
	return tier, tierCapabilities[tier]
}
