package permissions

import (
	"testing"

	"blindboard-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestClassify_UnauthenticatedIsAlwaysGuest(t *testing.T) {
	// Even a session claiming admin role and a verified company classifies
	// as guest when not authenticated.
	sessions := []Session{
		{},
		{Role: models.AdminRole},
		{CompanyVerified: true, Company: &CompanyRef{ID: "c1", Slug: "acme", Name: "Acme"}},
		{Role: models.AdminRole, CompanyVerified: true, Company: &CompanyRef{ID: "c1"}},
	}

	for _, s := range sessions {
		tier, caps := Classify(s)
		assert.Equal(t, TierGuest, tier)
		assert.False(t, caps.CanCreatePost)
		assert.False(t, caps.CanAccessAdmin)
	}
}

func TestClassify_AdminRoleWinsOverCompany(t *testing.T) {
	tier, caps := Classify(Session{
		IsAuthenticated: true,
		Role:            models.AdminRole,
		CompanyVerified: false,
		Company:         nil,
	})

	assert.Equal(t, TierAdmin, tier)
	assert.True(t, caps.CanAccessAdmin)
	assert.True(t, caps.CanAccessCompanyBoards)
}

func TestClassify_CompanyRequiresFlagAndCompany(t *testing.T) {
	cases := []struct {
		name     string
		session  Session
		expected Tier
	}{
		{
			name: "verified with company",
			session: Session{
				IsAuthenticated: true,
				Role:            models.UserRole,
				CompanyVerified: true,
				Company:         &CompanyRef{ID: "c1", Slug: "acme", Name: "Acme"},
			},
			expected: TierCompany,
		},
		{
			name: "verified without company",
			session: Session{
				IsAuthenticated: true,
				Role:            models.UserRole,
				CompanyVerified: true,
			},
			expected: TierGeneral,
		},
		{
			name: "company without verification",
			session: Session{
				IsAuthenticated: true,
				Role:            models.UserRole,
				Company:         &CompanyRef{ID: "c1"},
			},
			expected: TierGeneral,
		},
		{
			name: "moderator is general",
			session: Session{
				IsAuthenticated: true,
				Role:            models.ModeratorRole,
			},
			expected: TierGeneral,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tier, _ := Classify(tc.session)
			assert.Equal(t, tc.expected, tier)
		})
	}
}

func TestClassify_CapabilitiesFollowTier(t *testing.T) {
	_, general := Classify(Session{IsAuthenticated: true, Role: models.UserRole})
	assert.True(t, general.CanCreatePost)
	assert.True(t, general.CanReport)
	assert.False(t, general.CanAccessCompanyBoards)
	assert.False(t, general.CanAccessAdmin)

	_, company := Classify(Session{
		IsAuthenticated: true,
		Role:            models.UserRole,
		CompanyVerified: true,
		Company:         &CompanyRef{ID: "c1"},
	})
	assert.True(t, company.CanAccessCompanyBoards)
	assert.False(t, company.CanAccessAdmin)
}

func TestClassify_IsDeterministic(t *testing.T) {
	s := Session{
		IsAuthenticated: true,
		Role:            models.UserRole,
		CompanyVerified: true,
		Company:         &CompanyRef{ID: "c1"},
	}

	firstTier, firstCaps := Classify(s)
	for i := 0; i < 10; i++ {
		tier, caps := Classify(s)
		assert.Equal(t, firstTier, tier)
		assert.Equal(t, firstCaps, caps)
	}
}
