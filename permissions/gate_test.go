package permissions

import (
	"testing"

	"blindboard-backend/models"

	"github.com/stretchr/testify/assert"
)

func generalSession() Session {
	return Session{IsAuthenticated: true, Role: models.UserRole}
}

func companySession() Session {
	return Session{
		IsAuthenticated: true,
		Role:            models.UserRole,
		CompanyVerified: true,
		Company:         &CompanyRef{ID: "c1", Slug: "acme", Name: "Acme"},
	}
}

func adminSession() Session {
	return Session{IsAuthenticated: true, Role: models.AdminRole}
}

func TestAuthorize_Authenticated(t *testing.T) {
	assert.True(t, Authorize(generalSession(), AccessAuthenticated).Allowed)
	assert.True(t, Authorize(companySession(), AccessAuthenticated).Allowed)
	assert.True(t, Authorize(adminSession(), AccessAuthenticated).Allowed)

	d := Authorize(Session{}, AccessAuthenticated)
	assert.False(t, d.Allowed)
	assert.Equal(t, TierGuest, d.Tier)
	if assert.NotNil(t, d.Remedy) {
		assert.Equal(t, "login", d.Remedy.Action)
		assert.Equal(t, "/login", d.Remedy.RedirectTo)
	}
}

func TestAuthorize_CompanyLevel(t *testing.T) {
	assert.True(t, Authorize(companySession(), AccessCompany).Allowed)
	assert.True(t, Authorize(adminSession(), AccessCompany).Allowed)

	// A general user gets pointed at company verification.
	d := Authorize(generalSession(), AccessCompany)
	assert.False(t, d.Allowed)
	if assert.NotNil(t, d.Remedy) {
		assert.Equal(t, "verify-company", d.Remedy.Action)
	}

	// A guest gets pointed at login, not at verification.
	d = Authorize(Session{}, AccessCompany)
	assert.False(t, d.Allowed)
	if assert.NotNil(t, d.Remedy) {
		assert.Equal(t, "login", d.Remedy.Action)
	}
}

func TestAuthorize_AdminDenialHasNoRemedy(t *testing.T) {
	for _, s := range []Session{{}, generalSession(), companySession()} {
		d := Authorize(s, AccessAdmin)
		assert.False(t, d.Allowed)
		assert.Nil(t, d.Remedy)
		assert.NotEmpty(t, d.Title)
	}

	assert.True(t, Authorize(adminSession(), AccessAdmin).Allowed)
}

func TestAuthorize_ReflectsFreshSessionState(t *testing.T) {
	s := generalSession()
	assert.False(t, Authorize(s, AccessCompany).Allowed)

	// Verification completed: the next evaluation must flip, no caching.
	s.CompanyVerified = true
	s.Company = &CompanyRef{ID: "c1", Slug: "acme", Name: "Acme"}
	assert.True(t, Authorize(s, AccessCompany).Allowed)
}
