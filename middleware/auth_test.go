package middleware

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"blindboard-backend/models"
	"blindboard-backend/permissions"
	"blindboard-backend/testutils"
	"blindboard-backend/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	os.Setenv("JWT_SECRET", "test-secret")

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func userRows(id string, role models.Role, status models.UserStatus, verified bool, companyID *string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "email", "password", "nickname", "role", "status",
		"company_verified", "company_id", "created_at", "updated_at",
	}).AddRow(id, "gopher@example.com", "hash", "gopher", role, status, verified, companyID, now, now)
}

func tokenFor(t *testing.T, user models.User) string {
	token, err := utils.GenerateJWT(user, 1)
	if err != nil {
		t.Fatalf("Error generating the test token: %s", err)
	}
	return token
}

func gatedRouter(access permissions.Access) *gin.Engine {
	r := testutils.SetupTestRouter()
	r.GET("/gated", RequireAccess(access), func(c *gin.Context) {
		userID, _ := c.Get(ContextUserID)
		utils.SendSuccess(c, http.StatusOK, gin.H{"userId": userID})
	})
	return r
}

func TestRequireAccess_GuestGetsLoginRemedy(t *testing.T) {
	_, _, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	r := gatedRouter(permissions.AccessAuthenticated)

	req, _ := http.NewRequest(http.MethodGet, "/gated", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	var response utils.Response
	json.Unmarshal(resp.Body.Bytes(), &response)
	assert.Equal(t, utils.CodeUnauthorized, response.Error.Code)

	details, _ := response.Error.Details.(map[string]interface{})
	remedy, _ := details["remedy"].(map[string]interface{})
	assert.Equal(t, "login", remedy["action"])
}

func TestRequireAccess_GeneralUserDeniedAdmin_NoRemedy(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	user := models.User{ID: "user-uuid-1", Role: models.UserRole}

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE id = \$1(.+)`).
		WillReturnRows(userRows(user.ID, models.UserRole, models.UserActive, false, nil))

	r := gatedRouter(permissions.AccessAdmin)

	req, _ := http.NewRequest(http.MethodGet, "/gated", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, user))
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusForbidden, resp.Code)

	var response utils.Response
	json.Unmarshal(resp.Body.Bytes(), &response)
	assert.Equal(t, utils.CodeForbidden, response.Error.Code)

	details, _ := response.Error.Details.(map[string]interface{})
	assert.Nil(t, details["remedy"])
}

func TestRequireAccess_GeneralUserDeniedCompany_VerificationRemedy(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	user := models.User{ID: "user-uuid-1", Role: models.UserRole}

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE id = \$1(.+)`).
		WillReturnRows(userRows(user.ID, models.UserRole, models.UserActive, false, nil))

	r := gatedRouter(permissions.AccessCompany)

	req, _ := http.NewRequest(http.MethodGet, "/gated", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, user))
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusForbidden, resp.Code)

	var response utils.Response
	json.Unmarshal(resp.Body.Bytes(), &response)

	details, _ := response.Error.Details.(map[string]interface{})
	remedy, _ := details["remedy"].(map[string]interface{})
	assert.Equal(t, "verify-company", remedy["action"])
}

func TestRequireAccess_VerifiedEmployeePassesCompanyGate(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	companyID := "company-uuid-1"
	user := models.User{ID: "user-uuid-1", Role: models.UserRole, CompanyVerified: true, CompanyID: &companyID}

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE id = \$1(.+)`).
		WillReturnRows(userRows(user.ID, models.UserRole, models.UserActive, true, &companyID))
	mock.ExpectQuery(`SELECT (.+) FROM "companies"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "slug", "name"}).
			AddRow(companyID, "acme", "Acme"))

	r := gatedRouter(permissions.AccessCompany)

	req, _ := http.NewRequest(http.MethodGet, "/gated", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, user))
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var response utils.Response
	json.Unmarshal(resp.Body.Bytes(), &response)
	assert.True(t, response.Success)

	data, _ := response.Data.(map[string]interface{})
	assert.Equal(t, user.ID, data["userId"])
}

func TestRequireAccess_AdminWithoutCompanyPassesCompanyGate(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	user := models.User{ID: "admin-uuid", Role: models.AdminRole}

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE id = \$1(.+)`).
		WillReturnRows(userRows(user.ID, models.AdminRole, models.UserActive, false, nil))

	r := gatedRouter(permissions.AccessCompany)

	req, _ := http.NewRequest(http.MethodGet, "/gated", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, user))
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestRequireAccess_SuspendedUserIsGuest(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	user := models.User{ID: "user-uuid-1", Role: models.UserRole}

	// The token is valid, but the fresh user row says SUSPENDED: the
	// session degrades to guest on this very request.
	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE id = \$1(.+)`).
		WillReturnRows(userRows(user.ID, models.UserRole, models.UserSuspended, false, nil))

	r := gatedRouter(permissions.AccessAuthenticated)

	req, _ := http.NewRequest(http.MethodGet, "/gated", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, user))
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestRequireAccess_InvalidTokenIsGuest(t *testing.T) {
	_, _, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	r := gatedRouter(permissions.AccessAuthenticated)

	req, _ := http.NewRequest(http.MethodGet, "/gated", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
