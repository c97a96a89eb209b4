package posts

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"blindboard-backend/middleware"
	"blindboard-backend/models"
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

func postRows(id, communityID, authorID string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "community_id", "user_id", "title", "content",
		"vote_score", "comments_count", "created_at", "updated_at", "deleted_at",
	}).AddRow(id, communityID, authorID, "A title", "Some content", 0, 0, now, now, nil)
}

func communityRows(id string, communityType models.CommunityType) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "slug", "name", "description", "type",
		"company_id", "category_id", "created_by", "created_at", "updated_at",
	}).AddRow(id, "board", "Board", "", communityType, nil, nil, "admin-uuid", now, now)
}

func userRows(id string, verified bool, companyID *string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "email", "password", "nickname", "role", "status",
		"company_verified", "company_id", "created_at", "updated_at",
	}).AddRow(id, "gopher@example.com", "hash", "gopher", models.UserRole, models.UserActive, verified, companyID, now, now)
}

func postRouter() *gin.Engine {
	r := testutils.SetupTestRouter()
	r.GET("/posts/:id", middleware.OptionalAuth(), GetPostByID)
	return r
}

func TestGetPostByID_PublicBoardOpenToGuests(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE id = \$1(.+)`).
		WillReturnRows(postRows("post-uuid-1", "community-uuid-1", "author-uuid"))
	mock.ExpectQuery(`SELECT (.+) FROM "communities" WHERE id = \$1(.+)`).
		WillReturnRows(communityRows("community-uuid-1", models.CommunityGeneral))

	r := postRouter()

	req, _ := http.NewRequest(http.MethodGet, "/posts/post-uuid-1", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var response utils.Response
	json.Unmarshal(resp.Body.Bytes(), &response)
	assert.True(t, response.Success)
}

func TestGetPostByID_CompanyBoardRejectsGuestWithLoginRemedy(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE id = \$1(.+)`).
		WillReturnRows(postRows("post-uuid-1", "community-uuid-1", "author-uuid"))
	mock.ExpectQuery(`SELECT (.+) FROM "communities" WHERE id = \$1(.+)`).
		WillReturnRows(communityRows("community-uuid-1", models.CommunityCompany))

	r := postRouter()

	req, _ := http.NewRequest(http.MethodGet, "/posts/post-uuid-1", nil)
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

func TestGetPostByID_CompanyBoardRejectsUnverifiedUser(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	user := models.User{ID: "user-uuid-1", Role: models.UserRole}
	token, err := utils.GenerateJWT(user, 1)
	assert.NoError(t, err)

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE id = \$1(.+)`).
		WillReturnRows(userRows(user.ID, false, nil))
	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE id = \$1(.+)`).
		WillReturnRows(postRows("post-uuid-1", "community-uuid-1", "author-uuid"))
	mock.ExpectQuery(`SELECT (.+) FROM "communities" WHERE id = \$1(.+)`).
		WillReturnRows(communityRows("community-uuid-1", models.CommunityCompany))

	r := postRouter()

	req, _ := http.NewRequest(http.MethodGet, "/posts/post-uuid-1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusForbidden, resp.Code)

	var response utils.Response
	json.Unmarshal(resp.Body.Bytes(), &response)

	details, _ := response.Error.Details.(map[string]interface{})
	remedy, _ := details["remedy"].(map[string]interface{})
	assert.Equal(t, "verify-company", remedy["action"])
}

func TestGetPostByID_CompanyBoardOpenToVerifiedEmployee(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	companyID := "company-uuid-1"
	user := models.User{ID: "user-uuid-1", Role: models.UserRole, CompanyVerified: true, CompanyID: &companyID}
	token, err := utils.GenerateJWT(user, 1)
	assert.NoError(t, err)

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE id = \$1(.+)`).
		WillReturnRows(userRows(user.ID, true, &companyID))
	mock.ExpectQuery(`SELECT (.+) FROM "companies"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "slug", "name"}).
			AddRow(companyID, "acme", "Acme"))
	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE id = \$1(.+)`).
		WillReturnRows(postRows("post-uuid-1", "community-uuid-1", "author-uuid"))
	mock.ExpectQuery(`SELECT (.+) FROM "communities" WHERE id = \$1(.+)`).
		WillReturnRows(communityRows("community-uuid-1", models.CommunityCompany))

	r := postRouter()

	req, _ := http.NewRequest(http.MethodGet, "/posts/post-uuid-1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestGetPostByID_DeletedPostIsHidden(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	// Soft-deleted rows are filtered out by the query, so the handler sees
	// no row at all.
	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE id = \$1(.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	r := postRouter()

	req, _ := http.NewRequest(http.MethodGet, "/posts/post-uuid-1", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)

	var response utils.Response
	json.Unmarshal(resp.Body.Bytes(), &response)
	assert.Equal(t, utils.CodeNotFound, response.Error.Code)
}
