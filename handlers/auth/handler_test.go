package auth

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"blindboard-backend/models"
	"blindboard-backend/testutils"
	"blindboard-backend/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	os.Setenv("JWT_SECRET", "test-secret")

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func userRows(id string, email string, passwordHash string, status models.UserStatus) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "email", "password", "nickname", "role", "status",
		"company_verified", "company_id", "created_at", "updated_at",
	}).AddRow(id, email, passwordHash, "gopher", "USER", status, false, nil, now, now)
}

func TestRegister_WeakPassword(t *testing.T) {
	_, _, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	r := testutils.SetupTestRouter()
	r.POST("/register", Register)

	// Long enough but no uppercase and no digit
	body, _ := json.Marshal(map[string]string{
		"email":           "gopher@example.com",
		"password":        "weakpassword",
		"confirmPassword": "weakpassword",
		"nickname":        "gopher",
	})
	req, _ := http.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(body))
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var response utils.Response
	json.Unmarshal(resp.Body.Bytes(), &response)
	assert.Equal(t, utils.CodeValidation, response.Error.Code)
}

func TestRegister_PasswordMismatch(t *testing.T) {
	_, _, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	r := testutils.SetupTestRouter()
	r.POST("/register", Register)

	body, _ := json.Marshal(map[string]string{
		"email":           "gopher@example.com",
		"password":        "Password1",
		"confirmPassword": "Password2",
		"nickname":        "gopher",
	})
	req, _ := http.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(body))
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestRegister_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE email = \$1 OR nickname = \$2(.+)`).
		WillReturnError(gorm.ErrRecordNotFound)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("user-uuid-1"))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/register", Register)

	body, _ := json.Marshal(map[string]string{
		"email":           "gopher@example.com",
		"password":        "Password1",
		"confirmPassword": "Password1",
		"nickname":        "gopher",
	})
	req, _ := http.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(body))
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var response utils.Response
	json.Unmarshal(resp.Body.Bytes(), &response)
	assert.True(t, response.Success)

	data, _ := response.Data.(map[string]interface{})
	assert.Equal(t, "gopher@example.com", data["email"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogin_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	hash, _ := bcrypt.GenerateFromPassword([]byte("Password1"), bcrypt.DefaultCost)

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE email = \$1(.+)`).
		WillReturnRows(userRows("user-uuid-1", "gopher@example.com", string(hash), models.UserActive))

	r := testutils.SetupTestRouter()
	r.POST("/login", Login)

	body, _ := json.Marshal(map[string]string{
		"email":    "gopher@example.com",
		"password": "Password1",
	})
	req, _ := http.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var response utils.Response
	json.Unmarshal(resp.Body.Bytes(), &response)
	data, _ := response.Data.(map[string]interface{})
	assert.NotEmpty(t, data["token"])
}

func TestLogin_WrongPassword(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	hash, _ := bcrypt.GenerateFromPassword([]byte("Password1"), bcrypt.DefaultCost)

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE email = \$1(.+)`).
		WillReturnRows(userRows("user-uuid-1", "gopher@example.com", string(hash), models.UserActive))

	r := testutils.SetupTestRouter()
	r.POST("/login", Login)

	body, _ := json.Marshal(map[string]string{
		"email":    "gopher@example.com",
		"password": "WrongPassword1",
	})
	req, _ := http.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestLogin_SuspendedAccount(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	hash, _ := bcrypt.GenerateFromPassword([]byte("Password1"), bcrypt.DefaultCost)

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE email = \$1(.+)`).
		WillReturnRows(userRows("user-uuid-1", "gopher@example.com", string(hash), models.UserSuspended))

	r := testutils.SetupTestRouter()
	r.POST("/login", Login)

	body, _ := json.Marshal(map[string]string{
		"email":    "gopher@example.com",
		"password": "Password1",
	})
	req, _ := http.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusForbidden, resp.Code)

	var response utils.Response
	json.Unmarshal(resp.Body.Bytes(), &response)
	assert.Equal(t, utils.CodeForbidden, response.Error.Code)
}
