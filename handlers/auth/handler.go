package auth

import (
	"errors"
	"net/http"

	"blindboard-backend/db"
	"blindboard-backend/models"
	"blindboard-backend/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func checkPassword(hash string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// @Summary Register a new user
// @Description Create an account with email, password and nickname
// @Tags auth
// @Accept json
// @Produce json
// @Param user body models.UserRegister true "Registration information"
// @Success 201 {object} utils.Response "data: created user email"
// @Failure 400 {object} utils.Response "error: VALIDATION_ERROR"
// @Failure 409 {object} utils.Response "error: CONFLICT, email or nickname already used"
// @Failure 500 {object} utils.Response "error: INTERNAL_ERROR"
// @Router /register [post]
func Register(c *gin.Context) {
	var register models.UserRegister
	if !utils.ValidateRequestBody(c, &register) {
		return
	}

	if !utils.ValidateEmail(register.Email) {
		utils.SendAppError(c, utils.NewValidationError("Invalid email format", nil))
		return
	}

	if !utils.ValidatePasswordComplexity(register.Password) {
		utils.SendAppError(c, utils.NewValidationError(
			"The password must contain at least one lowercase, one uppercase and one digit", nil))
		return
	}

	var existing models.User
	if err := db.DB.Where("email = ? OR nickname = ?", register.Email, register.Nickname).First(&existing).Error; err == nil {
		utils.SendAppError(c, utils.NewConflictError("This email or nickname is already used"))
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.LogError(err, "Error checking existing user in Register")
		utils.SendAppError(c, utils.NewInternalError("Error when checking the account existence"))
		return
	}

	passwordHash, err := hashPassword(register.Password)
	if err != nil {
		utils.LogError(err, "Error hashing password in Register")
		utils.SendAppError(c, utils.NewInternalError("Error creating the account"))
		return
	}

	user := models.User{
		Email:    register.Email,
		Password: passwordHash,
		Nickname: register.Nickname,
		Role:     models.UserRole,
		Status:   models.UserActive,
	}

	if err := db.DB.Create(&user).Error; err != nil {
		utils.LogError(err, "Error creating user in Register")
		utils.SendAppError(c, utils.NewInternalError("Error creating the account"))
		return
	}

	utils.LogSuccessWithUser(user.ID, "User registered in Register")
	utils.SendSuccess(c, http.StatusCreated, gin.H{"email": user.Email})
}

// @Summary User login
// @Description Authenticate with email and password, returns a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body models.UserLogin true "Credentials"
// @Success 200 {object} utils.Response "data: token"
// @Failure 400 {object} utils.Response "error: VALIDATION_ERROR"
// @Failure 401 {object} utils.Response "error: UNAUTHORIZED"
// @Failure 403 {object} utils.Response "error: FORBIDDEN, account suspended or deleted"
// @Router /login [post]
func Login(c *gin.Context) {
	var login models.UserLogin
	if !utils.ValidateRequestBody(c, &login) {
		return
	}

	var user models.User
	if err := db.DB.Where("email = ?", login.Email).First(&user).Error; err != nil {
		utils.SendAppError(c, utils.NewUnauthorizedError("Invalid email or password"))
		return
	}

	if !checkPassword(user.Password, login.Password) {
		utils.SendAppError(c, utils.NewUnauthorizedError("Invalid email or password"))
		return
	}

	if user.Status != models.UserActive {
		utils.SendAppError(c, utils.NewForbiddenError("This account is suspended or deleted"))
		return
	}

	token, err := utils.GenerateJWT(user, 72)
	if err != nil {
		utils.LogErrorWithUser(user.ID, err, "Error generating JWT in Login")
		utils.SendAppError(c, utils.NewInternalError("Error generating the session token"))
		return
	}

	utils.LogSuccessWithUser(user.ID, "User logged in in Login")
	utils.SendSuccess(c, http.StatusOK, gin.H{"token": token})
}

// @Summary Change password
// @Description Change the authenticated user's password
// @Tags auth
// @Accept json
// @Produce json
// @Param passwords body models.PasswordChange true "Current and new password"
// @Security BearerAuth
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response "error: VALIDATION_ERROR"
// @Failure 401 {object} utils.Response "error: UNAUTHORIZED"
// @Router /users/password [put]
func ChangePassword(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.SendAppError(c, utils.NewUnauthorizedError("User not found in token"))
		return
	}

	var change models.PasswordChange
	if !utils.ValidateRequestBody(c, &change) {
		return
	}

	if !utils.ValidatePasswordComplexity(change.NewPassword) {
		utils.SendAppError(c, utils.NewValidationError(
			"The password must contain at least one lowercase, one uppercase and one digit", nil))
		return
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.SendAppError(c, utils.NewNotFoundError("User not found"))
		return
	}

	if !checkPassword(user.Password, change.CurrentPassword) {
		utils.SendAppError(c, utils.NewUnauthorizedError("Current password is incorrect"))
		return
	}

	passwordHash, err := hashPassword(change.NewPassword)
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Error hashing password in ChangePassword")
		utils.SendAppError(c, utils.NewInternalError("Error updating the password"))
		return
	}

	if err := db.DB.Model(&user).Update("password", passwordHash).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error updating password in ChangePassword")
		utils.SendAppError(c, utils.NewInternalError("Error updating the password"))
		return
	}

	utils.LogSuccessWithUser(userID, "Password changed in ChangePassword")
	utils.SendSuccess(c, http.StatusOK, gin.H{"message": "Password updated successfully"})
}
