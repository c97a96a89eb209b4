package users

import (
	"net/http"

	"blindboard-backend/db"
	"blindboard-backend/middleware"
	"blindboard-backend/models"
	"blindboard-backend/permissions"
	"blindboard-backend/utils"

	"github.com/gin-gonic/gin"
)

// @Summary Get own profile
// @Description Profile of the authenticated user with derived tier and capabilities
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response "data: user, tier, capabilities"
// @Failure 401 {object} utils.Response "error: UNAUTHORIZED"
// @Router /users/me [get]
func GetMe(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.SendAppError(c, utils.NewUnauthorizedError("User not found in token"))
		return
	}

	var user models.User
	if err := db.DB.Preload("Company").First(&user, "id = ?", userID).Error; err != nil {
		utils.SendAppError(c, utils.NewNotFoundError("User not found"))
		return
	}

	tier, caps := permissions.Classify(middleware.CurrentSession(c))

	utils.SendSuccess(c, http.StatusOK, gin.H{
		"user":         user,
		"tier":         tier,
		"capabilities": caps,
	})
}

// @Summary List users (Admin only)
// @Description Paginated user listing for the admin panel
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response "data: users, meta: pagination"
// @Failure 403 {object} utils.Response "error: FORBIDDEN"
// @Router /users [get]
func GetAllUsers(c *gin.Context) {
	page, limit := utils.Pagination(c)

	var total int64
	if err := db.DB.Model(&models.User{}).Count(&total).Error; err != nil {
		utils.LogError(err, "Error counting users in GetAllUsers")
		utils.SendAppError(c, utils.NewInternalError("Error retrieving users"))
		return
	}

	var users []models.User
	if err := db.DB.Preload("Company").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&users).Error; err != nil {
		utils.LogError(err, "Error retrieving users in GetAllUsers")
		utils.SendAppError(c, utils.NewInternalError("Error retrieving users"))
		return
	}

	utils.SendSuccessWithMeta(c, http.StatusOK, users, utils.BuildMeta(page, limit, total))
}

// @Summary Update a user's role (Admin only)
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param role body models.RoleUpdate true "New role"
// @Security BearerAuth
// @Success 200 {object} utils.Response "data: updated user"
// @Failure 400 {object} utils.Response "error: VALIDATION_ERROR"
// @Failure 404 {object} utils.Response "error: NOT_FOUND"
// @Router /users/{id}/role [patch]
func UpdateUserRole(c *gin.Context) {
	var update models.RoleUpdate
	if !utils.ValidateRequestBody(c, &update) {
		return
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendAppError(c, utils.NewNotFoundError("User not found"))
		return
	}

	if err := db.DB.Model(&user).Update("role", update.Role).Error; err != nil {
		utils.LogError(err, "Error updating role in UpdateUserRole")
		utils.SendAppError(c, utils.NewInternalError("Error updating the role"))
		return
	}

	adminID, _ := c.Get("user_id")
	utils.LogSuccessWithUser(adminID, "User role updated in UpdateUserRole")
	utils.SendSuccess(c, http.StatusOK, user)
}

// @Summary Update a user's status (Admin only)
// @Description Suspend, reactivate or soft-delete an account. Accounts are never hard-deleted.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param status body models.StatusUpdate true "New status"
// @Security BearerAuth
// @Success 200 {object} utils.Response "data: updated user"
// @Failure 400 {object} utils.Response "error: VALIDATION_ERROR"
// @Failure 404 {object} utils.Response "error: NOT_FOUND"
// @Router /users/{id}/status [patch]
func UpdateUserStatus(c *gin.Context) {
	var update models.StatusUpdate
	if !utils.ValidateRequestBody(c, &update) {
		return
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendAppError(c, utils.NewNotFoundError("User not found"))
		return
	}

	if err := db.DB.Model(&user).Update("status", update.Status).Error; err != nil {
		utils.LogError(err, "Error updating status in UpdateUserStatus")
		utils.SendAppError(c, utils.NewInternalError("Error updating the status"))
		return
	}

	adminID, _ := c.Get("user_id")
	utils.LogSuccessWithUser(adminID, "User status updated in UpdateUserStatus")
	utils.SendSuccess(c, http.StatusOK, user)
}

// @Summary Set a user's company verification (Admin only)
// @Description Links the user to a company and flips the verified flag. The
// user's tier changes on their next request, no re-login needed.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param verification body models.CompanyVerificationUpdate true "Company and verified flag"
// @Security BearerAuth
// @Success 200 {object} utils.Response "data: updated user"
// @Failure 400 {object} utils.Response "error: VALIDATION_ERROR"
// @Failure 404 {object} utils.Response "error: NOT_FOUND"
// @Router /users/{id}/company-verification [patch]
func UpdateCompanyVerification(c *gin.Context) {
	var update models.CompanyVerificationUpdate
	if !utils.ValidateRequestBody(c, &update) {
		return
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendAppError(c, utils.NewNotFoundError("User not found"))
		return
	}

	var company models.Company
	if err := db.DB.First(&company, "id = ?", update.CompanyID).Error; err != nil {
		utils.SendAppError(c, utils.NewNotFoundError("Company not found"))
		return
	}

	updates := map[string]interface{}{
		"company_id":       company.ID,
		"company_verified": update.Verified,
	}
	if err := db.DB.Model(&user).Updates(updates).Error; err != nil {
		utils.LogError(err, "Error updating verification in UpdateCompanyVerification")
		utils.SendAppError(c, utils.NewInternalError("Error updating the company verification"))
		return
	}

	adminID, _ := c.Get("user_id")
	utils.LogSuccessWithUser(adminID, "Company verification updated in UpdateCompanyVerification")
	utils.SendSuccess(c, http.StatusOK, user)
}
