package reviews

import (
	"net/http"

	"blindboard-backend/db"
	"blindboard-backend/models"
	"blindboard-backend/utils"

	"github.com/gin-gonic/gin"
)

// @Summary Review a company
// @Description Leave a workplace review. Reserved for verified employees of
// that company, one review per user.
// @Tags companies
// @Accept json
// @Produce json
// @Param id path string true "Company ID"
// @Param review body models.CompanyReviewCreate true "Review"
// @Security BearerAuth
// @Success 201 {object} utils.Response "data: created review"
// @Failure 400 {object} utils.Response "error: VALIDATION_ERROR"
// @Failure 403 {object} utils.Response "error: FORBIDDEN, not an employee of this company"
// @Failure 404 {object} utils.Response "error: NOT_FOUND"
// @Failure 409 {object} utils.Response "error: CONFLICT, already reviewed"
// @Router /companies/{id}/reviews [post]
func CreateReview(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.SendAppError(c, utils.NewUnauthorizedError("User not found in token"))
		return
	}

	companyID := c.Param("id")

	var company models.Company
	if err := db.DB.First(&company, "id = ?", companyID).Error; err != nil {
		utils.SendAppError(c, utils.NewNotFoundError("Company not found"))
		return
	}

	// The gate already requires company tier; here we additionally require
	// the reviewer to belong to this very company.
	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.SendAppError(c, utils.NewNotFoundError("User not found"))
		return
	}
	if user.CompanyID == nil || *user.CompanyID != company.ID {
		utils.SendAppError(c, utils.NewForbiddenError("You can only review your own company"))
		return
	}

	var create models.CompanyReviewCreate
	if !utils.ValidateRequestBody(c, &create) {
		return
	}

	var existing models.CompanyReview
	if err := db.DB.Where("company_id = ? AND user_id = ?", companyID, userID).First(&existing).Error; err == nil {
		utils.SendAppError(c, utils.NewConflictError("You have already reviewed this company"))
		return
	}

	review := models.CompanyReview{
		CompanyID: company.ID,
		UserID:    userID.(string),
		Rating:    create.Rating,
		Title:     create.Title,
		Pros:      create.Pros,
		Cons:      create.Cons,
	}

	if err := db.DB.Create(&review).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error creating review in CreateReview")
		utils.SendAppError(c, utils.NewInternalError("Error creating the review"))
		return
	}

	utils.LogSuccessWithUser(userID, "Company review created in CreateReview")
	utils.SendSuccess(c, http.StatusCreated, review)
}

// @Summary List company reviews
// @Tags companies
// @Produce json
// @Param id path string true "Company ID"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} utils.Response "data: reviews, meta: pagination"
// @Failure 404 {object} utils.Response "error: NOT_FOUND"
// @Router /companies/{id}/reviews [get]
func GetCompanyReviews(c *gin.Context) {
	companyID := c.Param("id")

	var company models.Company
	if err := db.DB.First(&company, "id = ?", companyID).Error; err != nil {
		utils.SendAppError(c, utils.NewNotFoundError("Company not found"))
		return
	}

	page, limit := utils.Pagination(c)

	var total int64
	if err := db.DB.Model(&models.CompanyReview{}).Where("company_id = ?", companyID).Count(&total).Error; err != nil {
		utils.LogError(err, "Error counting reviews in GetCompanyReviews")
		utils.SendAppError(c, utils.NewInternalError("Error retrieving reviews"))
		return
	}

	var reviewList []models.CompanyReview
	if err := db.DB.Where("company_id = ?", companyID).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&reviewList).Error; err != nil {
		utils.LogError(err, "Error retrieving reviews in GetCompanyReviews")
		utils.SendAppError(c, utils.NewInternalError("Error retrieving reviews"))
		return
	}

	utils.SendSuccessWithMeta(c, http.StatusOK, reviewList, utils.BuildMeta(page, limit, total))
}
