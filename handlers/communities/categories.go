package communities

import (
	"net/http"

	"blindboard-backend/db"
	"blindboard-backend/models"
	"blindboard-backend/utils"

	"github.com/gin-gonic/gin"
)

// @Summary List request categories
// @Description Categories community requests can target, optional kind filter
// @Tags communities
// @Produce json
// @Param kind query string false "Kind filter (PUBLIC_SERVANT, INTEREST)"
// @Success 200 {object} utils.Response "data: categories"
// @Router /categories [get]
func GetAllCategories(c *gin.Context) {
	query := db.DB.Model(&models.Category{})
	if kind := c.Query("kind"); kind != "" {
		query = query.Where("kind = ?", kind)
	}

	var categories []models.Category
	if err := query.Order("name ASC").Find(&categories).Error; err != nil {
		utils.LogError(err, "Error retrieving categories in GetAllCategories")
		utils.SendAppError(c, utils.NewInternalError("Error retrieving categories"))
		return
	}

	utils.SendSuccess(c, http.StatusOK, categories)
}

// @Summary Create a category (Admin only)
// @Tags admin
// @Accept json
// @Produce json
// @Param category body models.CategoryCreate true "Category"
// @Security BearerAuth
// @Success 201 {object} utils.Response "data: created category"
// @Failure 400 {object} utils.Response "error: VALIDATION_ERROR"
// @Router /categories [post]
func CreateCategory(c *gin.Context) {
	var create models.CategoryCreate
	if !utils.ValidateRequestBody(c, &create) {
		return
	}

	category := models.Category{
		Name: create.Name,
		Kind: create.Kind,
	}

	if err := db.DB.Create(&category).Error; err != nil {
		utils.LogError(err, "Error creating category in CreateCategory")
		utils.SendAppError(c, utils.NewInternalError("Error creating the category"))
		return
	}

	adminID, _ := c.Get("user_id")
	utils.LogSuccessWithUser(adminID, "Category created in CreateCategory")
	utils.SendSuccess(c, http.StatusCreated, category)
}
