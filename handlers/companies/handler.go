package companies

import (
	"net/http"

	"blindboard-backend/db"
	"blindboard-backend/models"
	"blindboard-backend/utils"

	"github.com/gin-gonic/gin"
)

// @Summary List companies
// @Description Paginated company directory, optional name search
// @Tags companies
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Param q query string false "Name search"
// @Success 200 {object} utils.Response "data: companies, meta: pagination"
// @Router /companies [get]
func GetAllCompanies(c *gin.Context) {
	page, limit := utils.Pagination(c)

	query := db.DB.Model(&models.Company{})
	if q := c.Query("q"); q != "" {
		query = query.Where("name ILIKE ?", "%"+q+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError(err, "Error counting companies in GetAllCompanies")
		utils.SendAppError(c, utils.NewInternalError("Error retrieving companies"))
		return
	}

	var companies []models.Company
	if err := query.Order("name ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&companies).Error; err != nil {
		utils.LogError(err, "Error retrieving companies in GetAllCompanies")
		utils.SendAppError(c, utils.NewInternalError("Error retrieving companies"))
		return
	}

	utils.SendSuccessWithMeta(c, http.StatusOK, companies, utils.BuildMeta(page, limit, total))
}

// @Summary Get a company
// @Tags companies
// @Produce json
// @Param id path string true "Company ID"
// @Success 200 {object} utils.Response "data: company"
// @Failure 404 {object} utils.Response "error: NOT_FOUND"
// @Router /companies/{id} [get]
func GetCompanyByID(c *gin.Context) {
	var company models.Company
	if err := db.DB.First(&company, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendAppError(c, utils.NewNotFoundError("Company not found"))
		return
	}

	utils.SendSuccess(c, http.StatusOK, company)
}

// @Summary Create a company (Admin only)
// @Tags admin
// @Accept json
// @Produce json
// @Param company body models.CompanyCreate true "Company information"
// @Security BearerAuth
// @Success 201 {object} utils.Response "data: created company"
// @Failure 400 {object} utils.Response "error: VALIDATION_ERROR"
// @Failure 409 {object} utils.Response "error: CONFLICT, slug already used"
// @Router /companies [post]
func CreateCompany(c *gin.Context) {
	var create models.CompanyCreate
	if !utils.ValidateRequestBody(c, &create) {
		return
	}

	var existing models.Company
	if err := db.DB.Where("slug = ?", create.Slug).First(&existing).Error; err == nil {
		utils.SendAppError(c, utils.NewConflictError("A company with this slug already exists"))
		return
	}

	company := models.Company{
		Slug:     create.Slug,
		Name:     create.Name,
		Industry: create.Industry,
	}

	if err := db.DB.Create(&company).Error; err != nil {
		utils.LogError(err, "Error creating company in CreateCompany")
		utils.SendAppError(c, utils.NewInternalError("Error creating the company"))
		return
	}

	adminID, _ := c.Get("user_id")
	utils.LogSuccessWithUser(adminID, "Company created in CreateCompany")
	utils.SendSuccess(c, http.StatusCreated, company)
}
