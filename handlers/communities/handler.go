package communities

import (
	"net/http"

	"blindboard-backend/db"
	"blindboard-backend/middleware"
	"blindboard-backend/models"
	"blindboard-backend/permissions"
	"blindboard-backend/utils"

	"github.com/gin-gonic/gin"
)

// @Summary List communities
// @Description Paginated community directory, optional type filter. COMPANY
// communities are listed for everyone but their content is gated.
// @Tags communities
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Param type query string false "Type filter (COMPANY, PUBLIC_SERVANT, INTEREST, GENERAL)"
// @Success 200 {object} utils.Response "data: communities, meta: pagination"
// @Router /communities [get]
func GetAllCommunities(c *gin.Context) {
	page, limit := utils.Pagination(c)

	query := db.DB.Model(&models.Community{})
	if t := c.Query("type"); t != "" {
		query = query.Where("type = ?", t)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError(err, "Error counting communities in GetAllCommunities")
		utils.SendAppError(c, utils.NewInternalError("Error retrieving communities"))
		return
	}

	var communityList []models.Community
	if err := query.Order("name ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&communityList).Error; err != nil {
		utils.LogError(err, "Error retrieving communities in GetAllCommunities")
		utils.SendAppError(c, utils.NewInternalError("Error retrieving communities"))
		return
	}

	utils.SendSuccessWithMeta(c, http.StatusOK, communityList, utils.BuildMeta(page, limit, total))
}

// @Summary Get a community
// @Description Community details. COMPANY communities require company access;
// the denial carries the gate's remedy so the client can start verification.
// @Tags communities
// @Produce json
// @Param id path string true "Community ID"
// @Success 200 {object} utils.Response "data: community"
// @Failure 401 {object} utils.Response "error: UNAUTHORIZED"
// @Failure 403 {object} utils.Response "error: FORBIDDEN, company verification required"
// @Failure 404 {object} utils.Response "error: NOT_FOUND"
// @Router /communities/{id} [get]
func GetCommunityByID(c *gin.Context) {
	var community models.Community
	if err := db.DB.First(&community, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendAppError(c, utils.NewNotFoundError("Community not found"))
		return
	}

	if decision := GateCommunity(c, community); decision != nil {
		return
	}

	utils.SendSuccess(c, http.StatusOK, community)
}

// GateCommunity enforces the company gate on COMPANY communities. The gate
// decision is re-evaluated per request from the session the middleware
// resolved. Returns the denial after answering the request, nil when access
// is allowed.
func GateCommunity(c *gin.Context, community models.Community) *permissions.Decision {
	if community.Type != models.CommunityCompany {
		return nil
	}

	decision := permissions.Authorize(middleware.CurrentSession(c), permissions.AccessCompany)
	if decision.Allowed {
		return nil
	}

	status := http.StatusForbidden
	code := utils.CodeForbidden
	if decision.Tier == permissions.TierGuest {
		status = http.StatusUnauthorized
		code = utils.CodeUnauthorized
	}
	c.JSON(status, utils.Response{
		Success: false,
		Error: &utils.APIError{
			Code:    code,
			Message: decision.Title,
			Details: gin.H{
				"description": decision.Description,
				"remedy":      decision.Remedy,
			},
		},
	})
	return &decision
}
