package requests

import (
	"net/http"
	"strings"

	"blindboard-backend/db"
	"blindboard-backend/models"
	"blindboard-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// slugify builds a url-safe slug from the requested name, suffixed to stay
// unique without a lookup.
func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), "-")
	var b strings.Builder
	for _, r := range slug {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String() + "-" + uuid.NewString()[:8]
}

// @Summary Request a new community
// @Description Submit a community creation request for admin review.
// COMPANY requests must reference an existing company, PUBLIC_SERVANT and
// INTEREST requests an existing category of the matching kind.
// @Tags communities
// @Accept json
// @Produce json
// @Param request body models.CommunityRequestCreate true "Request"
// @Security BearerAuth
// @Success 201 {object} utils.Response "data: created request"
// @Failure 400 {object} utils.Response "error: VALIDATION_ERROR, missing or unresolvable reference"
// @Router /community-requests [post]
func CreateRequest(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.SendAppError(c, utils.NewUnauthorizedError("User not found in token"))
		return
	}

	var create models.CommunityRequestCreate
	if !utils.ValidateRequestBody(c, &create) {
		return
	}

	switch create.TargetType {
	case models.CommunityCompany:
		if create.CompanyID == nil {
			utils.SendAppError(c, utils.NewValidationError("A COMPANY request requires companyId", nil))
			return
		}
		var company models.Company
		if err := db.DB.First(&company, "id = ?", *create.CompanyID).Error; err != nil {
			utils.SendAppError(c, utils.NewValidationError("companyId does not resolve to a company", nil))
			return
		}
	case models.CommunityPublicServant, models.CommunityInterest:
		if create.CategoryID == nil {
			utils.SendAppError(c, utils.NewValidationError("This request type requires categoryId", nil))
			return
		}
		var category models.Category
		if err := db.DB.First(&category, "id = ? AND kind = ?", *create.CategoryID, create.TargetType).Error; err != nil {
			utils.SendAppError(c, utils.NewValidationError("categoryId does not resolve to a category of this kind", nil))
			return
		}
	}

	request := models.CommunityRequest{
		RequesterID: userID.(string),
		Name:        create.Name,
		Description: create.Description,
		TargetType:  create.TargetType,
		CompanyID:   create.CompanyID,
		CategoryID:  create.CategoryID,
		Status:      models.RequestPending,
	}

	if err := db.DB.Create(&request).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error creating community request in CreateRequest")
		utils.SendAppError(c, utils.NewInternalError("Error creating the request"))
		return
	}

	utils.LogSuccessWithUser(userID, "Community request submitted in CreateRequest")
	utils.SendSuccess(c, http.StatusCreated, request)
}

// @Summary List own community requests
// @Tags communities
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response "data: requests"
// @Router /community-requests/mine [get]
func GetMyRequests(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.SendAppError(c, utils.NewUnauthorizedError("User not found in token"))
		return
	}

	var requestList []models.CommunityRequest
	if err := db.DB.Preload("CreatedCommunity").
		Where("requester_id = ?", userID).
		Order("created_at DESC").
		Find(&requestList).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error retrieving requests in GetMyRequests")
		utils.SendAppError(c, utils.NewInternalError("Error retrieving your requests"))
		return
	}

	utils.SendSuccess(c, http.StatusOK, requestList)
}

// @Summary Cancel own community request
// @Description Only the original requester may cancel, and only while PENDING
// @Tags communities
// @Produce json
// @Param id path string true "Request ID"
// @Security BearerAuth
// @Success 200 {object} utils.Response "data: cancelled request"
// @Failure 403 {object} utils.Response "error: FORBIDDEN, not the requester"
// @Failure 404 {object} utils.Response "error: NOT_FOUND"
// @Failure 409 {object} utils.Response "error: INVALID_STATE, no longer pending"
// @Router /community-requests/{id}/cancel [post]
func CancelRequest(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.SendAppError(c, utils.NewUnauthorizedError("User not found in token"))
		return
	}

	var request models.CommunityRequest
	if err := db.DB.First(&request, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendAppError(c, utils.NewNotFoundError("Request not found"))
		return
	}

	if request.RequesterID != userID.(string) {
		utils.SendAppError(c, utils.NewForbiddenError("Only the requester can cancel this request"))
		return
	}

	if request.Status != models.RequestPending {
		utils.SendAppError(c, utils.NewInvalidStateError("Only a pending request can be cancelled"))
		return
	}

	result := db.DB.Model(&models.CommunityRequest{}).
		Where("id = ? AND status = ?", request.ID, models.RequestPending).
		Update("status", models.RequestCancelled)
	if result.Error != nil {
		utils.LogErrorWithUser(userID, result.Error, "Error cancelling request in CancelRequest")
		utils.SendAppError(c, utils.NewInternalError("Error cancelling the request"))
		return
	}
	if result.RowsAffected == 0 {
		utils.SendAppError(c, utils.NewInvalidStateError("Only a pending request can be cancelled"))
		return
	}

	request.Status = models.RequestCancelled

	utils.LogSuccessWithUser(userID, "Community request cancelled in CancelRequest")
	utils.SendSuccess(c, http.StatusOK, request)
}

// @Summary List community requests (Admin only)
// @Description Paginated request queue, oldest pending first, optional status filter
// @Tags admin
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Param status query string false "Status filter"
// @Security BearerAuth
// @Success 200 {object} utils.Response "data: requests, meta: pagination"
// @Failure 403 {object} utils.Response "error: FORBIDDEN"
// @Router /community-requests [get]
func GetAllRequests(c *gin.Context) {
	page, limit := utils.Pagination(c)

	query := db.DB.Model(&models.CommunityRequest{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError(err, "Error counting requests in GetAllRequests")
		utils.SendAppError(c, utils.NewInternalError("Error retrieving requests"))
		return
	}

	var requestList []models.CommunityRequest
	if err := query.Order("created_at ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&requestList).Error; err != nil {
		utils.LogError(err, "Error retrieving requests in GetAllRequests")
		utils.SendAppError(c, utils.NewInternalError("Error retrieving requests"))
		return
	}

	utils.SendSuccessWithMeta(c, http.StatusOK, requestList, utils.BuildMeta(page, limit, total))
}

// @Summary Review a community request (Admin only)
// @Description Approve or reject a pending request. Approval creates the
// community and links it in the same transaction: a request can never be
// APPROVED without its community, and never approved twice.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param review body models.CommunityRequestReview true "Review"
// @Security BearerAuth
// @Success 200 {object} utils.Response "data: reviewed request"
// @Failure 400 {object} utils.Response "error: VALIDATION_ERROR"
// @Failure 404 {object} utils.Response "error: NOT_FOUND"
// @Failure 409 {object} utils.Response "error: INVALID_STATE, no longer pending"
// @Router /community-requests/{id} [patch]
func ReviewRequest(c *gin.Context) {
	adminID, exists := c.Get("user_id")
	if !exists {
		utils.SendAppError(c, utils.NewUnauthorizedError("User not found in token"))
		return
	}

	var review models.CommunityRequestReview
	if !utils.ValidateRequestBody(c, &review) {
		return
	}

	var request models.CommunityRequest
	if err := db.DB.First(&request, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendAppError(c, utils.NewNotFoundError("Request not found"))
		return
	}

	if request.Status != models.RequestPending {
		utils.SendAppError(c, utils.NewInvalidStateError("This request has already been reviewed"))
		return
	}

	var appErr *utils.AppError
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		// The status flip is guarded on PENDING inside the transaction, so
		// of two racing reviews exactly one wins and only the winner's
		// community insert commits.
		result := tx.Model(&models.CommunityRequest{}).
			Where("id = ? AND status = ?", request.ID, models.RequestPending).
			Updates(map[string]interface{}{
				"status":     review.Status,
				"admin_note": review.AdminNote,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			appErr = utils.NewInvalidStateError("This request has already been reviewed")
			return appErr
		}

		if review.Status == models.RequestApproved {
			community := models.Community{
				Slug:        slugify(request.Name),
				Name:        request.Name,
				Description: request.Description,
				Type:        request.TargetType,
				CompanyID:   request.CompanyID,
				CategoryID:  request.CategoryID,
				CreatedBy:   request.RequesterID,
			}
			if err := tx.Create(&community).Error; err != nil {
				return err
			}

			if err := tx.Model(&models.CommunityRequest{}).
				Where("id = ?", request.ID).
				Update("created_community_id", community.ID).Error; err != nil {
				return err
			}
			request.CreatedCommunityID = &community.ID
			request.CreatedCommunity = &community
		}

		return nil
	})
	if err != nil {
		if appErr != nil {
			utils.SendAppError(c, appErr)
			return
		}
		utils.LogErrorWithUser(adminID, err, "Error reviewing request in ReviewRequest")
		utils.SendAppError(c, utils.NewInternalError("Error reviewing the request"))
		return
	}

	request.Status = review.Status
	request.AdminNote = review.AdminNote

	// Best effort: tell the requester about the outcome.
	notification := models.Notification{
		UserID:  request.RequesterID,
		Type:    models.NotifSystem,
		Message: "Your community request has been " + strings.ToLower(string(review.Status)),
		Data: models.NotificationData(map[string]string{
			"requestId": request.ID,
			"status":    string(review.Status),
		}),
	}
	if err := db.DB.Create(&notification).Error; err != nil {
		utils.LogErrorWithUser(adminID, err, "Error notifying requester in ReviewRequest")
	}

	utils.LogSuccessWithUser(adminID, "Community request reviewed in ReviewRequest")
	utils.SendSuccess(c, http.StatusOK, request)
}
