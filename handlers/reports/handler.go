package reports

import (
	"net/http"
	"time"

	"blindboard-backend/db"
	"blindboard-backend/models"
	"blindboard-backend/utils"

	"github.com/gin-gonic/gin"
)

// @Summary Report content or a user
// @Description Submit a report against exactly one target: a post, a comment or a user
// @Tags reports
// @Accept json
// @Produce json
// @Param report body models.ReportCreate true "Report"
// @Security BearerAuth
// @Success 201 {object} utils.Response "data: created report"
// @Failure 400 {object} utils.Response "error: VALIDATION_ERROR, target required"
// @Failure 404 {object} utils.Response "error: NOT_FOUND, target does not exist"
// @Router /reports [post]
func SubmitReport(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.SendAppError(c, utils.NewUnauthorizedError("User not found in token"))
		return
	}

	var create models.ReportCreate
	if !utils.ValidateRequestBody(c, &create) {
		return
	}

	targets := 0
	if create.PostID != nil {
		targets++
	}
	if create.CommentID != nil {
		targets++
	}
	if create.ReportedUserID != nil {
		targets++
	}
	if targets == 0 {
		utils.SendAppError(c, utils.NewValidationError(
			"A report requires a target: postId, commentId or reportedUserId", nil))
		return
	}
	if targets > 1 {
		utils.SendAppError(c, utils.NewValidationError(
			"A report targets exactly one of postId, commentId or reportedUserId", nil))
		return
	}

	switch {
	case create.PostID != nil:
		var post models.Post
		if err := db.DB.First(&post, "id = ?", *create.PostID).Error; err != nil {
			utils.SendAppError(c, utils.NewNotFoundError("Post not found"))
			return
		}
	case create.CommentID != nil:
		var comment models.Comment
		if err := db.DB.First(&comment, "id = ?", *create.CommentID).Error; err != nil {
			utils.SendAppError(c, utils.NewNotFoundError("Comment not found"))
			return
		}
	case create.ReportedUserID != nil:
		var reported models.User
		if err := db.DB.First(&reported, "id = ?", *create.ReportedUserID).Error; err != nil {
			utils.SendAppError(c, utils.NewNotFoundError("User not found"))
			return
		}
	}

	report := models.Report{
		PostID:         create.PostID,
		CommentID:      create.CommentID,
		ReportedUserID: create.ReportedUserID,
		ReportedBy:     userID.(string),
		Reason:         create.Reason,
		Description:    create.Description,
		Status:         models.ReportPending,
	}

	if err := db.DB.Create(&report).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error creating report in SubmitReport")
		utils.SendAppError(c, utils.NewInternalError("Error creating the report"))
		return
	}

	utils.LogSuccessWithUser(userID, "Report submitted in SubmitReport")
	utils.SendSuccess(c, http.StatusCreated, report)
}

// @Summary List reports (Admin only)
// @Description Paginated report queue, newest first, optional status filter
// @Tags admin
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Param status query string false "Status filter (PENDING, REVIEWING, RESOLVED, DISMISSED)"
// @Security BearerAuth
// @Success 200 {object} utils.Response "data: reports, meta: pagination"
// @Failure 403 {object} utils.Response "error: FORBIDDEN"
// @Router /reports [get]
func GetAllReports(c *gin.Context) {
	page, limit := utils.Pagination(c)

	query := db.DB.Model(&models.Report{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError(err, "Error counting reports in GetAllReports")
		utils.SendAppError(c, utils.NewInternalError("Error retrieving reports"))
		return
	}

	var reports []models.Report
	if err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&reports).Error; err != nil {
		utils.LogError(err, "Error retrieving reports in GetAllReports")
		utils.SendAppError(c, utils.NewInternalError("Error retrieving reports"))
		return
	}

	utils.SendSuccessWithMeta(c, http.StatusOK, reports, utils.BuildMeta(page, limit, total))
}

// @Summary Resolve a report (Admin only)
// @Description Move a report to RESOLVED or DISMISSED. Terminal: a report is
// resolved at most once, the loser of two concurrent resolutions is rejected.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Param resolution body models.ReportResolve true "Resolution"
// @Security BearerAuth
// @Success 200 {object} utils.Response "data: resolved report"
// @Failure 400 {object} utils.Response "error: VALIDATION_ERROR"
// @Failure 404 {object} utils.Response "error: NOT_FOUND"
// @Failure 409 {object} utils.Response "error: INVALID_STATE, already resolved"
// @Router /reports/{id} [patch]
func ResolveReport(c *gin.Context) {
	adminID, exists := c.Get("user_id")
	if !exists {
		utils.SendAppError(c, utils.NewUnauthorizedError("User not found in token"))
		return
	}

	var resolve models.ReportResolve
	if !utils.ValidateRequestBody(c, &resolve) {
		return
	}

	reportID := c.Param("id")

	var report models.Report
	if err := db.DB.First(&report, "id = ?", reportID).Error; err != nil {
		utils.SendAppError(c, utils.NewNotFoundError("Report not found"))
		return
	}

	if report.Status == models.ReportResolved || report.Status == models.ReportDismissed {
		utils.SendAppError(c, utils.NewInvalidStateError("This report has already been resolved"))
		return
	}

	// Conditional update guarded on the current status: if another admin
	// resolved the report between the read above and this write, zero rows
	// are affected and the caller gets INVALID_STATE instead of a silent
	// overwrite.
	now := time.Now()
	adminIDStr := adminID.(string)
	result := db.DB.Model(&models.Report{}).
		Where("id = ? AND status IN ?", reportID, []models.ReportStatus{models.ReportPending, models.ReportReviewing}).
		Updates(map[string]interface{}{
			"status":      resolve.Status,
			"resolution":  resolve.Resolution,
			"resolved_by": adminIDStr,
			"resolved_at": now,
		})
	if result.Error != nil {
		utils.LogErrorWithUser(adminID, result.Error, "Error resolving report in ResolveReport")
		utils.SendAppError(c, utils.NewInternalError("Error resolving the report"))
		return
	}
	if result.RowsAffected == 0 {
		utils.SendAppError(c, utils.NewInvalidStateError("This report has already been resolved"))
		return
	}

	report.Status = resolve.Status
	report.Resolution = resolve.Resolution
	report.ResolvedBy = &adminIDStr
	report.ResolvedAt = &now

	// Best effort: tell the reporter their report was handled.
	notification := models.Notification{
		UserID:  report.ReportedBy,
		Type:    models.NotifSystem,
		Message: "Your report has been reviewed by the moderation team",
		Data:    models.NotificationData(map[string]string{"reportId": report.ID, "status": string(report.Status)}),
	}
	if err := db.DB.Create(&notification).Error; err != nil {
		utils.LogErrorWithUser(adminID, err, "Error notifying reporter in ResolveReport")
	}

	utils.LogSuccessWithUser(adminID, "Report resolved in ResolveReport")
	utils.SendSuccess(c, http.StatusOK, report)
}
