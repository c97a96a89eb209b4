package notifications

import (
	"net/http"

	"blindboard-backend/db"
	"blindboard-backend/models"
	"blindboard-backend/utils"

	"github.com/gin-gonic/gin"
)

// @Summary List own notifications
// @Description Paginated, newest first. The response data also carries the
// unread count.
// @Tags notifications
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Security BearerAuth
// @Success 200 {object} utils.Response "data: notifications + unreadCount, meta: pagination"
// @Router /notifications [get]
func GetMyNotifications(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.SendAppError(c, utils.NewUnauthorizedError("User not found in token"))
		return
	}

	page, limit := utils.Pagination(c)

	var total int64
	if err := db.DB.Model(&models.Notification{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error counting notifications in GetMyNotifications")
		utils.SendAppError(c, utils.NewInternalError("Error retrieving notifications"))
		return
	}

	var unread int64
	if err := db.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&unread).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error counting unread in GetMyNotifications")
		utils.SendAppError(c, utils.NewInternalError("Error retrieving notifications"))
		return
	}

	var notificationList []models.Notification
	if err := db.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&notificationList).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error retrieving notifications in GetMyNotifications")
		utils.SendAppError(c, utils.NewInternalError("Error retrieving notifications"))
		return
	}

	utils.SendSuccessWithMeta(c, http.StatusOK, gin.H{
		"notifications": notificationList,
		"unreadCount":   unread,
	}, utils.BuildMeta(page, limit, total))
}

// @Summary Mark a notification read
// @Description Owner only. Marking an already-read notification is a no-op
// success, not an error.
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Security BearerAuth
// @Success 200 {object} utils.Response "data: notification"
// @Failure 403 {object} utils.Response "error: FORBIDDEN, not the owner"
// @Failure 404 {object} utils.Response "error: NOT_FOUND"
// @Router /notifications/{id}/read [post]
func MarkRead(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.SendAppError(c, utils.NewUnauthorizedError("User not found in token"))
		return
	}

	var notification models.Notification
	if err := db.DB.First(&notification, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendAppError(c, utils.NewNotFoundError("Notification not found"))
		return
	}

	if notification.UserID != userID.(string) {
		utils.SendAppError(c, utils.NewForbiddenError("This notification does not belong to you"))
		return
	}

	if !notification.IsRead {
		if err := db.DB.Model(&notification).Update("is_read", true).Error; err != nil {
			utils.LogErrorWithUser(userID, err, "Error marking notification read in MarkRead")
			utils.SendAppError(c, utils.NewInternalError("Error updating the notification"))
			return
		}
		notification.IsRead = true
	}

	utils.SendSuccess(c, http.StatusOK, notification)
}

// @Summary Mark all notifications read
// @Description Returns the number of notifications affected; calling it
// again returns 0.
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response "data: count"
// @Router /notifications/read-all [post]
func MarkAllRead(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.SendAppError(c, utils.NewUnauthorizedError("User not found in token"))
		return
	}

	result := db.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	if result.Error != nil {
		utils.LogErrorWithUser(userID, result.Error, "Error marking all read in MarkAllRead")
		utils.SendAppError(c, utils.NewInternalError("Error updating notifications"))
		return
	}

	utils.LogSuccessWithUser(userID, "Notifications marked read in MarkAllRead")
	utils.SendSuccess(c, http.StatusOK, gin.H{"count": result.RowsAffected})
}

// @Summary Delete a notification
// @Description Owner only
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Security BearerAuth
// @Success 200 {object} utils.Response
// @Failure 403 {object} utils.Response "error: FORBIDDEN, not the owner"
// @Failure 404 {object} utils.Response "error: NOT_FOUND"
// @Router /notifications/{id} [delete]
func DeleteNotification(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.SendAppError(c, utils.NewUnauthorizedError("User not found in token"))
		return
	}

	var notification models.Notification
	if err := db.DB.First(&notification, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendAppError(c, utils.NewNotFoundError("Notification not found"))
		return
	}

	if notification.UserID != userID.(string) {
		utils.SendAppError(c, utils.NewForbiddenError("This notification does not belong to you"))
		return
	}

	if err := db.DB.Delete(&notification).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error deleting notification in DeleteNotification")
		utils.SendAppError(c, utils.NewInternalError("Error deleting the notification"))
		return
	}

	utils.SendSuccess(c, http.StatusOK, gin.H{"message": "Notification deleted successfully"})
}
