package routes

import (
	"blindboard-backend/handlers/notifications"
	"blindboard-backend/middleware"
	"blindboard-backend/permissions"

	"github.com/gin-gonic/gin"
)

func NotificationsRoutes(r *gin.Engine) {
	notificationRoutes := r.Group("/notifications")
	notificationRoutes.Use(middleware.RequireAccess(permissions.AccessAuthenticated))
	{
		notificationRoutes.GET("", notifications.GetMyNotifications)
		notificationRoutes.POST("/read-all", notifications.MarkAllRead)
		notificationRoutes.POST("/:id/read", notifications.MarkRead)
		notificationRoutes.DELETE("/:id", notifications.DeleteNotification)
	}
}
