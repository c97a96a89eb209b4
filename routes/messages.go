package routes

import (
	"blindboard-backend/handlers/messages"
	"blindboard-backend/middleware"
	"blindboard-backend/permissions"

	"github.com/gin-gonic/gin"
)

func MessagesRoutes(r *gin.Engine) {
	messageRoutes := r.Group("/messages")
	messageRoutes.Use(middleware.RequireAccess(permissions.AccessAuthenticated))
	{
		messageRoutes.POST("", messages.SendMessage)
		messageRoutes.GET("", messages.GetMyMessages)
		messageRoutes.POST("/:id/read", messages.MarkMessageRead)
	}
}
