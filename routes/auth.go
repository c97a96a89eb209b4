package routes

import (
	"blindboard-backend/handlers/auth"
	"blindboard-backend/middleware"
	"blindboard-backend/permissions"

	"github.com/gin-gonic/gin"
)

func AuthRoutes(r *gin.Engine) {
	r.POST("/register", auth.Register)
	r.POST("/login", auth.Login)

	r.PUT("/users/password",
		middleware.RequireAccess(permissions.AccessAuthenticated),
		auth.ChangePassword)
}
