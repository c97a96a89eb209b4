package routes

import (
	"blindboard-backend/handlers/users"
	"blindboard-backend/middleware"
	"blindboard-backend/permissions"

	"github.com/gin-gonic/gin"
)

func UsersRoutes(r *gin.Engine) {
	r.GET("/users/me",
		middleware.RequireAccess(permissions.AccessAuthenticated),
		users.GetMe)

	adminRoutes := r.Group("/users")
	adminRoutes.Use(middleware.RequireAccess(permissions.AccessAdmin))
	{
		adminRoutes.GET("", users.GetAllUsers)
		adminRoutes.PATCH("/:id/role", users.UpdateUserRole)
		adminRoutes.PATCH("/:id/status", users.UpdateUserStatus)
		adminRoutes.PATCH("/:id/company-verification", users.UpdateCompanyVerification)
	}
}
