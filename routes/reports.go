package routes

import (
	"blindboard-backend/handlers/reports"
	"blindboard-backend/middleware"
	"blindboard-backend/permissions"

	"github.com/gin-gonic/gin"
)

func ReportsRoutes(r *gin.Engine) {
	r.POST("/reports",
		middleware.RequireAccess(permissions.AccessAuthenticated),
		reports.SubmitReport)

	r.GET("/reports",
		middleware.RequireAccess(permissions.AccessAdmin),
		reports.GetAllReports)
	r.PATCH("/reports/:id",
		middleware.RequireAccess(permissions.AccessAdmin),
		reports.ResolveReport)
}
