package routes

import (
	"blindboard-backend/handlers/companies"
	"blindboard-backend/handlers/companies/reviews"
	"blindboard-backend/middleware"
	"blindboard-backend/permissions"

	"github.com/gin-gonic/gin"
)

func CompaniesRoutes(r *gin.Engine) {
	// Public directory
	r.GET("/companies", companies.GetAllCompanies)
	r.GET("/companies/:id", companies.GetCompanyByID)
	r.GET("/companies/:id/reviews", reviews.GetCompanyReviews)

	// Reviews are reserved to verified company employees
	r.POST("/companies/:id/reviews",
		middleware.RequireAccess(permissions.AccessCompany),
		reviews.CreateReview)

	r.POST("/companies",
		middleware.RequireAccess(permissions.AccessAdmin),
		companies.CreateCompany)
}
