package routes

import (
	"blindboard-backend/handlers/communities"
	"blindboard-backend/handlers/communities/requests"
	"blindboard-backend/handlers/posts"
	"blindboard-backend/middleware"
	"blindboard-backend/permissions"

	"github.com/gin-gonic/gin"
)

func CommunitiesRoutes(r *gin.Engine) {
	// Public, with optional auth: COMPANY boards gate inside the handler
	r.GET("/communities", communities.GetAllCommunities)
	r.GET("/communities/:id", middleware.OptionalAuth(), communities.GetCommunityByID)
	r.GET("/communities/:id/posts", middleware.OptionalAuth(), posts.GetCommunityPosts)

	r.GET("/categories", communities.GetAllCategories)
	r.POST("/categories",
		middleware.RequireAccess(permissions.AccessAdmin),
		communities.CreateCategory)

	// Community requests
	requestRoutes := r.Group("/community-requests")
	{
		requestRoutes.POST("",
			middleware.RequireAccess(permissions.AccessAuthenticated),
			requests.CreateRequest)
		requestRoutes.GET("/mine",
			middleware.RequireAccess(permissions.AccessAuthenticated),
			requests.GetMyRequests)
		requestRoutes.POST("/:id/cancel",
			middleware.RequireAccess(permissions.AccessAuthenticated),
			requests.CancelRequest)

		requestRoutes.GET("",
			middleware.RequireAccess(permissions.AccessAdmin),
			requests.GetAllRequests)
		requestRoutes.PATCH("/:id",
			middleware.RequireAccess(permissions.AccessAdmin),
			requests.ReviewRequest)
	}
}
