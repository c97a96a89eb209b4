package routes

import (
	"blindboard-backend/handlers/posts"
	"blindboard-backend/handlers/posts/comments"
	"blindboard-backend/handlers/posts/votes"
	"blindboard-backend/middleware"
	"blindboard-backend/permissions"

	"github.com/gin-gonic/gin"
)

func PostsRoutes(r *gin.Engine) {
	// Public reads, company boards gate inside the handler
	r.GET("/posts/:id", middleware.OptionalAuth(), posts.GetPostByID)
	r.GET("/posts/:id/comments", middleware.OptionalAuth(), comments.GetCommentsByPostID)

	postsRoutes := r.Group("/posts")
	postsRoutes.Use(middleware.RequireAccess(permissions.AccessAuthenticated))
	{
		postsRoutes.POST("", posts.CreatePost)
		postsRoutes.PUT("/:id", posts.UpdatePost)
		postsRoutes.DELETE("/:id", posts.DeletePost)

		postsRoutes.POST("/:id/comments", comments.CreateComment)
		postsRoutes.POST("/:id/vote", votes.VotePost)
	}
}
