package posts

import (
	"net/http"

	"blindboard-backend/db"
	"blindboard-backend/handlers/communities"
	"blindboard-backend/models"
	"blindboard-backend/utils"

	"github.com/gin-gonic/gin"
)

// @Summary List posts of a community
// @Description Paginated, newest first. COMPANY communities require company access.
// @Tags posts
// @Produce json
// @Param id path string true "Community ID"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} utils.Response "data: posts, meta: pagination"
// @Failure 403 {object} utils.Response "error: FORBIDDEN, company verification required"
// @Failure 404 {object} utils.Response "error: NOT_FOUND"
// @Router /communities/{id}/posts [get]
func GetCommunityPosts(c *gin.Context) {
	var community models.Community
	if err := db.DB.First(&community, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendAppError(c, utils.NewNotFoundError("Community not found"))
		return
	}

	if decision := communities.GateCommunity(c, community); decision != nil {
		return
	}

	page, limit := utils.Pagination(c)

	var total int64
	if err := db.DB.Model(&models.Post{}).Where("community_id = ?", community.ID).Count(&total).Error; err != nil {
		utils.LogError(err, "Error counting posts in GetCommunityPosts")
		utils.SendAppError(c, utils.NewInternalError("Error retrieving posts"))
		return
	}

	var postList []models.Post
	if err := db.DB.Where("community_id = ?", community.ID).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&postList).Error; err != nil {
		utils.LogError(err, "Error retrieving posts in GetCommunityPosts")
		utils.SendAppError(c, utils.NewInternalError("Error retrieving posts"))
		return
	}

	utils.SendSuccessWithMeta(c, http.StatusOK, postList, utils.BuildMeta(page, limit, total))
}

// @Summary Get a post
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} utils.Response "data: post"
// @Failure 403 {object} utils.Response "error: FORBIDDEN, company verification required"
// @Failure 404 {object} utils.Response "error: NOT_FOUND"
// @Router /posts/{id} [get]
func GetPostByID(c *gin.Context) {
	var post models.Post
	if err := db.DB.First(&post, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendAppError(c, utils.NewNotFoundError("Post not found"))
		return
	}

	var community models.Community
	if err := db.DB.First(&community, "id = ?", post.CommunityID).Error; err != nil {
		utils.SendAppError(c, utils.NewNotFoundError("Community not found"))
		return
	}
	if decision := communities.GateCommunity(c, community); decision != nil {
		return
	}

	utils.SendSuccess(c, http.StatusOK, post)
}

// @Summary Create a post
// @Tags posts
// @Accept json
// @Produce json
// @Param post body models.PostCreate true "Post"
// @Security BearerAuth
// @Success 201 {object} utils.Response "data: created post"
// @Failure 400 {object} utils.Response "error: VALIDATION_ERROR"
// @Failure 403 {object} utils.Response "error: FORBIDDEN, company verification required"
// @Failure 404 {object} utils.Response "error: NOT_FOUND, community does not exist"
// @Router /posts [post]
func CreatePost(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.SendAppError(c, utils.NewUnauthorizedError("User not found in token"))
		return
	}

	var create models.PostCreate
	if !utils.ValidateRequestBody(c, &create) {
		return
	}

	var community models.Community
	if err := db.DB.First(&community, "id = ?", create.CommunityID).Error; err != nil {
		utils.SendAppError(c, utils.NewNotFoundError("Community not found"))
		return
	}
	if decision := communities.GateCommunity(c, community); decision != nil {
		return
	}

	post := models.Post{
		CommunityID: community.ID,
		UserID:      userID.(string),
		Title:       create.Title,
		Content:     create.Content,
	}

	if err := db.DB.Create(&post).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error creating post in CreatePost")
		utils.SendAppError(c, utils.NewInternalError("Error creating the post"))
		return
	}

	utils.LogSuccessWithUser(userID, "Post created in CreatePost")
	utils.SendSuccess(c, http.StatusCreated, post)
}

// canEditPost: the author, or a moderator/admin.
func canEditPost(c *gin.Context, post models.Post) bool {
	userID, _ := c.Get("user_id")
	if userID == post.UserID {
		return true
	}
	role, _ := c.Get("role")
	return role == models.ModeratorRole || role == models.AdminRole
}

// @Summary Update a post
// @Description Author only, moderators and admins excepted
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param post body models.PostUpdate true "Fields to update"
// @Security BearerAuth
// @Success 200 {object} utils.Response "data: updated post"
// @Failure 403 {object} utils.Response "error: FORBIDDEN"
// @Failure 404 {object} utils.Response "error: NOT_FOUND"
// @Router /posts/{id} [put]
func UpdatePost(c *gin.Context) {
	var update models.PostUpdate
	if !utils.ValidateRequestBody(c, &update) {
		return
	}

	var post models.Post
	if err := db.DB.First(&post, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendAppError(c, utils.NewNotFoundError("Post not found"))
		return
	}

	if !canEditPost(c, post) {
		utils.SendAppError(c, utils.NewForbiddenError("You cannot edit this post"))
		return
	}

	updates := map[string]interface{}{}
	if update.Title != "" {
		updates["title"] = update.Title
	}
	if update.Content != "" {
		updates["content"] = update.Content
	}
	if len(updates) == 0 {
		utils.SendAppError(c, utils.NewValidationError("Nothing to update", nil))
		return
	}

	if err := db.DB.Model(&post).Updates(updates).Error; err != nil {
		utils.LogError(err, "Error updating post in UpdatePost")
		utils.SendAppError(c, utils.NewInternalError("Error updating the post"))
		return
	}

	userID, _ := c.Get("user_id")
	utils.LogSuccessWithUser(userID, "Post updated in UpdatePost")
	utils.SendSuccess(c, http.StatusOK, post)
}

// @Summary Delete a post
// @Description Author only, moderators and admins excepted. Soft delete.
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Security BearerAuth
// @Success 200 {object} utils.Response
// @Failure 403 {object} utils.Response "error: FORBIDDEN"
// @Failure 404 {object} utils.Response "error: NOT_FOUND"
// @Router /posts/{id} [delete]
func DeletePost(c *gin.Context) {
	var post models.Post
	if err := db.DB.First(&post, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendAppError(c, utils.NewNotFoundError("Post not found"))
		return
	}

	if !canEditPost(c, post) {
		utils.SendAppError(c, utils.NewForbiddenError("You cannot delete this post"))
		return
	}

	if err := db.DB.Delete(&post).Error; err != nil {
		utils.LogError(err, "Error deleting post in DeletePost")
		utils.SendAppError(c, utils.NewInternalError("Error deleting the post"))
		return
	}

	userID, _ := c.Get("user_id")
	utils.LogSuccessWithUser(userID, "Post deleted in DeletePost")
	utils.SendSuccess(c, http.StatusOK, gin.H{"message": "Post deleted successfully"})
}
