package comments

import (
	"net/http"
	"regexp"

	"blindboard-backend/db"
	"blindboard-backend/handlers/communities"
	"blindboard-backend/models"
	"blindboard-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var mentionRegexp = regexp.MustCompile(`@([a-zA-Z0-9_]{2,30})`)

// gatePost applies the community gate of the post's board. Returns false
// when the request has already been answered with a denial.
func gatePost(c *gin.Context, post models.Post) bool {
	var community models.Community
	if err := db.DB.First(&community, "id = ?", post.CommunityID).Error; err != nil {
		utils.SendAppError(c, utils.NewNotFoundError("Community not found"))
		return false
	}
	return communities.GateCommunity(c, community) == nil
}

// @Summary List comments of a post
// @Tags comments
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} utils.Response "data: comments"
// @Failure 404 {object} utils.Response "error: NOT_FOUND"
// @Router /posts/{id}/comments [get]
func GetCommentsByPostID(c *gin.Context) {
	postID := c.Param("id")

	var post models.Post
	if err := db.DB.First(&post, "id = ?", postID).Error; err != nil {
		utils.SendAppError(c, utils.NewNotFoundError("Post not found"))
		return
	}
	if !gatePost(c, post) {
		return
	}

	var commentList []models.Comment
	if err := db.DB.Where("post_id = ?", postID).Order("created_at ASC").Find(&commentList).Error; err != nil {
		utils.LogError(err, "Error retrieving comments in GetCommentsByPostID")
		utils.SendAppError(c, utils.NewInternalError("Error retrieving comments"))
		return
	}

	utils.SendSuccess(c, http.StatusOK, commentList)
}

// notifyMentions fans out MENTION notifications to every @nickname the
// comment references, skipping the author themselves.
func notifyMentions(comment models.Comment, authorID string) {
	matches := mentionRegexp.FindAllStringSubmatch(comment.Content, -1)
	seen := map[string]bool{}
	for _, m := range matches {
		nickname := m[1]
		if seen[nickname] {
			continue
		}
		seen[nickname] = true

		var mentioned models.User
		if err := db.DB.First(&mentioned, "nickname = ?", nickname).Error; err != nil {
			continue
		}
		if mentioned.ID == authorID {
			continue
		}

		notification := models.Notification{
			UserID:  mentioned.ID,
			Type:    models.NotifMention,
			Message: "You were mentioned in a comment",
			Data: models.NotificationData(map[string]string{
				"postId":    comment.PostID,
				"commentId": comment.ID,
			}),
		}
		if err := db.DB.Create(&notification).Error; err != nil {
			utils.LogError(err, "Error creating mention notification in notifyMentions")
		}
	}
}

// @Summary Comment on a post
// @Description Creates the comment and notifies the post author (COMMENT),
// the parent comment author on replies (REPLY) and any @mentioned users.
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param comment body models.CommentCreate true "Comment"
// @Security BearerAuth
// @Success 201 {object} utils.Response "data: created comment"
// @Failure 400 {object} utils.Response "error: VALIDATION_ERROR"
// @Failure 404 {object} utils.Response "error: NOT_FOUND"
// @Router /posts/{id}/comments [post]
func CreateComment(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.SendAppError(c, utils.NewUnauthorizedError("User not found in token"))
		return
	}

	postID := c.Param("id")

	var post models.Post
	if err := db.DB.First(&post, "id = ?", postID).Error; err != nil {
		utils.SendAppError(c, utils.NewNotFoundError("Post not found"))
		return
	}
	if !gatePost(c, post) {
		return
	}

	var create models.CommentCreate
	if !utils.ValidateRequestBody(c, &create) {
		return
	}

	var parent models.Comment
	if create.ParentID != nil {
		if err := db.DB.First(&parent, "id = ? AND post_id = ?", *create.ParentID, postID).Error; err != nil {
			utils.SendAppError(c, utils.NewNotFoundError("Parent comment not found on this post"))
			return
		}
	}

	comment := models.Comment{
		PostID:   postID,
		UserID:   userID.(string),
		ParentID: create.ParentID,
		Content:  create.Content,
	}

	if err := db.DB.Create(&comment).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error creating comment in CreateComment")
		utils.SendAppError(c, utils.NewInternalError("Error creating the comment"))
		return
	}

	if err := db.DB.Model(&models.Post{}).Where("id = ?", postID).
		UpdateColumn("comments_count", gorm.Expr("comments_count + 1")).Error; err != nil {
		utils.LogError(err, "Error bumping comments count in CreateComment")
	}

	// Notifications are best effort, failures only get logged.
	if post.UserID != comment.UserID {
		notification := models.Notification{
			UserID:  post.UserID,
			Type:    models.NotifComment,
			Message: "Someone commented on your post",
			Data: models.NotificationData(map[string]string{
				"postId":    postID,
				"commentId": comment.ID,
			}),
		}
		if err := db.DB.Create(&notification).Error; err != nil {
			utils.LogError(err, "Error creating comment notification in CreateComment")
		}
	}
	if create.ParentID != nil && parent.UserID != comment.UserID && parent.UserID != post.UserID {
		notification := models.Notification{
			UserID:  parent.UserID,
			Type:    models.NotifReply,
			Message: "Someone replied to your comment",
			Data: models.NotificationData(map[string]string{
				"postId":    postID,
				"commentId": comment.ID,
			}),
		}
		if err := db.DB.Create(&notification).Error; err != nil {
			utils.LogError(err, "Error creating reply notification in CreateComment")
		}
	}
	notifyMentions(comment, comment.UserID)

	utils.LogSuccessWithUser(userID, "Comment created in CreateComment")
	utils.SendSuccess(c, http.StatusCreated, comment)
}
