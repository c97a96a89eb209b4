package votes

import (
	"errors"
	"net/http"

	"blindboard-backend/db"
	"blindboard-backend/handlers/communities"
	"blindboard-backend/models"
	"blindboard-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Vote on a post
// @Description Upvote (+1) or downvote (-1). Voting the same way again
// removes the vote, voting the other way flips it. The post's cached score
// follows the change.
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param vote body models.VoteCreate true "Vote value"
// @Security BearerAuth
// @Success 200 {object} utils.Response "data: vote state and score delta"
// @Failure 400 {object} utils.Response "error: VALIDATION_ERROR"
// @Failure 404 {object} utils.Response "error: NOT_FOUND"
// @Router /posts/{id}/vote [post]
func VotePost(c *gin.Context) {
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

	var community models.Community
	if err := db.DB.First(&community, "id = ?", post.CommunityID).Error; err != nil {
		utils.SendAppError(c, utils.NewNotFoundError("Community not found"))
		return
	}
	if decision := communities.GateCommunity(c, community); decision != nil {
		return
	}

	var create models.VoteCreate
	if !utils.ValidateRequestBody(c, &create) {
		return
	}

	var existing models.Vote
	err := db.DB.Where("post_id = ? AND user_id = ?", postID, userID).First(&existing).Error

	var delta int
	var state string
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		vote := models.Vote{
			PostID: postID,
			UserID: userID.(string),
			Value:  create.Value,
		}
		if err := db.DB.Create(&vote).Error; err != nil {
			utils.LogErrorWithUser(userID, err, "Error creating vote in VotePost")
			utils.SendAppError(c, utils.NewInternalError("Error saving the vote"))
			return
		}
		delta = create.Value
		state = "added"

		// Only fresh votes notify the author; flips and removals stay quiet.
		if post.UserID != userID.(string) {
			notification := models.Notification{
				UserID:  post.UserID,
				Type:    models.NotifVote,
				Message: "Someone voted on your post",
				Data:    models.NotificationData(map[string]string{"postId": postID}),
			}
			if err := db.DB.Create(&notification).Error; err != nil {
				utils.LogError(err, "Error creating vote notification in VotePost")
			}
		}
	case err != nil:
		utils.LogErrorWithUser(userID, err, "Error checking vote in VotePost")
		utils.SendAppError(c, utils.NewInternalError("Error saving the vote"))
		return
	case existing.Value == create.Value:
		if err := db.DB.Delete(&existing).Error; err != nil {
			utils.LogErrorWithUser(userID, err, "Error removing vote in VotePost")
			utils.SendAppError(c, utils.NewInternalError("Error saving the vote"))
			return
		}
		delta = -create.Value
		state = "removed"
	default:
		if err := db.DB.Model(&existing).Update("value", create.Value).Error; err != nil {
			utils.LogErrorWithUser(userID, err, "Error flipping vote in VotePost")
			utils.SendAppError(c, utils.NewInternalError("Error saving the vote"))
			return
		}
		delta = 2 * create.Value
		state = "flipped"
	}

	if err := db.DB.Model(&models.Post{}).Where("id = ?", postID).
		UpdateColumn("vote_score", gorm.Expr("vote_score + ?", delta)).Error; err != nil {
		utils.LogError(err, "Error updating vote score in VotePost")
	}

	utils.LogSuccessWithUser(userID, "Vote recorded in VotePost")
	utils.SendSuccess(c, http.StatusOK, gin.H{
		"state": state,
		"delta": delta,
	})
}
