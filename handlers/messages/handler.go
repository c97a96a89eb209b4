package messages

import (
	"net/http"

	"blindboard-backend/db"
	"blindboard-backend/models"
	"blindboard-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Send a private message
// @Description Send a message to another user and notify them (MESSAGE)
// @Tags messages
// @Accept json
// @Produce json
// @Param message body models.PrivateMessageCreate true "Message"
// @Security BearerAuth
// @Success 201 {object} utils.Response "data: created message"
// @Failure 400 {object} utils.Response "error: VALIDATION_ERROR"
// @Failure 404 {object} utils.Response "error: NOT_FOUND, receiver does not exist"
// @Router /messages [post]
func SendMessage(c *gin.Context) {
	senderID, exists := c.Get("user_id")
	if !exists {
		utils.SendAppError(c, utils.NewUnauthorizedError("User not found in token"))
		return
	}

	var create models.PrivateMessageCreate
	if !utils.ValidateRequestBody(c, &create) {
		return
	}

	if create.ReceiverID == senderID.(string) {
		utils.SendAppError(c, utils.NewValidationError("You cannot message yourself", nil))
		return
	}

	var receiver models.User
	if result := db.DB.Where("id = ?", create.ReceiverID).First(&receiver); result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			utils.SendAppError(c, utils.NewNotFoundError("Receiver not found"))
		} else {
			utils.LogErrorWithUser(senderID, result.Error, "Error verifying receiver in SendMessage")
			utils.SendAppError(c, utils.NewInternalError("Error verifying the receiver"))
		}
		return
	}

	if receiver.Status != models.UserActive {
		utils.SendAppError(c, utils.NewNotFoundError("Receiver not found"))
		return
	}

	message := models.PrivateMessage{
		SenderID:   senderID.(string),
		ReceiverID: create.ReceiverID,
		Content:    create.Content,
		Status:     "UNREAD",
	}

	if err := db.DB.Create(&message).Error; err != nil {
		utils.LogErrorWithUser(senderID, err, "Error creating message in SendMessage")
		utils.SendAppError(c, utils.NewInternalError("Error sending the message"))
		return
	}

	notification := models.Notification{
		UserID:  receiver.ID,
		Type:    models.NotifMessage,
		Message: "You received a private message",
		Data:    models.NotificationData(map[string]string{"messageId": message.ID}),
	}
	if err := db.DB.Create(&notification).Error; err != nil {
		utils.LogErrorWithUser(senderID, err, "Error creating message notification in SendMessage")
	}

	utils.LogSuccessWithUser(senderID, "Message sent in SendMessage")
	utils.SendSuccess(c, http.StatusCreated, message)
}

// @Summary List own messages
// @Description All messages sent and received by the authenticated user
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response "data: messages"
// @Router /messages [get]
func GetMyMessages(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.SendAppError(c, utils.NewUnauthorizedError("User not found in token"))
		return
	}

	var messageList []models.PrivateMessage
	if err := db.DB.Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&messageList).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error retrieving messages in GetMyMessages")
		utils.SendAppError(c, utils.NewInternalError("Error retrieving messages"))
		return
	}

	utils.SendSuccess(c, http.StatusOK, messageList)
}

// @Summary Mark a message read
// @Description Receiver only; marking an already-read message is a no-op
// @Tags messages
// @Produce json
// @Param id path string true "Message ID"
// @Security BearerAuth
// @Success 200 {object} utils.Response "data: message"
// @Failure 403 {object} utils.Response "error: FORBIDDEN, not the receiver"
// @Failure 404 {object} utils.Response "error: NOT_FOUND"
// @Router /messages/{id}/read [post]
func MarkMessageRead(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.SendAppError(c, utils.NewUnauthorizedError("User not found in token"))
		return
	}

	var message models.PrivateMessage
	if err := db.DB.First(&message, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendAppError(c, utils.NewNotFoundError("Message not found"))
		return
	}

	if message.ReceiverID != userID.(string) {
		utils.SendAppError(c, utils.NewForbiddenError("Only the receiver can mark this message read"))
		return
	}

	if message.Status != "READ" {
		if err := db.DB.Model(&message).Update("status", "READ").Error; err != nil {
			utils.LogErrorWithUser(userID, err, "Error marking message read in MarkMessageRead")
			utils.SendAppError(c, utils.NewInternalError("Error updating the message"))
			return
		}
		message.Status = "READ"
	}

	utils.SendSuccess(c, http.StatusOK, message)
}
