package models

import (
	"time"

	"gorm.io/gorm"
)

// PrivateMessage represents a message sent between two users
type PrivateMessage struct {
	ID         string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	SenderID   string     `json:"senderId" gorm:"column:sender_id;type:uuid"`
	ReceiverID string     `json:"receiverId" gorm:"column:receiver_id;type:uuid"`
	Content    string     `json:"content" binding:"required"`
	Status     string     `json:"status" gorm:"default:UNREAD"` // UNREAD, READ
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`
}

// PrivateMessageCreate model for sending a private message
type PrivateMessageCreate struct {
	ReceiverID string `json:"receiverId" binding:"required,uuid"`
	Content    string `json:"content" binding:"required,max=5000"`
}

func (PrivateMessage) TableName() string {
	return "private_messages"
}
