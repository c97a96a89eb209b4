package models

import (
	"time"
)

type Comment struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	PostID    string    `json:"postId" gorm:"column:post_id;type:uuid;index"`
	UserID    string    `json:"userId" gorm:"column:user_id;type:uuid"`
	ParentID  *string   `json:"parentId,omitempty" gorm:"column:parent_id;type:uuid"`
	Content   string    `json:"content" binding:"required"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CommentCreate model for creating a comment. ParentID makes it a reply to
// another comment on the same post (a single level of nesting).
type CommentCreate struct {
	Content  string  `json:"content" binding:"required,max=2000"`
	ParentID *string `json:"parentId" binding:"omitempty,uuid"`
}

func (Comment) TableName() string {
	return "comments"
}
