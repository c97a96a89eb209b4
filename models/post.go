package models

import (
	"time"

	"gorm.io/gorm"
)

type Post struct {
	ID            string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CommunityID   string     `json:"communityId" gorm:"column:community_id;type:uuid;index"`
	UserID        string     `json:"userId" gorm:"column:user_id;type:uuid"`
	Title         string     `json:"title" binding:"required"`
	Content       string     `json:"content" binding:"required"`
	VoteScore     int        `json:"voteScore" gorm:"column:vote_score;default:0"`
	CommentsCount int        `json:"commentsCount" gorm:"column:comments_count;default:0"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`
}

type PostCreate struct {
	CommunityID string `json:"communityId" binding:"required,uuid"`
	Title       string `json:"title" binding:"required,max=200"`
	Content     string `json:"content" binding:"required,max=10000"`
}

type PostUpdate struct {
	Title   string `json:"title" binding:"omitempty,max=200"`
	Content string `json:"content" binding:"omitempty,max=10000"`
}

func (Post) TableName() string {
	return "posts"
}
