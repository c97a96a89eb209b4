package models

import (
	"time"
)

// Vote is an upvote (+1) or downvote (-1) on a post. One vote per user per
// post; voting the same way again removes it, voting the other way flips it.
type Vote struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	PostID    string    `json:"postId" gorm:"column:post_id;type:uuid;uniqueIndex:idx_votes_post_user"`
	UserID    string    `json:"userId" gorm:"column:user_id;type:uuid;uniqueIndex:idx_votes_post_user"`
	Value     int       `json:"value"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type VoteCreate struct {
	Value int `json:"value" binding:"required,oneof=-1 1"`
}

func (Vote) TableName() string {
	return "votes"
}
