package models

import (
	"time"
)

// CompanyReview is a workplace review left by a verified employee of the
// company. One review per user per company.
type CompanyReview struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CompanyID string    `json:"companyId" gorm:"column:company_id;type:uuid;uniqueIndex:idx_reviews_company_user"`
	UserID    string    `json:"userId" gorm:"column:user_id;type:uuid;uniqueIndex:idx_reviews_company_user"`
	Rating    int       `json:"rating"`
	Title     string    `json:"title"`
	Pros      string    `json:"pros"`
	Cons      string    `json:"cons"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CompanyReviewCreate model for creating a company review
type CompanyReviewCreate struct {
	Rating int    `json:"rating" binding:"required,gte=1,lte=5"`
	Title  string `json:"title" binding:"required,max=200"`
	Pros   string `json:"pros" binding:"max=2000"`
	Cons   string `json:"cons" binding:"max=2000"`
}

func (CompanyReview) TableName() string {
	return "company_reviews"
}
