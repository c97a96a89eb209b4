package models

import (
	"time"
)

type Company struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Slug      string    `json:"slug" gorm:"uniqueIndex" binding:"required"`
	Name      string    `json:"name" binding:"required"`
	Industry  string    `json:"industry"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CompanyCreate model for the admin company creation endpoint
type CompanyCreate struct {
	Slug     string `json:"slug" binding:"required,min=2,max=50"`
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Industry string `json:"industry" binding:"max=100"`
}

func (Company) TableName() string {
	return "companies"
}
