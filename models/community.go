package models

import (
	"time"
)

type CommunityType string

const (
	CommunityCompany       CommunityType = "COMPANY"
	CommunityPublicServant CommunityType = "PUBLIC_SERVANT"
	CommunityInterest      CommunityType = "INTEREST"
	CommunityGeneral       CommunityType = "GENERAL"
)

// Community is a board users post into. COMPANY communities are only
// readable by company-verified users; the other types are public.
type Community struct {
	ID          string        `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Slug        string        `json:"slug" gorm:"uniqueIndex"`
	Name        string        `json:"name" binding:"required"`
	Description string        `json:"description"`
	Type        CommunityType `json:"type" gorm:"default:GENERAL"`
	CompanyID   *string       `json:"companyId,omitempty" gorm:"column:company_id;type:uuid"`
	CategoryID  *string       `json:"categoryId,omitempty" gorm:"column:category_id;type:uuid"`
	CreatedBy   string        `json:"createdBy" gorm:"column:created_by;type:uuid"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

func (Community) TableName() string {
	return "communities"
}
