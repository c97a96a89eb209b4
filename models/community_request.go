package models

import (
	"time"
)

type CommunityRequestStatus string

const (
	RequestPending   CommunityRequestStatus = "PENDING"
	RequestApproved  CommunityRequestStatus = "APPROVED"
	RequestRejected  CommunityRequestStatus = "REJECTED"
	RequestCancelled CommunityRequestStatus = "CANCELLED"
)

// CommunityRequest tracks a user's ask for a new community. PENDING is the
// only non-terminal status: the creator may cancel while pending, an admin
// approves or rejects exactly once. Approval creates the community and links
// it in the same transaction.
type CommunityRequest struct {
	ID                 string                 `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	RequesterID        string                 `json:"requesterId" gorm:"column:requester_id;type:uuid"`
	Name               string                 `json:"name"`
	Description        string                 `json:"description"`
	TargetType         CommunityType          `json:"targetType" gorm:"column:target_type"`
	CompanyID          *string                `json:"companyId,omitempty" gorm:"column:company_id;type:uuid"`
	CategoryID         *string                `json:"categoryId,omitempty" gorm:"column:category_id;type:uuid"`
	Status             CommunityRequestStatus `json:"status" gorm:"default:PENDING"`
	AdminNote          string                 `json:"adminNote" gorm:"column:admin_note"`
	CreatedCommunityID *string                `json:"createdCommunityId,omitempty" gorm:"column:created_community_id;type:uuid"`
	CreatedCommunity   *Community             `json:"createdCommunity,omitempty" gorm:"foreignKey:CreatedCommunityID"`
	CreatedAt          time.Time              `json:"createdAt"`
	UpdatedAt          time.Time              `json:"updatedAt"`
}

// CommunityRequestCreate model for submitting a community request
type CommunityRequestCreate struct {
	Name        string        `json:"name" binding:"required,min=2,max=100"`
	Description string        `json:"description" binding:"max=1000"`
	TargetType  CommunityType `json:"targetType" binding:"required,oneof=COMPANY PUBLIC_SERVANT INTEREST GENERAL"`
	CompanyID   *string       `json:"companyId"`
	CategoryID  *string       `json:"categoryId"`
}

// CommunityRequestReview model for the admin review endpoint
type CommunityRequestReview struct {
	Status    CommunityRequestStatus `json:"status" binding:"required,oneof=APPROVED REJECTED"`
	AdminNote string                 `json:"adminNote" binding:"max=1000"`
}

func (CommunityRequest) TableName() string {
	return "community_requests"
}
