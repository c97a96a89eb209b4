package models

import (
	"time"
)

type ReportReason string

const (
	SPAM           ReportReason = "SPAM"
	HARASSMENT     ReportReason = "HARASSMENT"
	HATE_SPEECH    ReportReason = "HATE_SPEECH"
	MISINFORMATION ReportReason = "MISINFORMATION"
	SEXUAL_CONTENT ReportReason = "SEXUAL_CONTENT"
	VIOLENCE       ReportReason = "VIOLENCE"
	OTHER          ReportReason = "OTHER"
)

type ReportStatus string

const (
	ReportPending   ReportStatus = "PENDING"
	ReportReviewing ReportStatus = "REVIEWING" // reserved, never set by current code paths
	ReportResolved  ReportStatus = "RESOLVED"
	ReportDismissed ReportStatus = "DISMISSED"
)

// Report is a user-submitted flag against exactly one target: a post, a
// comment or another user. Reports are kept for audit and never deleted;
// once RESOLVED or DISMISSED the status is final.
type Report struct {
	ID             string       `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	PostID         *string      `json:"postId,omitempty" gorm:"column:post_id;type:uuid"`
	CommentID      *string      `json:"commentId,omitempty" gorm:"column:comment_id;type:uuid"`
	ReportedUserID *string      `json:"reportedUserId,omitempty" gorm:"column:reported_user_id;type:uuid"`
	ReportedBy     string       `json:"reportedBy" gorm:"column:reported_by;type:uuid"`
	Reason         ReportReason `json:"reason"`
	Description    string       `json:"description"`
	Status         ReportStatus `json:"status" gorm:"default:PENDING"`
	Resolution     string       `json:"resolution"`
	ResolvedBy     *string      `json:"resolvedBy,omitempty" gorm:"column:resolved_by;type:uuid"`
	ResolvedAt     *time.Time   `json:"resolvedAt,omitempty" gorm:"column:resolved_at"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}

// ReportCreate model for submitting a report. Exactly one of PostID,
// CommentID and ReportedUserID must be set, checked in the handler.
type ReportCreate struct {
	PostID         *string      `json:"postId" binding:"omitempty,uuid"`
	CommentID      *string      `json:"commentId" binding:"omitempty,uuid"`
	ReportedUserID *string      `json:"reportedUserId" binding:"omitempty,uuid"`
	Reason         ReportReason `json:"reason" binding:"required,oneof=SPAM HARASSMENT HATE_SPEECH MISINFORMATION SEXUAL_CONTENT VIOLENCE OTHER"`
	Description    string       `json:"description" binding:"max=1000"`
}

// ReportResolve model for the admin resolution endpoint
type ReportResolve struct {
	Status     ReportStatus `json:"status" binding:"required,oneof=RESOLVED DISMISSED"`
	Resolution string       `json:"resolution" binding:"max=1000"`
}

func (Report) TableName() string {
	return "reports"
}
