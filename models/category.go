package models

import (
	"time"
)

type CategoryKind string

const (
	PublicServantCategory CategoryKind = "PUBLIC_SERVANT"
	InterestCategory      CategoryKind = "INTEREST"
)

// Category backs PUBLIC_SERVANT and INTEREST community requests: the
// requested community must point at an existing category of the right kind.
type Category struct {
	ID        string       `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name      string       `json:"name" binding:"required"`
	Kind      CategoryKind `json:"kind" gorm:"index"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// CategoryCreate model for the admin category creation endpoint
type CategoryCreate struct {
	Name string       `json:"name" binding:"required,min=2,max=100"`
	Kind CategoryKind `json:"kind" binding:"required,oneof=PUBLIC_SERVANT INTEREST"`
}

func (Category) TableName() string {
	return "categories"
}
