package models

import (
	"time"
)

type Role string

const (
	UserRole      Role = "USER"
	ModeratorRole Role = "MODERATOR"
	AdminRole     Role = "ADMIN"
)

type UserStatus string

const (
	UserActive    UserStatus = "ACTIVE"
	UserSuspended UserStatus = "SUSPENDED"
	UserDeleted   UserStatus = "DELETED"
)

// User is an account on the platform. Posts and comments are rendered
// anonymously, so the nickname only appears on the user's own profile.
// Users are never hard-deleted, their status moves to DELETED instead.
type User struct {
	ID              string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Email           string     `json:"email" gorm:"uniqueIndex" binding:"required,email"`
	Password        string     `json:"-"`
	Nickname        string     `json:"nickname" gorm:"uniqueIndex"`
	Role            Role       `json:"role" gorm:"default:USER"`
	Status          UserStatus `json:"status" gorm:"default:ACTIVE"`
	CompanyVerified bool       `json:"companyVerified" gorm:"column:company_verified;default:false"`
	CompanyID       *string    `json:"companyId,omitempty" gorm:"column:company_id;type:uuid"`
	Company         *Company   `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// UserRegister model for the registration endpoint
type UserRegister struct {
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=Password"`
	Nickname        string `json:"nickname" binding:"required,min=2,max=30"`
}

// UserLogin model for the login endpoint
type UserLogin struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// PasswordChange model for the self-service password change
type PasswordChange struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=NewPassword"`
}

// RoleUpdate model for the admin role change endpoint
type RoleUpdate struct {
	Role Role `json:"role" binding:"required,oneof=USER MODERATOR ADMIN"`
}

// StatusUpdate model for the admin status change endpoint
type StatusUpdate struct {
	Status UserStatus `json:"status" binding:"required,oneof=ACTIVE SUSPENDED DELETED"`
}

// CompanyVerificationUpdate model for the admin company verification endpoint
type CompanyVerificationUpdate struct {
	CompanyID string `json:"companyId" binding:"required,uuid"`
	Verified  bool   `json:"verified"`
}

func (User) TableName() string {
	return "users"
}
