package models

import (
	"time"

	"gorm.io/gorm"
)

// UserRole distinguishes the single seeded admin from other accounts.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

// User is an account for the optional HTTP control surface.
type User struct {
	ID        uint       `json:"id" gorm:"primarykey,autoIncrement"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" gorm:"index"`
	Username  string     `json:"username" gorm:"size:100;not null;uniqueIndex"`
	Email     string     `json:"email" gorm:"size:100;not null;uniqueIndex"`
	Password  string     `json:"-" gorm:"size:100;not null"`
	Role      UserRole   `json:"role" gorm:"size:20;default:user"`
}

// BeforeCreate defaults an unset role to RoleUser.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.Role == "" {
		u.Role = RoleUser
	}
	return nil
}
