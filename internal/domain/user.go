package domain

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Role         Role      `gorm:"size:32;not null;index:idx_users_role" json:"role"`
	PasswordHash string    `gorm:"size:512" json:"-"`
	Phone        string    `gorm:"size:64" json:"phone,omitempty"`
	Status       string    `gorm:"size:32;not null;default:active;index:idx_users_status" json:"status"`
	LastLoginAt  time.Time `json:"last_login_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

const (
	UserStatusActive    = "active"
	UserStatusSuspended = "suspended"
)
