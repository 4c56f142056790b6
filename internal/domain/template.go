package domain

import "time"

// NotificationTemplate is the persisted form of a notification text. All
// access goes through the template service; nothing holds these in a shared
// in-memory map.
type NotificationTemplate struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"uniqueIndex;size:128;not null" json:"key"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Subject   string    `gorm:"size:512;not null" json:"subject"`
	Body      string    `gorm:"size:8000;not null" json:"body"`
	UpdatedBy uint      `json:"updated_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
