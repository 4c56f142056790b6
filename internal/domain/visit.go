package domain

import "time"

type Visit struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	PropertyID  uint      `gorm:"not null;index:idx_visits_property" json:"property_id"`
	OwnerID     uint      `gorm:"not null;index:idx_visits_owner" json:"owner_id"`
	BrokerID    uint      `gorm:"not null;index:idx_visits_broker" json:"broker_id"`
	VisitorName string    `gorm:"size:255;not null" json:"visitor_name"`
	ScheduledAt time.Time `gorm:"not null;index:idx_visits_scheduled" json:"scheduled_at"`
	Status      string    `gorm:"size:32;not null;default:scheduled" json:"status"`
	Notes       string    `gorm:"size:1000" json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Property *Property `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
}

const (
	VisitStatusScheduled = "scheduled"
	VisitStatusCompleted = "completed"
	VisitStatusCancelled = "cancelled"
)

var VisitStatuses = []string{VisitStatusScheduled, VisitStatusCompleted, VisitStatusCancelled}
