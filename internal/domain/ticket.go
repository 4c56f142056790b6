package domain

import "time"

// MaintenanceTicket carries the property's owner id alongside the reporter
// and assigned provider so every visibility rule is a plain column match.
type MaintenanceTicket struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	PropertyID  uint       `gorm:"not null;index:idx_tickets_property" json:"property_id"`
	OwnerID     uint       `gorm:"not null;index:idx_tickets_owner" json:"owner_id"`
	ReporterID  uint       `gorm:"not null;index:idx_tickets_reporter" json:"reporter_id"`
	ProviderID  *uint      `gorm:"index:idx_tickets_provider" json:"provider_id,omitempty"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"size:2000" json:"description,omitempty"`
	Priority    string     `gorm:"size:32;not null;default:medium" json:"priority"`
	Status      string     `gorm:"size:32;not null;default:open;index:idx_tickets_status" json:"status"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Property *Property `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
	Owner    *User     `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Provider *User     `gorm:"foreignKey:ProviderID" json:"provider,omitempty"`
}

const (
	TicketStatusOpen       = "open"
	TicketStatusAssigned   = "assigned"
	TicketStatusInProgress = "in_progress"
	TicketStatusResolved   = "resolved"
	TicketStatusClosed     = "closed"
)

var TicketStatuses = []string{TicketStatusOpen, TicketStatusAssigned, TicketStatusInProgress, TicketStatusResolved, TicketStatusClosed}

var TicketPriorities = []string{"low", "medium", "high", "urgent"}
