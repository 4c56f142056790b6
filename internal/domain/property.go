package domain

import (
	"strings"
	"time"
)

type Property struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OwnerID     uint      `gorm:"not null;index:idx_properties_owner" json:"owner_id"`
	BrokerID    *uint     `gorm:"index:idx_properties_broker" json:"broker_id,omitempty"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Address     string    `gorm:"size:512;not null" json:"address"`
	Commune     string    `gorm:"size:128" json:"commune"`
	Status      string    `gorm:"size:32;not null;default:available;index:idx_properties_status" json:"status"`
	RentAmount  int64     `gorm:"not null" json:"rent_amount"`
	Bedrooms    int       `json:"bedrooms"`
	Bathrooms   int       `json:"bathrooms"`
	AreaM2      float64   `json:"area_m2"`
	Description string    `gorm:"size:2000" json:"description,omitempty"`
	PhotoKeys   string    `gorm:"size:4096" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Owner  *User `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Broker *User `gorm:"foreignKey:BrokerID" json:"broker,omitempty"`
}

// PhotoKeyList splits the comma-packed storage keys. Empty slice for a
// property without photos.
func (p *Property) PhotoKeyList() []string {
	if p.PhotoKeys == "" {
		return nil
	}
	return strings.Split(p.PhotoKeys, ",")
}

const (
	PropertyStatusAvailable   = "available"
	PropertyStatusOccupied    = "occupied"
	PropertyStatusMaintenance = "maintenance"
)

var PropertyStatuses = []string{PropertyStatusAvailable, PropertyStatusOccupied, PropertyStatusMaintenance}
