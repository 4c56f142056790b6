package domain

import "time"

type Contract struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	PropertyID uint       `gorm:"not null;index:idx_contracts_property" json:"property_id"`
	OwnerID    uint       `gorm:"not null;index:idx_contracts_owner" json:"owner_id"`
	TenantID   uint       `gorm:"not null;index:idx_contracts_tenant" json:"tenant_id"`
	BrokerID   *uint      `gorm:"index:idx_contracts_broker" json:"broker_id,omitempty"`
	Status     string     `gorm:"size:32;not null;default:active;index:idx_contracts_status" json:"status"`
	RentAmount int64      `gorm:"not null" json:"rent_amount"`
	StartDate  time.Time  `gorm:"not null" json:"start_date"`
	EndDate    time.Time  `gorm:"not null" json:"end_date"`
	EndedAt    *time.Time `json:"ended_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	Property *Property `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
	Owner    *User     `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Tenant   *User     `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
}

const (
	ContractStatusActive     = "active"
	ContractStatusTerminated = "terminated"
	ContractStatusExpired    = "expired"
)

var ContractStatuses = []string{ContractStatusActive, ContractStatusTerminated, ContractStatusExpired}
