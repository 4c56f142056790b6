package domain

import "time"

// Payment rows denormalize owner and tenant ids from the contract so the
// scope clause never needs a join.
type Payment struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	ContractID uint       `gorm:"not null;index:idx_payments_contract" json:"contract_id"`
	OwnerID    uint       `gorm:"not null;index:idx_payments_owner" json:"owner_id"`
	TenantID   uint       `gorm:"not null;index:idx_payments_tenant" json:"tenant_id"`
	Amount     int64      `gorm:"not null" json:"amount"`
	Status     string     `gorm:"size:32;not null;default:pending;index:idx_payments_status" json:"status"`
	Method     string     `gorm:"size:64" json:"method,omitempty"`
	Reference  string     `gorm:"size:128" json:"reference,omitempty"`
	DueDate    time.Time  `gorm:"not null" json:"due_date"`
	PaidAt     *time.Time `gorm:"index:idx_payments_paid_at" json:"paid_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	Contract *Contract `gorm:"foreignKey:ContractID" json:"contract,omitempty"`
}

const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusOverdue = "overdue"
)

var PaymentStatuses = []string{PaymentStatusPending, PaymentStatusPaid, PaymentStatusOverdue}
