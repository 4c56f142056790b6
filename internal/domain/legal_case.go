package domain

import "time"

// LegalCase tracks a dispute between contract parties. SUPPORT and ADMIN see
// every case; owners and tenants see only cases naming them as a party.
type LegalCase struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	ContractID uint       `gorm:"not null;index:idx_legal_cases_contract" json:"contract_id"`
	OwnerID    uint       `gorm:"not null;index:idx_legal_cases_owner" json:"owner_id"`
	TenantID   uint       `gorm:"not null;index:idx_legal_cases_tenant" json:"tenant_id"`
	HandlerID  *uint      `gorm:"index:idx_legal_cases_handler" json:"handler_id,omitempty"`
	Kind       string     `gorm:"size:64;not null" json:"kind"`
	Summary    string     `gorm:"size:2000;not null" json:"summary"`
	Status     string     `gorm:"size:32;not null;default:open;index:idx_legal_cases_status" json:"status"`
	ClosedAt   *time.Time `json:"closed_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	Contract *Contract `gorm:"foreignKey:ContractID" json:"contract,omitempty"`
	Handler  *User     `gorm:"foreignKey:HandlerID" json:"handler,omitempty"`
}

const (
	LegalCaseStatusOpen     = "open"
	LegalCaseStatusInReview = "in_review"
	LegalCaseStatusClosed   = "closed"
)

var LegalCaseStatuses = []string{LegalCaseStatusOpen, LegalCaseStatusInReview, LegalCaseStatusClosed}

var LegalCaseKinds = []string{"unpaid_rent", "property_damage", "deposit_dispute", "early_termination", "other"}
