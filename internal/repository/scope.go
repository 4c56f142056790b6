package repository

import (
	"gorm.io/gorm"

	"github.com/arriendohq/arriendo/internal/domain"
)

// Caller is the authenticated identity a request acts under. Resolved once
// by the auth middleware and immutable afterwards.
type Caller struct {
	ID   uint
	Role domain.Role
}

// CrossTenant reports whether the caller sees rows regardless of ownership.
func (c Caller) CrossTenant() bool {
	return domain.IsCrossTenant(c.Role)
}

// Scope functions translate a caller into the ownership clause attached to
// every read. They are pure: same caller in, same clause out. Client-supplied
// filters are ANDed on top and can never widen what the clause permits.
// Roles with no rule for an entity get denyAll, never unscoped access.

func denyAll(db *gorm.DB) *gorm.DB {
	return db.Where("1 = 0")
}

func unscoped(db *gorm.DB) *gorm.DB {
	return db
}

// PropertyScope: owners see their properties, brokers the ones assigned to
// them. Tenants reach properties through contracts, not the property list.
func PropertyScope(c Caller) func(*gorm.DB) *gorm.DB {
	if c.CrossTenant() {
		return unscoped
	}
	switch c.Role {
	case domain.RoleOwner:
		id := c.ID
		return func(db *gorm.DB) *gorm.DB { return db.Where("owner_id = ?", id) }
	case domain.RoleBroker:
		id := c.ID
		return func(db *gorm.DB) *gorm.DB { return db.Where("broker_id = ?", id) }
	default:
		return denyAll
	}
}

func ContractScope(c Caller) func(*gorm.DB) *gorm.DB {
	if c.CrossTenant() {
		return unscoped
	}
	id := c.ID
	switch c.Role {
	case domain.RoleOwner:
		return func(db *gorm.DB) *gorm.DB { return db.Where("owner_id = ?", id) }
	case domain.RoleTenant:
		return func(db *gorm.DB) *gorm.DB { return db.Where("tenant_id = ?", id) }
	case domain.RoleBroker:
		return func(db *gorm.DB) *gorm.DB { return db.Where("broker_id = ?", id) }
	default:
		return denyAll
	}
}

func PaymentScope(c Caller) func(*gorm.DB) *gorm.DB {
	if c.CrossTenant() {
		return unscoped
	}
	id := c.ID
	switch c.Role {
	case domain.RoleOwner:
		return func(db *gorm.DB) *gorm.DB { return db.Where("owner_id = ?", id) }
	case domain.RoleTenant:
		return func(db *gorm.DB) *gorm.DB { return db.Where("tenant_id = ?", id) }
	default:
		return denyAll
	}
}

// TicketScope: reporters (tenants), property owners and the assigned provider
// each see the ticket from their own column.
func TicketScope(c Caller) func(*gorm.DB) *gorm.DB {
	if c.CrossTenant() {
		return unscoped
	}
	id := c.ID
	switch {
	case c.Role == domain.RoleOwner:
		return func(db *gorm.DB) *gorm.DB { return db.Where("owner_id = ?", id) }
	case c.Role == domain.RoleTenant:
		return func(db *gorm.DB) *gorm.DB { return db.Where("reporter_id = ?", id) }
	case domain.IsProviderRole(c.Role):
		return func(db *gorm.DB) *gorm.DB { return db.Where("provider_id = ?", id) }
	default:
		return denyAll
	}
}

func VisitScope(c Caller) func(*gorm.DB) *gorm.DB {
	if c.CrossTenant() {
		return unscoped
	}
	id := c.ID
	switch c.Role {
	case domain.RoleOwner:
		return func(db *gorm.DB) *gorm.DB { return db.Where("owner_id = ?", id) }
	case domain.RoleBroker:
		return func(db *gorm.DB) *gorm.DB { return db.Where("broker_id = ?", id) }
	default:
		return denyAll
	}
}

func LegalCaseScope(c Caller) func(*gorm.DB) *gorm.DB {
	if c.CrossTenant() {
		return unscoped
	}
	id := c.ID
	switch c.Role {
	case domain.RoleOwner:
		return func(db *gorm.DB) *gorm.DB { return db.Where("owner_id = ?", id) }
	case domain.RoleTenant:
		return func(db *gorm.DB) *gorm.DB { return db.Where("tenant_id = ?", id) }
	default:
		return denyAll
	}
}
