package domain

// Role is the single role carried by a user. Comparison is exact and
// case-sensitive everywhere; no handler may re-derive role groups locally.
type Role string

const (
	RoleOwner    Role = "OWNER"
	RoleTenant   Role = "TENANT"
	RoleBroker   Role = "BROKER"
	RoleProvider Role = "PROVIDER"
	RoleSupport  Role = "SUPPORT"
	RoleAdmin    Role = "ADMIN"
)

// AllRoles lists every role the system accepts.
var AllRoles = []Role{RoleOwner, RoleTenant, RoleBroker, RoleProvider, RoleSupport, RoleAdmin}

// SelfRegisterRoles are roles a user may pick at registration. SUPPORT and
// ADMIN accounts are created through seeding only.
var SelfRegisterRoles = []Role{RoleOwner, RoleTenant, RoleBroker, RoleProvider}

// ValidRole reports whether r is a known role.
func ValidRole(r Role) bool {
	for _, known := range AllRoles {
		if r == known {
			return true
		}
	}
	return false
}

// IsProviderRole is the one capability predicate for "may work maintenance
// jobs". Every endpoint that cares about provider-like callers consumes this.
func IsProviderRole(r Role) bool {
	return r == RoleProvider
}

// IsCrossTenant reports whether the role sees rows regardless of ownership.
// Only these roles escape the per-caller scope clause.
func IsCrossTenant(r Role) bool {
	return r == RoleAdmin || r == RoleSupport
}

// CanSelfRegister reports whether the role may be chosen at registration.
func CanSelfRegister(r Role) bool {
	for _, allowed := range SelfRegisterRoles {
		if r == allowed {
			return true
		}
	}
	return false
}
