package models

// StaffRole is the access level of a staff member within a tenant.
type StaffRole int

const (
	RoleUnknown StaffRole = iota
	RoleNormal
	RoleAdmin
)

// ParseStaffRole maps a string to a staff role. Unrecognized input maps to
// RoleUnknown; parsing never fails.
func ParseStaffRole(s string) StaffRole {
	switch s {
	case "normal":
		return RoleNormal
	case "admin":
		return RoleAdmin
	default:
		return RoleUnknown
	}
}

func (r StaffRole) String() string {
	switch r {
	case RoleNormal:
		return "normal"
	case RoleAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// IsValid reports whether the role is a concrete variant.
func (r StaffRole) IsValid() bool {
	return r != RoleUnknown
}

func (r StaffRole) IsAdmin() bool {
	return r == RoleAdmin
}
