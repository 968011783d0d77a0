package enums

import "fmt"

// UserRole represents the dashboard access roles.
type UserRole string

const (
	UserRoleAdmin          UserRole = "admin"
	UserRoleManager        UserRole = "manager"
	UserRoleSalesRep       UserRole = "sales_rep"
	UserRoleInventoryStaff UserRole = "inventory_staff"
	UserRoleViewer         UserRole = "viewer"
)

var validUserRoles = []UserRole{
	UserRoleAdmin,
	UserRoleManager,
	UserRoleSalesRep,
	UserRoleInventoryStaff,
	UserRoleViewer,
}

// String implements fmt.Stringer.
func (r UserRole) String() string {
	return string(r)
}

// IsValid reports whether the value is a known UserRole.
func (r UserRole) IsValid() bool {
	for _, candidate := range validUserRoles {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseUserRole converts raw input into a UserRole.
func ParseUserRole(value string) (UserRole, error) {
	for _, candidate := range validUserRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid user role %q", value)
}
