package constants

import "fmt"

const (
	RoleMember = "member"
	RoleLider  = "lider"
	RoleAdmin  = "admin"
)

// Role error messages
const (
	ErrOnlyAdminsCanAccess  = "❌ Only admins can access %s."
	ErrOnlyLeadersCanAccess = "❌ Only leaders or admins can access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorLeader(feature string) string {
	return fmt.Sprintf(ErrOnlyLeadersCanAccess, feature)
}

// RoleFor maps the user flags to the single role carried in tokens and Locals.
// Admin wins over lider.
func RoleFor(isAdmin, isLider bool) string {
	switch {
	case isAdmin:
		return RoleAdmin
	case isLider:
		return RoleLider
	default:
		return RoleMember
	}
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleMember,
		RoleLider,
		RoleAdmin,
	}

	LeaderAndAbove = []string{
		RoleLider,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
