// Package rbac holds the role enumeration and the rules that guard the
// reserved super-admin account.
package rbac

import (
	"github.com/tenderdesk/tenderdesk-backend/internal/models"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether s is one of the assignable roles.
func Valid(s string) bool {
	switch Role(s) {
	case RoleUser, RoleAdmin:
		return true
	}
	return false
}

// CanViewUser reports whether the caller may see the target row in user
// listings. Super-admin rows are visible only to the super-admin itself.
func CanViewUser(caller, target *models.User) bool {
	if !target.IsSuperAdmin {
		return true
	}
	return caller.IsSuperAdmin
}

// CanChangeRole reports whether target's role may be set to role. The
// super-admin row is immutable, and the reserved super-admin email can never
// be demoted even if the flag is missing on its row.
func CanChangeRole(target *models.User, role Role, superAdminEmail string) bool {
	if target.IsSuperAdmin {
		return false
	}
	if target.Email == superAdminEmail && role != RoleAdmin {
		return false
	}
	return true
}

// CanBlockOrDelete reports whether target may be blocked or deleted at all.
// The super-admin row is exempt regardless of caller. Self-service moderation
// is rejected separately with a BadRequest by the user service.
func CanBlockOrDelete(target *models.User) bool {
	return !target.IsSuperAdmin
}
