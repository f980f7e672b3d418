// Package permissions maps a role string to the fixed capability set the
// console gates its controls on. The table is static and pure; callers
// re-derive it wherever a gate is checked.
package permissions

import "strings"

// Set is the capability record for one role.
type Set struct {
	CanAddTable     bool
	CanUpdateTable  bool
	CanDeleteTable  bool
	CanAddRecord    bool
	CanUpdateRecord bool
	CanExportData   bool
}

// Role constants. Matching is case-insensitive; "user" and "viewer" are
// the same role under two historical names.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleCurator = "curator"
	RoleViewer  = "viewer"
)

// ForRole returns the capability set for a role. Unknown roles get the
// most restrictive set, all false.
func ForRole(role string) Set {
	switch normalizeRole(role) {
	case RoleAdmin:
		return Set{
			CanAddTable:     true,
			CanUpdateTable:  true,
			CanDeleteTable:  true,
			CanAddRecord:    true,
			CanUpdateRecord: true,
			CanExportData:   true,
		}
	case RoleManager:
		return Set{
			CanAddTable:     true,
			CanUpdateTable:  true,
			CanAddRecord:    true,
			CanUpdateRecord: true,
			CanExportData:   true,
		}
	case RoleCurator:
		return Set{
			CanAddRecord:    true,
			CanUpdateRecord: true,
		}
	default:
		return Set{}
	}
}

// ViewableRoles returns the roles whose activity history the given role
// may view. The hierarchy is strictly decreasing; a viewer may view no
// one's history.
func ViewableRoles(role string) []string {
	switch normalizeRole(role) {
	case RoleAdmin:
		return []string{RoleAdmin, RoleManager, RoleCurator, RoleViewer}
	case RoleManager:
		return []string{RoleManager, RoleCurator, RoleViewer}
	case RoleCurator:
		return []string{RoleCurator, RoleViewer}
	default:
		return nil
	}
}

// CanViewActivityOf reports whether viewerRole may view targetRole's
// activity history.
func CanViewActivityOf(viewerRole, targetRole string) bool {
	target := normalizeRole(targetRole)
	for _, r := range ViewableRoles(viewerRole) {
		if r == target {
			return true
		}
	}
	return false
}

// CanActOnSelf reports whether a signed-in user may apply the given
// action to their own account. Deleting your own account or changing
// your own role is blocked for every role; other edits follow the
// regular capability set.
func CanActOnSelf(action string) bool {
	switch strings.ToLower(strings.TrimSpace(action)) {
	case "delete", "change-role":
		return false
	default:
		return true
	}
}

func normalizeRole(role string) string {
	r := strings.ToLower(strings.TrimSpace(role))
	if r == "user" {
		return RoleViewer
	}
	return r
}
