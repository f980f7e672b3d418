// Package session holds the signed-in identity for one console run. The
// session object is built once at startup and passed explicitly to every
// component that issues requests or checks a permission gate; nothing
// reads identity from ambient state.
package session

import (
	"strings"

	"github.com/cruciblehq/crucible/cli/internal/api"
	"github.com/cruciblehq/crucible/cli/internal/permissions"
)

// Session is the explicit identity context for the console.
type Session struct {
	Username string
	Role     string
	Perms    permissions.Set
}

// FromCurrentUser derives a session from the server's /current-user reply.
func FromCurrentUser(user *api.CurrentUser) *Session {
	if user == nil {
		return Anonymous()
	}
	return &Session{
		Username: user.UserName,
		Role:     user.Role,
		Perms:    permissions.ForRole(user.Role),
	}
}

// Anonymous is the session used before login or when /current-user fails.
// It carries the all-false permission set.
func Anonymous() *Session {
	return &Session{}
}

// IsSelf reports whether the given username is the session's own account.
func (s *Session) IsSelf(username string) bool {
	if s == nil || s.Username == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(username), s.Username)
}

// CanDeleteUser applies the capability set plus the self-action rule.
func (s *Session) CanDeleteUser(username string) bool {
	if s == nil || !s.Perms.CanDeleteTable {
		return false
	}
	if s.IsSelf(username) {
		return permissions.CanActOnSelf("delete")
	}
	return true
}

// CanChangeRoleOf applies the capability set plus the self-action rule.
func (s *Session) CanChangeRoleOf(username string) bool {
	if s == nil || !s.Perms.CanUpdateRecord {
		return false
	}
	if s.IsSelf(username) {
		return permissions.CanActOnSelf("change-role")
	}
	return true
}

// ViewableUsers filters a user list down to those whose activity history
// this session may view.
func (s *Session) ViewableUsers(users []api.User) []api.User {
	if s == nil {
		return nil
	}
	out := make([]api.User, 0, len(users))
	for _, u := range users {
		if permissions.CanViewActivityOf(s.Role, u.Role) {
			out = append(out, u)
		}
	}
	return out
}
