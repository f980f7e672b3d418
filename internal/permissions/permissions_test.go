package permissions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdminHasEverything(t *testing.T) {
	p := ForRole("admin")
	assert.True(t, p.CanAddTable)
	assert.True(t, p.CanUpdateTable)
	assert.True(t, p.CanDeleteTable)
	assert.True(t, p.CanAddRecord)
	assert.True(t, p.CanUpdateRecord)
	assert.True(t, p.CanExportData)
}

func TestManagerCannotDeleteTables(t *testing.T) {
	p := ForRole("manager")
	assert.True(t, p.CanAddTable)
	assert.True(t, p.CanUpdateTable)
	assert.False(t, p.CanDeleteTable)
	assert.True(t, p.CanExportData)
}

func TestCuratorRecordLevelOnly(t *testing.T) {
	p := ForRole("curator")
	assert.False(t, p.CanAddTable)
	assert.False(t, p.CanUpdateTable)
	assert.False(t, p.CanDeleteTable)
	assert.True(t, p.CanAddRecord)
	assert.True(t, p.CanUpdateRecord)
	assert.False(t, p.CanExportData)
}

func TestViewerAndUserAreReadOnly(t *testing.T) {
	for _, role := range []string{"viewer", "user"} {
		assert.Equal(t, Set{}, ForRole(role), role)
	}
}

func TestUnknownRoleAllFalse(t *testing.T) {
	for _, role := range []string{"", "root", "superuser", "Admin2"} {
		assert.Equal(t, Set{}, ForRole(role), role)
	}
}

func TestRoleMatchingCaseInsensitive(t *testing.T) {
	assert.Equal(t, ForRole("admin"), ForRole("ADMIN"))
	assert.Equal(t, ForRole("manager"), ForRole(" Manager "))
	assert.Equal(t, ForRole("viewer"), ForRole("User"))
}

func TestViewableRolesHierarchy(t *testing.T) {
	assert.Equal(t, []string{"admin", "manager", "curator", "viewer"}, ViewableRoles("admin"))
	assert.Equal(t, []string{"manager", "curator", "viewer"}, ViewableRoles("manager"))
	assert.Equal(t, []string{"curator", "viewer"}, ViewableRoles("curator"))
	assert.Nil(t, ViewableRoles("viewer"))
	assert.Nil(t, ViewableRoles("user"))
	assert.Nil(t, ViewableRoles("unknown"))
}

func TestCanViewActivityOf(t *testing.T) {
	assert.True(t, CanViewActivityOf("admin", "curator"))
	assert.True(t, CanViewActivityOf("manager", "viewer"))
	assert.False(t, CanViewActivityOf("curator", "manager"))
	assert.False(t, CanViewActivityOf("viewer", "viewer"))
	assert.True(t, CanViewActivityOf("curator", "user"))
}

func TestSelfActionRule(t *testing.T) {
	assert.False(t, CanActOnSelf("delete"))
	assert.False(t, CanActOnSelf("change-role"))
	assert.False(t, CanActOnSelf(" Delete "))
	assert.True(t, CanActOnSelf("update"))
}
