package authorization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserRole_Can(t *testing.T) {
	tests := []struct {
		name string
		role UserRole
		cap  Capability
		want bool
	}{
		{"super admin manages users", RoleSuperAdmin, CapUsersManage, true},
		{"editor cannot manage users", RoleEditor, CapUsersManage, false},
		{"editor publishes", RoleEditor, CapContentPublish, true},
		{"writer cannot publish", RoleWriter, CapContentPublish, false},
		{"writer writes content", RoleWriter, CapContentWrite, true},
		{"writer uploads", RoleWriter, CapUploadsWrite, true},
		{"writer cannot manage settings", RoleWriter, CapSettingsManage, false},
		{"unknown role grants nothing", UserRole("GUEST"), CapContentRead, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.Can(tt.cap))
		})
	}
}

func TestParseUserRole(t *testing.T) {
	assert.Equal(t, RoleSuperAdmin, ParseUserRole("SUPER_ADMIN"))
	assert.Equal(t, RoleEditor, ParseUserRole("EDITOR"))
	assert.Equal(t, RoleWriter, ParseUserRole("WRITER"))

	// Unknown strings collapse to the least-privileged role.
	assert.Equal(t, RoleWriter, ParseUserRole("editor"))
	assert.Equal(t, RoleWriter, ParseUserRole(""))
}

func TestUserRole_Capabilities(t *testing.T) {
	caps := RoleSuperAdmin.Capabilities()
	assert.Len(t, caps, 7)
	assert.Contains(t, caps, CapUsersManage)

	assert.Empty(t, UserRole("nobody").Capabilities())
}
