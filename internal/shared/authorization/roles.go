// Package authorization defines the closed set of editorial roles and the
// capability table used by route guards. Role checks go through
// Can/Capabilities rather than string comparisons at call sites.
package authorization

// UserRole is an enumerated privilege tier for admin accounts.
type UserRole string

const (
	RoleSuperAdmin UserRole = "SUPER_ADMIN"
	RoleEditor     UserRole = "EDITOR"
	RoleWriter     UserRole = "WRITER"
)

// Capability names a single permitted operation class.
type Capability string

const (
	CapContentRead    Capability = "content.read"
	CapContentWrite   Capability = "content.write"
	CapContentPublish Capability = "content.publish"
	CapContentDelete  Capability = "content.delete"
	CapUploadsWrite   Capability = "uploads.write"
	CapSettingsManage Capability = "settings.manage"
	CapUsersManage    Capability = "users.manage"
)

// capabilityTable maps each role to its allowed capabilities. Writers can
// draft content and attach images; editors additionally publish, delete and
// manage site settings; only the super admin manages accounts.
var capabilityTable = map[UserRole]map[Capability]bool{
	RoleWriter: {
		CapContentRead:  true,
		CapContentWrite: true,
		CapUploadsWrite: true,
	},
	RoleEditor: {
		CapContentRead:    true,
		CapContentWrite:   true,
		CapContentPublish: true,
		CapContentDelete:  true,
		CapUploadsWrite:   true,
		CapSettingsManage: true,
	},
	RoleSuperAdmin: {
		CapContentRead:    true,
		CapContentWrite:   true,
		CapContentPublish: true,
		CapContentDelete:  true,
		CapUploadsWrite:   true,
		CapSettingsManage: true,
		CapUsersManage:    true,
	},
}

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsValid() bool {
	_, ok := capabilityTable[r]
	return ok
}

// Can reports whether the role grants the capability. Unknown roles grant
// nothing.
func (r UserRole) Can(c Capability) bool {
	caps, ok := capabilityTable[r]
	return ok && caps[c]
}

// Capabilities returns the role's capability set, for the /auth/me response.
func (r UserRole) Capabilities() []Capability {
	caps := capabilityTable[r]
	result := make([]Capability, 0, len(caps))
	for c := range caps {
		result = append(result, c)
	}
	return result
}

// ParseUserRole returns the role for s, defaulting unknown values to the
// least-privileged role.
func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleWriter
}
