package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitalis/internal/shared/authorization"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser("Editor@Example.com ", "Jane Roe", "hash", authorization.RoleEditor)
	require.NoError(t, err)

	assert.Equal(t, "editor@example.com", u.Email())
	assert.Equal(t, "Jane Roe", u.Name())
	assert.Equal(t, authorization.RoleEditor, u.Role())
	assert.True(t, u.IsActive())
}

func TestNewUser_Validation(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		userName string
		hash     string
		role     authorization.UserRole
	}{
		{"empty email", "", "n", "h", authorization.RoleWriter},
		{"email without at", "nope", "n", "h", authorization.RoleWriter},
		{"empty name", "a@b.c", "  ", "h", authorization.RoleWriter},
		{"empty hash", "a@b.c", "n", "", authorization.RoleWriter},
		{"bad role", "a@b.c", "n", "h", authorization.UserRole("root")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUser(tt.email, tt.userName, tt.hash, tt.role)
			assert.Error(t, err)
		})
	}
}

func TestUser_DisableEnable(t *testing.T) {
	u, err := NewUser("a@b.c", "n", "h", authorization.RoleWriter)
	require.NoError(t, err)

	u.Disable()
	assert.False(t, u.IsActive())
	assert.Equal(t, StatusDisabled, u.Status())

	u.Enable()
	assert.True(t, u.IsActive())
}

func TestUser_ChangeRole(t *testing.T) {
	u, err := NewUser("a@b.c", "n", "h", authorization.RoleWriter)
	require.NoError(t, err)

	require.NoError(t, u.ChangeRole(authorization.RoleSuperAdmin))
	assert.Equal(t, authorization.RoleSuperAdmin, u.Role())

	assert.Error(t, u.ChangeRole(authorization.UserRole("owner")))
}
