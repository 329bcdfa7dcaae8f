// Package user models the admin accounts that author and manage content.
package user

import (
	"fmt"
	"strings"
	"time"

	"vitalis/internal/shared/authorization"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusDisabled Status = "disabled"
)

// User is an editorial account. Public visitors are never represented here.
type User struct {
	id           uint
	email        string
	name         string
	passwordHash string
	role         authorization.UserRole
	status       Status
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates an active account. passwordHash must already be hashed;
// the domain never sees plaintext passwords.
func NewUser(email, name, passwordHash string, role authorization.UserRole) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email: %q", email)
	}
	if name = strings.TrimSpace(name); name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %q", role)
	}

	now := time.Now().UTC()
	return &User{
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		role:         role,
		status:       StatusActive,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructUser rebuilds a user from persistence.
func ReconstructUser(id uint, email, name, passwordHash string, role authorization.UserRole, status Status, createdAt, updatedAt time.Time) *User {
	return &User{
		id:           id,
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		role:         role,
		status:       status,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() uint                     { return u.id }
func (u *User) Email() string                { return u.email }
func (u *User) Name() string                 { return u.name }
func (u *User) PasswordHash() string         { return u.passwordHash }
func (u *User) Role() authorization.UserRole { return u.role }
func (u *User) Status() Status               { return u.status }
func (u *User) CreatedAt() time.Time         { return u.createdAt }
func (u *User) UpdatedAt() time.Time         { return u.updatedAt }

func (u *User) SetID(id uint) { u.id = id }

func (u *User) IsActive() bool {
	return u.status == StatusActive
}

func (u *User) Rename(name string) error {
	if name = strings.TrimSpace(name); name == "" {
		return fmt.Errorf("name is required")
	}
	u.name = name
	u.touch()
	return nil
}

func (u *User) ChangeRole(role authorization.UserRole) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %q", role)
	}
	u.role = role
	u.touch()
	return nil
}

func (u *User) ChangePasswordHash(hash string) error {
	if hash == "" {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = hash
	u.touch()
	return nil
}

func (u *User) Disable() {
	u.status = StatusDisabled
	u.touch()
}

func (u *User) Enable() {
	u.status = StatusActive
	u.touch()
}

func (u *User) touch() {
	u.updatedAt = time.Now().UTC()
}
