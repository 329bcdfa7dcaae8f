// Package user implements admin account management. Only super admins
// reach these operations; the route guard enforces that upstream.
package user

import (
	"context"
	"time"

	"vitalis/internal/domain/user"
	"vitalis/internal/shared/authorization"
	apperrors "vitalis/internal/shared/errors"
	"vitalis/internal/shared/logger"
	"vitalis/internal/shared/utils"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

type DTO struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type CreateInput struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required"`
}

type UpdateInput struct {
	Name   string `json:"name" binding:"required"`
	Role   string `json:"role" binding:"required"`
	Status string `json:"status" binding:"omitempty,oneof=active disabled"`
}

type Service struct {
	users  user.Repository
	hasher PasswordHasher
	logger logger.Interface
}

func NewService(users user.Repository, hasher PasswordHasher) *Service {
	return &Service{
		users:  users,
		hasher: hasher,
		logger: logger.NewLogger().With("component", "user.service"),
	}
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*DTO, error) {
	role := authorization.UserRole(input.Role)
	if !role.IsValid() {
		return nil, apperrors.NewValidationError("invalid role", input.Role)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to hash password")
	}

	u, err := user.NewUser(input.Email, input.Name, hash, role)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	s.logger.Infow("user created", "user_id", u.ID(), "role", u.Role())
	return toDTO(u), nil
}

func (s *Service) GetByID(ctx context.Context, id uint) (*DTO, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDTO(u), nil
}

func (s *Service) Update(ctx context.Context, id uint, input UpdateInput) (*DTO, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := u.Rename(input.Name); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := u.ChangeRole(authorization.UserRole(input.Role)); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	switch user.Status(input.Status) {
	case user.StatusDisabled:
		u.Disable()
	case user.StatusActive:
		u.Enable()
	}

	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}

	s.logger.Infow("user updated", "user_id", id)
	return toDTO(u), nil
}

// Delete removes an account. A super admin cannot delete itself; that
// guards against locking everyone out of user management.
func (s *Service) Delete(ctx context.Context, id, actorID uint) error {
	if id == actorID {
		return apperrors.NewValidationError("cannot delete your own account")
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Infow("user deleted", "user_id", id, "actor_id", actorID)
	return nil
}

func (s *Service) List(ctx context.Context, p utils.Pagination) ([]*DTO, int64, error) {
	users, total, err := s.users.List(ctx, p.Limit(), p.Offset())
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]*DTO, len(users))
	for i, u := range users {
		dtos[i] = toDTO(u)
	}
	return dtos, total, nil
}

func toDTO(u *user.User) *DTO {
	return &DTO{
		ID:        u.ID(),
		Email:     u.Email(),
		Name:      u.Name(),
		Role:      string(u.Role()),
		Status:    string(u.Status()),
		CreatedAt: u.CreatedAt().UTC().Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt().UTC().Format(time.RFC3339),
	}
}
