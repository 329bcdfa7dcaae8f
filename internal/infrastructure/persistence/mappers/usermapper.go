package mappers

import (
	"vitalis/internal/domain/user"
	"vitalis/internal/infrastructure/persistence/models"
	"vitalis/internal/shared/authorization"
)

// UserMapper converts between user domain entities and persistence models.
type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Email:        u.Email(),
		Name:         u.Name(),
		PasswordHash: u.PasswordHash(),
		Role:         string(u.Role()),
		Status:       string(u.Status()),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	}
}

func (m *UserMapper) ToEntity(model *models.UserModel) *user.User {
	return user.ReconstructUser(
		model.ID,
		model.Email,
		model.Name,
		model.PasswordHash,
		authorization.ParseUserRole(model.Role),
		user.Status(model.Status),
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *UserMapper) ToEntities(userModels []models.UserModel) []*user.User {
	users := make([]*user.User, len(userModels))
	for i := range userModels {
		users[i] = m.ToEntity(&userModels[i])
	}
	return users
}
