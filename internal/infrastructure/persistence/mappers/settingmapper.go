package mappers

import (
	"vitalis/internal/domain/setting"
	"vitalis/internal/infrastructure/persistence/models"
)

type SettingMapper struct{}

func NewSettingMapper() *SettingMapper {
	return &SettingMapper{}
}

func (m *SettingMapper) ToModel(s *setting.Setting) *models.SettingModel {
	return &models.SettingModel{
		ID:        s.ID(),
		Key:       s.Key(),
		Value:     s.Value(),
		IsPublic:  s.IsPublic(),
		CreatedAt: s.CreatedAt(),
		UpdatedAt: s.UpdatedAt(),
	}
}

func (m *SettingMapper) ToEntity(model *models.SettingModel) *setting.Setting {
	return setting.Reconstruct(
		model.ID,
		model.Key,
		model.Value,
		model.IsPublic,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *SettingMapper) ToEntities(settingModels []models.SettingModel) []*setting.Setting {
	settings := make([]*setting.Setting, len(settingModels))
	for i := range settingModels {
		settings[i] = m.ToEntity(&settingModels[i])
	}
	return settings
}
