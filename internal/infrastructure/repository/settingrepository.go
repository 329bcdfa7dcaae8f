package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vitalis/internal/domain/setting"
	"vitalis/internal/infrastructure/persistence/mappers"
	"vitalis/internal/infrastructure/persistence/models"
	apperrors "vitalis/internal/shared/errors"
)

type SettingRepository struct {
	db     *gorm.DB
	mapper *mappers.SettingMapper
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{
		db:     db,
		mapper: mappers.NewSettingMapper(),
	}
}

func (r *SettingRepository) Upsert(ctx context.Context, s *setting.Setting) error {
	model := r.mapper.ToModel(s)

	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "setting_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "is_public", "updated_at"}),
		}).
		Create(model).Error; err != nil {
		return fmt.Errorf("failed to upsert setting: %w", err)
	}

	s.SetID(model.ID)
	return nil
}

func (r *SettingRepository) GetByKey(ctx context.Context, key string) (*setting.Setting, error) {
	var model models.SettingModel
	if err := r.db.WithContext(ctx).Where("setting_key = ?", key).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("setting not found")
		}
		return nil, fmt.Errorf("failed to find setting: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *SettingRepository) Delete(ctx context.Context, key string) error {
	result := r.db.WithContext(ctx).Where("setting_key = ?", key).Delete(&models.SettingModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete setting: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("setting not found")
	}
	return nil
}

func (r *SettingRepository) List(ctx context.Context, publicOnly bool) ([]*setting.Setting, error) {
	query := r.db.WithContext(ctx).Model(&models.SettingModel{})
	if publicOnly {
		query = query.Where("is_public = ?", true)
	}

	var settingModels []models.SettingModel
	if err := query.Order("setting_key ASC").Find(&settingModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	return r.mapper.ToEntities(settingModels), nil
}
