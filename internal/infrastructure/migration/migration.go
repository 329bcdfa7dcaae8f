// Package migration manages the database schema. Development environments
// auto-migrate from the model structs; everything else runs goose SQL
// scripts.
package migration

import (
	"fmt"
	"path/filepath"
	"strings"

	"gorm.io/gorm"

	"vitalis/internal/infrastructure/persistence/models"
	"vitalis/internal/shared/logger"
)

const defaultScriptsPath = "./internal/infrastructure/migration/scripts"

// AllModels lists every persistence model, in dependency order, for the
// auto-migrate strategy.
func AllModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.CategoryModel{},
		&models.BrandModel{},
		&models.ExpertModel{},
		&models.ArticleModel{},
		&models.ReviewModel{},
		&models.SupplementModel{},
		&models.FAQModel{},
		&models.SettingModel{},
	}
}

// Manager runs migrations through the configured strategy.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks a strategy for the environment.
func NewManager(environment string) *Manager {
	var strategy Strategy

	switch strings.ToLower(environment) {
	case "development", "dev", "local":
		strategy = NewGormAutoMigrateStrategy()
	default:
		scriptsPath, _ := filepath.Abs(defaultScriptsPath)
		strategy = NewGooseStrategy(scriptsPath)
	}

	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().With("component", "migration.manager"),
	}
}

func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().With("component", "migration.manager"),
	}
}

func (m *Manager) Migrate(db *gorm.DB) error {
	m.logger.Infow("starting database migration",
		"strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db, AllModels()...); err != nil {
		m.logger.Errorw("migration failed",
			"strategy", m.strategy.GetName(),
			"error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully",
		"strategy", m.strategy.GetName())

	return nil
}

func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
