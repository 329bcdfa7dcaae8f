// Package setting implements site settings management. The public API
// only ever sees entries explicitly marked public.
package setting

import (
	"context"
	"time"

	"vitalis/internal/domain/setting"
	apperrors "vitalis/internal/shared/errors"
	"vitalis/internal/shared/logger"
)

type DTO struct {
	Key       string `json:"key"`
	Value     string `json:"value"`
	IsPublic  bool   `json:"is_public"`
	UpdatedAt string `json:"updated_at"`
}

type Input struct {
	Key      string `json:"key" binding:"required"`
	Value    string `json:"value"`
	IsPublic bool   `json:"is_public"`
}

type Service struct {
	settings setting.Repository
	logger   logger.Interface
}

func NewService(settings setting.Repository) *Service {
	return &Service{
		settings: settings,
		logger:   logger.NewLogger().With("component", "setting.service"),
	}
}

// Set creates or replaces a setting by key.
func (s *Service) Set(ctx context.Context, input Input) (*DTO, error) {
	entry, err := setting.NewSetting(input.Key, input.Value, input.IsPublic)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.settings.Upsert(ctx, entry); err != nil {
		return nil, err
	}

	s.logger.Infow("setting saved", "key", input.Key, "is_public", input.IsPublic)
	return toDTO(entry), nil
}

func (s *Service) Get(ctx context.Context, key string) (*DTO, error) {
	entry, err := s.settings.GetByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	return toDTO(entry), nil
}

func (s *Service) Delete(ctx context.Context, key string) error {
	if err := s.settings.Delete(ctx, key); err != nil {
		return err
	}
	s.logger.Infow("setting deleted", "key", key)
	return nil
}

// List returns all settings for the admin panel.
func (s *Service) List(ctx context.Context) ([]*DTO, error) {
	return s.list(ctx, false)
}

// ListPublic returns the public subset as a key/value map for site chrome.
func (s *Service) ListPublic(ctx context.Context) (map[string]string, error) {
	entries, err := s.settings.List(ctx, true)
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, len(entries))
	for _, entry := range entries {
		out[entry.Key()] = entry.Value()
	}
	return out, nil
}

func (s *Service) list(ctx context.Context, publicOnly bool) ([]*DTO, error) {
	entries, err := s.settings.List(ctx, publicOnly)
	if err != nil {
		return nil, err
	}

	dtos := make([]*DTO, len(entries))
	for i, entry := range entries {
		dtos[i] = toDTO(entry)
	}
	return dtos, nil
}

func toDTO(entry *setting.Setting) *DTO {
	return &DTO{
		Key:       entry.Key(),
		Value:     entry.Value(),
		IsPublic:  entry.IsPublic(),
		UpdatedAt: entry.UpdatedAt().UTC().Format(time.RFC3339),
	}
}
