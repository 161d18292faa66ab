package services

import (
	"context"
	"fmt"

	"github.com/pellam/jobboard/internal/core/domain"
	"github.com/pellam/jobboard/internal/core/ports"
)

type settingsService struct {
	repo ports.SettingsRepository
}

func NewSettingsService(repo ports.SettingsRepository) ports.SettingsService {
	return &settingsService{repo: repo}
}

func (s *settingsService) Get(ctx context.Context) (*domain.Settings, error) {
	return s.repo.Get(ctx)
}

func (s *settingsService) Update(ctx context.Context, settings domain.Settings) (*domain.Settings, error) {
	if settings.CampaignName == "" {
		return nil, fmt.Errorf("campaign name is required: %w", domain.ErrInvalidInput)
	}
	if err := s.repo.Save(ctx, &settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}
	return &settings, nil
}
