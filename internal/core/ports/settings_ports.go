package ports

import (
	"context"

	"github.com/pellam/jobboard/internal/core/domain"
)

type SettingsRepository interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Save(ctx context.Context, settings *domain.Settings) error
}

type SettingsService interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, settings domain.Settings) (*domain.Settings, error)
}
