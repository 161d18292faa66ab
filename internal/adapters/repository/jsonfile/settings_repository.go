package jsonfile

import (
	"context"

	"github.com/pellam/jobboard/internal/core/domain"
	"github.com/pellam/jobboard/internal/core/ports"
)

const settingsFile = "settings.json"

type settingsRepository struct {
	store *Store
}

func NewSettingsRepository(store *Store) ports.SettingsRepository {
	return &settingsRepository{store: store}
}

func (r *settingsRepository) Get(_ context.Context) (*domain.Settings, error) {
	var settings domain.Settings
	if !r.store.read(settingsFile, &settings) {
		return &domain.Settings{}, nil
	}
	return &settings, nil
}

func (r *settingsRepository) Save(_ context.Context, settings *domain.Settings) error {
	return r.store.write(settingsFile, settings)
}
