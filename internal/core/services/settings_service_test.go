package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pellam/jobboard/internal/adapters/repository/memory"
	"github.com/pellam/jobboard/internal/core/domain"
)

func TestSettings(t *testing.T) {
	ctx := context.Background()
	svc := NewSettingsService(memory.NewSettingsRepository())

	settings, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, settings.CampaignName)

	updated, err := svc.Update(ctx, domain.Settings{CampaignName: "Wallflower", AccentColor: "#aa3333"})
	require.NoError(t, err)
	assert.Equal(t, "Wallflower", updated.CampaignName)

	settings, err = svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "#aa3333", settings.AccentColor)

	_, err = svc.Update(ctx, domain.Settings{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
