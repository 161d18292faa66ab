package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pellam/jobboard/internal/core/domain"
)

func TestJobRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	repo := NewJobRepository(store)

	job := &domain.Job{ID: "job-1", Title: "Escort the convoy", State: domain.JobActive}
	require.NoError(t, repo.Save(ctx, job))

	got, err := repo.GetByID(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, "Escort the convoy", got.Title)

	job.State = domain.JobComplete
	require.NoError(t, repo.Update(ctx, job))
	got, err = repo.GetByID(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, domain.JobComplete, got.State)

	_, err = repo.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrJobNotFound)

	require.NoError(t, repo.Delete(ctx, "job-1"))
	assert.ErrorIs(t, repo.Delete(ctx, "job-1"), domain.ErrJobNotFound)

	jobs, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestJobRepository_PreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	repo := NewJobRepository(store)

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Save(ctx, &domain.Job{ID: id, Title: id, State: domain.JobActive}))
	}

	jobs, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 3)
	assert.Equal(t, "a", jobs[0].ID)
	assert.Equal(t, "c", jobs[2].ID)
}

func TestSettingsRepository(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	repo := NewSettingsRepository(store)

	// First run: empty defaults, no error.
	settings, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, settings.CampaignName)

	require.NoError(t, repo.Save(ctx, &domain.Settings{CampaignName: "Wallflower", AccentColor: "#aa3333"}))
	settings, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Wallflower", settings.CampaignName)
}

func TestStore_WriteIsPrettyPrinted(t *testing.T) {
	ctx := context.Background()
	store, dir := newTestStore(t)
	repo := NewPilotRepository(store)

	require.NoError(t, repo.Save(ctx, &domain.Pilot{ID: "p-1", Name: "Ash"}))

	raw, err := os.ReadFile(filepath.Join(dir, "pilots.json"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\n  \"pilots\"")
}

func TestStore_ReadDoesNotCreateFiles(t *testing.T) {
	store, dir := newTestStore(t)
	repo := NewFactionRepository(store)

	_, err := repo.GetAll(context.Background())
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "factions.json"))
	assert.True(t, os.IsNotExist(err))
}
