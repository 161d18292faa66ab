package jsonfile

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pellam/jobboard/internal/core/domain"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	return NewStore(dir, slog.New(slog.NewTextHandler(io.Discard, nil))), dir
}

func TestVotingPeriods_EmptyOnFirstRun(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewVotingPeriodRepository(store)

	periods, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, periods)
	assert.NotNil(t, periods)
}

func TestVotingPeriods_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store, dir := newTestStore(t)
	repo := NewVotingPeriodRepository(store)

	require.NoError(t, repo.SaveAll(ctx, []domain.VotingPeriod{}))
	periods, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, periods)

	future := time.Now().AddDate(0, 0, 7).Format(time.RFC3339)
	ongoing := domain.VotingPeriod{
		ID:    "period-1",
		State: domain.PeriodOngoing,
		JobVotes: []domain.JobVote{
			{JobID: "job-1", Votes: []string{"pilot-1"}},
			{JobID: "job-2", Votes: []string{}},
		},
		EndTime: &future,
	}
	require.NoError(t, repo.SaveAll(ctx, []domain.VotingPeriod{ongoing}))

	periods, err = repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, periods, 1)
	assert.Equal(t, "period-1", periods[0].ID)
	assert.Equal(t, domain.PeriodOngoing, periods[0].State)
	assert.Len(t, periods[0].JobVotes, 2)
	require.NotNil(t, periods[0].EndTime)
	assert.Equal(t, future, *periods[0].EndTime, "end time is stored as given")

	past := time.Now().AddDate(0, 0, -1).Format(time.RFC3339)
	archived := domain.VotingPeriod{
		ID:       "period-0",
		State:    domain.PeriodArchived,
		JobVotes: []domain.JobVote{},
		EndTime:  &past,
	}
	require.NoError(t, repo.SaveAll(ctx, append(periods, archived)))

	periods, err = repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, periods, 2)
	got := domain.OngoingPeriod(periods)
	require.NotNil(t, got)
	assert.Equal(t, "period-1", got.ID)

	// The file owns the documented shape: a top-level "periods" array.
	raw, err := os.ReadFile(filepath.Join(dir, "voting-periods.json"))
	require.NoError(t, err)
	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Contains(t, doc, "periods")
}

func TestVotingPeriods_FailOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file", func(t *testing.T) {
		store, _ := newTestStore(t)
		repo := NewVotingPeriodRepository(store)
		periods, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, periods)
	})

	t.Run("corrupt file", func(t *testing.T) {
		store, dir := newTestStore(t)
		repo := NewVotingPeriodRepository(store)

		require.NoError(t, repo.SaveAll(ctx, []domain.VotingPeriod{{ID: "p", State: domain.PeriodOngoing}}))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "voting-periods.json"), []byte("{not json"), 0o644))

		periods, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, periods)
	})

	t.Run("wrong document shape", func(t *testing.T) {
		store, dir := newTestStore(t)
		repo := NewVotingPeriodRepository(store)

		require.NoError(t, os.WriteFile(filepath.Join(dir, "voting-periods.json"), []byte(`{"periods": null}`), 0o644))
		periods, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, periods)
		assert.NotNil(t, periods)
	})
}
