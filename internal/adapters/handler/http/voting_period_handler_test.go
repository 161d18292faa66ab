package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pellam/jobboard/internal/core/domain"
)

func seedJob(t *testing.T, server *httptest.Server, title string) domain.Job {
	t.Helper()
	var job domain.Job
	resp := doJSON(t, server, http.MethodPost, "/api/jobs", map[string]any{"title": title}, "", &job)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return job
}

func seedPilot(t *testing.T, server *httptest.Server, name string) domain.Pilot {
	t.Helper()
	var pilot domain.Pilot
	resp := doJSON(t, server, http.MethodPost, "/api/pilots", map[string]any{"name": name}, "", &pilot)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return pilot
}

func TestVotingPeriodFlow(t *testing.T) {
	server := newTestServer(t, "")

	job1 := seedJob(t, server, "Escort the convoy")
	job2 := seedJob(t, server, "Salvage run")
	ash := seedPilot(t, server, "Ash")
	brook := seedPilot(t, server, "Brook")

	// No period yet.
	resp := doJSON(t, server, http.MethodGet, "/api/voting-periods/ongoing", nil, "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	endTime := time.Now().AddDate(0, 0, 7).Format(time.RFC3339)
	var period domain.VotingPeriod
	resp = doJSON(t, server, http.MethodPost, "/api/voting-periods", map[string]any{
		"endTime": endTime,
		"jobIds":  []string{job1.ID, job2.ID},
	}, "", &period)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, domain.PeriodOngoing, period.State)
	require.Len(t, period.JobVotes, 2)

	// A second ongoing period is rejected.
	resp = doJSON(t, server, http.MethodPost, "/api/voting-periods", map[string]any{"jobIds": []string{job1.ID}}, "", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Votes accumulate; a pilot gets one per period.
	resp = doJSON(t, server, http.MethodPost, "/api/voting-periods/ongoing/votes", map[string]any{
		"jobId": job1.ID, "pilotId": ash.ID,
	}, "", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, server, http.MethodPost, "/api/voting-periods/ongoing/votes", map[string]any{
		"jobId": job2.ID, "pilotId": ash.ID,
	}, "", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var afterVote domain.VotingPeriod
	resp = doJSON(t, server, http.MethodPost, "/api/voting-periods/ongoing/votes", map[string]any{
		"jobId": job2.ID, "pilotId": brook.ID,
	}, "", &afterVote)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, []string{ash.ID}, afterVote.JobVotes[0].Votes)
	assert.Equal(t, []string{brook.ID}, afterVote.JobVotes[1].Votes)

	// Archive, then a new period can open.
	var archived domain.VotingPeriod
	resp = doJSON(t, server, http.MethodPost, "/api/voting-periods/"+period.ID+"/archive", nil, "", &archived)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, domain.PeriodArchived, archived.State)

	resp = doJSON(t, server, http.MethodPost, "/api/voting-periods/"+period.ID+"/archive", nil, "", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = doJSON(t, server, http.MethodGet, "/api/voting-periods/ongoing", nil, "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var periods []domain.VotingPeriod
	resp = doJSON(t, server, http.MethodGet, "/api/voting-periods", nil, "", &periods)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, periods, 1)
}

func TestVotingPeriodCreate_Rejections(t *testing.T) {
	server := newTestServer(t, "")
	job := seedJob(t, server, "Escort the convoy")

	tests := []struct {
		name   string
		body   map[string]any
		status int
	}{
		{"numeric end time fails schema", map[string]any{"endTime": 12345}, http.StatusBadRequest},
		{"unparseable end time", map[string]any{"endTime": "soon"}, http.StatusBadRequest},
		{"unknown job", map[string]any{"jobIds": []string{"ghost"}}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, server, http.MethodPost, "/api/voting-periods", tt.body, "", nil)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}

	// Voting against a pending job is rejected at creation.
	var pending domain.Job
	resp := doJSON(t, server, http.MethodPost, "/api/jobs", map[string]any{"title": "Later", "state": "Pending"}, "", &pending)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, server, http.MethodPost, "/api/voting-periods", map[string]any{"jobIds": []string{pending.ID}}, "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Sanity: the active job works.
	resp = doJSON(t, server, http.MethodPost, "/api/voting-periods", map[string]any{"jobIds": []string{job.ID}}, "", nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestCastVote_Rejections(t *testing.T) {
	server := newTestServer(t, "")
	job := seedJob(t, server, "Escort the convoy")
	pilot := seedPilot(t, server, "Ash")

	// No ongoing period yet.
	resp := doJSON(t, server, http.MethodPost, "/api/voting-periods/ongoing/votes", map[string]any{
		"jobId": job.ID, "pilotId": pilot.ID,
	}, "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, server, http.MethodPost, "/api/voting-periods", map[string]any{"jobIds": []string{job.ID}}, "", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Schema: both ids required.
	resp = doJSON(t, server, http.MethodPost, "/api/voting-periods/ongoing/votes", map[string]any{"jobId": job.ID}, "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Unknown pilot.
	resp = doJSON(t, server, http.MethodPost, "/api/voting-periods/ongoing/votes", map[string]any{
		"jobId": job.ID, "pilotId": "ghost",
	}, "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
