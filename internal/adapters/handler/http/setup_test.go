package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pellam/jobboard/internal/adapters/repository/jsonfile"
	"github.com/pellam/jobboard/internal/core/services"
)

func newTestServer(t *testing.T, adminToken string) *httptest.Server {
	t.Helper()

	store := jsonfile.NewStore(t.TempDir(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	jobRepo := jsonfile.NewJobRepository(store)
	pilotRepo := jsonfile.NewPilotRepository(store)
	factionRepo := jsonfile.NewFactionRepository(store)
	settingsRepo := jsonfile.NewSettingsRepository(store)
	periodRepo := jsonfile.NewVotingPeriodRepository(store)

	handler := NewHandler(Handlers{
		Jobs:     NewJobHandler(services.NewJobService(jobRepo, factionRepo)),
		Pilots:   NewPilotHandler(services.NewPilotService(pilotRepo)),
		Factions: NewFactionHandler(services.NewFactionService(factionRepo)),
		Settings: NewSettingsHandler(services.NewSettingsService(settingsRepo)),
		Periods:  NewVotingPeriodHandler(services.NewVotingPeriodService(periodRepo, jobRepo, pilotRepo)),
	}, Options{AdminToken: adminToken})

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

// doJSON issues a request with a JSON body and decodes the JSON response
// into out when out is non-nil.
func doJSON(t *testing.T, server *httptest.Server, method, path string, body any, token string, out any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, server.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("X-Admin-Token", token)
	}

	resp, err := server.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}
