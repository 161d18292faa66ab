package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pellam/jobboard/internal/adapters/handler/http"
	"github.com/pellam/jobboard/internal/adapters/repository/jsonfile"
	"github.com/pellam/jobboard/internal/core/services"
)

type testApp struct {
	Server  *httptest.Server
	DataDir string
}

// setupTestApp wires the full application over a throwaway data directory,
// exactly as cmd/server does minus the listener.
func setupTestApp(t *testing.T) *testApp {
	t.Helper()

	dataDir := t.TempDir()
	store := jsonfile.NewStore(dataDir, slog.New(slog.NewTextHandler(io.Discard, nil)))
	jobRepo := jsonfile.NewJobRepository(store)
	pilotRepo := jsonfile.NewPilotRepository(store)
	factionRepo := jsonfile.NewFactionRepository(store)
	settingsRepo := jsonfile.NewSettingsRepository(store)
	periodRepo := jsonfile.NewVotingPeriodRepository(store)

	handler := http.NewHandler(http.Handlers{
		Jobs:     http.NewJobHandler(services.NewJobService(jobRepo, factionRepo)),
		Pilots:   http.NewPilotHandler(services.NewPilotService(pilotRepo)),
		Factions: http.NewFactionHandler(services.NewFactionService(factionRepo)),
		Settings: http.NewSettingsHandler(services.NewSettingsService(settingsRepo)),
		Periods:  http.NewVotingPeriodHandler(services.NewVotingPeriodService(periodRepo, jobRepo, pilotRepo)),
	}, http.Options{})

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return &testApp{Server: server, DataDir: dataDir}
}

func (a *testApp) post(t *testing.T, path string, body any, out any) *stdhttp.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := a.Server.Client().Post(a.Server.URL+path, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func (a *testApp) get(t *testing.T, path string, out any) *stdhttp.Response {
	t.Helper()
	resp, err := a.Server.Client().Get(a.Server.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}
