package main

import (
	"context"
	"errors"
	"log/slog"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pellam/jobboard/internal/adapters/handler/http"
	"github.com/pellam/jobboard/internal/adapters/repository/jsonfile"
	"github.com/pellam/jobboard/internal/config"
	"github.com/pellam/jobboard/internal/core/services"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.Load()

	store := jsonfile.NewStore(cfg.DataDir, logger)
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
	}, http.Options{
		AdminToken: cfg.AdminToken,
		StaticDir:  cfg.StaticDir,
	})

	server := &stdhttp.Server{Addr: cfg.Addr, Handler: handler}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("listening", "addr", cfg.Addr, "data_dir", cfg.DataDir)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
		os.Exit(1)
	}
}
