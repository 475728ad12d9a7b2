package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/MikeSquared-Agency/magellan/internal/api"
	"github.com/MikeSquared-Agency/magellan/internal/config"
	"github.com/MikeSquared-Agency/magellan/internal/schedule"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	slog.Info("magellan starting", "port", cfg.Port)

	if cfg.APIToken == "" {
		slog.Warn("MAGELLAN_API_TOKEN not set, scheduling endpoints are unauthenticated")
	}

	asm := schedule.NewAssembler(slog.Default())

	srv := api.NewServer(cfg.Port, cfg.APIToken, asm)
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	slog.Info("magellan ready", "port", cfg.Port)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	slog.Info("shutting down")
	slog.Info("magellan stopped")
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
