package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "go.uber.org/automaxprocs"

	"github.com/osse101/SlotsBot_Go/internal/bootstrap"
	"github.com/osse101/SlotsBot_Go/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	bootstrap.SetupLogger(cfg, os.Stdout)

	ctx := context.Background()

	storage, err := bootstrap.OpenStorage(ctx, cfg)
	if err != nil {
		slog.Error("Failed to open storage", "backend", cfg.StorageBackend, "error", err)
		os.Exit(1)
	}

	app, err := bootstrap.Build(ctx, cfg, storage)
	if err != nil {
		storage.Close()
		slog.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}

	go func() {
		if err := app.Server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	sig := <-stop
	slog.Info("Received signal", "signal", sig.String())

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, app)
}
