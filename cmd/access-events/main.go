// Package main содержит точку входа для потребителя событий аудита.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	accessevents "github.com/magabrotheeeer/access-gateway/internal/app/access-events"
	"github.com/magabrotheeeer/access-gateway/internal/config"
	"github.com/magabrotheeeer/access-gateway/internal/lib/sl"
)

func main() {
	cfg := config.MustLoad()
	logger := sl.New(cfg.Env, os.Stdout)

	logger.Info("starting access-events", slog.String("env", cfg.Env))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := accessevents.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize access-events app", sl.Err(err))
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		logger.Error("access-events app stopped with error", sl.Err(err))
		os.Exit(1)
	}

	logger.Info("access-events app stopped gracefully")
}
