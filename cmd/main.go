package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmittmann/tint"

	"unistay/internal/application"
	"unistay/pkg/contextx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(log)

	ctx = contextx.WithLogger(ctx, log)

	if err := application.Run(ctx); err != nil {
		log.Error("application failed", "error", err)
		os.Exit(1)
	}

	log.Info("application stopped")
}
