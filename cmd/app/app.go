package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/DRSN-tech/sneakers-store/internal/app"
	config "github.com/DRSN-tech/sneakers-store/internal/cfg"
	"github.com/DRSN-tech/sneakers-store/pkg/logger"
)

func main() {
	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}
	log = logger.NewSlogLoggerWithWriter(os.Stderr, cfg.Log.Level)

	application, err := app.NewApp(cfg, log, os.Stdout)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
