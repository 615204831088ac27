package main

import (
	"context"

	"billa/fetcher/internal/config"
	"billa/fetcher/internal/container"

	log "github.com/sirupsen/logrus"
)

func main() {
	log.Info("Starting Billa fetcher...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.Info("Configuration loaded successfully")

	app, err := container.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("Application exited with error: %v", err)
	}

	log.Info("Application finished successfully")
}
