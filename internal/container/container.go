package container

import (
	"context"
	"fmt"

	"billa/fetcher/internal/client"
	"billa/fetcher/internal/config"
	"billa/fetcher/internal/normalize"
	"billa/fetcher/internal/service"

	log "github.com/sirupsen/logrus"
)

// Container holds all initialized components
type Container struct {
	Config  *config.Config
	Client  client.BillaClient
	Service *service.Service
}

// New creates a new container with all dependencies initialized
func New(cfg *config.Config) (*Container, error) {
	if cfg.Billa.BaseURL == "" {
		return nil, fmt.Errorf("billa.base_url must not be empty")
	}

	billaClient := client.NewBillaClient(cfg.Billa)
	normalizer := normalize.NewNormalizer(cfg.Billa.FilesURL)

	return &Container{
		Config:  cfg,
		Client:  billaClient,
		Service: service.NewService(billaClient, normalizer),
	}, nil
}

// Run executes one fetch cycle.
func (c *Container) Run(ctx context.Context) error {
	catalog := c.Service.Fetch(ctx)
	if catalog == nil {
		log.Warn("No catalog produced this cycle")
		return nil
	}

	log.Infof("Fetched %d categories and %d products", len(catalog.Categories), len(catalog.Products))
	return nil
}
