package service

import (
	"context"

	"billa/fetcher/internal/client"
	"billa/fetcher/internal/domain"
	"billa/fetcher/internal/normalize"

	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	client     client.BillaClient
	normalizer *normalize.Normalizer
}

func NewService(client client.BillaClient, normalizer *normalize.Normalizer) *Service {
	return &Service{
		client:     client,
		normalizer: normalizer,
	}
}

// FetchCatalog runs one fetch cycle: both upstream requests in flight at
// once, joined all-or-none, then the pure transforms. A failure of either
// request fails the whole cycle with no partial data.
func (s *Service) FetchCatalog(ctx context.Context) (*domain.Catalog, error) {
	log.Info("fetch billa data")

	var (
		nodes  []domain.NavigationNode
		search *domain.SearchResponse
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		nodes, err = s.client.GetNavigation(ctx)
		return err
	})

	g.Go(func() error {
		var err error
		search, err = s.client.GetProductSearch(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info("preprocess billa data")

	categories := s.normalizer.Categories(nodes)
	products := s.normalizer.Products(search)

	return &domain.Catalog{
		Categories: lo.Values(categories),
		Products:   products,
	}, nil
}

// Fetch is the legacy-shaped entry point: any upstream failure is logged and
// swallowed, and the caller gets nil instead of an error. FetchCatalog is the
// explicit form new callers should prefer.
func (s *Service) Fetch(ctx context.Context) *domain.Catalog {
	catalog, err := s.FetchCatalog(ctx)
	if err != nil {
		log.Errorf("Failed to fetch billa data: %v", err)
		return nil
	}

	return catalog
}
