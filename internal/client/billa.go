package client

import (
	"context"
	"fmt"
	"time"

	"billa/fetcher/internal/config"
	"billa/fetcher/internal/domain"

	log "github.com/sirupsen/logrus"
	"resty.dev/v3"
)

type BillaClient interface {
	GetNavigation(ctx context.Context) ([]domain.NavigationNode, error)
	GetProductSearch(ctx context.Context) (*domain.SearchResponse, error)
}

type billaClient struct {
	config     config.BillaConfig
	baseURL    string
	httpClient *resty.Client
}

func NewBillaClient(cfg config.BillaConfig) BillaClient {
	client := resty.New().
		SetTimeout(time.Duration(cfg.Timeout) * time.Second).
		SetHeader("Accept", "application/json")

	return &billaClient{
		config:     cfg,
		baseURL:    cfg.BaseURL,
		httpClient: client,
	}
}

func (c *billaClient) GetNavigation(ctx context.Context) ([]domain.NavigationNode, error) {
	url := c.baseURL + "/api/navigation"

	var nodes []domain.NavigationNode
	if err := c.fetchJSON(ctx, url, &nodes); err != nil {
		return nil, fmt.Errorf("failed to fetch navigation: %w", err)
	}

	log.Debugf("Fetched navigation with %d top-level article groups", len(nodes))
	return nodes, nil
}

func (c *billaClient) GetProductSearch(ctx context.Context) (*domain.SearchResponse, error) {
	url := fmt.Sprintf("%s/api/search/full?category=%s&pageSize=%d&isFirstPage=true&isLastPage=true",
		c.baseURL, c.config.Category, c.config.PageSize)

	var search domain.SearchResponse
	if err := c.fetchJSON(ctx, url, &search); err != nil {
		return nil, fmt.Errorf("failed to fetch product search: %w", err)
	}

	log.Debugf("Fetched product search with %d tiles", len(search.Tiles))
	return &search, nil
}

func (c *billaClient) fetchJSON(ctx context.Context, url string, out interface{}) error {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(out).
		SetForceResponseContentType("application/json").
		Get(url)

	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("request cancelled: %w", ctx.Err())
		}
		log.Errorf("billa raw data error: %v", err)
		return fmt.Errorf("failed to fetch URL: %w", err)
	}

	if resp.IsError() {
		log.Errorf("billa raw data error: HTTP %d from %s", resp.StatusCode(), url)
		return fmt.Errorf("HTTP error: %d %s", resp.StatusCode(), resp.Status())
	}

	log.Infof("raw billa data fetched from %s", url)
	return nil
}
