// Package catalog implements the product metadata fetcher against the shop
// platform's Admin REST API.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"skuledger/config"
	"skuledger/internal/domain/entity"
	"skuledger/internal/domain/service"

	"github.com/redis/go-redis/v9"
)

const defaultClientTimeout = 10 * time.Second

// shopifyCatalog implements service.ProductCatalog. Lookups are best-effort:
// every transport, status, and decode failure degrades to "no metadata" after
// a warn log. Callers never see an error from GetProduct.
type shopifyCatalog struct {
	baseURL     string
	apiVersion  string
	accessToken string
	httpClient  *http.Client
	cache       *metadataCache
	logger      *slog.Logger
}

// productEnvelope mirrors the Admin REST single-product response shape.
type productEnvelope struct {
	Product *entity.Product `json:"product"`
}

// NewShopifyCatalog creates the catalog client. The redis client is optional;
// when nil, every lookup goes straight to the API.
func NewShopifyCatalog(cfg *config.Config, logger *slog.Logger, redisClient *redis.Client) service.ProductCatalog {
	timeout := cfg.Shopify.Timeout
	if timeout <= 0 {
		timeout = defaultClientTimeout
	}

	var cache *metadataCache
	if redisClient != nil {
		cache = newMetadataCache(redisClient, cfg, logger)
	}

	return &shopifyCatalog{
		baseURL:     cfg.Shopify.BaseURL,
		apiVersion:  cfg.Shopify.APIVersion,
		accessToken: cfg.Shopify.AccessToken,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		cache:  cache,
		logger: logger,
	}
}

// GetProduct retrieves catalog metadata for one product id. On any failure it
// returns (nil, nil); absence of metadata must never fail order processing.
func (c *shopifyCatalog) GetProduct(ctx context.Context, productID int64) (*entity.Product, error) {
	if cached := c.cache.get(ctx, productID); cached != nil {
		return cached, nil
	}

	url := fmt.Sprintf("%s/admin/api/%s/products/%d.json", c.baseURL, c.apiVersion, productID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.warn(ctx, productID, "failed to build catalog request", err)

		return nil, nil
	}
	req.Header.Set("X-Shopify-Access-Token", c.accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.warn(ctx, productID, "catalog request failed", err)

		return nil, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.LogAttrs(ctx, slog.LevelWarn, "catalog returned non-success status",
			slog.Int64("productID", productID),
			slog.Int("status", resp.StatusCode),
		)

		return nil, nil
	}

	var envelope productEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		c.warn(ctx, productID, "failed to decode catalog response", err)

		return nil, nil
	}

	if envelope.Product != nil {
		c.cache.set(ctx, productID, envelope.Product)
	}

	return envelope.Product, nil
}

func (c *shopifyCatalog) warn(ctx context.Context, productID int64, msg string, err error) {
	c.logger.LogAttrs(ctx, slog.LevelWarn, msg,
		slog.Int64("productID", productID),
		slog.String("error", err.Error()),
	)
}
