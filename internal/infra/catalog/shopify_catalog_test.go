package catalog

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"skuledger/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalogConfig(baseURL string) *config.Config {
	cfg := &config.Config{}
	cfg.Shopify = config.ShopifyConfig{
		BaseURL:     baseURL,
		APIVersion:  "2024-01",
		AccessToken: "test-access-token",
	}

	return cfg
}

func TestShopifyCatalog_GetProduct_Success(t *testing.T) {
	var gotPath, gotToken string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.Header.Get("X-Shopify-Access-Token")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"product":{"id":632910392,"title":"IPod Nano","vendor":"Apple","product_type":"Cult Products","status":"active"}}`))
	}))
	defer server.Close()

	catalog := NewShopifyCatalog(newTestCatalogConfig(server.URL), slog.Default(), nil)

	product, err := catalog.GetProduct(context.Background(), 632910392)
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, int64(632910392), product.ID)
	assert.Equal(t, "IPod Nano", product.Title)
	assert.Equal(t, "Apple", product.Vendor)

	assert.Equal(t, "/admin/api/2024-01/products/632910392.json", gotPath)
	assert.Equal(t, "test-access-token", gotToken)
}

func TestShopifyCatalog_GetProduct_NonSuccessStatusIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errors":"Not Found"}`, http.StatusNotFound)
	}))
	defer server.Close()

	catalog := NewShopifyCatalog(newTestCatalogConfig(server.URL), slog.Default(), nil)

	product, err := catalog.GetProduct(context.Background(), 42)
	assert.NoError(t, err)
	assert.Nil(t, product)
}

func TestShopifyCatalog_GetProduct_TransportFailureIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	catalog := NewShopifyCatalog(newTestCatalogConfig(server.URL), slog.Default(), nil)

	product, err := catalog.GetProduct(context.Background(), 42)
	assert.NoError(t, err)
	assert.Nil(t, product)
}

func TestShopifyCatalog_GetProduct_MalformedBodyIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"product":`))
	}))
	defer server.Close()

	catalog := NewShopifyCatalog(newTestCatalogConfig(server.URL), slog.Default(), nil)

	product, err := catalog.GetProduct(context.Background(), 42)
	assert.NoError(t, err)
	assert.Nil(t, product)
}
