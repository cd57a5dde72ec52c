package ecommerce

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storeadmin/backend/internal/domain/integration"
)

func newTestAdapter(t *testing.T, serverURL string) *WooCommerceAdapter {
	cfg := NewWooCommerceConfig(serverURL, "ck_test", "cs_test")
	adapter, err := NewWooCommerceAdapter(cfg, nil)
	require.NoError(t, err)
	return adapter
}

func hasQueryCredentials(r *http.Request) bool {
	q := r.URL.Query()
	return q.Get("consumer_key") == "ck_test" && q.Get("consumer_secret") == "cs_test"
}

func hasBasicCredentials(r *http.Request) bool {
	user, pass, ok := r.BasicAuth()
	return ok && user == "ck_test" && pass == "cs_test"
}

func writeWCError(w http.ResponseWriter, status int, code, message string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(WCError{Code: code, Message: message})
}

func TestWooCommerceAdapter_QueryAuthPrimary(t *testing.T) {
	var sawBasic bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, _, ok := r.BasicAuth(); ok {
			sawBasic = true
		}
		require.True(t, hasQueryCredentials(r))
		assert.Equal(t, "/wp-json/wc/v3/products/7", r.URL.Path)
		_ = json.NewEncoder(w).Encode(WCProduct{ID: 7, Name: "Widget", Price: "19.90"})
	}))
	defer server.Close()

	adapter := newTestAdapter(t, server.URL)

	product, err := adapter.GetProduct(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), product.ID)
	assert.Equal(t, "Widget", product.Name)
	assert.Equal(t, "19.90", product.Price)
	assert.False(t, sawBasic, "basic auth must not be attempted when query auth succeeds")
}

func TestWooCommerceAdapter_FallsBackToBasicAuth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hasBasicCredentials(r) {
			_ = json.NewEncoder(w).Encode([]WCProduct{{ID: 1, Name: "Widget"}})
			return
		}
		writeWCError(w, http.StatusUnauthorized, "woocommerce_rest_authentication_error", "query auth disabled")
	}))
	defer server.Close()

	adapter := newTestAdapter(t, server.URL)

	products, err := adapter.ListProducts(context.Background(), integration.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, int64(1), products[0].ID)
}

func TestWooCommerceAdapter_ListProducts_Filter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "widget", q.Get("search"))
		assert.Equal(t, "WID-1", q.Get("sku"))
		_ = json.NewEncoder(w).Encode([]WCProduct{{ID: 3, Name: "Widget", SKU: "WID-1"}})
	}))
	defer server.Close()

	adapter := newTestAdapter(t, server.URL)

	products, err := adapter.ListProducts(context.Background(), integration.ProductFilter{Search: "widget", SKU: "WID-1"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "WID-1", products[0].SKU)
}

func TestWooCommerceAdapter_SurfacesFirstErrorWhenBothFail(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			writeWCError(w, http.StatusUnauthorized, "woocommerce_rest_authentication_error", "first failure")
			return
		}
		writeWCError(w, http.StatusInternalServerError, "internal_server_error", "second failure")
	}))
	defer server.Close()

	adapter := newTestAdapter(t, server.URL)

	_, err := adapter.ListProducts(context.Background(), integration.ProductFilter{})
	require.Error(t, err)
	assert.Equal(t, 2, calls, "both auth schemes attempted")
	assert.ErrorIs(t, err, integration.ErrPlatformAuthFailed)
	assert.Contains(t, err.Error(), "first failure")
}

func TestWooCommerceAdapter_CreateProduct(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/wp-json/wc/v3/products", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var incoming WCProduct
		require.NoError(t, json.NewDecoder(r.Body).Decode(&incoming))
		assert.Equal(t, "Widget", incoming.Name)
		assert.Equal(t, "simple", incoming.Type)
		assert.Equal(t, "19.90", incoming.RegularPrice)
		require.Len(t, incoming.Images, 1)

		incoming.ID = 42
		incoming.Permalink = "https://shop.example.com/product/widget"
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(incoming)
	}))
	defer server.Close()

	adapter := newTestAdapter(t, server.URL)

	payload := integration.ProductPayload{
		Name:         "Widget",
		Type:         "simple",
		RegularPrice: "19.90",
		Images:       []integration.ProductImage{{Src: "https://cdn.example.com/a.jpg"}},
	}

	product, err := adapter.CreateProduct(context.Background(), payload)
	require.NoError(t, err)
	assert.Equal(t, int64(42), product.ID)
	assert.Equal(t, "https://shop.example.com/product/widget", product.Permalink)
}

func TestWooCommerceAdapter_CreateProduct_ImageRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeWCError(w, http.StatusBadRequest, "woocommerce_product_image_upload_error", "Error getting remote image")
	}))
	defer server.Close()

	adapter := newTestAdapter(t, server.URL)

	_, err := adapter.CreateProduct(context.Background(), integration.ProductPayload{Name: "Widget"})
	require.Error(t, err)
	assert.ErrorIs(t, err, integration.ErrImageRejected)
}

func TestWooCommerceAdapter_GetProduct_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeWCError(w, http.StatusNotFound, "woocommerce_rest_product_invalid_id", "Invalid ID.")
	}))
	defer server.Close()

	adapter := newTestAdapter(t, server.URL)

	_, err := adapter.GetProduct(context.Background(), 999)
	require.Error(t, err)
	assert.ErrorIs(t, err, integration.ErrRemoteProductNotFound)
}

func TestWooCommerceAdapter_DeleteProduct_UsesOAuthSignature(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		require.Equal(t, http.MethodDelete, r.Method)
		q := r.URL.Query()

		assert.Empty(t, q.Get("consumer_key"), "delete must not carry query credentials")
		_, _, hasBasic := r.BasicAuth()
		assert.False(t, hasBasic, "delete must not carry basic auth")

		assert.Equal(t, "true", q.Get("force"))
		assert.Equal(t, "ck_test", q.Get("oauth_consumer_key"))
		assert.Equal(t, "HMAC-SHA1", q.Get("oauth_signature_method"))
		assert.NotEmpty(t, q.Get("oauth_nonce"))
		assert.NotEmpty(t, q.Get("oauth_timestamp"))
		assert.NotEmpty(t, q.Get("oauth_signature"))

		_ = json.NewEncoder(w).Encode(WCProduct{ID: 42})
	}))
	defer server.Close()

	adapter := newTestAdapter(t, server.URL)

	require.NoError(t, adapter.DeleteProduct(context.Background(), 42))
	assert.Equal(t, 1, requests, "delete is a single attempt with no fallback")
}

func TestWooCommerceAdapter_DeleteProduct_NoFallbackOnFailure(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		writeWCError(w, http.StatusUnauthorized, "woocommerce_rest_authentication_error", "signature mismatch")
	}))
	defer server.Close()

	adapter := newTestAdapter(t, server.URL)

	err := adapter.DeleteProduct(context.Background(), 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, integration.ErrPlatformAuthFailed)
	assert.Equal(t, 1, requests)
}

func TestWooCommerceAdapter_Ping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/wp-json/wc/v3/system_status", r.URL.Path)
		_, _ = w.Write([]byte(`{"environment":{"home_url":"https://shop.example.com","version":"8.0.0"}}`))
	}))
	defer server.Close()

	adapter := newTestAdapter(t, server.URL)
	assert.NoError(t, adapter.Ping(context.Background()))
}

func TestWooCommerceAdapter_Unreachable(t *testing.T) {
	adapter := newTestAdapter(t, "http://127.0.0.1:1")

	_, err := adapter.ListProducts(context.Background(), integration.ProductFilter{})
	require.Error(t, err)
	assert.ErrorIs(t, err, integration.ErrPlatformUnavailable)
}

func TestNewWooCommerceConfig_StripsTrailingSlash(t *testing.T) {
	cfg := NewWooCommerceConfig("https://shop.example.com/", "ck", "cs")
	assert.Equal(t, "https://shop.example.com", cfg.StoreURL)
	assert.Equal(t, "https://shop.example.com/wp-json/wc/v3/products", cfg.APIURL("/products"))
}

func TestAdapterFactory_ForCredential(t *testing.T) {
	factory := NewAdapterFactory(0, nil)

	_, err := factory.ForCredential(nil)
	assert.ErrorIs(t, err, integration.ErrPlatformNotConfigured)

	cred := &integration.StoreCredential{
		Platform:       integration.PlatformWooCommerce,
		StoreURL:       "https://shop.example.com",
		ConsumerKey:    "ck",
		ConsumerSecret: "cs",
	}
	adapter, err := factory.ForCredential(cred)
	require.NoError(t, err)
	assert.NotNil(t, adapter)

	cred.Platform = "SHOPIFY"
	_, err = factory.ForCredential(cred)
	assert.Error(t, err)
}
