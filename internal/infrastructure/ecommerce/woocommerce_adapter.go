package ecommerce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/storeadmin/backend/internal/domain/integration"
)

// maxResponseSize is the maximum allowed response size from the WooCommerce API (10MB)
const maxResponseSize = 10 * 1024 * 1024

// authScheme selects how credentials are attached to a request
type authScheme int

const (
	authQueryString authScheme = iota
	authHTTPBasic
)

// WooCommerceAdapter implements integration.StorePlatform for WooCommerce stores.
//
// Reads and writes authenticate with query-string credentials first and fall
// back to HTTP basic auth; if both fail the first error is surfaced. Deletes
// are the exception: WooCommerce rejects both schemes for permanent deletion
// on some hosts, so they go out with a one-legged OAuth 1.0a signature and no
// fallback.
type WooCommerceAdapter struct {
	config     *WooCommerceConfig
	httpClient *http.Client
	logger     *zap.Logger
}

// NewWooCommerceAdapter creates a new WooCommerce adapter with the given configuration
func NewWooCommerceAdapter(config *WooCommerceConfig, logger *zap.Logger) (*WooCommerceAdapter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &WooCommerceAdapter{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
		logger:     logger.Named("woocommerce"),
	}, nil
}

// Ping verifies the credential against the remote store by fetching the
// system status report
func (a *WooCommerceAdapter) Ping(ctx context.Context) error {
	respBody, err := a.doRequest(ctx, http.MethodGet, "/system_status", nil)
	if err != nil {
		return err
	}

	var status WCSystemStatus
	if err := json.Unmarshal(respBody, &status); err != nil {
		return fmt.Errorf("%w: unexpected system status response", integration.ErrPlatformRequestFailed)
	}
	return nil
}

// ListProducts fetches products from the remote store matching the filter
func (a *WooCommerceAdapter) ListProducts(ctx context.Context, filter integration.ProductFilter) ([]integration.RemoteProduct, error) {
	query := url.Values{}
	query.Set("per_page", "100")
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if filter.SKU != "" {
		query.Set("sku", filter.SKU)
	}

	respBody, err := a.doRequest(ctx, http.MethodGet, "/products?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var wcProducts []WCProduct
	if err := json.Unmarshal(respBody, &wcProducts); err != nil {
		return nil, fmt.Errorf("%w: failed to parse product list: %v", integration.ErrPlatformRequestFailed, err)
	}

	products := make([]integration.RemoteProduct, 0, len(wcProducts))
	for i := range wcProducts {
		products = append(products, toRemoteProduct(&wcProducts[i]))
	}
	return products, nil
}

// GetProduct fetches a single remote product by its remote ID
func (a *WooCommerceAdapter) GetProduct(ctx context.Context, remoteID int64) (*integration.RemoteProduct, error) {
	respBody, err := a.doRequest(ctx, http.MethodGet, "/products/"+strconv.FormatInt(remoteID, 10), nil)
	if err != nil {
		return nil, err
	}

	var wcProduct WCProduct
	if err := json.Unmarshal(respBody, &wcProduct); err != nil {
		return nil, fmt.Errorf("%w: failed to parse product: %v", integration.ErrPlatformRequestFailed, err)
	}

	product := toRemoteProduct(&wcProduct)
	return &product, nil
}

// CreateProduct pushes a new product and returns its remote representation
func (a *WooCommerceAdapter) CreateProduct(ctx context.Context, payload integration.ProductPayload) (*integration.RemoteProduct, error) {
	body, err := json.Marshal(fromPayload(payload))
	if err != nil {
		return nil, err
	}

	respBody, err := a.doRequest(ctx, http.MethodPost, "/products", body)
	if err != nil {
		return nil, err
	}

	var wcProduct WCProduct
	if err := json.Unmarshal(respBody, &wcProduct); err != nil {
		return nil, fmt.Errorf("%w: failed to parse created product: %v", integration.ErrPlatformRequestFailed, err)
	}

	product := toRemoteProduct(&wcProduct)
	return &product, nil
}

// UpdateProduct pushes changes to an existing remote product
func (a *WooCommerceAdapter) UpdateProduct(ctx context.Context, remoteID int64, payload integration.ProductPayload) (*integration.RemoteProduct, error) {
	body, err := json.Marshal(fromPayload(payload))
	if err != nil {
		return nil, err
	}

	respBody, err := a.doRequest(ctx, http.MethodPut, "/products/"+strconv.FormatInt(remoteID, 10), body)
	if err != nil {
		return nil, err
	}

	var wcProduct WCProduct
	if err := json.Unmarshal(respBody, &wcProduct); err != nil {
		return nil, fmt.Errorf("%w: failed to parse updated product: %v", integration.ErrPlatformRequestFailed, err)
	}

	product := toRemoteProduct(&wcProduct)
	return &product, nil
}

// DeleteProduct permanently removes a remote product. The request carries an
// OAuth 1.0a signature and is not retried with another auth scheme.
func (a *WooCommerceAdapter) DeleteProduct(ctx context.Context, remoteID int64) error {
	endpoint := "/products/" + strconv.FormatInt(remoteID, 10)
	signed := a.config.SignOAuth1(http.MethodDelete, endpoint, map[string]string{"force": "true"})

	requestURL := a.config.APIURL(endpoint) + "?" + signed.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, requestURL, nil)
	if err != nil {
		return fmt.Errorf("woocommerce: failed to create request: %w", err)
	}

	_, err = a.execute(req)
	return err
}

// ---------------------------------------------------------------------------
// Internal helpers
// ---------------------------------------------------------------------------

// doRequest performs a request with the credential fallback chain:
// query-string auth first, HTTP basic auth second, first error surfaced.
func (a *WooCommerceAdapter) doRequest(ctx context.Context, method, endpoint string, body []byte) ([]byte, error) {
	respBody, firstErr := a.doOnce(ctx, method, endpoint, body, authQueryString)
	if firstErr == nil {
		return respBody, nil
	}

	a.logger.Debug("query-string auth failed, retrying with basic auth",
		zap.String("method", method),
		zap.String("endpoint", endpoint),
		zap.Error(firstErr),
	)

	respBody, retryErr := a.doOnce(ctx, method, endpoint, body, authHTTPBasic)
	if retryErr == nil {
		return respBody, nil
	}

	return nil, firstErr
}

// doOnce performs a single request with the given auth scheme
func (a *WooCommerceAdapter) doOnce(ctx context.Context, method, endpoint string, body []byte, scheme authScheme) ([]byte, error) {
	requestURL := a.config.APIURL(endpoint)

	if scheme == authQueryString {
		u, err := url.Parse(requestURL)
		if err != nil {
			return nil, fmt.Errorf("woocommerce: invalid request URL: %w", err)
		}
		q := u.Query()
		q.Set("consumer_key", a.config.ConsumerKey)
		q.Set("consumer_secret", a.config.ConsumerSecret)
		u.RawQuery = q.Encode()
		requestURL = u.String()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if err != nil {
		return nil, fmt.Errorf("woocommerce: failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if scheme == authHTTPBasic {
		req.SetBasicAuth(a.config.ConsumerKey, a.config.ConsumerSecret)
	}

	return a.execute(req)
}

// execute sends the request and classifies failures
func (a *WooCommerceAdapter) execute(req *http.Request) ([]byte, error) {
	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", integration.ErrPlatformUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("woocommerce: failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, a.classifyError(resp.StatusCode, respBody)
	}

	return respBody, nil
}

// classifyError maps an error response to a platform-level error
func (a *WooCommerceAdapter) classifyError(statusCode int, respBody []byte) error {
	var wcErr WCError
	if err := json.Unmarshal(respBody, &wcErr); err == nil && wcErr.Code != "" {
		if wcErr.IsImageUploadError() {
			return fmt.Errorf("%w: %s", integration.ErrImageRejected, wcErr.Message)
		}
		switch statusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %s", integration.ErrPlatformAuthFailed, wcErr.Message)
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s", integration.ErrRemoteProductNotFound, wcErr.Message)
		}
		return fmt.Errorf("%w: %s (%s)", integration.ErrPlatformRequestFailed, wcErr.Message, wcErr.Code)
	}

	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: HTTP %d", integration.ErrPlatformAuthFailed, statusCode)
	case http.StatusNotFound:
		return fmt.Errorf("%w: HTTP %d", integration.ErrRemoteProductNotFound, statusCode)
	}
	return fmt.Errorf("%w: HTTP %d", integration.ErrPlatformRequestFailed, statusCode)
}

var _ integration.StorePlatform = (*WooCommerceAdapter)(nil)
