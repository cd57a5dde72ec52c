package ecommerce

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha1"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// wcAPIPath is the WooCommerce REST API base path
const wcAPIPath = "/wp-json/wc/v3"

// Errors for WooCommerce configuration
var (
	ErrWooConfigMissingStoreURL       = errors.New("woocommerce: store URL is required")
	ErrWooConfigMissingConsumerKey    = errors.New("woocommerce: consumer key is required")
	ErrWooConfigMissingConsumerSecret = errors.New("woocommerce: consumer secret is required")
)

// WooCommerceConfig holds configuration for WooCommerce API integration
type WooCommerceConfig struct {
	// StoreURL is the base URL of the WordPress site, without trailing slash
	StoreURL string
	// ConsumerKey is the REST API consumer key (ck_...)
	ConsumerKey string
	// ConsumerSecret is the REST API consumer secret (cs_...)
	ConsumerSecret string
	// Timeout is the HTTP request timeout
	Timeout time.Duration
}

// NewWooCommerceConfig creates a new WooCommerce configuration with defaults.
// Any trailing slash on the store URL is stripped so endpoint paths can be
// appended uniformly.
func NewWooCommerceConfig(storeURL, consumerKey, consumerSecret string) *WooCommerceConfig {
	return &WooCommerceConfig{
		StoreURL:       strings.TrimRight(storeURL, "/"),
		ConsumerKey:    consumerKey,
		ConsumerSecret: consumerSecret,
		Timeout:        10 * time.Second,
	}
}

// Validate validates the WooCommerce configuration
func (c *WooCommerceConfig) Validate() error {
	if c.StoreURL == "" {
		return ErrWooConfigMissingStoreURL
	}
	if c.ConsumerKey == "" {
		return ErrWooConfigMissingConsumerKey
	}
	if c.ConsumerSecret == "" {
		return ErrWooConfigMissingConsumerSecret
	}
	if c.Timeout <= 0 {
		c.Timeout = 10 * time.Second
	}
	return nil
}

// APIURL returns the full API URL for an endpoint, e.g. "/products/42"
func (c *WooCommerceConfig) APIURL(endpoint string) string {
	return c.StoreURL + wcAPIPath + endpoint
}

// SignOAuth1 generates OAuth 1.0a query parameters for a request.
// WooCommerce requires one-legged OAuth with HMAC-SHA1 for endpoints that
// reject query-string credentials. The signature base string is
// METHOD & urlencode(url) & urlencode(sorted params), and the signing key
// is the consumer secret followed by "&" (no token secret).
func (c *WooCommerceConfig) SignOAuth1(method, endpoint string, extraParams map[string]string) url.Values {
	params := map[string]string{
		"oauth_consumer_key":     c.ConsumerKey,
		"oauth_nonce":            newNonce(),
		"oauth_signature_method": "HMAC-SHA1",
		"oauth_timestamp":        strconv.FormatInt(time.Now().Unix(), 10),
	}
	for k, v := range extraParams {
		params[k] = v
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	paramPairs := make([]string, 0, len(keys))
	for _, k := range keys {
		paramPairs = append(paramPairs, percentEncode(k)+"="+percentEncode(params[k]))
	}
	paramString := strings.Join(paramPairs, "&")

	baseString := strings.ToUpper(method) + "&" +
		percentEncode(c.APIURL(endpoint)) + "&" +
		percentEncode(paramString)

	mac := hmac.New(sha1.New, []byte(c.ConsumerSecret+"&"))
	mac.Write([]byte(baseString))
	signature := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	values := url.Values{}
	for k, v := range params {
		values.Set(k, v)
	}
	values.Set("oauth_signature", signature)
	return values
}

// percentEncode implements RFC 3986 encoding as required by OAuth 1.0a
func percentEncode(s string) string {
	encoded := url.QueryEscape(s)
	encoded = strings.ReplaceAll(encoded, "+", "%20")
	encoded = strings.ReplaceAll(encoded, "%7E", "~")
	return encoded
}

// newNonce returns a random hex string for the oauth_nonce parameter
func newNonce() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// fall back to a timestamp-derived nonce
		return strconv.FormatInt(time.Now().UnixNano(), 16)
	}
	return hex.EncodeToString(buf)
}
