package ecommerce

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/storeadmin/backend/internal/domain/integration"
)

// AdapterFactory builds platform adapters bound to store credentials
type AdapterFactory struct {
	requestTimeout time.Duration
	logger         *zap.Logger
}

// NewAdapterFactory creates a new adapter factory
func NewAdapterFactory(requestTimeout time.Duration, logger *zap.Logger) *AdapterFactory {
	if requestTimeout <= 0 {
		requestTimeout = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdapterFactory{
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}

// ForCredential returns an adapter for the credential's platform
func (f *AdapterFactory) ForCredential(credential *integration.StoreCredential) (integration.StorePlatform, error) {
	if credential == nil {
		return nil, integration.ErrPlatformNotConfigured
	}

	switch credential.Platform {
	case integration.PlatformWooCommerce:
		cfg := NewWooCommerceConfig(credential.StoreURL, credential.ConsumerKey, credential.ConsumerSecret)
		cfg.Timeout = f.requestTimeout
		return NewWooCommerceAdapter(cfg, f.logger)
	default:
		return nil, fmt.Errorf("%w: unsupported platform %q", integration.ErrPlatformNotConfigured, credential.Platform)
	}
}

var _ integration.PlatformFactory = (*AdapterFactory)(nil)
