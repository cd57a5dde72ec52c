package integration

import (
	"strings"

	"github.com/google/uuid"

	"github.com/storeadmin/backend/internal/domain/shared"
)

// PlatformCode identifies a supported e-commerce platform
type PlatformCode string

const (
	PlatformWooCommerce PlatformCode = "WOOCOMMERCE"
)

// StoreCredential holds the API credentials a user registered for a
// remote store. One credential per user per platform.
type StoreCredential struct {
	shared.OwnedEntity
	Platform       PlatformCode
	StoreURL       string
	ConsumerKey    string
	ConsumerSecret string
}

// NewStoreCredential creates a credential for a remote store.
// The store URL is normalized to have no trailing slash.
func NewStoreCredential(ownerID uuid.UUID, platform PlatformCode, storeURL, consumerKey, consumerSecret string) (*StoreCredential, error) {
	storeURL = strings.TrimRight(strings.TrimSpace(storeURL), "/")
	if storeURL == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Store URL is required")
	}
	if !strings.HasPrefix(storeURL, "http://") && !strings.HasPrefix(storeURL, "https://") {
		return nil, shared.NewDomainError("INVALID_INPUT", "Store URL must start with http:// or https://")
	}
	if consumerKey == "" || consumerSecret == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Consumer key and secret are required")
	}

	return &StoreCredential{
		OwnedEntity:    shared.NewOwnedEntity(ownerID),
		Platform:       platform,
		StoreURL:       storeURL,
		ConsumerKey:    consumerKey,
		ConsumerSecret: consumerSecret,
	}, nil
}

// Rotate replaces the store URL and key pair in place, keeping the
// credential's identity so existing product links stay intact.
func (c *StoreCredential) Rotate(storeURL, consumerKey, consumerSecret string) error {
	replacement, err := NewStoreCredential(c.OwnerID, c.Platform, storeURL, consumerKey, consumerSecret)
	if err != nil {
		return err
	}
	c.StoreURL = replacement.StoreURL
	c.ConsumerKey = replacement.ConsumerKey
	c.ConsumerSecret = replacement.ConsumerSecret
	c.UpdatedAt = replacement.UpdatedAt
	return nil
}
