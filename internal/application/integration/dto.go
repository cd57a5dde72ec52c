package integration

import (
	"time"

	"github.com/google/uuid"
)

// ConnectWooCommerceInput contains the credentials for connecting a
// WooCommerce store.
type ConnectWooCommerceInput struct {
	StoreURL       string
	ConsumerKey    string
	ConsumerSecret string
}

// ConnectionView is the credential representation returned to callers.
// Secrets are never echoed back.
type ConnectionView struct {
	ID          uuid.UUID `json:"id"`
	Platform    string    `json:"platform"`
	StoreURL    string    `json:"store_url"`
	ConsumerKey string    `json:"consumer_key"`
	ConnectedAt time.Time `json:"connected_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
