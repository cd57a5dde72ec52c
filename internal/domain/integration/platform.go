package integration

import (
	"context"

	"github.com/storeadmin/backend/internal/domain/shared"
)

// Platform-level errors surfaced by adapters. Adapters wrap transport
// detail around these sentinels so callers can branch with errors.Is.
var (
	// ErrPlatformNotConfigured means no credential is registered for the platform
	ErrPlatformNotConfigured = shared.NewDomainError("PLATFORM_NOT_CONNECTED", "No store connected for this platform")
	// ErrPlatformAuthFailed means the remote store rejected every configured auth scheme
	ErrPlatformAuthFailed = shared.NewDomainError("PLATFORM_AUTH_FAILED", "Remote store rejected the credentials")
	// ErrPlatformUnavailable means the remote store could not be reached
	ErrPlatformUnavailable = shared.NewDomainError("PLATFORM_UNAVAILABLE", "Remote store is unreachable")
	// ErrPlatformRequestFailed means the remote store returned a non-success response
	ErrPlatformRequestFailed = shared.NewDomainError("PLATFORM_REQUEST_FAILED", "Remote store request failed")
	// ErrImageRejected means the remote store failed to ingest a product image
	ErrImageRejected = shared.NewDomainError("IMAGE_REJECTED", "Remote store could not upload a product image")
	// ErrRemoteProductNotFound means the referenced remote product does not exist
	ErrRemoteProductNotFound = shared.NewDomainError("REMOTE_PRODUCT_NOT_FOUND", "Remote product not found")
)

// ProductFilter narrows a remote product listing. The zero value lists
// everything. SKU augments Search, it does not replace it.
type ProductFilter struct {
	Search string
	SKU    string
}

// RemoteProduct is the platform-neutral view of a product living in a
// remote store.
type RemoteProduct struct {
	ID          int64
	Name        string
	SKU         string
	Description string
	Price       string
	Status      string
	Permalink   string
	Images      []string
}

// ProductImage is a single image reference in an outgoing payload
type ProductImage struct {
	Src string `json:"src"`
}

// ProductPayload is the platform-neutral outgoing product representation.
// Prices travel as strings to avoid float rounding on the wire.
type ProductPayload struct {
	Name         string         `json:"name"`
	Type         string         `json:"type"`
	RegularPrice string         `json:"regular_price"`
	Description  string         `json:"description"`
	Images       []ProductImage `json:"images"`
}

// WithoutImages returns a copy of the payload with all images stripped,
// used to retry a push after the remote store rejected an image.
func (p ProductPayload) WithoutImages() ProductPayload {
	p.Images = []ProductImage{}
	return p
}

// StorePlatform is the port every e-commerce platform adapter implements
type StorePlatform interface {
	// Ping verifies the credential against the remote store
	Ping(ctx context.Context) error

	// ListProducts fetches products from the remote store matching the filter
	ListProducts(ctx context.Context, filter ProductFilter) ([]RemoteProduct, error)

	// GetProduct fetches a single remote product by its remote ID
	GetProduct(ctx context.Context, remoteID int64) (*RemoteProduct, error)

	// CreateProduct pushes a new product and returns its remote representation
	CreateProduct(ctx context.Context, payload ProductPayload) (*RemoteProduct, error)

	// UpdateProduct pushes changes to an existing remote product
	UpdateProduct(ctx context.Context, remoteID int64, payload ProductPayload) (*RemoteProduct, error)

	// DeleteProduct permanently removes a remote product
	DeleteProduct(ctx context.Context, remoteID int64) error
}

// PlatformFactory builds an adapter bound to a specific credential
type PlatformFactory interface {
	// ForCredential returns an adapter for the credential's platform
	ForCredential(credential *StoreCredential) (StorePlatform, error)
}
