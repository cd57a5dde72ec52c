package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storeadmin/backend/internal/domain/catalog"
	"github.com/storeadmin/backend/internal/domain/integration"
)

// ProductInput contains input for creating or updating a product
type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Images      []string
	// SyncToWooCommerce controls whether creating the product also pushes
	// it to the connected store. Ignored on update.
	SyncToWooCommerce bool
}

// ProductView is the product representation returned to callers
type ProductView struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Price        string     `json:"price"`
	Images       []string   `json:"images"`
	SyncStatus   string     `json:"sync_status"`
	WCProductID  *int64     `json:"wc_product_id,omitempty"`
	LastSyncedAt *time.Time `json:"last_synced_at,omitempty"`
	SyncError    string     `json:"sync_error,omitempty"`
	// SyncWarning is set when the last push succeeded only partially,
	// e.g. with images dropped. It is not persisted.
	SyncWarning  string     `json:"sync_warning,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// RemoteProductStatus pairs a remote product with its local import state
type RemoteProductStatus struct {
	Remote         integration.RemoteProduct `json:"remote"`
	Imported       bool                      `json:"imported"`
	LocalProductID *uuid.UUID                `json:"local_product_id,omitempty"`
}

// toProductView converts a domain product to its view representation
func toProductView(p *catalog.Product) ProductView {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return ProductView{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price.String(),
		Images:       images,
		SyncStatus:   string(p.SyncStatus),
		WCProductID:  p.WCProductID,
		LastSyncedAt: p.LastSyncedAt,
		SyncError:    p.SyncError,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
