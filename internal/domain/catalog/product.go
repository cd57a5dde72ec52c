package catalog

import (
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storeadmin/backend/internal/domain/shared"
)

// SyncStatus represents the synchronization state of a product
// against the connected remote store.
type SyncStatus string

const (
	// SyncStatusCreatedLocally means the product exists only in the local store
	SyncStatusCreatedLocally SyncStatus = "CREATED_LOCALLY"
	// SyncStatusSynced means the product has a live remote counterpart
	SyncStatusSynced SyncStatus = "SYNCED_TO_WC"
	// SyncStatusFailed means the last remote push was attempted and failed
	SyncStatusFailed SyncStatus = "SYNC_FAILED"
)

// Allowed image file extensions for remote upload
var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// Product represents a product in the local catalog
type Product struct {
	shared.OwnedEntity
	Name        string
	Description string
	Price       decimal.Decimal
	Images      []string
	SyncStatus  SyncStatus
	// WCProductID is the remote product ID, set once the product has been
	// pushed to or imported from the remote store. A non-nil WCProductID
	// implies the status is no longer CREATED_LOCALLY.
	WCProductID  *int64
	LastSyncedAt *time.Time
	SyncError    string
}

// NewProduct creates a local-only product not yet pushed to any remote store
func NewProduct(ownerID uuid.UUID, name, description string, price decimal.Decimal, images []string) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product name is required")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product price cannot be negative")
	}
	if err := validateImages(images); err != nil {
		return nil, err
	}

	return &Product{
		OwnedEntity: shared.NewOwnedEntity(ownerID),
		Name:        name,
		Description: description,
		Price:       price,
		Images:      images,
		SyncStatus:  SyncStatusCreatedLocally,
	}, nil
}

// NewImportedProduct creates a product mirroring an existing remote product.
// It is born synced and carries the remote ID from the start.
func NewImportedProduct(ownerID uuid.UUID, wcProductID int64, name, description string, price decimal.Decimal, images []string) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product name is required")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product price cannot be negative")
	}

	now := time.Now()
	return &Product{
		OwnedEntity:  shared.NewOwnedEntity(ownerID),
		Name:         name,
		Description:  description,
		Price:        price,
		Images:       images,
		SyncStatus:   SyncStatusSynced,
		WCProductID:  &wcProductID,
		LastSyncedAt: &now,
	}, nil
}

// Update replaces the editable fields of the product
func (p *Product) Update(name, description string, price decimal.Decimal, images []string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_INPUT", "Product name is required")
	}
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Product price cannot be negative")
	}
	if err := validateImages(images); err != nil {
		return err
	}

	p.Name = name
	p.Description = description
	p.Price = price
	p.Images = images
	p.UpdatedAt = time.Now()
	return nil
}

// MarkSynced records a successful push to the remote store
func (p *Product) MarkSynced(wcProductID int64) {
	now := time.Now()
	p.WCProductID = &wcProductID
	p.SyncStatus = SyncStatusSynced
	p.SyncError = ""
	p.LastSyncedAt = &now
	p.UpdatedAt = now
}

// MarkSyncFailed records a failed push. The remote ID is kept if one was
// already assigned on an earlier attempt.
func (p *Product) MarkSyncFailed(reason string) {
	p.SyncStatus = SyncStatusFailed
	p.SyncError = reason
	p.UpdatedAt = time.Now()
}

// IsSynced reports whether the product has a live remote counterpart
func (p *Product) IsSynced() bool {
	return p.SyncStatus == SyncStatusSynced
}

func validateImages(images []string) error {
	for _, img := range images {
		if !IsAllowedImageURL(img) {
			return shared.NewDomainError("INVALID_IMAGE", "Image URL has an unsupported file extension: "+img)
		}
	}
	return nil
}

// IsAllowedImageURL reports whether the URL ends in a supported image
// extension. Query strings and fragments are ignored for the check.
func IsAllowedImageURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	ext := strings.ToLower(path.Ext(u.Path))
	return allowedImageExtensions[ext]
}
