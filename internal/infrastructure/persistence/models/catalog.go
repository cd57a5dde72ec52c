package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/storeadmin/backend/internal/domain/catalog"
)

// ProductModel is the persistence model for products
type ProductModel struct {
	OwnedModel
	Name         string          `gorm:"size:255;not null"`
	Description  string          `gorm:"type:text"`
	Price        decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Images       string          `gorm:"type:jsonb"`
	SyncStatus   string          `gorm:"size:32;not null;index"`
	WCProductID  *int64          `gorm:"index"`
	LastSyncedAt *time.Time      `gorm:""`
	SyncError    string          `gorm:"type:text"`
}

// TableName returns the table name for ProductModel
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts ProductModel to a domain Product
func (m *ProductModel) ToDomain() *catalog.Product {
	var images []string
	if m.Images != "" {
		// stored as a JSON array; a corrupt value yields no images
		_ = json.Unmarshal([]byte(m.Images), &images)
	}

	return &catalog.Product{
		OwnedEntity:  m.OwnedModel.ToDomain(),
		Name:         m.Name,
		Description:  m.Description,
		Price:        m.Price,
		Images:       images,
		SyncStatus:   catalog.SyncStatus(m.SyncStatus),
		WCProductID:  m.WCProductID,
		LastSyncedAt: m.LastSyncedAt,
		SyncError:    m.SyncError,
	}
}

// ProductModelFromDomain converts a domain Product to a ProductModel
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	images := "[]"
	if len(p.Images) > 0 {
		if data, err := json.Marshal(p.Images); err == nil {
			images = string(data)
		}
	}

	m := &ProductModel{
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		Images:       images,
		SyncStatus:   string(p.SyncStatus),
		WCProductID:  p.WCProductID,
		LastSyncedAt: p.LastSyncedAt,
		SyncError:    p.SyncError,
	}
	m.FromDomainOwnedEntity(p.OwnedEntity)
	return m
}
