package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storeadmin/backend/internal/domain/catalog"
	"github.com/storeadmin/backend/internal/domain/shared"
	"github.com/storeadmin/backend/internal/infrastructure/persistence/models"
)

// GormProductRepository implements catalog.ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by ID for the given owner
func (r *GormProductRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*catalog.Product, error) {
	var model models.ProductModel
	if err := r.db.WithContext(ctx).
		First(&model, "id = ? AND owner_id = ?", id, ownerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByWCProductID finds a product by its remote store ID for the given owner
func (r *GormProductRepository) FindByWCProductID(ctx context.Context, ownerID uuid.UUID, wcProductID int64) (*catalog.Product, error) {
	var model models.ProductModel
	if err := r.db.WithContext(ctx).
		First(&model, "owner_id = ? AND wc_product_id = ?", ownerID, wcProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns all products of the given owner, newest first
func (r *GormProductRepository) FindAll(ctx context.Context, ownerID uuid.UUID) ([]*catalog.Product, error) {
	var productModels []models.ProductModel
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&productModels).Error; err != nil {
		return nil, err
	}

	products := make([]*catalog.Product, len(productModels))
	for i := range productModels {
		products[i] = productModels[i].ToDomain()
	}
	return products, nil
}

// Save persists a new product
func (r *GormProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	model := models.ProductModelFromDomain(product)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update persists changes to an existing product
func (r *GormProductRepository) Update(ctx context.Context, product *catalog.Product) error {
	model := models.ProductModelFromDomain(product)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes a product for the given owner
func (r *GormProductRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&models.ProductModel{}, "id = ? AND owner_id = ?", id, ownerID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ catalog.ProductRepository = (*GormProductRepository)(nil)
