package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storeadmin/backend/internal/domain/integration"
	"github.com/storeadmin/backend/internal/domain/shared"
	"github.com/storeadmin/backend/internal/infrastructure/persistence/models"
)

// GormCredentialRepository implements integration.CredentialRepository using GORM
type GormCredentialRepository struct {
	db *gorm.DB
}

// NewGormCredentialRepository creates a new GormCredentialRepository
func NewGormCredentialRepository(db *gorm.DB) *GormCredentialRepository {
	return &GormCredentialRepository{db: db}
}

// FindByOwnerAndPlatform finds the credential a user registered for a platform
func (r *GormCredentialRepository) FindByOwnerAndPlatform(ctx context.Context, ownerID uuid.UUID, platform integration.PlatformCode) (*integration.StoreCredential, error) {
	var model models.StoreCredentialModel
	if err := r.db.WithContext(ctx).
		First(&model, "owner_id = ? AND platform = ?", ownerID, platform).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllByOwner returns all credentials registered by a user
func (r *GormCredentialRepository) FindAllByOwner(ctx context.Context, ownerID uuid.UUID) ([]*integration.StoreCredential, error) {
	var credentialModels []models.StoreCredentialModel
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("platform ASC").
		Find(&credentialModels).Error; err != nil {
		return nil, err
	}

	credentials := make([]*integration.StoreCredential, len(credentialModels))
	for i := range credentialModels {
		credentials[i] = credentialModels[i].ToDomain()
	}
	return credentials, nil
}

// Save persists a new credential
func (r *GormCredentialRepository) Save(ctx context.Context, credential *integration.StoreCredential) error {
	model := models.StoreCredentialModelFromDomain(credential)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update persists changes to an existing credential
func (r *GormCredentialRepository) Update(ctx context.Context, credential *integration.StoreCredential) error {
	model := models.StoreCredentialModelFromDomain(credential)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes a credential for the given owner
func (r *GormCredentialRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&models.StoreCredentialModel{}, "id = ? AND owner_id = ?", id, ownerID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ integration.CredentialRepository = (*GormCredentialRepository)(nil)
