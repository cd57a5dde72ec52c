package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/storeadmin/backend/internal/domain/shared"
)

// BaseModel provides common persistence fields for all models.
// It maps to the domain's BaseEntity.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// ToDomain converts BaseModel to domain BaseEntity
func (m *BaseModel) ToDomain() shared.BaseEntity {
	return shared.BaseEntity{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomainBaseEntity populates BaseModel from domain BaseEntity
func (m *BaseModel) FromDomainBaseEntity(e shared.BaseEntity) {
	m.ID = e.ID
	m.CreatedAt = e.CreatedAt
	m.UpdatedAt = e.UpdatedAt
}

// OwnedModel provides common persistence fields for user-owned models.
// It maps to the domain's OwnedEntity.
type OwnedModel struct {
	BaseModel
	OwnerID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// ToDomain converts OwnedModel to domain OwnedEntity
func (m *OwnedModel) ToDomain() shared.OwnedEntity {
	return shared.OwnedEntity{
		BaseEntity: m.BaseModel.ToDomain(),
		OwnerID:    m.OwnerID,
	}
}

// FromDomainOwnedEntity populates OwnedModel from domain OwnedEntity
func (m *OwnedModel) FromDomainOwnedEntity(e shared.OwnedEntity) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.OwnerID = e.OwnerID
}
