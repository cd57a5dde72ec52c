package shared

import (
	"time"

	"github.com/google/uuid"
)

// Entity is the base interface for all domain entities
type Entity interface {
	GetID() uuid.UUID
	GetCreatedAt() time.Time
	GetUpdatedAt() time.Time
}

// BaseEntity provides common fields for all entities
type BaseEntity struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GetID returns the entity ID
func (e *BaseEntity) GetID() uuid.UUID {
	return e.ID
}

// GetCreatedAt returns the creation timestamp
func (e *BaseEntity) GetCreatedAt() time.Time {
	return e.CreatedAt
}

// GetUpdatedAt returns the last update timestamp
func (e *BaseEntity) GetUpdatedAt() time.Time {
	return e.UpdatedAt
}

// NewBaseEntity creates a new base entity with generated ID
func NewBaseEntity() BaseEntity {
	now := time.Now()
	return BaseEntity{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// OwnedEntity provides common fields for entities exclusively owned by a user.
// Ownership is enforced at the repository level: lookups are always scoped
// by owner ID, so a foreign ID resolves to not-found rather than forbidden.
type OwnedEntity struct {
	BaseEntity
	OwnerID uuid.UUID
}

// NewOwnedEntity creates a new owned entity with generated ID
func NewOwnedEntity(ownerID uuid.UUID) OwnedEntity {
	return OwnedEntity{
		BaseEntity: NewBaseEntity(),
		OwnerID:    ownerID,
	}
}
