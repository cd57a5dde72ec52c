package integration

import (
	"context"

	"github.com/google/uuid"
)

// CredentialRepository defines persistence operations for store credentials
type CredentialRepository interface {
	// FindByOwnerAndPlatform finds the credential a user registered for a platform
	FindByOwnerAndPlatform(ctx context.Context, ownerID uuid.UUID, platform PlatformCode) (*StoreCredential, error)

	// FindAllByOwner returns all credentials registered by a user
	FindAllByOwner(ctx context.Context, ownerID uuid.UUID) ([]*StoreCredential, error)

	// Save persists a new credential
	Save(ctx context.Context, credential *StoreCredential) error

	// Update persists changes to an existing credential
	Update(ctx context.Context, credential *StoreCredential) error

	// Delete removes a credential for the given owner
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}
