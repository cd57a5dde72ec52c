package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ProductRepository defines persistence operations for products.
// All lookups are scoped by owner so that a foreign product ID
// resolves to not-found.
type ProductRepository interface {
	// FindByID finds a product by ID for the given owner
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*Product, error)

	// FindByWCProductID finds a product by its remote store ID for the given owner
	FindByWCProductID(ctx context.Context, ownerID uuid.UUID, wcProductID int64) (*Product, error)

	// FindAll returns all products of the given owner, newest first
	FindAll(ctx context.Context, ownerID uuid.UUID) ([]*Product, error)

	// Save persists a new product
	Save(ctx context.Context, product *Product) error

	// Update persists changes to an existing product
	Update(ctx context.Context, product *Product) error

	// Delete removes a product for the given owner
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}
