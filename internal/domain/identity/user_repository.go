package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines persistence operations for users
type UserRepository interface {
	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail finds a user by email (emails are stored lowercased)
	FindByEmail(ctx context.Context, email string) (*User, error)

	// ExistsByEmail reports whether a user with the email exists
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Save persists a new user
	Save(ctx context.Context, user *User) error

	// Update persists changes to an existing user
	Update(ctx context.Context, user *User) error
}
