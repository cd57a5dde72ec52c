package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/storeadmin/backend/internal/infrastructure/auth"
)

// SignupInput contains input for user registration
type SignupInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput contains input for user login
type LoginInput struct {
	Email    string
	Password string
}

// UserInfo is the safe view of a user returned to callers
type UserInfo struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// AuthResult contains the authenticated user and their tokens
type AuthResult struct {
	User   UserInfo        `json:"user"`
	Tokens *auth.TokenPair `json:"tokens"`
}
