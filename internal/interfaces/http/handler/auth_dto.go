package handler

import (
	"github.com/storeadmin/backend/internal/application/identity"
	"github.com/storeadmin/backend/internal/infrastructure/auth"
)

// SignupRequest represents a registration request
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest represents a token refresh request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// AuthResponse carries the user profile together with a token pair
type AuthResponse struct {
	User   identity.UserInfo `json:"user"`
	Tokens *auth.TokenPair   `json:"tokens"`
}

// LogoutResponse confirms a logout
type LogoutResponse struct {
	Message string `json:"message"`
}
