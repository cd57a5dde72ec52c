package identity

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/storeadmin/backend/internal/domain/identity"
	"github.com/storeadmin/backend/internal/domain/shared"
	"github.com/storeadmin/backend/internal/infrastructure/auth"
)

// AuthService handles authentication operations
type AuthService struct {
	userRepo   identity.UserRepository
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo identity.UserRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		blacklist:  blacklist,
		logger:     logger,
	}
}

// Signup registers a new user and returns tokens
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*AuthResult, error) {
	user, err := identity.NewUser(input.Name, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, user.Email)
	if err != nil {
		s.logger.Error("Failed to check email uniqueness", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create account")
	}
	if exists {
		return nil, shared.NewDomainError("EMAIL_TAKEN", "An account with this email already exists")
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		s.logger.Error("Failed to save user", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create account")
	}

	s.logger.Info("User registered", zap.String("user_id", user.ID.String()))
	return s.buildAuthResult(user)
}

// Login authenticates a user and returns tokens
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		s.logger.Warn("User not found during login", zap.String("email", input.Email))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	if !user.VerifyPassword(input.Password) {
		s.logger.Warn("Invalid password attempt", zap.String("email", input.Email))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	user.RecordLogin()
	if err := s.userRepo.Update(ctx, user); err != nil {
		// login still succeeds; the timestamp is best effort
		s.logger.Error("Failed to record login time", zap.Error(err))
	}

	s.logger.Info("User logged in", zap.String("user_id", user.ID.String()))
	return s.buildAuthResult(user)
}

// Logout revokes the current access token
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	if claims.ID == "" {
		return shared.NewDomainError("INVALID_TOKEN", "Token has no ID")
	}

	if err := s.blacklist.AddToBlacklist(ctx, claims.ID, claims.GetRemainingTTL()); err != nil {
		s.logger.Error("Failed to blacklist token", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to log out")
	}

	s.logger.Info("User logged out", zap.String("user_id", claims.UserID))
	return nil
}

// GetUser returns the profile of the given user
func (s *AuthService) GetUser(ctx context.Context, userID uuid.UUID) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	info := toUserInfo(user)
	return &info, nil
}

// RefreshTokens issues a new token pair from a valid refresh token
func (s *AuthService) RefreshTokens(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	pair, err := s.jwtService.RefreshTokenPair(refreshToken)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_TOKEN", "Invalid or expired refresh token")
	}
	return pair, nil
}

func (s *AuthService) buildAuthResult(user *identity.User) (*AuthResult, error) {
	tokens, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID: user.ID,
		Email:  user.Email,
		Role:   string(user.Role),
	})
	if err != nil {
		s.logger.Error("Failed to generate tokens", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate tokens")
	}

	return &AuthResult{
		User:   toUserInfo(user),
		Tokens: tokens,
	}, nil
}

func toUserInfo(user *identity.User) UserInfo {
	return UserInfo{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Role:        string(user.Role),
		LastLoginAt: user.LastLoginAt,
		CreatedAt:   user.CreatedAt,
	}
}
