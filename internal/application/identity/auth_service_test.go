package identity

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/storeadmin/backend/internal/domain/identity"
	"github.com/storeadmin/backend/internal/domain/shared"
	"github.com/storeadmin/backend/internal/infrastructure/auth"
	"github.com/storeadmin/backend/internal/infrastructure/config"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func newTestAuthService(repo identity.UserRepository) *AuthService {
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                 strings.Repeat("s", 32),
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 168 * time.Hour,
		Issuer:                 "storeadmin-test",
	})
	return NewAuthService(repo, jwtService, auth.NewInMemoryTokenBlacklist(), zap.NewNop())
}

func TestAuthService_Signup(t *testing.T) {
	t.Run("creates user and returns tokens", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := newTestAuthService(repo)

		repo.On("ExistsByEmail", mock.Anything, "alice@example.com").Return(false, nil)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*identity.User")).Return(nil)

		result, err := svc.Signup(context.Background(), SignupInput{
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: "supersecret",
		})

		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", result.User.Email)
		assert.NotEmpty(t, result.Tokens.AccessToken)
		repo.AssertExpectations(t)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := newTestAuthService(repo)

		repo.On("ExistsByEmail", mock.Anything, "alice@example.com").Return(true, nil)

		_, err := svc.Signup(context.Background(), SignupInput{
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: "supersecret",
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "EMAIL_TAKEN", domainErr.Code)
		repo.AssertNotCalled(t, "Save")
	})

	t.Run("rejects invalid input before touching the repository", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := newTestAuthService(repo)

		_, err := svc.Signup(context.Background(), SignupInput{
			Name:     "Alice",
			Email:    "not-an-email",
			Password: "supersecret",
		})

		require.Error(t, err)
		repo.AssertNotCalled(t, "ExistsByEmail")
	})
}

func TestAuthService_Login(t *testing.T) {
	t.Run("authenticates with valid credentials", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := newTestAuthService(repo)

		user, err := identity.NewUser("Alice", "alice@example.com", "supersecret")
		require.NoError(t, err)

		repo.On("FindByEmail", mock.Anything, "alice@example.com").Return(user, nil)
		repo.On("Update", mock.Anything, user).Return(nil)

		result, err := svc.Login(context.Background(), LoginInput{
			Email:    "alice@example.com",
			Password: "supersecret",
		})

		require.NoError(t, err)
		assert.Equal(t, user.ID, result.User.ID)
		assert.NotNil(t, user.LastLoginAt)
		repo.AssertExpectations(t)
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := newTestAuthService(repo)

		user, err := identity.NewUser("Alice", "alice@example.com", "supersecret")
		require.NoError(t, err)

		repo.On("FindByEmail", mock.Anything, "alice@example.com").Return(user, nil)

		_, err = svc.Login(context.Background(), LoginInput{
			Email:    "alice@example.com",
			Password: "wrongpassword",
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
	})

	t.Run("does not reveal whether the account exists", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := newTestAuthService(repo)

		repo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, shared.ErrNotFound)

		_, err := svc.Login(context.Background(), LoginInput{
			Email:    "ghost@example.com",
			Password: "whatever1",
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
	})
}

func TestAuthService_Logout(t *testing.T) {
	repo := new(MockUserRepository)
	svc := newTestAuthService(repo)

	user, err := identity.NewUser("Alice", "alice@example.com", "supersecret")
	require.NoError(t, err)

	repo.On("ExistsByEmail", mock.Anything, user.Email).Return(false, nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	result, err := svc.Signup(context.Background(), SignupInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                 strings.Repeat("s", 32),
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 168 * time.Hour,
		Issuer:                 "storeadmin-test",
	})
	claims, err := jwtService.ValidateAccessToken(result.Tokens.AccessToken)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), claims))

	blacklisted, err := svc.blacklist.IsBlacklisted(context.Background(), claims.ID)
	require.NoError(t, err)
	assert.True(t, blacklisted)
}
