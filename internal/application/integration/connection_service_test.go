package integration

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/storeadmin/backend/internal/domain/integration"
	"github.com/storeadmin/backend/internal/domain/shared"
)

// MockCredentialRepository is a mock implementation of integration.CredentialRepository
type MockCredentialRepository struct {
	mock.Mock
}

func (m *MockCredentialRepository) FindByOwnerAndPlatform(ctx context.Context, ownerID uuid.UUID, platform integration.PlatformCode) (*integration.StoreCredential, error) {
	args := m.Called(ctx, ownerID, platform)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*integration.StoreCredential), args.Error(1)
}

func (m *MockCredentialRepository) FindAllByOwner(ctx context.Context, ownerID uuid.UUID) ([]*integration.StoreCredential, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*integration.StoreCredential), args.Error(1)
}

func (m *MockCredentialRepository) Save(ctx context.Context, credential *integration.StoreCredential) error {
	args := m.Called(ctx, credential)
	return args.Error(0)
}

func (m *MockCredentialRepository) Update(ctx context.Context, credential *integration.StoreCredential) error {
	args := m.Called(ctx, credential)
	return args.Error(0)
}

func (m *MockCredentialRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

// MockStorePlatform is a mock implementation of integration.StorePlatform
type MockStorePlatform struct {
	mock.Mock
}

func (m *MockStorePlatform) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStorePlatform) ListProducts(ctx context.Context, filter integration.ProductFilter) ([]integration.RemoteProduct, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]integration.RemoteProduct), args.Error(1)
}

func (m *MockStorePlatform) GetProduct(ctx context.Context, remoteID int64) (*integration.RemoteProduct, error) {
	args := m.Called(ctx, remoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*integration.RemoteProduct), args.Error(1)
}

func (m *MockStorePlatform) CreateProduct(ctx context.Context, payload integration.ProductPayload) (*integration.RemoteProduct, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*integration.RemoteProduct), args.Error(1)
}

func (m *MockStorePlatform) UpdateProduct(ctx context.Context, remoteID int64, payload integration.ProductPayload) (*integration.RemoteProduct, error) {
	args := m.Called(ctx, remoteID, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*integration.RemoteProduct), args.Error(1)
}

func (m *MockStorePlatform) DeleteProduct(ctx context.Context, remoteID int64) error {
	args := m.Called(ctx, remoteID)
	return args.Error(0)
}

type stubFactory struct {
	platform integration.StorePlatform
}

func (f *stubFactory) ForCredential(_ *integration.StoreCredential) (integration.StorePlatform, error) {
	return f.platform, nil
}

func validInput() ConnectWooCommerceInput {
	return ConnectWooCommerceInput{
		StoreURL:       "https://shop.example.com",
		ConsumerKey:    "ck_1234567890abcdef",
		ConsumerSecret: "cs_1234567890abcdef",
	}
}

func TestConnectionService_ConnectWooCommerce(t *testing.T) {
	ownerID := uuid.New()

	t.Run("probes the store and saves the credential", func(t *testing.T) {
		repo := new(MockCredentialRepository)
		platform := new(MockStorePlatform)
		svc := NewConnectionService(repo, &stubFactory{platform: platform}, zap.NewNop())

		platform.On("Ping", mock.Anything).Return(nil)
		repo.On("FindByOwnerAndPlatform", mock.Anything, ownerID, integration.PlatformWooCommerce).
			Return(nil, shared.ErrNotFound)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*integration.StoreCredential")).Return(nil)

		view, err := svc.ConnectWooCommerce(context.Background(), ownerID, validInput())

		require.NoError(t, err)
		assert.Equal(t, "WOOCOMMERCE", view.Platform)
		assert.Equal(t, "https://shop.example.com", view.StoreURL)
		assert.NotContains(t, view.ConsumerKey, "1234567890")
		repo.AssertExpectations(t)
	})

	t.Run("saves nothing when the probe fails", func(t *testing.T) {
		repo := new(MockCredentialRepository)
		platform := new(MockStorePlatform)
		svc := NewConnectionService(repo, &stubFactory{platform: platform}, zap.NewNop())

		platform.On("Ping", mock.Anything).Return(integration.ErrPlatformAuthFailed)

		_, err := svc.ConnectWooCommerce(context.Background(), ownerID, validInput())

		assert.ErrorIs(t, err, integration.ErrPlatformAuthFailed)
		repo.AssertNotCalled(t, "Save")
		repo.AssertNotCalled(t, "Update")
	})

	t.Run("rotates an existing credential in place", func(t *testing.T) {
		repo := new(MockCredentialRepository)
		platform := new(MockStorePlatform)
		svc := NewConnectionService(repo, &stubFactory{platform: platform}, zap.NewNop())

		existing, err := integration.NewStoreCredential(ownerID, integration.PlatformWooCommerce,
			"https://old.example.com", "ck_old", "cs_old")
		require.NoError(t, err)

		platform.On("Ping", mock.Anything).Return(nil)
		repo.On("FindByOwnerAndPlatform", mock.Anything, ownerID, integration.PlatformWooCommerce).
			Return(existing, nil)
		repo.On("Update", mock.Anything, existing).Return(nil)

		view, err := svc.ConnectWooCommerce(context.Background(), ownerID, validInput())

		require.NoError(t, err)
		assert.Equal(t, existing.ID, view.ID)
		assert.Equal(t, "https://shop.example.com", existing.StoreURL)
		repo.AssertNotCalled(t, "Save")
	})

	t.Run("rejects malformed input before probing", func(t *testing.T) {
		repo := new(MockCredentialRepository)
		platform := new(MockStorePlatform)
		svc := NewConnectionService(repo, &stubFactory{platform: platform}, zap.NewNop())

		input := validInput()
		input.StoreURL = "shop.example.com"

		_, err := svc.ConnectWooCommerce(context.Background(), ownerID, input)

		require.Error(t, err)
		platform.AssertNotCalled(t, "Ping")
	})
}

func TestConnectionService_GetConnections(t *testing.T) {
	ownerID := uuid.New()
	repo := new(MockCredentialRepository)
	svc := NewConnectionService(repo, &stubFactory{}, zap.NewNop())

	cred, err := integration.NewStoreCredential(ownerID, integration.PlatformWooCommerce,
		"https://shop.example.com", "ck_1234567890abcdef", "cs_secret")
	require.NoError(t, err)

	repo.On("FindAllByOwner", mock.Anything, ownerID).
		Return([]*integration.StoreCredential{cred}, nil)

	views, err := svc.GetConnections(context.Background(), ownerID)

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "ck_1****cdef", views[0].ConsumerKey)
}

func TestConnectionService_Disconnect(t *testing.T) {
	ownerID := uuid.New()
	credentialID := uuid.New()
	repo := new(MockCredentialRepository)
	svc := NewConnectionService(repo, &stubFactory{}, zap.NewNop())

	repo.On("Delete", mock.Anything, ownerID, credentialID).Return(shared.ErrNotFound)

	err := svc.Disconnect(context.Background(), ownerID, credentialID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
