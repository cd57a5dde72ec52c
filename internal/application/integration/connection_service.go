package integration

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/storeadmin/backend/internal/domain/integration"
	"github.com/storeadmin/backend/internal/domain/shared"
)

// ConnectionService manages store connections. Connecting verifies the
// credentials against the remote store before anything is persisted.
type ConnectionService struct {
	credentialRepo integration.CredentialRepository
	platforms      integration.PlatformFactory
	logger         *zap.Logger
}

// NewConnectionService creates a new connection service
func NewConnectionService(
	credentialRepo integration.CredentialRepository,
	platforms integration.PlatformFactory,
	logger *zap.Logger,
) *ConnectionService {
	return &ConnectionService{
		credentialRepo: credentialRepo,
		platforms:      platforms,
		logger:         logger,
	}
}

// ConnectWooCommerce registers or replaces the user's WooCommerce store
// connection. The credential is probed against the store first; nothing
// is saved when the probe fails.
func (s *ConnectionService) ConnectWooCommerce(ctx context.Context, ownerID uuid.UUID, input ConnectWooCommerceInput) (*ConnectionView, error) {
	credential, err := integration.NewStoreCredential(ownerID, integration.PlatformWooCommerce,
		input.StoreURL, input.ConsumerKey, input.ConsumerSecret)
	if err != nil {
		return nil, err
	}

	platform, err := s.platforms.ForCredential(credential)
	if err != nil {
		return nil, err
	}

	if err := platform.Ping(ctx); err != nil {
		s.logger.Warn("Store connection probe failed",
			zap.String("store_url", credential.StoreURL),
			zap.Error(err))
		return nil, err
	}

	existing, err := s.credentialRepo.FindByOwnerAndPlatform(ctx, ownerID, integration.PlatformWooCommerce)
	switch {
	case err == nil:
		if err := existing.Rotate(input.StoreURL, input.ConsumerKey, input.ConsumerSecret); err != nil {
			return nil, err
		}
		if err := s.credentialRepo.Update(ctx, existing); err != nil {
			s.logger.Error("Failed to update store credential", zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save store connection")
		}
		credential = existing
	case errors.Is(err, shared.ErrNotFound):
		if err := s.credentialRepo.Save(ctx, credential); err != nil {
			s.logger.Error("Failed to save store credential", zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save store connection")
		}
	default:
		return nil, err
	}

	s.logger.Info("Store connected",
		zap.String("owner_id", ownerID.String()),
		zap.String("store_url", credential.StoreURL))

	view := toConnectionView(credential)
	return &view, nil
}

// GetConnections lists the user's store connections
func (s *ConnectionService) GetConnections(ctx context.Context, ownerID uuid.UUID) ([]ConnectionView, error) {
	credentials, err := s.credentialRepo.FindAllByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	views := make([]ConnectionView, len(credentials))
	for i, c := range credentials {
		views[i] = toConnectionView(c)
	}
	return views, nil
}

// Disconnect removes a store connection. Products imported from or
// synced to the store keep their remote IDs.
func (s *ConnectionService) Disconnect(ctx context.Context, ownerID, credentialID uuid.UUID) error {
	if err := s.credentialRepo.Delete(ctx, ownerID, credentialID); err != nil {
		return err
	}
	s.logger.Info("Store disconnected",
		zap.String("owner_id", ownerID.String()),
		zap.String("credential_id", credentialID.String()))
	return nil
}

func toConnectionView(c *integration.StoreCredential) ConnectionView {
	return ConnectionView{
		ID:          c.ID,
		Platform:    string(c.Platform),
		StoreURL:    c.StoreURL,
		ConsumerKey: maskKey(c.ConsumerKey),
		ConnectedAt: c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// maskKey keeps the first and last four characters of a consumer key
func maskKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "****" + key[len(key)-4:]
}
