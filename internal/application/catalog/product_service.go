package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/storeadmin/backend/internal/domain/catalog"
	"github.com/storeadmin/backend/internal/domain/integration"
	"github.com/storeadmin/backend/internal/domain/shared"
)

// ProductService orchestrates the local catalog and its synchronization
// with the connected remote store.
//
// All writes are local-first: the local record is persisted before any
// remote call, and a remote failure never rolls the local write back.
type ProductService struct {
	productRepo    catalog.ProductRepository
	credentialRepo integration.CredentialRepository
	platforms      integration.PlatformFactory
	logger         *zap.Logger
}

// NewProductService creates a new product service
func NewProductService(
	productRepo catalog.ProductRepository,
	credentialRepo integration.CredentialRepository,
	platforms integration.PlatformFactory,
	logger *zap.Logger,
) *ProductService {
	return &ProductService{
		productRepo:    productRepo,
		credentialRepo: credentialRepo,
		platforms:      platforms,
		logger:         logger,
	}
}

// AddProduct creates a product locally and, when the input requests it
// and a store is connected, immediately attempts to push it. A failed
// push leaves the product in SYNC_FAILED; an unrequested sync or a
// missing store connection leaves it CREATED_LOCALLY. Neither case
// fails the creation.
func (s *ProductService) AddProduct(ctx context.Context, ownerID uuid.UUID, input ProductInput) (*ProductView, error) {
	product, err := catalog.NewProduct(ownerID, input.Name, input.Description, input.Price, input.Images)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		s.logger.Error("Failed to save product", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save product")
	}

	if !input.SyncToWooCommerce {
		view := toProductView(product)
		return &view, nil
	}

	platform, err := s.resolvePlatform(ctx, ownerID)
	if err != nil {
		if errors.Is(err, integration.ErrPlatformNotConfigured) {
			view := toProductView(product)
			return &view, nil
		}
		return nil, err
	}

	warning, _ := s.pushProduct(ctx, platform, product)
	view := toProductView(product)
	view.SyncWarning = warning
	return &view, nil
}

// SyncProduct pushes a product to the connected store on demand.
// Requires a connected store; a failed push is reported as an error and
// recorded on the product.
func (s *ProductService) SyncProduct(ctx context.Context, ownerID, productID uuid.UUID) (*ProductView, error) {
	product, err := s.productRepo.FindByID(ctx, ownerID, productID)
	if err != nil {
		return nil, err
	}

	platform, err := s.resolvePlatform(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	warning, pushErr := s.pushProduct(ctx, platform, product)
	if pushErr != nil {
		return nil, pushErr
	}

	view := toProductView(product)
	view.SyncWarning = warning
	return &view, nil
}

// UpdateProduct updates a product locally and pushes the change if the
// product already lives in the remote store
func (s *ProductService) UpdateProduct(ctx context.Context, ownerID, productID uuid.UUID, input ProductInput) (*ProductView, error) {
	product, err := s.productRepo.FindByID(ctx, ownerID, productID)
	if err != nil {
		return nil, err
	}

	if err := product.Update(input.Name, input.Description, input.Price, input.Images); err != nil {
		return nil, err
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		s.logger.Error("Failed to update product", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update product")
	}

	var warning string
	if product.WCProductID != nil {
		platform, err := s.resolvePlatform(ctx, ownerID)
		if err == nil {
			warning, _ = s.pushProduct(ctx, platform, product)
		} else if !errors.Is(err, integration.ErrPlatformNotConfigured) {
			return nil, err
		}
	}

	view := toProductView(product)
	view.SyncWarning = warning
	return &view, nil
}

// DeleteProduct removes a product, attempting best-effort remote
// deletion first. A failed remote delete is logged, not surfaced, and
// the local delete proceeds regardless.
func (s *ProductService) DeleteProduct(ctx context.Context, ownerID, productID uuid.UUID) error {
	product, err := s.productRepo.FindByID(ctx, ownerID, productID)
	if err != nil {
		return err
	}

	if product.WCProductID != nil {
		platform, err := s.resolvePlatform(ctx, ownerID)
		if err != nil {
			s.logger.Warn("Skipping remote delete, no store connected",
				zap.String("product_id", productID.String()))
		} else if err := platform.DeleteProduct(ctx, *product.WCProductID); err != nil {
			s.logger.Warn("Failed to delete remote product",
				zap.String("product_id", productID.String()),
				zap.Int64("wc_product_id", *product.WCProductID),
				zap.Error(err))
		}
	}

	return s.productRepo.Delete(ctx, ownerID, productID)
}

// ListProducts returns all products of the owner, newest first
func (s *ProductService) ListProducts(ctx context.Context, ownerID uuid.UUID) ([]ProductView, error) {
	products, err := s.productRepo.FindAll(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	views := make([]ProductView, len(products))
	for i, p := range products {
		views[i] = toProductView(p)
	}
	return views, nil
}

// GetProduct returns a single product of the owner
func (s *ProductService) GetProduct(ctx context.Context, ownerID, productID uuid.UUID) (*ProductView, error) {
	product, err := s.productRepo.FindByID(ctx, ownerID, productID)
	if err != nil {
		return nil, err
	}
	view := toProductView(product)
	return &view, nil
}

// CheckRemoteProducts searches the remote store and marks the products
// already imported into the local catalog. Name matches the store's
// full-text search; a SKU narrows the result further.
func (s *ProductService) CheckRemoteProducts(ctx context.Context, ownerID uuid.UUID, name, sku string) ([]RemoteProductStatus, error) {
	platform, err := s.resolvePlatform(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	remoteProducts, err := platform.ListProducts(ctx, integration.ProductFilter{Search: name, SKU: sku})
	if err != nil {
		return nil, err
	}

	statuses := make([]RemoteProductStatus, 0, len(remoteProducts))
	for _, remote := range remoteProducts {
		status := RemoteProductStatus{Remote: remote}
		local, err := s.productRepo.FindByWCProductID(ctx, ownerID, remote.ID)
		if err == nil {
			status.Imported = true
			id := local.ID
			status.LocalProductID = &id
		} else if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

// ImportProduct mirrors a remote product into the local catalog.
// Importing the same remote product twice fails with the existing local
// record attached.
func (s *ProductService) ImportProduct(ctx context.Context, ownerID uuid.UUID, wcProductID int64) (*ProductView, error) {
	existing, err := s.productRepo.FindByWCProductID(ctx, ownerID, wcProductID)
	if err == nil {
		view := toProductView(existing)
		return &view, shared.NewDomainError("ALREADY_IMPORTED", "Product has already been imported")
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	platform, err := s.resolvePlatform(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	remote, err := platform.GetProduct(ctx, wcProductID)
	if err != nil {
		return nil, err
	}

	price, err := parseRemotePrice(remote.Price)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_REMOTE_PRODUCT", "Remote product has an unparseable price")
	}

	product, err := catalog.NewImportedProduct(ownerID, remote.ID, remote.Name, remote.Description, price, remote.Images)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		s.logger.Error("Failed to save imported product", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to import product")
	}

	s.logger.Info("Imported remote product",
		zap.String("product_id", product.ID.String()),
		zap.Int64("wc_product_id", remote.ID))

	view := toProductView(product)
	return &view, nil
}

// ---------------------------------------------------------------------------
// Internal helpers
// ---------------------------------------------------------------------------

// resolvePlatform loads the owner's store credential and builds an adapter
func (s *ProductService) resolvePlatform(ctx context.Context, ownerID uuid.UUID) (integration.StorePlatform, error) {
	credential, err := s.credentialRepo.FindByOwnerAndPlatform(ctx, ownerID, integration.PlatformWooCommerce)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, integration.ErrPlatformNotConfigured
		}
		return nil, err
	}
	return s.platforms.ForCredential(credential)
}

// pushProduct pushes a product to the remote store, retrying once without
// images when the store rejects an image. The resulting status is persisted
// regardless of outcome. A non-empty warning means the product synced but
// its images were dropped.
func (s *ProductService) pushProduct(ctx context.Context, platform integration.StorePlatform, product *catalog.Product) (string, error) {
	payload := integration.NewProductPayload(product)
	var warning string

	remote, err := s.pushPayload(ctx, platform, product, payload)
	if err != nil && errors.Is(err, integration.ErrImageRejected) {
		s.logger.Warn("Store rejected product images, retrying without them",
			zap.String("product_id", product.ID.String()),
			zap.Error(err))
		if retried, retryErr := s.pushPayload(ctx, platform, product, payload.WithoutImages()); retryErr == nil {
			remote, err = retried, nil
			warning = "Product synced without images: the store rejected the image upload"
		}
		// a failed retry keeps the original image error
	}

	if err != nil {
		product.MarkSyncFailed(err.Error())
		if updateErr := s.productRepo.Update(ctx, product); updateErr != nil {
			s.logger.Error("Failed to record sync failure", zap.Error(updateErr))
		}
		return "", err
	}

	product.MarkSynced(remote.ID)
	if updateErr := s.productRepo.Update(ctx, product); updateErr != nil {
		s.logger.Error("Failed to record sync success", zap.Error(updateErr))
		return "", shared.NewDomainError("INTERNAL_ERROR", "Product synced but local state could not be saved")
	}

	s.logger.Info("Product synced",
		zap.String("product_id", product.ID.String()),
		zap.Int64("wc_product_id", remote.ID))
	return warning, nil
}

// pushPayload creates or updates the remote product depending on whether a
// remote ID is already assigned
func (s *ProductService) pushPayload(ctx context.Context, platform integration.StorePlatform, product *catalog.Product, payload integration.ProductPayload) (*integration.RemoteProduct, error) {
	if product.WCProductID != nil {
		return platform.UpdateProduct(ctx, *product.WCProductID, payload)
	}
	return platform.CreateProduct(ctx, payload)
}

// parseRemotePrice parses the price string of a remote product. Remote
// stores report an empty price for products without one.
func parseRemotePrice(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(raw)
}
