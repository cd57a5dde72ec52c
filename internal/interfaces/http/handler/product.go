package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storeadmin/backend/internal/application/catalog"
	"github.com/storeadmin/backend/internal/domain/shared"
	"github.com/storeadmin/backend/internal/interfaces/http/dto"
)

// ProductHandler handles product catalog HTTP requests
type ProductHandler struct {
	BaseHandler
	productService *catalog.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *catalog.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// RegisterRoutes registers product routes on the given group
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/product")
	products.GET("", h.List)
	products.POST("", h.Create)
	products.GET("/:id", h.Get)
	products.PUT("/:id", h.Update)
	products.DELETE("/:id", h.Delete)
	products.POST("/:id/sync", h.Sync)
	products.POST("/check", h.CheckRemote)
	products.POST("/import", h.Import)
}

// List returns all products of the authenticated user
func (h *ProductHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	products, err := h.productService.ListProducts(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, products)
}

// Get returns a single product
func (h *ProductHandler) Get(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	productID, ok := h.bindProductID(c)
	if !ok {
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), userID, productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// Create adds a product and pushes it to the connected store if one exists
func (h *ProductHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	input, ok := h.bindProductInput(c)
	if !ok {
		return
	}

	product, err := h.productService.AddProduct(c.Request.Context(), userID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, product)
}

// Update modifies a product and pushes the change if it lives remotely
func (h *ProductHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	productID, ok := h.bindProductID(c)
	if !ok {
		return
	}

	input, ok := h.bindProductInput(c)
	if !ok {
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), userID, productID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// Delete removes a product locally and best-effort from the remote store
func (h *ProductHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	productID, ok := h.bindProductID(c)
	if !ok {
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), userID, productID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"id": productID})
}

// Sync pushes a product to the connected store on demand
func (h *ProductHandler) Sync(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	productID, ok := h.bindProductID(c)
	if !ok {
		return
	}

	product, err := h.productService.SyncProduct(c.Request.Context(), userID, productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// CheckRemote searches the remote store and annotates results with their
// import state
func (h *ProductHandler) CheckRemote(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	// both filters are optional, an empty body lists everything
	var req CheckProductRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.BadRequest(c, "Invalid request body")
		return
	}

	statuses, err := h.productService.CheckRemoteProducts(c.Request.Context(), userID, req.Name, req.SKU)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, statuses)
}

// Import mirrors a remote store product into the local catalog
func (h *ProductHandler) Import(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req ImportProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.productService.ImportProduct(c.Request.Context(), userID, req.WCProductID)
	if err != nil {
		var domainErr *shared.DomainError
		if errors.As(err, &domainErr) && domainErr.Code == dto.ErrCodeAlreadyImported && product != nil {
			// the existing record rides along with the rejection
			c.JSON(http.StatusBadRequest, dto.NewErrorResponseWithData(domainErr.Code, domainErr.Message, product))
			return
		}
		h.HandleError(c, err)
		return
	}

	h.Created(c, product)
}

// bindProductID parses the :id path parameter
func (h *ProductHandler) bindProductID(c *gin.Context) (uuid.UUID, bool) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid product ID")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return uuid.Nil, false
	}
	return id, true
}

// bindProductInput parses and validates the product payload
func (h *ProductHandler) bindProductInput(c *gin.Context) (catalog.ProductInput, bool) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return catalog.ProductInput{}, false
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		h.BadRequest(c, "Invalid price format")
		return catalog.ProductInput{}, false
	}

	// sync on create unless the client opts out
	syncToWooCommerce := true
	if req.SyncToWooCommerce != nil {
		syncToWooCommerce = *req.SyncToWooCommerce
	}

	return catalog.ProductInput{
		Name:              req.Name,
		Description:       req.Description,
		Price:             price,
		Images:            req.Images,
		SyncToWooCommerce: syncToWooCommerce,
	}, true
}
