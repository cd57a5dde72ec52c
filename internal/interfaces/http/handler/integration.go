package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/storeadmin/backend/internal/application/integration"
)

// ConnectWooCommerceRequest represents a store connection request
type ConnectWooCommerceRequest struct {
	StoreURL       string `json:"store_url" binding:"required"`
	ConsumerKey    string `json:"consumer_key" binding:"required"`
	ConsumerSecret string `json:"consumer_secret" binding:"required"`
}

// IntegrationHandler handles store connection HTTP requests
type IntegrationHandler struct {
	BaseHandler
	connectionService *integration.ConnectionService
}

// NewIntegrationHandler creates a new integration handler
func NewIntegrationHandler(connectionService *integration.ConnectionService) *IntegrationHandler {
	return &IntegrationHandler{
		connectionService: connectionService,
	}
}

// RegisterRoutes registers integration routes on the given group
func (h *IntegrationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	integrations := rg.Group("/integration")
	integrations.GET("", h.List)
	integrations.POST("/connect-woocommerce", h.ConnectWooCommerce)
	integrations.DELETE("/:id", h.Disconnect)
}

// List returns the user's store connections
func (h *IntegrationHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	connections, err := h.connectionService.GetConnections(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, connections)
}

// ConnectWooCommerce registers or replaces the user's WooCommerce connection
func (h *IntegrationHandler) ConnectWooCommerce(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req ConnectWooCommerceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	connection, err := h.connectionService.ConnectWooCommerce(c.Request.Context(), userID, integration.ConnectWooCommerceInput{
		StoreURL:       req.StoreURL,
		ConsumerKey:    req.ConsumerKey,
		ConsumerSecret: req.ConsumerSecret,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, connection)
}

// Disconnect removes a store connection
func (h *IntegrationHandler) Disconnect(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req struct {
		ID string `uri:"id" binding:"required,uuid"`
	}
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid connection ID")
		return
	}

	credentialID, err := uuid.Parse(req.ID)
	if err != nil {
		h.BadRequest(c, "Invalid connection ID")
		return
	}

	if err := h.connectionService.Disconnect(c.Request.Context(), userID, credentialID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
