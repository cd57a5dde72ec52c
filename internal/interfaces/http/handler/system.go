package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/storeadmin/backend/internal/infrastructure/persistence"
)

// SystemHandler handles health and readiness probes
type SystemHandler struct {
	BaseHandler
	db *persistence.Database
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(db *persistence.Database) *SystemHandler {
	return &SystemHandler{db: db}
}

// RegisterRoutes registers system routes on the given group
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
}

// Health reports service liveness and database connectivity
func (h *SystemHandler) Health(c *gin.Context) {
	status := "ok"
	httpStatus := http.StatusOK

	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			status = "degraded"
			httpStatus = http.StatusServiceUnavailable
		}
	}

	c.JSON(httpStatus, gin.H{"status": status})
}
