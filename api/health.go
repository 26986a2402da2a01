package api

import (
	"net/http"

	"github.com/Domenick1991/farecast/internal/service/pricing"
	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	service pricing.PricingUseCase
}

func NewHealthHandler(service pricing.PricingUseCase) *HealthHandler {
	return &HealthHandler{service: service}
}

func (h *HealthHandler) Register(router gin.IRoutes) {
	router.GET("/health", h.health)
}

func (h *HealthHandler) health(c *gin.Context) {
	if err := h.service.Ready(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
