package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storefront/internal/server/http/dto"
)

// HealthHandler serves the liveness and readiness endpoints.
type HealthHandler struct {
	facade  HealthFacade
	service string
	logger  *slog.Logger
}

// NewHealthHandler constructs HealthHandler reporting service as its identity.
func NewHealthHandler(facade HealthFacade, service string, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{facade: facade, service: service, logger: logger}
}

// Live handles GET /health.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Service: h.service})
}

// Ready handles GET /health/ready.
func (h *HealthHandler) Ready(c *gin.Context) {
	if err := h.facade.Ready(c.Request.Context()); err != nil {
		h.logger.Warn("readiness check failed", slog.Any("error", err))
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "unavailable", Service: h.service})
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Service: h.service})
}
