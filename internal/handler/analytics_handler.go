package handler

import (
	"log"
	"net/http"

	"secure_vault/internal/service"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler handles storage usage requests
type AnalyticsHandler struct {
	service service.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(s service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: s}
}

func (h *AnalyticsHandler) GetStorageStats(c *gin.Context) {
	identity, err := getAuthIdentity(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	stats, err := h.service.GetStorageStats(c.Request.Context(), identity.UserID)
	if err != nil {
		log.Printf("Error getting storage stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve storage stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// RegisterAnalyticsRoutes registers analytics routes behind the auth gate
func (h *AnalyticsHandler) RegisterAnalyticsRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	analyticsRoutes := rg.Group("/analytics")
	analyticsRoutes.Use(authMW)
	{
		analyticsRoutes.GET("/storage", h.GetStorageStats)
	}
}
