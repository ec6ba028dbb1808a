// internal/api/handlers/analytics_handler.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"agribridge-api-server/internal/analytics"
)

type AnalyticsHandler struct {
	Engine *analytics.Engine
}

// GetPricingTrends returns the average price per category, optionally
// restricted to one category.
func (h *AnalyticsHandler) GetPricingTrends(c *gin.Context) {
	trends := h.Engine.PricingTrends(c.Request.Context(), c.Query("category"))
	c.JSON(http.StatusOK, trends)
}

// GetDemandForecast returns the most-ordered products. limit defaults to 10
// and must be a non-negative integer; limit=0 yields an empty list.
func (h *AnalyticsHandler) GetDemandForecast(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit: must be a non-negative integer"})
			return
		}
		limit = v
	}

	entries := h.Engine.DemandForecast(c.Request.Context(), limit)
	c.JSON(http.StatusOK, entries)
}

// GetSupplyOverview returns the available quantity per category.
func (h *AnalyticsHandler) GetSupplyOverview(c *gin.Context) {
	entries := h.Engine.SupplyOverview(c.Request.Context())
	c.JSON(http.StatusOK, entries)
}
