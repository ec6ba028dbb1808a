// internal/api/handlers/route_handler.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"agribridge-api-server/internal/models"
	"agribridge-api-server/internal/query"
	"agribridge-api-server/internal/store"
)

type RouteHandler struct {
	Store Store
}

type RouteStopRequest struct {
	OrderID  string `json:"order_id" binding:"required"`
	Location string `json:"location"`
	ETA      string `json:"eta"`
}

type CreateRouteRequest struct {
	Date        string             `json:"date" binding:"required"`
	VehicleType string             `json:"vehicle_type"`
	ColdChain   bool               `json:"cold_chain"`
	Stops       []RouteStopRequest `json:"stops" binding:"dive"`
}

// CreateRoute validates and stores a new delivery route.
func (h *RouteHandler) CreateRoute(c *gin.Context) {
	var req CreateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	stops := make([]models.RouteStop, 0, len(req.Stops))
	for _, stop := range req.Stops {
		stops = append(stops, models.RouteStop{
			OrderID:  stop.OrderID,
			Location: stop.Location,
			ETA:      stop.ETA,
		})
	}

	route := models.Route{
		Date:        req.Date,
		VehicleType: req.VehicleType,
		ColdChain:   req.ColdChain,
		Stops:       stops,
	}

	id, err := h.Store.Create(c.Request.Context(), store.CollectionRoute, route)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create route"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// ListRoutes returns route documents, optionally filtered by date and/or
// cold_chain. Leaving cold_chain out of the query returns routes with
// either value; cold_chain=false only matches routes where it is false.
func (h *RouteHandler) ListRoutes(c *gin.Context) {
	var coldChain *bool
	if raw := c.Query("cold_chain"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cold_chain: must be a boolean"})
			return
		}
		coldChain = &v
	}

	filter := query.RouteFilter(c.Query("date"), coldChain)

	docs, err := h.Store.List(c.Request.Context(), store.CollectionRoute, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query routes"})
		return
	}

	c.JSON(http.StatusOK, docs)
}
