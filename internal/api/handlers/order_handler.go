// internal/api/handlers/order_handler.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agribridge-api-server/internal/models"
	"agribridge-api-server/internal/query"
	"agribridge-api-server/internal/store"
)

type OrderHandler struct {
	Store Store
}

type OrderItemRequest struct {
	ProductID string   `json:"product_id" binding:"required"`
	Quantity  *float64 `json:"quantity" binding:"required,gt=0"`
	Price     *float64 `json:"price" binding:"required,gte=0"` // price at time of order
}

type CreateOrderRequest struct {
	BuyerID        string             `json:"buyer_id" binding:"required"`
	Items          []OrderItemRequest `json:"items" binding:"required,dive"`
	Status         string             `json:"status"`
	DeliveryMethod string             `json:"delivery_method"`
	ScheduledDate  string             `json:"scheduled_date"`
	RouteID        string             `json:"route_id"`
}

// CreateOrder validates and stores a new order. Buyer, product and route
// references are stored as given.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  *item.Quantity,
			Price:     *item.Price,
		})
	}

	order := models.Order{
		BuyerID:        req.BuyerID,
		Items:          items,
		Status:         req.Status,
		DeliveryMethod: req.DeliveryMethod,
		ScheduledDate:  req.ScheduledDate,
		RouteID:        req.RouteID,
	}
	if order.Status == "" {
		order.Status = "pending"
	}
	if order.DeliveryMethod == "" {
		order.DeliveryMethod = "delivery"
	}

	id, err := h.Store.Create(c.Request.Context(), store.CollectionOrder, order)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// ListOrders returns order documents, optionally filtered by buyer and/or
// status.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	filter := query.OrderFilter(c.Query("buyer_id"), c.Query("status"))

	docs, err := h.Store.List(c.Request.Context(), store.CollectionOrder, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query orders"})
		return
	}

	c.JSON(http.StatusOK, docs)
}
