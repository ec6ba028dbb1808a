// internal/api/handlers/buyer_handler.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agribridge-api-server/internal/models"
	"agribridge-api-server/internal/query"
	"agribridge-api-server/internal/store"
)

type BuyerHandler struct {
	Store Store
}

type CreateBuyerRequest struct {
	Name         string `json:"name" binding:"required"`
	Type         string `json:"type" binding:"required"` // consumer|restaurant|retailer|exporter, not enforced
	Organization string `json:"organization"`
	Phone        string `json:"phone" binding:"required"`
	Region       string `json:"region"`
}

// CreateBuyer validates and stores a new buyer.
func (h *BuyerHandler) CreateBuyer(c *gin.Context) {
	var req CreateBuyerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	buyer := models.Buyer{
		Name:         req.Name,
		Type:         req.Type,
		Organization: req.Organization,
		Phone:        req.Phone,
		Region:       req.Region,
	}

	id, err := h.Store.Create(c.Request.Context(), store.CollectionBuyer, buyer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create buyer"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// ListBuyers returns buyer documents, optionally filtered by type.
func (h *BuyerHandler) ListBuyers(c *gin.Context) {
	filter := query.BuyerFilter(c.Query("type"))

	docs, err := h.Store.List(c.Request.Context(), store.CollectionBuyer, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query buyers"})
		return
	}

	c.JSON(http.StatusOK, docs)
}
