// internal/api/handlers/product_handler.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agribridge-api-server/internal/models"
	"agribridge-api-server/internal/query"
	"agribridge-api-server/internal/store"
)

type ProductHandler struct {
	Store Store
}

// Price and AvailableQuantity are pointers so that "required" means the
// field was present; a zero price is a valid listing.
type CreateProductRequest struct {
	FarmerID          string   `json:"farmer_id" binding:"required"`
	Title             string   `json:"title" binding:"required"`
	Category          string   `json:"category" binding:"required"`
	Price             *float64 `json:"price" binding:"required,gte=0"`
	Unit              string   `json:"unit" binding:"required"`
	AvailableQuantity *float64 `json:"available_quantity" binding:"required,gte=0"`
	Photos            []string `json:"photos"`
	Description       string   `json:"description"`
}

// CreateProduct validates and stores a new listing. The farmer reference is
// stored as given; its existence is not checked.
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	product := models.Product{
		FarmerID:          req.FarmerID,
		Title:             req.Title,
		Category:          req.Category,
		Price:             *req.Price,
		Unit:              req.Unit,
		AvailableQuantity: *req.AvailableQuantity,
		Photos:            req.Photos,
		Description:       req.Description,
	}
	if product.Photos == nil {
		product.Photos = []string{}
	}

	id, err := h.Store.Create(c.Request.Context(), store.CollectionProduct, product)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// ListProducts returns product documents filtered by farmer, category
// and/or farmer region. The region parameter triggers a lookup against the
// farmer collection; no matching farmer means an empty listing.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	filter, err := query.ProductFilter(
		c.Request.Context(),
		h.Store,
		c.Query("farmer_id"),
		c.Query("category"),
		c.Query("region"),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve region filter"})
		return
	}

	docs, err := h.Store.List(c.Request.Context(), store.CollectionProduct, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query products"})
		return
	}

	c.JSON(http.StatusOK, docs)
}
